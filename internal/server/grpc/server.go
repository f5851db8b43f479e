package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/workfolio/internal/logging"
	pb "github.com/dmitrijs2005/workfolio/internal/proto"
	"github.com/dmitrijs2005/workfolio/internal/server/models"
	sessionsrepo "github.com/dmitrijs2005/workfolio/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/workfolio/internal/server/services"
	"google.golang.org/grpc"
)

// Service interfaces consumed by the handlers. The concrete implementations
// live in internal/server/services; the indirection keeps handlers testable.
type UserService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

type SessionService interface {
	ClockIn(ctx context.Context, userID string) (*models.Session, error)
	StartBreak(ctx context.Context, userID string) (time.Time, error)
	EndBreak(ctx context.Context, userID string) (int64, error)
	ClockOut(ctx context.Context, userID string) (*models.Session, error)
	ListSessions(ctx context.Context, userID string, limit int) ([]*models.Session, map[string][]*models.Screenshot, error)
	ListAllSessions(ctx context.Context, filter sessionsrepo.ListAllFilter) ([]*models.Session, map[string][]*models.Screenshot, error)
}

type ScreenshotService interface {
	BeginUpload(ctx context.Context, userID string) (string, string, error)
	Commit(ctx context.Context, userID, sessionID, storageKey string) (*models.Screenshot, error)
	ListBySession(ctx context.Context, userID, role, sessionID string) ([]*models.Screenshot, error)
}

type GRPCServer struct {
	pb.UnimplementedWorkfolioServiceServer
	address     string
	users       UserService
	sessions    SessionService
	screenshots ScreenshotService
	logger      logging.Logger
	jwtSecret   []byte
}

func NewGRPCServer(a string, l logging.Logger, us UserService, ss SessionService,
	scs ScreenshotService, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		users:       us,
		sessions:    ss,
		screenshots: scs,
		jwtSecret:   []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterWorkfolioServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
