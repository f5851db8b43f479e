package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/workfolio/internal/common"
	pb "github.com/dmitrijs2005/workfolio/internal/proto"
	"github.com/dmitrijs2005/workfolio/internal/server/models"
	sessionsrepo "github.com/dmitrijs2005/workfolio/internal/server/repositories/sessions"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError maps service errors onto gRPC status codes. Anything not
// matched here is reported as Internal without leaking details.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired),
		errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrEmailAlreadyTaken):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrAlreadyClockedIn),
		errors.Is(err, common.ErrAlreadyOnBreak),
		errors.Is(err, common.ErrNotOnBreak),
		errors.Is(err, common.ErrNoActiveSession):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	s.logger.Info(ctx, "Registration request")

	result, err := s.users.Register(ctx, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Registered", "email", req.Email)
	return &pb.RegisterUserResponse{UserId: result.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tokens, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.LoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Role:         tokens.Role,
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.RefreshTokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) ClockIn(ctx context.Context, req *pb.ClockInRequest) (*pb.ClockInResponse, error) {

	userID := userIDFromContext(ctx)

	session, err := s.sessions.ClockIn(ctx, userID)
	if err != nil {
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Clocked in", "user_id", userID, "session_id", session.ID)
	return &pb.ClockInResponse{
		SessionId:   session.ID,
		ClockInTime: session.ClockInTime.Unix(),
	}, nil
}

func (s *GRPCServer) StartBreak(ctx context.Context, req *pb.StartBreakRequest) (*pb.StartBreakResponse, error) {

	at, err := s.sessions.StartBreak(ctx, userIDFromContext(ctx))
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.StartBreakResponse{BreakStartTime: at.Unix()}, nil
}

func (s *GRPCServer) EndBreak(ctx context.Context, req *pb.EndBreakRequest) (*pb.EndBreakResponse, error) {

	total, err := s.sessions.EndBreak(ctx, userIDFromContext(ctx))
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.EndBreakResponse{BreakSeconds: total}, nil
}

func (s *GRPCServer) ClockOut(ctx context.Context, req *pb.ClockOutRequest) (*pb.ClockOutResponse, error) {

	userID := userIDFromContext(ctx)

	session, err := s.sessions.ClockOut(ctx, userID)
	if err != nil {
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Clocked out", "user_id", userID, "session_id", session.ID)
	return &pb.ClockOutResponse{
		ClockOutTime:         session.ClockOutTime.Time.Unix(),
		TotalDurationSeconds: session.TotalDurationSeconds,
		BreakSeconds:         session.BreakSeconds,
	}, nil
}

func (s *GRPCServer) ListSessions(ctx context.Context, req *pb.ListSessionsRequest) (*pb.ListSessionsResponse, error) {

	list, shots, err := s.sessions.ListSessions(ctx, userIDFromContext(ctx), int(req.Limit))
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.ListSessionsResponse{Sessions: sessionsToProto(list, shots)}, nil
}

func (s *GRPCServer) BeginScreenshotUpload(ctx context.Context, req *pb.BeginScreenshotUploadRequest) (*pb.BeginScreenshotUploadResponse, error) {

	key, url, err := s.screenshots.BeginUpload(ctx, userIDFromContext(ctx))
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.BeginScreenshotUploadResponse{StorageKey: key, UploadUrl: url}, nil
}

func (s *GRPCServer) CommitScreenshot(ctx context.Context, req *pb.CommitScreenshotRequest) (*pb.CommitScreenshotResponse, error) {

	shot, err := s.screenshots.Commit(ctx, userIDFromContext(ctx), req.SessionId, req.StorageKey)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.CommitScreenshotResponse{Url: shot.URL, Timestamp: shot.CapturedAt.Unix()}, nil
}

func (s *GRPCServer) ListScreenshots(ctx context.Context, req *pb.ListScreenshotsRequest) (*pb.ListScreenshotsResponse, error) {

	list, err := s.screenshots.ListBySession(ctx, userIDFromContext(ctx), roleFromContext(ctx), req.SessionId)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.ListScreenshotsResponse{Screenshots: screenshotsToProto(list)}, nil
}

func (s *GRPCServer) ListAllSessions(ctx context.Context, req *pb.ListAllSessionsRequest) (*pb.ListAllSessionsResponse, error) {

	var filter sessionsrepo.ListAllFilter
	if req.Date != "" {
		day, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "date must be YYYY-MM-DD")
		}
		filter.DayStart = day
		filter.DayEnd = day.Add(24 * time.Hour)
	}
	filter.UserIDPrefix = req.UserIdPrefix

	list, shots, err := s.sessions.ListAllSessions(ctx, filter)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.ListAllSessionsResponse{Sessions: sessionsToProto(list, shots)}, nil
}

// --- proto conversion helpers ---

func sessionToProto(s *models.Session, shots []*models.Screenshot) *pb.Session {
	p := &pb.Session{
		Id:                   s.ID,
		UserId:               s.UserID,
		UserName:             s.UserName,
		ClockInTime:          s.ClockInTime.Unix(),
		BreakSeconds:         s.BreakSeconds,
		IsClockedIn:          s.IsClockedIn,
		TotalDurationSeconds: s.TotalDurationSeconds,
		Screenshots:          screenshotsToProto(shots),
	}
	if s.ClockOutTime.Valid {
		p.ClockOutTime = s.ClockOutTime.Time.Unix()
	}
	if s.BreakStartTime.Valid {
		p.BreakStartTime = s.BreakStartTime.Time.Unix()
	}
	return p
}

func sessionsToProto(list []*models.Session, shots map[string][]*models.Screenshot) []*pb.Session {
	result := make([]*pb.Session, 0, len(list))
	for _, s := range list {
		result = append(result, sessionToProto(s, shots[s.ID]))
	}
	return result
}

func screenshotsToProto(list []*models.Screenshot) []*pb.Screenshot {
	result := make([]*pb.Screenshot, 0, len(list))
	for _, sc := range list {
		result = append(result, &pb.Screenshot{Url: sc.URL, Timestamp: sc.CapturedAt.Unix()})
	}
	return result
}
