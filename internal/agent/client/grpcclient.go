package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/workfolio/internal/common"
	pb "github.com/dmitrijs2005/workfolio/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.WorkfolioServiceClient
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != "token expired" {
			return err
		}

		if s.refreshToken == "" {
			return err
		}

		refreshTokenResponse, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = refreshTokenResponse.AccessToken
		s.refreshToken = refreshTokenResponse.RefreshToken

		// TOKENS REFRESHED, creating context with new Access Token
		ctx = withAccessToken(ctx, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

func NewWorkfolioClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewWorkfolioServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, email, password, firstName, lastName string) error {

	req := &pb.RegisterUserRequest{Email: email, Password: password, FirstName: firstName, LastName: lastName}

	if _, err := s.client.RegisterUser(ctx, req); err != nil {
		return s.mapError(err)
	}

	return nil

}

// Login authenticates the user and stores the token pair for subsequent
// calls. The server-assigned role is returned so the CLI can enable admin
// commands.
func (s *GRPCClient) Login(ctx context.Context, email, password string) (string, error) {

	req := &pb.LoginRequest{Email: email, Password: password}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken

	return resp.Role, nil

}

func (s *GRPCClient) Ping(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, 12*time.Second)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) ClockIn(ctx context.Context) (string, time.Time, error) {

	resp, err := s.client.ClockIn(ctx, &pb.ClockInRequest{})
	if err != nil {
		return "", time.Time{}, s.mapError(err)
	}

	return resp.SessionId, time.Unix(resp.ClockInTime, 0), nil
}

func (s *GRPCClient) StartBreak(ctx context.Context) (time.Time, error) {

	resp, err := s.client.StartBreak(ctx, &pb.StartBreakRequest{})
	if err != nil {
		return time.Time{}, s.mapError(err)
	}

	return time.Unix(resp.BreakStartTime, 0), nil
}

func (s *GRPCClient) EndBreak(ctx context.Context) (int64, error) {

	resp, err := s.client.EndBreak(ctx, &pb.EndBreakRequest{})
	if err != nil {
		return 0, s.mapError(err)
	}

	return resp.BreakSeconds, nil
}

func (s *GRPCClient) ClockOut(ctx context.Context) (*ClockOutSummary, error) {

	resp, err := s.client.ClockOut(ctx, &pb.ClockOutRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &ClockOutSummary{
		ClockOutTime:         time.Unix(resp.ClockOutTime, 0),
		TotalDurationSeconds: resp.TotalDurationSeconds,
		BreakSeconds:         resp.BreakSeconds,
	}, nil
}

func (s *GRPCClient) ListSessions(ctx context.Context, limit int) ([]*SessionSummary, error) {

	resp, err := s.client.ListSessions(ctx, &pb.ListSessionsRequest{Limit: int32(limit)})
	if err != nil {
		return nil, s.mapError(err)
	}

	return sessionsFromProto(resp.Sessions), nil
}

func (s *GRPCClient) BeginScreenshotUpload(ctx context.Context) (string, string, error) {

	resp, err := s.client.BeginScreenshotUpload(ctx, &pb.BeginScreenshotUploadRequest{})
	if err != nil {
		return "", "", s.mapError(err)
	}

	return resp.StorageKey, resp.UploadUrl, nil
}

func (s *GRPCClient) CommitScreenshot(ctx context.Context, sessionID, storageKey string) (string, time.Time, error) {

	req := &pb.CommitScreenshotRequest{SessionId: sessionID, StorageKey: storageKey}

	resp, err := s.client.CommitScreenshot(ctx, req)
	if err != nil {
		return "", time.Time{}, s.mapError(err)
	}

	return resp.Url, time.Unix(resp.Timestamp, 0), nil
}

func (s *GRPCClient) ListScreenshots(ctx context.Context, sessionID string) ([]*ScreenshotInfo, error) {

	resp, err := s.client.ListScreenshots(ctx, &pb.ListScreenshotsRequest{SessionId: sessionID})
	if err != nil {
		return nil, s.mapError(err)
	}

	return screenshotsFromProto(resp.Screenshots), nil
}

func (s *GRPCClient) ListAllSessions(ctx context.Context, date, userIDPrefix string) ([]*SessionSummary, error) {

	req := &pb.ListAllSessionsRequest{Date: date, UserIdPrefix: userIDPrefix}

	resp, err := s.client.ListAllSessions(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return sessionsFromProto(resp.Sessions), nil
}

// mapError converts gRPC status errors into the package's sentinel errors,
// restoring session lifecycle errors from FailedPrecondition messages so
// the orchestrator can match them with errors.Is.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.FailedPrecondition:
		switch st.Message() {
		case common.ErrAlreadyClockedIn.Error():
			return common.ErrAlreadyClockedIn
		case common.ErrAlreadyOnBreak.Error():
			return common.ErrAlreadyOnBreak
		case common.ErrNotOnBreak.Error():
			return common.ErrNotOnBreak
		case common.ErrNoActiveSession.Error():
			return common.ErrNoActiveSession
		}
		return fmt.Errorf("rpc error: %w", err)
	case codes.AlreadyExists:
		return common.ErrEmailAlreadyTaken
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func sessionsFromProto(list []*pb.Session) []*SessionSummary {
	result := make([]*SessionSummary, 0, len(list))
	for _, s := range list {
		summary := &SessionSummary{
			ID:                   s.Id,
			UserID:               s.UserId,
			UserName:             s.UserName,
			ClockInTime:          time.Unix(s.ClockInTime, 0),
			BreakSeconds:         s.BreakSeconds,
			IsClockedIn:          s.IsClockedIn,
			TotalDurationSeconds: s.TotalDurationSeconds,
			Screenshots:          screenshotsFromProto(s.Screenshots),
		}
		if s.ClockOutTime != 0 {
			summary.ClockOutTime = time.Unix(s.ClockOutTime, 0)
		}
		if s.BreakStartTime != 0 {
			summary.BreakStartTime = time.Unix(s.BreakStartTime, 0)
		}
		result = append(result, summary)
	}
	return result
}

func screenshotsFromProto(list []*pb.Screenshot) []*ScreenshotInfo {
	result := make([]*ScreenshotInfo, 0, len(list))
	for _, sc := range list {
		result = append(result, &ScreenshotInfo{URL: sc.Url, Timestamp: time.Unix(sc.Timestamp, 0)})
	}
	return result
}
