package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/workfolio/internal/common"
	pb "github.com/dmitrijs2005/workfolio/internal/proto"
	"github.com/dmitrijs2005/workfolio/internal/server/auth"
	"github.com/dmitrijs2005/workfolio/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// helper to build server
func newTestServer(secret string) *GRPCServer {
	return &GRPCServer{
		logger:    nopLogger{},
		jwtSecret: []byte(secret),
	}
}

func ctxWithToken(t *testing.T, token string) context.Context {
	t.Helper()
	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: token,
	})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestInterceptor_PublicMethod_AllowsWithoutToken(t *testing.T) {
	s := newTestServer("secret")

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: pb.WorkfolioService_Login_FullMethodName}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_ClockIn_MissingToken(t *testing.T) {
	s := newTestServer("secret")

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: pb.WorkfolioService_ClockIn_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_ClockIn_InvalidToken(t *testing.T) {
	s := newTestServer("secret")

	ctx := ctxWithToken(t, "not-a-valid-jwt")
	info := &grpc.UnaryServerInfo{FullMethod: pb.WorkfolioService_ClockIn_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestInterceptor_ExpiredToken(t *testing.T) {
	secret := "super-secret"
	s := newTestServer(secret)

	token, err := auth.GenerateToken("user-123", models.RoleEmployee, []byte(secret), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	ctx := ctxWithToken(t, token)
	info := &grpc.UnaryServerInfo{FullMethod: pb.WorkfolioService_ClockIn_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for expired token")
		return nil, nil
	}

	_, err = s.accessTokenInterceptor(ctx, nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "token expired" {
		t.Fatalf("expected 'token expired', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_ValidToken_SetsUserIDAndRole(t *testing.T) {
	secret := "super-secret"
	s := newTestServer(secret)

	userID := "user-123"
	token, err := auth.GenerateToken(userID, models.RoleEmployee, []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	ctx := ctxWithToken(t, token)
	info := &grpc.UnaryServerInfo{FullMethod: pb.WorkfolioService_ClockIn_FullMethodName}

	var gotUserID, gotRole string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		gotUserID = userIDFromContext(ctx)
		gotRole = roleFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if gotUserID != userID {
		t.Fatalf("user id not propagated in context: got %v want %v", gotUserID, userID)
	}
	if gotRole != models.RoleEmployee {
		t.Fatalf("role not propagated in context: got %v", gotRole)
	}
}

func TestInterceptor_ListAllSessions_RequiresAdmin(t *testing.T) {
	secret := "super-secret"
	s := newTestServer(secret)
	info := &grpc.UnaryServerInfo{FullMethod: pb.WorkfolioService_ListAllSessions_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	}

	employeeToken, err := auth.GenerateToken("u1", models.RoleEmployee, []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	_, err = s.accessTokenInterceptor(ctxWithToken(t, employeeToken), nil, info, h)
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("employee: expected PermissionDenied, got %v", status.Code(err))
	}

	adminToken, err := auth.GenerateToken("a1", models.RoleAdmin, []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	resp, err := s.accessTokenInterceptor(ctxWithToken(t, adminToken), nil, info, h)
	if err != nil || resp != "ok" {
		t.Fatalf("admin: got (%v, %v)", resp, err)
	}
}
