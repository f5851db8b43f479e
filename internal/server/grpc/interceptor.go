package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/workfolio/internal/common"
	pb "github.com/dmitrijs2005/workfolio/internal/proto"
	"github.com/dmitrijs2005/workfolio/internal/server/auth"
	"github.com/dmitrijs2005/workfolio/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	userIDKey ctxKey = "userID"
	roleKey   ctxKey = "role"
)

// publicMethods do not require an access token.
var publicMethods = map[string]bool{
	pb.WorkfolioService_RegisterUser_FullMethodName: true,
	pb.WorkfolioService_Login_FullMethodName:        true,
	pb.WorkfolioService_RefreshToken_FullMethodName: true,
	pb.WorkfolioService_Ping_FullMethodName:         true,
}

// adminMethods additionally require the admin role.
var adminMethods = map[string]bool{
	pb.WorkfolioService_ListAllSessions_FullMethodName: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !publicMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		claims, err := auth.ParseToken(accessToken, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, "token expired")
			}
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		if adminMethods[info.FullMethod] && claims.Role != models.RoleAdmin {
			return nil, status.Error(codes.PermissionDenied, "admin role required")
		}

		ctx = context.WithValue(ctx, userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, roleKey, claims.Role)

	}

	return handler(ctx, req)
}

func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func roleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}
