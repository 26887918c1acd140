package auth

import (
	"context"
	"strings"
	"team-chat/errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const userIDKey contextKey = "user_id"

// WithUserID returns a context carrying the authenticated user.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the user injected by the interceptors.
func UserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", errors.ErrUnauthenticated
	}
	return userID, nil
}

// Interceptor validates "authorization: Bearer <jwt>" on every call except
// the public methods, and injects the user id into the context.
type Interceptor struct {
	issuer        TokenIssuer
	publicMethods map[string]struct{}
}

func NewInterceptor(issuer TokenIssuer, publicMethods ...string) Interceptor {
	public := make(map[string]struct{}, len(publicMethods))
	for _, m := range publicMethods {
		public[m] = struct{}{}
	}
	return Interceptor{issuer: issuer, publicMethods: public}
}

func (i Interceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if i.isPublic(info.FullMethod) {
			return handler(ctx, req)
		}
		authCtx, err := i.authenticate(ctx)
		if err != nil {
			return nil, err
		}
		return handler(authCtx, req)
	}
}

func (i Interceptor) Stream() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if i.isPublic(info.FullMethod) {
			return handler(srv, ss)
		}
		authCtx, err := i.authenticate(ss.Context())
		if err != nil {
			return err
		}
		return handler(srv, &authenticatedStream{ServerStream: ss, ctx: authCtx})
	}
}

func (i Interceptor) authenticate(ctx context.Context) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "metadata is missing")
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
	}
	claims, err := i.issuer.Validate(strings.TrimPrefix(values[0], "Bearer "))
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}
	return WithUserID(ctx, claims.UserID), nil
}

func (i Interceptor) isPublic(method string) bool {
	_, ok := i.publicMethods[method]
	return ok
}

type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedStream) Context() context.Context {
	return s.ctx
}
