package interceptors

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"contract-mgmt/backend/internal/identity/verifier"
	"contract-mgmt/backend/internal/logger"
)

const bearerPrefix = "bearer "

var errUnauthenticated = status.Error(codes.Unauthenticated, "missing or invalid authorization")

// AuthUnary is the Authenticate stage. It verifies the Bearer credential from gRPC metadata
// and stores the verified claims in context. publicMethods may be called without a credential;
// a bad credential on a public method is ignored rather than rejected.
func AuthUnary(v verifier.Verifier, publicMethods map[string]bool, log *slog.Logger) grpc.UnaryServerInterceptor {
	log = logger.Component(log, "auth")
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		token := extractBearer(ctx)
		public := publicMethods[info.FullMethod]

		if token == "" {
			if public {
				return handler(ctx, req)
			}
			return nil, errUnauthenticated
		}

		claims, err := v.Verify(ctx, token)
		if err != nil {
			if public {
				return handler(ctx, req)
			}
			if !errors.Is(err, verifier.ErrInvalidCredential) {
				log.WarnContext(ctx, "credential verification failed", "method", info.FullMethod, "error", err)
			}
			return nil, errUnauthenticated
		}

		return handler(WithClaims(ctx, claims), req)
	}
}

// extractBearer returns the Bearer token from ctx metadata, or "" if missing or malformed.
func extractBearer(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}
	v := strings.TrimSpace(vals[0])
	if len(v) < len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
