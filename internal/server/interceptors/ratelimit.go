package interceptors

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"contract-mgmt/backend/internal/logger"
	"contract-mgmt/backend/internal/ratelimit"
	"contract-mgmt/backend/internal/telemetry"
)

// RateLimitUnary caps calls to limitedMethods per caller. Callers are keyed by user id when
// Attach Context ran, else by client IP. A limiter error lets the call through.
func RateLimitUnary(l ratelimit.Limiter, limitedMethods map[string]bool, m *telemetry.Metrics, log *slog.Logger) grpc.UnaryServerInterceptor {
	log = logger.Component(log, "ratelimit")
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if l == nil || !limitedMethods[info.FullMethod] {
			return handler(ctx, req)
		}
		caller := "ip:" + ClientIP(ctx)
		if id, ok := GetUserID(ctx); ok {
			caller = "user:" + id
		}
		ok, err := l.Allow(ctx, info.FullMethod+"|"+caller)
		if err != nil {
			log.WarnContext(ctx, "rate limiter failed", "method", info.FullMethod, "error", err)
			return handler(ctx, req)
		}
		if !ok {
			m.RateLimited(ctx, info.FullMethod)
			return nil, status.Error(codes.ResourceExhausted, "too many requests")
		}
		return handler(ctx, req)
	}
}
