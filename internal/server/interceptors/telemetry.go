package interceptors

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"contract-mgmt/backend/internal/logger"
	"contract-mgmt/backend/internal/telemetry"
)

// TelemetryUnary counts every RPC by method and status code and writes one access log line.
// Internal errors are logged at error level with the underlying cause, which clients never see.
// skipMethods (e.g. health checks) are neither counted nor logged. m and log may be nil.
func TelemetryUnary(m *telemetry.Metrics, log *slog.Logger, skipMethods map[string]bool) grpc.UnaryServerInterceptor {
	log = logger.Component(log, "grpc")
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if skipMethods[info.FullMethod] {
			return resp, err
		}
		code := status.Code(err)
		m.RPC(ctx, info.FullMethod, code.String())

		attrs := []any{
			"method", info.FullMethod,
			"code", code.String(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", ClientIP(ctx),
		}
		if t, ok := TenantFrom(ctx); ok {
			attrs = append(attrs, "user_id", t.UserID, "org_id", t.OrgID)
		}
		switch code {
		case codes.OK:
			log.DebugContext(ctx, "rpc", attrs...)
		case codes.Internal, codes.Unknown:
			log.ErrorContext(ctx, "rpc", append(attrs, "error", err)...)
		default:
			log.InfoContext(ctx, "rpc", attrs...)
		}
		return resp, err
	}
}
