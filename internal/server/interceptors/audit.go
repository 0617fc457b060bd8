package interceptors

import (
	"context"
	"net"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"contract-mgmt/backend/internal/audit"
)

// Recorder persists one audit entry, best-effort.
type Recorder interface {
	Record(ctx context.Context, e audit.Entry)
}

// AuditUnary records every mutating RPC, successful or not, once the handler returns.
// Only calls with an organization in context are recorded; reads and skipMethods are not.
func AuditUnary(rec Recorder, skipMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if rec == nil || skipMethods[info.FullMethod] {
			return resp, err
		}
		ar := audit.ParseFullMethod(info.FullMethod)
		if !ar.Mutating() {
			return resp, err
		}
		t, _ := TenantFrom(ctx)
		orgID := t.OrgID
		// Handlers that switch or create an organization report the new one back.
		if o, ok := resp.(interface{ AuditOrgID() string }); ok && o.AuditOrgID() != "" {
			orgID = o.AuditOrgID()
		}
		if orgID == "" {
			return resp, err
		}
		rec.Record(ctx, audit.Entry{
			OrgID:    orgID,
			UserID:   t.UserID,
			Action:   ar.Action,
			Resource: ar.Resource,
			Outcome:  status.Code(err).String(),
		})
		return resp, err
	}
}

// ClientIP returns the client IP from gRPC metadata (x-forwarded-for, x-real-ip) or peer, or "unknown".
func ClientIP(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get("x-forwarded-for"); len(vals) > 0 {
			if s := strings.TrimSpace(vals[0]); s != "" {
				if i := strings.Index(s, ","); i > 0 {
					s = strings.TrimSpace(s[:i])
				}
				return s
			}
		}
		if vals := md.Get("x-real-ip"); len(vals) > 0 {
			if s := strings.TrimSpace(vals[0]); s != "" {
				return s
			}
		}
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		if host, _, err := net.SplitHostPort(p.Addr.String()); err == nil {
			return host
		}
		return p.Addr.String()
	}
	return "unknown"
}
