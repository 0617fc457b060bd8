package interceptors

import (
	"context"

	"google.golang.org/grpc"

	"contract-mgmt/backend/internal/platform/apperr"
)

// RequireActiveOrgUnary is the Require Active Organization stage. For methods in orgRequired
// it rejects a tenant without an active organization with the ORG_REQUIRED reason.
// Other methods pass through, so org-optional routes share the first two stages.
func RequireActiveOrgUnary(orgRequired map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !orgRequired[info.FullMethod] {
			return handler(ctx, req)
		}
		t, ok := TenantFrom(ctx)
		if !ok || t.UserID == "" {
			return nil, errUnauthenticated
		}
		if !t.HasOrg() {
			return nil, apperr.ToStatus(apperr.ErrOrganizationRequired)
		}
		return handler(ctx, req)
	}
}
