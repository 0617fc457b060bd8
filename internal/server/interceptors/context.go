package interceptors

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"contract-mgmt/backend/internal/identity"
	membershipdomain "contract-mgmt/backend/internal/membership/domain"
)

type contextKey struct{ name string }

var (
	claimsKey = contextKey{"claims"}
	tenantKey = contextKey{"tenant"}
)

// Tenant is the request-scoped result of the Attach Context stage.
// OrgID and Role are empty while the caller has no organization.
type Tenant struct {
	UserID string
	Email  string
	OrgID  string
	Role   membershipdomain.Role
}

// HasOrg reports whether an active organization was resolved.
func (t Tenant) HasOrg() bool { return t.OrgID != "" }

// WithClaims stores verified claims; set by the Authenticate stage.
func WithClaims(ctx context.Context, claims identity.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFrom returns the verified claims and true if the Authenticate stage ran.
func ClaimsFrom(ctx context.Context) (identity.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(identity.Claims)
	return c, ok
}

// WithTenant stores the resolved tenant; set by the Attach Context stage.
func WithTenant(ctx context.Context, t Tenant) context.Context {
	return context.WithValue(ctx, tenantKey, t)
}

// TenantFrom returns the resolved tenant and true if Attach Context ran.
func TenantFrom(ctx context.Context) (Tenant, bool) {
	t, ok := ctx.Value(tenantKey).(Tenant)
	return t, ok
}

// GetUserID returns the internal user id and true if set; otherwise "", false.
func GetUserID(ctx context.Context) (string, bool) {
	t, ok := TenantFrom(ctx)
	if !ok || t.UserID == "" {
		return "", false
	}
	return t.UserID, true
}

// GetOrgID returns the active organization id and true if set; otherwise "", false.
func GetOrgID(ctx context.Context) (string, bool) {
	t, ok := TenantFrom(ctx)
	if !ok || t.OrgID == "" {
		return "", false
	}
	return t.OrgID, true
}

// CallerTenant returns the tenant for handlers, or an Unauthenticated status when the gate did not run.
func CallerTenant(ctx context.Context) (Tenant, error) {
	t, ok := TenantFrom(ctx)
	if !ok || t.UserID == "" {
		return Tenant{}, status.Error(codes.Unauthenticated, "missing or invalid authorization")
	}
	return t, nil
}
