package interceptors

import (
	"context"

	"google.golang.org/grpc"

	"contract-mgmt/backend/internal/identity"
	membershipdomain "contract-mgmt/backend/internal/membership/domain"
	"contract-mgmt/backend/internal/platform/apperr"
	userdomain "contract-mgmt/backend/internal/user/domain"
)

// UserResolver maps a verified subject to an internal user, creating it on first sight.
type UserResolver interface {
	ResolveUser(ctx context.Context, subject, email string) (*userdomain.User, error)
}

// MembershipLister lists a user's memberships oldest first.
type MembershipLister interface {
	List(ctx context.Context, userID string) ([]*membershipdomain.Membership, error)
}

// ActiveOrgResolver picks the membership a request acts within and repairs a stale pointer.
type ActiveOrgResolver interface {
	ResolveActiveOrg(ctx context.Context, userID, storedOrgID string, ms []*membershipdomain.Membership) *membershipdomain.Membership
}

// AttachContextUnary is the Attach Context stage. It runs after AuthUnary and turns the
// verified claims into a Tenant: internal user id, email, and the active organization with
// the caller's role in it. OrgID stays empty for a user without memberships.
// Public methods called without claims pass through untouched.
func AttachContextUnary(extractor *identity.Extractor, users UserResolver, memberships MembershipLister, selector ActiveOrgResolver, publicMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		claims, ok := ClaimsFrom(ctx)
		if !ok {
			if publicMethods[info.FullMethod] {
				return handler(ctx, req)
			}
			return nil, errUnauthenticated
		}
		tenant, err := attach(ctx, extractor, users, memberships, selector, claims)
		if err != nil {
			return nil, apperr.ToStatus(err)
		}
		return handler(WithTenant(ctx, tenant), req)
	}
}

func attach(ctx context.Context, extractor *identity.Extractor, users UserResolver, memberships MembershipLister, selector ActiveOrgResolver, claims identity.Claims) (Tenant, error) {
	caller, err := extractor.Extract(claims)
	if err != nil {
		return Tenant{}, err
	}
	u, err := users.ResolveUser(ctx, caller.Subject, caller.Email)
	if err != nil {
		return Tenant{}, err
	}
	ms, err := memberships.List(ctx, u.ID)
	if err != nil {
		return Tenant{}, err
	}
	t := Tenant{UserID: u.ID, Email: u.Email}
	if m := selector.ResolveActiveOrg(ctx, u.ID, u.ActiveOrgID, ms); m != nil {
		t.OrgID = m.OrgID
		t.Role = m.Role
	}
	return t, nil
}
