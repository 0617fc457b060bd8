// Package server assembles the gRPC server: services, the request gate pipeline and health.
package server

import (
	"log/slog"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "contract-mgmt/backend/api/codec"

	auditv1 "contract-mgmt/backend/api/audit/v1"
	invitationv1 "contract-mgmt/backend/api/invitation/v1"
	membershipv1 "contract-mgmt/backend/api/membership/v1"
	organizationv1 "contract-mgmt/backend/api/organization/v1"
	userv1 "contract-mgmt/backend/api/user/v1"

	audithandler "contract-mgmt/backend/internal/audit/handler"
	healthhandler "contract-mgmt/backend/internal/health/handler"
	"contract-mgmt/backend/internal/identity"
	"contract-mgmt/backend/internal/identity/verifier"
	invitationhandler "contract-mgmt/backend/internal/invitation/handler"
	membershiphandler "contract-mgmt/backend/internal/membership/handler"
	organizationhandler "contract-mgmt/backend/internal/organization/handler"
	"contract-mgmt/backend/internal/ratelimit"
	"contract-mgmt/backend/internal/server/interceptors"
	"contract-mgmt/backend/internal/telemetry"
	userhandler "contract-mgmt/backend/internal/user/handler"
)

// Deps holds the services behind each handler. A nil field makes its RPCs return Unimplemented.
type Deps struct {
	Users            userhandler.Users
	MembershipLister membershiphandler.Lister
	OrgSwitcher      membershiphandler.Switcher
	Organizations    organizationhandler.Organizations
	Invitations      invitationhandler.Invitations
	AuditReader      audithandler.Reader
	// Health serves grpc.health.v1. If nil, a server with no dependency probes is registered.
	Health *healthhandler.Server
}

// RegisterServices registers every service with s.
//
//   - UserService         → internal/user/handler
//   - MembershipService   → internal/membership/handler
//   - OrganizationService → internal/organization/handler
//   - InvitationService   → internal/invitation/handler
//   - AuditService        → internal/audit/handler
//   - grpc.health.v1      → internal/health/handler
func RegisterServices(s grpc.ServiceRegistrar, deps Deps) {
	userv1.RegisterUserServiceServer(s, userhandler.NewServer(deps.Users, deps.MembershipLister))
	membershipv1.RegisterMembershipServiceServer(s, membershiphandler.NewServer(deps.MembershipLister, deps.OrgSwitcher))
	organizationv1.RegisterOrganizationServiceServer(s, organizationhandler.NewServer(deps.Organizations))
	invitationv1.RegisterInvitationServiceServer(s, invitationhandler.NewServer(deps.Invitations))
	auditv1.RegisterAuditServiceServer(s, audithandler.NewServer(deps.AuditReader))
	h := deps.Health
	if h == nil {
		h = healthhandler.NewServer(nil, nil)
	}
	healthpb.RegisterHealthServer(s, h)
}

// PublicMethods may be called without a bearer credential.
func PublicMethods() map[string]bool {
	return map[string]bool{
		healthpb.Health_Check_FullMethodName: true,
		healthpb.Health_Watch_FullMethodName: true,
		healthpb.Health_List_FullMethodName:  true,
	}
}

// OrgRequiredMethods act on tenant-scoped resources and need an active organization.
// Every other authenticated method is org-optional.
func OrgRequiredMethods() map[string]bool {
	return map[string]bool{
		organizationv1.OrganizationService_GetActiveOrganization_FullMethodName: true,
		organizationv1.OrganizationService_UpdateOrganization_FullMethodName:    true,
		invitationv1.InvitationService_CreateInvitation_FullMethodName:          true,
		invitationv1.InvitationService_ListInvitations_FullMethodName:           true,
		invitationv1.InvitationService_RevokeInvitation_FullMethodName:          true,
		auditv1.AuditService_ListAuditLogs_FullMethodName:                       true,
	}
}

// RateLimitedMethods take an invitation token and are capped per caller.
func RateLimitedMethods() map[string]bool {
	return map[string]bool{
		invitationv1.InvitationService_GetInvitation_FullMethodName:    true,
		invitationv1.InvitationService_AcceptInvitation_FullMethodName: true,
	}
}

// Gate holds what the request gate pipeline needs.
type Gate struct {
	Verifier    verifier.Verifier
	Extractor   *identity.Extractor
	Users       interceptors.UserResolver
	Memberships interceptors.MembershipLister
	Selector    interceptors.ActiveOrgResolver
	// Limiter may be nil to disable rate limiting.
	Limiter ratelimit.Limiter
	// Audit may be nil to disable the audit trail.
	Audit   interceptors.Recorder
	Metrics *telemetry.Metrics
	Logger  *slog.Logger
}

// UnaryInterceptors returns the chain in order: telemetry, authenticate, attach context,
// rate limit, require active organization, audit. Telemetry is outermost so it sees every
// rejection; audit is innermost so it only sees calls that reached a handler.
func UnaryInterceptors(g Gate) []grpc.UnaryServerInterceptor {
	public := PublicMethods()
	chain := []grpc.UnaryServerInterceptor{
		interceptors.TelemetryUnary(g.Metrics, g.Logger, public),
		interceptors.AuthUnary(g.Verifier, public, g.Logger),
		interceptors.AttachContextUnary(g.Extractor, g.Users, g.Memberships, g.Selector, public),
	}
	if g.Limiter != nil {
		chain = append(chain, interceptors.RateLimitUnary(g.Limiter, RateLimitedMethods(), g.Metrics, g.Logger))
	}
	chain = append(chain, interceptors.RequireActiveOrgUnary(OrgRequiredMethods()))
	if g.Audit != nil {
		chain = append(chain, interceptors.AuditUnary(g.Audit, nil))
	}
	return chain
}

// NewGRPCServer returns a gRPC server with OTel instrumentation and the gate pipeline installed.
func NewGRPCServer(g Gate, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(UnaryInterceptors(g)...),
	}, opts...)
	return grpc.NewServer(opts...)
}
