// Package handler serves MembershipService: listing the caller's organizations and switching between them.
package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	membershipv1 "contract-mgmt/backend/api/membership/v1"
	"contract-mgmt/backend/internal/membership/domain"
	"contract-mgmt/backend/internal/platform/apperr"
	"contract-mgmt/backend/internal/platform/validate"
	"contract-mgmt/backend/internal/server/interceptors"
)

// Lister returns a user's memberships, oldest first.
type Lister interface {
	List(ctx context.Context, userID string) ([]*domain.Membership, error)
}

// Switcher changes the caller's active organization.
type Switcher interface {
	SetActiveOrg(ctx context.Context, userID, orgID string) (*domain.Membership, error)
}

// Server implements membershipv1.MembershipServiceServer.
type Server struct {
	membershipv1.UnimplementedMembershipServiceServer
	lister   Lister
	switcher Switcher
}

// NewServer returns a MembershipService server.
func NewServer(lister Lister, switcher Switcher) *Server {
	return &Server{lister: lister, switcher: switcher}
}

// ListMemberships returns every organization the caller belongs to.
func (s *Server) ListMemberships(ctx context.Context, _ *membershipv1.ListMembershipsRequest) (*membershipv1.ListMembershipsResponse, error) {
	if s.lister == nil {
		return nil, status.Error(codes.Unimplemented, "method ListMemberships not implemented")
	}
	tenant, err := interceptors.CallerTenant(ctx)
	if err != nil {
		return nil, err
	}
	ms, err := s.lister.List(ctx, tenant.UserID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	out := make([]*membershipv1.Membership, len(ms))
	for i, m := range ms {
		out[i] = domainMembershipToAPI(m)
	}
	return &membershipv1.ListMembershipsResponse{Memberships: out, ActiveOrganizationID: tenant.OrgID}, nil
}

// SwitchActiveOrganization points the caller at another organization they belong to.
func (s *Server) SwitchActiveOrganization(ctx context.Context, req *membershipv1.SwitchActiveOrganizationRequest) (*membershipv1.SwitchActiveOrganizationResponse, error) {
	if s.switcher == nil {
		return nil, status.Error(codes.Unimplemented, "method SwitchActiveOrganization not implemented")
	}
	tenant, err := interceptors.CallerTenant(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, apperr.ToStatus(err)
	}
	m, err := s.switcher.SetActiveOrg(ctx, tenant.UserID, req.OrganizationID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &membershipv1.SwitchActiveOrganizationResponse{ActiveOrganizationID: m.OrgID, Role: m.Role.String()}, nil
}

func domainMembershipToAPI(m *domain.Membership) *membershipv1.Membership {
	return &membershipv1.Membership{
		ID:               m.ID,
		UserID:           m.UserID,
		OrganizationID:   m.OrgID,
		OrganizationName: m.OrgName,
		Role:             m.Role.String(),
		CreatedAt:        m.CreatedAt,
	}
}
