// Package handler serves OrganizationService.
package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	organizationv1 "contract-mgmt/backend/api/organization/v1"
	membershipdomain "contract-mgmt/backend/internal/membership/domain"
	"contract-mgmt/backend/internal/organization/domain"
	"contract-mgmt/backend/internal/platform/apperr"
	"contract-mgmt/backend/internal/platform/validate"
	"contract-mgmt/backend/internal/server/interceptors"
)

// Organizations is the organization service as seen by the handler.
type Organizations interface {
	Create(ctx context.Context, userID string, in domain.Organization) (*domain.Organization, *membershipdomain.Membership, error)
	Get(ctx context.Context, userID, orgID string) (*domain.Organization, *membershipdomain.Membership, error)
	Update(ctx context.Context, userID, orgID string, patch domain.Patch) (*domain.Organization, error)
}

// Server implements organizationv1.OrganizationServiceServer.
type Server struct {
	organizationv1.UnimplementedOrganizationServiceServer
	orgs Organizations
}

// NewServer returns an OrganizationService server. With nil orgs every RPC returns Unimplemented.
func NewServer(orgs Organizations) *Server {
	return &Server{orgs: orgs}
}

// CreateOrganization is reachable without an active organization; it is how onboarding ends.
func (s *Server) CreateOrganization(ctx context.Context, req *organizationv1.CreateOrganizationRequest) (*organizationv1.CreateOrganizationResponse, error) {
	if s.orgs == nil {
		return nil, status.Error(codes.Unimplemented, "method CreateOrganization not implemented")
	}
	tenant, err := interceptors.CallerTenant(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, apperr.ToStatus(err)
	}
	org, m, err := s.orgs.Create(ctx, tenant.UserID, domain.Organization{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Address:      req.Address,
		Website:      req.Website,
		LogoURL:      req.LogoURL,
		BrandColor:   req.BrandColor,
	})
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &organizationv1.CreateOrganizationResponse{Organization: domainOrgToAPI(org), Role: m.Role.String()}, nil
}

// GetActiveOrganization returns the organization the request is scoped to.
func (s *Server) GetActiveOrganization(ctx context.Context, _ *organizationv1.GetActiveOrganizationRequest) (*organizationv1.GetActiveOrganizationResponse, error) {
	if s.orgs == nil {
		return nil, status.Error(codes.Unimplemented, "method GetActiveOrganization not implemented")
	}
	tenant, err := interceptors.CallerTenant(ctx)
	if err != nil {
		return nil, err
	}
	if !tenant.HasOrg() {
		return nil, apperr.ToStatus(apperr.ErrOrganizationRequired)
	}
	org, m, err := s.orgs.Get(ctx, tenant.UserID, tenant.OrgID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &organizationv1.GetActiveOrganizationResponse{Organization: domainOrgToAPI(org), Role: m.Role.String()}, nil
}

// UpdateOrganization patches the named organization, defaulting to the active one.
func (s *Server) UpdateOrganization(ctx context.Context, req *organizationv1.UpdateOrganizationRequest) (*organizationv1.UpdateOrganizationResponse, error) {
	if s.orgs == nil {
		return nil, status.Error(codes.Unimplemented, "method UpdateOrganization not implemented")
	}
	tenant, err := interceptors.CallerTenant(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, apperr.ToStatus(err)
	}
	orgID := req.OrganizationID
	if orgID == "" {
		orgID = tenant.OrgID
	}
	org, err := s.orgs.Update(ctx, tenant.UserID, orgID, domain.Patch{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Address:      req.Address,
		Website:      req.Website,
		LogoURL:      req.LogoURL,
		BrandColor:   req.BrandColor,
	})
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &organizationv1.UpdateOrganizationResponse{Organization: domainOrgToAPI(org)}, nil
}

func domainOrgToAPI(o *domain.Organization) *organizationv1.Organization {
	return &organizationv1.Organization{
		ID:           o.ID,
		Name:         o.Name,
		ContactEmail: o.ContactEmail,
		Phone:        o.Phone,
		Address:      o.Address,
		Website:      o.Website,
		LogoURL:      o.LogoURL,
		BrandColor:   o.BrandColor,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
