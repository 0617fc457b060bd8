// Package handler serves InvitationService.
package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	invitationv1 "contract-mgmt/backend/api/invitation/v1"
	"contract-mgmt/backend/internal/invitation/domain"
	"contract-mgmt/backend/internal/invitation/service"
	"contract-mgmt/backend/internal/platform/apperr"
	"contract-mgmt/backend/internal/platform/validate"
	"contract-mgmt/backend/internal/server/interceptors"
)

// Invitations is the lifecycle manager as seen by the handler.
type Invitations interface {
	Create(ctx context.Context, inviterID, orgID, email, role string) (*domain.Invitation, string, error)
	Get(ctx context.Context, token string) (*domain.Invitation, error)
	Accept(ctx context.Context, token, userID, callerEmail string) (*service.AcceptResult, error)
	Revoke(ctx context.Context, userID, orgID, invitationID string) (*domain.Invitation, error)
	List(ctx context.Context, userID, orgID string) ([]*domain.Invitation, error)
}

// Server implements invitationv1.InvitationServiceServer.
type Server struct {
	invitationv1.UnimplementedInvitationServiceServer
	invitations Invitations
}

// NewServer returns an InvitationService server.
func NewServer(invitations Invitations) *Server {
	return &Server{invitations: invitations}
}

// CreateInvitation invites an email to the named organization, defaulting to the active one.
func (s *Server) CreateInvitation(ctx context.Context, req *invitationv1.CreateInvitationRequest) (*invitationv1.CreateInvitationResponse, error) {
	if s.invitations == nil {
		return nil, status.Error(codes.Unimplemented, "method CreateInvitation not implemented")
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
	inv, token, err := s.invitations.Create(ctx, tenant.UserID, orgID, req.Email, req.Role)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &invitationv1.CreateInvitationResponse{Invitation: domainInvitationToAPI(inv), Token: token}, nil
}

// ListInvitations lists the active organization's invitations.
func (s *Server) ListInvitations(ctx context.Context, _ *invitationv1.ListInvitationsRequest) (*invitationv1.ListInvitationsResponse, error) {
	if s.invitations == nil {
		return nil, status.Error(codes.Unimplemented, "method ListInvitations not implemented")
	}
	tenant, err := interceptors.CallerTenant(ctx)
	if err != nil {
		return nil, err
	}
	invs, err := s.invitations.List(ctx, tenant.UserID, tenant.OrgID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	out := make([]*invitationv1.Invitation, len(invs))
	for i, inv := range invs {
		out[i] = domainInvitationToAPI(inv)
	}
	return &invitationv1.ListInvitationsResponse{Invitations: out}, nil
}

// RevokeInvitation cancels a pending invitation of the active organization.
func (s *Server) RevokeInvitation(ctx context.Context, req *invitationv1.RevokeInvitationRequest) (*invitationv1.RevokeInvitationResponse, error) {
	if s.invitations == nil {
		return nil, status.Error(codes.Unimplemented, "method RevokeInvitation not implemented")
	}
	tenant, err := interceptors.CallerTenant(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, apperr.ToStatus(err)
	}
	inv, err := s.invitations.Revoke(ctx, tenant.UserID, tenant.OrgID, req.InvitationID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &invitationv1.RevokeInvitationResponse{Invitation: domainInvitationToAPI(inv)}, nil
}

// GetInvitation previews an invitation by token. Expired invitations are returned with status expired.
func (s *Server) GetInvitation(ctx context.Context, req *invitationv1.GetInvitationRequest) (*invitationv1.GetInvitationResponse, error) {
	if s.invitations == nil {
		return nil, status.Error(codes.Unimplemented, "method GetInvitation not implemented")
	}
	if _, err := interceptors.CallerTenant(ctx); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, apperr.ToStatus(err)
	}
	inv, err := s.invitations.Get(ctx, req.Token)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &invitationv1.GetInvitationResponse{Invitation: domainInvitationToAPI(inv)}, nil
}

// AcceptInvitation joins the caller to the invitation's organization and makes it active.
func (s *Server) AcceptInvitation(ctx context.Context, req *invitationv1.AcceptInvitationRequest) (*invitationv1.AcceptInvitationResponse, error) {
	if s.invitations == nil {
		return nil, status.Error(codes.Unimplemented, "method AcceptInvitation not implemented")
	}
	tenant, err := interceptors.CallerTenant(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, apperr.ToStatus(err)
	}
	res, err := s.invitations.Accept(ctx, req.Token, tenant.UserID, tenant.Email)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &invitationv1.AcceptInvitationResponse{
		Invitation:           domainInvitationToAPI(res.Invitation),
		ActiveOrganizationID: res.Invitation.OrgID,
		Role:                 res.Membership.Role.String(),
		AlreadyMember:        res.AlreadyMember,
	}, nil
}

func domainInvitationToAPI(inv *domain.Invitation) *invitationv1.Invitation {
	return &invitationv1.Invitation{
		ID:                  inv.ID,
		OrganizationID:      inv.OrgID,
		OrganizationName:    inv.OrgName,
		OrganizationLogoURL: inv.OrgLogoURL,
		Email:               inv.Email,
		Role:                inv.Role.String(),
		Status:              string(inv.Status),
		ExpiresAt:           inv.ExpiresAt,
		CreatedByUserID:     inv.CreatedByUserID,
		AcceptedByUserID:    inv.AcceptedByUserID,
		AcceptedAt:          inv.AcceptedAt,
		RevokedAt:           inv.RevokedAt,
		CreatedAt:           inv.CreatedAt,
	}
}
