// Package handler serves UserService: the caller's own profile and organizations.
package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	userv1 "contract-mgmt/backend/api/user/v1"
	membershipdomain "contract-mgmt/backend/internal/membership/domain"
	"contract-mgmt/backend/internal/platform/apperr"
	"contract-mgmt/backend/internal/platform/validate"
	"contract-mgmt/backend/internal/server/interceptors"
	"contract-mgmt/backend/internal/user/domain"
)

// Users is the part of the User Directory the handler needs.
type Users interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.User, error)
}

// MembershipLister lists the caller's organizations.
type MembershipLister interface {
	List(ctx context.Context, userID string) ([]*membershipdomain.Membership, error)
}

// Server implements userv1.UserServiceServer. Both RPCs are reachable without an active organization.
type Server struct {
	userv1.UnimplementedUserServiceServer
	users       Users
	memberships MembershipLister
}

// NewServer returns a UserService server. With nil users every RPC returns Unimplemented.
func NewServer(users Users, memberships MembershipLister) *Server {
	return &Server{users: users, memberships: memberships}
}

// GetMe returns the caller's profile, organizations with roles, and the active organization.
func (s *Server) GetMe(ctx context.Context, _ *userv1.GetMeRequest) (*userv1.GetMeResponse, error) {
	if s.users == nil || s.memberships == nil {
		return nil, status.Error(codes.Unimplemented, "method GetMe not implemented")
	}
	tenant, err := interceptors.CallerTenant(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.users.Get(ctx, tenant.UserID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	ms, err := s.memberships.List(ctx, tenant.UserID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	orgs := make([]*userv1.OrganizationRole, len(ms))
	for i, m := range ms {
		orgs[i] = &userv1.OrganizationRole{OrganizationID: m.OrgID, OrganizationName: m.OrgName, Role: m.Role.String()}
	}
	// The tenant carries the repaired pointer; the row read above may predate the repair.
	u.ActiveOrgID = tenant.OrgID
	return &userv1.GetMeResponse{
		User:                 domainUserToAPI(u),
		Organizations:        orgs,
		ActiveOrganizationID: tenant.OrgID,
	}, nil
}

// UpdateProfile patches the caller's profile fields.
func (s *Server) UpdateProfile(ctx context.Context, req *userv1.UpdateProfileRequest) (*userv1.UpdateProfileResponse, error) {
	if s.users == nil {
		return nil, status.Error(codes.Unimplemented, "method UpdateProfile not implemented")
	}
	tenant, err := interceptors.CallerTenant(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, apperr.ToStatus(err)
	}
	u, err := s.users.UpdateProfile(ctx, tenant.UserID, domain.ProfilePatch{
		Name:    req.Name,
		Phone:   req.Phone,
		Locale:  req.Locale,
		Bio:     req.Bio,
		Address: req.Address,
	})
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &userv1.UpdateProfileResponse{User: domainUserToAPI(u)}, nil
}

func domainUserToAPI(u *domain.User) *userv1.User {
	if u == nil {
		return nil
	}
	return &userv1.User{
		ID:                   u.ID,
		Email:                u.Email,
		Name:                 u.Name,
		Phone:                u.Phone,
		Locale:               u.Locale,
		Bio:                  u.Bio,
		Address:              u.Address,
		ActiveOrganizationID: u.ActiveOrgID,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	}
}
