// Package service implements organization creation, lookup and branding updates.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"contract-mgmt/backend/internal/logger"
	membershipdomain "contract-mgmt/backend/internal/membership/domain"
	membershiprepo "contract-mgmt/backend/internal/membership/repository"
	"contract-mgmt/backend/internal/organization/domain"
	"contract-mgmt/backend/internal/organization/repository"
	"contract-mgmt/backend/internal/platform/apperr"
	"contract-mgmt/backend/internal/policy/engine"
	"contract-mgmt/backend/internal/telemetry"
)

// Authorizer checks the caller's role in an organization.
type Authorizer interface {
	RequireOrgAdmin(ctx context.Context, userID, orgID string, action engine.Action) (*membershipdomain.Membership, error)
	RequireOrgMember(ctx context.Context, userID, orgID string) (*membershipdomain.Membership, error)
}

// Service owns organization lifecycle for the tenancy core.
type Service struct {
	repo   repository.Repository
	authz  Authorizer
	events telemetry.Publisher
	log    *slog.Logger
	now    func() time.Time
}

// NewService returns an organization Service. events and log may be nil.
func NewService(repo repository.Repository, authz Authorizer, events telemetry.Publisher, log *slog.Logger) *Service {
	if events == nil {
		events = telemetry.NopPublisher{}
	}
	return &Service{
		repo:   repo,
		authz:  authz,
		events: events,
		log:    logger.Component(log, "organization"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create makes userID the Owner of a new organization and switches them into it. The three writes are atomic.
func (s *Service) Create(ctx context.Context, userID string, in domain.Organization) (*domain.Organization, *membershipdomain.Membership, error) {
	if err := in.Normalize(); err != nil {
		return nil, nil, err
	}
	now := s.now()
	org := in
	org.ID = uuid.NewString()
	org.CreatedAt, org.UpdatedAt = now, now
	owner := &membershipdomain.Membership{
		ID:        uuid.NewString(),
		UserID:    userID,
		OrgID:     org.ID,
		OrgName:   org.Name,
		Role:      membershipdomain.RoleOwner,
		CreatedAt: now,
	}
	if err := s.repo.CreateWithOwner(ctx, &org, owner); err != nil {
		if errors.Is(err, membershiprepo.ErrDuplicateMembership) {
			return nil, nil, apperr.New(apperr.KindDuplicateMembership, "already a member of this organization")
		}
		return nil, nil, apperr.Storage("create organization", err)
	}
	s.log.InfoContext(ctx, "organization created", "org_id", org.ID, "user_id", userID)
	s.events.Publish(ctx, telemetry.NewEvent(telemetry.EventOrganizationCreated, org.ID, userID, map[string]string{"name": org.Name}))
	s.events.Publish(ctx, telemetry.NewEvent(telemetry.EventMembershipCreated, org.ID, userID, map[string]string{"role": owner.Role.String()}))
	s.events.Publish(ctx, telemetry.NewEvent(telemetry.EventActiveOrgChanged, org.ID, userID, map[string]string{"reason": "create"}))
	return &org, owner, nil
}

// Get returns orgID with the caller's membership. Any role may read.
func (s *Service) Get(ctx context.Context, userID, orgID string) (*domain.Organization, *membershipdomain.Membership, error) {
	m, err := s.authz.RequireOrgMember(ctx, userID, orgID)
	if err != nil {
		return nil, nil, err
	}
	org, err := s.load(ctx, orgID)
	if err != nil {
		return nil, nil, err
	}
	return org, m, nil
}

// Update applies patch to orgID. The caller must be allowed organization.update there.
func (s *Service) Update(ctx context.Context, userID, orgID string, patch domain.Patch) (*domain.Organization, error) {
	if _, err := s.authz.RequireOrgAdmin(ctx, userID, orgID, engine.ActionOrganizationUpdate); err != nil {
		return nil, err
	}
	org, err := s.load(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return org, nil
	}
	if err := patch.Apply(org); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, org)
	if err != nil {
		return nil, apperr.Storage("update organization", err)
	}
	if updated == nil {
		return nil, apperr.New(apperr.KindNotFound, "organization not found")
	}
	return updated, nil
}

func (s *Service) load(ctx context.Context, orgID string) (*domain.Organization, error) {
	org, err := s.repo.GetByID(ctx, orgID)
	if err != nil {
		return nil, apperr.Storage("get organization", err)
	}
	if org == nil {
		return nil, apperr.New(apperr.KindNotFound, "organization not found")
	}
	return org, nil
}
