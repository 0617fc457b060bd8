// Package service implements the invitation lifecycle: create, inspect, accept and revoke.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"contract-mgmt/backend/internal/invitation/domain"
	"contract-mgmt/backend/internal/invitation/repository"
	"contract-mgmt/backend/internal/logger"
	membershipdomain "contract-mgmt/backend/internal/membership/domain"
	organizationdomain "contract-mgmt/backend/internal/organization/domain"
	"contract-mgmt/backend/internal/platform/apperr"
	"contract-mgmt/backend/internal/policy/engine"
	"contract-mgmt/backend/internal/security"
	"contract-mgmt/backend/internal/telemetry"
	userdomain "contract-mgmt/backend/internal/user/domain"
)

// Authorizer checks that the caller may manage invitations in an organization.
type Authorizer interface {
	RequireOrgAdmin(ctx context.Context, userID, orgID string, action engine.Action) (*membershipdomain.Membership, error)
}

// OrgLookup loads organization display fields. It returns (nil, nil) for unknown ids.
type OrgLookup interface {
	GetByID(ctx context.Context, id string) (*organizationdomain.Organization, error)
}

// MembershipGetter reads the membership a re-accept kept.
type MembershipGetter interface {
	Get(ctx context.Context, userID, orgID string) (*membershipdomain.Membership, error)
}

// Options carries the optional collaborators of Service.
type Options struct {
	// TTL defaults to domain.DefaultTTL.
	TTL     time.Duration
	Events  telemetry.Publisher
	Metrics *telemetry.Metrics
	Logger  *slog.Logger
}

// Service is the invitation lifecycle manager.
type Service struct {
	repo        repository.Repository
	orgs        OrgLookup
	memberships MembershipGetter
	authz       Authorizer
	ttl         time.Duration
	events      telemetry.Publisher
	metrics     *telemetry.Metrics
	log         *slog.Logger
	now         func() time.Time
	newToken    func() (token, hash string, err error)
}

// NewService returns an invitation Service.
func NewService(repo repository.Repository, orgs OrgLookup, memberships MembershipGetter, authz Authorizer, opts Options) *Service {
	if opts.TTL <= 0 {
		opts.TTL = domain.DefaultTTL
	}
	if opts.Events == nil {
		opts.Events = telemetry.NopPublisher{}
	}
	return &Service{
		repo:        repo,
		orgs:        orgs,
		memberships: memberships,
		authz:       authz,
		ttl:         opts.TTL,
		events:      opts.Events,
		metrics:     opts.Metrics,
		log:         logger.Component(opts.Logger, "invitation"),
		now:         func() time.Time { return time.Now().UTC() },
		newToken:    security.NewInviteToken,
	}
}

// AcceptResult describes a successful acceptance.
type AcceptResult struct {
	Invitation *domain.Invitation
	Membership *membershipdomain.Membership
	// AlreadyMember is true when the caller belonged to the organization before accepting.
	AlreadyMember bool
}

// Create issues an invitation for email to join orgID with role. Any pending invitation for the same
// address in orgID is revoked in the same write. The returned token is the only copy.
func (s *Service) Create(ctx context.Context, inviterID, orgID, email, role string) (*domain.Invitation, string, error) {
	if _, err := s.authz.RequireOrgAdmin(ctx, inviterID, orgID, engine.ActionInvitationCreate); err != nil {
		return nil, "", err
	}
	email = userdomain.NormalizeEmail(email)
	if email == "" {
		return nil, "", apperr.New(apperr.KindInvalidArgument, "email is required")
	}
	r, err := domain.ParseRole(role)
	if err != nil {
		return nil, "", err
	}
	token, hash, err := s.newToken()
	if err != nil {
		return nil, "", apperr.Storage("generate invite token", err)
	}
	now := s.now()
	inv := &domain.Invitation{
		ID:              uuid.NewString(),
		OrgID:           orgID,
		Email:           email,
		Role:            r,
		TokenHash:       hash,
		Status:          domain.StatusPending,
		ExpiresAt:       now.Add(s.ttl),
		CreatedByUserID: inviterID,
		CreatedAt:       now,
	}
	superseded, err := s.repo.CreateSuperseding(ctx, inv)
	if err != nil {
		return nil, "", apperr.Storage("create invitation", err)
	}
	s.decorate(ctx, inv)

	s.metrics.Invitation(ctx, "created")
	s.events.Publish(ctx, telemetry.NewEvent(telemetry.EventInvitationCreated, orgID, inviterID, map[string]string{
		"invitation_id": inv.ID,
		"role":          r.String(),
	}))
	if superseded > 0 {
		s.metrics.Invitation(ctx, "superseded")
		s.log.InfoContext(ctx, "pending invitations superseded", "org_id", orgID, "count", superseded)
	}
	return inv, token, nil
}

// Get returns the invitation for token with organization display fields. A pending invitation past its
// deadline is persisted as expired first and reported as such; expiry is not an error here.
func (s *Service) Get(ctx context.Context, token string) (*domain.Invitation, error) {
	inv, err := s.lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	if inv, err = s.expireIfDue(ctx, inv); err != nil {
		return nil, err
	}
	s.decorate(ctx, inv)
	return inv, nil
}

// Accept consumes the invitation for token on behalf of the caller. Checks run in order: existence,
// expiry, pending status, email binding. The acceptance, membership and active pointer are one write.
func (s *Service) Accept(ctx context.Context, token, userID, callerEmail string) (*AcceptResult, error) {
	inv, err := s.lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	if inv, err = s.expireIfDue(ctx, inv); err != nil {
		return nil, err
	}
	if inv.Status == domain.StatusExpired {
		return nil, apperr.ErrInviteExpired
	}
	if !domain.CanTransition(inv.Status, domain.StatusAccepted) {
		return nil, apperr.ErrInviteNotPending
	}
	if userdomain.NormalizeEmail(callerEmail) != inv.Email {
		s.log.WarnContext(ctx, "invitation email mismatch", "invitation_id", inv.ID, "user_id", userID)
		return nil, apperr.ErrEmailMismatch
	}

	now := s.now()
	m := &membershipdomain.Membership{
		ID:        uuid.NewString(),
		UserID:    userID,
		OrgID:     inv.OrgID,
		Role:      inv.Role,
		CreatedAt: now,
	}
	created, err := s.repo.Accept(ctx, inv, m, now)
	if err != nil {
		if errors.Is(err, repository.ErrNotPending) {
			return nil, s.raceLoss(ctx, inv.ID)
		}
		return nil, apperr.Storage("accept invitation", err)
	}

	inv.Status = domain.StatusAccepted
	inv.AcceptedByUserID = userID
	inv.AcceptedAt = &now
	s.decorate(ctx, inv)
	m.OrgName = inv.OrgName

	if !created {
		// The acceptance is committed; a failed read only loses the stored membership's details.
		existing, err := s.memberships.Get(ctx, userID, inv.OrgID)
		if err != nil {
			s.log.WarnContext(ctx, "membership lookup after accept failed", "org_id", inv.OrgID, "user_id", userID, "error", err)
		} else if existing != nil {
			m = existing
		}
	}

	s.metrics.Invitation(ctx, "accepted")
	s.events.Publish(ctx, telemetry.NewEvent(telemetry.EventInvitationAccepted, inv.OrgID, userID, map[string]string{"invitation_id": inv.ID}))
	if created {
		s.events.Publish(ctx, telemetry.NewEvent(telemetry.EventMembershipCreated, inv.OrgID, userID, map[string]string{"role": m.Role.String()}))
	}
	s.events.Publish(ctx, telemetry.NewEvent(telemetry.EventActiveOrgChanged, inv.OrgID, userID, map[string]string{"reason": "invitation"}))
	return &AcceptResult{Invitation: inv, Membership: m, AlreadyMember: !created}, nil
}

// Revoke cancels a pending invitation of orgID. Invitations of other organizations are NotFound.
func (s *Service) Revoke(ctx context.Context, userID, orgID, invitationID string) (*domain.Invitation, error) {
	if _, err := s.authz.RequireOrgAdmin(ctx, userID, orgID, engine.ActionInvitationRevoke); err != nil {
		return nil, err
	}
	inv, err := s.repo.GetByID(ctx, invitationID)
	if err != nil {
		return nil, apperr.Storage("get invitation", err)
	}
	if inv == nil || inv.OrgID != orgID {
		return nil, apperr.New(apperr.KindNotFound, "invite not found")
	}
	if inv, err = s.expireIfDue(ctx, inv); err != nil {
		return nil, err
	}
	if !domain.CanTransition(inv.Status, domain.StatusRevoked) {
		return nil, apperr.ErrInviteNotPending
	}
	now := s.now()
	ok, err := s.repo.Revoke(ctx, inv.ID, orgID, now)
	if err != nil {
		return nil, apperr.Storage("revoke invitation", err)
	}
	if !ok {
		return nil, apperr.ErrInviteNotPending
	}
	inv.Status = domain.StatusRevoked
	inv.RevokedAt = &now
	s.decorate(ctx, inv)

	s.metrics.Invitation(ctx, "revoked")
	s.events.Publish(ctx, telemetry.NewEvent(telemetry.EventInvitationRevoked, orgID, userID, map[string]string{"invitation_id": inv.ID}))
	return inv, nil
}

// List returns orgID's invitations newest first, with lazy expiry applied to the reported status only.
func (s *Service) List(ctx context.Context, userID, orgID string) ([]*domain.Invitation, error) {
	if _, err := s.authz.RequireOrgAdmin(ctx, userID, orgID, engine.ActionInvitationList); err != nil {
		return nil, err
	}
	invs, err := s.repo.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, apperr.Storage("list invitations", err)
	}
	now := s.now()
	for _, inv := range invs {
		inv.Status = inv.EffectiveStatus(now)
	}
	return invs, nil
}

func (s *Service) lookup(ctx context.Context, token string) (*domain.Invitation, error) {
	if token == "" {
		return nil, apperr.New(apperr.KindNotFound, "invite not found")
	}
	inv, err := s.repo.GetByTokenHash(ctx, security.HashInviteToken(token))
	if err != nil {
		return nil, apperr.Storage("get invitation", err)
	}
	if inv == nil {
		return nil, apperr.New(apperr.KindNotFound, "invite not found")
	}
	return inv, nil
}

// expireIfDue persists lazy expiry. When the conditional write loses to another transition the row
// is re-read so the caller sees the state that won.
func (s *Service) expireIfDue(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error) {
	now := s.now()
	if !inv.DueToExpire(now) {
		return inv, nil
	}
	ok, err := s.repo.MarkExpired(ctx, inv.ID, now)
	if err != nil {
		return nil, apperr.Storage("expire invitation", err)
	}
	if !ok {
		fresh, err := s.repo.GetByID(ctx, inv.ID)
		if err != nil {
			return nil, apperr.Storage("get invitation", err)
		}
		if fresh == nil {
			return nil, apperr.New(apperr.KindNotFound, "invite not found")
		}
		fresh.Status = fresh.EffectiveStatus(now)
		return fresh, nil
	}
	inv.Status = domain.StatusExpired
	s.metrics.Invitation(ctx, "expired")
	s.events.Publish(ctx, telemetry.NewEvent(telemetry.EventInvitationExpired, inv.OrgID, "", map[string]string{"invitation_id": inv.ID}))
	return inv, nil
}

// raceLoss explains why a conditional accept matched nothing.
func (s *Service) raceLoss(ctx context.Context, id string) error {
	fresh, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperr.Storage("get invitation", err)
	}
	if fresh != nil && fresh.EffectiveStatus(s.now()) == domain.StatusExpired {
		return apperr.ErrInviteExpired
	}
	return apperr.ErrInviteNotPending
}

// decorate fills organization display fields. A failed lookup only loses the decoration.
func (s *Service) decorate(ctx context.Context, inv *domain.Invitation) {
	if s.orgs == nil {
		return
	}
	org, err := s.orgs.GetByID(ctx, inv.OrgID)
	if err != nil {
		s.log.WarnContext(ctx, "organization lookup for invitation failed", "org_id", inv.OrgID, "error", err)
		return
	}
	if org != nil {
		inv.OrgName = org.Name
		inv.OrgLogoURL = org.LogoURL
	}
}
