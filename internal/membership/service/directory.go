// Package service implements the Membership Directory and the Active-Organization Selector.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"contract-mgmt/backend/internal/membership/domain"
	"contract-mgmt/backend/internal/membership/repository"
	"contract-mgmt/backend/internal/platform/apperr"
	"contract-mgmt/backend/internal/telemetry"
)

// Directory answers who belongs where.
type Directory struct {
	repo   repository.Repository
	events telemetry.Publisher
}

// NewDirectory returns a Directory. events may be nil.
func NewDirectory(repo repository.Repository, events telemetry.Publisher) *Directory {
	if events == nil {
		events = telemetry.NopPublisher{}
	}
	return &Directory{repo: repo, events: events}
}

// List returns userID's memberships in stable order (oldest first).
func (d *Directory) List(ctx context.Context, userID string) ([]*domain.Membership, error) {
	ms, err := d.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Storage("list memberships", err)
	}
	return ms, nil
}

// Get returns the membership for the pair, or (nil, nil) when there is none.
func (d *Directory) Get(ctx context.Context, userID, orgID string) (*domain.Membership, error) {
	m, err := d.repo.GetByUserAndOrg(ctx, userID, orgID)
	if err != nil {
		return nil, apperr.Storage("get membership", err)
	}
	return m, nil
}

// Has reports whether userID belongs to orgID.
func (d *Directory) Has(ctx context.Context, userID, orgID string) (bool, error) {
	m, err := d.Get(ctx, userID, orgID)
	return m != nil, err
}

// Create adds userID to orgID with role. An existing pair fails with DuplicateMembership.
func (d *Directory) Create(ctx context.Context, userID, orgID string, role domain.Role) (*domain.Membership, error) {
	m := &domain.Membership{
		ID:        uuid.NewString(),
		UserID:    userID,
		OrgID:     orgID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := d.repo.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrDuplicateMembership) {
			return nil, apperr.New(apperr.KindDuplicateMembership, "already a member of this organization")
		}
		return nil, apperr.Storage("create membership", err)
	}
	d.events.Publish(ctx, telemetry.NewEvent(telemetry.EventMembershipCreated, orgID, userID, map[string]string{"role": role.String()}))
	return m, nil
}
