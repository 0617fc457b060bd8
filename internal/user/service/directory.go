// Package service implements the User Directory: subject-keyed user resolution and profile edits.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"contract-mgmt/backend/internal/logger"
	"contract-mgmt/backend/internal/platform/apperr"
	"contract-mgmt/backend/internal/telemetry"
	"contract-mgmt/backend/internal/user/domain"
	"contract-mgmt/backend/internal/user/repository"
)

// Directory resolves verified callers to internal users.
type Directory struct {
	repo   repository.Repository
	events telemetry.Publisher
	log    *slog.Logger
	now    func() time.Time
}

// NewDirectory returns a Directory. events may be nil.
func NewDirectory(repo repository.Repository, events telemetry.Publisher, log *slog.Logger) *Directory {
	if events == nil {
		events = telemetry.NopPublisher{}
	}
	return &Directory{
		repo:   repo,
		events: events,
		log:    logger.Component(log, "user.directory"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ResolveUser returns the user for subject, creating it on first sight. Concurrent first requests
// converge on one row: the losing insert hits the subject unique index and re-reads the winner.
// A changed email is written through; the identity provider owns email, never the subject.
func (d *Directory) ResolveUser(ctx context.Context, subject, email string) (*domain.User, error) {
	if subject == "" {
		return nil, apperr.ErrMissingSubject
	}
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, apperr.ErrMissingEmail
	}

	u, err := d.repo.GetBySubject(ctx, subject)
	if err != nil {
		return nil, apperr.Storage("look up user", err)
	}
	if u == nil {
		return d.create(ctx, subject, email)
	}
	if u.Email != email {
		if err := d.repo.UpdateEmail(ctx, u.ID, email); err != nil {
			return nil, apperr.Storage("sync user email", err)
		}
		d.log.InfoContext(ctx, "user email synced from identity provider", "user_id", u.ID)
		u.Email = email
	}
	return u, nil
}

func (d *Directory) create(ctx context.Context, subject, email string) (*domain.User, error) {
	now := d.now()
	u := &domain.User{
		ID:        uuid.NewString(),
		Subject:   subject,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := d.repo.Create(ctx, u)
	if errors.Is(err, repository.ErrDuplicateSubject) {
		existing, getErr := d.repo.GetBySubject(ctx, subject)
		if getErr != nil {
			return nil, apperr.Storage("re-read user after conflict", getErr)
		}
		if existing == nil {
			return nil, apperr.Storage("re-read user after conflict", errors.New("conflicting user row not visible"))
		}
		if existing.Email != email {
			if err := d.repo.UpdateEmail(ctx, existing.ID, email); err != nil {
				return nil, apperr.Storage("sync user email", err)
			}
			existing.Email = email
		}
		return existing, nil
	}
	if err != nil {
		return nil, apperr.Storage("create user", err)
	}
	d.log.InfoContext(ctx, "user created", "user_id", u.ID)
	d.events.Publish(ctx, telemetry.NewEvent(telemetry.EventUserCreated, "", u.ID, nil))
	return u, nil
}

// Get returns the user by id or a NotFound error.
func (d *Directory) Get(ctx context.Context, userID string) (*domain.User, error) {
	u, err := d.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperr.Storage("get user", err)
	}
	if u == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	return u, nil
}

// UpdateProfile applies patch to the caller's profile. Email and subject are not part of the patch.
func (d *Directory) UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.User, error) {
	u, err := d.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return u, nil
	}
	patch.Apply(u)
	updated, err := d.repo.UpdateProfile(ctx, u)
	if err != nil {
		return nil, apperr.Storage("update profile", err)
	}
	if updated == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	return updated, nil
}
