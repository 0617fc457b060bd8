// Package repository persists users in Postgres through the sqlc query layer.
package repository

import (
	"context"
	"fmt"
	"time"

	"contract-mgmt/backend/internal/db"
	"contract-mgmt/backend/internal/db/sqlc/gen"
	"contract-mgmt/backend/internal/user/domain"
)

type PostgresRepository struct {
	queries *gen.Queries
	now     func() time.Time
}

// NewPostgresRepository returns a user repository over q, which may be a pool or a transaction.
func NewPostgresRepository(q gen.DBTX) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(q), now: func() time.Time { return time.Now().UTC() }}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := r.queries.GetUser(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return genUserToDomain(&u), nil
}

func (r *PostgresRepository) GetBySubject(ctx context.Context, subject string) (*domain.User, error) {
	u, err := r.queries.GetUserBySubject(ctx, subject)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by subject: %w", err)
	}
	return genUserToDomain(&u), nil
}

// Create maps a unique violation on subject to ErrDuplicateSubject so callers can re-fetch.
func (r *PostgresRepository) Create(ctx context.Context, u *domain.User) error {
	created, err := r.queries.CreateUser(ctx, gen.CreateUserParams{
		ID:        u.ID,
		Subject:   u.Subject,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrDuplicateSubject
		}
		return fmt.Errorf("create user: %w", err)
	}
	*u = *genUserToDomain(&created)
	return nil
}

func (r *PostgresRepository) UpdateEmail(ctx context.Context, id, email string) error {
	if _, err := r.queries.UpdateUserEmail(ctx, gen.UpdateUserEmailParams{ID: id, Email: email, UpdatedAt: r.now()}); err != nil {
		return fmt.Errorf("update user email: %w", err)
	}
	return nil
}

// UpdateProfile writes the profile fields of u and returns the stored row, or nil if u.ID is unknown.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, u *domain.User) (*domain.User, error) {
	updated, err := r.queries.UpdateUserProfile(ctx, gen.UpdateUserProfileParams{
		ID:        u.ID,
		Name:      nullable(u.Name),
		Phone:     nullable(u.Phone),
		Locale:    nullable(u.Locale),
		Bio:       nullable(u.Bio),
		Address:   nullable(u.Address),
		UpdatedAt: r.now(),
	})
	if err != nil {
		if db.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update user profile: %w", err)
	}
	return genUserToDomain(&updated), nil
}

func (r *PostgresRepository) SetActiveOrganization(ctx context.Context, userID, orgID string) error {
	if _, err := r.queries.SetActiveOrganization(ctx, gen.SetActiveOrganizationParams{
		ID:                   userID,
		ActiveOrganizationID: nullable(orgID),
		UpdatedAt:            r.now(),
	}); err != nil {
		return fmt.Errorf("set active organization: %w", err)
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func genUserToDomain(u *gen.User) *domain.User {
	return &domain.User{
		ID:          u.ID,
		Subject:     u.Subject,
		Email:       u.Email,
		Name:        deref(u.Name),
		Phone:       deref(u.Phone),
		Locale:      deref(u.Locale),
		Bio:         deref(u.Bio),
		Address:     deref(u.Address),
		ActiveOrgID: deref(u.ActiveOrganizationID),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

var _ Repository = (*PostgresRepository)(nil)
