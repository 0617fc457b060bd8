// Package repository persists organizations in Postgres through the sqlc query layer.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"contract-mgmt/backend/internal/db"
	"contract-mgmt/backend/internal/db/sqlc/gen"
	membershipdomain "contract-mgmt/backend/internal/membership/domain"
	membershiprepo "contract-mgmt/backend/internal/membership/repository"
	"contract-mgmt/backend/internal/organization/domain"
	userrepo "contract-mgmt/backend/internal/user/repository"
)

type PostgresRepository struct {
	pool    db.Pool
	queries *gen.Queries
	now     func() time.Time
}

// NewPostgresRepository returns an organization repository. It needs a pool, not a transaction,
// because CreateWithOwner opens its own.
func NewPostgresRepository(pool db.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool, queries: gen.New(pool), now: func() time.Time { return time.Now().UTC() }}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	o, err := r.queries.GetOrganization(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return genOrgToDomain(&o), nil
}

func (r *PostgresRepository) CreateWithOwner(ctx context.Context, o *domain.Organization, owner *membershipdomain.Membership) error {
	return db.InTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := gen.New(tx).CreateOrganization(ctx, gen.CreateOrganizationParams{
			ID:           o.ID,
			Name:         o.Name,
			ContactEmail: nullable(o.ContactEmail),
			Phone:        nullable(o.Phone),
			Address:      nullable(o.Address),
			Website:      nullable(o.Website),
			LogoUrl:      nullable(o.LogoURL),
			BrandColor:   nullable(o.BrandColor),
			CreatedAt:    o.CreatedAt,
			UpdatedAt:    o.UpdatedAt,
		}); err != nil {
			return fmt.Errorf("create organization: %w", err)
		}
		if err := membershiprepo.NewPostgresRepository(tx).Create(ctx, owner); err != nil {
			return err
		}
		return userrepo.NewPostgresRepository(tx).SetActiveOrganization(ctx, owner.UserID, o.ID)
	})
}

func (r *PostgresRepository) Update(ctx context.Context, o *domain.Organization) (*domain.Organization, error) {
	row, err := r.queries.UpdateOrganization(ctx, gen.UpdateOrganizationParams{
		ID:           o.ID,
		Name:         o.Name,
		ContactEmail: nullable(o.ContactEmail),
		Phone:        nullable(o.Phone),
		Address:      nullable(o.Address),
		Website:      nullable(o.Website),
		LogoUrl:      nullable(o.LogoURL),
		BrandColor:   nullable(o.BrandColor),
		UpdatedAt:    r.now(),
	})
	if err != nil {
		if db.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update organization: %w", err)
	}
	return genOrgToDomain(&row), nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func genOrgToDomain(o *gen.Organization) *domain.Organization {
	return &domain.Organization{
		ID:           o.ID,
		Name:         o.Name,
		ContactEmail: deref(o.ContactEmail),
		Phone:        deref(o.Phone),
		Address:      deref(o.Address),
		Website:      deref(o.Website),
		LogoURL:      deref(o.LogoUrl),
		BrandColor:   deref(o.BrandColor),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

var _ Repository = (*PostgresRepository)(nil)
