// Package repository persists memberships in Postgres through the sqlc query layer.
package repository

import (
	"context"
	"fmt"

	"contract-mgmt/backend/internal/db"
	"contract-mgmt/backend/internal/db/sqlc/gen"
	"contract-mgmt/backend/internal/membership/domain"
)

type PostgresRepository struct {
	queries *gen.Queries
}

// NewPostgresRepository returns a membership repository over q, which may be a pool or a transaction.
func NewPostgresRepository(q gen.DBTX) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(q)}
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Membership, error) {
	rows, err := r.queries.ListMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	out := make([]*domain.Membership, len(rows))
	for i, row := range rows {
		out[i] = &domain.Membership{
			ID:        row.ID,
			UserID:    row.UserID,
			OrgID:     row.OrgID,
			OrgName:   row.OrgName,
			Role:      domain.Role(row.Role),
			CreatedAt: row.CreatedAt,
		}
	}
	return out, nil
}

func (r *PostgresRepository) GetByUserAndOrg(ctx context.Context, userID, orgID string) (*domain.Membership, error) {
	m, err := r.queries.GetMembershipByUserAndOrg(ctx, gen.GetMembershipByUserAndOrgParams{UserID: userID, OrgID: orgID})
	if err != nil {
		if db.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return genMembershipToDomain(&m), nil
}

func (r *PostgresRepository) Create(ctx context.Context, m *domain.Membership) error {
	_, err := r.queries.CreateMembership(ctx, gen.CreateMembershipParams{
		ID: m.ID, UserID: m.UserID, OrgID: m.OrgID, Role: gen.Role(m.Role), CreatedAt: m.CreatedAt,
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrDuplicateMembership
		}
		return fmt.Errorf("create membership: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CreateIfAbsent(ctx context.Context, m *domain.Membership) (bool, error) {
	n, err := r.queries.CreateMembershipIfAbsent(ctx, gen.CreateMembershipIfAbsentParams{
		ID: m.ID, UserID: m.UserID, OrgID: m.OrgID, Role: gen.Role(m.Role), CreatedAt: m.CreatedAt,
	})
	if err != nil {
		return false, fmt.Errorf("create membership if absent: %w", err)
	}
	return n == 1, nil
}

func genMembershipToDomain(m *gen.Membership) *domain.Membership {
	return &domain.Membership{
		ID: m.ID, UserID: m.UserID, OrgID: m.OrgID, Role: domain.Role(m.Role), CreatedAt: m.CreatedAt,
	}
}

var _ Repository = (*PostgresRepository)(nil)
