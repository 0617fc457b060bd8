// Package repository persists invitations in Postgres through the sqlc query layer.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"contract-mgmt/backend/internal/db"
	"contract-mgmt/backend/internal/db/sqlc/gen"
	"contract-mgmt/backend/internal/invitation/domain"
	membershipdomain "contract-mgmt/backend/internal/membership/domain"
	membershiprepo "contract-mgmt/backend/internal/membership/repository"
	userrepo "contract-mgmt/backend/internal/user/repository"
)

type PostgresRepository struct {
	pool    db.Pool
	queries *gen.Queries
}

// NewPostgresRepository returns an invitation repository over pool.
func NewPostgresRepository(pool db.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool, queries: gen.New(pool)}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Invitation, error) {
	inv, err := r.queries.GetInvitation(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return genInvitationToDomain(&inv), nil
}

func (r *PostgresRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Invitation, error) {
	inv, err := r.queries.GetInvitationByTokenHash(ctx, tokenHash)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invitation by token: %w", err)
	}
	return genInvitationToDomain(&inv), nil
}

func (r *PostgresRepository) ListByOrg(ctx context.Context, orgID string) ([]*domain.Invitation, error) {
	rows, err := r.queries.ListInvitationsByOrg(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	out := make([]*domain.Invitation, len(rows))
	for i := range rows {
		out[i] = genInvitationToDomain(&rows[i])
	}
	return out, nil
}

func (r *PostgresRepository) CreateSuperseding(ctx context.Context, inv *domain.Invitation) (int64, error) {
	var superseded int64
	err := db.InTx(ctx, r.pool, func(tx pgx.Tx) error {
		q := gen.New(tx)
		revokedAt := inv.CreatedAt
		n, err := q.RevokePendingInvitationsForEmail(ctx, gen.RevokePendingInvitationsForEmailParams{
			OrgID: inv.OrgID, Email: inv.Email, RevokedAt: &revokedAt,
		})
		if err != nil {
			return fmt.Errorf("supersede invitations: %w", err)
		}
		superseded = n
		if _, err := q.CreateInvitation(ctx, gen.CreateInvitationParams{
			ID:              inv.ID,
			OrgID:           inv.OrgID,
			Email:           inv.Email,
			Role:            gen.Role(inv.Role),
			TokenHash:       inv.TokenHash,
			ExpiresAt:       inv.ExpiresAt,
			CreatedByUserID: inv.CreatedByUserID,
			CreatedAt:       inv.CreatedAt,
		}); err != nil {
			return fmt.Errorf("create invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return superseded, nil
}

func (r *PostgresRepository) MarkExpired(ctx context.Context, id string, now time.Time) (bool, error) {
	n, err := r.queries.MarkInvitationExpired(ctx, gen.MarkInvitationExpiredParams{ID: id, ExpiresAt: now})
	if err != nil {
		return false, fmt.Errorf("expire invitation: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) Revoke(ctx context.Context, id, orgID string, now time.Time) (bool, error) {
	n, err := r.queries.RevokeInvitation(ctx, gen.RevokeInvitationParams{ID: id, OrgID: orgID, RevokedAt: &now})
	if err != nil {
		return false, fmt.Errorf("revoke invitation: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) Accept(ctx context.Context, inv *domain.Invitation, m *membershipdomain.Membership, now time.Time) (bool, error) {
	var created bool
	err := db.InTx(ctx, r.pool, func(tx pgx.Tx) error {
		n, err := gen.New(tx).AcceptInvitation(ctx, gen.AcceptInvitationParams{
			ID: inv.ID, AcceptedByUserID: &m.UserID, AcceptedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("accept invitation: %w", err)
		}
		if n == 0 {
			return ErrNotPending
		}
		created, err = membershiprepo.NewPostgresRepository(tx).CreateIfAbsent(ctx, m)
		if err != nil {
			return err
		}
		return userrepo.NewPostgresRepository(tx).SetActiveOrganization(ctx, m.UserID, inv.OrgID)
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func genInvitationToDomain(i *gen.Invitation) *domain.Invitation {
	out := &domain.Invitation{
		ID:              i.ID,
		OrgID:           i.OrgID,
		Email:           i.Email,
		Role:            membershipdomain.Role(i.Role),
		TokenHash:       i.TokenHash,
		Status:          domain.Status(i.Status),
		ExpiresAt:       i.ExpiresAt,
		CreatedByUserID: i.CreatedByUserID,
		AcceptedAt:      i.AcceptedAt,
		RevokedAt:       i.RevokedAt,
		CreatedAt:       i.CreatedAt,
	}
	if i.AcceptedByUserID != nil {
		out.AcceptedByUserID = *i.AcceptedByUserID
	}
	return out
}

var _ Repository = (*PostgresRepository)(nil)
