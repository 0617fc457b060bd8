// Package repository persists audit logs in Postgres through the sqlc query layer.
package repository

import (
	"context"
	"fmt"

	"contract-mgmt/backend/internal/audit/domain"
	"contract-mgmt/backend/internal/db/sqlc/gen"
)

type PostgresRepository struct {
	queries *gen.Queries
}

// NewPostgresRepository returns an audit log repository over q.
func NewPostgresRepository(q gen.DBTX) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(q)}
}

func (r *PostgresRepository) ListByOrg(ctx context.Context, orgID string, limit, offset int32) ([]*domain.AuditLog, error) {
	rows, err := r.queries.ListAuditLogsByOrg(ctx, gen.ListAuditLogsByOrgParams{OrgID: orgID, Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	out := make([]*domain.AuditLog, len(rows))
	for i := range rows {
		out[i] = genAuditLogToDomain(&rows[i])
	}
	return out, nil
}

// Create persists a. a.ID must be set.
func (r *PostgresRepository) Create(ctx context.Context, a *domain.AuditLog) error {
	err := r.queries.CreateAuditLog(ctx, gen.CreateAuditLogParams{
		ID:        a.ID,
		OrgID:     a.OrgID,
		UserID:    optional(a.UserID),
		Action:    a.Action,
		Resource:  a.Resource,
		Ip:        a.IP,
		Metadata:  optional(a.Metadata),
		CreatedAt: a.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}

func optional(s string) *string {
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

func genAuditLogToDomain(a *gen.AuditLog) *domain.AuditLog {
	return &domain.AuditLog{
		ID:        a.ID,
		OrgID:     a.OrgID,
		UserID:    deref(a.UserID),
		Action:    a.Action,
		Resource:  a.Resource,
		IP:        a.Ip,
		Metadata:  deref(a.Metadata),
		CreatedAt: a.CreatedAt,
	}
}

var _ Repository = (*PostgresRepository)(nil)
