package repository

import (
	"context"

	"contract-mgmt/backend/internal/audit/domain"
)

// Repository defines persistence for audit logs.
type Repository interface {
	// ListByOrg returns entries for orgID newest first.
	ListByOrg(ctx context.Context, orgID string, limit, offset int32) ([]*domain.AuditLog, error)
	Create(ctx context.Context, a *domain.AuditLog) error
}
