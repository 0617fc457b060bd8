package repository

import (
	"context"

	membershipdomain "contract-mgmt/backend/internal/membership/domain"
	"contract-mgmt/backend/internal/organization/domain"
)

// Repository defines persistence for organizations. Lookups return (nil, nil) when no row matches.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Organization, error)
	// CreateWithOwner inserts o, the owner membership and the owner's active pointer in one transaction.
	CreateWithOwner(ctx context.Context, o *domain.Organization, owner *membershipdomain.Membership) error
	// Update writes every field of o and returns the stored row, or nil when o.ID is unknown.
	Update(ctx context.Context, o *domain.Organization) (*domain.Organization, error)
}
