package repository

import (
	"context"
	"errors"

	"contract-mgmt/backend/internal/membership/domain"
)

// ErrDuplicateMembership is returned by Create when the (user, org) pair already exists.
var ErrDuplicateMembership = errors.New("membership already exists")

// Repository defines persistence for memberships. Lookups return (nil, nil) when no row matches.
type Repository interface {
	// ListByUser returns the user's memberships ordered by creation time, then id.
	ListByUser(ctx context.Context, userID string) ([]*domain.Membership, error)
	GetByUserAndOrg(ctx context.Context, userID, orgID string) (*domain.Membership, error)
	Create(ctx context.Context, m *domain.Membership) error
	// CreateIfAbsent inserts m unless the pair exists; created reports whether a row was written.
	CreateIfAbsent(ctx context.Context, m *domain.Membership) (created bool, err error)
}
