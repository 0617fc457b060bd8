package repository

import (
	"context"
	"errors"
	"time"

	"contract-mgmt/backend/internal/invitation/domain"
	membershipdomain "contract-mgmt/backend/internal/membership/domain"
)

// ErrNotPending is returned by Accept when the conditional update matched no pending, unexpired row.
var ErrNotPending = errors.New("invitation is not pending")

// Repository defines persistence for invitations. Lookups return (nil, nil) when no row matches.
// Every status write is conditional on the row still being pending.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Invitation, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Invitation, error)
	// ListByOrg returns the organization's invitations, newest first.
	ListByOrg(ctx context.Context, orgID string) ([]*domain.Invitation, error)
	// CreateSuperseding revokes any pending invitation for (inv.OrgID, inv.Email) and inserts inv,
	// in one transaction. It returns how many older invitations were revoked.
	CreateSuperseding(ctx context.Context, inv *domain.Invitation) (superseded int64, err error)
	// MarkExpired moves a pending invitation whose deadline is at or before now to expired.
	MarkExpired(ctx context.Context, id string, now time.Time) (bool, error)
	// Revoke moves a pending, unexpired invitation of orgID to revoked.
	Revoke(ctx context.Context, id, orgID string, now time.Time) (bool, error)
	// Accept marks inv accepted by m.UserID, inserts m unless the pair exists, and points the user at
	// inv.OrgID, atomically. ErrNotPending means another caller or the deadline got there first.
	Accept(ctx context.Context, inv *domain.Invitation, m *membershipdomain.Membership, now time.Time) (membershipCreated bool, err error)
}
