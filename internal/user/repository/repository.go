package repository

import (
	"context"
	"errors"

	"contract-mgmt/backend/internal/user/domain"
)

// ErrDuplicateSubject is returned by Create when another user already holds the subject.
var ErrDuplicateSubject = errors.New("user subject already exists")

// Repository defines persistence for users. Lookups return (nil, nil) when no row matches.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetBySubject(ctx context.Context, subject string) (*domain.User, error)
	// Create inserts u. u.ID, Subject, Email and timestamps must be set.
	Create(ctx context.Context, u *domain.User) error
	UpdateEmail(ctx context.Context, id, email string) error
	UpdateProfile(ctx context.Context, u *domain.User) (*domain.User, error)
	// SetActiveOrganization stores orgID as the active organization; "" clears it.
	SetActiveOrganization(ctx context.Context, userID, orgID string) error
}
