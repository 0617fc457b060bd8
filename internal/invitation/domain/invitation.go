// Package domain holds the invitation entity and its one-way status machine.
package domain

import (
	"time"

	membershipdomain "contract-mgmt/backend/internal/membership/domain"
	"contract-mgmt/backend/internal/platform/apperr"
)

// DefaultTTL is how long a new invitation stays usable.
const DefaultTTL = 7 * 24 * time.Hour

// Status is the stored lifecycle state. Only pending has outgoing transitions.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRevoked  Status = "revoked"
	StatusExpired  Status = "expired"
)

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool { return s != StatusPending }

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to Status) bool {
	if from.Terminal() {
		return false
	}
	switch to {
	case StatusAccepted, StatusRevoked, StatusExpired:
		return true
	}
	return false
}

// Invitation is an email-bound capability granting Role in OrgID. Only TokenHash is persisted.
type Invitation struct {
	ID               string
	OrgID            string
	Email            string
	Role             membershipdomain.Role
	TokenHash        string
	Status           Status
	ExpiresAt        time.Time
	CreatedByUserID  string
	AcceptedByUserID string
	AcceptedAt       *time.Time
	RevokedAt        *time.Time
	CreatedAt        time.Time

	// Display fields for the invitee; not stored on the invitation row.
	OrgName    string
	OrgLogoURL string
}

// DueToExpire reports whether the invitation is stored as pending but its deadline has passed.
// An invitation is still usable at exactly ExpiresAt.
func (i *Invitation) DueToExpire(now time.Time) bool {
	return i.Status == StatusPending && now.After(i.ExpiresAt)
}

// EffectiveStatus is the status a reader should see at now, with lazy expiry applied.
func (i *Invitation) EffectiveStatus(now time.Time) Status {
	if i.DueToExpire(now) {
		return StatusExpired
	}
	return i.Status
}

// ParseRole accepts the roles an invitation may grant. Owner is never granted this way.
func ParseRole(s string) (membershipdomain.Role, error) {
	r, ok := membershipdomain.ParseRole(s)
	if !ok || r == membershipdomain.RoleOwner {
		return "", apperr.New(apperr.KindInvalidArgument, "role must be admin or member")
	}
	return r, nil
}
