// Package domain holds the User entity.
package domain

import (
	"strings"
	"time"
)

// User is the internal record for one verified identity. Subject never changes after creation.
type User struct {
	ID          string
	Subject     string
	Email       string
	Name        string
	Phone       string
	Locale      string
	Bio         string
	Address     string
	ActiveOrgID string // empty means onboarding: no active organization
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasActiveOrg reports whether an active organization pointer is stored.
func (u *User) HasActiveOrg() bool {
	return u != nil && u.ActiveOrgID != ""
}

// NormalizeEmail trims and lowercases an email for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ProfilePatch changes only the non-nil fields.
type ProfilePatch struct {
	Name    *string
	Phone   *string
	Locale  *string
	Bio     *string
	Address *string
}

// Empty reports whether the patch changes nothing.
func (p ProfilePatch) Empty() bool {
	return p.Name == nil && p.Phone == nil && p.Locale == nil && p.Bio == nil && p.Address == nil
}

// Apply writes the trimmed patch values onto u.
func (p ProfilePatch) Apply(u *User) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&u.Name, p.Name)
	set(&u.Phone, p.Phone)
	set(&u.Locale, p.Locale)
	set(&u.Bio, p.Bio)
	set(&u.Address, p.Address)
}
