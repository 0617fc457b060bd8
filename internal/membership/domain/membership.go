// Package domain holds the Membership entity and roles.
package domain

import (
	"strings"
	"time"
)

// Membership links a user to an organization with a role. (UserID, OrgID) is unique.
type Membership struct {
	ID        string
	UserID    string
	OrgID     string
	OrgName   string // filled by listing queries only
	Role      Role
	CreatedAt time.Time
}

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// ParseRole accepts any casing ("Admin", "MEMBER"). ok is false for unknown roles.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return r, true
	}
	return "", false
}

// CanAdminister reports whether the role may manage the organization (invites, settings, audit).
func (r Role) CanAdminister() bool {
	return r == RoleOwner || r == RoleAdmin
}

func (r Role) String() string { return string(r) }

// Find returns the membership for orgID in ms, or nil.
func Find(ms []*Membership, orgID string) *Membership {
	if orgID == "" {
		return nil
	}
	for _, m := range ms {
		if m.OrgID == orgID {
			return m
		}
	}
	return nil
}
