// Package membershipv1 holds the MembershipService messages and bindings.
package membershipv1

import "time"

type Membership struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	OrganizationID   string    `json:"organizationId"`
	OrganizationName string    `json:"organizationName,omitempty"`
	Role             string    `json:"role"`
	CreatedAt        time.Time `json:"createdAt"`
}

type ListMembershipsRequest struct{}

type ListMembershipsResponse struct {
	Memberships          []*Membership `json:"memberships"`
	ActiveOrganizationID string        `json:"activeOrganizationId,omitempty"`
}

type SwitchActiveOrganizationRequest struct {
	OrganizationID string `json:"organizationId" validate:"required"`
}

type SwitchActiveOrganizationResponse struct {
	ActiveOrganizationID string `json:"activeOrganizationId"`
	Role                 string `json:"role"`
}

// AuditOrgID names the organization switched into, for the audit trail.
func (r *SwitchActiveOrganizationResponse) AuditOrgID() string {
	if r == nil {
		return ""
	}
	return r.ActiveOrganizationID
}
