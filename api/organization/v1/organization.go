// Package organizationv1 holds the OrganizationService messages and bindings.
package organizationv1

import "time"

type Organization struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contactEmail,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Website      string    `json:"website,omitempty"`
	LogoURL      string    `json:"logoUrl,omitempty"`
	BrandColor   string    `json:"brandColor,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CreateOrganizationRequest struct {
	Name         string `json:"name" validate:"notblank,max=200"`
	ContactEmail string `json:"contactEmail,omitempty" validate:"omitempty,email"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Address      string `json:"address,omitempty" validate:"omitempty,max=500"`
	Website      string `json:"website,omitempty" validate:"omitempty,url"`
	LogoURL      string `json:"logoUrl,omitempty" validate:"omitempty,url"`
	BrandColor   string `json:"brandColor,omitempty" validate:"omitempty,hexcolor"`
}

type CreateOrganizationResponse struct {
	Organization *Organization `json:"organization"`
	Role         string        `json:"role"`
}

type GetActiveOrganizationRequest struct{}

type GetActiveOrganizationResponse struct {
	Organization *Organization `json:"organization"`
	Role         string        `json:"role"`
}

// UpdateOrganizationRequest patches the organization named by OrganizationID, or the active one when empty.
type UpdateOrganizationRequest struct {
	OrganizationID string  `json:"organizationId,omitempty"`
	Name           *string `json:"name,omitempty" validate:"omitempty,max=200"`
	ContactEmail   *string `json:"contactEmail,omitempty" validate:"omitempty,email"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Address        *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Website        *string `json:"website,omitempty" validate:"omitempty,url"`
	LogoURL        *string `json:"logoUrl,omitempty" validate:"omitempty,url"`
	BrandColor     *string `json:"brandColor,omitempty" validate:"omitempty,hexcolor"`
}

type UpdateOrganizationResponse struct {
	Organization *Organization `json:"organization"`
}

// AuditOrgID names the new organization, for the audit trail.
func (r *CreateOrganizationResponse) AuditOrgID() string {
	if r == nil || r.Organization == nil {
		return ""
	}
	return r.Organization.ID
}
