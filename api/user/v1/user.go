// Package userv1 holds the UserService messages and bindings.
package userv1

import "time"

type User struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	Name                 string    `json:"name,omitempty"`
	Phone                string    `json:"phone,omitempty"`
	Locale               string    `json:"locale,omitempty"`
	Bio                  string    `json:"bio,omitempty"`
	Address              string    `json:"address,omitempty"`
	ActiveOrganizationID string    `json:"activeOrganizationId,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// OrganizationRole is one of the caller's organizations with their role in it.
type OrganizationRole struct {
	OrganizationID   string `json:"organizationId"`
	OrganizationName string `json:"organizationName"`
	Role             string `json:"role"`
}

type GetMeRequest struct{}

type GetMeResponse struct {
	User                 *User               `json:"user"`
	Organizations        []*OrganizationRole `json:"organizations"`
	ActiveOrganizationID string              `json:"activeOrganizationId,omitempty"`
}

// UpdateProfileRequest patches profile fields. Nil fields are left unchanged; an empty string clears.
type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Locale  *string `json:"locale,omitempty" validate:"omitempty,max=35"`
	Bio     *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
}

type UpdateProfileResponse struct {
	User *User `json:"user"`
}
