// Package domain holds the organization (tenant) entity and its branding patch.
package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"contract-mgmt/backend/internal/platform/apperr"
)

// MinNameLength applies when a name is changed after creation.
const MinNameLength = 2

// Organization is a tenant boundary. Ownership lives in memberships, not here.
type Organization struct {
	ID           string
	Name         string
	ContactEmail string
	Phone        string
	Address      string
	Website      string
	LogoURL      string
	BrandColor   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Normalize trims every field and lower-cases the contact email. An empty name is InvalidArgument.
func (o *Organization) Normalize() error {
	o.Name = strings.TrimSpace(o.Name)
	o.ContactEmail = strings.ToLower(strings.TrimSpace(o.ContactEmail))
	o.Phone = strings.TrimSpace(o.Phone)
	o.Address = strings.TrimSpace(o.Address)
	o.Website = strings.TrimSpace(o.Website)
	o.LogoURL = strings.TrimSpace(o.LogoURL)
	o.BrandColor = strings.TrimSpace(o.BrandColor)
	if o.Name == "" {
		return apperr.New(apperr.KindInvalidArgument, "name is required")
	}
	return nil
}

// Patch changes only the fields that are non-nil. An empty string clears an optional field.
type Patch struct {
	Name         *string
	ContactEmail *string
	Phone        *string
	Address      *string
	Website      *string
	LogoURL      *string
	BrandColor   *string
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Name == nil && p.ContactEmail == nil && p.Phone == nil && p.Address == nil &&
		p.Website == nil && p.LogoURL == nil && p.BrandColor == nil
}

// Apply writes the patch onto o. A name shorter than MinNameLength is rejected and o is left untouched.
func (p Patch) Apply(o *Organization) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if utf8.RuneCountInString(name) < MinNameLength {
			return apperr.New(apperr.KindInvalidArgument, "name must be at least 2 characters")
		}
		o.Name = name
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&o.ContactEmail, p.ContactEmail)
	o.ContactEmail = strings.ToLower(o.ContactEmail)
	set(&o.Phone, p.Phone)
	set(&o.Address, p.Address)
	set(&o.Website, p.Website)
	set(&o.LogoURL, p.LogoURL)
	set(&o.BrandColor, p.BrandColor)
	return nil
}
