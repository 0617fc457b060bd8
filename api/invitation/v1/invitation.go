// Package invitationv1 holds the InvitationService messages and bindings.
package invitationv1

import "time"

type Invitation struct {
	ID                  string     `json:"id"`
	OrganizationID      string     `json:"organizationId"`
	OrganizationName    string     `json:"organizationName,omitempty"`
	OrganizationLogoURL string     `json:"organizationLogoUrl,omitempty"`
	Email               string     `json:"email"`
	Role                string     `json:"role"`
	Status              string     `json:"status"`
	ExpiresAt           time.Time  `json:"expiresAt"`
	CreatedByUserID     string     `json:"createdByUserId"`
	AcceptedByUserID    string     `json:"acceptedByUserId,omitempty"`
	AcceptedAt          *time.Time `json:"acceptedAt,omitempty"`
	RevokedAt           *time.Time `json:"revokedAt,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// CreateInvitationRequest targets OrganizationID, or the caller's active organization when empty.
type CreateInvitationRequest struct {
	OrganizationID string `json:"organizationId,omitempty"`
	Email          string `json:"email" validate:"required,email"`
	Role           string `json:"role" validate:"required"`
}

// CreateInvitationResponse carries the only copy of the token; it is not stored in plaintext.
type CreateInvitationResponse struct {
	Invitation *Invitation `json:"invitation"`
	Token      string      `json:"token"`
}

type ListInvitationsRequest struct{}

type ListInvitationsResponse struct {
	Invitations []*Invitation `json:"invitations"`
}

type RevokeInvitationRequest struct {
	InvitationID string `json:"invitationId" validate:"required"`
}

type RevokeInvitationResponse struct {
	Invitation *Invitation `json:"invitation"`
}

type GetInvitationRequest struct {
	Token string `json:"token" validate:"required"`
}

type GetInvitationResponse struct {
	Invitation *Invitation `json:"invitation"`
}

type AcceptInvitationRequest struct {
	Token string `json:"token" validate:"required"`
}

type AcceptInvitationResponse struct {
	Invitation           *Invitation `json:"invitation"`
	ActiveOrganizationID string      `json:"activeOrganizationId"`
	Role                 string      `json:"role"`
	// AlreadyMember is true when the caller already belonged to the organization.
	AlreadyMember bool `json:"alreadyMember"`
}

// AuditOrgID names the organization the caller joined, for the audit trail.
func (r *AcceptInvitationResponse) AuditOrgID() string {
	if r == nil {
		return ""
	}
	return r.ActiveOrganizationID
}
