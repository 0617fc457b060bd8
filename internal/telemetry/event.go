// Package telemetry carries tenancy domain events to Kafka or the OTel log pipeline, and the OTel counters.
package telemetry

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the tenancy services.
const (
	EventUserCreated         = "user.created"
	EventOrganizationCreated = "organization.created"
	EventMembershipCreated   = "membership.created"
	EventActiveOrgChanged    = "active_org.changed"
	EventInvitationCreated   = "invitation.created"
	EventInvitationAccepted  = "invitation.accepted"
	EventInvitationRevoked   = "invitation.revoked"
	EventInvitationExpired   = "invitation.expired"
)

// Source identifies this service on every event.
const Source = "contract-mgmt"

// Event is a single domain event. Field names are the wire format read by cmd/worker.
type Event struct {
	ID         string            `json:"id"`
	EventType  string            `json:"eventType"`
	OrgID      string            `json:"orgId,omitempty"`
	UserID     string            `json:"userId,omitempty"`
	Source     string            `json:"source"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// NewEvent stamps an event with an id, the source and the current time.
func NewEvent(eventType, orgID, userID string, attrs map[string]string) Event {
	return Event{
		ID:         uuid.NewString(),
		EventType:  eventType,
		OrgID:      orgID,
		UserID:     userID,
		Source:     Source,
		Attributes: attrs,
		CreatedAt:  time.Now().UTC(),
	}
}

// EventEmitter writes one event to a transport. Implementations may block briefly.
type EventEmitter interface {
	Emit(ctx context.Context, event Event) error
}
