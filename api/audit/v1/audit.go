// Package auditv1 holds the AuditService messages and bindings.
package auditv1

import "time"

type AuditLog struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	UserID         string    `json:"userId,omitempty"`
	Action         string    `json:"action"`
	Resource       string    `json:"resource"`
	IP             string    `json:"ip,omitempty"`
	Metadata       string    `json:"metadata,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ListAuditLogsRequest struct {
	Limit  int32 `json:"limit,omitempty" validate:"gte=0,lte=500"`
	Offset int32 `json:"offset,omitempty" validate:"gte=0"`
}

type ListAuditLogsResponse struct {
	AuditLogs []*AuditLog `json:"auditLogs"`
}
