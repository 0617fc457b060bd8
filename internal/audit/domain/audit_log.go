// Package domain holds the audit log record.
package domain

import "time"

// AuditLog is one recorded mutation within an organization.
// UserID and Metadata may be empty; Metadata is a small JSON object.
type AuditLog struct {
	ID        string
	OrgID     string
	UserID    string
	Action    string
	Resource  string
	IP        string
	Metadata  string
	CreatedAt time.Time
}
