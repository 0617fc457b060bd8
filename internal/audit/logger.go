// Package audit records mutating RPCs per organization.
package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"contract-mgmt/backend/internal/audit/domain"
	auditrepo "contract-mgmt/backend/internal/audit/repository"
	"contract-mgmt/backend/internal/logger"
)

// IPExtractor returns the client IP from the request context (e.g. gRPC metadata or peer).
type IPExtractor func(context.Context) string

// Entry is one event to record. OrgID is required; entries without it are dropped.
type Entry struct {
	OrgID    string
	UserID   string
	Action   string
	Resource string
	// Outcome is the gRPC code name of the call, e.g. "OK" or "PermissionDenied".
	Outcome string
}

// Logger persists entries. Record is best-effort: failures are logged and never reach the caller.
type Logger struct {
	repo        auditrepo.Repository
	ipExtractor IPExtractor
	log         *slog.Logger
	now         func() time.Time
}

// NewLogger returns a Logger. ipExtractor may be nil; then IP is recorded as "unknown".
func NewLogger(repo auditrepo.Repository, ipExtractor IPExtractor, log *slog.Logger) *Logger {
	return &Logger{
		repo:        repo,
		ipExtractor: ipExtractor,
		log:         logger.Component(log, "audit"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type entryMetadata struct {
	Outcome string `json:"outcome,omitempty"`
}

// Record writes e.
func (l *Logger) Record(ctx context.Context, e Entry) {
	if l == nil || l.repo == nil || e.OrgID == "" {
		return
	}
	ip := "unknown"
	if l.ipExtractor != nil {
		ip = l.ipExtractor(ctx)
	}
	var meta string
	if e.Outcome != "" {
		b, _ := json.Marshal(entryMetadata{Outcome: e.Outcome})
		meta = string(b)
	}
	row := &domain.AuditLog{
		ID:        uuid.NewString(),
		OrgID:     e.OrgID,
		UserID:    e.UserID,
		Action:    e.Action,
		Resource:  e.Resource,
		IP:        ip,
		Metadata:  meta,
		CreatedAt: l.now(),
	}
	// The request may already be cancelled; the record should still land.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := l.repo.Create(writeCtx, row); err != nil {
		l.log.WarnContext(ctx, "audit write failed", "action", e.Action, "resource", e.Resource, "org_id", e.OrgID, "error", err)
	}
}
