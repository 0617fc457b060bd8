package service

import (
	"context"
	"log/slog"

	"contract-mgmt/backend/internal/logger"
	"contract-mgmt/backend/internal/membership/domain"
	"contract-mgmt/backend/internal/platform/apperr"
	"contract-mgmt/backend/internal/telemetry"
)

// ActiveOrgStore persists a user's active organization pointer.
type ActiveOrgStore interface {
	SetActiveOrganization(ctx context.Context, userID, orgID string) error
}

// Selector picks and repairs a user's active organization.
type Selector struct {
	memberships *Directory
	store       ActiveOrgStore
	events      telemetry.Publisher
	metrics     *telemetry.Metrics
	log         *slog.Logger
}

// NewSelector returns a Selector. events, metrics and log may be nil.
func NewSelector(memberships *Directory, store ActiveOrgStore, events telemetry.Publisher, metrics *telemetry.Metrics, log *slog.Logger) *Selector {
	if events == nil {
		events = telemetry.NopPublisher{}
	}
	return &Selector{
		memberships: memberships,
		store:       store,
		events:      events,
		metrics:     metrics,
		log:         logger.Component(log, "membership.selector"),
	}
}

// ResolveActiveOrg returns the membership the caller acts within, or nil when ms is empty.
// A stored pointer that still matches a membership is returned without a write. Otherwise the
// oldest membership is chosen and persisted. It never fails: a failed repair write is logged
// and retried on the next request, and the returned membership is still valid.
func (s *Selector) ResolveActiveOrg(ctx context.Context, userID, storedOrgID string, ms []*domain.Membership) *domain.Membership {
	if len(ms) == 0 {
		return nil
	}
	if m := domain.Find(ms, storedOrgID); m != nil {
		return m
	}
	chosen := ms[0]
	reason := "unset"
	if storedOrgID != "" {
		reason = "stale"
	}
	if err := s.store.SetActiveOrganization(ctx, userID, chosen.OrgID); err != nil {
		s.log.WarnContext(ctx, "active organization repair failed", "user_id", userID, "org_id", chosen.OrgID, "error", err)
		return chosen
	}
	s.metrics.ActiveOrgRepaired(ctx, reason)
	s.log.InfoContext(ctx, "active organization repaired", "user_id", userID, "org_id", chosen.OrgID, "reason", reason)
	s.events.Publish(ctx, telemetry.NewEvent(telemetry.EventActiveOrgChanged, chosen.OrgID, userID, map[string]string{
		"previous": storedOrgID,
		"reason":   reason,
	}))
	return chosen
}

// SetActiveOrg switches userID to orgID. It fails with NotAMember unless the membership exists.
func (s *Selector) SetActiveOrg(ctx context.Context, userID, orgID string) (*domain.Membership, error) {
	if orgID == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "organization id is required")
	}
	m, err := s.memberships.Get(ctx, userID, orgID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.ErrNotAMember
	}
	if err := s.store.SetActiveOrganization(ctx, userID, orgID); err != nil {
		return nil, apperr.Storage("set active organization", err)
	}
	s.events.Publish(ctx, telemetry.NewEvent(telemetry.EventActiveOrgChanged, orgID, userID, map[string]string{"reason": "switch"}))
	return m, nil
}
