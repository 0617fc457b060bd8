package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "contract-mgmt"

// Metrics holds the tenancy counters. The zero value and nil are safe and record nothing.
type Metrics struct {
	rpcs         metric.Int64Counter
	invitations  metric.Int64Counter
	activeRepair metric.Int64Counter
	rateLimited  metric.Int64Counter
}

// NewMetrics registers counters on mp, or the global provider when mp is nil.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(meterName)
	var m Metrics
	var err error
	if m.rpcs, err = meter.Int64Counter("contract_mgmt.rpc.requests",
		metric.WithDescription("RPCs handled, by method and status code")); err != nil {
		return nil, err
	}
	if m.invitations, err = meter.Int64Counter("contract_mgmt.invitations",
		metric.WithDescription("Invitation state transitions")); err != nil {
		return nil, err
	}
	if m.activeRepair, err = meter.Int64Counter("contract_mgmt.active_org.repairs",
		metric.WithDescription("Active organization pointers repaired during resolution")); err != nil {
		return nil, err
	}
	if m.rateLimited, err = meter.Int64Counter("contract_mgmt.rate_limited",
		metric.WithDescription("Requests rejected by the rate limiter")); err != nil {
		return nil, err
	}
	return &m, nil
}

// RPC counts one finished call.
func (m *Metrics) RPC(ctx context.Context, method, code string) {
	if m == nil || m.rpcs == nil {
		return
	}
	m.rpcs.Add(ctx, 1, metric.WithAttributes(attribute.String("method", method), attribute.String("code", code)))
}

// Invitation counts a transition such as created, accepted, revoked or expired.
func (m *Metrics) Invitation(ctx context.Context, transition string) {
	if m == nil || m.invitations == nil {
		return
	}
	m.invitations.Add(ctx, 1, metric.WithAttributes(attribute.String("transition", transition)))
}

// ActiveOrgRepaired counts one pointer repair; reason is "unset" or "stale".
func (m *Metrics) ActiveOrgRepaired(ctx context.Context, reason string) {
	if m == nil || m.activeRepair == nil {
		return
	}
	m.activeRepair.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

// RateLimited counts a rejected request for method.
func (m *Metrics) RateLimited(ctx context.Context, method string) {
	if m == nil || m.rateLimited == nil {
		return
	}
	m.rateLimited.Add(ctx, 1, metric.WithAttributes(attribute.String("method", method)))
}
