package otel

import (
	"context"
	"time"

	otellog "go.opentelemetry.io/otel/log"

	"contract-mgmt/backend/internal/telemetry"
)

// recordEmitter is the part of otellog.Logger the adapter needs.
type recordEmitter interface {
	Emit(ctx context.Context, rec otellog.Record)
}

// NewEventEmitter sends events as OTel log records. A nil provider yields a no-op emitter.
func NewEventEmitter(provider otellog.LoggerProvider) telemetry.EventEmitter {
	if provider == nil {
		return noopEmitter{}
	}
	return NewEventEmitterWithLogger(provider.Logger("contract-mgmt.events"))
}

// NewEventEmitterWithLogger wraps any record sink.
func NewEventEmitterWithLogger(logger recordEmitter) telemetry.EventEmitter {
	if logger == nil {
		return noopEmitter{}
	}
	return &otelEmitter{logger: logger}
}

type noopEmitter struct{}

func (noopEmitter) Emit(context.Context, telemetry.Event) error { return nil }

type otelEmitter struct {
	logger recordEmitter
}

func (e *otelEmitter) Emit(ctx context.Context, event telemetry.Event) error {
	rec := otellog.Record{}
	ts := event.CreatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	rec.SetTimestamp(ts)
	rec.SetSeverity(otellog.SeverityInfo)
	rec.SetBody(otellog.StringValue(event.EventType))
	add := func(k, v string) {
		if v != "" {
			rec.AddAttributes(otellog.String(k, v))
		}
	}
	add("event_id", event.ID)
	add("event_type", event.EventType)
	add("org_id", event.OrgID)
	add("user_id", event.UserID)
	add("source", event.Source)
	for k, v := range event.Attributes {
		add("attr."+k, v)
	}
	e.logger.Emit(ctx, rec)
	return nil
}
