// Package producer ships domain events to Kafka.
package producer

import (
	"context"

	"contract-mgmt/backend/internal/telemetry"
)

// Producer is an EventEmitter that owns a broker connection.
type Producer interface {
	Emit(ctx context.Context, event telemetry.Event) error
	// Close flushes and releases the writer. Safe to call twice.
	Close() error
}
