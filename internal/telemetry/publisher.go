package telemetry

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// emitTimeout bounds a single background emit.
const emitTimeout = 5 * time.Second

// Publisher is what services depend on. Publish never blocks on the transport and never fails the caller.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}

// AsyncPublisher emits each event on its own goroutine with a detached, bounded context.
type AsyncPublisher struct {
	emitter EventEmitter
	log     *slog.Logger
	wg      sync.WaitGroup
}

// NewAsyncPublisher returns a Publisher over emitter. A nil emitter yields a publisher that drops events.
func NewAsyncPublisher(emitter EventEmitter, log *slog.Logger) *AsyncPublisher {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &AsyncPublisher{emitter: emitter, log: log}
}

// Publish schedules the emit. Request cancellation does not abort an in-flight emit.
func (p *AsyncPublisher) Publish(ctx context.Context, event Event) {
	if p == nil || p.emitter == nil {
		return
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		emitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), emitTimeout)
		defer cancel()
		if err := p.emitter.Emit(emitCtx, event); err != nil {
			p.log.Warn("event emit failed", "event_type", event.EventType, "org_id", event.OrgID, "error", err)
		}
	}()
}

// Drain waits for in-flight emits or until ctx is done. Call after the server stops accepting requests.
func (p *AsyncPublisher) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
