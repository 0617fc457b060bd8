package telemetry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type recordingEmitter struct {
	mu      sync.Mutex
	events  []Event
	emitErr error
	delay   time.Duration
	ctxErr  error
}

func (r *recordingEmitter) Emit(ctx context.Context, e Event) error {
	if r.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.delay):
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctxErr = ctx.Err()
	r.events = append(r.events, e)
	return r.emitErr
}

func (r *recordingEmitter) snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func TestAsyncPublisher_DeliversAndDrains(t *testing.T) {
	em := &recordingEmitter{delay: 10 * time.Millisecond}
	p := NewAsyncPublisher(em, nil)
	for i := 0; i < 5; i++ {
		p.Publish(context.Background(), NewEvent(EventInvitationCreated, "org-1", "user-1", nil))
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := p.Drain(ctx); err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if got := len(em.snapshot()); got != 5 {
		t.Errorf("delivered %d events, want 5", got)
	}
}

func TestAsyncPublisher_IgnoresRequestCancellation(t *testing.T) {
	em := &recordingEmitter{delay: 20 * time.Millisecond}
	p := NewAsyncPublisher(em, nil)
	ctx, cancel := context.WithCancel(context.Background())
	p.Publish(ctx, NewEvent(EventUserCreated, "", "user-1", nil))
	cancel()
	if err := p.Drain(context.Background()); err != nil {
		t.Fatalf("Drain: %v", err)
	}
	events := em.snapshot()
	if len(events) != 1 {
		t.Fatalf("delivered %d events, want 1", len(events))
	}
	if em.ctxErr != nil {
		t.Errorf("emit ctx was cancelled: %v", em.ctxErr)
	}
}

func TestAsyncPublisher_EmitErrorIsSwallowed(t *testing.T) {
	em := &recordingEmitter{emitErr: errors.New("broker down")}
	p := NewAsyncPublisher(em, nil)
	p.Publish(context.Background(), NewEvent(EventMembershipCreated, "org-1", "user-1", nil))
	if err := p.Drain(context.Background()); err != nil {
		t.Fatalf("Drain: %v", err)
	}
}

func TestAsyncPublisher_DrainTimeout(t *testing.T) {
	em := &recordingEmitter{delay: time.Second}
	p := NewAsyncPublisher(em, nil)
	p.Publish(context.Background(), NewEvent(EventUserCreated, "", "u", nil))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := p.Drain(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Drain err = %v, want DeadlineExceeded", err)
	}
}

func TestAsyncPublisher_NilSafe(t *testing.T) {
	var p *AsyncPublisher
	p.Publish(context.Background(), Event{})
	NewAsyncPublisher(nil, nil).Publish(context.Background(), Event{})
	NopPublisher{}.Publish(context.Background(), Event{})
}

func TestNewEvent(t *testing.T) {
	e := NewEvent(EventActiveOrgChanged, "org-1", "user-1", map[string]string{"from": "org-0"})
	if e.ID == "" || e.Source != Source || e.CreatedAt.IsZero() {
		t.Errorf("NewEvent did not stamp id/source/time: %+v", e)
	}
	if e.Attributes["from"] != "org-0" {
		t.Errorf("attributes = %v", e.Attributes)
	}
}
