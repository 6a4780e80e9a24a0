package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
	At       time.Time
}

// Sink receives every dispatched event. Sinks run on the dispatcher's
// worker, one after another.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sinks []Sink
	queue chan Event
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks: sinks,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.Write(ctx, ev); err != nil {
				slog.Error("audit sink failed", "action", ev.Action, "error", err)
			}
			cancel()
		}
	}
}

// Dispatch never blocks the request path: a full queue drops the event.
// A nil dispatcher ignores everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		slog.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits until the queued ones are written.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}
