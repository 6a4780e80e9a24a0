package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/BruksfildServices01/traineme-api/internal/audit"
)

const bookingPrefix = "booking."

// BookingEvent is the payload published on booking.<action> subjects.
type BookingEvent struct {
	EventType string    `json:"event_type"`
	BookingID *uint     `json:"booking_id"`
	ActorID   *uint     `json:"actor_id"`
	Data      any       `json:"data,omitempty"`
	At        time.Time `json:"at"`
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (*NatsPublisher, error) {
	nc, err := nats.Connect(natsURL, nats.Name("traineme-api"))
	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: nc}, nil
}

// Write publishes booking lifecycle events; everything else is ignored.
func (p *NatsPublisher) Write(_ context.Context, ev audit.Event) error {
	if !strings.HasPrefix(ev.Action, bookingPrefix) {
		return nil
	}

	payload, err := json.Marshal(BookingEvent{
		EventType: ev.Action,
		BookingID: ev.EntityID,
		ActorID:   ev.UserID,
		Data:      ev.Metadata,
		At:        ev.At,
	})
	if err != nil {
		return err
	}

	if err := p.conn.Publish(ev.Action, payload); err != nil {
		return err
	}

	slog.Debug("published event", "subject", ev.Action)
	return nil
}

func (p *NatsPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}

var _ audit.Sink = (*NatsPublisher)(nil)
