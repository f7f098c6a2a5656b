package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// ErrNoPublisher is returned when a summary is submitted with nowhere to go
var ErrNoPublisher = errors.New("no summary publisher configured")

// Publisher submits finished runs; the simulation never waits on the outcome
type Publisher interface {
	Publish(ctx context.Context, s *RunSummary) error
}

// Submit publishes through p, reporting ErrNoPublisher for a nil publisher
func Submit(ctx context.Context, p Publisher, s *RunSummary) error {
	if p == nil {
		return ErrNoPublisher
	}
	if err := p.Publish(ctx, s); err != nil {
		return fmt.Errorf("publishing run %s: %w", s.ID, err)
	}
	return nil
}

// NatsPublisher sends summaries as JSON on a subject
type NatsPublisher struct {
	conn    *nats.Conn
	subject string
}

type NatsPublisherOpt func(*natsOptions)

type natsOptions struct {
	name    string
	timeout time.Duration
}

func WithClientName(name string) NatsPublisherOpt {
	return func(o *natsOptions) { o.name = name }
}

func WithConnectTimeout(d time.Duration) NatsPublisherOpt {
	return func(o *natsOptions) { o.timeout = d }
}

// NewNatsPublisher connects to url and publishes on subject
func NewNatsPublisher(url, subject string, opts ...NatsPublisherOpt) (*NatsPublisher, error) {
	o := natsOptions{name: "resonance-arena", timeout: 5 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}
	conn, err := nats.Connect(url, nats.Name(o.name), nats.Timeout(o.timeout))
	if err != nil {
		return nil, fmt.Errorf("connecting to nats at %s: %w", url, err)
	}
	return &NatsPublisher{conn: conn, subject: subject}, nil
}

func (n *NatsPublisher) Publish(ctx context.Context, s *RunSummary) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	if err := n.conn.Publish(n.subject, data); err != nil {
		return fmt.Errorf("publishing to %s: %w", n.subject, err)
	}
	if err := n.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flushing nats: %w", err)
	}
	return nil
}

// Close drains pending messages and closes the connection
func (n *NatsPublisher) Close() error {
	return n.conn.Drain()
}

// PublisherFunc adapts a function to Publisher
type PublisherFunc func(ctx context.Context, s *RunSummary) error

func (f PublisherFunc) Publish(ctx context.Context, s *RunSummary) error { return f(ctx, s) }
