package decorator

import (
	"context"
	"time"

	"github.com/go-leo/notify/notifier"
)

var _ notifier.Notifier = (*Timestamp)(nil)

// Timestamp prefixes each message with the current time, in brackets.
type Timestamp struct {
	Forwarder
	layout string
	clock  func() time.Time
}

// TimestampOption configures a Timestamp wrapper.
type TimestampOption func(*Timestamp)

// Layout sets the time layout of the prefix. It defaults to time.DateTime.
func Layout(layout string) TimestampOption {
	return func(t *Timestamp) {
		t.layout = layout
	}
}

// Clock replaces the time source, mostly for tests. It defaults to time.Now.
func Clock(now func() time.Time) TimestampOption {
	return func(t *Timestamp) {
		t.clock = now
	}
}

// NewTimestamp returns a Timestamp wrapper around next.
func NewTimestamp(next notifier.Notifier, opts ...TimestampOption) *Timestamp {
	t := &Timestamp{Forwarder: NewForwarder(next), layout: time.DateTime, clock: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WithTimestamp adapts NewTimestamp for Chain.
func WithTimestamp(opts ...TimestampOption) Decorator {
	return func(next notifier.Notifier) notifier.Notifier {
		return NewTimestamp(next, opts...)
	}
}

func (t *Timestamp) Notify(ctx context.Context, message string) error {
	return t.Deliver(ctx, t.Format(message))
}

func (t *Timestamp) Format(message string) string {
	return "[" + t.clock().Format(t.layout) + "] " + t.Forwarder.Format(message)
}

func (t *Timestamp) Describe() string {
	return "Timestamp(" + t.Forwarder.Describe() + ")"
}
