package decorator

import (
	"context"

	"github.com/go-leo/notify/notifier"
)

// DefaultMarker is the marker text a Marker wrapper prepends unless Text
// overrides it.
const DefaultMarker = "🔔"

var _ notifier.Notifier = (*Marker)(nil)

// Marker prepends a configurable marker string to the message. Stacking two
// Marker wrappers applies both, the outermost marker first.
type Marker struct {
	Forwarder
	text string
}

// MarkerOption configures a Marker wrapper.
type MarkerOption func(*Marker)

// Text sets the marker text. It defaults to DefaultMarker.
func Text(text string) MarkerOption {
	return func(m *Marker) {
		m.text = text
	}
}

// NewMarker returns a Marker wrapper around next.
func NewMarker(next notifier.Notifier, opts ...MarkerOption) *Marker {
	m := &Marker{Forwarder: NewForwarder(next), text: DefaultMarker}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithMarker adapts NewMarker for Chain.
func WithMarker(opts ...MarkerOption) Decorator {
	return func(next notifier.Notifier) notifier.Notifier {
		return NewMarker(next, opts...)
	}
}

func (m *Marker) Notify(ctx context.Context, message string) error {
	return m.Deliver(ctx, m.Format(message))
}

func (m *Marker) Format(message string) string {
	return m.text + " " + m.Forwarder.Format(message)
}

func (m *Marker) Describe() string {
	return "Marker(" + m.Forwarder.Describe() + ")"
}
