package decorator

import (
	"context"
	"strings"

	"github.com/go-leo/notify/notifier"
)

var _ notifier.Notifier = (*Urgent)(nil)

// Urgent upper-cases the message and prepends an "URGENT:" marker. As the
// outermost link it capitalizes everything the inner links contributed,
// timestamps included.
type Urgent struct {
	Forwarder
}

// NewUrgent returns an Urgent wrapper around next.
func NewUrgent(next notifier.Notifier) *Urgent {
	return &Urgent{Forwarder: NewForwarder(next)}
}

// WithUrgent adapts NewUrgent for Chain.
func WithUrgent() Decorator {
	return func(next notifier.Notifier) notifier.Notifier {
		return NewUrgent(next)
	}
}

func (u *Urgent) Notify(ctx context.Context, message string) error {
	return u.Deliver(ctx, u.Format(message))
}

func (u *Urgent) Format(message string) string {
	return "URGENT: " + strings.ToUpper(u.Forwarder.Format(message))
}

func (u *Urgent) Describe() string {
	return "Urgent(" + u.Forwarder.Describe() + ")"
}
