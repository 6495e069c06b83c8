package notifier

import "context"

var _ Notifier = Noop{}

// Noop is a terminal that discards every payload and returns a nil error.
type Noop struct{}

func (Noop) Notify(context.Context, string) error {
	return nil
}

func (Noop) Deliver(context.Context, string) error {
	return nil
}

func (Noop) Format(message string) string {
	return message
}

func (Noop) Describe() string {
	return "Noop"
}
