package notifier

import "context"

// Notifier is the capability every link of a notification chain honors,
// from the outermost wrapper down to the terminal sink.
//
// The chain is a linear, immutable structure: each wrapper holds exactly one
// successor and the innermost link is a terminal that performs the real
// effect. Formatting and delivery are split so that a chain formats the
// message once, outside-in, and then routes the finished payload to the
// terminal unchanged.
type Notifier interface {
	// Notify is the public entry point. It delivers Format(message).
	Notify(ctx context.Context, message string) error

	// Deliver routes payload unchanged toward the terminal, which performs
	// the real effect. A terminal failure propagates back through every
	// link unchanged.
	Deliver(ctx context.Context, payload string) error

	// Format returns message after applying the transformations of this
	// link and every link inward. A terminal's Format is the identity.
	Format(message string) string

	// Describe returns a human-readable representation of the chain from
	// this link inward.
	Describe() string
}

// The NotifierFunc type is an adapter to allow the use of ordinary functions as Notifier.
// If f is a function with the appropriate signature, NotifierFunc(f) is a
// Notifier that calls f as its terminal effect.
type NotifierFunc func(ctx context.Context, payload string) error

// Notify calls f(ctx, message).
func (f NotifierFunc) Notify(ctx context.Context, message string) error {
	return f(ctx, message)
}

// Deliver calls f(ctx, payload).
func (f NotifierFunc) Deliver(ctx context.Context, payload string) error {
	return f(ctx, payload)
}

// Format returns message unchanged.
func (f NotifierFunc) Format(message string) string {
	return message
}

// Describe returns "Func".
func (f NotifierFunc) Describe() string {
	return "Func"
}
