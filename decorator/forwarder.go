package decorator

import (
	"context"

	"github.com/go-leo/notify/notifier"
)

// Forwarder is the base every wrapper embeds. It holds exactly one successor,
// immutable once constructed, and forwards unchanged, so "do nothing extra"
// is the default a concrete wrapper overrides.
//
// Forwarder deliberately has no Notify method. A concrete wrapper satisfies
// notifier.Notifier only by declaring its own Notify, so a wrapper that
// forgets its forwarding entry point fails to compile instead of silently
// breaking the chain.
type Forwarder struct {
	next notifier.Notifier
}

// NewForwarder returns a Forwarder around next.
// It panics if next is nil: a link without a successor is a construction
// bug, never a runtime state.
func NewForwarder(next notifier.Notifier) Forwarder {
	if next == nil {
		panic("decorator: nil successor")
	}
	return Forwarder{next: next}
}

// Next returns the successor this link forwards to.
func (f Forwarder) Next() notifier.Notifier {
	return f.next
}

// Deliver routes payload to the successor unchanged.
func (f Forwarder) Deliver(ctx context.Context, payload string) error {
	return f.next.Deliver(ctx, payload)
}

// Format contributes nothing and returns the successor's result.
func (f Forwarder) Format(message string) string {
	return f.next.Format(message)
}

// Describe returns the successor's description unchanged.
func (f Forwarder) Describe() string {
	return f.next.Describe()
}
