package decorator

import (
	"context"
	"strings"

	"github.com/go-leo/notify/notifier"
)

// Predicate decides whether a payload passes a Filter link.
type Predicate func(payload string) bool

// And returns a Predicate satisfied when every predicate is satisfied.
func And(predicates ...Predicate) Predicate {
	return func(payload string) bool {
		for _, predicate := range predicates {
			if !predicate(payload) {
				return false
			}
		}
		return true
	}
}

// Or returns a Predicate satisfied when at least one predicate is satisfied.
func Or(predicates ...Predicate) Predicate {
	return func(payload string) bool {
		for _, predicate := range predicates {
			if predicate(payload) {
				return true
			}
		}
		return false
	}
}

// Not returns the inverse of predicate.
func Not(predicate Predicate) Predicate {
	return func(payload string) bool {
		return !predicate(payload)
	}
}

// Contains returns a Predicate satisfied when the payload contains substr.
func Contains(substr string) Predicate {
	return func(payload string) bool {
		return strings.Contains(payload, substr)
	}
}

var _ notifier.Notifier = (*Filter)(nil)

// Filter short-circuits delivery for payloads its predicate rejects: a
// rejected payload returns a nil error without reaching the successor.
// Dropping is a deliberate, documented override of forwarding, so the
// predicate runs in Deliver and sees the payload as already transformed by
// any outer links.
type Filter struct {
	Forwarder
	allow Predicate
}

// NewFilter returns a Filter wrapper around next that forwards only payloads
// satisfying allow. It panics if allow is nil.
func NewFilter(next notifier.Notifier, allow Predicate) *Filter {
	if allow == nil {
		panic("decorator: nil predicate")
	}
	return &Filter{Forwarder: NewForwarder(next), allow: allow}
}

// WithFilter adapts NewFilter for Chain.
func WithFilter(allow Predicate) Decorator {
	return func(next notifier.Notifier) notifier.Notifier {
		return NewFilter(next, allow)
	}
}

func (f *Filter) Notify(ctx context.Context, message string) error {
	return f.Deliver(ctx, f.Format(message))
}

func (f *Filter) Deliver(ctx context.Context, payload string) error {
	if !f.allow(payload) {
		return nil
	}
	return f.Forwarder.Deliver(ctx, payload)
}

func (f *Filter) Describe() string {
	return "Filter(" + f.Forwarder.Describe() + ")"
}
