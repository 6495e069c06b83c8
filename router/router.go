package router

import (
	"context"
	"strings"
	"sync"

	"github.com/go-leo/gox/slicex"
	"golang.org/x/exp/slices"

	"github.com/go-leo/notify/notifier"
)

var _ notifier.Notifier = (*Router)(nil)

// Router fans payloads out to a fixed target list through a replaceable
// Strategy. It implements notifier.Notifier, so a router can terminate a
// chain or be a target of another router.
type Router struct {
	mu       sync.RWMutex
	strategy Strategy
	targets  []notifier.Notifier
}

// New returns a Router delivering to targets with strategy.
// It panics on a nil strategy or an empty target list.
func New(strategy Strategy, targets ...notifier.Notifier) *Router {
	if strategy == nil {
		panic("router: nil strategy")
	}
	if len(targets) == 0 {
		panic("router: no targets")
	}
	return &Router{strategy: strategy, targets: slices.Clone(targets)}
}

// SetStrategy swaps the delivery strategy at runtime. The swap is visible to
// the next delivery; deliveries already in flight keep the strategy they
// started with.
func (r *Router) SetStrategy(strategy Strategy) {
	if strategy == nil {
		panic("router: nil strategy")
	}
	r.mu.Lock()
	r.strategy = strategy
	r.mu.Unlock()
}

func (r *Router) Notify(ctx context.Context, message string) error {
	return r.Deliver(ctx, r.Format(message))
}

func (r *Router) Deliver(ctx context.Context, payload string) error {
	r.mu.RLock()
	strategy := r.strategy
	r.mu.RUnlock()
	return strategy.Deliver(ctx, payload, r.targets)
}

func (r *Router) Format(message string) string {
	return message
}

func (r *Router) Describe() string {
	labels := slicex.Map[[]notifier.Notifier, []string](
		r.targets,
		func(i int, target notifier.Notifier) string { return target.Describe() },
	)
	return "Router(" + strings.Join(labels, ", ") + ")"
}
