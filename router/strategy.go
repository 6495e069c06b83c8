package router

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/go-leo/gox/mathx/randx"

	"github.com/go-leo/notify/notifier"
)

// Strategy decides how a payload reaches a set of targets. Each target is
// notified through its own Notify, so a target chain applies its own
// formatting to the routed payload.
type Strategy interface {
	Deliver(ctx context.Context, payload string, targets []notifier.Notifier) error
}

// The StrategyFunc type is an adapter to allow the use of ordinary functions as Strategy.
// If f is a function with the appropriate signature, StrategyFunc(f) is a
// Strategy that calls f.
type StrategyFunc func(ctx context.Context, payload string, targets []notifier.Notifier) error

// Deliver calls f(ctx, payload, targets).
func (f StrategyFunc) Deliver(ctx context.Context, payload string, targets []notifier.Notifier) error {
	return f(ctx, payload, targets)
}

var _ Strategy = Broadcast{}

// Broadcast delivers the payload to every target and joins their errors.
type Broadcast struct{}

func (Broadcast) Deliver(ctx context.Context, payload string, targets []notifier.Notifier) error {
	errs := make([]error, 0, len(targets))
	for _, target := range targets {
		errs = append(errs, target.Notify(ctx, payload))
	}
	return errors.Join(errs...)
}

var _ Strategy = Failover{}

// Failover tries targets in order and stops at the first success. When every
// target fails, the joined errors are returned.
type Failover struct{}

func (Failover) Deliver(ctx context.Context, payload string, targets []notifier.Notifier) error {
	errs := make([]error, 0, len(targets))
	for _, target := range targets {
		err := target.Notify(ctx, payload)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

var _ Strategy = (*RoundRobin)(nil)

// RoundRobin rotates through the targets, one per delivery.
type RoundRobin struct {
	next atomic.Uint64
}

func (r *RoundRobin) Deliver(ctx context.Context, payload string, targets []notifier.Notifier) error {
	i := r.next.Add(1) - 1
	return targets[int(i%uint64(len(targets)))].Notify(ctx, payload)
}

var _ Strategy = Random{}

// Random delivers to one target picked uniformly at random.
type Random struct{}

func (Random) Deliver(ctx context.Context, payload string, targets []notifier.Notifier) error {
	return targets[randx.Int63n(int64(len(targets)))].Notify(ctx, payload)
}
