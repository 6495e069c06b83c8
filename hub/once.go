package hub

import (
	"context"
	"sync"

	"github.com/go-leo/notify/notifier"
)

// onceNotifier guards a subscriber so it is notified at most once. The
// wrapper stays in the subscriber list after firing; later deliveries are
// no-ops until it is unsubscribed.
type onceNotifier struct {
	Notifier notifier.Notifier
	once     sync.Once
}

func (n *onceNotifier) Notify(ctx context.Context, message string) error {
	var err error
	n.once.Do(func() {
		err = n.Notifier.Notify(ctx, message)
	})
	return err
}

func (n *onceNotifier) Deliver(ctx context.Context, payload string) error {
	var err error
	n.once.Do(func() {
		err = n.Notifier.Deliver(ctx, payload)
	})
	return err
}

func (n *onceNotifier) Format(message string) string {
	return n.Notifier.Format(message)
}

func (n *onceNotifier) Describe() string {
	return "Once(" + n.Notifier.Describe() + ")"
}
