package hub

import (
	"context"
	"errors"
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/go-leo/gox/slicex"
	"github.com/go-leo/gox/syncx"
	"github.com/go-leo/gox/syncx/chanx"
	"golang.org/x/exp/slices"

	"github.com/go-leo/notify/notifier"
)

// Hub fans messages out to notifiers subscribed by topic.
type Hub interface {
	// Subscribe adds a Notifier to the end of the topic's subscriber list.
	Subscribe(topic string, n notifier.Notifier) error

	// Prepend adds a Notifier to the beginning of the topic's subscriber list.
	Prepend(topic string, n notifier.Notifier) error

	// SubscribeOnce adds a Notifier that is notified at most once.
	SubscribeOnce(topic string, n notifier.Notifier) error

	// PrependOnce adds a one-time Notifier to the beginning of the
	// topic's subscriber list.
	PrependOnce(topic string, n notifier.Notifier) error

	// Publish synchronously notifies each subscriber of the topic, in the
	// order they subscribed, and joins their errors.
	Publish(ctx context.Context, topic string, message string) error

	// AsyncPublish asynchronously notifies each subscriber of the topic.
	AsyncPublish(ctx context.Context, topic string, message string) <-chan error

	// Unsubscribe removes the specified Notifier from the topic's subscribers.
	Unsubscribe(topic string, n notifier.Notifier) error

	// UnsubscribeAll removes every subscriber of the topic.
	UnsubscribeAll(topic string) error

	// Notifiers returns a copy of the topic's subscribers.
	Notifiers(topic string) []notifier.Notifier

	// Topics returns a sorted slice listing the topics with subscribers.
	Topics() []string

	// Close hub gracefully, waiting for in-flight async deliveries.
	Close(ctx context.Context) error
}

var _ Hub = (*hub)(nil)

type hub struct {
	notifierMap sync.Map // topic -> *[]notifier.Notifier
	wg          sync.WaitGroup
	inShutdown  atomic.Bool // true when hub is in shutdown
	options     *option
}

func (h *hub) Subscribe(topic string, n notifier.Notifier) error {
	if err := h.check(topic, n); err != nil {
		return err
	}
	h.spin(topic, n, h.appendNotifier)
	return nil
}

func (h *hub) Prepend(topic string, n notifier.Notifier) error {
	if err := h.check(topic, n); err != nil {
		return err
	}
	h.spin(topic, n, h.prependNotifier)
	return nil
}

func (h *hub) SubscribeOnce(topic string, n notifier.Notifier) error {
	if err := h.check(topic, n); err != nil {
		return err
	}
	h.spin(topic, &onceNotifier{Notifier: n}, h.appendNotifier)
	return nil
}

func (h *hub) PrependOnce(topic string, n notifier.Notifier) error {
	if err := h.check(topic, n); err != nil {
		return err
	}
	h.spin(topic, &onceNotifier{Notifier: n}, h.prependNotifier)
	return nil
}

func (h *hub) Publish(ctx context.Context, topic string, message string) error {
	if err := h.checkTopic(topic); err != nil {
		return err
	}
	if h.shuttingDown() {
		return ErrHubClosed
	}
	value, ok := h.notifierMap.Load(topic)
	if !ok {
		return nil
	}
	notifiers := *value.(*[]notifier.Notifier)
	errs := make([]error, 0, len(notifiers))
	for _, n := range notifiers {
		errs = append(errs, n.Notify(ctx, message))
	}
	return errors.Join(errs...)
}

func (h *hub) AsyncPublish(ctx context.Context, topic string, message string) <-chan error {
	if err := h.checkTopic(topic); err != nil {
		return closedErrChan(err)
	}
	if h.shuttingDown() {
		return closedErrChan(ErrHubClosed)
	}
	value, ok := h.notifierMap.Load(topic)
	if !ok {
		return closedErrChan(nil)
	}
	notifiers := *value.(*[]notifier.Notifier)
	errCs := make([]<-chan error, 0, len(notifiers))
	for _, n := range notifiers {
		n := n
		errC := make(chan error, 1)
		h.wg.Add(1)
		err := h.options.Pool.Go(func() {
			defer h.wg.Done()
			defer close(errC)
			if err := n.Notify(ctx, message); err != nil {
				errC <- err
			}
		})
		if err != nil {
			h.wg.Done()
			errC <- err
			close(errC)
		}
		errCs = append(errCs, errC)
	}
	return chanx.Combine[error](errCs...)
}

func (h *hub) Unsubscribe(topic string, n notifier.Notifier) error {
	if err := h.check(topic, n); err != nil {
		return err
	}
	h.spin(topic, n, h.offNotifier)
	return nil
}

func (h *hub) UnsubscribeAll(topic string) error {
	if err := h.checkTopic(topic); err != nil {
		return err
	}
	if h.shuttingDown() {
		return ErrHubClosed
	}
	h.notifierMap.Delete(topic)
	return nil
}

func (h *hub) Notifiers(topic string) []notifier.Notifier {
	value, ok := h.notifierMap.Load(topic)
	if !ok {
		return nil
	}
	notifiers := *value.(*[]notifier.Notifier)
	copied := make([]notifier.Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if onceN, ok := n.(*onceNotifier); ok {
			n = onceN.Notifier
		}
		copied = append(copied, n)
	}
	return copied
}

func (h *hub) Topics() []string {
	var topics []string
	h.notifierMap.Range(func(key, _ any) bool {
		topics = append(topics, key.(string))
		return true
	})
	slices.Sort(topics)
	return topics
}

func (h *hub) Close(ctx context.Context) error {
	if h.inShutdown.CompareAndSwap(false, true) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-syncx.WaitNotify(&h.wg):
			return nil
		}
	}
	return ErrHubClosed
}

func (h *hub) shuttingDown() bool {
	return h.inShutdown.Load()
}

func (h *hub) check(topic string, n notifier.Notifier) error {
	if err := h.checkTopic(topic); err != nil {
		return err
	}
	if err := h.checkNotifier(n); err != nil {
		return err
	}
	if h.shuttingDown() {
		return ErrHubClosed
	}
	return nil
}

func (h *hub) checkTopic(topic string) error {
	if topic == "" {
		return ErrTopicEmpty
	}
	return nil
}

func (h *hub) checkNotifier(n notifier.Notifier) error {
	if n == nil {
		return ErrNotifierNil
	}
	// Unsubscribe matches by ==, so func-typed notifiers cannot be tracked.
	if !reflect.TypeOf(n).Comparable() {
		return ErrNotifierIncomparable
	}
	return nil
}

func (h *hub) appendNotifier(topic string, n notifier.Notifier) (any, any, bool) {
	pendFunc := func(notifiers []notifier.Notifier, n notifier.Notifier) []notifier.Notifier {
		return append(slices.Clone(notifiers), n)
	}
	return h.loadAndPend(topic, n, pendFunc)
}

func (h *hub) prependNotifier(topic string, n notifier.Notifier) (any, any, bool) {
	pendFunc := func(notifiers []notifier.Notifier, n notifier.Notifier) []notifier.Notifier {
		return slicex.Prepend(slices.Clone(notifiers), n)
	}
	return h.loadAndPend(topic, n, pendFunc)
}

func (h *hub) loadAndPend(topic string, n notifier.Notifier, pendFunc func([]notifier.Notifier, notifier.Notifier) []notifier.Notifier) (any, any, bool) {
	ptr := &[]notifier.Notifier{n}
	oldVal, ok := h.notifierMap.LoadOrStore(topic, ptr)
	if !ok {
		return oldVal, nil, false
	}
	newNotifiers := pendFunc(*(oldVal.(*[]notifier.Notifier)), n)
	return oldVal, &newNotifiers, true
}

func (h *hub) offNotifier(topic string, n notifier.Notifier) (any, any, bool) {
	oldVal, ok := h.notifierMap.Load(topic)
	if !ok {
		return oldVal, nil, false
	}
	oldPtr := oldVal.(*[]notifier.Notifier)
	if slicex.IsEmpty(*oldPtr) {
		return oldVal, nil, false
	}
	indexes := slicex.IndexesFunc(*oldPtr, func(subscribed notifier.Notifier) bool {
		if onceN, ok := subscribed.(*onceNotifier); ok {
			subscribed = onceN.Notifier
		}
		return subscribed == n
	})
	if len(indexes) <= 0 {
		return oldVal, nil, false
	}
	newNotifiers := slicex.DeleteAll(slices.Clone(*oldPtr), indexes...)
	return oldVal, &newNotifiers, true
}

func (h *hub) spin(topic string, n notifier.Notifier, load func(topic string, n notifier.Notifier) (any, any, bool)) {
	oldVal, newVal, ok := load(topic, n)
	if !ok {
		return
	}
	backoff := 1
	for !h.notifierMap.CompareAndSwap(topic, oldVal, newVal) {
		// Leverage the exponential backoff algorithm, see https://en.wikipedia.org/wiki/Exponential_backoff.
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < h.options.MaxBackoff {
			backoff <<= 1
		}
		oldVal, newVal, ok = load(topic, n)
		if !ok {
			return
		}
	}
}

func closedErrChan(err error) <-chan error {
	if err == nil {
		errC := make(chan error)
		close(errC)
		return errC
	}
	errC := make(chan error, 1)
	errC <- err
	close(errC)
	return errC
}
