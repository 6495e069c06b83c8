package hub

import (
	"context"
	"errors"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/goleak"

	"github.com/go-leo/notify/notifier"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	mu       sync.Mutex
	payloads []string
	err      error
}

func (r *recorder) Notify(ctx context.Context, message string) error {
	return r.Deliver(ctx, message)
}

func (r *recorder) Deliver(_ context.Context, payload string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, payload)
	return r.err
}

func (r *recorder) Format(message string) string {
	return message
}

func (r *recorder) Describe() string {
	return "Recorder"
}

func (r *recorder) Payloads() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.payloads...)
}

func TestHub(t *testing.T) {
	ctx := context.Background()

	Convey("Given a hub with two subscribers on a topic", t, func() {
		h := NewHub()
		first := new(recorder)
		second := new(recorder)
		So(h.Subscribe("deploys", first), ShouldBeNil)
		So(h.Subscribe("deploys", second), ShouldBeNil)

		Convey("When a message is published", func() {
			So(h.Publish(ctx, "deploys", "v1 released"), ShouldBeNil)

			Convey("Then both subscribers receive it in subscription order", func() {
				So(first.Payloads(), ShouldResemble, []string{"v1 released"})
				So(second.Payloads(), ShouldResemble, []string{"v1 released"})
			})
		})

		Convey("When a subscriber is prepended", func() {
			third := new(recorder)
			So(h.Prepend("deploys", third), ShouldBeNil)

			Convey("Then it heads the subscriber list", func() {
				So(h.Notifiers("deploys"), ShouldResemble, []notifier.Notifier{third, first, second})
			})
		})

		Convey("When one subscriber is unsubscribed", func() {
			So(h.Unsubscribe("deploys", first), ShouldBeNil)
			So(h.Publish(ctx, "deploys", "v2 released"), ShouldBeNil)

			Convey("Then only the remaining subscriber receives the message", func() {
				So(first.Payloads(), ShouldBeEmpty)
				So(second.Payloads(), ShouldResemble, []string{"v2 released"})
			})
		})

		Convey("When all subscribers are unsubscribed", func() {
			So(h.UnsubscribeAll("deploys"), ShouldBeNil)

			Convey("Then publishing reaches nobody and returns nil", func() {
				So(h.Publish(ctx, "deploys", "v3 released"), ShouldBeNil)
				So(first.Payloads(), ShouldBeEmpty)
				So(h.Topics(), ShouldBeEmpty)
			})
		})
	})

	Convey("Given a hub with a once subscriber", t, func() {
		h := NewHub()
		once := new(recorder)
		So(h.SubscribeOnce("deploys", once), ShouldBeNil)

		Convey("When two messages are published", func() {
			So(h.Publish(ctx, "deploys", "first"), ShouldBeNil)
			So(h.Publish(ctx, "deploys", "second"), ShouldBeNil)

			Convey("Then the subscriber is notified exactly once", func() {
				So(once.Payloads(), ShouldResemble, []string{"first"})
			})
		})

		Convey("When the once subscriber is unsubscribed before publishing", func() {
			So(h.Unsubscribe("deploys", once), ShouldBeNil)
			So(h.Publish(ctx, "deploys", "first"), ShouldBeNil)

			Convey("Then it is never notified", func() {
				So(once.Payloads(), ShouldBeEmpty)
			})
		})
	})

	Convey("Given a hub with a failing subscriber", t, func() {
		h := NewHub()
		boom := errors.New("boom")
		failing := &recorder{err: boom}
		healthy := new(recorder)
		So(h.Subscribe("deploys", failing), ShouldBeNil)
		So(h.Subscribe("deploys", healthy), ShouldBeNil)

		Convey("When a message is published", func() {
			err := h.Publish(ctx, "deploys", "v1 released")

			Convey("Then the error joins the failure and the healthy subscriber still receives it", func() {
				So(errors.Is(err, boom), ShouldBeTrue)
				So(healthy.Payloads(), ShouldResemble, []string{"v1 released"})
			})
		})

		Convey("When a message is published asynchronously", func() {
			var errs []error
			for err := range h.AsyncPublish(ctx, "deploys", "v1 released") {
				errs = append(errs, err)
			}

			Convey("Then the combined channel carries exactly the failure", func() {
				So(errs, ShouldHaveLength, 1)
				So(errors.Is(errs[0], boom), ShouldBeTrue)
				So(healthy.Payloads(), ShouldResemble, []string{"v1 released"})
			})
		})
	})

	Convey("Given a closed hub", t, func() {
		h := NewHub()
		So(h.Close(ctx), ShouldBeNil)

		Convey("Then every operation reports the hub closed", func() {
			So(h.Subscribe("deploys", new(recorder)), ShouldEqual, ErrHubClosed)
			So(h.Publish(ctx, "deploys", "late"), ShouldEqual, ErrHubClosed)
			So(<-h.AsyncPublish(ctx, "deploys", "late"), ShouldEqual, ErrHubClosed)
			So(h.Close(ctx), ShouldEqual, ErrHubClosed)
		})
	})

	Convey("Given invalid arguments", t, func() {
		h := NewHub()

		Convey("Then an empty topic is rejected", func() {
			So(h.Subscribe("", new(recorder)), ShouldEqual, ErrTopicEmpty)
			So(h.Publish(ctx, "", "hello"), ShouldEqual, ErrTopicEmpty)
		})

		Convey("Then a nil notifier is rejected", func() {
			So(h.Subscribe("deploys", nil), ShouldEqual, ErrNotifierNil)
		})

		Convey("Then an incomparable notifier is rejected", func() {
			f := notifier.NotifierFunc(func(context.Context, string) error { return nil })
			So(h.Subscribe("deploys", f), ShouldEqual, ErrNotifierIncomparable)
		})
	})

	Convey("Given subscribers on several topics", t, func() {
		h := NewHub()
		So(h.Subscribe("deploys", new(recorder)), ShouldBeNil)
		So(h.Subscribe("alerts", new(recorder)), ShouldBeNil)
		So(h.Subscribe("billing", new(recorder)), ShouldBeNil)

		Convey("Then Topics lists them sorted", func() {
			So(h.Topics(), ShouldResemble, []string{"alerts", "billing", "deploys"})
		})
	})
}

func TestHub_ConcurrentSubscribe(t *testing.T) {
	h := NewHub()
	var wg sync.WaitGroup
	recorders := make([]*recorder, 32)
	for i := range recorders {
		recorders[i] = new(recorder)
	}
	for _, r := range recorders {
		r := r
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = h.Subscribe("deploys", r)
		}()
	}
	wg.Wait()
	if got := len(h.Notifiers("deploys")); got != len(recorders) {
		t.Fatalf("want %d subscribers, got %d", len(recorders), got)
	}
	if err := h.Publish(context.Background(), "deploys", "hello"); err != nil {
		t.Fatal(err)
	}
	for _, r := range recorders {
		if got := r.Payloads(); len(got) != 1 || got[0] != "hello" {
			t.Fatalf("want [hello], got %v", got)
		}
	}
}

func TestHub_CloseWaitsForAsync(t *testing.T) {
	h := NewHub()
	release := make(chan struct{})
	slow := &gate{release: release}
	if err := h.Subscribe("deploys", slow); err != nil {
		t.Fatal(err)
	}
	errC := h.AsyncPublish(context.Background(), "deploys", "hello")
	close(release)
	for err := range errC {
		if err != nil {
			t.Fatal(err)
		}
	}
	if err := h.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
}

type gate struct {
	release <-chan struct{}
}

func (g *gate) Notify(ctx context.Context, message string) error {
	<-g.release
	return nil
}

func (g *gate) Deliver(ctx context.Context, payload string) error {
	return g.Notify(ctx, payload)
}

func (g *gate) Format(message string) string {
	return message
}

func (g *gate) Describe() string {
	return "Gate"
}
