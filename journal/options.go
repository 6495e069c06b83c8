package journal

import (
	"time"

	"github.com/google/uuid"
)

type option struct {
	Prefix string
	Clock  func() time.Time
	NewID  func() string
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Prefix == "" {
		o.Prefix = "journal:"
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	return o
}

type Option func(*option)

// Prefix sets the key prefix entries are stored under. It defaults to
// "journal:".
func Prefix(prefix string) Option {
	return func(o *option) {
		o.Prefix = prefix
	}
}

// Clock replaces the time source, mostly for tests. It defaults to time.Now.
func Clock(now func() time.Time) Option {
	return func(o *option) {
		o.Clock = now
	}
}

// NewID replaces the entry ID source, mostly for tests. It defaults to
// uuid.NewString.
func NewID(newID func() string) Option {
	return func(o *option) {
		o.NewID = newID
	}
}
