package webhook

import (
	"net/http"
	"time"
)

type option struct {
	Client  *http.Client
	Timeout time.Duration
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Client == nil {
		o.Client = http.DefaultClient
	}
	return o
}

type Option func(*option)

// Client sets the HTTP client requests go through. It defaults to
// http.DefaultClient.
func Client(client *http.Client) Option {
	return func(o *option) {
		o.Client = client
	}
}

// Timeout bounds each delivery. Zero, the default, means no bound beyond the
// caller's context.
func Timeout(timeout time.Duration) Option {
	return func(o *option) {
		o.Timeout = timeout
	}
}
