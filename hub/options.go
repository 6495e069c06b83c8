package hub

import (
	"sync"
	"sync/atomic"

	"github.com/go-leo/gox/syncx/gopher"
	"github.com/go-leo/gox/syncx/gopher/sample"
)

type option struct {
	Pool       gopher.Gopher
	MaxBackoff int
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Pool == nil {
		o.Pool = sample.Gopher{}
	}
	if o.MaxBackoff <= 0 {
		o.MaxBackoff = 16
	}
	return o
}

type Option func(*option)

// Pool sets the goroutine pool AsyncPublish runs subscribers on.
func Pool(pool gopher.Gopher) Option {
	return func(o *option) {
		o.Pool = pool
	}
}

// MaxBackoff caps the spin backoff of the subscriber list's compare-and-swap
// loop. It defaults to 16.
func MaxBackoff(max int) Option {
	return func(o *option) {
		o.MaxBackoff = max
	}
}

func NewHub(opts ...Option) Hub {
	return &hub{
		notifierMap: sync.Map{},
		wg:          sync.WaitGroup{},
		inShutdown:  atomic.Bool{},
		options:     newOption(opts...),
	}
}
