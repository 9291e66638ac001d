package lookup

import (
	"time"

	"github.com/mosaiccare/chartkit/pkg/logger"
)

// Option applies a configuration option to the Debouncer.
type Option func(*Debouncer)

// WithDelay sets the quiescence delay before a query is dispatched.
func WithDelay(delay time.Duration) Option {
	return func(d *Debouncer) {
		if delay > 0 {
			d.delay = delay
		}
	}
}

// WithMinQueryLength sets the minimum trimmed query length that
// triggers a dispatch. Shorter queries clear results instead.
func WithMinQueryLength(n int) Option {
	return func(d *Debouncer) {
		if n >= 0 {
			d.minQueryLen = n
		}
	}
}

// WithLogger sets a custom logger for the debouncer.
func WithLogger(l logger.Logger) Option {
	return func(d *Debouncer) {
		if l != nil {
			d.logger = l
		}
	}
}
