// Package lookup coordinates debounced, last-query-wins invocation of
// an externally supplied asynchronous search function, as used by the
// medication autocomplete component.
package lookup

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mosaiccare/chartkit/pkg/logger"
	"github.com/mosaiccare/chartkit/pkg/metrics"
)

// Default debounce configuration constants.
const (
	defaultDelay          = 300 * time.Millisecond
	defaultMinQueryLength = 2
)

// Match is one result from the caller's search function.
type Match struct {
	Code     string
	Name     string
	Strength string
}

// SearchFunc is the externally supplied asynchronous lookup. It must
// honor ctx: a superseded query's context is cancelled.
type SearchFunc func(ctx context.Context, query string) ([]Match, error)

// ResultFunc receives the matches for the query that survived the
// debounce. It is invoked from the debouncer's dispatch goroutine; a
// query below the minimum length delivers nil synchronously from
// Observe to clear stale results.
type ResultFunc func(query string, matches []Match)

// Debouncer suppresses search dispatch until input has been quiescent
// for the configured delay and guarantees at most one live result
// application per keystroke burst. Supersession is tracked with a
// generation counter rather than timer cancellation alone, so
// last-query-wins holds even while a search is in flight.
type Debouncer struct {
	search  SearchFunc
	deliver ResultFunc

	delay       time.Duration
	minQueryLen int

	mu         sync.Mutex
	generation uint64
	pending    string
	timer      *time.Timer
	cancel     context.CancelFunc
	closed     bool

	wg sync.WaitGroup

	logger logger.Logger
}

// New creates a debouncer over the given search and delivery
// functions with configuration options.
func New(search SearchFunc, deliver ResultFunc, opts ...Option) *Debouncer {
	d := &Debouncer{
		search:      search,
		deliver:     deliver,
		delay:       defaultDelay,
		minQueryLen: defaultMinQueryLength,
		logger:      logger.Get().Named("lookup"),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Observe registers a keystroke. Each call supersedes any pending or
// in-flight query and restarts the quiescence timer. Queries shorter
// than the minimum length clear results without dispatching.
func (d *Debouncer) Observe(query string) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}

	// Every keystroke supersedes whatever came before it.
	d.generation++
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}

	if len(strings.TrimSpace(query)) < d.minQueryLen {
		if d.timer != nil {
			d.timer.Stop()
		}
		d.pending = ""
		d.mu.Unlock()
		d.deliver(query, nil)
		return
	}

	d.pending = query
	if d.timer == nil {
		d.timer = time.AfterFunc(d.delay, d.fire)
	} else {
		d.timer.Reset(d.delay)
	}
	d.mu.Unlock()
}

// fire dispatches the pending query once input has been quiescent.
func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.closed || d.pending == "" {
		d.mu.Unlock()
		return
	}
	gen := d.generation
	query := d.pending
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.wg.Add(1)
	d.mu.Unlock()

	defer d.wg.Done()

	metrics.RecordLookupDispatched()
	start := time.Now()
	matches, err := d.search(ctx, query)
	metrics.RecordLookupLatency(float64(time.Since(start).Milliseconds()))

	if err != nil {
		// A failed lookup yields an empty result set; no retries.
		metrics.RecordLookupError()
		d.logger.Warn(ctx, "search failed", logger.String("query", query), logger.Error(err))
		matches = nil
	}

	d.mu.Lock()
	current := !d.closed && gen == d.generation
	d.mu.Unlock()

	if !current {
		metrics.RecordLookupSuperseded()
		return
	}
	if len(matches) == 0 && err == nil {
		metrics.RecordLookupEmpty()
	}
	d.deliver(query, matches)
}

// Close stops the timer, cancels any in-flight search, and waits for
// dispatch to drain, honoring ctx for the wait.
func (d *Debouncer) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("lookup close timed out: %w", ctx.Err())
	}
}
