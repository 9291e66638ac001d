// Package session binds configuration to engine instances for one
// logical caller: a table's window, sort, selection, and pagination
// state plus a debounced medication lookup. Presentation shells hold
// one Session per mounted component tree.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/mosaiccare/chartkit/internal/adapters/catalog"
	"github.com/mosaiccare/chartkit/internal/domain/lookup"
	"github.com/mosaiccare/chartkit/internal/domain/schedule"
	"github.com/mosaiccare/chartkit/internal/domain/table"
	"github.com/mosaiccare/chartkit/pkg/logger"
)

// Session owns per-caller engine state. Safe for concurrent use.
type Session struct {
	mu sync.RWMutex

	// Core components
	virtualizer *table.Virtualizer
	selection   table.Selection
	sort        table.SortState
	pagination  table.Pagination
	debouncer   *lookup.Debouncer
	searcher    catalog.Searcher

	// Configuration
	rowHeight      int
	threshold      int
	overscanBefore int
	overscanTotal  int
	debounceDelay  time.Duration
	minQueryLen    int
	selectionMode  table.Mode
	slotInterval   time.Duration

	// Latest lookup delivery
	lookupQuery   string
	lookupMatches []lookup.Match

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Session.
type Option func(*Session)

// WithRowHeight sets the fixed row height in pixels.
func WithRowHeight(px int) Option {
	return func(s *Session) {
		if px > 0 {
			s.rowHeight = px
		}
	}
}

// WithVirtualizeThreshold sets the row count above which windowing
// activates.
func WithVirtualizeThreshold(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.threshold = n
		}
	}
}

// WithOverscan sets the window padding before the visible rows and in
// total.
func WithOverscan(before, total int) Option {
	return func(s *Session) {
		if before >= 0 && total >= before {
			s.overscanBefore = before
			s.overscanTotal = total
		}
	}
}

// WithDebounceDelay sets the lookup quiescence delay.
func WithDebounceDelay(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.debounceDelay = d
		}
	}
}

// WithMinQueryLength sets the minimum lookup query length.
func WithMinQueryLength(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.minQueryLen = n
		}
	}
}

// WithSelectionMode sets single or multiple row selection.
func WithSelectionMode(mode table.Mode) Option {
	return func(s *Session) {
		s.selectionMode = mode
	}
}

// WithSlotInterval sets the appointment slot length.
func WithSlotInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.slotInterval = d
		}
	}
}

// WithSearcher binds the lookup backend. Without one the session
// starts with lookup disabled.
func WithSearcher(searcher catalog.Searcher) Option {
	return func(s *Session) {
		s.searcher = searcher
	}
}

// WithLogger sets a custom logger for the session.
func WithLogger(l logger.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Session with default configuration.
func New(opts ...Option) *Session {
	s := &Session{
		rowHeight:      48,
		threshold:      50,
		overscanBefore: 5,
		overscanTotal:  10,
		debounceDelay:  300 * time.Millisecond,
		minQueryLen:    2,
		selectionMode:  table.Multiple,
		slotInterval:   schedule.DefaultInterval,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the engine instances.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("session")
	}

	s.virtualizer = table.NewVirtualizer(
		table.WithRowHeight(s.rowHeight),
		table.WithOverscan(s.overscanBefore, s.overscanTotal),
		table.WithThreshold(s.threshold),
	)
	s.selection = table.NewSelection(s.selectionMode)
	s.pagination = table.Pagination{Page: 1, PageSize: 10}

	if s.searcher != nil {
		store, ok := s.searcher.(*catalog.Store)
		var search lookup.SearchFunc
		if ok {
			search = store.SearchFunc()
		} else {
			search = s.searchAdapter()
		}
		s.debouncer = lookup.New(search, s.applyResults,
			lookup.WithDelay(s.debounceDelay),
			lookup.WithMinQueryLength(s.minQueryLen),
			lookup.WithLogger(s.logger),
		)
	}

	s.started = true
	s.logger.Info(ctx, "session started",
		logger.Int("rowHeight", s.rowHeight),
		logger.Int("virtualizeThreshold", s.threshold),
		logger.Bool("lookupEnabled", s.debouncer != nil),
	)
	return nil
}

// Stop shuts the session down, draining any in-flight lookup.
func (s *Session) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = false
	d := s.debouncer
	s.mu.Unlock()

	if d != nil {
		if err := d.Close(ctx); err != nil {
			return err
		}
	}
	s.logger.Info(ctx, "session stopped")
	return nil
}

// searchAdapter bridges an arbitrary Searcher into the lookup
// contract.
func (s *Session) searchAdapter() lookup.SearchFunc {
	return func(ctx context.Context, query string) ([]lookup.Match, error) {
		meds, err := s.searcher.Search(ctx, query)
		if err != nil {
			return nil, err
		}
		matches := make([]lookup.Match, len(meds))
		for i, m := range meds {
			matches[i] = lookup.Match{Code: m.Code, Name: m.Name, Strength: m.Strength}
		}
		return matches, nil
	}
}

// applyResults is the debouncer's delivery callback.
func (s *Session) applyResults(query string, matches []lookup.Match) {
	s.mu.Lock()
	s.lookupQuery = query
	s.lookupMatches = matches
	s.mu.Unlock()
}

// Window computes the virtual window for the current scroll state.
func (s *Session) Window(rowCount int, scrollOffset, viewportHeight float64, loading bool) table.Window {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.virtualizer.Window(rowCount, scrollOffset, viewportHeight, loading)
}

// SortBy advances the sort state for a header click.
func (s *Session) SortBy(columnID string, sortable bool) table.SortState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = table.NextSort(s.sort, columnID, sortable)
	return s.sort
}

// Sort returns the current sort state.
func (s *Session) Sort() table.SortState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sort
}

// ToggleRow toggles one row's selection.
func (s *Session) ToggleRow(key string) table.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = s.selection.Toggle(key)
	return s.selection
}

// ToggleAllVisible applies the select-all checkbox over the visible
// page. The prior selection is replaced, not unioned.
func (s *Session) ToggleAllVisible(visibleKeys []string) table.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = s.selection.ReplaceWithVisible(visibleKeys)
	return s.selection
}

// Selection returns the current selection.
func (s *Session) Selection() table.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// SetTotal records the table's row total for pagination.
func (s *Session) SetTotal(total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pagination.Total = total
}

// GoTo requests a page; out-of-range requests clamp.
func (s *Session) GoTo(page int) table.PageInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pagination.Page = page
	info := table.Paginate(s.pagination)
	s.pagination.Page = info.Page
	return info
}

// ResizePage changes the page size without resetting the page.
func (s *Session) ResizePage(pageSize int) table.PageInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pagination = table.Paginate(s.pagination).Resize(pageSize)
	info := table.Paginate(s.pagination)
	s.pagination.Page = info.Page
	return info
}

// PageInfo derives the current pagination display state.
func (s *Session) PageInfo() table.PageInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return table.Paginate(s.pagination)
}

// ObserveQuery feeds one lookup keystroke to the debouncer. A no-op
// when lookup is disabled.
func (s *Session) ObserveQuery(query string) {
	s.mu.RLock()
	d := s.debouncer
	s.mu.RUnlock()
	if d != nil {
		d.Observe(query)
	}
}

// Matches returns the latest delivered lookup results and the query
// they answer.
func (s *Session) Matches() (string, []lookup.Match) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookupQuery, s.lookupMatches
}

// Slots generates the appointment grid for one day at the configured
// interval.
func (s *Session) Slots(dayStart, dayEnd time.Time, booked []schedule.Range) []schedule.Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return schedule.Slots(dayStart, dayEnd, s.slotInterval, booked)
}
