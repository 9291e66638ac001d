// Package table provides the headless state machinery behind the data
// table component: virtual window math, the sort-toggle protocol,
// selection-set management, and pagination arithmetic. Every operation
// is a pure transform over caller-owned state; the engine never sorts,
// stores, or fetches rows itself.
package table

import (
	"math"

	"github.com/mosaiccare/chartkit/pkg/metrics"
)

// Default virtualization constants. The overscan buffer absorbs scroll
// jitter without visible popping.
const (
	defaultRowHeight      = 48
	defaultOverscanBefore = 5
	defaultOverscanTotal  = 10
	defaultThreshold      = 50
)

// Window is the contiguous index range of rows to materialize, plus
// the spacer extents that preserve the total scrollable height. It is
// derived and transient; recompute it on every scroll/resize event.
type Window struct {
	TotalHeight    int
	Start          int
	End            int
	LeadingOffset  int
	TrailingHeight int
}

// Rows returns the number of rows the window materializes.
func (w Window) Rows() int {
	return w.End - w.Start
}

// Virtualizer computes row windows for a fixed row height. Safe for
// concurrent use; it holds only immutable configuration.
type Virtualizer struct {
	rowHeight      int
	overscanBefore int
	overscanTotal  int
	threshold      int
}

// NewVirtualizer creates a virtualizer with configuration options.
func NewVirtualizer(opts ...Option) *Virtualizer {
	v := &Virtualizer{
		rowHeight:      defaultRowHeight,
		overscanBefore: defaultOverscanBefore,
		overscanTotal:  defaultOverscanTotal,
		threshold:      defaultThreshold,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// RowHeight returns the configured fixed row height.
func (v *Virtualizer) RowHeight() int {
	return v.rowHeight
}

// Active reports whether virtualization applies: row count above the
// threshold and the table not in a loading state.
func (v *Virtualizer) Active(rowCount int, loading bool) bool {
	return rowCount > v.threshold && !loading
}

// Window computes the virtual window for the current scroll state.
// When virtualization is inactive the window spans every row. The
// result is idempotent for unchanged inputs and always satisfies
// 0 <= Start <= End <= rowCount with LeadingOffset == Start*rowHeight.
func (v *Virtualizer) Window(rowCount int, scrollOffset, viewportHeight float64, loading bool) Window {
	if rowCount < 0 {
		rowCount = 0
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	total := rowCount * v.rowHeight
	w := Window{TotalHeight: total, End: rowCount}

	if v.Active(rowCount, loading) {
		start := int(math.Floor(scrollOffset/float64(v.rowHeight))) - v.overscanBefore
		if start < 0 {
			start = 0
		}
		if start > rowCount {
			start = rowCount
		}
		visible := int(math.Ceil(viewportHeight/float64(v.rowHeight))) + v.overscanTotal
		end := start + visible
		if end > rowCount {
			end = rowCount
		}
		w.Start = start
		w.End = end
		w.LeadingOffset = start * v.rowHeight
		w.TrailingHeight = (rowCount - end) * v.rowHeight
	}

	metrics.RecordWindowRecompute()
	metrics.UpdateWindowRows(w.Rows())
	return w
}
