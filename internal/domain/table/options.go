package table

// Option applies a configuration option to the Virtualizer.
type Option func(*Virtualizer)

// WithRowHeight sets the fixed row height in pixels.
func WithRowHeight(px int) Option {
	return func(v *Virtualizer) {
		if px > 0 {
			v.rowHeight = px
		}
	}
}

// WithOverscan sets the overscan buffer: rows rendered before the
// visible range and the total extra rows in the window.
func WithOverscan(before, total int) Option {
	return func(v *Virtualizer) {
		if before >= 0 && total >= before {
			v.overscanBefore = before
			v.overscanTotal = total
		}
	}
}

// WithThreshold sets the row count above which virtualization
// activates. At or below the threshold every row is materialized.
func WithThreshold(rows int) Option {
	return func(v *Virtualizer) {
		if rows >= 0 {
			v.threshold = rows
		}
	}
}
