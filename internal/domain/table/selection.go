package table

import (
	"github.com/mosaiccare/chartkit/pkg/metrics"
)

// Mode selects how many rows may be selected at once.
type Mode string

const (
	Single   Mode = "single"
	Multiple Mode = "multiple"
)

// Selection is an ordered set of selected row keys. The caller owns
// the state; every operation returns the resulting selection rather
// than mutating in place.
type Selection struct {
	keys []string
	mode Mode
}

// NewSelection creates a selection in the given mode, optionally
// pre-populated with keys.
func NewSelection(mode Mode, keys ...string) Selection {
	s := Selection{mode: mode, keys: append([]string(nil), keys...)}
	metrics.UpdateSelectionSize(len(s.keys))
	return s
}

// Mode returns the selection mode.
func (s Selection) Mode() Mode {
	return s.mode
}

// Keys returns a copy of the selected keys in selection order.
func (s Selection) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Len returns the number of selected keys.
func (s Selection) Len() int {
	return len(s.keys)
}

// Has reports whether key is selected.
func (s Selection) Has(key string) bool {
	for _, k := range s.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Toggle computes the selection after a click on key. Single mode:
// clicking the selected key clears the selection; clicking another
// key replaces it. Multiple mode: an absent key appends, a present
// key is removed with the relative order of the rest preserved.
func (s Selection) Toggle(key string) Selection {
	next := Selection{mode: s.mode}

	if s.mode == Single {
		if !(len(s.keys) == 1 && s.keys[0] == key) {
			next.keys = []string{key}
		}
		metrics.UpdateSelectionSize(len(next.keys))
		return next
	}

	if s.Has(key) {
		next.keys = make([]string, 0, len(s.keys)-1)
		for _, k := range s.keys {
			if k != key {
				next.keys = append(next.keys, k)
			}
		}
	} else {
		next.keys = append(append(make([]string, 0, len(s.keys)+1), s.keys...), key)
	}
	metrics.UpdateSelectionSize(len(next.keys))
	return next
}

// ReplaceWithVisible computes the "select all" toggle over the keys
// currently visible. If every visible key is already selected the
// result is empty; otherwise the selection becomes exactly the visible
// keys. This is a destructive replace of the prior selection, not a
// union with it.
func (s Selection) ReplaceWithVisible(visible []string) Selection {
	next := Selection{mode: s.mode}

	all := len(visible) > 0
	for _, k := range visible {
		if !s.Has(k) {
			all = false
			break
		}
	}
	if !all {
		next.keys = append([]string(nil), visible...)
	}
	metrics.UpdateSelectionSize(len(next.keys))
	return next
}
