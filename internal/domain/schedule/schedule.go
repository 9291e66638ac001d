// Package schedule generates appointment slot grids for the time-slot
// picker component. Slots are half-open intervals stepped by a fixed
// duration; booked ranges mark overlapping slots unavailable.
package schedule

import "time"

// DefaultInterval is the slot length used when callers pass a
// non-positive interval.
const DefaultInterval = 30 * time.Minute

// Range is a booked half-open interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect.
func (r Range) Overlaps(start, end time.Time) bool {
	return start.Before(r.End) && r.Start.Before(end)
}

// Slot is one bookable interval in the grid.
type Slot struct {
	Start     time.Time
	End       time.Time
	Available bool
}

// Slots steps from dayStart to dayEnd by interval and returns the
// resulting grid. A slot that would extend past dayEnd is not
// produced, so a range the interval does not divide evenly loses its
// ragged tail. A slot overlapping any booked range is returned with
// Available set to false.
func Slots(dayStart, dayEnd time.Time, interval time.Duration, booked []Range) []Slot {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if !dayStart.Before(dayEnd) {
		return nil
	}

	var out []Slot
	for start := dayStart; !start.Add(interval).After(dayEnd); start = start.Add(interval) {
		end := start.Add(interval)
		out = append(out, Slot{
			Start:     start,
			End:       end,
			Available: !conflicts(start, end, booked),
		})
	}
	return out
}

func conflicts(start, end time.Time, booked []Range) bool {
	for _, r := range booked {
		if r.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// Available filters a grid down to its open slots.
func Available(slots []Slot) []Slot {
	var out []Slot
	for _, s := range slots {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}
