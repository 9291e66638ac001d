package table

import "strconv"

// Align positions cell content within a column.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Column describes one column over caller-defined rows of type T.
// Immutable for the table's configuration lifetime.
type Column[T any] struct {
	ID       string
	Header   string
	Value    func(T) any    // value accessor for sorting/display
	Cell     func(T) string // optional custom cell transform
	Sortable bool
	Width    int
	Align    Align
}

// Render produces the display string for a row's cell, preferring the
// custom transform over the raw value.
func (c Column[T]) Render(row T) string {
	if c.Cell != nil {
		return c.Cell(row)
	}
	if c.Value == nil {
		return ""
	}
	switch v := c.Value(row).(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// KeyFunc derives the stable selection key for a row. Callers supply
// an accessor over their own row type; rows are otherwise opaque to
// the engine.
type KeyFunc[T any] func(row T, index int) string

// IndexKey is the fallback KeyFunc for rows that carry no identifier:
// the positional index, stable only while the data set is.
func IndexKey[T any](_ T, index int) string {
	return strconv.Itoa(index)
}

// Keys derives the key for every row in order, feeding select-all and
// selection toggles.
func Keys[T any](rows []T, key KeyFunc[T]) []string {
	if key == nil {
		key = IndexKey[T]
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = key(r, i)
	}
	return out
}
