package table

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortState names the column and direction the caller should sort by.
// The engine only computes the next state; the caller owns the actual
// comparison and supplies already-sorted data back in.
type SortState struct {
	Column    string
	Direction Direction
}

// Sorted reports whether any column is being sorted.
func (s SortState) Sorted() bool {
	return s.Column != ""
}

// NextSort computes the state after a header click on columnID. An
// unsortable column is a no-op. A click on the currently-ascending
// column flips to descending; any other click (different column, or
// same column currently descending) starts ascending. There is no
// unsorted third state.
func NextSort(cur SortState, columnID string, sortable bool) SortState {
	if !sortable {
		return cur
	}
	if cur.Column == columnID && cur.Direction == Asc {
		return SortState{Column: columnID, Direction: Desc}
	}
	return SortState{Column: columnID, Direction: Asc}
}
