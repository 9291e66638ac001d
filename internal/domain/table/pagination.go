package table

// Pagination is the caller-owned paging state: 1-based page, page
// size, and total row count.
type Pagination struct {
	Page     int
	PageSize int
	Total    int
}

// PageInfo carries the derived display numbers for a pagination state.
type PageInfo struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	StartItem  int
	EndItem    int
}

// Paginate derives display numbers from a pagination state. Inputs
// are clamped rather than rejected: page size is raised to at least 1
// and the page is pulled into [1, TotalPages], so transient caller
// state never produces out-of-range item numbers. An empty table
// yields zero items and zero pages.
func Paginate(p Pagination) PageInfo {
	size := p.PageSize
	if size < 1 {
		size = 1
	}
	total := p.Total
	if total < 0 {
		total = 0
	}

	if total == 0 {
		return PageInfo{Page: 1, PageSize: size}
	}

	totalPages := (total + size - 1) / size
	page := p.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	end := page * size
	if end > total {
		end = total
	}

	return PageInfo{
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: totalPages,
		StartItem:  (page-1)*size + 1,
		EndItem:    end,
	}
}

// CanPrevious reports whether a previous page exists.
func (i PageInfo) CanPrevious() bool {
	return i.Page > 1
}

// CanNext reports whether a next page exists.
func (i PageInfo) CanNext() bool {
	return i.Page < i.TotalPages
}

// Navigation helpers return the page number the caller should fetch.
// The second return is false when the move is disabled; the engine
// never mutates paging state itself.

// First requests page 1.
func (i PageInfo) First() (int, bool) {
	if !i.CanPrevious() {
		return i.Page, false
	}
	return 1, true
}

// Previous requests the preceding page.
func (i PageInfo) Previous() (int, bool) {
	if !i.CanPrevious() {
		return i.Page, false
	}
	return i.Page - 1, true
}

// Next requests the following page.
func (i PageInfo) Next() (int, bool) {
	if !i.CanNext() {
		return i.Page, false
	}
	return i.Page + 1, true
}

// Last requests the final page.
func (i PageInfo) Last() (int, bool) {
	if !i.CanNext() {
		return i.Page, false
	}
	return i.TotalPages, true
}

// Resize reports the page-size change upward. No page recomputation
// is mandated; callers typically reset to page 1, but the engine is
// agnostic.
func (i PageInfo) Resize(pageSize int) Pagination {
	return Pagination{Page: i.Page, PageSize: pageSize, Total: i.Total}
}
