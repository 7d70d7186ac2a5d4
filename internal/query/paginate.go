package query

// Page is the slice of records to render plus the metadata page
// controls need.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// TotalPages is ceil(totalItems / size), but never less than 1: an
// empty collection still renders as a single empty page.
func TotalPages(totalItems, size int) int {
	if size < 1 {
		size = 1
	}
	pages := (totalItems + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Paginate slices a collection into the requested 1-based page. The
// page number is clamped into [1, TotalPages] and the slice bounds are
// clamped to the collection length, so the last page may be partial and
// page 1 of an empty collection has no items.
func Paginate[T any](records []T, page, size int) Page[T] {
	if size < 1 {
		size = 1
	}
	totalPages := TotalPages(len(records), size)
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > len(records) {
		start = len(records)
	}
	if end > len(records) {
		end = len(records)
	}

	return Page[T]{
		Items:      records[start:end],
		Number:     page,
		Size:       size,
		TotalItems: len(records),
		TotalPages: totalPages,
	}
}

// Pager tracks the current page of a list view. Navigation clamps at
// the bounds rather than wrapping, and anything that changes the
// underlying collection or the page size snaps back to page 1 so the
// view never lands on an out-of-range page.
type Pager struct {
	page       int
	size       int
	totalItems int
}

// NewPager creates a pager on page 1 with the given page size.
func NewPager(size int) *Pager {
	if size < 1 {
		size = 1
	}
	return &Pager{page: 1, size: size}
}

// Page returns the current 1-based page number.
func (p *Pager) Page() int { return p.page }

// Size returns the page size.
func (p *Pager) Size() int { return p.size }

// TotalPages returns the page count for the current total.
func (p *Pager) TotalPages() int { return TotalPages(p.totalItems, p.size) }

// SetTotal records the size of the (filtered) collection and clamps the
// current page into range.
func (p *Pager) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	p.totalItems = n
	if p.page > p.TotalPages() {
		p.page = p.TotalPages()
	}
}

// SetSize changes the page size and resets to page 1.
func (p *Pager) SetSize(size int) {
	if size < 1 {
		size = 1
	}
	p.size = size
	p.page = 1
}

// Reset returns to page 1. Called whenever the filter criteria change.
func (p *Pager) Reset() { p.page = 1 }

// Next advances one page; past the last page it is a no-op.
func (p *Pager) Next() {
	if p.page < p.TotalPages() {
		p.page++
	}
}

// Prev steps back one page; before page 1 it is a no-op.
func (p *Pager) Prev() {
	if p.page > 1 {
		p.page--
	}
}

// Slice applies the pager to a collection.
func Slice[T any](p *Pager, records []T) Page[T] {
	p.SetTotal(len(records))
	return Paginate(records, p.page, p.size)
}
