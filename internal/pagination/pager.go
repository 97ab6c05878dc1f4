// Package pagination tracks the page/limit/total state of a paged listing.
// A Pager is not safe for concurrent use.
package pagination

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Pager struct {
	page  int
	limit int
	total int
}

// New returns a pager on page 1. Out-of-range limits are clamped.
func New(limit int) *Pager {
	return &Pager{page: 1, limit: clampLimit(limit)}
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

func (p *Pager) Page() int  { return p.page }
func (p *Pager) Limit() int { return p.limit }
func (p *Pager) Total() int { return p.total }

// TotalPages is ceil(total/limit); zero when there are no items.
func (p *Pager) TotalPages() int {
	return (p.total + p.limit - 1) / p.limit
}

func (p *Pager) HasNext() bool { return p.page < p.TotalPages() }
func (p *Pager) HasPrev() bool { return p.page > 1 }

// GoTo moves to page n if it exists and reports whether it moved.
func (p *Pager) GoTo(n int) bool {
	if n < 1 || n > p.TotalPages() {
		return false
	}
	p.page = n
	return true
}

func (p *Pager) Next() bool {
	if !p.HasNext() {
		return false
	}
	p.page++
	return true
}

func (p *Pager) Prev() bool {
	if !p.HasPrev() {
		return false
	}
	p.page--
	return true
}

func (p *Pager) First() { p.page = 1 }

// Last moves to the final page, or page 1 when the listing is empty.
func (p *Pager) Last() {
	p.page = max(p.TotalPages(), 1)
}

// SetLimit changes the page size and returns to page 1.
func (p *Pager) SetLimit(limit int) {
	p.limit = clampLimit(limit)
	p.page = 1
}

// SetTotal records the item count reported by the server. If the current
// page no longer exists the pager moves to the last one.
func (p *Pager) SetTotal(total int) {
	p.total = max(total, 0)
	if pages := p.TotalPages(); pages > 0 && p.page > pages {
		p.page = pages
	}
}
