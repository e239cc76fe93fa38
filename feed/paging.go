package feed

// A Reveal tracks the visible-count state of the incremental "show more"
// consumption mode. The zero value is not useful; construct with NewReveal.
type Reveal struct {
	initial int
	step    int
	visible int
}

// NewReveal returns a Reveal showing initial items, growing by step.
func NewReveal(initial, step int) *Reveal {
	if initial < 0 {
		initial = 0
	}
	if step < 1 {
		step = 1
	}
	return &Reveal{initial: initial, step: step, visible: initial}
}

// More grows the visible count by one step, clamped to the filtered length n.
func (r *Reveal) More(n int) {
	r.visible = min(r.visible+r.step, n)
}

// Less collapses back to the initial count.
func (r *Reveal) Less() {
	r.visible = r.initial
}

// Reset restores the initial count. Callers invoke it whenever a filter
// changes, so a narrowed result set starts from the top again.
func (r *Reveal) Reset() {
	r.visible = r.initial
}

// Show admits a caller-held visible count (a stateless client reporting how
// many items it currently shows), clamped to [initial, n]. With n below the
// initial count the whole filtered set is visible.
func (r *Reveal) Show(count, n int) {
	if count < r.initial {
		count = r.initial
	}
	r.visible = min(count, n)
}

// Visible reports how many of the n filtered reviews should render.
func (r *Reveal) Visible(n int) int {
	return min(r.visible, n)
}

// CanShowMore reports whether another More call would reveal anything.
func (r *Reveal) CanShowMore(n int) bool {
	return r.Visible(n) < n
}

// Next returns the visible count after one more step, clamped to n.
func (r *Reveal) Next(n int) int {
	return min(r.Visible(n)+r.step, n)
}

// A Pager tracks the 1-indexed page of the fixed-size pagination mode.
type Pager struct {
	size int
	page int
}

// NewPager returns a Pager on page 1 with the given page size.
func NewPager(size int) *Pager {
	if size < 1 {
		size = 1
	}
	return &Pager{size: size, page: 1}
}

// Set moves to page p, clamped to at least 1. Clamping against the filtered
// length happens in Page, since the length may shrink after Set.
func (p *Pager) Set(page int) {
	if page < 1 {
		page = 1
	}
	p.page = page
}

// Reset returns to the first page. Callers invoke it on any filter change.
func (p *Pager) Reset() {
	p.page = 1
}

// TotalPages reports the page count for n filtered reviews; never below 1,
// so an empty result still renders as page 1 of 1.
func (p *Pager) TotalPages(n int) int {
	pages := (n + p.size - 1) / p.size
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Page reports the current page clamped into [1, TotalPages(n)]. A page
// left dangling by a shrinking filtered set clamps down rather than
// rendering empty.
func (p *Pager) Page(n int) int {
	if total := p.TotalPages(n); p.page > total {
		return total
	}
	return p.page
}

// Bounds returns the half-open slice window of the current page over n
// filtered reviews.
func (p *Pager) Bounds(n int) (start, end int) {
	page := p.Page(n)
	start = (page - 1) * p.size
	end = min(start+p.size, n)
	if start > n {
		start = n
	}
	return start, end
}
