package state

// PageState manages the current page of the loaded document.
type PageState struct {
	current int // 1-based; 0 only while no document is loaded
	count   int
}

// NewPageState creates an empty page state.
func NewPageState() *PageState {
	return &PageState{}
}

// Current returns the 1-based page index, 0 when nothing is loaded.
func (p *PageState) Current() int {
	return p.current
}

// Count returns the page count of the loaded document.
func (p *PageState) Count() int {
	return p.count
}

// Reset adopts a newly loaded document of count pages. With retain the
// previously held page is clamped into the new range, otherwise page 1 is
// selected.
func (p *PageState) Reset(count int, retain bool) {
	p.count = count
	if count < 1 {
		p.current = 0
		return
	}
	if !retain || p.current < 1 {
		p.current = 1
		return
	}
	p.current = clampPage(p.current, count)
}

// GoTo selects page n clamped to [1, Count]. It reports whether the page
// changed.
func (p *PageState) GoTo(n int) bool {
	if p.count < 1 {
		return false
	}
	n = clampPage(n, p.count)
	if n == p.current {
		return false
	}
	p.current = n
	return true
}

// Next advances one page; no-op on the last page.
func (p *PageState) Next() bool {
	if p.current >= p.count {
		return false
	}
	return p.GoTo(p.current + 1)
}

// Previous goes back one page; no-op on the first page.
func (p *PageState) Previous() bool {
	if p.current <= 1 {
		return false
	}
	return p.GoTo(p.current - 1)
}

// IsFirst reports whether the first page is shown.
func (p *PageState) IsFirst() bool {
	return p.current <= 1
}

// IsLast reports whether the last page is shown.
func (p *PageState) IsLast() bool {
	return p.current >= p.count
}

func clampPage(n, count int) int {
	if n < 1 {
		return 1
	}
	if n > count {
		return count
	}
	return n
}
