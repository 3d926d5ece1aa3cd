package views

// Paginator tracks a cursor over a list shown one page at a time. The page
// always contains the cursor.
type Paginator struct {
	size   int
	total  int
	cursor int
	offset int
}

// NewPaginator creates a paginator showing size rows per page
func NewPaginator(size int) *Paginator {
	if size <= 0 {
		size = 10
	}
	return &Paginator{size: size}
}

// SetPageSize resizes the page, for instance after a terminal resize
func (p *Paginator) SetPageSize(size int) {
	p.size = max(size, 1)
	p.follow()
}

// SetTotal updates the list length and clamps the cursor into it
func (p *Paginator) SetTotal(total int) {
	p.total = total
	p.SetCursor(p.cursor)
}

// Cursor returns the absolute index under the cursor
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor moves the cursor to pos, clamped to the list
func (p *Paginator) SetCursor(pos int) {
	p.cursor = max(min(pos, p.total-1), 0)
	p.follow()
}

// CursorUp moves up one row; false at the top
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.SetCursor(p.cursor - 1)
	return true
}

// CursorDown moves down one row; false at the bottom
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.total-1 {
		return false
	}
	p.SetCursor(p.cursor + 1)
	return true
}

// VisibleRange returns the [start, end) slice of rows on the current page
func (p *Paginator) VisibleRange() (start, end int) {
	return p.offset, min(p.offset+p.size, p.total)
}

// TotalPages is at least 1, even for an empty list
func (p *Paginator) TotalPages() int {
	return max((p.total+p.size-1)/p.size, 1)
}

// CurrentPage is 1-based
func (p *Paginator) CurrentPage() int {
	return p.offset/p.size + 1
}

// NextPage jumps to the first row of the next page
func (p *Paginator) NextPage() bool {
	if p.offset+p.size >= p.total {
		return false
	}
	p.SetCursor(p.offset + p.size)
	return true
}

// PrevPage jumps to the first row of the previous page
func (p *Paginator) PrevPage() bool {
	if p.offset == 0 {
		return false
	}
	p.SetCursor(p.offset - p.size)
	return true
}

// RemoveAtCursor drops the row under the cursor and returns the new cursor
func (p *Paginator) RemoveAtCursor() int {
	if p.total == 0 {
		return 0
	}
	p.SetTotal(p.total - 1)
	return p.cursor
}

func (p *Paginator) follow() {
	p.offset = (p.cursor / p.size) * p.size
}
