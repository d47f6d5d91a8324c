package views

// Scroller keeps a cursor over a list of rows and the window of rows
// visible around it
type Scroller struct {
	height int
	offset int
	cursor int
	total  int
}

// NewScroller creates a scroller showing height rows at a time
func NewScroller(height int) *Scroller {
	if height <= 0 {
		height = 10
	}
	return &Scroller{height: height}
}

// SetHeight changes the number of visible rows
func (s *Scroller) SetHeight(height int) {
	if height <= 0 {
		height = 1
	}
	s.height = height
	s.follow()
}

// SetTotal sets the number of rows, clamping the cursor
func (s *Scroller) SetTotal(total int) {
	s.total = total
	s.SetCursor(s.cursor)
}

// Cursor returns the absolute cursor position
func (s *Scroller) Cursor() int {
	return s.cursor
}

// SetCursor moves the cursor, clamped to the rows
func (s *Scroller) SetCursor(pos int) {
	s.cursor = max(0, min(pos, s.total-1))
	s.follow()
}

// Up moves the cursor up by one
func (s *Scroller) Up() bool {
	if s.cursor == 0 {
		return false
	}
	s.SetCursor(s.cursor - 1)
	return true
}

// Down moves the cursor down by one
func (s *Scroller) Down() bool {
	if s.cursor >= s.total-1 {
		return false
	}
	s.SetCursor(s.cursor + 1)
	return true
}

// VisibleRange returns the [start, end) rows to render
func (s *Scroller) VisibleRange() (start, end int) {
	return s.offset, min(s.offset+s.height, s.total)
}

func (s *Scroller) follow() {
	switch {
	case s.cursor < s.offset:
		s.offset = s.cursor
	case s.cursor >= s.offset+s.height:
		s.offset = s.cursor - s.height + 1
	}
	s.offset = max(0, min(s.offset, s.total-s.height))
}
