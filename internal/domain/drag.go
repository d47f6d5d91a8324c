package domain

// DragOutcome reports how a drag session finished
type DragOutcome int

const (
	DragNoOp      DragOutcome = iota // dropped on itself, never hovered, or session inactive
	DragMoved                        // order changed
	DragCancelled                    // explicitly abandoned
)

func (o DragOutcome) String() string {
	switch o {
	case DragMoved:
		return "moved"
	case DragCancelled:
		return "cancelled"
	default:
		return "no-op"
	}
}

// DragSession tracks one in-progress section drag. It is transient and
// never part of the document history.
//
// The session is created active by BeginDrag and deactivated by End or
// Cancel. An inactive session ignores every call, so a Hover delivered
// after the drop cannot resurrect it.
type DragSession struct {
	source int
	target int // -1 until the first valid hover
	size   int
	active bool
}

// BeginDrag starts dragging the section at source. An out of range source
// yields an inactive session.
func BeginDrag(order SectionOrder, source int) *DragSession {
	return &DragSession{
		source: source,
		target: -1,
		size:   len(order),
		active: source >= 0 && source < len(order),
	}
}

// Active reports whether the session is still accepting hovers
func (s *DragSession) Active() bool {
	return s != nil && s.active
}

// Source returns the index being dragged
func (s *DragSession) Source() int {
	if s == nil {
		return -1
	}
	return s.source
}

// Target returns the last hovered index, if any
func (s *DragSession) Target() (int, bool) {
	if !s.Active() || s.target < 0 {
		return -1, false
	}
	return s.target, true
}

// Hover records target as the drop position. Hovering the source itself
// or an out of range index leaves the session unchanged.
func (s *DragSession) Hover(target int) {
	if !s.Active() || target == s.source || target < 0 || target >= s.size {
		return
	}
	s.target = target
}

// End finishes the drag and returns the resulting order. The session is
// inactive afterwards whatever the outcome.
func (s *DragSession) End(order SectionOrder) (SectionOrder, DragOutcome) {
	if !s.Active() {
		return order, DragNoOp
	}
	source, target := s.source, s.target
	s.active = false
	s.target = -1

	if target < 0 || target == source || len(order) != s.size {
		return order, DragNoOp
	}
	return order.Move(source, target), DragMoved
}

// Cancel abandons the drag without touching the order
func (s *DragSession) Cancel() DragOutcome {
	if !s.Active() {
		return DragNoOp
	}
	s.active = false
	s.target = -1
	return DragCancelled
}

// IsDragging reports whether index is the row being dragged
func (s *DragSession) IsDragging(index int) bool {
	return s.Active() && s.source == index
}

// IsOver reports whether index is the current drop target
func (s *DragSession) IsOver(index int) bool {
	t, ok := s.Target()
	return ok && t == index
}

// DropAfter reports whether the drop placeholder belongs after the row at
// index. Dragging downwards lands after the hovered row, upwards before it.
func (s *DragSession) DropAfter(index int) bool {
	return s.IsOver(index) && s.source < index
}
