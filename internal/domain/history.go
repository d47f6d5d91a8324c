package domain

import (
	"reflect"
	"slices"
)

// History is a linear undo/redo timeline of immutable snapshots with a
// cursor pointing at the current one.
//
// History is a value type: every method returns a new History and the
// receiver keeps its own timeline. Commits always copy into a fresh slice,
// so values derived from an older History never overwrite its entries.
// Use NewHistory to construct one; the zero value has no current document.
type History[T any] struct {
	timeline []T
	cursor   int
	equal    func(a, b T) bool
}

// HistoryOption configures a History
type HistoryOption[T any] func(*History[T])

// WithEqual sets the structural equality used to skip no-op commits
func WithEqual[T any](equal func(a, b T) bool) HistoryOption[T] {
	return func(h *History[T]) {
		if equal != nil {
			h.equal = equal
		}
	}
}

func deepEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// NewHistory returns a timeline holding only seed
func NewHistory[T any](seed T, opts ...HistoryOption[T]) History[T] {
	h := History[T]{
		timeline: []T{seed},
		equal:    deepEqual[T],
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Current returns the snapshot under the cursor
func (h History[T]) Current() T {
	if len(h.timeline) == 0 {
		var zero T
		return zero
	}
	return h.timeline[h.cursor]
}

// Commit appends next after the cursor, discarding any redo branch.
// Committing a value equal to the current snapshot returns h unchanged.
func (h History[T]) Commit(next T) History[T] {
	equal := h.equal
	if equal == nil {
		equal = deepEqual[T]
	}
	if len(h.timeline) == 0 {
		return History[T]{timeline: []T{next}, equal: equal}
	}
	if equal(h.Current(), next) {
		return h
	}

	timeline := make([]T, h.cursor+2)
	copy(timeline, h.timeline[:h.cursor+1])
	timeline[h.cursor+1] = next

	return History[T]{
		timeline: timeline,
		cursor:   h.cursor + 1,
		equal:    equal,
	}
}

// Update commits fn applied to the current snapshot
func (h History[T]) Update(fn func(T) T) History[T] {
	return h.Commit(fn(h.Current()))
}

// Undo moves the cursor back one step when possible
func (h History[T]) Undo() History[T] {
	if h.CanUndo() {
		h.cursor--
	}
	return h
}

// Redo moves the cursor forward one step when possible
func (h History[T]) Redo() History[T] {
	if h.CanRedo() {
		h.cursor++
	}
	return h
}

func (h History[T]) CanUndo() bool {
	return h.cursor > 0
}

func (h History[T]) CanRedo() bool {
	return h.cursor < len(h.timeline)-1
}

// Len returns the number of snapshots in the timeline
func (h History[T]) Len() int {
	return len(h.timeline)
}

// Cursor returns the index of the current snapshot
func (h History[T]) Cursor() int {
	return h.cursor
}

// Snapshots returns a copy of the timeline, oldest first
func (h History[T]) Snapshots() []T {
	return slices.Clone(h.timeline)
}
