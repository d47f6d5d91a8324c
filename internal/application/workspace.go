package application

import (
	"io"
	"log/slog"

	"cvbuilder/internal/domain"
)

// HistoryStatus summarizes the undo/redo timeline
type HistoryStatus struct {
	Length  int  `json:"length" yaml:"length"`
	Cursor  int  `json:"cursor" yaml:"cursor"`
	CanUndo bool `json:"canUndo" yaml:"canUndo"`
	CanRedo bool `json:"canRedo" yaml:"canRedo"`
}

// Workspace is the editing session shared by every surface: the résumé
// history, the in-progress section drag and the presentation layout.
//
// Every transition runs synchronously on the caller's goroutine. A
// Workspace is not safe for concurrent use.
type Workspace struct {
	history domain.History[domain.Resume]
	drag    *domain.DragSession
	layout  domain.Layout
	logger  *slog.Logger
}

// NewWorkspace starts a session on seed. A nil logger discards output.
func NewWorkspace(seed domain.Resume, logger *slog.Logger) *Workspace {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if len(seed.Order) == 0 {
		seed = seed.WithOrder(domain.DefaultSectionOrder())
	}
	return &Workspace{
		history: domain.NewHistory(seed, domain.WithEqual(domain.Resume.Equal)),
		layout:  domain.DefaultLayout(),
		logger:  logger,
	}
}

// Current returns the résumé under the history cursor
func (w *Workspace) Current() domain.Resume {
	return w.history.Current()
}

func (w *Workspace) CanUndo() bool {
	return w.history.CanUndo()
}

func (w *Workspace) CanRedo() bool {
	return w.history.CanRedo()
}

// Commit records next as a new snapshot. Returns false when next equals
// the current résumé and nothing was recorded.
func (w *Workspace) Commit(next domain.Resume) bool {
	cursor := w.history.Cursor()
	w.history = w.history.Commit(next)

	// a recorded commit always advances the cursor
	if w.history.Cursor() == cursor {
		w.logger.Debug("commit skipped, document unchanged", "cursor", cursor)
		return false
	}
	w.logger.Debug("commit", "cursor", w.history.Cursor(), "length", w.history.Len())
	return true
}

// Update commits fn applied to the current résumé
func (w *Workspace) Update(fn func(domain.Resume) domain.Resume) bool {
	return w.Commit(fn(w.Current()))
}

// Undo steps back one snapshot. Returns false at the start of history.
func (w *Workspace) Undo() bool {
	if !w.history.CanUndo() {
		w.logger.Debug("undo ignored", "cursor", w.history.Cursor())
		return false
	}
	w.history = w.history.Undo()
	w.logger.Debug("undo", "cursor", w.history.Cursor(), "length", w.history.Len())
	return true
}

// Redo steps forward one snapshot. Returns false at the end of history.
func (w *Workspace) Redo() bool {
	if !w.history.CanRedo() {
		w.logger.Debug("redo ignored", "cursor", w.history.Cursor())
		return false
	}
	w.history = w.history.Redo()
	w.logger.Debug("redo", "cursor", w.history.Cursor(), "length", w.history.Len())
	return true
}

// BeginDrag starts dragging the section at index, replacing any drag in
// progress
func (w *Workspace) BeginDrag(index int) {
	if w.drag.Active() {
		w.drag.Cancel()
	}
	w.drag = domain.BeginDrag(w.Current().Order, index)
	w.logger.Debug("drag started", "source", index, "active", w.drag.Active())
}

// Hover moves the drop target of the current drag
func (w *Workspace) Hover(index int) {
	w.drag.Hover(index)
}

// EndDrag drops the dragged section and commits the new order
func (w *Workspace) EndDrag() domain.DragOutcome {
	current := w.Current()
	order, outcome := w.drag.End(current.Order)
	w.drag = nil

	if outcome == domain.DragMoved {
		w.Commit(current.WithOrder(order))
	}
	w.logger.Debug("drag ended", "outcome", outcome.String(), "order", order.String())
	return outcome
}

// CancelDrag abandons the current drag
func (w *Workspace) CancelDrag() domain.DragOutcome {
	outcome := w.drag.Cancel()
	w.drag = nil
	if outcome == domain.DragCancelled {
		w.logger.Debug("drag cancelled")
	}
	return outcome
}

// Drag returns the drag in progress, or nil. Callers must not drive it
// directly.
func (w *Workspace) Drag() *domain.DragSession {
	return w.drag
}

func (w *Workspace) Layout() domain.Layout {
	return w.layout
}

func (w *Workspace) SetLayout(l domain.Layout) {
	w.layout = l
}

// Timeline returns every snapshot in the history, oldest first. The
// snapshot at Status().Cursor is the current résumé.
func (w *Workspace) Timeline() []domain.Resume {
	return w.history.Snapshots()
}

// Status reports the shape of the history timeline
func (w *Workspace) Status() HistoryStatus {
	return HistoryStatus{
		Length:  w.history.Len(),
		Cursor:  w.history.Cursor(),
		CanUndo: w.history.CanUndo(),
		CanRedo: w.history.CanRedo(),
	}
}
