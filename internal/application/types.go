package application

import "cvbuilder/internal/domain"

// Re-export domain types for use by adapters
type (
	Resume       = domain.Resume
	PersonalInfo = domain.PersonalInfo
	Collection   = domain.Collection
	SectionKey   = domain.SectionKey
	SectionOrder = domain.SectionOrder
	DragSession  = domain.DragSession
	DragOutcome  = domain.DragOutcome
	Layout       = domain.Layout
	Template     = domain.Template
)

const (
	DragNoOp      = domain.DragNoOp
	DragMoved     = domain.DragMoved
	DragCancelled = domain.DragCancelled
)

// NewResume returns an empty résumé with the default section order
func NewResume() Resume {
	return domain.NewResume()
}

// DefaultLayout returns the default presentation settings
func DefaultLayout() Layout {
	return domain.DefaultLayout()
}
