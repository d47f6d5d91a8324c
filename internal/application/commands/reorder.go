package commands

import (
	"context"
	"fmt"

	"cvbuilder/internal/application"
	"cvbuilder/internal/domain"
)

// MoveSectionResult contains the result of moving a section
type MoveSectionResult struct {
	Outcome domain.DragOutcome
	Order   domain.SectionOrder
	Message string
}

// MoveSectionCommand moves one section to a new position. It drives the
// same drag session the TUI uses: pick up at From, hover To, drop.
type MoveSectionCommand struct {
	workspace *application.Workspace
	From      int
	To        int
}

// NewMoveSectionCommand creates a new MoveSectionCommand
func NewMoveSectionCommand(ws *application.Workspace, from, to int) *MoveSectionCommand {
	return &MoveSectionCommand{
		workspace: ws,
		From:      from,
		To:        to,
	}
}

// NewMoveSectionByKeyCommand resolves section names against the current
// order and creates a MoveSectionCommand. The destination is the position
// the named section currently occupies.
func NewMoveSectionByKeyCommand(ws *application.Workspace, section, dest string) (*MoveSectionCommand, error) {
	from, err := sectionIndex(ws, section)
	if err != nil {
		return nil, err
	}
	to, err := sectionIndex(ws, dest)
	if err != nil {
		return nil, err
	}
	return NewMoveSectionCommand(ws, from, to), nil
}

func sectionIndex(ws *application.Workspace, name string) (int, error) {
	key, err := application.ValidateSectionKey(name)
	if err != nil {
		return -1, err
	}
	return ws.Current().Order.IndexOf(key), nil
}

// Validate checks both positions are inside the section list
func (c *MoveSectionCommand) Validate() error {
	n := len(c.workspace.Current().Order)
	if c.From < 0 || c.From >= n {
		return &application.ValidationError{
			Field:   "from",
			Message: fmt.Sprintf("position must be between 0 and %d, got: %d", n-1, c.From),
		}
	}
	if c.To < 0 || c.To >= n {
		return &application.ValidationError{
			Field:   "to",
			Message: fmt.Sprintf("position must be between 0 and %d, got: %d", n-1, c.To),
		}
	}
	return nil
}

// Execute runs the move section command
func (c *MoveSectionCommand) Execute(ctx context.Context) (*MoveSectionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.workspace.BeginDrag(c.From)
	c.workspace.Hover(c.To)
	outcome := c.workspace.EndDrag()

	order := c.workspace.Current().Order
	msg := fmt.Sprintf("Order: %s", order)
	if outcome != domain.DragMoved {
		msg = fmt.Sprintf("Order unchanged: %s", order)
	}

	return &MoveSectionResult{
		Outcome: outcome,
		Order:   order,
		Message: msg,
	}, nil
}
