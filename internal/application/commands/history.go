package commands

import (
	"context"

	"cvbuilder/internal/application"
)

// HistoryResult contains the result of an undo or redo
type HistoryResult struct {
	Moved   bool
	Status  application.HistoryStatus
	Message string
}

// UndoCommand steps the workspace back one snapshot
type UndoCommand struct {
	workspace *application.Workspace
}

// NewUndoCommand creates a new UndoCommand
func NewUndoCommand(ws *application.Workspace) *UndoCommand {
	return &UndoCommand{workspace: ws}
}

// Validate always succeeds; undo at the start of history is reported in the result
func (c *UndoCommand) Validate() error {
	return nil
}

// Execute runs the undo command
func (c *UndoCommand) Execute(ctx context.Context) (*HistoryResult, error) {
	moved := c.workspace.Undo()
	msg := "Undone"
	if !moved {
		msg = "Nothing to undo"
	}
	return &HistoryResult{
		Moved:   moved,
		Status:  c.workspace.Status(),
		Message: msg,
	}, nil
}

// RedoCommand steps the workspace forward one snapshot
type RedoCommand struct {
	workspace *application.Workspace
}

// NewRedoCommand creates a new RedoCommand
func NewRedoCommand(ws *application.Workspace) *RedoCommand {
	return &RedoCommand{workspace: ws}
}

// Validate always succeeds; redo at the end of history is reported in the result
func (c *RedoCommand) Validate() error {
	return nil
}

// Execute runs the redo command
func (c *RedoCommand) Execute(ctx context.Context) (*HistoryResult, error) {
	moved := c.workspace.Redo()
	msg := "Redone"
	if !moved {
		msg = "Nothing to redo"
	}
	return &HistoryResult{
		Moved:   moved,
		Status:  c.workspace.Status(),
		Message: msg,
	}, nil
}
