package commands

import (
	"context"
	"fmt"
	"strings"

	"cvbuilder/internal/application"
)

// FieldValue is one field assignment within an EditFieldsCommand
type FieldValue struct {
	Field string
	Value string
}

// EditFieldsResult contains the result of editing a block of fields
type EditFieldsResult struct {
	Paths   []string
	Changed bool
	Message string
}

// EditFieldsCommand sets several fields of one target in a single
// commit, so the whole form submit is undone in one step
type EditFieldsCommand struct {
	workspace *application.Workspace
	Target    string
	Index     int
	Values    []FieldValue
}

// NewEditFieldsCommand creates a new EditFieldsCommand
func NewEditFieldsCommand(ws *application.Workspace, target string, index int, values ...FieldValue) *EditFieldsCommand {
	return &EditFieldsCommand{
		workspace: ws,
		Target:    target,
		Index:     index,
		Values:    values,
	}
}

// Validate checks every assignment the way SetFieldCommand does
func (c *EditFieldsCommand) Validate() error {
	for _, v := range c.Values {
		single := SetFieldCommand{Target: c.Target, Index: c.Index, Field: v.Field}
		if err := single.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the edit fields command
func (c *EditFieldsCommand) Execute(ctx context.Context) (*EditFieldsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	next := c.workspace.Current()
	paths := make([]string, 0, len(c.Values))
	for _, v := range c.Values {
		single := SetFieldCommand{Target: c.Target, Index: c.Index, Field: v.Field}
		var err error
		next, err = setField(next, c.Target, c.Index, v.Field, v.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", single.path(), notFound(err))
		}
		paths = append(paths, single.path())
	}

	changed := len(c.Values) > 0 && c.workspace.Commit(next)
	msg := "No changes"
	if changed {
		msg = "Set " + strings.Join(paths, ", ")
	}

	return &EditFieldsResult{
		Paths:   paths,
		Changed: changed,
		Message: msg,
	}, nil
}
