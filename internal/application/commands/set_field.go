package commands

import (
	"context"
	"fmt"

	"cvbuilder/internal/application"
	"cvbuilder/internal/domain"
)

// Field targets outside the entry collections
const (
	TargetPersonal = "personal"
	TargetSummary  = "summary"
)

// SetFieldResult contains the result of setting a field
type SetFieldResult struct {
	Path    string // e.g. personal.name, experience[0].title
	Changed bool
	Message string
}

// SetFieldCommand sets one text field of the current résumé.
// Target is "personal", "summary" or a collection name; Index and Field
// address the entry and its field where needed.
type SetFieldCommand struct {
	workspace *application.Workspace
	Target    string
	Index     int
	Field     string
	Value     string
}

// NewSetFieldCommand creates a new SetFieldCommand
func NewSetFieldCommand(ws *application.Workspace, target string, index int, field, value string) *SetFieldCommand {
	return &SetFieldCommand{
		workspace: ws,
		Target:    target,
		Index:     index,
		Field:     field,
		Value:     value,
	}
}

// Validate checks the target and field names
func (c *SetFieldCommand) Validate() error {
	if err := application.ValidateRequired("target", c.Target); err != nil {
		return err
	}

	switch c.Target {
	case TargetSummary:
		return nil
	case TargetPersonal:
		return application.ValidatePersonalField(c.Field)
	}

	collection, err := application.ValidateCollection(c.Target)
	if err != nil {
		return err
	}
	if c.Index < 0 {
		return &application.ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("index must not be negative, got: %d", c.Index),
		}
	}
	return application.ValidateEntryField(collection, c.Field)
}

func (c *SetFieldCommand) path() string {
	switch c.Target {
	case TargetSummary:
		return TargetSummary
	case TargetPersonal:
		return TargetPersonal + "." + c.Field
	}
	return fmt.Sprintf("%s[%d].%s", c.Target, c.Index, c.Field)
}

// Execute runs the set field command
func (c *SetFieldCommand) Execute(ctx context.Context) (*SetFieldResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	next, err := setField(c.workspace.Current(), c.Target, c.Index, c.Field, c.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to set %s: %w", c.path(), notFound(err))
	}

	changed := c.workspace.Commit(next)
	msg := fmt.Sprintf("Set %s", c.path())
	if !changed {
		msg = fmt.Sprintf("%s unchanged", c.path())
	}

	return &SetFieldResult{
		Path:    c.path(),
		Changed: changed,
		Message: msg,
	}, nil
}

// setField applies one validated field assignment to r
func setField(r domain.Resume, target string, index int, field, value string) (domain.Resume, error) {
	switch target {
	case TargetSummary:
		return r.SetSummary(value), nil
	case TargetPersonal:
		return r.SetPersonal(field, value)
	}
	collection, err := domain.ParseCollection(target)
	if err != nil {
		return r, err
	}
	return r.SetEntryField(collection, index, field, value)
}
