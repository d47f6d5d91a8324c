package commands

import (
	"context"
	"errors"
	"fmt"

	"cvbuilder/internal/application"
	"cvbuilder/internal/domain"
)

// AddEntryResult contains the result of adding an entry
type AddEntryResult struct {
	Collection domain.Collection
	Index      int
	ID         string
	Message    string
}

// AddEntryCommand appends a blank entry to a collection
type AddEntryCommand struct {
	workspace  *application.Workspace
	Collection string
}

// NewAddEntryCommand creates a new AddEntryCommand
func NewAddEntryCommand(ws *application.Workspace, collection string) *AddEntryCommand {
	return &AddEntryCommand{
		workspace:  ws,
		Collection: collection,
	}
}

// Validate checks the collection name
func (c *AddEntryCommand) Validate() error {
	_, err := application.ValidateCollection(c.Collection)
	return err
}

// Execute runs the add entry command
func (c *AddEntryCommand) Execute(ctx context.Context) (*AddEntryResult, error) {
	collection, err := application.ValidateCollection(c.Collection)
	if err != nil {
		return nil, err
	}

	id := domain.NewEntryID()
	next, err := c.workspace.Current().AddEntry(collection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to add entry: %w", err)
	}
	c.workspace.Commit(next)

	index := next.EntryCount(collection) - 1
	return &AddEntryResult{
		Collection: collection,
		Index:      index,
		ID:         id,
		Message:    fmt.Sprintf("Added %s[%d]", collection, index),
	}, nil
}

// RemoveEntryResult contains the result of removing an entry
type RemoveEntryResult struct {
	Collection domain.Collection
	Index      int
	ID         string
	Message    string
}

// RemoveEntryCommand removes one entry from a collection
type RemoveEntryCommand struct {
	workspace  *application.Workspace
	Collection string
	Index      int
}

// NewRemoveEntryCommand creates a new RemoveEntryCommand
func NewRemoveEntryCommand(ws *application.Workspace, collection string, index int) *RemoveEntryCommand {
	return &RemoveEntryCommand{
		workspace:  ws,
		Collection: collection,
		Index:      index,
	}
}

// Validate checks the collection name and index sign
func (c *RemoveEntryCommand) Validate() error {
	if _, err := application.ValidateCollection(c.Collection); err != nil {
		return err
	}
	if c.Index < 0 {
		return &application.ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("index must not be negative, got: %d", c.Index),
		}
	}
	return nil
}

// Execute runs the remove entry command
func (c *RemoveEntryCommand) Execute(ctx context.Context) (*RemoveEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	collection, _ := domain.ParseCollection(c.Collection)

	current := c.workspace.Current()
	id, err := current.EntryID(collection, c.Index)
	if err != nil {
		return nil, notFound(err)
	}

	next, err := current.RemoveEntry(collection, c.Index)
	if err != nil {
		return nil, notFound(err)
	}
	c.workspace.Commit(next)

	return &RemoveEntryResult{
		Collection: collection,
		Index:      c.Index,
		ID:         id,
		Message:    fmt.Sprintf("Removed %s[%d]", collection, c.Index),
	}, nil
}

// notFound maps an out of range index onto ErrNotFound
func notFound(err error) error {
	if errors.Is(err, domain.ErrIndexOutOfRange) {
		return fmt.Errorf("%w: %v", application.ErrNotFound, err)
	}
	return err
}
