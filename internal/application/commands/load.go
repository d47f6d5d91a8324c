package commands

import (
	"context"
	"fmt"

	"cvbuilder/internal/application"
	"cvbuilder/internal/ports"
)

// LoadResumeResult contains the result of loading a seed file
type LoadResumeResult struct {
	Path    string
	Changed bool
	Message string
}

// LoadResumeCommand reads a résumé file and commits it as a normal edit,
// so a reload can be undone
type LoadResumeCommand struct {
	workspace *application.Workspace
	source    ports.ResumeSource
	Path      string
}

// NewLoadResumeCommand creates a new LoadResumeCommand
func NewLoadResumeCommand(ws *application.Workspace, source ports.ResumeSource, path string) *LoadResumeCommand {
	return &LoadResumeCommand{
		workspace: ws,
		source:    source,
		Path:      path,
	}
}

// Validate checks that a path was given
func (c *LoadResumeCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the load command
func (c *LoadResumeCommand) Execute(ctx context.Context) (*LoadResumeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	resume, err := c.source.Load(c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	if err := application.ValidateOrder(resume.Order); err != nil {
		return nil, err
	}

	changed := c.workspace.Commit(resume)
	msg := fmt.Sprintf("Loaded %s", c.Path)
	if !changed {
		msg = fmt.Sprintf("%s unchanged", c.Path)
	}

	return &LoadResumeResult{
		Path:    c.Path,
		Changed: changed,
		Message: msg,
	}, nil
}
