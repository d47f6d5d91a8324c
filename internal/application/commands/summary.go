package commands

import (
	"context"
	"fmt"
	"strings"

	"cvbuilder/internal/application"
	"cvbuilder/internal/domain"
	"cvbuilder/internal/ports"
)

// GenerateSummaryResult contains the result of generating a summary
type GenerateSummaryResult struct {
	Summary string
	Applied bool
	Message string
}

// GenerateSummaryCommand asks the AI writer for a professional summary
// built from the filled experience entries and skills.
type GenerateSummaryCommand struct {
	workspace *application.Workspace
	writer    ports.SummaryWriter
	Language  string
	Apply     bool // commit the summary to the résumé
}

// NewGenerateSummaryCommand creates a new GenerateSummaryCommand
func NewGenerateSummaryCommand(ws *application.Workspace, writer ports.SummaryWriter, language string, apply bool) *GenerateSummaryCommand {
	return &GenerateSummaryCommand{
		workspace: ws,
		writer:    writer,
		Language:  language,
		Apply:     apply,
	}
}

// Validate checks there is material to summarize
func (c *GenerateSummaryCommand) Validate() error {
	if c.workspace.Current().SummaryMaterial().Empty() {
		return fmt.Errorf("%w: add an experience with title and company, or a skill", application.ErrNothingToSummarize)
	}
	return nil
}

// Request builds the summary request from the résumé
func (c *GenerateSummaryCommand) Request(r domain.Resume) ports.SummaryRequest {
	material := r.SummaryMaterial()
	return ports.SummaryRequest{
		Name:       r.PersonalInfo.Name,
		Title:      r.PersonalInfo.Title,
		Experience: material.Experience,
		Skills:     material.Skills,
		Language:   c.Language,
	}
}

// Execute runs the generate summary command
func (c *GenerateSummaryCommand) Execute(ctx context.Context) (*GenerateSummaryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.writer == nil || !c.writer.IsAvailable() {
		return nil, application.ErrAIUnavailable
	}

	text, err := c.writer.GenerateSummary(ctx, c.Request(c.workspace.Current()))
	if err != nil {
		return nil, &application.SummaryError{Reason: "AI request failed", Err: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &application.SummaryError{Reason: "empty summary received"}
	}

	result := &GenerateSummaryResult{
		Summary: text,
		Message: "Summary generated",
	}
	if c.Apply {
		// committed against whatever is current now: last writer wins
		result.Applied = c.workspace.Update(func(r domain.Resume) domain.Resume {
			return r.SetSummary(text)
		})
		result.Message = "Summary generated and applied"
	}
	return result, nil
}
