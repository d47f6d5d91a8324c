package claudecli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"cvbuilder/internal/ports"
)

// Assistant implements ports.SummaryWriter using Claude Code CLI
type Assistant struct {
	model  string
	binary string
}

// Option configures the Assistant
type Option func(*Assistant)

// WithModel sets the Claude model to use
func WithModel(model string) Option {
	return func(a *Assistant) {
		if model != "" {
			a.model = model
		}
	}
}

// WithBinary sets the claude executable name or path
func WithBinary(binary string) Option {
	return func(a *Assistant) {
		if binary != "" {
			a.binary = binary
		}
	}
}

// NewAssistant creates a new Claude CLI assistant
func NewAssistant(opts ...Option) *Assistant {
	a := &Assistant{
		model:  "haiku", // Default to haiku for speed
		binary: "claude",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// claudeResponse represents the JSON output from claude CLI
type claudeResponse struct {
	Type         string  `json:"type"`
	Subtype      string  `json:"subtype"`
	DurationMS   int     `json:"duration_ms"`
	IsError      bool    `json:"is_error"`
	NumTurns     int     `json:"num_turns"`
	Result       string  `json:"result"`
	SessionID    string  `json:"session_id"`
	TotalCostUSD float64 `json:"total_cost_usd"`
}

// GenerateSummary asks Claude for a short professional summary
func (a *Assistant) GenerateSummary(ctx context.Context, req ports.SummaryRequest) (string, error) {
	args := []string{
		"-p", buildSummaryPrompt(req),
		"--output-format", "json",
		"--model", a.model,
	}

	cmd := exec.CommandContext(ctx, a.binary, args...)
	output, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("claude CLI: %w", ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("claude CLI error: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("claude CLI error: %w", err)
	}

	var response claudeResponse
	if err := json.Unmarshal(output, &response); err != nil {
		return "", fmt.Errorf("failed to parse claude response: %w", err)
	}

	if response.IsError {
		return "", fmt.Errorf("claude returned an error: %s", response.Result)
	}

	return parseSummary(response.Result)
}

func languageName(code string) string {
	if code == "es" {
		return "Spanish"
	}
	return "English"
}

func buildSummaryPrompt(req ports.SummaryRequest) string {
	name := req.Name
	if name == "" {
		name = "the candidate"
	}
	title := req.Title
	if title == "" {
		title = "a professional"
	}

	return fmt.Sprintf(`Based on the following CV data, write a professional and compelling summary of 2-3 sentences in %s:
Name: %s
Title: %s
Experience: %s
Skills: %s

Return ONLY the summary text (no markdown, no quotes, no preamble).`,
		languageName(req.Language),
		name,
		title,
		strings.Join(req.Experience, ", "),
		strings.Join(req.Skills, ", "),
	)
}

var codeBlockRe = regexp.MustCompile("```(?:[a-z]+)?\\s*\\n?([\\s\\S]*?)\\n?```")

// parseSummary strips formatting Claude sometimes wraps around plain text
func parseSummary(result string) (string, error) {
	result = strings.TrimSpace(result)

	if matches := codeBlockRe.FindStringSubmatch(result); len(matches) > 1 {
		result = strings.TrimSpace(matches[1])
	}

	if len(result) >= 2 && strings.HasPrefix(result, `"`) && strings.HasSuffix(result, `"`) {
		result = strings.TrimSpace(result[1 : len(result)-1])
	}

	if result == "" {
		return "", fmt.Errorf("empty summary in response")
	}
	return result, nil
}

// IsAvailable checks if the claude CLI is installed and accessible
func (a *Assistant) IsAvailable() bool {
	_, err := exec.LookPath(a.binary)
	return err == nil
}
