package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidField       = errors.New("invalid field")
	ErrInvalidSection     = errors.New("invalid section")
	ErrNothingToSummarize = errors.New("nothing to summarize")
	ErrAIUnavailable      = errors.New("AI assistant unavailable")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SummaryError represents a failed AI summary request
type SummaryError struct {
	Reason string
	Err    error
}

func (e *SummaryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot generate summary: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot generate summary: %s", e.Reason)
}

func (e *SummaryError) Unwrap() error {
	return e.Err
}
