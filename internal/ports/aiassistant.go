package ports

import "context"

// SummaryRequest carries the résumé material a summary is written from
type SummaryRequest struct {
	Name       string   // empty means "the candidate"
	Title      string   // empty means "a professional"
	Experience []string // "title at company"
	Skills     []string
	Language   string // "en" or "es"
}

// SummaryWriter defines the interface for AI-written professional summaries
type SummaryWriter interface {
	// GenerateSummary returns a 2-3 sentence summary in the requested language
	GenerateSummary(ctx context.Context, req SummaryRequest) (string, error)

	// IsAvailable returns true if the backing AI tool (e.g., Claude CLI) is available
	IsAvailable() bool
}
