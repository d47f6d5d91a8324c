package mcp

import (
	"sync"

	"cvbuilder/internal/application"
	"cvbuilder/internal/ports"
)

// Session is the in-memory editing session behind the MCP tools. Tool
// calls may arrive concurrently, so every Workspace access goes through
// the mutex.
type Session struct {
	mu        sync.Mutex
	workspace *application.Workspace
	writer    ports.SummaryWriter
	language  string
}

// NewSession wraps ws for the MCP tools. writer may be nil when no AI
// backend is configured.
func NewSession(ws *application.Workspace, writer ports.SummaryWriter, language string) *Session {
	return &Session{
		workspace: ws,
		writer:    writer,
		language:  language,
	}
}

// do runs fn with exclusive access to the workspace
func (s *Session) do(fn func(*application.Workspace)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.workspace)
}

func (s *Session) write(fn func(*application.Workspace) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.workspace)
}
