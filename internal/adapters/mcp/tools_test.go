package mcp

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvbuilder/internal/application"
	"cvbuilder/internal/domain"
	"cvbuilder/internal/ports"
)

type stubWriter struct {
	text string
	err  error
}

func (s *stubWriter) GenerateSummary(context.Context, ports.SummaryRequest) (string, error) {
	return s.text, s.err
}

func (s *stubWriter) IsAvailable() bool { return true }

func newSession(t *testing.T, writer ports.SummaryWriter) *Session {
	t.Helper()

	r := domain.NewResume()
	r.PersonalInfo.Name = "Ada"
	r.Skills = []domain.Skill{{ID: "s1", Name: "Math"}}
	return NewSession(application.NewWorkspace(r, nil), writer, "en")
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	result, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text, result.IsError
}

func TestGetResume(t *testing.T) {
	s := newSession(t, nil)

	out, isErr := call(t, getResumeHandler(s), map[string]any{"format": "text"})
	assert.False(t, isErr)
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "SKILLS")

	out, isErr = call(t, getResumeHandler(s), nil)
	assert.False(t, isErr)
	assert.Contains(t, out, "name: Ada")
	assert.Contains(t, out, "sectionsOrder:")

	out, isErr = call(t, getResumeHandler(s), map[string]any{"format": "json"})
	assert.False(t, isErr)
	assert.Contains(t, out, `"name": "Ada"`)

	_, isErr = call(t, getResumeHandler(s), map[string]any{"format": "xml"})
	assert.True(t, isErr)
}

func TestEditAndUndo(t *testing.T) {
	s := newSession(t, nil)

	out, isErr := call(t, setFieldHandler(s), map[string]any{"target": "personal", "field": "title", "value": "Analyst"})
	require.False(t, isErr, out)
	assert.Equal(t, "Set personal.title", out)

	out, isErr = call(t, addEntryHandler(s), map[string]any{"collection": "experience"})
	require.False(t, isErr, out)
	assert.Equal(t, "Added experience[0]", out)

	out, isErr = call(t, setFieldHandler(s), map[string]any{"target": "experience", "index": float64(0), "field": "company", "value": "Engines"})
	require.False(t, isErr, out)
	assert.Equal(t, "Set experience[0].company", out)

	out, _ = call(t, historyStatusHandler(s), nil)
	assert.Equal(t, "snapshots: 4\ncursor: 3\ncan_undo: true\ncan_redo: false", out)

	out, _ = call(t, historyStatusHandler(s), map[string]any{"timeline": true})
	assert.Contains(t, out, "timeline:\n  0: 1 entries, order: experience, education, courses")
	assert.Contains(t, out, "\n  2: 2 entries")
	assert.True(t, strings.HasSuffix(out, "\n* 3: 2 entries, order: experience, education, courses"))

	out, isErr = call(t, undoHandler(s), nil)
	require.False(t, isErr)
	assert.True(t, strings.HasPrefix(out, "Undone"))
	assert.Contains(t, out, "can_redo: true")

	out, _ = call(t, redoHandler(s), nil)
	assert.True(t, strings.HasPrefix(out, "Redone"))

	out, isErr = call(t, removeEntryHandler(s), map[string]any{"collection": "experience", "index": float64(3)})
	assert.True(t, isErr)
	assert.Contains(t, out, "not found")

	out, isErr = call(t, setFieldHandler(s), map[string]any{"target": "hobbies", "field": "x", "value": "y"})
	assert.True(t, isErr)
	assert.Contains(t, out, "unknown collection")
}

func TestMoveSection(t *testing.T) {
	s := newSession(t, nil)

	out, isErr := call(t, moveSectionHandler(s), map[string]any{"section": "experience", "position": float64(2)})
	require.False(t, isErr, out)
	assert.Equal(t, "Order: education, courses, experience", out)

	_, isErr = call(t, moveSectionHandler(s), map[string]any{"section": "skills", "position": float64(0)})
	assert.True(t, isErr)

	_, isErr = call(t, moveSectionHandler(s), map[string]any{"section": "courses", "position": float64(9)})
	assert.True(t, isErr)

	call(t, undoHandler(s), nil)
	s.do(func(ws *application.Workspace) {
		assert.Equal(t, domain.DefaultSectionOrder(), ws.Current().Order)
	})
}

func TestGenerateSummary(t *testing.T) {
	s := newSession(t, &stubWriter{text: "A precise analyst."})

	out, isErr := call(t, generateSummaryHandler(s), map[string]any{"apply": false})
	require.False(t, isErr, out)
	assert.Equal(t, "A precise analyst.", out)
	s.do(func(ws *application.Workspace) { assert.False(t, ws.CanUndo()) })

	out, isErr = call(t, generateSummaryHandler(s), nil)
	require.False(t, isErr, out)
	assert.Contains(t, out, "Summary applied")
	s.do(func(ws *application.Workspace) {
		assert.Equal(t, "A precise analyst.", ws.Current().Summary)
		assert.True(t, ws.CanUndo())
	})

	out, isErr = call(t, generateSummaryHandler(s), nil)
	require.False(t, isErr, out)
	assert.True(t, strings.HasPrefix(out, "Summary unchanged"))
	s.do(func(ws *application.Workspace) { assert.Equal(t, 2, ws.Status().Length) })

	failing := newSession(t, &stubWriter{err: errors.New("quota")})
	out, isErr = call(t, generateSummaryHandler(failing), nil)
	assert.True(t, isErr)
	assert.Contains(t, out, "quota")

	noAI := newSession(t, nil)
	out, isErr = call(t, generateSummaryHandler(noAI), nil)
	assert.True(t, isErr)
	assert.Contains(t, out, "unavailable")
}

func TestConcurrentEdits(t *testing.T) {
	s := newSession(t, nil)
	h := addEntryHandler(s)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := mcp.CallToolRequest{}
			req.Params.Arguments = map[string]any{"collection": "skills"}
			_, _ = h(context.Background(), req)
		}()
	}
	wg.Wait()

	s.do(func(ws *application.Workspace) {
		assert.Equal(t, 21, ws.Current().EntryCount(domain.CollectionSkills))
		assert.Equal(t, 21, ws.Status().Length)
	})
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer("cvbuilder-mcp", "test", newSession(t, nil)))
}
