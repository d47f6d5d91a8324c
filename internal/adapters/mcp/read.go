package mcp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"cvbuilder/internal/adapters/filesystem"
	"cvbuilder/internal/application"
	"cvbuilder/internal/domain"
)

// RegisterReadTools adds the read-only résumé tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, session *Session) {
	s.AddTool(getResumeTool(), getResumeHandler(session))
	s.AddTool(historyStatusTool(), historyStatusHandler(session))
}

// --- get_resume ---

func getResumeTool() mcp.Tool {
	return mcp.NewTool("get_resume",
		mcp.WithDescription("Return the current résumé. Formats: text (rendered preview), yaml, json."),
		mcp.WithString("format",
			mcp.Description("Output format: text, yaml or json (default yaml)"),
			mcp.Enum("text", "yaml", "json"),
		),
	)
}

func getResumeHandler(session *Session) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		format := req.GetString("format", "yaml")

		var current application.Resume
		session.do(func(ws *application.Workspace) {
			current = ws.Current()
		})

		if format == "text" {
			text := application.PlainText(current)
			if text == "" {
				return mcp.NewToolResultText("The résumé is empty."), nil
			}
			return mcp.NewToolResultText(text), nil
		}

		var buf bytes.Buffer
		if err := filesystem.Encode(&buf, current, filesystem.Format(format)); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(buf.String()), nil
	}
}

// --- history_status ---

func historyStatusTool() mcp.Tool {
	return mcp.NewTool("history_status",
		mcp.WithDescription("Report the undo/redo history: number of snapshots, cursor position, and whether undo or redo is possible."),
		mcp.WithBoolean("timeline",
			mcp.Description("Also list every snapshot, oldest first, marking the current one with *"),
		),
	)
}

func historyStatusHandler(session *Session) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var (
			status   application.HistoryStatus
			timeline []domain.Resume
		)
		session.do(func(ws *application.Workspace) {
			status = ws.Status()
			if req.GetBool("timeline", false) {
				timeline = ws.Timeline()
			}
		})

		text := formatStatus(status)
		if len(timeline) > 0 {
			text += "\n" + formatTimeline(timeline, status.Cursor)
		}
		return mcp.NewToolResultText(text), nil
	}
}

func formatTimeline(timeline []domain.Resume, cursor int) string {
	var b strings.Builder
	b.WriteString("timeline:")
	for i, r := range timeline {
		marker := " "
		if i == cursor {
			marker = "*"
		}
		entries := len(r.Experience) + len(r.Education) + len(r.Courses) + len(r.Skills) + len(r.Languages)
		fmt.Fprintf(&b, "\n%s %d: %d entries, order: %s", marker, i, entries, r.Order)
	}
	return b.String()
}

func formatStatus(s application.HistoryStatus) string {
	return fmt.Sprintf("snapshots: %d\ncursor: %d\ncan_undo: %t\ncan_redo: %t",
		s.Length, s.Cursor, s.CanUndo, s.CanRedo)
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
