package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"cvbuilder/internal/application"
	"cvbuilder/internal/application/commands"
	"cvbuilder/internal/domain"
)

// RegisterWriteTools adds the editing tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, session *Session) {
	s.AddTool(setFieldTool(), setFieldHandler(session))
	s.AddTool(addEntryTool(), addEntryHandler(session))
	s.AddTool(removeEntryTool(), removeEntryHandler(session))
	s.AddTool(moveSectionTool(), moveSectionHandler(session))
	s.AddTool(undoTool(), undoHandler(session))
	s.AddTool(redoTool(), redoHandler(session))
	s.AddTool(generateSummaryTool(), generateSummaryHandler(session))
}

// --- set_field ---

func setFieldTool() mcp.Tool {
	return mcp.NewTool("set_field",
		mcp.WithDescription("Set one text field. Target \"personal\" edits contact info (name, title, photo, email, phone, location, website), \"summary\" edits the summary, and a collection name (experience, education, courses, skills, languages) edits the entry at index."),
		mcp.WithString("target",
			mcp.Description("personal, summary, or a collection name"),
			mcp.Required(),
		),
		mcp.WithString("field",
			mcp.Description("Field name (ignored for summary)"),
		),
		mcp.WithNumber("index",
			mcp.Description("Entry index within the collection, starting at 0"),
		),
		mcp.WithString("value",
			mcp.Description("New value"),
			mcp.Required(),
		),
	)
}

func setFieldHandler(session *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var msg string
		err := session.write(func(ws *application.Workspace) error {
			cmd := commands.NewSetFieldCommand(ws,
				req.GetString("target", ""),
				req.GetInt("index", 0),
				req.GetString("field", ""),
				req.GetString("value", ""),
			)
			result, err := cmd.Execute(ctx)
			if err != nil {
				return err
			}
			msg = result.Message
			return nil
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(msg), nil
	}
}

// --- add_entry ---

func addEntryTool() mcp.Tool {
	return mcp.NewTool("add_entry",
		mcp.WithDescription("Append a blank entry to a collection. Returns its index."),
		mcp.WithString("collection",
			mcp.Description("experience, education, courses, skills or languages"),
			mcp.Required(),
		),
	)
}

func addEntryHandler(session *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var msg string
		err := session.write(func(ws *application.Workspace) error {
			result, err := commands.NewAddEntryCommand(ws, req.GetString("collection", "")).Execute(ctx)
			if err != nil {
				return err
			}
			msg = result.Message
			return nil
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(msg), nil
	}
}

// --- remove_entry ---

func removeEntryTool() mcp.Tool {
	return mcp.NewTool("remove_entry",
		mcp.WithDescription("Remove the entry at index from a collection."),
		mcp.WithString("collection",
			mcp.Description("experience, education, courses, skills or languages"),
			mcp.Required(),
		),
		mcp.WithNumber("index",
			mcp.Description("Entry index, starting at 0"),
			mcp.Required(),
		),
	)
}

func removeEntryHandler(session *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var msg string
		err := session.write(func(ws *application.Workspace) error {
			cmd := commands.NewRemoveEntryCommand(ws, req.GetString("collection", ""), req.GetInt("index", -1))
			result, err := cmd.Execute(ctx)
			if err != nil {
				return err
			}
			msg = result.Message
			return nil
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(msg), nil
	}
}

// --- move_section ---

func moveSectionTool() mcp.Tool {
	return mcp.NewTool("move_section",
		mcp.WithDescription("Move a résumé section (experience, education, courses) to a new position in the section order. The move can be undone."),
		mcp.WithString("section",
			mcp.Description("Section to move"),
			mcp.Required(),
			mcp.Enum(string(domain.SectionExperience), string(domain.SectionEducation), string(domain.SectionCourses)),
		),
		mcp.WithNumber("position",
			mcp.Description("Target position, starting at 0"),
			mcp.Required(),
		),
	)
}

func moveSectionHandler(session *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var msg string
		err := session.write(func(ws *application.Workspace) error {
			key, err := application.ValidateSectionKey(req.GetString("section", ""))
			if err != nil {
				return err
			}
			from := ws.Current().Order.IndexOf(key)
			result, err := commands.NewMoveSectionCommand(ws, from, req.GetInt("position", -1)).Execute(ctx)
			if err != nil {
				return err
			}
			msg = result.Message
			return nil
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(msg), nil
	}
}

// --- undo / redo ---

func undoTool() mcp.Tool {
	return mcp.NewTool("undo",
		mcp.WithDescription("Undo the last change to the résumé."),
	)
}

func undoHandler(session *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var result *commands.HistoryResult
		err := session.write(func(ws *application.Workspace) error {
			var err error
			result, err = commands.NewUndoCommand(ws).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message + "\n" + formatStatus(result.Status)), nil
	}
}

func redoTool() mcp.Tool {
	return mcp.NewTool("redo",
		mcp.WithDescription("Redo the last undone change."),
	)
}

func redoHandler(session *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var result *commands.HistoryResult
		err := session.write(func(ws *application.Workspace) error {
			var err error
			result, err = commands.NewRedoCommand(ws).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message + "\n" + formatStatus(result.Status)), nil
	}
}

// --- generate_summary ---

func generateSummaryTool() mcp.Tool {
	return mcp.NewTool("generate_summary",
		mcp.WithDescription("Write a 2-3 sentence professional summary with Claude from the filled experience entries and skills."),
		mcp.WithBoolean("apply",
			mcp.Description("Replace the résumé summary with the result (undoable). Default true."),
		),
	)
}

// generateSummaryHandler runs the AI call on a snapshot so the session
// lock is not held while Claude is working. Applying the result commits
// against whatever is current when it arrives.
func generateSummaryHandler(session *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		apply := req.GetBool("apply", true)

		var snapshot domain.Resume
		session.do(func(ws *application.Workspace) {
			snapshot = ws.Current()
		})

		scratch := application.NewWorkspace(snapshot, nil)
		result, err := commands.NewGenerateSummaryCommand(scratch, session.writer, session.language, false).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if !apply {
			return mcp.NewToolResultText(result.Summary), nil
		}

		var changed bool
		session.do(func(ws *application.Workspace) {
			changed = ws.Update(func(r domain.Resume) domain.Resume {
				return r.SetSummary(result.Summary)
			})
		})
		if !changed {
			return mcp.NewToolResultText(fmt.Sprintf("Summary unchanged:\n%s", result.Summary)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Summary applied:\n%s", result.Summary)), nil
	}
}
