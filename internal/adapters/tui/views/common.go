package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"cvbuilder/internal/application"
	"cvbuilder/internal/domain"
)

// ViewState contains the state shared by all view models.
// Embed it to get dimensions and a one-line status message.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// SetError shows err as the view message
func (s *ViewState) SetError(err error) {
	s.SetMessage(err.Error(), true)
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// View switching messages

type SwitchToFormMsg struct{}

type SwitchToReorderMsg struct{}

type SwitchToPreviewMsg struct{}

type SwitchToHelpMsg struct{}

// SwitchToEditMsg opens the entry form for one block of fields
type SwitchToEditMsg struct {
	Target string // "personal", "summary" or a collection name
	Index  int
	Focus  string // field to focus first
}

// SwitchToRemoveMsg asks for confirmation before removing an entry
type SwitchToRemoveMsg struct {
	Collection domain.Collection
	Index      int
}

// OpenEditorMsg asks the app to edit a long text field in $EDITOR
type OpenEditorMsg struct {
	Target string
	Index  int
	Field  string
}

// GenerateSummaryMsg asks the app to start an AI summary
type GenerateSummaryMsg struct{}

// StatusMsg carries a result message back to the form view
type StatusMsg struct {
	Text string
	Err  bool
}

func switchTo(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func status(text string, isErr bool) tea.Cmd {
	return switchTo(StatusMsg{Text: text, Err: isErr})
}

// historyHint renders the undo/redo availability for the status bar
func historyHint(ws *application.Workspace) string {
	s := ws.Status()
	undo, redo := "-", "-"
	if s.CanUndo {
		undo = "undo"
	}
	if s.CanRedo {
		redo = "redo"
	}
	return undo + "/" + redo
}
