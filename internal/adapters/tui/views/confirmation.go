package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cvbuilder/internal/adapters/tui/styles"
	"cvbuilder/internal/application"
	"cvbuilder/internal/application/commands"
	"cvbuilder/internal/domain"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys are the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// RemoveModel asks before removing a collection entry
type RemoveModel struct {
	ViewState
	ws         *application.Workspace
	Keys       ConfirmKeyMap
	collection domain.Collection
	index      int
	label      string
}

// NewRemoveModel creates the remove confirmation view
func NewRemoveModel(ws *application.Workspace) *RemoveModel {
	return &RemoveModel{
		ws:   ws,
		Keys: DefaultConfirmKeys,
	}
}

// SetTarget selects the entry to remove
func (m *RemoveModel) SetTarget(c domain.Collection, index int) {
	m.collection = c
	m.index = index
	m.label = entryLabel(m.ws.Current(), c, index)
	m.ClearMessage()
}

// Init initializes the remove view
func (m *RemoveModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the remove view
func (m *RemoveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			return m, switchTo(SwitchToFormMsg{})

		case key.Matches(msg, m.Keys.Confirm):
			result, err := commands.NewRemoveEntryCommand(m.ws, string(m.collection), m.index).Execute(context.Background())
			if err != nil {
				m.SetError(err)
				return m, nil
			}
			return m, tea.Batch(
				switchTo(SwitchToFormMsg{}),
				status(result.Message+" (u to undo)", false),
			)
		}
	}
	return m, nil
}

// View renders the remove view
func (m *RemoveModel) View() string {
	v := NewViewBuilder()
	v.Title("Remove entry")
	v.Line(RenderTargetInfo(m.collection, m.index, m.label))
	v.BlankLine()
	v.Message(m.Message, m.MessageErr)
	v.Raw(RenderConfirmPrompt("Remove this entry?"))
	return v.String()
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}

// RenderTargetInfo describes the entry about to be removed
func RenderTargetInfo(c domain.Collection, index int, label string) string {
	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(fmt.Sprintf("%s #%d:", collectionLabel(c), index+1)))
	b.WriteString("\n  ")
	b.WriteString(valueOrEmpty(label))
	return b.String()
}
