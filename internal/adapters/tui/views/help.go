package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cvbuilder/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, switchTo(SwitchToFormMsg{})
		}
	}
	return m, nil
}

type helpSection struct {
	title string
	keys  [][2]string
	notes []string
}

var helpSections = []helpSection{
	{
		title: "Editing",
		keys: [][2]string{
			{"j / k / ↑ / ↓", "Move up/down"},
			{"Enter", "Edit the selected block"},
			{"e", "Edit summary or description in $EDITOR"},
			{"a", "Add an entry to the selected section"},
			{"d", "Remove the selected entry"},
			{"g", "Write the summary with AI"},
		},
	},
	{
		title: "History",
		keys: [][2]string{
			{"u / Ctrl+Z", "Undo"},
			{"Ctrl+R / Ctrl+Y", "Redo"},
		},
		notes: []string{
			"Every edit, entry change and section move is one step.",
			"Editing after an undo discards the redo steps.",
		},
	},
	{
		title: "Section order",
		keys: [][2]string{
			{"o", "Open the reorder view"},
			{"Space / Enter", "Pick up or drop a section"},
			{"Esc", "Cancel the move in progress"},
		},
	},
	{
		title: "Layout",
		keys: [][2]string{
			{"p", "Preview"},
			{"t", "Next template"},
			{"y", "Copy the preview as text (in preview)"},
		},
		notes: []string{"Layout changes are not part of the undo history."},
	},
	{
		title: "General",
		keys: [][2]string{
			{"?", "Toggle help"},
			{"q / Ctrl+C", "Quit"},
		},
	},
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("CV Builder Help"))
	b.WriteString("\n\n")

	for _, section := range helpSections {
		b.WriteString(styles.InputLabel.Render(section.title))
		b.WriteString("\n")
		for _, k := range section.keys {
			b.WriteString("  ")
			b.WriteString(styles.HelpKey.Render(padRight(k[0], 20)))
			b.WriteString(styles.HelpDesc.Render(k[1]))
			b.WriteString("\n")
		}
		for _, note := range section.notes {
			b.WriteString(styles.MutedText.Render("  " + note))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
