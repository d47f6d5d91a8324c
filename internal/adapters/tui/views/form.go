package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"cvbuilder/internal/adapters/tui/styles"
	"cvbuilder/internal/application"
	"cvbuilder/internal/application/commands"
	"cvbuilder/internal/domain"
)

// FormKeyMap defines key bindings for the form view
type FormKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Edit     key.Binding
	Editor   key.Binding
	Add      key.Binding
	Remove   key.Binding
	Undo     key.Binding
	Redo     key.Binding
	Reorder  key.Binding
	Summary  key.Binding
	Preview  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var FormKeys = FormKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit"),
	),
	Editor: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "$EDITOR"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Remove: key.NewBinding(
		key.WithKeys("d", "x"),
		key.WithHelp("d", "remove"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u", "ctrl+z"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+r", "ctrl+y"),
		key.WithHelp("ctrl+r", "redo"),
	),
	Reorder: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "reorder"),
	),
	Summary: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "AI summary"),
	),
	Preview: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "preview"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// FormModel is the main editing view: every résumé field as a row
type FormModel struct {
	ViewState
	ws       *application.Workspace
	rows     []formRow
	scroller *Scroller
	keys     FormKeyMap

	generating bool
	spinner    spinner.Model
}

// NewFormModel creates the form view over ws. aiEnabled controls
// whether the summary key is offered.
func NewFormModel(ws *application.Workspace, aiEnabled bool) *FormModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	keys := FormKeys
	keys.Summary.SetEnabled(aiEnabled)

	m := &FormModel{
		ws:       ws,
		scroller: NewScroller(20),
		keys:     keys,
		spinner:  s,
	}
	m.Refresh()
	return m
}

// Init initializes the form view
func (m *FormModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions and the visible row count
func (m *FormModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.scroller.SetHeight(height - 9)
}

// Refresh rebuilds the rows from the current résumé
func (m *FormModel) Refresh() {
	m.rows = buildRows(m.ws.Current())
	m.scroller.SetTotal(len(m.rows))
}

// Selected returns the row under the cursor
func (m *FormModel) Selected() (formRow, bool) {
	i := m.scroller.Cursor()
	if i < 0 || i >= len(m.rows) {
		return formRow{}, false
	}
	return m.rows[i], true
}

// SelectEntry moves the cursor onto an entry row
func (m *FormModel) SelectEntry(c domain.Collection, index int) {
	if i := rowIndex(m.rows, c, index); i >= 0 {
		m.scroller.SetCursor(i)
	}
}

// SetGenerating toggles the summary spinner
func (m *FormModel) SetGenerating(on bool) tea.Cmd {
	m.generating = on
	if on {
		m.SetMessage("", false)
		return m.spinner.Tick
	}
	return nil
}

// Generating reports whether a summary request is in flight
func (m *FormModel) Generating() bool {
	return m.generating
}

// Update handles messages for the form view
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.generating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case StatusMsg:
		m.Refresh()
		m.SetMessage(msg.Text, msg.Err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row, ok := m.Selected()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.scroller.Up()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.scroller.Down()
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if !ok || (row.kind == rowHeading && row.collection != "") {
			return m, nil
		}
		return m, switchTo(SwitchToEditMsg{Target: row.target(), Index: row.index, Focus: row.field})

	case key.Matches(msg, m.keys.Editor):
		return m, m.openEditor(row)

	case key.Matches(msg, m.keys.Add):
		return m, m.addEntry(row)

	case key.Matches(msg, m.keys.Remove):
		if !ok || row.kind != rowEntry {
			m.SetMessage("Select an entry to remove", true)
			return m, nil
		}
		return m, switchTo(SwitchToRemoveMsg{Collection: row.collection, Index: row.index})

	case key.Matches(msg, m.keys.Undo):
		result, err := commands.NewUndoCommand(m.ws).Execute(context.Background())
		m.report(result, err)
		return m, nil

	case key.Matches(msg, m.keys.Redo):
		result, err := commands.NewRedoCommand(m.ws).Execute(context.Background())
		m.report(result, err)
		return m, nil

	case key.Matches(msg, m.keys.Reorder):
		return m, switchTo(SwitchToReorderMsg{})

	case key.Matches(msg, m.keys.Summary):
		if m.generating {
			return m, nil
		}
		return m, switchTo(GenerateSummaryMsg{})

	case key.Matches(msg, m.keys.Preview):
		return m, switchTo(SwitchToPreviewMsg{})

	case key.Matches(msg, m.keys.Help):
		return m, switchTo(SwitchToHelpMsg{})
	}

	if text, ok := cycleLayout(m.ws, msg); ok {
		m.SetMessage(text, false)
	}
	return m, nil
}

func (m *FormModel) report(result *commands.HistoryResult, err error) {
	if err != nil {
		m.SetError(err)
		return
	}
	m.Refresh()
	m.SetMessage(result.Message, !result.Moved)
}

func (m *FormModel) openEditor(row formRow) tea.Cmd {
	switch {
	case row.kind == rowSummary || (row.kind == rowHeading && row.target() == commands.TargetSummary):
		return switchTo(OpenEditorMsg{Target: commands.TargetSummary})
	case row.kind == rowEntry && row.collection == domain.CollectionExperience:
		return switchTo(OpenEditorMsg{Target: string(row.collection), Index: row.index, Field: "description"})
	}
	m.SetMessage("Only the summary and experience descriptions open in $EDITOR", true)
	return nil
}

func (m *FormModel) addEntry(row formRow) tea.Cmd {
	if row.collection == "" {
		m.SetMessage("Select a section to add to", true)
		return nil
	}
	result, err := commands.NewAddEntryCommand(m.ws, string(row.collection)).Execute(context.Background())
	if err != nil {
		m.SetError(err)
		return nil
	}
	m.Refresh()
	m.SelectEntry(result.Collection, result.Index)
	m.SetMessage(result.Message, false)
	return switchTo(SwitchToEditMsg{Target: string(result.Collection), Index: result.Index})
}

// View renders the form view
func (m *FormModel) View() string {
	v := NewViewBuilder()
	v.Title("CV Builder")

	start, end := m.scroller.VisibleRange()
	cursor := m.scroller.Cursor()
	for i := start; i < end; i++ {
		v.Line(m.renderRow(m.rows[i], i == cursor))
	}
	v.BlankLine()

	switch {
	case m.generating:
		v.Line(m.spinner.View() + " Writing summary...")
	case m.Message != "":
		v.Line(RenderMessage(m.Message, m.MessageErr))
	default:
		v.BlankLine()
	}

	v.Line(RenderStatusBar(layoutBadge(m.ws.Layout()), fmt.Sprintf("%s • order: %s", historyHint(m.ws), m.ws.Current().Order)))
	v.Help(m.keys.Edit, m.keys.Add, m.keys.Remove, m.keys.Undo, m.keys.Redo, m.keys.Reorder, m.keys.Summary, m.keys.Preview, m.keys.Help)
	return v.String()
}

func (m *FormModel) renderRow(row formRow, selected bool) string {
	width := max(20, m.Width-8)

	var line string
	switch row.kind {
	case rowHeading:
		line = strings.ToUpper(row.heading)
		if selected {
			return styles.RowSelected.Render(line)
		}
		return styles.RowSection.Render(line)

	case rowPersonal:
		line = fmt.Sprintf("  %-10s %s", fieldLabel(row.field)+":", valueOrEmpty(row.value))

	case rowSummary:
		line = "  " + valueOrEmpty(firstLine(row.value))

	case rowEntry:
		line = "  • " + valueOrEmpty(row.value)
	}

	line = truncate(line, width)
	if selected {
		return styles.RowSelected.Render(line)
	}
	if strings.HasSuffix(line, emptyValue) {
		return styles.RowEmpty.Render(line)
	}
	return styles.RowValue.Render(line)
}

const emptyValue = "(empty)"

func valueOrEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptyValue
	}
	return s
}
