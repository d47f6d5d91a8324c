package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cvbuilder/internal/adapters/tui/styles"
	"cvbuilder/internal/application"
	"cvbuilder/internal/application/commands"
	"cvbuilder/internal/domain"
)

// ReorderKeyMap defines key bindings for the reorder view
type ReorderKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Grab   key.Binding
	Cancel key.Binding
	Undo   key.Binding
	Redo   key.Binding
}

var ReorderKeys = ReorderKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Grab: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "pick up/drop"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "o", "q"),
		key.WithHelp("esc", "cancel/back"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u", "ctrl+z"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+r", "ctrl+y"),
		key.WithHelp("ctrl+r", "redo"),
	),
}

// ReorderModel drags résumé sections into a new order. Picking a section
// up starts a drag session on the workspace, moving the cursor hovers and
// dropping ends it.
type ReorderModel struct {
	ViewState
	ws     *application.Workspace
	cursor int
}

// NewReorderModel creates the reorder view
func NewReorderModel(ws *application.Workspace) *ReorderModel {
	return &ReorderModel{ws: ws}
}

// Init initializes the reorder view
func (m *ReorderModel) Init() tea.Cmd {
	return nil
}

// Reset puts the cursor back on the first section
func (m *ReorderModel) Reset() {
	m.cursor = 0
	m.ClearMessage()
}

// Cursor returns the highlighted position
func (m *ReorderModel) Cursor() int {
	return m.cursor
}

// Update handles messages for the reorder view
func (m *ReorderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *ReorderModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	size := len(m.ws.Current().Order)
	dragging := m.ws.Drag().Active()

	switch {
	case key.Matches(msg, ReorderKeys.Up):
		if m.cursor > 0 {
			m.moveTo(m.cursor - 1)
		}

	case key.Matches(msg, ReorderKeys.Down):
		if m.cursor < size-1 {
			m.moveTo(m.cursor + 1)
		}

	case key.Matches(msg, ReorderKeys.Grab):
		if !dragging {
			m.ws.BeginDrag(m.cursor)
			m.SetMessage(fmt.Sprintf("Moving %s", m.ws.Current().Order[m.cursor].Label()), false)
			return m, nil
		}
		source := m.ws.Drag().Source()
		target, _ := m.ws.Drag().Target()
		switch m.ws.EndDrag() {
		case domain.DragMoved:
			m.cursor = target
			m.SetMessage(fmt.Sprintf("Order: %s", m.ws.Current().Order), false)
		default:
			m.cursor = source
			m.SetMessage("Order unchanged", false)
		}

	case key.Matches(msg, ReorderKeys.Cancel):
		if dragging {
			source := m.ws.Drag().Source()
			m.ws.CancelDrag()
			m.cursor = source
			m.SetMessage("Move cancelled", false)
			return m, nil
		}
		return m, switchTo(SwitchToFormMsg{})

	case key.Matches(msg, ReorderKeys.Undo):
		m.history(commands.NewUndoCommand(m.ws).Execute(context.Background()))

	case key.Matches(msg, ReorderKeys.Redo):
		m.history(commands.NewRedoCommand(m.ws).Execute(context.Background()))
	}
	return m, nil
}

func (m *ReorderModel) moveTo(index int) {
	m.cursor = index
	if m.ws.Drag().Active() {
		m.ws.Hover(index)
	}
}

func (m *ReorderModel) history(result *commands.HistoryResult, err error) {
	if m.ws.Drag().Active() {
		m.ws.CancelDrag()
	}
	if err != nil {
		m.SetError(err)
		return
	}
	m.cursor = min(m.cursor, len(m.ws.Current().Order)-1)
	m.SetMessage(result.Message, !result.Moved)
}

// View renders the reorder view
func (m *ReorderModel) View() string {
	v := NewViewBuilder()
	v.Title("Section order")
	v.Subtitle("Personal info and summary stay on top. Skills and languages stay at the bottom.")

	drag := m.ws.Drag()
	for i, k := range m.ws.Current().Order {
		if drag.IsOver(i) && !drag.DropAfter(i) {
			v.Line(dropPlaceholder())
		}
		v.Line(m.renderSection(i, k, drag))
		if drag.DropAfter(i) {
			v.Line(dropPlaceholder())
		}
	}
	v.BlankLine()
	v.Message(m.Message, m.MessageErr)
	v.Line(RenderStatusBar("order", historyHint(m.ws)))
	v.Help(ReorderKeys.Up, ReorderKeys.Down, ReorderKeys.Grab, ReorderKeys.Cancel, ReorderKeys.Undo, ReorderKeys.Redo)
	return v.String()
}

func (m *ReorderModel) renderSection(i int, k domain.SectionKey, drag *domain.DragSession) string {
	line := fmt.Sprintf("  %d. %s", i+1, k.Label())
	switch {
	case drag.IsDragging(i) && i == m.cursor:
		return styles.RowSelected.Render("≡ " + line[2:])
	case drag.IsDragging(i):
		return styles.RowDragging.Render("≡ " + line[2:])
	case i == m.cursor:
		return styles.RowSelected.Render(line)
	}
	return line
}

func dropPlaceholder() string {
	return styles.DropPlaceholder.Render("  ── drop here ──")
}
