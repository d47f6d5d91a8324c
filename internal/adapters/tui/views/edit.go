package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cvbuilder/internal/application"
	"cvbuilder/internal/application/commands"
	"cvbuilder/internal/domain"
)

// EditModel edits one block of fields (personal info, the summary or a
// single entry) and commits them together on submit
type EditModel struct {
	ViewState
	ws            *application.Workspace
	editorEnabled bool

	target string
	index  int
	form   *InputForm
}

// NewEditModel creates the entry form view
func NewEditModel(ws *application.Workspace, editorEnabled bool) *EditModel {
	return &EditModel{
		ws:            ws,
		editorEnabled: editorEnabled,
		form:          NewInputForm(),
	}
}

// SetTarget loads the fields of target into the form
func (m *EditModel) SetTarget(target string, index int, focus string) error {
	r := m.ws.Current()
	var fields []InputField

	switch target {
	case commands.TargetSummary:
		fields = append(fields, NewInputField("", "Summary", r.Summary))
	case commands.TargetPersonal:
		for _, f := range domain.PersonalFields {
			v, _ := r.Personal(f)
			fields = append(fields, NewInputField(f, fieldLabel(f), v))
		}
	default:
		c, err := application.ValidateCollection(target)
		if err != nil {
			return err
		}
		if index < 0 || index >= r.EntryCount(c) {
			return fmt.Errorf("%w: %s[%d]", application.ErrNotFound, c, index)
		}
		for _, f := range domain.Fields(c) {
			v, _ := r.EntryField(c, index, f)
			fields = append(fields, NewInputField(f, fieldLabel(f), v))
		}
	}

	m.target = target
	m.index = index
	m.form = NewInputForm(fields...)
	if focus != "" {
		m.form.FocusByName(focus)
	}
	m.ClearMessage()
	return nil
}

// Init initializes the edit view
func (m *EditModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the edit view
func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, switchTo(SwitchToFormMsg{})

		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.submit()

		case key.Matches(msg, m.form.Keys.Editor):
			if !m.editorEnabled {
				return m, nil
			}
			field, ok := m.form.Focused()
			if !ok {
				return m, nil
			}
			return m, switchTo(OpenEditorMsg{Target: m.target, Index: m.index, Field: field.Name})
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// submit commits every changed field as one history step
func (m *EditModel) submit() tea.Cmd {
	var values []commands.FieldValue
	for _, f := range m.form.Changes() {
		values = append(values, commands.FieldValue{Field: f.Name, Value: f.Input.Value()})
	}

	result, err := commands.NewEditFieldsCommand(m.ws, m.target, m.index, values...).Execute(context.Background())
	if err != nil {
		m.SetError(err)
		return nil
	}
	return tea.Batch(
		switchTo(SwitchToFormMsg{}),
		status(result.Message, false),
	)
}

// View renders the edit view
func (m *EditModel) View() string {
	v := NewViewBuilder()
	v.Title("Edit " + m.heading())

	for i := range m.form.Fields {
		v.Line(m.form.RenderField(i, min(72, max(20, m.Width-8))))
	}
	v.BlankLine()
	v.Message(m.Message, m.MessageErr)
	v.Raw(m.form.RenderHelp(m.editorEnabled))
	return v.String()
}

func (m *EditModel) heading() string {
	switch m.target {
	case commands.TargetSummary:
		return "summary"
	case commands.TargetPersonal:
		return "personal info"
	}
	return fmt.Sprintf("%s #%d", m.target, m.index+1)
}
