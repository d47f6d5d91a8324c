package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cvbuilder/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Next   key.Binding
	Prev   key.Binding
	Editor key.Binding
}

// DefaultInputFormKeys are the default input form key bindings
var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "prev field"),
	),
	Editor: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "$EDITOR"),
	),
}

// InputField is one labelled text input bound to a résumé field
type InputField struct {
	Name     string // field name as the domain knows it
	Label    string
	Input    textinput.Model
	original string
}

// NewInputField creates an input prefilled with value
func NewInputField(name, label, value string) InputField {
	input := textinput.New()
	input.Placeholder = label
	input.Prompt = ""
	input.SetValue(value)
	return InputField{
		Name:     name,
		Label:    label,
		Input:    input,
		original: value,
	}
}

// Changed reports whether the value differs from the prefilled one
func (f InputField) Changed() bool {
	return strings.TrimSpace(f.Input.Value()) != strings.TrimSpace(f.original)
}

// InputForm manages several text inputs with focus handling
type InputForm struct {
	Fields       []InputField
	FocusedField int
	Keys         InputFormKeyMap
}

// NewInputForm creates an input form with the first field focused
func NewInputForm(fields ...InputField) *InputForm {
	form := &InputForm{
		Fields: fields,
		Keys:   DefaultInputFormKeys,
	}
	if len(fields) > 0 {
		form.Fields[0].Input.Focus()
	}
	return form
}

// Init returns the blink command for the focused input
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles focus keys and forwards the rest to the focused input.
// Returns true when the key only moved focus.
func (f *InputForm) Update(msg tea.Msg) (bool, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, f.Keys.Next):
			f.SetFocus((f.FocusedField + 1) % max(1, len(f.Fields)))
			return true, nil
		case key.Matches(msg, f.Keys.Prev):
			f.SetFocus((f.FocusedField - 1 + len(f.Fields)) % max(1, len(f.Fields)))
			return true, nil
		}
	}

	var cmd tea.Cmd
	if f.FocusedField >= 0 && f.FocusedField < len(f.Fields) {
		f.Fields[f.FocusedField].Input, cmd = f.Fields[f.FocusedField].Input.Update(msg)
	}
	return false, cmd
}

// SetFocus moves focus to the field at index
func (f *InputForm) SetFocus(index int) {
	if index < 0 || index >= len(f.Fields) {
		return
	}
	if f.FocusedField >= 0 && f.FocusedField < len(f.Fields) {
		f.Fields[f.FocusedField].Input.Blur()
	}
	f.FocusedField = index
	f.Fields[f.FocusedField].Input.Focus()
}

// FocusByName focuses the field called name, if present
func (f *InputForm) FocusByName(name string) {
	for i, field := range f.Fields {
		if field.Name == name {
			f.SetFocus(i)
			return
		}
	}
}

// Focused returns the focused field
func (f *InputForm) Focused() (InputField, bool) {
	if f.FocusedField < 0 || f.FocusedField >= len(f.Fields) {
		return InputField{}, false
	}
	return f.Fields[f.FocusedField], true
}

// Value returns the trimmed value of the field at index
func (f *InputForm) Value(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	return strings.TrimSpace(f.Fields[index].Input.Value())
}

// Changes returns the edited fields in form order
func (f *InputForm) Changes() []InputField {
	var changed []InputField
	for _, field := range f.Fields {
		if field.Changed() {
			changed = append(changed, field)
		}
	}
	return changed
}

// RenderField renders a single field with appropriate styling
func (f *InputForm) RenderField(index int, width int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}

	field := f.Fields[index]
	if width > 4 {
		field.Input.Width = width - 4
	}

	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(field.Label))
	b.WriteString("\n")
	if index == f.FocusedField {
		b.WriteString(styles.InputFocused.Render(field.Input.View()))
	} else {
		b.WriteString(styles.InputField.Render(field.Input.View()))
	}
	return b.String()
}

// RenderHelp renders the help line for the form
func (f *InputForm) RenderHelp(withEditor bool) string {
	bindings := []key.Binding{f.Keys.Submit, f.Keys.Cancel}
	if len(f.Fields) > 1 {
		bindings = append([]key.Binding{f.Keys.Next}, bindings...)
	}
	if withEditor {
		bindings = append(bindings, f.Keys.Editor)
	}
	return RenderHelpLine(bindings...)
}
