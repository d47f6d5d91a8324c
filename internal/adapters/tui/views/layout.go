package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cvbuilder/internal/application"
	"cvbuilder/internal/domain"
)

// LayoutKeyMap cycles the presentation settings. The form and the
// preview share it.
type LayoutKeyMap struct {
	Template key.Binding
	FontSize key.Binding
	Align    key.Binding
}

var LayoutKeys = LayoutKeyMap{
	Template: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "template"),
	),
	FontSize: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "size"),
	),
	Align: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("A", "align"),
	),
}

// cycleLayout steps the layout setting bound to msg and stores it in ws.
// It returns a status line and false when msg is not a layout key.
func cycleLayout(ws *application.Workspace, msg tea.KeyMsg) (string, bool) {
	l := ws.Layout()
	var text string

	switch {
	case key.Matches(msg, LayoutKeys.Template):
		l.Template = l.Template.Next()
		text = fmt.Sprintf("Template: %s", l.Template)
	case key.Matches(msg, LayoutKeys.FontSize):
		l.FontSize = l.FontSize.Next()
		text = fmt.Sprintf("Font size: %s", l.FontSize)
	case key.Matches(msg, LayoutKeys.Align):
		l.Align = l.Align.Next()
		text = fmt.Sprintf("Alignment: %s", l.Align)
	default:
		return "", false
	}

	ws.SetLayout(l)
	return text, true
}

// layoutBadge is the short layout summary shown in status bars
func layoutBadge(l domain.Layout) string {
	return fmt.Sprintf("%s %s %s", l.Template, l.FontSize, l.Align)
}
