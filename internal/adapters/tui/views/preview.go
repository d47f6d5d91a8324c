package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"cvbuilder/internal/adapters/tui/styles"
	"cvbuilder/internal/application"
	"cvbuilder/internal/domain"
)

// PreviewKeyMap defines key bindings for the preview view
type PreviewKeyMap struct {
	Back key.Binding
	Copy key.Binding
}

var PreviewKeys = PreviewKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "p", "q"),
		key.WithHelp("esc", "back"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy text"),
	),
}

// PreviewModel shows the résumé rendered with the current layout
type PreviewModel struct {
	ViewState
	ws       *application.Workspace
	viewport viewport.Model
	copy     func(string) error
}

// NewPreviewModel creates the preview view
func NewPreviewModel(ws *application.Workspace) *PreviewModel {
	return &PreviewModel{
		ws:       ws,
		viewport: viewport.New(80, 20),
		copy:     clipboard.WriteAll,
	}
}

// Init initializes the preview view
func (m *PreviewModel) Init() tea.Cmd {
	return nil
}

// SetSize resizes the viewport around the header and help lines
func (m *PreviewModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = max(20, width-4)
	m.viewport.Height = max(5, height-8)
	m.Refresh()
}

// Refresh re-renders the current résumé into the viewport
func (m *PreviewModel) Refresh() {
	m.viewport.SetContent(RenderPreview(m.ws.Current(), m.ws.Layout(), m.viewport.Width))
}

// Update handles messages for the preview view
func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PreviewKeys.Back):
			return m, switchTo(SwitchToFormMsg{})

		case key.Matches(msg, PreviewKeys.Copy):
			if err := m.copy(application.PlainText(m.ws.Current())); err != nil {
				m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
			} else {
				m.SetMessage("Copied to clipboard", false)
			}
			return m, nil

		}

		if text, ok := cycleLayout(m.ws, msg); ok {
			m.SetMessage(text, false)
			m.Refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the preview view
func (m *PreviewModel) View() string {
	v := NewViewBuilder()
	v.Title(fmt.Sprintf("Preview • %s", layoutBadge(m.ws.Layout())))
	v.Line(m.viewport.View())
	v.Message(m.Message, m.MessageErr)
	v.Help(PreviewKeys.Back, PreviewKeys.Copy, LayoutKeys.Template, LayoutKeys.FontSize, LayoutKeys.Align)
	return v.String()
}

// RenderPreview renders the résumé blocks styled by layout, wrapped to
// width. Font size sets heading style and spacing; alignment applies to
// body text.
func RenderPreview(r domain.Resume, l domain.Layout, width int) string {
	blocks := application.Preview(r)
	if len(blocks) == 0 {
		return styles.MutedText.Render("Nothing to preview yet.")
	}

	heading := styles.AccentHeading(l)
	spacing := densityFor(l.FontSize)
	body := lipgloss.NewStyle().Width(width)
	if l.Align == domain.AlignCenter {
		body = body.Align(lipgloss.Center)
	}

	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			b.WriteString(strings.Repeat("\n", spacing.blockGap))
		}
		if block.Heading == "" {
			b.WriteString(renderHeader(block.Lines, l, width))
			continue
		}
		b.WriteString(heading.Render(spacing.heading(block.Heading)))
		b.WriteString("\n")
		if spacing.headingGap {
			b.WriteString("\n")
		}
		for _, line := range block.Lines {
			if l.Align == domain.AlignJustify {
				b.WriteString(justify(line, width))
			} else {
				b.WriteString(body.Render(line))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// density is the terminal rendering of a font size: heading emphasis and
// blank lines around blocks.
type density struct {
	blockGap   int
	headingGap bool
	upper      bool
	spaced     bool
}

func densityFor(f domain.FontSize) density {
	switch f {
	case domain.FontXS:
		return density{}
	case domain.FontSM:
		return density{upper: true}
	case domain.FontLG:
		return density{blockGap: 1, headingGap: true, upper: true}
	case domain.FontXL:
		return density{blockGap: 2, headingGap: true, upper: true, spaced: true}
	default:
		return density{blockGap: 1, upper: true}
	}
}

func (d density) heading(s string) string {
	if d.upper {
		s = strings.ToUpper(s)
	}
	if d.spaced {
		s = strings.Join(strings.Split(s, ""), " ")
	}
	return s
}

// justify wraps text to width and stretches every line except the last of
// each paragraph so both edges line up
func justify(text string, width int) string {
	paragraphs := strings.Split(text, "\n")
	for i, p := range paragraphs {
		lines := strings.Split(wordwrap.String(p, width), "\n")
		for j := 0; j < len(lines)-1; j++ {
			lines[j] = stretch(lines[j], width)
		}
		lines[len(lines)-1] = strings.TrimRight(lines[len(lines)-1], " ")
		paragraphs[i] = strings.Join(lines, "\n")
	}
	return strings.Join(paragraphs, "\n")
}

// stretch spreads the spaces of line so it is width cells wide. Lines with
// a single word or no room are returned trimmed.
func stretch(line string, width int) string {
	words := strings.Fields(line)
	gaps := len(words) - 1
	if gaps < 1 {
		return strings.TrimSpace(line)
	}

	used := 0
	for _, w := range words {
		used += lipgloss.Width(w)
	}
	spaces := width - used
	if spaces < gaps {
		return strings.Join(words, " ")
	}

	var b strings.Builder
	for i, w := range words {
		b.WriteString(w)
		if i < gaps {
			n := spaces / gaps
			if i < spaces%gaps {
				n++
			}
			b.WriteString(strings.Repeat(" ", n))
		}
	}
	return b.String()
}

func renderHeader(lines []string, l domain.Layout, width int) string {
	style := lipgloss.NewStyle().Width(width)
	if l.Template == domain.TemplateModern || l.Template == domain.TemplateCreative {
		style = style.Align(lipgloss.Center)
	}

	var b strings.Builder
	for i, line := range lines {
		s := style
		if i == 0 {
			s = s.Inherit(styles.AccentText(l)).Bold(true)
		}
		b.WriteString(s.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
