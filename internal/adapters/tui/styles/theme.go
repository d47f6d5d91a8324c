package styles

import (
	"github.com/charmbracelet/lipgloss"

	"cvbuilder/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#0369A1") // Sky, matches the default accent
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Form rows
	RowSection = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	RowLabel = lipgloss.NewStyle().
			Foreground(Secondary)

	RowValue = lipgloss.NewStyle()

	RowEmpty = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Drag and drop
	RowDragging = lipgloss.NewStyle().
			Foreground(Muted).
			Strikethrough(true)

	DropPlaceholder = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	// Status bar
	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Spinner = lipgloss.NewStyle().
		Foreground(Primary)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// AccentHeading returns the section heading style for a layout: a band of
// the accent color with readable text on top
func AccentHeading(l domain.Layout) lipgloss.Style {
	accent := l.AccentColor
	if domain.ValidateColor(accent) != nil {
		accent = domain.DefaultAccentColor
	}
	s := lipgloss.NewStyle().Bold(true)

	switch l.Template {
	case domain.TemplateClassic:
		return s.Foreground(lipgloss.Color(accent)).Underline(true)
	case domain.TemplateCreative:
		return s.Foreground(lipgloss.Color(accent)).Italic(true)
	default:
		return s.
			Background(lipgloss.Color(accent)).
			Foreground(lipgloss.Color(domain.ContrastText(accent))).
			Padding(0, 1)
	}
}

// AccentText returns a plain foreground style in the layout accent
func AccentText(l domain.Layout) lipgloss.Style {
	accent := l.AccentColor
	if domain.ValidateColor(accent) != nil {
		accent = domain.DefaultAccentColor
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(accent))
}
