package domain

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrUnknownTemplate = errors.New("unknown template")
	ErrUnknownFontSize = errors.New("unknown font size")
	ErrUnknownAlign    = errors.New("unknown text alignment")
	ErrInvalidColor    = errors.New("invalid color")
)

// Template selects the visual arrangement of the rendered résumé
type Template string

const (
	TemplateModern       Template = "modern"
	TemplateClassic      Template = "classic"
	TemplateCreative     Template = "creative"
	TemplateProfessional Template = "professional"
)

// Templates lists the templates in toolbar order
var Templates = []Template{TemplateModern, TemplateClassic, TemplateCreative, TemplateProfessional}

// ParseTemplate converts a template name into a Template
func ParseTemplate(s string) (Template, error) {
	return parseChoice(Templates, s, ErrUnknownTemplate)
}

// Next returns the template after t, wrapping around
func (t Template) Next() Template {
	return cycle(Templates, t)
}

// FontSize scales the rendered text
type FontSize string

const (
	FontXS FontSize = "xs"
	FontSM FontSize = "sm"
	FontMD FontSize = "md"
	FontLG FontSize = "lg"
	FontXL FontSize = "xl"
)

var FontSizes = []FontSize{FontXS, FontSM, FontMD, FontLG, FontXL}

// ParseFontSize converts a size name (xs to xl) into a FontSize
func ParseFontSize(s string) (FontSize, error) {
	return parseChoice(FontSizes, s, ErrUnknownFontSize)
}

func (f FontSize) Next() FontSize {
	return cycle(FontSizes, f)
}

// TextAlign is the paragraph alignment of long text
type TextAlign string

const (
	AlignLeft    TextAlign = "left"
	AlignCenter  TextAlign = "center"
	AlignJustify TextAlign = "justify"
)

var TextAligns = []TextAlign{AlignLeft, AlignCenter, AlignJustify}

// ParseTextAlign converts an alignment name into a TextAlign
func ParseTextAlign(s string) (TextAlign, error) {
	return parseChoice(TextAligns, s, ErrUnknownAlign)
}

func (a TextAlign) Next() TextAlign {
	return cycle(TextAligns, a)
}

func parseChoice[T ~string](values []T, s string, errUnknown error) (T, error) {
	v := T(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(values, v) {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", errUnknown, s)
}

func cycle[T comparable](values []T, current T) T {
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}

// DefaultAccentColor is the accent used when none is configured
const DefaultAccentColor = "#0369a1"

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Layout holds presentation settings. It is not part of the document
// history: changing it is never undoable.
type Layout struct {
	Template    Template
	FontSize    FontSize
	Align       TextAlign
	AccentColor string
}

// DefaultLayout returns the professional template at medium size
func DefaultLayout() Layout {
	return Layout{
		Template:    TemplateProfessional,
		FontSize:    FontMD,
		Align:       AlignLeft,
		AccentColor: DefaultAccentColor,
	}
}

// ValidateColor checks a #rrggbb hex color
func ValidateColor(hex string) error {
	if !hexColorRegex.MatchString(hex) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return nil
}

// ContrastText returns black or white, whichever reads better on the
// given background. Invalid colors get black.
func ContrastText(hex string) string {
	if ValidateColor(hex) != nil {
		return "#000000"
	}
	r, _ := strconv.ParseUint(hex[1:3], 16, 8)
	g, _ := strconv.ParseUint(hex[3:5], 16, 8)
	b, _ := strconv.ParseUint(hex[5:7], 16, 8)

	luminance := (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255
	if luminance > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}
