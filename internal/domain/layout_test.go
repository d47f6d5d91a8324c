package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContrastText(t *testing.T) {
	tests := []struct {
		bg   string
		want string
	}{
		{"#ffffff", "#000000"},
		{"#000000", "#ffffff"},
		{DefaultAccentColor, "#ffffff"},
		{"#ffff00", "#000000"},
		{"#0000ff", "#ffffff"},
		{"not-a-color", "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.bg, func(t *testing.T) {
			assert.Equal(t, tt.want, ContrastText(tt.bg))
		})
	}
}

func TestParseTemplate(t *testing.T) {
	got, err := ParseTemplate("Classic")
	assert.NoError(t, err)
	assert.Equal(t, TemplateClassic, got)

	_, err = ParseTemplate("fancy")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestParseFontSizeAndAlign(t *testing.T) {
	size, err := ParseFontSize(" XL ")
	assert.NoError(t, err)
	assert.Equal(t, FontXL, size)

	_, err = ParseFontSize("huge")
	assert.ErrorIs(t, err, ErrUnknownFontSize)

	align, err := ParseTextAlign("Justify")
	assert.NoError(t, err)
	assert.Equal(t, AlignJustify, align)

	_, err = ParseTextAlign("right")
	assert.ErrorIs(t, err, ErrUnknownAlign)
}

func TestLayoutCycles(t *testing.T) {
	assert.Equal(t, TemplateModern, TemplateProfessional.Next())
	assert.Equal(t, TemplateClassic, TemplateModern.Next())
	assert.Equal(t, FontXS, FontXL.Next())
	assert.Equal(t, AlignCenter, AlignLeft.Next())
	assert.Equal(t, AlignLeft, AlignJustify.Next())
	assert.Equal(t, TemplateModern, Template("").Next())
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()

	assert.Equal(t, TemplateProfessional, l.Template)
	assert.Equal(t, FontMD, l.FontSize)
	assert.NoError(t, ValidateColor(l.AccentColor))
	assert.Error(t, ValidateColor("#abc"))
}
