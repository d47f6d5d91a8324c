package config

import (
	"fmt"
	"slices"
	"strings"

	"cvbuilder/internal/domain"
)

var (
	languages  = []string{"en", "es"}
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	c.Lang = strings.ToLower(strings.TrimSpace(c.Lang))
	if !slices.Contains(languages, c.Lang) {
		return fmt.Errorf("language must be one of %s (got %q)", strings.Join(languages, ", "), c.Lang)
	}

	if strings.TrimSpace(c.Seed) == "" {
		c.Seed = DefaultSeedPath
	}

	if _, err := domain.ParseTemplate(c.Layout.Template); err != nil {
		return fmt.Errorf("layout.template: %w", err)
	}
	if _, err := domain.ParseFontSize(c.Layout.FontSize); err != nil {
		return fmt.Errorf("layout.font_size: %w", err)
	}
	if _, err := domain.ParseTextAlign(c.Layout.Align); err != nil {
		return fmt.Errorf("layout.align: %w", err)
	}
	if err := domain.ValidateColor(c.Layout.Accent); err != nil {
		return fmt.Errorf("layout.accent: %w", err)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %s (got %q)", strings.Join(logLevels, ", "), c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %s (got %q)", strings.Join(logFormats, ", "), c.Log.Format)
	}

	return nil
}

// InitialLayout converts the layout settings into a domain.Layout.
// Call after Validate.
func (c *Config) InitialLayout() domain.Layout {
	l := domain.DefaultLayout()
	if t, err := domain.ParseTemplate(c.Layout.Template); err == nil {
		l.Template = t
	}
	if f, err := domain.ParseFontSize(c.Layout.FontSize); err == nil {
		l.FontSize = f
	}
	if a, err := domain.ParseTextAlign(c.Layout.Align); err == nil {
		l.Align = a
	}
	if domain.ValidateColor(c.Layout.Accent) == nil {
		l.AccentColor = c.Layout.Accent
	}
	return l
}
