package editor

import (
	"fmt"
	"os"
	"strings"
)

// Draft is a temporary file holding one long text field while it is
// edited externally
type Draft struct {
	Path string
}

// NewDraft writes text to a fresh temporary markdown file
func NewDraft(label, text string) (*Draft, error) {
	f, err := os.CreateTemp("", "cvbuilder-"+sanitize(label)+"-*.md")
	if err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(text); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("write draft: %w", err)
	}
	return &Draft{Path: f.Name()}, nil
}

// Read returns the edited text with the trailing newline editors add removed
func (d *Draft) Read() (string, error) {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return "", fmt.Errorf("read draft: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// Remove deletes the draft file
func (d *Draft) Remove() error {
	if err := os.Remove(d.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove draft: %w", err)
	}
	return nil
}

func sanitize(label string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, label)
}
