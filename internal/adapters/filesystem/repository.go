package filesystem

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"cvbuilder/internal/domain"
)

// Format is an on-disk résumé encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from the file extension. Unknown
// extensions are read as YAML, which also accepts JSON documents.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Repository implements ports.ResumeSource using seed files on disk
type Repository struct{}

// NewRepository creates a new filesystem repository
func NewRepository() *Repository {
	return &Repository{}
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return path
}

// Load reads the résumé at path. Missing section order and entry IDs are
// filled in. A section order that is not a permutation is an error.
func (r *Repository) Load(path string) (domain.Resume, error) {
	path = ExpandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Resume{}, fmt.Errorf("failed to read resume: %w", err)
	}

	resume, err := Decode(bytes.NewReader(data), FormatFromPath(path))
	if err != nil {
		return domain.Resume{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return resume, nil
}

// Decode reads one résumé document
func Decode(rd io.Reader, format Format) (domain.Resume, error) {
	var resume domain.Resume

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(rd)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&resume); err != nil {
			return domain.Resume{}, err
		}
	default:
		dec := yaml.NewDecoder(rd)
		dec.KnownFields(true)
		if err := dec.Decode(&resume); err != nil && !errors.Is(err, io.EOF) {
			return domain.Resume{}, err
		}
	}

	resume = resume.Normalize()
	if err := resume.Order.Validate(); err != nil {
		return domain.Resume{}, err
	}
	return resume, nil
}

// Encode writes the résumé in the given format
func Encode(w io.Writer, resume domain.Resume, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resume)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resume); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
