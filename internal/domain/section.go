package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrInvalidOrder   = errors.New("invalid section order")
)

// SectionKey identifies a reorderable résumé section
type SectionKey string

const (
	SectionExperience SectionKey = "experience"
	SectionEducation  SectionKey = "education"
	SectionCourses    SectionKey = "courses"
)

var sectionKeys = []SectionKey{SectionExperience, SectionEducation, SectionCourses}

// SectionKeys returns the fixed set of reorderable sections
func SectionKeys() []SectionKey {
	return slices.Clone(sectionKeys)
}

// ParseSectionKey converts a section name into a SectionKey
func ParseSectionKey(s string) (SectionKey, error) {
	k := SectionKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(sectionKeys, k) {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// Collection returns the entry collection rendered by the section
func (k SectionKey) Collection() Collection {
	return Collection(k)
}

// Label returns the display heading of the section
func (k SectionKey) Label() string {
	switch k {
	case SectionExperience:
		return "Experience"
	case SectionEducation:
		return "Education"
	case SectionCourses:
		return "Courses"
	}
	return string(k)
}

// SectionOrder is the display order of the reorderable sections.
// A valid order is a permutation of SectionKeys.
type SectionOrder []SectionKey

// DefaultSectionOrder returns experience, education, courses
func DefaultSectionOrder() SectionOrder {
	return SectionOrder(SectionKeys())
}

// ParseSectionOrder parses a comma separated list of section names
func ParseSectionOrder(s string) (SectionOrder, error) {
	var order SectionOrder
	for _, part := range strings.Split(s, ",") {
		k, err := ParseSectionKey(part)
		if err != nil {
			return nil, err
		}
		order = append(order, k)
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate checks that the order contains every section exactly once
func (o SectionOrder) Validate() error {
	if len(o) != len(sectionKeys) {
		return fmt.Errorf("%w: want %d sections, got %d", ErrInvalidOrder, len(sectionKeys), len(o))
	}
	seen := make(map[SectionKey]bool, len(o))
	for _, k := range o {
		if !slices.Contains(sectionKeys, k) {
			return fmt.Errorf("%w: %w: %q", ErrInvalidOrder, ErrUnknownSection, k)
		}
		if seen[k] {
			return fmt.Errorf("%w: duplicate section %q", ErrInvalidOrder, k)
		}
		seen[k] = true
	}
	return nil
}

// Move removes the key at from and reinserts it at to, where to indexes
// the list after removal. Out of range indexes return an unchanged copy.
func (o SectionOrder) Move(from, to int) SectionOrder {
	out := slices.Clone(o)
	if from == to || from < 0 || from >= len(o) || to < 0 || to >= len(o) {
		return out
	}
	k := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, k)
}

// IndexOf returns the position of k, or -1
func (o SectionOrder) IndexOf(k SectionKey) int {
	return slices.Index(o, k)
}

func (o SectionOrder) Equal(other SectionOrder) bool {
	return slices.Equal(o, other)
}

func (o SectionOrder) String() string {
	parts := make([]string, len(o))
	for i, k := range o {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
