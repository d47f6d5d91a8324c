package views

import (
	"fmt"
	"strings"
	"unicode"

	"cvbuilder/internal/application/commands"
	"cvbuilder/internal/domain"
)

type rowKind int

const (
	rowHeading rowKind = iota
	rowPersonal
	rowSummary
	rowEntry
)

// formRow is one selectable line of the form view
type formRow struct {
	kind       rowKind
	heading    string
	field      string            // personal field
	collection domain.Collection // heading or entry collection
	index      int
	value      string
}

// target returns the edit target the row belongs to
func (r formRow) target() string {
	switch r.kind {
	case rowPersonal:
		return commands.TargetPersonal
	case rowSummary:
		return commands.TargetSummary
	}
	if r.collection != "" {
		return string(r.collection)
	}
	if r.heading == "Summary" {
		return commands.TargetSummary
	}
	return commands.TargetPersonal
}

// buildRows lays the résumé out as form rows: personal info, summary,
// the reorderable sections in document order, then skills and languages
func buildRows(r domain.Resume) []formRow {
	rows := []formRow{{kind: rowHeading, heading: "Personal"}}
	for _, f := range domain.PersonalFields {
		v, _ := r.Personal(f)
		rows = append(rows, formRow{kind: rowPersonal, field: f, value: v})
	}

	rows = append(rows,
		formRow{kind: rowHeading, heading: "Summary"},
		formRow{kind: rowSummary, value: r.Summary},
	)

	collections := make([]domain.Collection, 0, len(domain.Collections))
	for _, key := range r.Order {
		collections = append(collections, key.Collection())
	}
	collections = append(collections, domain.CollectionSkills, domain.CollectionLanguages)

	for _, c := range collections {
		n := r.EntryCount(c)
		rows = append(rows, formRow{
			kind:       rowHeading,
			heading:    fmt.Sprintf("%s (%d)", collectionLabel(c), n),
			collection: c,
		})
		for i := range n {
			rows = append(rows, formRow{
				kind:       rowEntry,
				collection: c,
				index:      i,
				value:      entryLabel(r, c, i),
			})
		}
	}
	return rows
}

// entryLabel summarizes an entry from its first fields
func entryLabel(r domain.Resume, c domain.Collection, index int) string {
	fields := domain.Fields(c)
	var parts []string
	for _, f := range fields[:min(2, len(fields))] {
		if v, err := r.EntryField(c, index, f); err == nil && v != "" {
			parts = append(parts, v)
		}
	}
	if c == domain.CollectionLanguages && len(parts) == 2 {
		return fmt.Sprintf("%s (%s)", parts[0], parts[1])
	}
	return strings.Join(parts, " · ")
}

func collectionLabel(c domain.Collection) string {
	if key, err := domain.ParseSectionKey(string(c)); err == nil {
		return key.Label()
	}
	return fieldLabel(string(c))
}

// fieldLabel turns a field name such as startDate into "Start date"
func fieldLabel(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// rowIndex finds the row for an entry, or -1
func rowIndex(rows []formRow, c domain.Collection, index int) int {
	for i, row := range rows {
		if row.kind == rowEntry && row.collection == c && row.index == index {
			return i
		}
	}
	return -1
}
