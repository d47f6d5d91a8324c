package application

import (
	"fmt"
	"strings"

	"cvbuilder/internal/domain"
)

// PreviewBlock is one rendered section of the résumé
type PreviewBlock struct {
	Heading string
	Lines   []string
}

// Preview lays the résumé out as text blocks: header, summary, the
// reorderable sections in the résumé's order, then skills and languages.
// Empty sections are omitted.
func Preview(r domain.Resume) []PreviewBlock {
	var blocks []PreviewBlock

	header := PreviewBlock{}
	if r.PersonalInfo.Name != "" {
		header.Lines = append(header.Lines, r.PersonalInfo.Name)
	}
	if r.PersonalInfo.Title != "" {
		header.Lines = append(header.Lines, r.PersonalInfo.Title)
	}
	if contact := contactLine(r.PersonalInfo); contact != "" {
		header.Lines = append(header.Lines, contact)
	}
	if len(header.Lines) > 0 {
		blocks = append(blocks, header)
	}

	if r.Summary != "" {
		blocks = append(blocks, PreviewBlock{Heading: "Summary", Lines: []string{r.Summary}})
	}

	for _, key := range r.Order {
		if b, ok := sectionBlock(r, key); ok {
			blocks = append(blocks, b)
		}
	}

	var skills []string
	for _, s := range r.Skills {
		if s.Name != "" {
			skills = append(skills, s.Name)
		}
	}
	if len(skills) > 0 {
		blocks = append(blocks, PreviewBlock{Heading: "Skills", Lines: []string{strings.Join(skills, ", ")}})
	}

	var languages []string
	for _, l := range r.Languages {
		switch {
		case l.Name != "" && l.Level != "":
			languages = append(languages, fmt.Sprintf("%s (%s)", l.Name, l.Level))
		case l.Name != "":
			languages = append(languages, l.Name)
		}
	}
	if len(languages) > 0 {
		blocks = append(blocks, PreviewBlock{Heading: "Languages", Lines: languages})
	}

	return blocks
}

// PlainText renders the preview blocks as plain text
func PlainText(r domain.Resume) string {
	var sb strings.Builder
	for i, b := range Preview(r) {
		if i > 0 {
			sb.WriteString("\n")
		}
		if b.Heading != "" {
			sb.WriteString(strings.ToUpper(b.Heading))
			sb.WriteString("\n")
		}
		for _, line := range b.Lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func contactLine(p domain.PersonalInfo) string {
	var parts []string
	for _, v := range []string{p.Email, p.Phone, p.Location, p.Website} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " | ")
}

func dateRange(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start + " - Present"
	default:
		return end
	}
}

func joinNonEmpty(sep string, values ...string) string {
	var parts []string
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

func sectionBlock(r domain.Resume, key domain.SectionKey) (PreviewBlock, bool) {
	b := PreviewBlock{Heading: key.Label()}

	switch key {
	case domain.SectionExperience:
		for _, e := range r.Experience {
			line := joinNonEmpty(", ", e.Title, e.Company)
			if dates := dateRange(e.StartDate, e.EndDate); dates != "" {
				line = joinNonEmpty(" ", line, "("+dates+")")
			}
			if line != "" {
				b.Lines = append(b.Lines, line)
			}
			if e.Description != "" {
				b.Lines = append(b.Lines, "  "+strings.ReplaceAll(e.Description, "\n", "\n  "))
			}
		}
	case domain.SectionEducation:
		for _, e := range r.Education {
			line := joinNonEmpty(", ", e.Degree, e.Institution)
			if dates := dateRange(e.StartDate, e.EndDate); dates != "" {
				line = joinNonEmpty(" ", line, "("+dates+")")
			}
			if line != "" {
				b.Lines = append(b.Lines, line)
			}
		}
	case domain.SectionCourses:
		for _, c := range r.Courses {
			line := joinNonEmpty(", ", c.Name, c.Institution)
			if c.EndDate != "" {
				line = joinNonEmpty(" ", line, "("+c.EndDate+")")
			}
			if line != "" {
				b.Lines = append(b.Lines, line)
			}
		}
	}

	return b, len(b.Lines) > 0
}
