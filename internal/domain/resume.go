package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrUnknownField      = errors.New("unknown field")
	ErrIndexOutOfRange   = errors.New("index out of range")
)

// Collection identifies a repeatable list of entries in a résumé
type Collection string

const (
	CollectionExperience Collection = "experience"
	CollectionEducation  Collection = "education"
	CollectionCourses    Collection = "courses"
	CollectionSkills     Collection = "skills"
	CollectionLanguages  Collection = "languages"
)

// Collections lists every collection in form order (reorderable ones first)
var Collections = []Collection{
	CollectionExperience,
	CollectionEducation,
	CollectionCourses,
	CollectionSkills,
	CollectionLanguages,
}

// ParseCollection converts a collection name into a Collection
func ParseCollection(s string) (Collection, error) {
	c := Collection(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Collections, c) {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCollection, s)
}

// PersonalFields are the editable personal info fields, in form order
var PersonalFields = []string{"name", "title", "photo", "email", "phone", "location", "website"}

var entryFields = map[Collection][]string{
	CollectionExperience: {"title", "company", "startDate", "endDate", "description"},
	CollectionEducation:  {"degree", "institution", "startDate", "endDate"},
	CollectionCourses:    {"name", "institution", "endDate"},
	CollectionSkills:     {"name"},
	CollectionLanguages:  {"name", "level"},
}

// Fields returns the editable field names of a collection's entries
func Fields(c Collection) []string {
	return slices.Clone(entryFields[c])
}

// NewEntryID generates an identifier for a new collection entry
func NewEntryID() string {
	return uuid.NewString()
}

// PersonalInfo holds the contact block of a résumé
type PersonalInfo struct {
	Name     string `yaml:"name" json:"name"`
	Title    string `yaml:"title" json:"title"`
	Photo    string `yaml:"photo" json:"photo"` // path or URL; never embedded
	Email    string `yaml:"email" json:"email"`
	Phone    string `yaml:"phone" json:"phone"`
	Location string `yaml:"location" json:"location"`
	Website  string `yaml:"website" json:"website"`
}

func (p *PersonalInfo) field(name string) *string {
	switch name {
	case "name":
		return &p.Name
	case "title":
		return &p.Title
	case "photo":
		return &p.Photo
	case "email":
		return &p.Email
	case "phone":
		return &p.Phone
	case "location":
		return &p.Location
	case "website":
		return &p.Website
	}
	return nil
}

// Experience is one job entry
type Experience struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Company     string `yaml:"company" json:"company"`
	StartDate   string `yaml:"startDate" json:"startDate"`
	EndDate     string `yaml:"endDate" json:"endDate"`
	Description string `yaml:"description" json:"description"`
}

func (e *Experience) field(name string) *string {
	switch name {
	case "title":
		return &e.Title
	case "company":
		return &e.Company
	case "startDate":
		return &e.StartDate
	case "endDate":
		return &e.EndDate
	case "description":
		return &e.Description
	}
	return nil
}

// Education is one degree entry
type Education struct {
	ID          string `yaml:"id" json:"id"`
	Degree      string `yaml:"degree" json:"degree"`
	Institution string `yaml:"institution" json:"institution"`
	StartDate   string `yaml:"startDate" json:"startDate"`
	EndDate     string `yaml:"endDate" json:"endDate"`
}

func (e *Education) field(name string) *string {
	switch name {
	case "degree":
		return &e.Degree
	case "institution":
		return &e.Institution
	case "startDate":
		return &e.StartDate
	case "endDate":
		return &e.EndDate
	}
	return nil
}

// Course is one course or certification entry
type Course struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Institution string `yaml:"institution" json:"institution"`
	EndDate     string `yaml:"endDate" json:"endDate"`
}

func (c *Course) field(name string) *string {
	switch name {
	case "name":
		return &c.Name
	case "institution":
		return &c.Institution
	case "endDate":
		return &c.EndDate
	}
	return nil
}

// Skill is one skill entry
type Skill struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

func (s *Skill) field(name string) *string {
	if name == "name" {
		return &s.Name
	}
	return nil
}

// Language is one spoken language entry
type Language struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Level string `yaml:"level" json:"level"`
}

func (l *Language) field(name string) *string {
	switch name {
	case "name":
		return &l.Name
	case "level":
		return &l.Level
	}
	return nil
}

// Resume is the edited document. Values are treated as immutable: every
// editing method returns a modified copy and leaves the receiver untouched.
type Resume struct {
	PersonalInfo PersonalInfo `yaml:"personalInfo" json:"personalInfo"`
	Summary      string       `yaml:"summary" json:"summary"`
	Experience   []Experience `yaml:"experience" json:"experience"`
	Education    []Education  `yaml:"education" json:"education"`
	Courses      []Course     `yaml:"courses" json:"courses"`
	Skills       []Skill      `yaml:"skills" json:"skills"`
	Languages    []Language   `yaml:"languages" json:"languages"`
	Order        SectionOrder `yaml:"sectionsOrder" json:"sectionsOrder"`
}

// NewResume returns an empty résumé with the default section order
func NewResume() Resume {
	return Resume{Order: DefaultSectionOrder()}
}

// Clone returns a deep copy of the résumé
func (r Resume) Clone() Resume {
	r.Experience = slices.Clone(r.Experience)
	r.Education = slices.Clone(r.Education)
	r.Courses = slices.Clone(r.Courses)
	r.Skills = slices.Clone(r.Skills)
	r.Languages = slices.Clone(r.Languages)
	r.Order = slices.Clone(r.Order)
	return r
}

// Equal reports structural equality. Nil and empty collections compare equal.
func (r Resume) Equal(other Resume) bool {
	return r.PersonalInfo == other.PersonalInfo &&
		r.Summary == other.Summary &&
		slices.Equal(r.Experience, other.Experience) &&
		slices.Equal(r.Education, other.Education) &&
		slices.Equal(r.Courses, other.Courses) &&
		slices.Equal(r.Skills, other.Skills) &&
		slices.Equal(r.Languages, other.Languages) &&
		slices.Equal(r.Order, other.Order)
}

// Personal returns a personal info field value
func (r Resume) Personal(field string) (string, error) {
	p := r.PersonalInfo.field(field)
	if p == nil {
		return "", fmt.Errorf("%w: personal.%s", ErrUnknownField, field)
	}
	return *p, nil
}

// SetPersonal returns a copy with one personal info field replaced
func (r Resume) SetPersonal(field, value string) (Resume, error) {
	out := r.Clone()
	p := out.PersonalInfo.field(field)
	if p == nil {
		return r, fmt.Errorf("%w: personal.%s", ErrUnknownField, field)
	}
	*p = value
	return out, nil
}

// SetSummary returns a copy with the summary replaced
func (r Resume) SetSummary(value string) Resume {
	out := r.Clone()
	out.Summary = value
	return out
}

// WithOrder returns a copy using the given section order
func (r Resume) WithOrder(order SectionOrder) Resume {
	out := r.Clone()
	out.Order = slices.Clone(order)
	return out
}

// EntryCount returns the number of entries in a collection
func (r Resume) EntryCount(c Collection) int {
	switch c {
	case CollectionExperience:
		return len(r.Experience)
	case CollectionEducation:
		return len(r.Education)
	case CollectionCourses:
		return len(r.Courses)
	case CollectionSkills:
		return len(r.Skills)
	case CollectionLanguages:
		return len(r.Languages)
	}
	return 0
}

// entryField returns a pointer to a field of the entry at index inside r.
// Callers must pass a clone when they intend to write through it.
func (r *Resume) entryField(c Collection, index int, field string) (*string, error) {
	if !slices.Contains(Collections, c) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, c)
	}
	if index < 0 || index >= r.EntryCount(c) {
		return nil, fmt.Errorf("%w: %s[%d]", ErrIndexOutOfRange, c, index)
	}

	var p *string
	switch c {
	case CollectionExperience:
		p = r.Experience[index].field(field)
	case CollectionEducation:
		p = r.Education[index].field(field)
	case CollectionCourses:
		p = r.Courses[index].field(field)
	case CollectionSkills:
		p = r.Skills[index].field(field)
	case CollectionLanguages:
		p = r.Languages[index].field(field)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, c, field)
	}
	return p, nil
}

// EntryField returns the value of a field of one collection entry
func (r Resume) EntryField(c Collection, index int, field string) (string, error) {
	p, err := r.entryField(c, index, field)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// SetEntryField returns a copy with one entry field replaced
func (r Resume) SetEntryField(c Collection, index int, field, value string) (Resume, error) {
	out := r.Clone()
	p, err := out.entryField(c, index, field)
	if err != nil {
		return r, err
	}
	*p = value
	return out, nil
}

// EntryID returns the identifier of the entry at index
func (r Resume) EntryID(c Collection, index int) (string, error) {
	if index < 0 || index >= r.EntryCount(c) {
		return "", fmt.Errorf("%w: %s[%d]", ErrIndexOutOfRange, c, index)
	}
	switch c {
	case CollectionExperience:
		return r.Experience[index].ID, nil
	case CollectionEducation:
		return r.Education[index].ID, nil
	case CollectionCourses:
		return r.Courses[index].ID, nil
	case CollectionSkills:
		return r.Skills[index].ID, nil
	default:
		return r.Languages[index].ID, nil
	}
}

// AddEntry returns a copy with a blank entry appended to the collection
func (r Resume) AddEntry(c Collection, id string) (Resume, error) {
	out := r.Clone()
	switch c {
	case CollectionExperience:
		out.Experience = append(out.Experience, Experience{ID: id})
	case CollectionEducation:
		out.Education = append(out.Education, Education{ID: id})
	case CollectionCourses:
		out.Courses = append(out.Courses, Course{ID: id})
	case CollectionSkills:
		out.Skills = append(out.Skills, Skill{ID: id})
	case CollectionLanguages:
		out.Languages = append(out.Languages, Language{ID: id})
	default:
		return r, fmt.Errorf("%w: %q", ErrUnknownCollection, c)
	}
	return out, nil
}

// RemoveEntry returns a copy without the entry at index
func (r Resume) RemoveEntry(c Collection, index int) (Resume, error) {
	if !slices.Contains(Collections, c) {
		return r, fmt.Errorf("%w: %q", ErrUnknownCollection, c)
	}
	if index < 0 || index >= r.EntryCount(c) {
		return r, fmt.Errorf("%w: %s[%d]", ErrIndexOutOfRange, c, index)
	}

	out := r.Clone()
	switch c {
	case CollectionExperience:
		out.Experience = slices.Delete(out.Experience, index, index+1)
	case CollectionEducation:
		out.Education = slices.Delete(out.Education, index, index+1)
	case CollectionCourses:
		out.Courses = slices.Delete(out.Courses, index, index+1)
	case CollectionSkills:
		out.Skills = slices.Delete(out.Skills, index, index+1)
	case CollectionLanguages:
		out.Languages = slices.Delete(out.Languages, index, index+1)
	}
	return out, nil
}

// Normalize fills in a missing section order and missing entry IDs.
// Used on documents that come from outside the editor.
func (r Resume) Normalize() Resume {
	out := r.Clone()
	if len(out.Order) == 0 {
		out.Order = DefaultSectionOrder()
	}
	for i := range out.Experience {
		if out.Experience[i].ID == "" {
			out.Experience[i].ID = NewEntryID()
		}
	}
	for i := range out.Education {
		if out.Education[i].ID == "" {
			out.Education[i].ID = NewEntryID()
		}
	}
	for i := range out.Courses {
		if out.Courses[i].ID == "" {
			out.Courses[i].ID = NewEntryID()
		}
	}
	for i := range out.Skills {
		if out.Skills[i].ID == "" {
			out.Skills[i].ID = NewEntryID()
		}
	}
	for i := range out.Languages {
		if out.Languages[i].ID == "" {
			out.Languages[i].ID = NewEntryID()
		}
	}
	return out
}

// SummaryMaterial is the filled-in content an AI summary can be written from
type SummaryMaterial struct {
	Experience []string // "title at company"
	Skills     []string
}

// Empty reports whether there is nothing to write a summary from
func (m SummaryMaterial) Empty() bool {
	return len(m.Experience) == 0 && len(m.Skills) == 0
}

// SummaryMaterial collects experience entries with both title and company
// set, and skills with a name.
func (r Resume) SummaryMaterial() SummaryMaterial {
	var m SummaryMaterial
	for _, e := range r.Experience {
		if e.Title != "" && e.Company != "" {
			m.Experience = append(m.Experience, fmt.Sprintf("%s at %s", e.Title, e.Company))
		}
	}
	for _, s := range r.Skills {
		if s.Name != "" {
			m.Skills = append(m.Skills, s.Name)
		}
	}
	return m
}
