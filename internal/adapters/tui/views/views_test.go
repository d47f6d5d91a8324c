package views

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvbuilder/internal/application"
	"cvbuilder/internal/domain"
)

func press(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newWorkspace(t *testing.T) *application.Workspace {
	t.Helper()

	r := domain.NewResume()
	r.PersonalInfo.Name = "Ada Lovelace"
	r.Summary = "Analyst.\nSecond line."
	r.Experience = []domain.Experience{{ID: "e1", Title: "Engineer", Company: "Engines", StartDate: "1842"}}
	r.Skills = []domain.Skill{{ID: "s1", Name: "Math"}}
	r.Languages = []domain.Language{{ID: "l1", Name: "English", Level: "Native"}}
	return application.NewWorkspace(r, nil)
}

// exec runs cmd and returns its message, unwrapping one level of batch
func exec(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			if c != nil {
				msgs = append(msgs, c())
			}
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestBuildRows(t *testing.T) {
	ws := newWorkspace(t)
	rows := buildRows(ws.Current())

	require.Len(t, rows, 1+7+2+(1+1)+1+1+(1+1)+(1+1))
	assert.Equal(t, "Personal", rows[0].heading)
	assert.Equal(t, rowPersonal, rows[1].kind)
	assert.Equal(t, "name", rows[1].field)
	assert.Equal(t, "Ada Lovelace", rows[1].value)
	assert.Equal(t, rowSummary, rows[9].kind)

	assert.Equal(t, "Experience (1)", rows[10].heading)
	assert.Equal(t, "Engineer · Engines", rows[11].value)
	assert.Equal(t, "Education (0)", rows[12].heading)
	assert.Equal(t, "Courses (0)", rows[13].heading)
	assert.Equal(t, "Skills (1)", rows[14].heading)
	assert.Equal(t, "English (Native)", rows[rowIndex(rows, domain.CollectionLanguages, 0)].value)
}

func TestBuildRows_FollowsSectionOrder(t *testing.T) {
	ws := newWorkspace(t)
	ws.Update(func(r domain.Resume) domain.Resume {
		return r.WithOrder(domain.SectionOrder{domain.SectionCourses, domain.SectionExperience, domain.SectionEducation})
	})

	rows := buildRows(ws.Current())
	assert.Equal(t, domain.CollectionCourses, rows[10].collection)
	assert.Equal(t, domain.CollectionExperience, rows[11].collection)
	assert.Equal(t, domain.CollectionEducation, rows[13].collection)
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Start date", fieldLabel("startDate"))
	assert.Equal(t, "Name", fieldLabel("name"))
	assert.Equal(t, "", fieldLabel(""))
}

func TestScroller(t *testing.T) {
	s := NewScroller(3)
	s.SetTotal(10)

	for range 4 {
		s.Down()
	}
	assert.Equal(t, 4, s.Cursor())
	start, end := s.VisibleRange()
	assert.Equal(t, 2, start)
	assert.Equal(t, 5, end)

	s.SetCursor(100)
	assert.Equal(t, 9, s.Cursor())
	assert.False(t, s.Down())

	s.SetTotal(2)
	assert.Equal(t, 1, s.Cursor())
	start, end = s.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)

	s.SetTotal(0)
	assert.Equal(t, 0, s.Cursor())
	assert.False(t, s.Up())
}

func TestFormModel_AddEntryOpensEditor(t *testing.T) {
	ws := newWorkspace(t)
	m := NewFormModel(ws, false)

	m.scroller.SetCursor(13) // Courses heading
	_, cmd := m.Update(press("a"))

	assert.Equal(t, 1, ws.Current().EntryCount(domain.CollectionCourses))
	row, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, rowEntry, row.kind)
	assert.Equal(t, domain.CollectionCourses, row.collection)
	assert.Equal(t, []tea.Msg{SwitchToEditMsg{Target: "courses", Index: 0}}, exec(cmd))

	_, _ = m.Update(press("u"))
	assert.Equal(t, 0, ws.Current().EntryCount(domain.CollectionCourses))
	assert.Equal(t, "Undone", m.Message)

	_, _ = m.Update(press("ctrl+r"))
	assert.Equal(t, 1, ws.Current().EntryCount(domain.CollectionCourses))
}

func TestFormModel_Keys(t *testing.T) {
	ws := newWorkspace(t)
	m := NewFormModel(ws, false)

	_, cmd := m.Update(press("u"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Nothing to undo", m.Message)
	assert.True(t, m.MessageErr)

	_, cmd = m.Update(press("d"))
	assert.Nil(t, cmd)
	assert.True(t, m.MessageErr, "heading rows cannot be removed")

	m.scroller.SetCursor(11) // first experience entry
	_, cmd = m.Update(press("d"))
	assert.Equal(t, []tea.Msg{SwitchToRemoveMsg{Collection: domain.CollectionExperience, Index: 0}}, exec(cmd))

	_, cmd = m.Update(press("e"))
	assert.Equal(t, []tea.Msg{OpenEditorMsg{Target: "experience", Index: 0, Field: "description"}}, exec(cmd))

	_, cmd = m.Update(press("g"))
	assert.Nil(t, cmd, "summary key is disabled without a writer")

	_, cmd = m.Update(press("o"))
	assert.Equal(t, []tea.Msg{SwitchToReorderMsg{}}, exec(cmd))

	_, _ = m.Update(press("t"))
	assert.Equal(t, domain.TemplateProfessional.Next(), ws.Layout().Template)
	_, _ = m.Update(press("s"))
	assert.Equal(t, domain.FontLG, ws.Layout().FontSize)
	assert.Equal(t, "Font size: lg", m.Message)
	_, _ = m.Update(press("A"))
	assert.Equal(t, domain.AlignCenter, ws.Layout().Align)
	assert.False(t, ws.CanUndo(), "layout is not versioned")

	m.scroller.SetCursor(2) // personal title
	_, cmd = m.Update(press("enter"))
	assert.Equal(t, []tea.Msg{SwitchToEditMsg{Target: "personal", Focus: "title"}}, exec(cmd))
}

func TestFormModel_View(t *testing.T) {
	ws := newWorkspace(t)
	m := NewFormModel(ws, true)
	m.SetSize(100, 60)

	out := m.View()
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "Analyst. …")
	assert.Contains(t, out, "EXPERIENCE (1)")
	assert.Contains(t, out, "(empty)")
}

func TestEditModel_SubmitCommitsOnce(t *testing.T) {
	ws := newWorkspace(t)
	m := NewEditModel(ws, true)

	require.NoError(t, m.SetTarget("experience", 0, "company"))
	field, ok := m.form.Focused()
	require.True(t, ok)
	assert.Equal(t, "company", field.Name)

	m.form.Fields[0].Input.SetValue("Lead")
	m.form.Fields[1].Input.SetValue("Looms")
	_, cmd := m.Update(press("enter"))

	assert.Equal(t, "Lead", ws.Current().Experience[0].Title)
	assert.Equal(t, "Looms", ws.Current().Experience[0].Company)
	assert.Equal(t, 2, ws.Status().Length)
	assert.Contains(t, exec(cmd), SwitchToFormMsg{})

	require.True(t, ws.Undo())
	assert.Equal(t, "Engineer", ws.Current().Experience[0].Title)
}

func TestEditModel_SetTarget(t *testing.T) {
	ws := newWorkspace(t)
	m := NewEditModel(ws, false)

	require.NoError(t, m.SetTarget("personal", 0, ""))
	assert.Len(t, m.form.Fields, len(domain.PersonalFields))
	assert.Equal(t, "Ada Lovelace", m.form.Fields[0].Input.Value())

	require.NoError(t, m.SetTarget("summary", 0, ""))
	assert.Len(t, m.form.Fields, 1)

	assert.ErrorIs(t, m.SetTarget("education", 0, ""), application.ErrNotFound)
	assert.Error(t, m.SetTarget("hobbies", 0, ""))

	_, cmd := m.Update(press("esc"))
	assert.Equal(t, []tea.Msg{SwitchToFormMsg{}}, exec(cmd))
}

func TestRemoveModel(t *testing.T) {
	ws := newWorkspace(t)
	m := NewRemoveModel(ws)
	m.SetTarget(domain.CollectionSkills, 0)
	assert.Contains(t, m.View(), "Math")

	_, cmd := m.Update(press("n"))
	assert.Equal(t, []tea.Msg{SwitchToFormMsg{}}, exec(cmd))
	assert.Equal(t, 1, ws.Current().EntryCount(domain.CollectionSkills))

	_, cmd = m.Update(press("y"))
	assert.Equal(t, 0, ws.Current().EntryCount(domain.CollectionSkills))
	assert.Contains(t, exec(cmd), StatusMsg{Text: "Removed skills[0] (u to undo)"})
}

func TestReorderModel_DragAndDrop(t *testing.T) {
	ws := newWorkspace(t)
	m := NewReorderModel(ws)

	m.Update(press(" "))
	require.True(t, ws.Drag().Active())
	assert.Equal(t, 0, ws.Drag().Source())

	m.Update(press("j"))
	m.Update(press("j"))
	target, ok := ws.Drag().Target()
	require.True(t, ok)
	assert.Equal(t, 2, target)
	assert.Contains(t, m.View(), "drop here")

	m.Update(press(" "))
	assert.Nil(t, ws.Drag())
	assert.Equal(t, domain.SectionOrder{domain.SectionEducation, domain.SectionCourses, domain.SectionExperience}, ws.Current().Order)
	assert.Equal(t, 2, m.Cursor())

	m.Update(press("u"))
	assert.Equal(t, domain.DefaultSectionOrder(), ws.Current().Order)
}

func TestReorderModel_CancelAndNoOp(t *testing.T) {
	ws := newWorkspace(t)
	m := NewReorderModel(ws)

	m.Update(press(" "))
	m.Update(press("j"))
	_, cmd := m.Update(press("esc"))
	assert.Nil(t, cmd)
	assert.Nil(t, ws.Drag())
	assert.Equal(t, "Move cancelled", m.Message)
	assert.Equal(t, 0, m.Cursor())
	assert.False(t, ws.CanUndo())

	m.Update(press(" "))
	m.Update(press(" "))
	assert.Equal(t, "Order unchanged", m.Message)
	assert.False(t, ws.CanUndo())

	_, cmd = m.Update(press("esc"))
	assert.Equal(t, []tea.Msg{SwitchToFormMsg{}}, exec(cmd))
}

func TestReorderModel_HoverOnSourceKeepsTarget(t *testing.T) {
	ws := newWorkspace(t)
	m := NewReorderModel(ws)

	m.Update(press("j"))
	m.Update(press(" ")) // pick up education
	m.Update(press("j")) // over courses
	m.Update(press("k")) // back over the source
	target, ok := ws.Drag().Target()
	require.True(t, ok)
	assert.Equal(t, 2, target)

	m.Update(press(" "))
	assert.Equal(t, domain.SectionOrder{domain.SectionExperience, domain.SectionCourses, domain.SectionEducation}, ws.Current().Order)
}

func TestRenderPreview(t *testing.T) {
	ws := newWorkspace(t)
	out := RenderPreview(ws.Current(), domain.DefaultLayout(), 80)

	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "EXPERIENCE")
	assert.Contains(t, out, "Math")
	assert.NotContains(t, out, "COURSES")

	assert.Contains(t, RenderPreview(domain.Resume{}, domain.DefaultLayout(), 80), "Nothing to preview yet.")
}

func TestPreviewModel_Copy(t *testing.T) {
	ws := newWorkspace(t)
	m := NewPreviewModel(ws)

	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}
	m.Update(press("y"))
	assert.Equal(t, application.PlainText(ws.Current()), copied)
	assert.Equal(t, "Copied to clipboard", m.Message)

	m.copy = func(string) error { return errors.New("no clipboard") }
	m.Update(press("y"))
	assert.True(t, m.MessageErr)

	m.Update(press("t"))
	assert.Equal(t, domain.TemplateProfessional.Next(), ws.Layout().Template)

	m.Update(press("A"))
	assert.Equal(t, domain.AlignCenter, ws.Layout().Align)
	assert.Equal(t, "Alignment: center", m.Message)
	assert.Contains(t, m.View(), "center")
}

func TestRenderPreview_FontSize(t *testing.T) {
	r := newWorkspace(t).Current()
	l := domain.DefaultLayout()

	l.FontSize = domain.FontXS
	small := RenderPreview(r, l, 60)
	l.FontSize = domain.FontXL
	large := RenderPreview(r, l, 60)

	assert.Contains(t, small, "Experience")
	assert.NotContains(t, small, "EXPERIENCE")
	assert.Contains(t, large, "E X P E R I E N C E")
	assert.Greater(t, strings.Count(large, "\n"), strings.Count(small, "\n"))
}

func TestRenderPreview_Align(t *testing.T) {
	r := newWorkspace(t).Current()
	r.Summary = "alpha beta gamma delta epsilon zeta eta theta"
	l := domain.DefaultLayout()

	findLine := func(out, text string) string {
		for _, line := range strings.Split(out, "\n") {
			if strings.TrimSpace(line) == text {
				return line
			}
		}
		t.Fatalf("no line %q in:\n%s", text, out)
		return ""
	}

	assert.True(t, strings.HasPrefix(findLine(RenderPreview(r, l, 40), "Math"), "Math"))

	l.Align = domain.AlignCenter
	assert.True(t, strings.HasPrefix(findLine(RenderPreview(r, l, 40), "Math"), "  "))

	l.Align = domain.AlignJustify
	out := RenderPreview(r, l, 20)
	assert.Contains(t, out, "alpha   beta   gamma\n")
	assert.Contains(t, out, "delta  epsilon  zeta\n")
	assert.Contains(t, out, "eta theta\n")
}

func TestJustify(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"short line untouched", "one two", 20, "one two"},
		{"extra spaces go to the left gaps", "aa bb cc dd ee", 9, "aa  bb cc\ndd ee"},
		{"paragraphs justified separately", "aaa bbb ccc\nddd", 8, "aaa  bbb\nccc\nddd"},
		{"long word kept", "abcdefghij k", 5, "abcdefghij\nk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, justify(tt.text, tt.width))
		})
	}
}
