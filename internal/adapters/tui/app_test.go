package tui

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvbuilder/internal/adapters/editor"
	"cvbuilder/internal/adapters/tui/views"
	"cvbuilder/internal/application"
	"cvbuilder/internal/domain"
	"cvbuilder/internal/ports"
)

type stubWriter struct {
	text string
	err  error
}

func (s *stubWriter) GenerateSummary(ctx context.Context, req ports.SummaryRequest) (string, error) {
	return s.text, s.err
}

func (s *stubWriter) IsAvailable() bool { return true }

type stubSource struct {
	resume domain.Resume
}

func (s *stubSource) Load(path string) (domain.Resume, error) {
	return s.resume, nil
}

func newWorkspace() *application.Workspace {
	r := domain.NewResume()
	r.Experience = []domain.Experience{{ID: "e1", Title: "Engineer", Company: "Engines"}}
	return application.NewWorkspace(r, nil)
}

func TestApp_SwitchesViews(t *testing.T) {
	app := NewApp(newWorkspace())
	assert.Equal(t, ViewForm, app.State())

	app.Update(views.SwitchToReorderMsg{})
	assert.Equal(t, ViewReorder, app.State())

	app.Update(views.SwitchToPreviewMsg{})
	assert.Equal(t, ViewPreview, app.State())

	app.Update(views.SwitchToEditMsg{Target: "experience", Index: 0})
	assert.Equal(t, ViewEdit, app.State())

	app.Update(views.SwitchToRemoveMsg{Collection: domain.CollectionExperience, Index: 0})
	assert.Equal(t, ViewRemove, app.State())

	app.Update(views.SwitchToHelpMsg{})
	assert.Equal(t, ViewHelp, app.State())

	app.Update(views.SwitchToFormMsg{})
	assert.Equal(t, ViewForm, app.State())

	// a bad edit target stays on the form
	app.Update(views.SwitchToEditMsg{Target: "education", Index: 3})
	assert.Equal(t, ViewForm, app.State())
}

func TestApp_GenerateSummary(t *testing.T) {
	ws := newWorkspace()
	app := NewApp(ws, WithSummaryWriter(&stubWriter{text: "A careful engineer."}, "en"))

	msg := app.generateSummary()()
	require.Equal(t, summaryDoneMsg{text: "A careful engineer."}, msg)
	assert.False(t, ws.CanUndo(), "the AI call never touches the workspace")

	app.Update(msg)
	assert.Equal(t, "A careful engineer.", ws.Current().Summary)
	assert.Equal(t, "Summary written (u to undo)", app.form.Message)

	// the same text again commits nothing
	app.Update(msg)
	assert.Equal(t, 2, ws.Status().Length)
	assert.Equal(t, "Summary unchanged", app.form.Message)

	require.True(t, ws.Undo())
	assert.Empty(t, ws.Current().Summary)
}

func TestApp_GenerateSummaryError(t *testing.T) {
	ws := newWorkspace()
	app := NewApp(ws, WithSummaryWriter(&stubWriter{err: errors.New("rate limited")}, "en"))

	msg := app.generateSummary()()
	errMsg, ok := msg.(summaryErrMsg)
	require.True(t, ok)
	assert.ErrorContains(t, errMsg.err, "rate limited")

	app.Update(msg)
	assert.False(t, ws.CanUndo())
	assert.Contains(t, app.View(), "rate limited")
}

func TestApp_SeedReload(t *testing.T) {
	ws := newWorkspace()
	loaded := domain.NewResume()
	loaded.PersonalInfo.Name = "Grace"

	changes := make(chan struct{}, 1)
	app := NewApp(ws, WithSeedReload(&stubSource{resume: loaded}, "cv.yaml", changes))

	changes <- struct{}{}
	msg := app.waitForSeedChange()()
	require.Equal(t, seedChangedMsg{}, msg)

	_, cmd := app.Update(msg)
	assert.NotNil(t, cmd, "keeps waiting for the next change")
	assert.Equal(t, "Grace", ws.Current().PersonalInfo.Name)
	require.True(t, ws.Undo())
	assert.Equal(t, "Engineer", ws.Current().Experience[0].Title)

	close(changes)
	assert.Nil(t, app.waitForSeedChange()())
}

func TestApp_FinishEditor(t *testing.T) {
	ws := newWorkspace()
	app := NewApp(ws)

	draft, err := editor.NewDraft("experience-description", "")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(draft.Path, []byte("Built engines.\n"), 0o600))

	app.draft = draft
	app.draftTarget = views.OpenEditorMsg{Target: "experience", Index: 0, Field: "description"}
	app.Update(editorFinishedMsg{})

	assert.Equal(t, "Built engines.", ws.Current().Experience[0].Description)
	_, err = os.Stat(draft.Path)
	assert.True(t, os.IsNotExist(err))
	assert.Nil(t, app.draft)
}

func TestApp_OpenEditorWithoutEditor(t *testing.T) {
	app := NewApp(newWorkspace())

	_, cmd := app.Update(views.OpenEditorMsg{Target: "summary"})
	assert.Nil(t, cmd)
	assert.Contains(t, app.View(), "No editor configured")
}

func TestFieldText(t *testing.T) {
	r := newWorkspace().Current().SetSummary("Hi")

	text, err := fieldText(r, views.OpenEditorMsg{Target: "summary"})
	require.NoError(t, err)
	assert.Equal(t, "Hi", text)

	text, err = fieldText(r, views.OpenEditorMsg{Target: "experience", Field: "company"})
	require.NoError(t, err)
	assert.Equal(t, "Engines", text)

	_, err = fieldText(r, views.OpenEditorMsg{Target: "hobbies"})
	assert.Error(t, err)
}
