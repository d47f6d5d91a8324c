package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cvbuilder/internal/adapters/editor"
	"cvbuilder/internal/adapters/tui/views"
	"cvbuilder/internal/application"
	"cvbuilder/internal/application/commands"
	"cvbuilder/internal/domain"
	"cvbuilder/internal/ports"
)

const summaryTimeout = 2 * time.Minute

// ViewState represents the current view
type ViewState int

const (
	ViewForm ViewState = iota
	ViewEdit
	ViewRemove
	ViewReorder
	ViewPreview
	ViewHelp
)

// Option configures the App
type Option func(*App)

// WithSummaryWriter enables AI summaries
func WithSummaryWriter(w ports.SummaryWriter, language string) Option {
	return func(a *App) {
		a.writer = w
		a.language = language
	}
}

// WithEditor enables editing long fields in $EDITOR
func WithEditor(ed ports.EditorOpener) Option {
	return func(a *App) {
		a.editor = ed
	}
}

// WithSeedReload reloads path from source whenever changes fires
func WithSeedReload(source ports.ResumeSource, path string, changes <-chan struct{}) Option {
	return func(a *App) {
		a.source = source
		a.seedPath = path
		a.changes = changes
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// App is the main TUI application model
type App struct {
	ws       *application.Workspace
	writer   ports.SummaryWriter
	language string
	editor   ports.EditorOpener
	source   ports.ResumeSource
	seedPath string
	changes  <-chan struct{}
	logger   *slog.Logger

	state   ViewState
	form    *views.FormModel
	edit    *views.EditModel
	remove  *views.RemoveModel
	reorder *views.ReorderModel
	preview *views.PreviewModel
	help    *views.HelpModel

	draft       *editor.Draft
	draftTarget views.OpenEditorMsg

	width  int
	height int
}

// NewApp creates a new TUI application over ws
func NewApp(ws *application.Workspace, opts ...Option) *App {
	a := &App{
		ws:       ws,
		language: "en",
		logger:   slog.Default(),
		state:    ViewForm,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.form = views.NewFormModel(ws, a.writer != nil)
	a.edit = views.NewEditModel(ws, a.editor != nil)
	a.remove = views.NewRemoveModel(ws)
	a.reorder = views.NewReorderModel(ws)
	a.preview = views.NewPreviewModel(ws)
	a.help = views.NewHelpModel()
	return a
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.form.Init(), a.waitForSeedChange())
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.form.SetSize(msg.Width, msg.Height)
		a.edit.SetSize(msg.Width, msg.Height)
		a.remove.SetSize(msg.Width, msg.Height)
		a.reorder.SetSize(msg.Width, msg.Height)
		a.preview.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToFormMsg:
		a.state = ViewForm
		a.form.Refresh()
		return a, nil

	case views.SwitchToEditMsg:
		if err := a.edit.SetTarget(msg.Target, msg.Index, msg.Focus); err != nil {
			a.form.SetError(err)
			return a, nil
		}
		a.state = ViewEdit
		return a, a.edit.Init()

	case views.SwitchToRemoveMsg:
		a.remove.SetTarget(msg.Collection, msg.Index)
		a.state = ViewRemove
		return a, nil

	case views.SwitchToReorderMsg:
		a.reorder.Reset()
		a.state = ViewReorder
		return a, nil

	case views.SwitchToPreviewMsg:
		a.preview.Refresh()
		a.state = ViewPreview
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.StatusMsg:
		_, cmd := a.form.Update(msg)
		return a, cmd

	// AI summary
	case views.GenerateSummaryMsg:
		a.state = ViewForm
		return a, tea.Batch(a.form.SetGenerating(true), a.generateSummary())

	case summaryDoneMsg:
		a.form.SetGenerating(false)
		changed := a.ws.Update(func(r domain.Resume) domain.Resume {
			return r.SetSummary(msg.text)
		})
		a.form.Refresh()
		if changed {
			a.form.SetMessage("Summary written (u to undo)", false)
		} else {
			a.form.SetMessage("Summary unchanged", false)
		}
		return a, nil

	case summaryErrMsg:
		a.form.SetGenerating(false)
		a.logger.Warn("summary generation failed", "error", msg.err)
		a.form.SetError(msg.err)
		return a, nil

	// External editor
	case views.OpenEditorMsg:
		a.state = ViewForm
		return a, a.openEditor(msg)

	case editorFinishedMsg:
		a.finishEditor(msg.err)
		return a, nil

	// Seed file reload
	case seedChangedMsg:
		a.reloadSeed()
		return a, a.waitForSeedChange()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewForm:
		_, cmd = a.form.Update(msg)
	case ViewEdit:
		_, cmd = a.edit.Update(msg)
	case ViewRemove:
		_, cmd = a.remove.Update(msg)
	case ViewReorder:
		_, cmd = a.reorder.Update(msg)
	case ViewPreview:
		_, cmd = a.preview.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type summaryDoneMsg struct{ text string }

type summaryErrMsg struct{ err error }

// generateSummary runs the AI call on a snapshot so the workspace is
// only ever touched from Update
func (a *App) generateSummary() tea.Cmd {
	snapshot := a.ws.Current()
	writer, language := a.writer, a.language

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), summaryTimeout)
		defer cancel()

		scratch := application.NewWorkspace(snapshot, nil)
		result, err := commands.NewGenerateSummaryCommand(scratch, writer, language, false).Execute(ctx)
		if err != nil {
			return summaryErrMsg{err: err}
		}
		return summaryDoneMsg{text: result.Summary}
	}
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(target views.OpenEditorMsg) tea.Cmd {
	if a.editor == nil {
		a.form.SetMessage("No editor configured", true)
		return nil
	}

	text, err := fieldText(a.ws.Current(), target)
	if err != nil {
		a.form.SetError(err)
		return nil
	}
	label := target.Target
	if target.Field != "" {
		label += "-" + target.Field
	}
	draft, err := editor.NewDraft(label, text)
	if err != nil {
		a.form.SetError(err)
		return nil
	}

	cmd, err := a.editor.Command(draft.Path)
	if err != nil {
		_ = draft.Remove()
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	a.draft = draft
	a.draftTarget = target
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (a *App) finishEditor(err error) {
	draft, target := a.draft, a.draftTarget
	a.draft = nil
	if err != nil {
		a.form.SetMessage(fmt.Sprintf("Editor failed: %v", err), true)
	}
	if draft == nil {
		return
	}
	defer func() {
		if err := draft.Remove(); err != nil {
			a.logger.Warn("failed to remove draft", "path", draft.Path, "error", err)
		}
	}()
	if err != nil {
		return
	}

	text, err := draft.Read()
	if err != nil {
		a.form.SetError(err)
		return
	}
	result, err := commands.NewSetFieldCommand(a.ws, target.Target, target.Index, target.Field, text).Execute(context.Background())
	if err != nil {
		a.form.SetError(err)
		return
	}
	a.form.Refresh()
	a.form.SetMessage(result.Message, false)
}

// fieldText reads the field an OpenEditorMsg points at
func fieldText(r domain.Resume, target views.OpenEditorMsg) (string, error) {
	switch target.Target {
	case commands.TargetSummary:
		return r.Summary, nil
	case commands.TargetPersonal:
		return r.Personal(target.Field)
	}
	c, err := domain.ParseCollection(target.Target)
	if err != nil {
		return "", err
	}
	return r.EntryField(c, target.Index, target.Field)
}

type seedChangedMsg struct{}

func (a *App) waitForSeedChange() tea.Cmd {
	if a.changes == nil {
		return nil
	}
	changes := a.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return seedChangedMsg{}
	}
}

func (a *App) reloadSeed() {
	if a.source == nil {
		return
	}
	if a.ws.Drag().Active() {
		a.ws.CancelDrag()
	}
	result, err := commands.NewLoadResumeCommand(a.ws, a.source, a.seedPath).Execute(context.Background())
	if err != nil {
		a.logger.Warn("seed reload failed", "path", a.seedPath, "error", err)
		a.form.SetError(err)
		return
	}
	a.logger.Info("seed reloaded", "path", a.seedPath, "changed", result.Changed)
	a.form.Refresh()
	if result.Changed {
		a.form.SetMessage(result.Message+" (u to undo)", false)
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewEdit:
		return a.edit.View()
	case ViewRemove:
		return a.remove.View()
	case ViewReorder:
		return a.reorder.View()
	case ViewPreview:
		return a.preview.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.form.View()
	}
}
