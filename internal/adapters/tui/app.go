package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"enrichio/internal/adapters/editor"
	"enrichio/internal/adapters/tui/views"
	"enrichio/internal/application"
	"enrichio/internal/application/commands"
	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewTable ViewState = iota
	ViewLookup
	ViewBatch
	ViewUpload
	ViewPicker
	ViewSectors
	ViewConfirmDelete
	ViewHelp
)

// Services are the adapters the App drives
type Services struct {
	Classifier ports.Classifier
	Sectors    ports.SectorRepository
	Reader     ports.NameReader
	Exporter   ports.Exporter
	Links      ports.LinkOpener
	Editor     ports.EditorOpener

	// ExportDir receives exported spreadsheets (working directory when empty)
	ExportDir string
}

// App is the main TUI application model
type App struct {
	ws  *application.Workspace
	svc Services
	log *zap.Logger

	copyText func(string) error
	readFile func(string) ([]byte, error)
	now      func() time.Time

	state   ViewState
	table   *views.TableModel
	lookup  *views.PromptModel
	upload  *views.PromptModel
	batch   *views.BatchModel
	picker  *views.PickerModel
	sectors *views.SectorsModel
	confirm *views.ConfirmDeleteModel
	help    *views.HelpModel

	cancel      context.CancelFunc
	batchEvents chan tea.Msg

	// set by the store hook, cleared when the table is redrawn
	stale atomic.Bool

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(ws *application.Workspace, svc Services) *App {
	a := &App{
		ws:       ws,
		svc:      svc,
		log:      ws.Logger,
		copyText: clipboard.WriteAll,
		readFile: os.ReadFile,
		now:      time.Now,
		state:    ViewTable,
		table:    views.NewTableModel(),
		lookup:   views.NewLookupModel(),
		upload:   views.NewUploadModel(),
		batch:    views.NewBatchModel(ws.Denylist),
		picker:   views.NewPickerModel(),
		sectors:  views.NewSectorsModel(),
		confirm:  views.NewConfirmDeleteModel(),
		help:     views.NewHelpModel(),
	}
	ws.Store.OnChange(func() { a.stale.Store(true) })
	return a
}

// Internal result messages
type (
	sectorsLoadedMsg struct {
		count int
		err   error
	}
	lookupDoneMsg struct {
		result *commands.LookupResult
		err    error
	}
	batchProgressMsg struct{ progress domain.Progress }
	batchDoneMsg     struct {
		result *commands.ProcessBatchResult
		err    error
	}
	uploadDoneMsg struct {
		result *commands.UploadResult
		err    error
	}
	overrideSavedMsg struct {
		result *commands.ApplyOverrideResult
		err    error
	}
	sectorDeletedMsg struct {
		result *commands.DeleteSectorResult
		err    error
	}
	exportDoneMsg struct {
		path   string
		result *commands.ExportResult
		err    error
	}
	editorFinishedMsg struct {
		draft *editor.Draft
		err   error
	}
	statusMsg struct {
		text  string
		isErr bool
	}
)

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.loadSectors
}

func (a *App) loadSectors() tea.Msg {
	if a.svc.Sectors == nil {
		return sectorsLoadedMsg{count: a.ws.Vocabulary.Len()}
	}
	n, err := commands.NewLoadSectorsCommand(a.ws, a.svc.Sectors).Execute(context.Background())
	return sectorsLoadedMsg{count: n, err: err}
}

// Close cancels any running batch
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
	}
}

// State returns the current view
func (a *App) State() ViewState {
	return a.state
}

func (a *App) refresh() {
	a.stale.Store(false)
	a.table.SetProjection(a.ws.Projection())
}

func (a *App) status(text string, isErr bool) {
	a.table.SetMessage(text, isErr)
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.stale.Load() {
		a.refresh()
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.table.SetSize(msg.Width, msg.Height)
		a.lookup.SetSize(msg.Width, msg.Height)
		a.upload.SetSize(msg.Width, msg.Height)
		a.batch.SetSize(msg.Width, msg.Height)
		a.picker.SetSize(msg.Width, msg.Height)
		a.sectors.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToTableMsg:
		a.state = ViewTable
		a.refresh()
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToLookupMsg:
		a.state = ViewLookup
		return a, a.lookup.Reset()

	case views.SwitchToUploadMsg:
		a.state = ViewUpload
		return a, a.upload.Reset()

	case views.SwitchToBatchMsg:
		a.state = ViewBatch
		return a, a.batch.Init()

	case views.SwitchToSectorsMsg:
		a.state = ViewSectors
		a.sectors.SetSectors(a.ws.Vocabulary.Custom(), a.ws.Vocabulary.Len())
		return a, nil

	case views.SwitchToConfirmDeleteMsg:
		a.state = ViewConfirmDelete
		a.confirm.SetTarget(msg.Label)
		a.confirm.ClearMessage()
		return a, nil

	case views.SwitchToPickerMsg:
		record, err := a.ws.Store.At(msg.Index)
		if err != nil {
			a.status(err.Error(), true)
			return a, nil
		}
		options, err := a.ws.SectorOptions(msg.Index)
		if err != nil {
			a.status(err.Error(), true)
			return a, nil
		}
		_ = a.ws.Store.UpdateAt(msg.Index, func(r *domain.Record) { r.Editing = true })
		a.state = ViewPicker
		return a, a.picker.SetRecord(msg.Index, record, options)

	// Requests
	case views.LookupRequestMsg:
		a.state = ViewTable
		return a, a.startLookup(msg.Name)

	case views.BatchRequestMsg:
		a.state = ViewTable
		return a, a.startBatch(msg.Text)

	case views.UploadRequestMsg:
		a.state = ViewTable
		return a, a.startUpload(msg.Path)

	case views.CancelRequestMsg:
		if a.cancel != nil {
			a.cancel()
			a.status("Cancelling…", false)
		}
		return a, nil

	case views.ClearRequestMsg:
		if err := commands.NewClearCommand(a.ws).Execute(context.Background()); err != nil {
			a.status(err.Error(), true)
			return a, nil
		}
		a.refresh()
		a.status("Table cleared", false)
		return a, nil

	case views.ToggleCompetitorMsg:
		flagged, err := commands.NewToggleCompetitorCommand(a.ws, msg.Index).Execute(context.Background())
		if err != nil {
			a.status(err.Error(), true)
		} else if flagged {
			a.status("Marked as competitor", false)
		}
		a.refresh()
		return a, nil

	case views.OverrideRequestMsg:
		a.state = ViewTable
		return a, a.applyOverride(msg.Index, msg.Sector)

	case views.DeleteSectorRequestMsg:
		return a, a.deleteSector(msg.Label)

	case views.OpenLinkMsg:
		return a, a.openLink(msg.Link)

	case views.CopyLinkMsg:
		if err := a.copyText(msg.Link); err != nil {
			a.status(fmt.Sprintf("Copy failed: %v", err), true)
		} else {
			a.status("Link copied", false)
		}
		return a, nil

	case views.ExportRequestMsg:
		return a, a.export(msg.Format)

	case views.EditBatchMsg:
		return a, a.editBatch(msg.Text)

	// Results
	case sectorsLoadedMsg:
		if msg.err != nil {
			a.log.Error("sectors not loaded", zap.Error(msg.err))
			a.status(msg.err.Error(), true)
		}
		a.refresh()
		return a, nil

	case lookupDoneMsg:
		a.finish()
		if msg.err != nil {
			if !commands.IsValidationError(msg.err) {
				a.status(msg.err.Error(), true)
			}
			return a, nil
		}
		a.table.SetCursor(0)
		a.status(msg.result.Message, msg.result.Failed)
		return a, nil

	case batchProgressMsg:
		a.table.SetProgress(msg.progress)
		a.refresh()
		return a, a.waitForBatch()

	case batchDoneMsg:
		a.finish()
		a.table.StopBatch()
		a.batchEvents = nil
		switch {
		case errors.Is(msg.err, context.Canceled):
			a.status(msg.result.Message, false)
		case msg.err != nil:
			a.status(msg.err.Error(), true)
		default:
			a.status(msg.result.Message, false)
		}
		return a, nil

	case uploadDoneMsg:
		a.finish()
		if msg.err != nil {
			a.status(msg.err.Error(), true)
			return a, nil
		}
		a.table.SetCursor(0)
		a.status(msg.result.Message, false)
		return a, nil

	case overrideSavedMsg:
		a.refresh()
		if msg.err != nil {
			a.status(msg.result.Message, true)
			return a, nil
		}
		text := msg.result.Message
		if msg.result.IsNew {
			text += " (new sector)"
		}
		a.status(text, false)
		return a, nil

	case sectorDeletedMsg:
		if msg.err != nil {
			a.confirm.SetMessage(msg.err.Error(), true)
			return a, nil
		}
		a.state = ViewSectors
		a.sectors.Removed(msg.result.Label)
		a.sectors.SetSectors(a.ws.Vocabulary.Custom(), a.ws.Vocabulary.Len())
		a.sectors.SetMessage(msg.result.Message, false)
		a.refresh()
		return a, nil

	case exportDoneMsg:
		if msg.err != nil {
			a.status(msg.err.Error(), true)
			return a, nil
		}
		a.status(fmt.Sprintf("%s to %s", msg.result.Message, msg.path), false)
		return a, nil

	case editorFinishedMsg:
		defer msg.draft.Remove()
		if msg.err != nil {
			a.batch.SetMessage(fmt.Sprintf("Editor failed: %v", msg.err), true)
			return a, nil
		}
		text, err := msg.draft.Read()
		if err != nil {
			a.batch.SetMessage(err.Error(), true)
			return a, nil
		}
		a.batch.SetValue(text)
		return a, nil

	case statusMsg:
		a.status(msg.text, msg.isErr)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewTable:
		_, cmd = a.table.Update(msg)
	case ViewLookup:
		_, cmd = a.lookup.Update(msg)
	case ViewUpload:
		_, cmd = a.upload.Update(msg)
	case ViewBatch:
		_, cmd = a.batch.Update(msg)
	case ViewPicker:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			a.clearEditing()
		}
		_, cmd = a.picker.Update(msg)
	case ViewSectors:
		_, cmd = a.sectors.Update(msg)
	case ViewConfirmDelete:
		_, cmd = a.confirm.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// begin prepares a cancellable context for a long-running command
func (a *App) begin(label string) (context.Context, tea.Cmd) {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	return ctx, a.table.SetBusy(label)
}

// finish releases the context of the last long-running command
func (a *App) finish() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.table.SetBusy("")
	a.refresh()
}

func (a *App) busy() bool {
	return a.cancel != nil || a.ws.Busy()
}

func (a *App) startLookup(name string) tea.Cmd {
	if a.busy() {
		a.status(application.ErrBatchInProgress.Error(), true)
		return nil
	}
	ctx, spin := a.begin("Looking up " + name)
	lookup := func() tea.Msg {
		result, err := commands.NewLookupCommand(a.ws, a.svc.Classifier, name).Execute(ctx)
		return lookupDoneMsg{result: result, err: err}
	}
	return tea.Batch(spin, lookup)
}

func (a *App) startBatch(text string) tea.Cmd {
	if a.busy() {
		a.status(application.ErrBatchInProgress.Error(), true)
		return nil
	}

	events := make(chan tea.Msg, 16)
	cmd := commands.NewProcessBatchCommand(a.ws, a.svc.Classifier, application.SplitLines(text), func(p domain.Progress) {
		events <- batchProgressMsg{progress: p}
	})
	total := len(cmd.Names())
	if total == 0 {
		return nil
	}

	ctx, spin := a.begin("")
	a.batchEvents = events
	a.table.StartBatch(total)
	a.table.SetCursor(0)

	go func() {
		result, err := cmd.Execute(ctx)
		events <- batchDoneMsg{result: result, err: err}
		close(events)
	}()
	return tea.Batch(spin, a.waitForBatch())
}

// waitForBatch delivers the next batch event to Update
func (a *App) waitForBatch() tea.Cmd {
	events := a.batchEvents
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

func (a *App) startUpload(path string) tea.Cmd {
	if a.busy() {
		a.status(application.ErrBatchInProgress.Error(), true)
		return nil
	}
	path = expandHome(path)
	ctx, spin := a.begin("Classifying " + filepath.Base(path))
	upload := func() tea.Msg {
		data, err := a.readFile(path)
		if err != nil {
			return uploadDoneMsg{err: fmt.Errorf("failed to read %s: %w", path, err)}
		}
		result, err := commands.NewUploadCommand(a.ws, a.svc.Classifier, a.svc.Reader, filepath.Base(path), data).Execute(ctx)
		return uploadDoneMsg{result: result, err: err}
	}
	return tea.Batch(spin, upload)
}

func (a *App) applyOverride(index int, sector string) tea.Cmd {
	cmd := commands.NewApplyOverrideCommand(a.ws, a.svc.Sectors, index, sector)
	if err := cmd.Stage(); err != nil {
		a.clearEditing()
		if !commands.IsValidationError(err) {
			a.status(err.Error(), true)
		}
		a.refresh()
		return nil
	}
	a.refresh()
	return func() tea.Msg {
		result, err := cmd.Persist(context.Background())
		return overrideSavedMsg{result: result, err: err}
	}
}

func (a *App) clearEditing() {
	for i := range a.ws.Store.Len() {
		_ = a.ws.Store.UpdateAt(i, func(r *domain.Record) { r.Editing = false })
	}
}

func (a *App) deleteSector(label string) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewDeleteSectorCommand(a.ws, a.svc.Sectors, label, true).Execute(context.Background())
		return sectorDeletedMsg{result: result, err: err}
	}
}

func (a *App) openLink(link string) tea.Cmd {
	if a.svc.Links == nil {
		return nil
	}
	return func() tea.Msg {
		if err := a.svc.Links.Open(link); err != nil {
			return statusMsg{text: fmt.Sprintf("Cannot open link: %v", err), isErr: true}
		}
		return statusMsg{text: "Opened " + link}
	}
}

func (a *App) export(format ports.ExportFormat) tea.Cmd {
	if a.ws.Store.Len() == 0 {
		a.status(application.ErrNothingToExport.Error(), true)
		return nil
	}
	path := filepath.Join(a.svc.ExportDir, commands.ExportFilename(format, a.now()))
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: fmt.Errorf("failed to create %s: %w", path, err)}
		}
		result, err := commands.NewExportCommand(a.ws, a.svc.Exporter, format, f).Execute(context.Background())
		closeErr := f.Close()
		if err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(path)
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path, result: result}
	}
}

func (a *App) editBatch(text string) tea.Cmd {
	if a.svc.Editor == nil {
		return nil
	}
	draft, err := editor.NewDraft(text)
	if err != nil {
		a.batch.SetMessage(err.Error(), true)
		return nil
	}
	cmd, err := a.svc.Editor.Command(draft.Path)
	if err != nil {
		_ = draft.Remove()
		a.batch.SetMessage(err.Error(), true)
		return nil
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{draft: draft, err: err}
	})
}

func expandHome(path string) string {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewLookup:
		return a.lookup.View()
	case ViewUpload:
		return a.upload.View()
	case ViewBatch:
		return a.batch.View()
	case ViewPicker:
		return a.picker.View()
	case ViewSectors:
		return a.sectors.View()
	case ViewConfirmDelete:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.table.View()
	}
}
