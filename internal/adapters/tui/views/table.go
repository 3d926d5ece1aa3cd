package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"enrichio/internal/adapters/tui/styles"
	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

// TableKeyMap defines key bindings for the record table
type TableKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	Lookup     key.Binding
	Batch      key.Binding
	Upload     key.Binding
	Edit       key.Binding
	Competitor key.Binding
	Open       key.Binding
	Copy       key.Binding
	Sectors    key.Binding
	Export     key.Binding
	ExportCSV  key.Binding
	Clear      key.Binding
	Cancel     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var TableKeys = TableKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	Lookup: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "lookup"),
	),
	Batch: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "batch"),
	),
	Upload: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "upload"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit sector"),
	),
	Competitor: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "competitor"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open link"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy link"),
	),
	Sectors: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sectors"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export xlsx"),
	),
	ExportCSV: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "export csv"),
	),
	Clear: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "clear"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel batch"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// column widths in display cells
const (
	colInput     = 20
	colName      = 26
	colSector    = 30
	colRegion    = 18
	colHeadcount = 18
	minLink      = 12
)

// TableModel is the model for the record table view
type TableModel struct {
	ViewState

	projection domain.Projection
	pager      *Paginator

	running  bool
	busy     string
	progress domain.Progress
	bar      progress.Model
	spinner  spinner.Model
}

// NewTableModel creates a new table model
func NewTableModel() *TableModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.OverridePending

	return &TableModel{
		projection: domain.Project(nil),
		pager:      NewPaginator(15),
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		spinner:    s,
	}
}

// Init initializes the table
func (m *TableModel) Init() tea.Cmd {
	return nil
}

// SetProjection installs a fresh display model
func (m *TableModel) SetProjection(p domain.Projection) {
	m.projection = p
	m.pager.SetTotal(len(p.Rows))
}

// Cursor returns the selected row index
func (m *TableModel) Cursor() int {
	return m.pager.Cursor()
}

// SetCursor moves the selection
func (m *TableModel) SetCursor(index int) {
	m.pager.SetCursor(index)
}

// StartBatch shows the progress bar
func (m *TableModel) StartBatch(total int) {
	m.running = true
	m.progress = domain.Progress{Total: total}
}

// SetProgress updates the progress bar
func (m *TableModel) SetProgress(p domain.Progress) {
	m.progress = p
}

// StopBatch hides the progress bar
func (m *TableModel) StopBatch() {
	m.running = false
}

// Running reports whether a batch is in flight
func (m *TableModel) Running() bool {
	return m.running
}

// SetBusy shows a spinner with label; an empty label hides it
func (m *TableModel) SetBusy(label string) tea.Cmd {
	m.busy = label
	if label == "" {
		return nil
	}
	return m.spinner.Tick
}

// SetSize updates the view dimensions and the page size
func (m *TableModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(max(5, height-12))
	m.bar.Width = max(20, min(60, width-30))
}

func (m *TableModel) selected() (domain.Record, bool) {
	if m.projection.Empty {
		return domain.Record{}, false
	}
	i := m.pager.Cursor()
	if i < 0 || i >= len(m.projection.Rows) {
		return domain.Record{}, false
	}
	return m.projection.Rows[i].Record, true
}

// Update handles messages for the table
func (m *TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.busy == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *TableModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, TableKeys.Cancel) {
		m.ClearMessage()
	}

	switch {
	case key.Matches(msg, TableKeys.Quit):
		return tea.Quit

	case key.Matches(msg, TableKeys.Up):
		m.pager.CursorUp()
	case key.Matches(msg, TableKeys.Down):
		m.pager.CursorDown()
	case key.Matches(msg, TableKeys.PrevPage):
		m.pager.PrevPage()
	case key.Matches(msg, TableKeys.NextPage):
		m.pager.NextPage()

	case key.Matches(msg, TableKeys.Cancel):
		if m.running || m.busy != "" {
			return send(CancelRequestMsg{})
		}

	case key.Matches(msg, TableKeys.Lookup):
		return send(SwitchToLookupMsg{})
	case key.Matches(msg, TableKeys.Batch):
		return send(SwitchToBatchMsg{})
	case key.Matches(msg, TableKeys.Upload):
		return send(SwitchToUploadMsg{})
	case key.Matches(msg, TableKeys.Sectors):
		return send(SwitchToSectorsMsg{})
	case key.Matches(msg, TableKeys.Help):
		return send(SwitchToHelpMsg{})
	case key.Matches(msg, TableKeys.Clear):
		return send(ClearRequestMsg{})
	case key.Matches(msg, TableKeys.Export):
		return send(ExportRequestMsg{Format: ports.ExportXLSX})
	case key.Matches(msg, TableKeys.ExportCSV):
		return send(ExportRequestMsg{Format: ports.ExportCSV})

	case key.Matches(msg, TableKeys.Edit):
		if _, ok := m.selected(); ok {
			return send(SwitchToPickerMsg{Index: m.pager.Cursor()})
		}
	case key.Matches(msg, TableKeys.Competitor):
		if _, ok := m.selected(); ok {
			return send(ToggleCompetitorMsg{Index: m.pager.Cursor()})
		}
	case key.Matches(msg, TableKeys.Open):
		if r, ok := m.selected(); ok {
			if !r.HasLink() {
				m.SetMessage("No link for "+r.Input, true)
				return nil
			}
			return send(OpenLinkMsg{Link: r.Link})
		}
	case key.Matches(msg, TableKeys.Copy):
		if r, ok := m.selected(); ok {
			if !r.HasLink() {
				m.SetMessage("No link for "+r.Input, true)
				return nil
			}
			return send(CopyLinkMsg{Link: r.Link})
		}
	}
	return nil
}

// View renders the table
func (m *TableModel) View() string {
	v := NewViewBuilder()
	v.Title("Enrichio")

	if m.projection.Empty {
		v.Muted("No companies yet.")
		v.Muted("Press / to look up a name, b to paste a list or u to upload a spreadsheet.")
		v.BlankLine()
	} else {
		v.Line(m.renderHeader())
		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			v.Line(m.renderRow(m.projection.Rows[i], i == m.pager.Cursor()))
		}
		if m.pager.TotalPages() > 1 {
			v.Muted(fmt.Sprintf("page %d/%d", m.pager.CurrentPage(), m.pager.TotalPages()))
		}
		v.BlankLine()
	}

	v.Line(RenderStats(m.projection.Stats))
	if m.running {
		v.Line(fmt.Sprintf("%s %d/%d", m.bar.ViewAs(m.progress.Fraction()), m.progress.Processed, m.progress.Total))
	}
	if m.busy != "" {
		v.Line(m.spinner.View() + " " + m.busy)
	}
	v.BlankLine()
	v.Message(m.Message, m.MessageErr)

	v.Help(TableKeys.Lookup, TableKeys.Batch, TableKeys.Upload, TableKeys.Edit,
		TableKeys.Competitor, TableKeys.Open, TableKeys.Export, TableKeys.Help, TableKeys.Quit)
	return v.String()
}

func (m *TableModel) linkWidth() int {
	used := 2 + colInput + colName + colSector + colRegion + colHeadcount + 6
	return max(minLink, m.Width-4-used)
}

func (m *TableModel) renderHeader() string {
	cells := []string{
		" ",
		PadRight("Input", colInput),
		PadRight("Nom Entreprise", colName),
		PadRight("Industrie", colSector),
		PadRight("Région", colRegion),
		PadRight("Effectif", colHeadcount),
		"Lien",
	}
	return styles.TableHeader.Render(strings.Join(cells, " "))
}

func (m *TableModel) renderRow(row domain.Row, selected bool) string {
	r := row.Record

	input := r.Input
	if r.IsCompetitor {
		input = "★ " + input
	}

	cells := []string{
		PadRight(Truncate(input, colInput), colInput),
		PadRight(Truncate(r.OfficialName, colName), colName),
		PadRight(Truncate(r.Sector+OverrideLabel(r.Override), colSector), colSector),
		PadRight(Truncate(r.Region, colRegion), colRegion),
		PadRight(Truncate(r.Headcount, colHeadcount), colHeadcount),
		Truncate(r.Link, m.linkWidth()),
	}

	text := strings.Join(cells, " ")
	switch {
	case selected:
		text = styles.RowSelected.Render(text)
	case r.Override == domain.OverrideFailed:
		text = styles.OverrideFailed.Render(text)
	case r.IsCompetitor:
		text = styles.RowCompetitor.Render(text)
	}
	return StatusIcon(row.Status) + " " + text
}
