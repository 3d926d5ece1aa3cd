package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"enrichio/internal/adapters/tui/styles"
	"enrichio/internal/domain"
)

// PickerKeyMap defines key bindings for the sector picker
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	New    key.Binding
	Cancel key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "choose"),
	),
	New: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "use typed text as new sector"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// PickerModel lets the operator pick or type a sector for one row.
// Typing filters the options; text matching nothing becomes a new sector.
type PickerModel struct {
	ViewState
	index    int
	record   domain.Record
	options  []domain.SectorOption
	filtered []domain.SectorOption
	cursor   int
	filter   textinput.Model
}

// NewPickerModel creates a new picker
func NewPickerModel() *PickerModel {
	return &PickerModel{
		filter: NewInput("Filter or type a new sector", 80),
	}
}

// SetRecord loads the row to edit and its options
func (m *PickerModel) SetRecord(index int, record domain.Record, options []domain.SectorOption) tea.Cmd {
	m.index = index
	m.record = record
	m.options = options
	m.filter.SetValue("")
	m.ClearMessage()
	m.cursor = 0
	m.applyFilter()
	for i, opt := range m.filtered {
		if opt.Selected {
			m.cursor = i
		}
	}
	m.filter.Focus()
	return textinput.Blink
}

// Filtered returns the options matching the typed text
func (m *PickerModel) Filtered() []domain.SectorOption {
	return m.filtered
}

// Cursor returns the highlighted option
func (m *PickerModel) Cursor() int {
	return m.cursor
}

func (m *PickerModel) applyFilter() {
	query := domain.FoldText(m.filter.Value())
	m.filtered = m.filtered[:0]
	for _, opt := range m.options {
		if query == "" || strings.Contains(domain.FoldText(opt.Label), query) {
			m.filtered = append(m.filtered, opt)
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m *PickerModel) choose(sector string) tea.Cmd {
	sector = strings.TrimSpace(sector)
	if sector == "" {
		return nil
	}
	return send(OverrideRequestMsg{Index: m.index, Sector: sector})
}

// Init initializes the picker
func (m *PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the picker
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PickerKeys.Cancel):
			return m, send(SwitchToTableMsg{})
		case key.Matches(msg, PickerKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, PickerKeys.Down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, PickerKeys.New):
			return m, m.choose(m.filter.Value())
		case key.Matches(msg, PickerKeys.Choose):
			if len(m.filtered) > 0 {
				return m, m.choose(m.filtered[m.cursor].Label)
			}
			return m, m.choose(m.filter.Value())
		}
	}

	var cmd tea.Cmd
	before := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.cursor = 0
		m.applyFilter()
	}
	return m, cmd
}

// View renders the picker
func (m *PickerModel) View() string {
	v := NewViewBuilder().
		Title("Edit Sector").
		Line(RenderLabelValue("Company", m.record.Input)).
		Line(RenderLabelValue("Current", m.record.Sector+OverrideMarker(m.record.Override))).
		BlankLine().
		Line(RenderInput("Sector", m.filter)).
		BlankLine()

	visible := max(5, m.Height-16)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(len(m.filtered), start+visible)

	if len(m.filtered) == 0 {
		if value := strings.TrimSpace(m.filter.Value()); value != "" {
			v.Muted(fmt.Sprintf("No match: enter creates %q", value))
		}
	}
	for i := start; i < end; i++ {
		v.Line(m.renderOption(m.filtered[i], i == m.cursor))
	}

	return v.BlankLine().
		Message(m.Message, m.MessageErr).
		Help(PickerKeys.Up, PickerKeys.Down, PickerKeys.Choose, PickerKeys.New, PickerKeys.Cancel).
		String()
}

func (m *PickerModel) renderOption(opt domain.SectorOption, highlighted bool) string {
	label := opt.Label
	if opt.Unlisted {
		label += " (hors liste)"
	}
	prefix := "  "
	if opt.Selected {
		prefix = "• "
	}

	switch {
	case highlighted:
		return styles.OptionSelected.Render(prefix + label)
	case opt.Unlisted:
		return styles.OptionUnlisted.Render(prefix + label)
	default:
		return prefix + label
	}
}
