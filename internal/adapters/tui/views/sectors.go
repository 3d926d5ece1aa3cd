package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"enrichio/internal/adapters/tui/styles"
)

// SectorsKeyMap defines key bindings for the custom sectors view
type SectorsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Delete key.Binding
	Back   key.Binding
}

var SectorsKeys = SectorsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
}

// SectorsModel lists the operator-created sectors
type SectorsModel struct {
	ViewState
	custom  []string
	builtin int
	pager   *Paginator
}

// NewSectorsModel creates a new sectors view
func NewSectorsModel() *SectorsModel {
	return &SectorsModel{pager: NewPaginator(15)}
}

// SetSectors installs the labels to show
func (m *SectorsModel) SetSectors(custom []string, total int) {
	m.custom = custom
	m.builtin = total - len(custom)
	m.pager.SetTotal(len(custom))
}

// Selected returns the highlighted label
func (m *SectorsModel) Selected() (string, bool) {
	i := m.pager.Cursor()
	if i < 0 || i >= len(m.custom) {
		return "", false
	}
	return m.custom[i], true
}

// SetSize updates the view dimensions
func (m *SectorsModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(max(5, height-10))
}

// Init initializes the view
func (m *SectorsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the sectors view
func (m *SectorsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		switch {
		case key.Matches(msg, SectorsKeys.Back):
			return m, send(SwitchToTableMsg{})
		case key.Matches(msg, SectorsKeys.Up):
			m.pager.CursorUp()
		case key.Matches(msg, SectorsKeys.Down):
			m.pager.CursorDown()
		case key.Matches(msg, SectorsKeys.Delete):
			if label, ok := m.Selected(); ok {
				return m, send(SwitchToConfirmDeleteMsg{Label: label})
			}
		}
	}
	return m, nil
}

// Removed drops label from the list after a successful delete
func (m *SectorsModel) Removed(label string) {
	for i, l := range m.custom {
		if l == label {
			m.pager.SetCursor(i)
			m.custom = append(m.custom[:i:i], m.custom[i+1:]...)
			m.pager.RemoveAtCursor()
			return
		}
	}
}

// View renders the sectors view
func (m *SectorsModel) View() string {
	v := NewViewBuilder().
		Title("Sectors").
		Subtitle(fmt.Sprintf("%d built-in, %d custom", m.builtin, len(m.custom)))

	if len(m.custom) == 0 {
		v.Muted("No custom sectors. Typing a new label in the sector editor creates one.")
	}
	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		if i == m.pager.Cursor() {
			v.Line(styles.RowSelected.Render("  " + m.custom[i]))
		} else {
			v.Line("  " + m.custom[i])
		}
	}

	return v.BlankLine().
		Message(m.Message, m.MessageErr).
		Help(SectorsKeys.Up, SectorsKeys.Down, SectorsKeys.Delete, SectorsKeys.Back).
		String()
}
