package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"enrichio/internal/domain"
)

// BatchKeyMap defines key bindings for the paste batch view
type BatchKeyMap struct {
	Submit key.Binding
	Paste  key.Binding
	Edit   key.Binding
	Cancel key.Binding
}

var BatchKeys = BatchKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "run"),
	),
	Paste: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "paste clipboard"),
	),
	Edit: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "edit in $EDITOR"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// BatchModel is the model for pasting a list of company names
type BatchModel struct {
	ViewState
	area     textarea.Model
	denylist []string
	paste    func() (string, error)
}

// NewBatchModel creates a new batch view; denylist is used for the name count
func NewBatchModel(denylist []string) *BatchModel {
	area := textarea.New()
	area.Placeholder = "One company name per line"
	area.ShowLineNumbers = true
	area.CharLimit = 0
	area.SetHeight(12)

	return &BatchModel{
		area:     area,
		denylist: denylist,
		paste:    clipboard.ReadAll,
	}
}

// Init focuses the text area
func (m *BatchModel) Init() tea.Cmd {
	m.area.Focus()
	return textarea.Blink
}

// Value returns the raw pasted text
func (m *BatchModel) Value() string {
	return m.area.Value()
}

// SetValue replaces the pasted text
func (m *BatchModel) SetValue(text string) {
	m.area.SetValue(text)
}

// Count returns how many names would be processed
func (m *BatchModel) Count() int {
	return len(domain.NormalizeBatch(domain.SplitLines(m.area.Value()), m.denylist))
}

// SetSize updates the view dimensions
func (m *BatchModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.area.SetWidth(max(20, width-8))
	m.area.SetHeight(max(5, height-12))
}

// Update handles messages for the batch view
func (m *BatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, BatchKeys.Cancel):
			return m, send(SwitchToTableMsg{})

		case key.Matches(msg, BatchKeys.Submit):
			if m.Count() == 0 {
				// nothing to run
				return m, nil
			}
			text := m.area.Value()
			m.area.Reset()
			return m, send(BatchRequestMsg{Text: text})

		case key.Matches(msg, BatchKeys.Paste):
			text, err := m.paste()
			if err != nil {
				m.SetMessage(fmt.Sprintf("Clipboard unavailable: %v", err), true)
				return m, nil
			}
			m.area.InsertString(strings.ReplaceAll(text, "\r\n", "\n"))
			return m, nil

		case key.Matches(msg, BatchKeys.Edit):
			return m, send(EditBatchMsg{Text: m.area.Value()})
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

// View renders the batch view
func (m *BatchModel) View() string {
	return NewViewBuilder().
		Title("Batch").
		Subtitle("Paste company names, one per line").
		Line(m.area.View()).
		Muted(fmt.Sprintf("%d names", m.Count())).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(BatchKeys.Submit, BatchKeys.Paste, BatchKeys.Edit, BatchKeys.Cancel).
		String()
}
