package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"enrichio/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for yes/no prompts
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var ConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}

// ConfirmDeleteModel asks before a custom sector is deleted
type ConfirmDeleteModel struct {
	ViewState
	label string
}

// NewConfirmDeleteModel creates a new delete confirmation view
func NewConfirmDeleteModel() *ConfirmDeleteModel {
	return &ConfirmDeleteModel{}
}

// SetTarget sets the sector awaiting confirmation
func (m *ConfirmDeleteModel) SetTarget(label string) {
	m.label = label
}

// Init initializes the view
func (m *ConfirmDeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmDeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ConfirmKeys.Confirm):
			return m, send(DeleteSectorRequestMsg{Label: m.label})
		case key.Matches(msg, ConfirmKeys.Cancel):
			return m, send(SwitchToSectorsMsg{})
		}
	}
	return m, nil
}

// View renders the confirmation view
func (m *ConfirmDeleteModel) View() string {
	return NewViewBuilder().
		Title("Delete Sector").
		Line(RenderLabelValue("Sector", m.label)).
		Muted("Rows already using it keep their sector.").
		BlankLine().
		Message(m.Message, m.MessageErr).
		Line(RenderConfirmPrompt("Delete this sector?")).
		String()
}
