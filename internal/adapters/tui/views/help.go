package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"enrichio/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, send(SwitchToTableMsg{})
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Enrichio Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Table"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / l / PgUp / PgDn", "Previous/next page"))
	b.WriteString(helpLine("e / Enter", "Edit sector of the selected row"))
	b.WriteString(helpLine("c", "Toggle competitor flag"))
	b.WriteString(helpLine("o", "Open directory link in the browser"))
	b.WriteString(helpLine("y", "Copy directory link"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Enrichment"))
	b.WriteString("\n")
	b.WriteString(helpLine("/", "Look up one company"))
	b.WriteString(helpLine("b", "Paste a list (ctrl+s runs it)"))
	b.WriteString(helpLine("u", "Upload a CSV or Excel file"))
	b.WriteString(helpLine("esc", "Cancel the running batch"))
	b.WriteString(helpLine("R", "Clear the table"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Sectors & export"))
	b.WriteString("\n")
	b.WriteString(helpLine("s", "Custom sectors (d deletes)"))
	b.WriteString(helpLine("x / X", "Export to XLSX / CSV"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Sector markers"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  …  saving correction"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  ✎  correction saved"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  !  correction not saved (kept in this session)"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(PadRight(key, 22)) + styles.HelpDesc.Render(desc) + "\n"
}
