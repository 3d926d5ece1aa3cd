package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Palette
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#16A34A") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#D97706") // Amber
	Error     = lipgloss.Color("#DC2626") // Red
	Info      = lipgloss.Color("#06B6D4") // Cyan
	White     = lipgloss.Color("#FFFFFF")

	App = lipgloss.NewStyle().Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Record table
	TableHeader   = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	RowSelected   = lipgloss.NewStyle().Background(Primary).Foreground(White).Bold(true)
	RowCompetitor = lipgloss.NewStyle().Foreground(Warning)

	// Record status column
	StatusFound    = lipgloss.NewStyle().Foreground(Secondary)
	StatusNotFound = lipgloss.NewStyle().Foreground(Warning)
	StatusError    = lipgloss.NewStyle().Foreground(Error)

	// Sector override markers
	OverridePending = lipgloss.NewStyle().Foreground(Info)
	OverrideSaved   = lipgloss.NewStyle().Foreground(Secondary)
	OverrideFailed  = lipgloss.NewStyle().Foreground(Error).Bold(true)

	// Prompts
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// Key hints
	HelpKey       = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	HelpDesc      = lipgloss.NewStyle().Foreground(Muted)
	HelpSeparator = lipgloss.NewStyle().Foreground(Muted).SetString(" · ")

	Success  = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	ErrorMsg = lipgloss.NewStyle().Foreground(Error).Bold(true)

	// Sector picker
	OptionSelected = lipgloss.NewStyle().Background(Primary).Foreground(White)
	OptionUnlisted = lipgloss.NewStyle().Foreground(Warning).Italic(true)

	MutedText = lipgloss.NewStyle().Foreground(Muted)
)
