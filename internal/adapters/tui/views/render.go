package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"enrichio/internal/adapters/tui/styles"
	"enrichio/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine joins key hints on one line
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderSubtitle renders secondary heading text
func RenderSubtitle(subtitle string) string {
	return styles.Subtitle.Render(subtitle)
}

// RenderLabelValue renders a label: value pair
func RenderLabelValue(label, value string) string {
	return fmt.Sprintf("%s %s",
		styles.InputLabel.Render(label+":"),
		value,
	)
}

// StatusIcon renders the marker of a record status
func StatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusFound:
		return styles.StatusFound.Render("✓")
	case domain.StatusNotFound:
		return styles.StatusNotFound.Render("?")
	default:
		return styles.StatusError.Render("✗")
	}
}

// OverrideLabel is the plain suffix marking a corrected sector
func OverrideLabel(state domain.OverrideState) string {
	switch state {
	case domain.OverridePending:
		return " …"
	case domain.OverrideConfirmed:
		return " ✎"
	case domain.OverrideFailed:
		return " ! non sauvegardé"
	default:
		return ""
	}
}

// OverrideMarker renders OverrideLabel in the colour of its state
func OverrideMarker(state domain.OverrideState) string {
	label := OverrideLabel(state)
	switch state {
	case domain.OverridePending:
		return styles.OverridePending.Render(label)
	case domain.OverrideConfirmed:
		return styles.OverrideSaved.Render(label)
	case domain.OverrideFailed:
		return styles.OverrideFailed.Render(label)
	default:
		return ""
	}
}

// RenderStats renders the found / not found / error counters
func RenderStats(stats domain.Stats) string {
	return strings.Join([]string{
		styles.StatusFound.Render(fmt.Sprintf("✓ %d trouvés", stats.Found)),
		styles.StatusNotFound.Render(fmt.Sprintf("? %d non trouvés", stats.NotFound)),
		styles.StatusError.Render(fmt.Sprintf("✗ %d erreurs", stats.Error)),
	}, styles.HelpSeparator.String())
}

// Truncate cuts s to width display cells, marking the cut with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// PadRight pads s with spaces to width display cells
func PadRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// ViewBuilder stacks the sections of a full-screen view
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title section
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	v.b.WriteString(styles.Title.Render(title))
	v.b.WriteString("\n\n")
	return v
}

// Subtitle adds a short italic hint under the title
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	v.b.WriteString(RenderSubtitle(subtitle))
	v.b.WriteString("\n\n")
	return v
}

// Line adds a line of text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n")
	return v
}

// BlankLine adds a blank line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// Muted adds a line of secondary text
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	return v.Line(styles.MutedText.Render(text))
}

// Message adds the status message, if any
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	v.b.WriteString(RenderMessage(message, isError))
	v.b.WriteString("\n\n")
	return v
}

// Help adds the key hints line
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	v.b.WriteString(RenderHelpLine(bindings...))
	return v
}

// String returns the view wrapped in the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}
