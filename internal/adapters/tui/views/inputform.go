package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"enrichio/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// DefaultInputFormKeys returns the default input form key bindings
var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// NewInput creates a text input with placeholder and an optional length limit
func NewInput(placeholder string, charLimit int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	return input
}

// RenderInput renders a labelled text input, highlighted when focused
func RenderInput(label string, input textinput.Model) string {
	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(label))
	b.WriteString("\n")
	if input.Focused() {
		b.WriteString(styles.InputFocused.Render(input.View()))
	} else {
		b.WriteString(styles.InputField.Render(input.View()))
	}
	return b.String()
}

// PromptModel is a one-field form: a single lookup or an upload path
type PromptModel struct {
	ViewState
	title  string
	label  string
	input  textinput.Model
	submit func(value string) tea.Msg
	Keys   InputFormKeyMap
}

// NewPromptModel creates a prompt; submit turns the entered value into a request
func NewPromptModel(title, label, placeholder string, submit func(string) tea.Msg) *PromptModel {
	return &PromptModel{
		title:  title,
		label:  label,
		input:  NewInput(placeholder, 512),
		submit: submit,
		Keys:   DefaultInputFormKeys,
	}
}

// NewLookupModel creates the single lookup prompt
func NewLookupModel() *PromptModel {
	return NewPromptModel("Lookup", "Company name", "Danone, contact@capgemini.com…",
		func(v string) tea.Msg { return LookupRequestMsg{Name: v} })
}

// NewUploadModel creates the spreadsheet path prompt
func NewUploadModel() *PromptModel {
	return NewPromptModel("Upload", "Spreadsheet (.csv, .xls, .xlsx)", "~/Downloads/clients.xlsx",
		func(v string) tea.Msg { return UploadRequestMsg{Path: v} })
}

// Reset clears the field and focuses it
func (m *PromptModel) Reset() tea.Cmd {
	m.input.SetValue("")
	m.ClearMessage()
	m.input.Focus()
	return textinput.Blink
}

// Value returns the trimmed input
func (m *PromptModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Init returns the blink command for the input
func (m *PromptModel) Init() tea.Cmd {
	return m.Reset()
}

// Update handles messages for the prompt
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			return m, send(SwitchToTableMsg{})
		case key.Matches(msg, m.Keys.Submit):
			value := m.Value()
			if value == "" {
				// empty input is ignored
				return m, nil
			}
			return m, send(m.submit(value))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt
func (m *PromptModel) View() string {
	return NewViewBuilder().
		Title(m.title).
		Line(RenderInput(m.label, m.input)).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(m.Keys.Submit, m.Keys.Cancel).
		String()
}
