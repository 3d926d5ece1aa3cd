package views

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// exec runs cmd and returns the message it emits
func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

func sampleProjection() domain.Projection {
	return domain.Project([]domain.Record{
		{Input: "Danone", Sector: "Food / Beverages", Link: "https://annuaire-entreprises.data.gouv.fr/entreprise/552032534"},
		{Input: "Acme", Sector: domain.SectorNotFound, Link: domain.NoValue},
	})
}

func TestTableModel_RowActions(t *testing.T) {
	m := NewTableModel()
	m.SetProjection(sampleProjection())

	if msg := exec(t, m.handleKey(runes("c"))); msg != (ToggleCompetitorMsg{Index: 0}) {
		t.Errorf("c: got %#v", msg)
	}
	if msg := exec(t, m.handleKey(runes("o"))); msg != (OpenLinkMsg{Link: "https://annuaire-entreprises.data.gouv.fr/entreprise/552032534"}) {
		t.Errorf("o: got %#v", msg)
	}

	m.handleKey(runes("j"))
	if m.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", m.Cursor())
	}
	if msg := exec(t, m.handleKey(runes("e"))); msg != (SwitchToPickerMsg{Index: 1}) {
		t.Errorf("e: got %#v", msg)
	}
	if cmd := m.handleKey(runes("y")); cmd != nil {
		t.Error("copying a row without link should not emit a command")
	}
	if !m.MessageErr {
		t.Error("expected an error message for a row without link")
	}
}

func TestTableModel_EmptyTable(t *testing.T) {
	m := NewTableModel()
	m.SetProjection(domain.Project(nil))

	for _, k := range []string{"e", "c", "o", "y"} {
		if cmd := m.handleKey(runes(k)); cmd != nil {
			t.Errorf("%s on an empty table should do nothing", k)
		}
	}
	if msg := exec(t, m.handleKey(runes("x"))); msg != (ExportRequestMsg{Format: ports.ExportXLSX}) {
		t.Errorf("x: got %#v", msg)
	}
	if msg := exec(t, m.handleKey(runes("X"))); msg != (ExportRequestMsg{Format: ports.ExportCSV}) {
		t.Errorf("X: got %#v", msg)
	}
}

func TestTableModel_CancelOnlyWhileRunning(t *testing.T) {
	m := NewTableModel()
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	if cmd := m.handleKey(esc); cmd != nil {
		t.Error("esc without a running batch should do nothing")
	}

	m.StartBatch(3)
	if msg := exec(t, m.handleKey(esc)); msg != (CancelRequestMsg{}) {
		t.Errorf("esc: got %#v", msg)
	}

	m.StopBatch()
	if m.Running() {
		t.Error("batch should be stopped")
	}
}

func TestBatchModel_Paste(t *testing.T) {
	m := NewBatchModel(domain.DefaultDenylist)
	m.paste = func() (string, error) { return "Danone\r\nLVMH", nil }

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}

	m.paste = func() (string, error) { return "", errors.New("no clipboard") }
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if !m.MessageErr {
		t.Error("expected an error message when the clipboard fails")
	}
}

func TestBatchModel_Submit(t *testing.T) {
	m := NewBatchModel(nil)
	submit := tea.KeyMsg{Type: tea.KeyCtrlS}

	if _, cmd := m.Update(submit); cmd != nil {
		t.Error("submitting an empty list should do nothing")
	}

	m.SetValue("Danone\nLVMH")
	_, cmd := m.Update(submit)
	msg, ok := exec(t, cmd).(BatchRequestMsg)
	if !ok {
		t.Fatalf("expected BatchRequestMsg")
	}
	if msg.Text != "Danone\nLVMH" {
		t.Errorf("Text = %q", msg.Text)
	}
	if m.Value() != "" {
		t.Error("the text area should be cleared after submit")
	}
}

func pickerOptions() []domain.SectorOption {
	return []domain.SectorOption{
		{Label: "Automobile"},
		{Label: "Banque / Assurance", Selected: true},
		{Label: "Food / Beverages"},
	}
}

func TestPickerModel_StartsOnSelected(t *testing.T) {
	m := NewPickerModel()
	m.SetRecord(4, domain.Record{Input: "BNP"}, pickerOptions())

	if m.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", m.Cursor())
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg := exec(t, cmd); msg != (OverrideRequestMsg{Index: 4, Sector: "Banque / Assurance"}) {
		t.Errorf("got %#v", msg)
	}
}

func TestPickerModel_Filter(t *testing.T) {
	m := NewPickerModel()
	m.SetRecord(0, domain.Record{Input: "Danone"}, pickerOptions())

	m.Update(runes("food"))
	if len(m.Filtered()) != 1 {
		t.Fatalf("Filtered() = %v", m.Filtered())
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg := exec(t, cmd); msg != (OverrideRequestMsg{Index: 0, Sector: "Food / Beverages"}) {
		t.Errorf("got %#v", msg)
	}
}

func TestPickerModel_NewSector(t *testing.T) {
	m := NewPickerModel()
	m.SetRecord(2, domain.Record{Input: "Thales"}, pickerOptions())

	m.Update(runes("Défense"))
	if len(m.Filtered()) != 0 {
		t.Fatalf("Filtered() = %v", m.Filtered())
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg := exec(t, cmd); msg != (OverrideRequestMsg{Index: 2, Sector: "Défense"}) {
		t.Errorf("enter: got %#v", msg)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if msg := exec(t, cmd); msg != (OverrideRequestMsg{Index: 2, Sector: "Défense"}) {
		t.Errorf("tab: got %#v", msg)
	}
}

func TestSectorsModel_DeleteAndRemove(t *testing.T) {
	m := NewSectorsModel()
	m.SetSectors([]string{"Cosmétique", "Défense"}, 30)

	m.Update(runes("j"))
	_, cmd := m.Update(runes("d"))
	if msg := exec(t, cmd); msg != (SwitchToConfirmDeleteMsg{Label: "Défense"}) {
		t.Errorf("got %#v", msg)
	}

	m.Removed("Cosmétique")
	got, ok := m.Selected()
	if !ok || got != "Défense" {
		t.Errorf("Selected() = %q, %v", got, ok)
	}

	m.Removed("Défense")
	if _, ok := m.Selected(); ok {
		t.Error("nothing should be selected once the list is empty")
	}
}

func TestConfirmDeleteModel(t *testing.T) {
	m := NewConfirmDeleteModel()
	m.SetTarget("Défense")

	_, cmd := m.Update(runes("y"))
	if msg := exec(t, cmd); msg != (DeleteSectorRequestMsg{Label: "Défense"}) {
		t.Errorf("y: got %#v", msg)
	}
	_, cmd = m.Update(runes("n"))
	if msg := exec(t, cmd); msg != (SwitchToSectorsMsg{}) {
		t.Errorf("n: got %#v", msg)
	}
	if _, cmd := m.Update(runes("z")); cmd != nil {
		t.Error("other keys should be ignored")
	}
}

func TestPromptModel(t *testing.T) {
	m := NewLookupModel()
	m.Reset()
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	if _, cmd := m.Update(enter); cmd != nil {
		t.Error("empty input should be ignored")
	}

	m.Update(runes("  Danone "))
	_, cmd := m.Update(enter)
	if msg := exec(t, cmd); msg != (LookupRequestMsg{Name: "Danone"}) {
		t.Errorf("got %#v", msg)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if msg := exec(t, cmd); msg != (SwitchToTableMsg{}) {
		t.Errorf("esc: got %#v", msg)
	}
}

func TestPaginator(t *testing.T) {
	p := NewPaginator(2)
	p.SetTotal(5)

	p.CursorDown()
	p.CursorDown()
	if p.CurrentPage() != 2 {
		t.Errorf("CurrentPage() = %d, want 2", p.CurrentPage())
	}
	if start, end := p.VisibleRange(); start != 2 || end != 4 {
		t.Errorf("VisibleRange() = %d, %d", start, end)
	}

	p.SetCursor(4)
	if got := p.RemoveAtCursor(); got != 3 {
		t.Errorf("RemoveAtCursor() = %d, want 3", got)
	}
	if p.TotalPages() != 2 {
		t.Errorf("TotalPages() = %d, want 2", p.TotalPages())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Danone", 10, "Danone"},
		{"Société Générale", 8, "Société…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestStatusIcon(t *testing.T) {
	tests := map[domain.Status]string{
		domain.StatusFound:    "✓",
		domain.StatusNotFound: "?",
		domain.StatusError:    "✗",
	}
	for status, icon := range tests {
		if got := StatusIcon(status); !strings.Contains(got, icon) {
			t.Errorf("StatusIcon(%v) = %q, want %q", status, got, icon)
		}
	}
}

func TestViews_RenderSubtitle(t *testing.T) {
	tests := []struct {
		name string
		view string
		want string
	}{
		{"batch", NewBatchModel(nil).View(), "Paste company names, one per line"},
		{"sectors", NewSectorsModel().View(), "0 built-in, 0 custom"},
	}
	for _, tt := range tests {
		if !strings.Contains(tt.view, tt.want) {
			t.Errorf("%s view is missing %q:\n%s", tt.name, tt.want, tt.view)
		}
	}
}
