package domain

import (
	"slices"
	"testing"
)

func TestNormalizeBatch(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "drops blanks and navigation lines",
			lines: []string{"Acme Corp", "", "  ", "voir fiche", "Globex Inc"},
			want:  []string{"Acme Corp", "Globex Inc"},
		},
		{
			name:  "denylist is case and accent insensitive",
			lines: []string{"  VOIR FICHE ", "En Savoir   Plus", "Sité Web", "Initech"},
			want:  []string{"Initech"},
		},
		{
			name:  "keeps duplicates and order",
			lines: []string{"b", "a", "b"},
			want:  []string{"b", "a", "b"},
		},
		{
			name:  "all filtered",
			lines: []string{"", "voir la fiche"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeBatch(tt.lines, DefaultDenylist)
			if !slices.Equal(got, tt.want) {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\r\nb\nc")
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("unexpected lines %q", got)
	}
}

func TestFoldText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hermès", "hermes"},
		{"  Société   Générale ", "societe generale"},
		{"ＡＣＭＥ", "acme"},
	}
	for _, tt := range tests {
		if got := FoldText(tt.in); got != tt.want {
			t.Errorf("FoldText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	p := Progress{Processed: 1, Total: 4}
	if p.Fraction() != 0.25 {
		t.Errorf("expected 0.25, got %v", p.Fraction())
	}
	if p.Done() {
		t.Error("expected not done")
	}
	if !(Progress{Processed: 4, Total: 4}).Done() {
		t.Error("expected done")
	}
	if (Progress{}).Fraction() != 0 {
		t.Error("expected zero fraction for empty batch")
	}
}
