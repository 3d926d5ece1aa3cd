package domain

import "testing"

func TestSectorFromNAF(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"longest prefix wins", "62.01Z", "Tech / Software"},
		{"two digit prefix", "62.02A", "Consulting / IT Services"},
		{"banking over finance", "64.19Z", "Banking"},
		{"finance", "64.30Z", "Finance / Real Estate"},
		{"blacklisted holding", "70.10Z", ""},
		{"blacklisted without dots", "6420Z", ""},
		{"no match", "99.00Z", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SectorFromNAF(tt.code); got != tt.want {
				t.Errorf("SectorFromNAF(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestSectorFromKeywords(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      string
		wantScore int
	}{
		{"single keyword", "Boulangerie du Coin", "Food / Beverages", 1},
		{"accent insensitive", "Clinique Santé Plus", "Healthcare / Medical Services", 2},
		{"multi word keyword", "Groupe supply chain europe", "Transportation, Logistics & Storage", 1},
		{"word boundary", "Techniques Avancées", "", 0},
		{"nothing", "Zzyzx", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, score := SectorFromKeywords(tt.text)
			if got != tt.want || score != tt.wantScore {
				t.Errorf("SectorFromKeywords(%q) = (%q, %d), want (%q, %d)", tt.text, got, score, tt.want, tt.wantScore)
			}
		})
	}
}

func TestBuiltinLabels(t *testing.T) {
	labels := BuiltinLabels()
	if len(labels) != 22 {
		t.Errorf("expected 22 built-in sectors, got %d", len(labels))
	}
	seen := map[string]bool{}
	for _, l := range labels {
		if seen[l] {
			t.Errorf("duplicate label %q", l)
		}
		seen[l] = true
	}
}
