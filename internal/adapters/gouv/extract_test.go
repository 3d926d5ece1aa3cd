package gouv

import "testing"

func TestExtractCompany(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantName    string
		wantIgnored bool
	}{
		{"plain name", "Danone", "Danone", false},
		{"trims", "  Danone  ", "Danone", false},
		{"corporate email", "jean.dupont@capgemini.com", "capgemini", false},
		{"personal email", "jean.dupont@gmail.com", "jean.dupont@gmail.com", true},
		{"personal email upper case", "Someone@Hotmail.FR", "Someone@Hotmail.FR", true},
		{"telecom email is kept", "contact@orange.fr", "orange", false},
		{"dashes and dots", "coca-cola.inc", "coca cola inc", false},
		{"glued suffix", "serfigroup", "serfi group", false},
		{"glued suffix upper case", "ACMEFRANCE", "ACME FRANCE", false},
		{"separate suffix unchanged", "Acme Group", "Acme Group", false},
		{"url with at sign", "https://example.com/@acme", "https://example com/@acme", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotName, gotIgnored := ExtractCompany(tt.raw)
			if gotName != tt.wantName {
				t.Errorf("ExtractCompany(%q) name = %q, want %q", tt.raw, gotName, tt.wantName)
			}
			if gotIgnored != tt.wantIgnored {
				t.Errorf("ExtractCompany(%q) ignored = %v, want %v", tt.raw, gotIgnored, tt.wantIgnored)
			}
		})
	}
}

func TestRegionFromPostalCode(t *testing.T) {
	tests := []struct {
		zip  string
		want string
	}{
		{"75008", "Île-de-France"},
		{"69003", "Auvergne-Rhône-Alpes"},
		{"97400", "La Réunion"},
		{"97600", "Mayotte"},
		{"98000", "France (980)"},
		{"20000", "France (20)"},
		{"7", "Autre"},
		{"", "Autre"},
	}

	for _, tt := range tests {
		t.Run(tt.zip, func(t *testing.T) {
			if got := RegionFromPostalCode(tt.zip); got != tt.want {
				t.Errorf("RegionFromPostalCode(%q) = %q, want %q", tt.zip, got, tt.want)
			}
		})
	}
}

func TestHeadcountLabel(t *testing.T) {
	tests := []struct {
		band string
		want string
	}{
		{"53", "10 000 salariés et plus"},
		{"01", "1 ou 2 salariés"},
		{"NN", "Non renseigné"},
		{"", "Non renseigné"},
		{"99", "Non renseigné"},
	}

	for _, tt := range tests {
		if got := HeadcountLabel(tt.band); got != tt.want {
			t.Errorf("HeadcountLabel(%q) = %q, want %q", tt.band, got, tt.want)
		}
	}
}

func TestLookupKnown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantName string
	}{
		{"exact", "LVMH", true, "LVMH MOET HENNESSY"},
		{"lower case", "danone", true, "DANONE"},
		{"compact form", "cocacola", true, "THE COCA-COLA COMPANY"},
		{"spaced form", "Air BnB", true, "AIRBNB INC."},
		{"accents dropped", "Intermarche", true, "ITM ENTREPRISES"},
		{"accents kept", "intermarché", true, "ITM ENTREPRISES"},
		{"extra spaces", "  Coca   Cola ", true, "THE COCA-COLA COMPANY"},
		{"unknown", "Acme", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := LookupKnown(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("LookupKnown(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if k.Name != tt.wantName {
				t.Errorf("LookupKnown(%q) name = %q, want %q", tt.input, k.Name, tt.wantName)
			}
		})
	}
}

func TestKnownCompanyLink(t *testing.T) {
	danone, _ := LookupKnown("DANONE")
	if got := danone.Link(); got != "https://annuaire-entreprises.data.gouv.fr/entreprise/552032534" {
		t.Errorf("unexpected link %q", got)
	}

	pepsi, _ := LookupKnown("PEPSI")
	if got := pepsi.Link(); got != "https://annuaire-entreprises.data.gouv.fr/rechercher?q=PEPSICO+INC." {
		t.Errorf("unexpected link %q", got)
	}
}
