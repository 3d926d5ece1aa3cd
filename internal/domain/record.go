package domain

import "strings"

// Sector sentinels and display defaults
const (
	SectorNotFound = "Non Trouvé"
	SectorError    = "Erreur"
	SectorIgnored  = "N/A"

	// sectorUnknown is the legacy "no match" label some classifiers emit
	sectorUnknown = "Unknown"

	NotProvided = "Non renseigné"
	NoValue     = "-"
)

// Status is the reconciliation bucket a record falls into
type Status int

const (
	StatusFound Status = iota
	StatusNotFound
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not found"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// OverrideState tracks a manual sector correction through persistence
type OverrideState int

const (
	OverrideNone OverrideState = iota
	OverridePending
	OverrideConfirmed
	OverrideFailed
)

func (s OverrideState) String() string {
	switch s {
	case OverridePending:
		return "pending"
	case OverrideConfirmed:
		return "confirmed"
	case OverrideFailed:
		return "failed"
	default:
		return "none"
	}
}

// Record is one enriched company.
// Input is the identity key and never changes once the record exists.
type Record struct {
	Input        string `json:"input"`
	OfficialName string `json:"official_name"`
	Sector       string `json:"sector"`
	Address      string `json:"address"`
	Region       string `json:"region"`
	Headcount    string `json:"headcount"`
	Link         string `json:"link"`
	IsCompetitor bool   `json:"is_competitor"`

	Detail string `json:"detail,omitempty"`
	Source string `json:"source,omitempty"`
	Score  string `json:"score,omitempty"`

	Override OverrideState `json:"override,omitempty"`
	Editing  bool          `json:"-"`
}

// Normalize enforces the record invariants: a non-empty sector and
// display defaults for the optional fields.
func (r *Record) Normalize() {
	r.Sector = NormalizeSector(r.Sector)
	if strings.TrimSpace(r.Region) == "" {
		r.Region = NotProvided
	}
	if strings.TrimSpace(r.Headcount) == "" {
		r.Headcount = NotProvided
	}
	if strings.TrimSpace(r.Link) == "" {
		r.Link = NoValue
	}
	if r.OfficialName == "" {
		r.OfficialName = r.Input
	}
}

// Status reports which stats bucket the record belongs to
func (r Record) Status() Status {
	return SectorStatus(r.Sector)
}

// HasLink reports whether the record carries a usable URL
func (r Record) HasLink() bool {
	return r.Link != "" && r.Link != NoValue && r.Link != "#"
}

// NormalizeSector maps empty and legacy "Unknown" labels to the not-found sentinel
func NormalizeSector(sector string) string {
	sector = strings.TrimSpace(sector)
	if sector == "" || sector == sectorUnknown {
		return SectorNotFound
	}
	return sector
}

// SectorStatus classifies a sector label
func SectorStatus(sector string) Status {
	switch NormalizeSector(sector) {
	case SectorNotFound:
		return StatusNotFound
	case SectorError:
		return StatusError
	default:
		return StatusFound
	}
}

// IsSentinel reports whether the label is one of the sentinel values
func IsSentinel(sector string) bool {
	switch NormalizeSector(sector) {
	case SectorNotFound, SectorError, SectorIgnored:
		return true
	}
	return false
}

// NewNotFoundRecord builds the record for a name with no match
func NewNotFoundRecord(input, officialName string) Record {
	r := Record{
		Input:        input,
		OfficialName: officialName,
		Sector:       SectorNotFound,
		Detail:       "Aucun résultat probant",
		Source:       "Échec",
		Score:        "0",
		Address:      NoValue,
		Region:       NoValue,
		Link:         NoValue,
	}
	r.Normalize()
	return r
}

// NewErrorRecord builds the placeholder row for a failed lookup
func NewErrorRecord(input string, err error) Record {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	r := Record{
		Input:        input,
		OfficialName: SectorError,
		Sector:       SectorError,
		Detail:       detail,
		Source:       "Crash",
		Score:        "0",
		Address:      NoValue,
		Region:       NoValue,
		Headcount:    NoValue,
		Link:         NoValue,
	}
	return r
}
