package domain

// SectorOption is one entry of a record's sector picker
type SectorOption struct {
	Label    string
	Selected bool
	// Unlisted marks the record's current label when the vocabulary lacks it
	Unlisted bool
}

// SectorOptions lists the labels an operator can pick for a record whose
// current sector is current. A current label missing from the vocabulary is
// offered first, selected and marked unlisted; the vocabulary is not touched.
func SectorOptions(vocab *Vocabulary, current string) []SectorOption {
	labels := vocab.SortedAll()
	current = NormalizeSector(current)

	options := make([]SectorOption, 0, len(labels)+1)
	listed := false
	for _, label := range labels {
		selected := label == current
		if selected {
			listed = true
		}
		options = append(options, SectorOption{Label: label, Selected: selected})
	}

	if !listed {
		unlisted := SectorOption{Label: current, Selected: true, Unlisted: true}
		options = append([]SectorOption{unlisted}, options...)
	}
	return options
}

// Row is one projected table line
type Row struct {
	Index  int
	Record Record
	Status Status
}

// Projection is the display model derived from the store
type Projection struct {
	Rows  []Row
	Stats Stats
	// Empty is set when there is nothing to show at all
	Empty bool
}

// Project derives the display model from a snapshot of records
func Project(records []Record) Projection {
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = Row{Index: i, Record: r, Status: r.Status()}
	}
	return Projection{
		Rows:  rows,
		Stats: ComputeStats(records),
		Empty: len(records) == 0,
	}
}
