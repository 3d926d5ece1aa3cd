package application

import "enrichio/internal/domain"

// Re-export domain types for use by adapters
type (
	Record        = domain.Record
	Stats         = domain.Stats
	Progress      = domain.Progress
	Projection    = domain.Projection
	Row           = domain.Row
	SectorOption  = domain.SectorOption
	Status        = domain.Status
	OverrideState = domain.OverrideState
)

// Re-export record statuses and sentinels
const (
	StatusFound    = domain.StatusFound
	StatusNotFound = domain.StatusNotFound
	StatusError    = domain.StatusError

	OverrideNone      = domain.OverrideNone
	OverridePending   = domain.OverridePending
	OverrideConfirmed = domain.OverrideConfirmed
	OverrideFailed    = domain.OverrideFailed

	SectorNotFound = domain.SectorNotFound
	SectorError    = domain.SectorError
	NotProvided    = domain.NotProvided
)

// SplitLines splits pasted text into raw lines
func SplitLines(text string) []string {
	return domain.SplitLines(text)
}
