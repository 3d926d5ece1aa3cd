package ports

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrBuiltinSector is returned when deleting a built-in sector
	ErrBuiltinSector = errors.New("built-in sectors cannot be deleted")

	// ErrSectorNotFound is returned when deleting a label that does not exist
	ErrSectorNotFound = errors.New("sector not found")

	// ErrReservedSector is returned when a placeholder label such as
	// "Non Trouvé" is saved as a sector
	ErrReservedSector = errors.New("placeholder labels are not sectors")
)

// OverrideResult reports what a saved correction did to the sector list
type OverrideResult struct {
	// IsNew is true when the sector did not exist before the correction
	IsNew bool
}

// HistoryEntry is one past correction of an identity
type HistoryEntry struct {
	ID        string
	Identity  string
	Sector    string
	CreatedAt time.Time
}

// OverrideEntry is a persisted manual correction
type OverrideEntry struct {
	Identity       string
	Sector         string
	PreviousSector string
	UpdatedAt      time.Time
}

// OverrideLookup finds saved corrections for a raw input
type OverrideLookup interface {
	LookupOverride(ctx context.Context, identity string) (sector string, ok bool, err error)
}

// SectorRepository persists sector corrections and the custom sector list
type SectorRepository interface {
	OverrideLookup

	// OverrideSector saves sector as the correction for identity
	OverrideSector(ctx context.Context, identity, sector string) (*OverrideResult, error)

	// DeleteSector removes a custom sector label
	DeleteSector(ctx context.Context, label string) error

	// ListSectors returns built-in and custom labels
	ListSectors(ctx context.Context) (builtin, custom []string, err error)

	// ListOverrides returns saved corrections, most recent first
	ListOverrides(ctx context.Context) ([]OverrideEntry, error)

	// History returns every correction saved for identity, oldest first
	History(ctx context.Context, identity string) ([]HistoryEntry, error)
}
