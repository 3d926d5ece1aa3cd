package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

const schemaVersion = "1"

// Store implements ports.SectorRepository using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
	now    func() time.Time
}

// Ensure Store implements SectorRepository
var _ ports.SectorRepository = (*Store)(nil)

// NewStore creates a new SQLite sector store
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Open opens (or creates) the database at dbPath and seeds the built-in sectors
func (s *Store) Open(dbPath string) error {
	// Expand ~ in path
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	s.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open(driverName, dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Pragmas + schema in a single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS sectors (
			label TEXT PRIMARY KEY,
			custom INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS overrides (
			identity TEXT PRIMARY KEY,
			sector TEXT NOT NULL,
			previous_sector TEXT NOT NULL DEFAULT '',
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS override_history (
			id TEXT PRIMARY KEY,
			identity TEXT NOT NULL,
			sector TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_history_identity ON override_history(identity);
		CREATE INDEX IF NOT EXISTS idx_overrides_updated ON overrides(updated_at);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	if err := s.seedBuiltin(context.Background(), domain.BuiltinLabels()); err != nil {
		db.Close()
		return fmt.Errorf("failed to seed sectors: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file in use
func (s *Store) Path() string {
	return s.dbPath
}

// seedBuiltin marks labels as built-in, inserting the missing ones
func (s *Store) seedBuiltin(ctx context.Context, labels []string) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	created := s.now().UnixNano()
	for _, label := range labels {
		if err := tx.markBuiltin(ctx, label, created); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LookupOverride returns the saved correction for identity
func (s *Store) LookupOverride(ctx context.Context, identity string) (string, bool, error) {
	var sector string
	err := s.db.QueryRowContext(ctx,
		`SELECT sector FROM overrides WHERE identity = ?`,
		strings.TrimSpace(identity)).Scan(&sector)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return sector, true, nil
}

// OverrideSector saves sector for identity. An unknown sector is added as
// a custom label in the same transaction.
func (s *Store) OverrideSector(ctx context.Context, identity, sector string) (*ports.OverrideResult, error) {
	identity = strings.TrimSpace(identity)
	sector = strings.TrimSpace(sector)
	if identity == "" || sector == "" {
		return nil, fmt.Errorf("identity and sector are required")
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := s.now().UnixNano()
	isNew, err := tx.ensureSector(ctx, sector, now)
	if err != nil {
		return nil, fmt.Errorf("failed to save sector: %w", err)
	}
	if err := tx.upsertOverride(ctx, identity, sector, now); err != nil {
		return nil, fmt.Errorf("failed to save override: %w", err)
	}
	if err := tx.insertHistory(ctx, identity, sector, now); err != nil {
		return nil, fmt.Errorf("failed to record history: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit override: %w", err)
	}

	return &ports.OverrideResult{IsNew: isNew}, nil
}

// DeleteSector removes a custom label. Overrides using it are kept.
func (s *Store) DeleteSector(ctx context.Context, label string) error {
	label = strings.TrimSpace(label)

	var custom bool
	err := s.db.QueryRowContext(ctx, `SELECT custom FROM sectors WHERE label = ?`, label).Scan(&custom)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", label, ports.ErrSectorNotFound)
	}
	if err != nil {
		return err
	}
	if !custom {
		return fmt.Errorf("%s: %w", label, ports.ErrBuiltinSector)
	}

	_, err = s.db.ExecContext(ctx, `DELETE FROM sectors WHERE label = ? AND custom = 1`, label)
	return err
}

// ListSectors returns built-in and custom labels sorted by label
func (s *Store) ListSectors(ctx context.Context) ([]string, []string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT label, custom FROM sectors ORDER BY label`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var builtin, custom []string
	for rows.Next() {
		var label string
		var isCustom bool
		if err := rows.Scan(&label, &isCustom); err != nil {
			return nil, nil, err
		}
		if isCustom {
			custom = append(custom, label)
		} else {
			builtin = append(builtin, label)
		}
	}
	return builtin, custom, rows.Err()
}

// ListOverrides returns saved corrections, most recent first
func (s *Store) ListOverrides(ctx context.Context) ([]ports.OverrideEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT identity, sector, previous_sector, updated_at
		FROM overrides ORDER BY updated_at DESC, identity
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ports.OverrideEntry
	for rows.Next() {
		var e ports.OverrideEntry
		var updated int64
		if err := rows.Scan(&e.Identity, &e.Sector, &e.PreviousSector, &updated); err != nil {
			return nil, err
		}
		e.UpdatedAt = time.Unix(0, updated)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// History returns every correction saved for identity, oldest first
func (s *Store) History(ctx context.Context, identity string) ([]ports.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, identity, sector, created_at
		FROM override_history WHERE identity = ?
		ORDER BY created_at, rowid
	`, strings.TrimSpace(identity))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ports.HistoryEntry
	for rows.Next() {
		var e ports.HistoryEntry
		var created int64
		if err := rows.Scan(&e.ID, &e.Identity, &e.Sector, &created); err != nil {
			return nil, err
		}
		e.CreatedAt = time.Unix(0, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) begin(ctx context.Context) (*sectorTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &sectorTx{tx: tx}, nil
}
