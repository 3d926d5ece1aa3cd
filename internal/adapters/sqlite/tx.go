package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

// sectorTx groups the writes of one correction
type sectorTx struct {
	tx *sql.Tx
}

// markBuiltin inserts label as built-in, or flags an existing custom label as built-in
func (t *sectorTx) markBuiltin(ctx context.Context, label string, created int64) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO sectors (label, custom, created_at) VALUES (?, 0, ?)
		ON CONFLICT(label) DO UPDATE SET custom = 0
	`, label, created)
	return err
}

// ensureSector inserts label as custom and reports whether it was new.
// Placeholder labels are refused.
func (t *sectorTx) ensureSector(ctx context.Context, label string, created int64) (bool, error) {
	if domain.IsSentinel(label) {
		return false, fmt.Errorf("%s: %w", label, ports.ErrReservedSector)
	}
	res, err := t.tx.ExecContext(ctx, `
		INSERT OR IGNORE INTO sectors (label, custom, created_at) VALUES (?, 1, ?)
	`, label, created)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// upsertOverride saves sector for identity, keeping the replaced sector
func (t *sectorTx) upsertOverride(ctx context.Context, identity, sector string, updated int64) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO overrides (identity, sector, previous_sector, updated_at)
		VALUES (?, ?, '', ?)
		ON CONFLICT(identity) DO UPDATE SET
			previous_sector = overrides.sector,
			sector = excluded.sector,
			updated_at = excluded.updated_at
	`, identity, sector, updated)
	return err
}

// insertHistory appends a history row
func (t *sectorTx) insertHistory(ctx context.Context, identity, sector string, created int64) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO override_history (id, identity, sector, created_at)
		VALUES (?, ?, ?, ?)
	`, uuid.NewString(), identity, sector, created)
	return err
}

// Commit commits the transaction
func (t *sectorTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *sectorTx) Rollback() error {
	return t.tx.Rollback()
}
