package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aevon-lab/rental-analytics/internal/core/rollup"
	"github.com/aevon-lab/rental-analytics/internal/core/storage"
)

const (
	// queryUpsertSnapshot stores a rollup under its input fingerprint.
	// Re-saving the same fingerprint refreshes computed_at so the snapshot
	// counts as fresh again.
	queryUpsertSnapshot = `
		INSERT INTO rollup_snapshots (fingerprint, reference_time, computed_at, result)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (fingerprint)
		DO UPDATE SET
			reference_time = EXCLUDED.reference_time,
			computed_at    = EXCLUDED.computed_at,
			result         = EXCLUDED.result
	`

	queryLatestSnapshot = `
		SELECT fingerprint, reference_time, computed_at, result
		FROM rollup_snapshots
		ORDER BY computed_at DESC
		LIMIT 1
	`

	// queryPruneSnapshots keeps the newest $1 snapshots.
	queryPruneSnapshots = `
		DELETE FROM rollup_snapshots
		WHERE fingerprint NOT IN (
			SELECT fingerprint
			FROM rollup_snapshots
			ORDER BY computed_at DESC
			LIMIT $1
		)
	`
)

// SnapshotAdapter implements aggregation.SnapshotStore using PostgreSQL.
type SnapshotAdapter struct {
	db *sql.DB
}

// NewSnapshotAdapter creates a new SnapshotAdapter sharing the given connection.
func NewSnapshotAdapter(db *sql.DB) *SnapshotAdapter {
	return &SnapshotAdapter{db: db}
}

// SaveSnapshot upserts snap keyed by its fingerprint.
func (a *SnapshotAdapter) SaveSnapshot(ctx context.Context, snap rollup.Snapshot) error {
	resultJSON, err := json.Marshal(snap.Result)
	if err != nil {
		return fmt.Errorf("save snapshot: marshal result: %w", err)
	}

	if _, err := a.db.ExecContext(ctx, queryUpsertSnapshot,
		snap.Fingerprint,
		snap.ReferenceTime,
		snap.ComputedAt,
		resultJSON,
	); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	slog.Debug("[SnapshotAdapter] Saved snapshot", "fingerprint", snap.Fingerprint)
	return nil
}

// LatestSnapshot returns the most recently computed snapshot, or
// storage.ErrNotFound when none exists yet.
func (a *SnapshotAdapter) LatestSnapshot(ctx context.Context) (rollup.Snapshot, error) {
	var snap rollup.Snapshot
	var resultJSON []byte

	err := a.db.QueryRowContext(ctx, queryLatestSnapshot).Scan(
		&snap.Fingerprint,
		&snap.ReferenceTime,
		&snap.ComputedAt,
		&resultJSON,
	)
	if err == sql.ErrNoRows {
		return rollup.Snapshot{}, storage.ErrNotFound
	}
	if err != nil {
		return rollup.Snapshot{}, fmt.Errorf("latest snapshot: %w", err)
	}

	if err := json.Unmarshal(resultJSON, &snap.Result); err != nil {
		return rollup.Snapshot{}, fmt.Errorf("latest snapshot: unmarshal result: %w", err)
	}
	return snap, nil
}

// PruneSnapshots deletes all but the newest keep snapshots and returns how
// many rows were removed.
func (a *SnapshotAdapter) PruneSnapshots(ctx context.Context, keep int) (int64, error) {
	if keep < 1 {
		keep = 1
	}

	result, err := a.db.ExecContext(ctx, queryPruneSnapshots, keep)
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: rows affected: %w", err)
	}
	if removed > 0 {
		slog.Info("[SnapshotAdapter] Pruned snapshots", "removed", removed, "kept", keep)
	}
	return removed, nil
}
