package aggregation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aevon-lab/rental-analytics/internal/core/rollup"
	"github.com/aevon-lab/rental-analytics/internal/core/storage"
)

const (
	defaultRetention   = 30
	defaultLoadTimeout = 30 * time.Second
)

// JobParameter controls a snapshot run.
type JobParameter struct {
	// Retention is how many snapshots survive the prune after each run.
	Retention int
	// LoadTimeout bounds reading the three collections.
	LoadTimeout time.Duration
}

// DefaultJobParameter returns safe defaults for scheduled runs.
func DefaultJobParameter() JobParameter {
	return JobParameter{
		Retention:   defaultRetention,
		LoadTimeout: defaultLoadTimeout,
	}
}

func (p JobParameter) normalized() JobParameter {
	n := p
	if n.Retention <= 0 {
		n.Retention = defaultRetention
	}
	if n.LoadTimeout <= 0 {
		n.LoadTimeout = defaultLoadTimeout
	}
	return n
}

// Outcome describes what a run did.
type Outcome struct {
	Fingerprint string
	// Recomputed is false when the inputs matched the latest snapshot and
	// only its ComputedAt was refreshed.
	Recomputed bool
	Bookings   int
	Vehicles   int
	Users      int
}

// SnapshotJob loads the fleet, computes the rollup and stores it as a snapshot.
// A run whose inputs hash to the latest snapshot's fingerprint skips the
// compute and re-saves the existing result with a new ComputedAt.
type SnapshotJob struct {
	reader storage.FleetReader
	store  SnapshotStore
	engine *rollup.Engine
	params JobParameter
	nowFn  func() time.Time
}

func NewSnapshotJob(reader storage.FleetReader, store SnapshotStore, engine *rollup.Engine, params JobParameter) *SnapshotJob {
	return &SnapshotJob{
		reader: reader,
		store:  store,
		engine: engine,
		params: params.normalized(),
		nowFn:  time.Now,
	}
}

// Run performs one snapshot run anchored at the current time.
func (j *SnapshotJob) Run(ctx context.Context) (Outcome, error) {
	started := j.nowFn()
	ref := started.In(j.engine.Location())

	loadCtx, cancel := context.WithTimeout(ctx, j.params.LoadTimeout)
	fleet, err := LoadFleet(loadCtx, j.reader)
	cancel()
	if err != nil {
		return Outcome{}, fmt.Errorf("load fleet: %w", err)
	}

	fingerprint, err := rollup.Fingerprint(fleet.Bookings, fleet.Vehicles, fleet.Users, ref, j.engine.Location())
	if err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{
		Fingerprint: fingerprint,
		Bookings:    len(fleet.Bookings),
		Vehicles:    len(fleet.Vehicles),
		Users:       len(fleet.Users),
	}

	latest, err := j.store.LatestSnapshot(ctx)
	switch {
	case err == nil && latest.Fingerprint == fingerprint:
		latest.ComputedAt = j.nowFn()
		if err := j.store.SaveSnapshot(ctx, latest); err != nil {
			return Outcome{}, fmt.Errorf("refresh snapshot: %w", err)
		}
		slog.Debug("[SnapshotJob] Inputs unchanged, refreshed snapshot", "fingerprint", fingerprint)
		return outcome, nil
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		return Outcome{}, fmt.Errorf("read latest snapshot: %w", err)
	}

	snap := rollup.Snapshot{
		Fingerprint:   fingerprint,
		ReferenceTime: ref,
		Result:        j.engine.Compute(fleet.Bookings, fleet.Vehicles, fleet.Users, ref),
		ComputedAt:    j.nowFn(),
	}
	if err := j.store.SaveSnapshot(ctx, snap); err != nil {
		return Outcome{}, fmt.Errorf("save snapshot: %w", err)
	}
	outcome.Recomputed = true

	if _, err := j.store.PruneSnapshots(ctx, j.params.Retention); err != nil {
		// The new snapshot is already saved; a failed prune is retried next run.
		slog.Warn("[SnapshotJob] Prune failed", "error", err)
	}

	slog.Info("[SnapshotJob] Snapshot computed",
		"fingerprint", fingerprint,
		"bookings", outcome.Bookings,
		"vehicles", outcome.Vehicles,
		"users", outcome.Users,
		"duration", j.nowFn().Sub(started),
	)
	return outcome, nil
}
