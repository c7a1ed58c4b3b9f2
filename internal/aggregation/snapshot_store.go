package aggregation

import (
	"context"
	"sort"
	"sync"

	"github.com/aevon-lab/rental-analytics/internal/core/rollup"
	"github.com/aevon-lab/rental-analytics/internal/core/storage"
)

// SnapshotStore is the interface for durable rollup snapshot persistence.
//
// Snapshots are keyed by their input fingerprint: saving a snapshot whose
// fingerprint already exists replaces it, which is how an unchanged rollup is
// marked fresh again without recomputing.
type SnapshotStore interface {
	// SaveSnapshot upserts snap keyed by snap.Fingerprint.
	SaveSnapshot(ctx context.Context, snap rollup.Snapshot) error

	// LatestSnapshot returns the snapshot with the newest ComputedAt.
	// Returns storage.ErrNotFound if nothing has been saved yet.
	LatestSnapshot(ctx context.Context) (rollup.Snapshot, error)

	// PruneSnapshots keeps the newest keep snapshots (at least one) and
	// returns how many were removed.
	PruneSnapshots(ctx context.Context, keep int) (int64, error)
}

// MemorySnapshotStore keeps snapshots in process memory. It backs the
// document sources, which have no SQL database to write to.
type MemorySnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]rollup.Snapshot
}

var _ SnapshotStore = (*MemorySnapshotStore)(nil)

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{snapshots: make(map[string]rollup.Snapshot)}
}

func (m *MemorySnapshotStore) SaveSnapshot(_ context.Context, snap rollup.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[snap.Fingerprint] = snap
	return nil
}

func (m *MemorySnapshotStore) LatestSnapshot(_ context.Context) (rollup.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ordered := m.newestFirst()
	if len(ordered) == 0 {
		return rollup.Snapshot{}, storage.ErrNotFound
	}
	return ordered[0], nil
}

func (m *MemorySnapshotStore) PruneSnapshots(_ context.Context, keep int) (int64, error) {
	if keep < 1 {
		keep = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ordered := m.newestFirst()
	var removed int64
	for _, snap := range ordered[min(keep, len(ordered)):] {
		delete(m.snapshots, snap.Fingerprint)
		removed++
	}
	return removed, nil
}

// newestFirst must be called with mu held.
func (m *MemorySnapshotStore) newestFirst() []rollup.Snapshot {
	out := make([]rollup.Snapshot, 0, len(m.snapshots))
	for _, snap := range m.snapshots {
		out = append(out, snap)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ComputedAt.Equal(out[j].ComputedAt) {
			return out[i].ComputedAt.After(out[j].ComputedAt)
		}
		return out[i].Fingerprint < out[j].Fingerprint
	})
	return out
}
