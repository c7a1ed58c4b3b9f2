package aggregation

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	v1 "github.com/aevon-lab/rental-analytics/internal/api/v1"
	"github.com/aevon-lab/rental-analytics/internal/core/rollup"
	"github.com/aevon-lab/rental-analytics/internal/core/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFleetReader for testing
type mockFleetReader struct {
	bookings []v1.Booking
	vehicles []v1.Vehicle
	users    []v1.User
	err      error
	calls    atomic.Int32
}

func (m *mockFleetReader) ListBookings(ctx context.Context) ([]v1.Booking, error) {
	m.calls.Add(1)
	return m.bookings, m.err
}

func (m *mockFleetReader) ListVehicles(ctx context.Context) ([]v1.Vehicle, error) {
	return m.vehicles, nil
}

func (m *mockFleetReader) ListUsers(ctx context.Context) ([]v1.User, error) {
	return m.users, nil
}

// failingSnapshotStore wraps a MemorySnapshotStore with injectable errors.
type failingSnapshotStore struct {
	*MemorySnapshotStore
	latestErr error
	saveErr   error
	pruneErr  error
	saves     int
}

func (f *failingSnapshotStore) SaveSnapshot(ctx context.Context, snap rollup.Snapshot) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	return f.MemorySnapshotStore.SaveSnapshot(ctx, snap)
}

func (f *failingSnapshotStore) LatestSnapshot(ctx context.Context) (rollup.Snapshot, error) {
	if f.latestErr != nil {
		return rollup.Snapshot{}, f.latestErr
	}
	return f.MemorySnapshotStore.LatestSnapshot(ctx)
}

func (f *failingSnapshotStore) PruneSnapshots(ctx context.Context, keep int) (int64, error) {
	if f.pruneErr != nil {
		return 0, f.pruneErr
	}
	return f.MemorySnapshotStore.PruneSnapshots(ctx, keep)
}

func sampleFleet() *mockFleetReader {
	booked := time.Date(2026, 6, 3, 9, 0, 0, 0, time.UTC)
	return &mockFleetReader{
		bookings: []v1.Booking{{
			ID: "b1", VehicleID: "v1", UserID: "u1",
			BookingDate: v1.NewTimestamp(booked),
			TotalAmount: v1.NewAmountFromInt(500),
			Status:      v1.StatusConfirmed,
		}},
		vehicles: []v1.Vehicle{{ID: "v1", Name: "Swift", Category: "sedan", Quantity: 4, Available: 2}},
		users:    []v1.User{{ID: "u1", Name: "Asha", JoinDate: v1.NewTimestamp(booked)}},
	}
}

func newTestJob(reader storage.FleetReader, store SnapshotStore, clock *time.Time) *SnapshotJob {
	job := NewSnapshotJob(reader, store, rollup.NewEngine(time.UTC), JobParameter{Retention: 2})
	job.nowFn = func() time.Time { return *clock }
	return job
}

func TestSnapshotJob_ComputesAndSaves(t *testing.T) {
	clock := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	store := NewMemorySnapshotStore()
	job := newTestJob(sampleFleet(), store, &clock)

	outcome, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, outcome.Recomputed)
	assert.Equal(t, 1, outcome.Bookings)
	assert.Equal(t, 1, outcome.Vehicles)
	assert.Equal(t, 1, outcome.Users)

	snap, err := store.LatestSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, outcome.Fingerprint, snap.Fingerprint)
	assert.True(t, snap.ReferenceTime.Equal(clock))
	require.Len(t, snap.Result.MonthlyRevenue, rollup.MonthlyWindowCount)
	assert.Equal(t, "500", snap.Result.MonthlyRevenue[11].Revenue.String())
	assert.Equal(t, 50, snap.Result.VehicleUtilization[0].UtilizationPercent)
}

func TestSnapshotJob_UnchangedInputsRefreshOnly(t *testing.T) {
	clock := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	store := &failingSnapshotStore{MemorySnapshotStore: NewMemorySnapshotStore()}
	job := newTestJob(sampleFleet(), store, &clock)

	first, err := job.Run(context.Background())
	require.NoError(t, err)

	clock = clock.Add(5 * time.Minute)
	second, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, second.Recomputed)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.Equal(t, 2, store.saves)

	snap, err := store.LatestSnapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.ComputedAt.Equal(clock), "computed_at refreshed")
	assert.True(t, snap.ReferenceTime.Equal(clock.Add(-5*time.Minute)), "reference time kept")
}

func TestSnapshotJob_NewDayRecomputes(t *testing.T) {
	clock := time.Date(2026, 6, 15, 23, 59, 0, 0, time.UTC)
	store := NewMemorySnapshotStore()
	job := newTestJob(sampleFleet(), store, &clock)

	first, err := job.Run(context.Background())
	require.NoError(t, err)

	clock = clock.Add(2 * time.Minute)
	second, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Recomputed)
	assert.NotEqual(t, first.Fingerprint, second.Fingerprint)
}

func TestSnapshotJob_ChangedInputsRecomputeAndPrune(t *testing.T) {
	clock := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	reader := sampleFleet()
	store := NewMemorySnapshotStore()
	job := newTestJob(reader, store, &clock)

	for i := 0; i < 4; i++ {
		reader.users = append(reader.users, v1.User{ID: string(rune('a' + i))})
		clock = clock.Add(time.Minute)
		outcome, err := job.Run(context.Background())
		require.NoError(t, err)
		require.True(t, outcome.Recomputed)
	}

	// Retention is 2.
	removed, err := store.PruneSnapshots(context.Background(), 2)
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Len(t, store.snapshots, 2)
}

func TestSnapshotJob_Errors(t *testing.T) {
	clock := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("load failure", func(t *testing.T) {
		reader := sampleFleet()
		reader.err = errors.New("db down")
		_, err := newTestJob(reader, NewMemorySnapshotStore(), &clock).Run(context.Background())
		require.ErrorContains(t, err, "load fleet: list bookings: db down")
	})

	t.Run("latest snapshot failure", func(t *testing.T) {
		store := &failingSnapshotStore{MemorySnapshotStore: NewMemorySnapshotStore(), latestErr: errors.New("timeout")}
		_, err := newTestJob(sampleFleet(), store, &clock).Run(context.Background())
		require.ErrorContains(t, err, "read latest snapshot")
		assert.Zero(t, store.saves)
	})

	t.Run("save failure", func(t *testing.T) {
		store := &failingSnapshotStore{MemorySnapshotStore: NewMemorySnapshotStore(), saveErr: errors.New("disk full")}
		_, err := newTestJob(sampleFleet(), store, &clock).Run(context.Background())
		require.ErrorContains(t, err, "save snapshot: disk full")
	})

	t.Run("prune failure is not fatal", func(t *testing.T) {
		store := &failingSnapshotStore{MemorySnapshotStore: NewMemorySnapshotStore(), pruneErr: errors.New("lock")}
		outcome, err := newTestJob(sampleFleet(), store, &clock).Run(context.Background())
		require.NoError(t, err)
		assert.True(t, outcome.Recomputed)
	})
}

func TestLoadFleet(t *testing.T) {
	fleet, err := LoadFleet(context.Background(), sampleFleet())
	require.NoError(t, err)
	assert.Len(t, fleet.Bookings, 1)
	assert.Len(t, fleet.Vehicles, 1)
	assert.Len(t, fleet.Users, 1)

	reader := sampleFleet()
	reader.err = errors.New("boom")
	_, err = LoadFleet(context.Background(), reader)
	require.ErrorContains(t, err, "list bookings: boom")
}

func TestJobParameter_Normalized(t *testing.T) {
	p := JobParameter{}.normalized()
	assert.Equal(t, DefaultJobParameter(), p)

	p = JobParameter{Retention: 3, LoadTimeout: time.Second}.normalized()
	assert.Equal(t, 3, p.Retention)
	assert.Equal(t, time.Second, p.LoadTimeout)
}
