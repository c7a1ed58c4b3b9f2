package aggregation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsInitiallyAndOnShutdown(t *testing.T) {
	clock := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	reader := sampleFleet()
	job := newTestJob(reader, NewMemorySnapshotStore(), &clock)

	ctx, cancel := context.WithCancel(context.Background())
	scheduler := NewScheduler(time.Hour, job)

	done := make(chan error, 1)
	go func() { done <- scheduler.Start(ctx) }()

	require.Eventually(t, func() bool { return reader.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.Equal(t, int32(2), reader.calls.Load(), "initial run plus final run")
}

func TestScheduler_Ticks(t *testing.T) {
	clock := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	reader := sampleFleet()
	job := newTestJob(reader, NewMemorySnapshotStore(), &clock)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = NewScheduler(10*time.Millisecond, job).Start(ctx) }()

	require.Eventually(t, func() bool { return reader.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
}
