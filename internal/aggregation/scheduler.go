package aggregation

import (
	"context"
	"log/slog"
	"time"
)

const shutdownRunTimeout = 30 * time.Second

// Scheduler runs the snapshot job on a periodic interval.
// Runs are sequential: a tick that fires while a run is in progress is dropped
// by the ticker rather than queued.
type Scheduler struct {
	interval time.Duration
	job      *SnapshotJob
}

// NewScheduler creates a ticker scheduler for job.
func NewScheduler(interval time.Duration, job *SnapshotJob) *Scheduler {
	return &Scheduler{
		interval: interval,
		job:      job,
	}
}

// Start runs the job once immediately and then on every tick.
// Runs until context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[Scheduler] Starting rollup snapshot scheduler",
		"interval", s.interval,
		"retention", s.job.params.Retention,
		"timezone", s.job.engine.Location().String(),
	)

	s.runOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			slog.Info("[Scheduler] Stopping (context cancelled)")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownRunTimeout)
			defer cancel()

			slog.Info("[Scheduler] Running final snapshot before shutdown...")
			s.runOnce(shutdownCtx)
			slog.Info("[Scheduler] Final snapshot complete")

			return nil
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if _, err := s.job.Run(ctx); err != nil {
		slog.Error("[Scheduler] Snapshot run failed", "error", err)
	}
}
