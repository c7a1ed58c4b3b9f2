package projection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aevon-lab/rental-analytics/internal/aggregation"
	"github.com/aevon-lab/rental-analytics/internal/core/rollup"
	"github.com/aevon-lab/rental-analytics/internal/core/storage"
)

const (
	defaultSnapshotMaxAge = 15 * time.Minute
	defaultLoadTimeout    = 30 * time.Second
)

var (
	// ErrInvalidQuery marks request validation errors that should return HTTP 400.
	ErrInvalidQuery = errors.New("invalid analytics query")
)

// Options tunes the read path.
type Options struct {
	// SnapshotMaxAge is how old a snapshot may be and still be served.
	SnapshotMaxAge time.Duration
	LoadTimeout    time.Duration
}

// Service implements the projection/query layer.
// It serves the latest snapshot when one is fresh and falls back to
// computing the rollup live from the fleet reader.
type Service struct {
	reader    storage.FleetReader
	snapshots aggregation.SnapshotStore
	engine    *rollup.Engine
	opts      Options
	nowFn     func() time.Time
}

// NewService creates a new projection service. snapshots may be nil, in which
// case every request is computed live.
func NewService(
	reader storage.FleetReader,
	snapshots aggregation.SnapshotStore,
	engine *rollup.Engine,
	opts Options,
) *Service {
	if opts.SnapshotMaxAge <= 0 {
		opts.SnapshotMaxAge = defaultSnapshotMaxAge
	}
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = defaultLoadTimeout
	}

	return &Service{
		reader:    reader,
		snapshots: snapshots,
		engine:    engine,
		opts:      opts,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// QueryAnalytics returns the rollup anchored at req.At.
func (s *Service) QueryAnalytics(ctx context.Context, req AnalyticsRequest) (*AnalyticsResponse, error) {
	now := s.nowFn()

	if !req.At.IsZero() && req.At.After(now) {
		return nil, invalidQueryf("at %s is in the future", req.At.Format(time.RFC3339))
	}

	if req.At.IsZero() {
		if resp, ok := s.fromSnapshot(ctx, now); ok {
			return resp, nil
		}
		req.At = now
	}

	return s.computeLive(ctx, req.At.In(s.engine.Location()), now)
}

// QuerySummary returns only the headline figures of QueryAnalytics.
func (s *Service) QuerySummary(ctx context.Context, req AnalyticsRequest) (*SummaryResponse, error) {
	resp, err := s.QueryAnalytics(ctx, req)
	if err != nil {
		return nil, err
	}
	return &SummaryResponse{
		ReferenceTime: resp.ReferenceTime,
		Source:        resp.Source,
		Summary:       resp.Summary,
	}, nil
}

// QueryUserBookings lists userID's bookings in storage order.
func (s *Service) QueryUserBookings(ctx context.Context, userID string) (*UserBookingsResponse, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, invalidQueryf("user_id is required")
	}

	bookings, err := storage.BookingsForUser(ctx, s.reader, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings for user: %w", err)
	}
	return &UserBookingsResponse{UserID: userID, Bookings: bookings}, nil
}

// fromSnapshot returns the latest snapshot if it was taken today (in the
// engine's timezone) and is younger than SnapshotMaxAge. Snapshot store
// failures are logged and treated as a miss.
func (s *Service) fromSnapshot(ctx context.Context, now time.Time) (*AnalyticsResponse, bool) {
	if s.snapshots == nil {
		return nil, false
	}

	snap, err := s.snapshots.LatestSnapshot(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Warn("[Projection] Snapshot lookup failed, computing live", "error", err)
		}
		return nil, false
	}

	age := now.Sub(snap.ComputedAt)
	if age > s.opts.SnapshotMaxAge || !sameDay(snap.ReferenceTime, now, s.engine.Location()) {
		slog.Debug("[Projection] Snapshot stale, computing live",
			"fingerprint", snap.Fingerprint,
			"age", age,
		)
		return nil, false
	}

	return &AnalyticsResponse{
		ReferenceTime:    snap.ReferenceTime,
		Source:           SourceSnapshot,
		Fingerprint:      snap.Fingerprint,
		ComputedAt:       snap.ComputedAt,
		StalenessSeconds: max(int(age.Seconds()), 0),
		Result:           snap.Result,
		Summary:          rollup.Summarize(snap.Result),
	}, true
}

func (s *Service) computeLive(ctx context.Context, ref, now time.Time) (*AnalyticsResponse, error) {
	loadCtx, cancel := context.WithTimeout(ctx, s.opts.LoadTimeout)
	defer cancel()

	fleet, err := aggregation.LoadFleet(loadCtx, s.reader)
	if err != nil {
		return nil, fmt.Errorf("load fleet: %w", err)
	}

	fingerprint, err := rollup.Fingerprint(fleet.Bookings, fleet.Vehicles, fleet.Users, ref, s.engine.Location())
	if err != nil {
		return nil, err
	}

	result := s.engine.Compute(fleet.Bookings, fleet.Vehicles, fleet.Users, ref)
	return &AnalyticsResponse{
		ReferenceTime: ref,
		Source:        SourceLive,
		Fingerprint:   fingerprint,
		ComputedAt:    now,
		Result:        result,
		Summary:       rollup.Summarize(result),
	}, nil
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
