package projection

import (
	"time"

	v1 "github.com/aevon-lab/rental-analytics/internal/api/v1"
	"github.com/aevon-lab/rental-analytics/internal/core/rollup"
)

// Where a response's rollup came from.
const (
	SourceSnapshot = "snapshot"
	SourceLive     = "live"
)

// AnalyticsRequest represents the query parameters for fetching the rollup.
type AnalyticsRequest struct {
	// At anchors the rollup. Zero means now, which may be served from the
	// latest snapshot.
	At time.Time `form:"at" time_format:"2006-01-02T15:04:05Z07:00"`
}

// AnalyticsResponse represents the full rollup with its provenance.
type AnalyticsResponse struct {
	ReferenceTime    time.Time      `json:"reference_time"`
	Source           string         `json:"source"`
	Fingerprint      string         `json:"fingerprint"`
	ComputedAt       time.Time      `json:"computed_at"`
	StalenessSeconds int            `json:"staleness_seconds"`
	Result           rollup.Result  `json:"result"`
	Summary          rollup.Summary `json:"summary"`
}

type SummaryResponse struct {
	ReferenceTime time.Time      `json:"reference_time"`
	Source        string         `json:"source"`
	Summary       rollup.Summary `json:"summary"`
}

type UserBookingsResponse struct {
	UserID   string       `json:"user_id"`
	Bookings []v1.Booking `json:"bookings"`
}
