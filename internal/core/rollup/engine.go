package rollup

import (
	"time"

	v1 "github.com/aevon-lab/rental-analytics/internal/api/v1"
)

// Engine computes rollups over already-loaded collections.
// It holds no state between calls and is safe for concurrent use.
type Engine struct {
	bucketer *Bucketer
	nowFn    func() time.Time
}

// NewEngine returns an Engine bucketing in loc (nil means UTC).
func NewEngine(loc *time.Location) *Engine {
	return &Engine{
		bucketer: NewBucketer(loc),
		nowFn:    time.Now,
	}
}

// Location returns the engine's bucketing timezone.
func (e *Engine) Location() *time.Location {
	return e.bucketer.Location()
}

// ReferenceTime resolves ref, substituting the engine clock for the zero time.
func (e *Engine) ReferenceTime(ref time.Time) time.Time {
	if ref.IsZero() {
		return e.nowFn()
	}
	return ref
}

// Compute runs the six aggregators anchored at ref. A zero ref means now.
// The same inputs and ref always produce an identical Result.
func (e *Engine) Compute(bookings []v1.Booking, vehicles []v1.Vehicle, users []v1.User, ref time.Time) Result {
	ref = e.ReferenceTime(ref)

	util := UtilizationByVehicle(vehicles, bookings)

	return Result{
		MonthlyRevenue:       RevenueByMonth(e.bucketer, bookings, ref),
		VehicleUtilization:   util,
		TopVehicles:          TopVehicles(util),
		DailyBookingCounts:   DailyBookings(e.bucketer, bookings, ref),
		MonthlyUserGrowth:    UserGrowth(e.bucketer, users, ref),
		CategoryDistribution: CategoryDistribution(vehicles),
	}
}
