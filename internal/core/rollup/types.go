package rollup

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fold operators used by the aggregators.
const (
	OpCount = "count"
	OpSum   = "sum"
)

// Trailing window sizes and the top-vehicles cut-off.
const (
	MonthlyWindowCount = 12
	DailyWindowCount   = 30
	TopVehicleLimit    = 5
)

// MonthlyRevenue is one calendar month of booking revenue.
// Revenue counts bookings of every status.
type MonthlyRevenue struct {
	Label        string          `json:"label"`
	Year         int             `json:"year"`
	Month        time.Month      `json:"month"`
	Revenue      decimal.Decimal `json:"revenue"`
	BookingCount int             `json:"booking_count"`
}

// VehicleUtilization holds per-vehicle figures. Booking count and revenue
// only include confirmed bookings.
type VehicleUtilization struct {
	VehicleID             string          `json:"vehicle_id"`
	VehicleName           string          `json:"vehicle_name"`
	UtilizationPercent    int             `json:"utilization_percent"`
	ConfirmedBookingCount int             `json:"confirmed_booking_count"`
	Revenue               decimal.Decimal `json:"revenue"`
}

// DailyBookingCount is the number of bookings made on one calendar day.
type DailyBookingCount struct {
	Label        string    `json:"label"`
	Date         time.Time `json:"date"`
	BookingCount int       `json:"booking_count"`
}

// MonthlyUserGrowth is the number of users who joined in one calendar month.
type MonthlyUserGrowth struct {
	Label        string     `json:"label"`
	Year         int        `json:"year"`
	Month        time.Month `json:"month"`
	NewUserCount int        `json:"new_user_count"`
}

// CategoryCount is the number of catalog vehicles sharing a category.
type CategoryCount struct {
	Category     string `json:"category"`
	VehicleCount int    `json:"vehicle_count"`
}

// Result is one full rollup. It is derived data: every Compute call builds a
// fresh value and nothing retains a reference to it.
type Result struct {
	MonthlyRevenue       []MonthlyRevenue     `json:"monthly_revenue"`
	VehicleUtilization   []VehicleUtilization `json:"vehicle_utilization"`
	TopVehicles          []VehicleUtilization `json:"top_vehicles"`
	DailyBookingCounts   []DailyBookingCount  `json:"daily_booking_counts"`
	MonthlyUserGrowth    []MonthlyUserGrowth  `json:"monthly_user_growth"`
	CategoryDistribution []CategoryCount      `json:"category_distribution"`
}

// Snapshot is a persisted Result keyed by the fingerprint of its inputs.
type Snapshot struct {
	Fingerprint   string    // SHA-256 of inputs + reference day; memoisation key
	ReferenceTime time.Time // instant the rollup was anchored to
	ComputedAt    time.Time // wall clock when Compute ran
	Result        Result
}
