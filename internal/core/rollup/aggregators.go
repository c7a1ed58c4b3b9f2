package rollup

import (
	"sort"
	"time"

	v1 "github.com/aevon-lab/rental-analytics/internal/api/v1"
	"github.com/shopspring/decimal"
)

// RevenueByMonth sums TotalAmount and counts bookings for each of the trailing
// MonthlyWindowCount months. Every status counts. Bookings without a valid
// BookingDate match no month; an invalid amount adds zero but still counts.
func RevenueByMonth(b *Bucketer, bookings []v1.Booking, ref time.Time) []MonthlyRevenue {
	windows := b.MonthlyWindows(ref, MonthlyWindowCount)
	idx := monthIndex(windows)

	sums := make([]*accumulator, len(windows))
	counts := make([]*accumulator, len(windows))
	for i := range windows {
		sums[i] = newAccumulator(OpSum)
		counts[i] = newAccumulator(OpCount)
	}

	for _, bk := range bookings {
		if !bk.BookingDate.Valid {
			continue
		}
		slot, ok := b.monthSlot(idx, bk.BookingDate.Time)
		if !ok {
			continue
		}
		sums[slot].add(bk.TotalAmount.OrZero())
		counts[slot].add(decimal.Zero)
	}

	out := make([]MonthlyRevenue, len(windows))
	for i, w := range windows {
		out[i] = MonthlyRevenue{
			Label:        w.Label,
			Year:         w.Year,
			Month:        w.Month,
			Revenue:      sums[i].decimal(),
			BookingCount: counts[i].count(),
		}
	}
	return out
}

// UtilizationByVehicle returns one entry per vehicle, in input order.
// Booking count and revenue come from confirmed bookings with a matching
// VehicleID; utilization comes from the vehicle's own inventory.
func UtilizationByVehicle(vehicles []v1.Vehicle, bookings []v1.Booking) []VehicleUtilization {
	counts := make(map[string]*accumulator)
	revenue := make(map[string]*accumulator)
	for _, bk := range bookings {
		if bk.Status != v1.StatusConfirmed {
			continue
		}
		if _, ok := counts[bk.VehicleID]; !ok {
			counts[bk.VehicleID] = newAccumulator(OpCount)
			revenue[bk.VehicleID] = newAccumulator(OpSum)
		}
		counts[bk.VehicleID].add(decimal.Zero)
		revenue[bk.VehicleID].add(bk.TotalAmount.OrZero())
	}

	out := make([]VehicleUtilization, 0, len(vehicles))
	for _, v := range vehicles {
		u := VehicleUtilization{
			VehicleID:          v.ID,
			VehicleName:        v.Name,
			UtilizationPercent: UtilizationPercent(v.Quantity, v.Available),
			Revenue:            decimal.Zero,
		}
		if c, ok := counts[v.ID]; ok {
			u.ConfirmedBookingCount = c.count()
			u.Revenue = revenue[v.ID].decimal()
		}
		out = append(out, u)
	}
	return out
}

// UtilizationPercent is round(100 × (quantity − available) / quantity), and 0
// when quantity is not positive. Available is clamped to [0, quantity] so the
// result always lies in [0, 100].
func UtilizationPercent(quantity, available int) int {
	if quantity <= 0 {
		return 0
	}
	if available < 0 {
		available = 0
	}
	if available > quantity {
		available = quantity
	}
	rented := decimal.NewFromInt(int64(quantity - available)).Mul(decimal.NewFromInt(100))
	return int(rented.Div(decimal.NewFromInt(int64(quantity))).Round(0).IntPart())
}

// TopVehicles returns at most TopVehicleLimit entries sorted by revenue,
// highest first. Equal revenues keep their input order. util is not modified.
func TopVehicles(util []VehicleUtilization) []VehicleUtilization {
	sorted := make([]VehicleUtilization, len(util))
	copy(sorted, util)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Revenue.GreaterThan(sorted[j].Revenue)
	})
	if len(sorted) > TopVehicleLimit {
		sorted = sorted[:TopVehicleLimit]
	}
	return sorted
}

// DailyBookings counts bookings made on each of the trailing DailyWindowCount days.
func DailyBookings(b *Bucketer, bookings []v1.Booking, ref time.Time) []DailyBookingCount {
	windows := b.DailyWindows(ref, DailyWindowCount)
	idx := dayIndex(windows)

	counts := make([]*accumulator, len(windows))
	for i := range windows {
		counts[i] = newAccumulator(OpCount)
	}

	for _, bk := range bookings {
		if !bk.BookingDate.Valid {
			continue
		}
		if slot, ok := b.daySlot(idx, bk.BookingDate.Time); ok {
			counts[slot].add(decimal.Zero)
		}
	}

	out := make([]DailyBookingCount, len(windows))
	for i, w := range windows {
		out[i] = DailyBookingCount{Label: w.Label, Date: w.Date, BookingCount: counts[i].count()}
	}
	return out
}

// UserGrowth counts users by join month over the trailing MonthlyWindowCount months.
func UserGrowth(b *Bucketer, users []v1.User, ref time.Time) []MonthlyUserGrowth {
	windows := b.MonthlyWindows(ref, MonthlyWindowCount)
	idx := monthIndex(windows)

	counts := make([]*accumulator, len(windows))
	for i := range windows {
		counts[i] = newAccumulator(OpCount)
	}

	for _, u := range users {
		if !u.JoinDate.Valid {
			continue
		}
		if slot, ok := b.monthSlot(idx, u.JoinDate.Time); ok {
			counts[slot].add(decimal.Zero)
		}
	}

	out := make([]MonthlyUserGrowth, len(windows))
	for i, w := range windows {
		out[i] = MonthlyUserGrowth{
			Label:        w.Label,
			Year:         w.Year,
			Month:        w.Month,
			NewUserCount: counts[i].count(),
		}
	}
	return out
}

// CategoryDistribution groups vehicles by their Category string, compared
// verbatim. Entries appear in first-seen order.
func CategoryDistribution(vehicles []v1.Vehicle) []CategoryCount {
	out := make([]CategoryCount, 0)
	pos := make(map[string]int)
	for _, v := range vehicles {
		i, ok := pos[v.Category]
		if !ok {
			i = len(out)
			pos[v.Category] = i
			out = append(out, CategoryCount{Category: v.Category})
		}
		out[i].VehicleCount++
	}
	return out
}
