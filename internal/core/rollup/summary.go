package rollup

import (
	"github.com/shopspring/decimal"
)

// Summary holds the headline figures shown above the charts.
type Summary struct {
	CurrentMonthRevenue       decimal.Decimal `json:"current_month_revenue"`
	CurrentMonthBookings      int             `json:"current_month_bookings"`
	PreviousMonthRevenue      decimal.Decimal `json:"previous_month_revenue"`
	RevenueGrowthPercent      decimal.Decimal `json:"revenue_growth_percent"`
	AverageUtilizationPercent int             `json:"average_utilization_percent"`
	TopPerformer              string          `json:"top_performer"`
	TopPerformerRevenue       decimal.Decimal `json:"top_performer_revenue"`
}

var hundred = decimal.NewFromInt(100)

// Summarize derives the headline figures from r.
func Summarize(r Result) Summary {
	s := Summary{
		CurrentMonthRevenue:  decimal.Zero,
		PreviousMonthRevenue: decimal.Zero,
		RevenueGrowthPercent: MonthOverMonthGrowth(r.MonthlyRevenue),
		TopPerformerRevenue:  decimal.Zero,
	}

	if n := len(r.MonthlyRevenue); n > 0 {
		s.CurrentMonthRevenue = r.MonthlyRevenue[n-1].Revenue
		s.CurrentMonthBookings = r.MonthlyRevenue[n-1].BookingCount
		if n > 1 {
			s.PreviousMonthRevenue = r.MonthlyRevenue[n-2].Revenue
		}
	}

	if len(r.VehicleUtilization) > 0 {
		total := decimal.Zero
		for _, u := range r.VehicleUtilization {
			total = total.Add(decimal.NewFromInt(int64(u.UtilizationPercent)))
		}
		mean := total.Div(decimal.NewFromInt(int64(len(r.VehicleUtilization))))
		s.AverageUtilizationPercent = int(mean.Round(0).IntPart())
	}

	if len(r.TopVehicles) > 0 {
		s.TopPerformer = r.TopVehicles[0].VehicleName
		s.TopPerformerRevenue = r.TopVehicles[0].Revenue
	}
	return s
}

// MonthOverMonthGrowth compares the last two months of revenue as a percentage
// rounded to one decimal place. It is zero when there are fewer than two
// months or the earlier month had no revenue.
func MonthOverMonthGrowth(monthly []MonthlyRevenue) decimal.Decimal {
	n := len(monthly)
	if n < 2 {
		return decimal.Zero
	}
	prev, cur := monthly[n-2].Revenue, monthly[n-1].Revenue
	if prev.IsZero() {
		return decimal.Zero
	}
	return cur.Sub(prev).Div(prev).Mul(hundred).Round(1)
}
