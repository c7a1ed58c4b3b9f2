package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/aevon-lab/rental-analytics/internal/core/rollup"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Report output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatCSV   = "csv"
)

var Formats = []string{FormatTable, FormatJSON, FormatYAML, FormatCSV}

func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Report is one rollup with the context it was computed in.
type Report struct {
	ReferenceTime time.Time      `json:"reference_time"`
	Timezone      string         `json:"timezone"`
	Fingerprint   string         `json:"fingerprint"`
	Result        rollup.Result  `json:"result"`
	Summary       rollup.Summary `json:"summary"`
}

// WriteReport renders rep to w in the given format.
func WriteReport(w io.Writer, format string, rep Report) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatYAML:
		return writeYAML(w, rep)
	case FormatCSV:
		return writeCSV(w, rep)
	case FormatTable:
		return writeTable(w, rep)
	}
	return fmt.Errorf("unsupported format %q", format)
}

// writeYAML goes through the JSON form so decimals and months are rendered
// the same way as in the JSON report.
func writeYAML(w io.Writer, rep Report) error {
	data, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

var csvHeader = []string{"section", "key", "label", "amount", "count", "percent"}

// writeCSV flattens every series into one long table keyed by section.
func writeCSV(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)
	r := rep.Result

	rows := [][]string{csvHeader}
	for _, m := range r.MonthlyRevenue {
		rows = append(rows, []string{"monthly_revenue", monthKey(m.Year, m.Month), m.Label, m.Revenue.String(), strconv.Itoa(m.BookingCount), ""})
	}
	for _, u := range r.VehicleUtilization {
		rows = append(rows, utilizationRow("vehicle_utilization", u))
	}
	for _, u := range r.TopVehicles {
		rows = append(rows, utilizationRow("top_vehicles", u))
	}
	for _, d := range r.DailyBookingCounts {
		rows = append(rows, []string{"daily_booking_counts", d.Date.Format("2006-01-02"), d.Label, "", strconv.Itoa(d.BookingCount), ""})
	}
	for _, g := range r.MonthlyUserGrowth {
		rows = append(rows, []string{"monthly_user_growth", monthKey(g.Year, g.Month), g.Label, "", strconv.Itoa(g.NewUserCount), ""})
	}
	for _, c := range r.CategoryDistribution {
		rows = append(rows, []string{"category_distribution", c.Category, c.Category, "", strconv.Itoa(c.VehicleCount), ""})
	}

	s := rep.Summary
	rows = append(rows,
		[]string{"summary", "current_month", "", s.CurrentMonthRevenue.String(), strconv.Itoa(s.CurrentMonthBookings), ""},
		[]string{"summary", "previous_month", "", s.PreviousMonthRevenue.String(), "", ""},
		[]string{"summary", "revenue_growth", "", "", "", s.RevenueGrowthPercent.String()},
		[]string{"summary", "average_utilization", "", "", "", strconv.Itoa(s.AverageUtilizationPercent)},
		[]string{"summary", "top_performer", s.TopPerformer, s.TopPerformerRevenue.String(), "", ""},
	)

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func utilizationRow(section string, u rollup.VehicleUtilization) []string {
	return []string{section, u.VehicleID, u.VehicleName, u.Revenue.String(), strconv.Itoa(u.ConfirmedBookingCount), strconv.Itoa(u.UtilizationPercent)}
}

func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// writeTable renders boxed pterm tables without colour so the output is the
// same on a terminal and in a file.
func writeTable(w io.Writer, rep Report) error {
	r := rep.Result
	s := rep.Summary

	sections := []struct {
		title string
		data  pterm.TableData
	}{
		{
			title: "Summary",
			data: pterm.TableData{
				{"Reference time", rep.ReferenceTime.Format(time.RFC3339) + " (" + rep.Timezone + ")"},
				{"This month", s.CurrentMonthRevenue.StringFixed(2) + " from " + strconv.Itoa(s.CurrentMonthBookings) + " bookings"},
				{"Last month", s.PreviousMonthRevenue.StringFixed(2)},
				{"Growth", s.RevenueGrowthPercent.String() + "%"},
				{"Average utilization", strconv.Itoa(s.AverageUtilizationPercent) + "%"},
				{"Top performer", topPerformer(s)},
			},
		},
		{title: "Monthly revenue", data: monthlyRevenueTable(r.MonthlyRevenue)},
		{title: "Top vehicles", data: utilizationTable(r.TopVehicles)},
		{title: "Vehicle utilization", data: utilizationTable(r.VehicleUtilization)},
		{title: "Daily bookings", data: dailyTable(r.DailyBookingCounts)},
		{title: "User growth", data: userGrowthTable(r.MonthlyUserGrowth)},
		{title: "Categories", data: categoryTable(r.CategoryDistribution)},
	}

	for i, sec := range sections {
		table := pterm.DefaultTable.WithBoxed().WithData(sec.data)
		if i > 0 {
			table = table.WithHasHeader()
		}
		rendered, err := table.Srender()
		if err != nil {
			return fmt.Errorf("render %s: %w", sec.title, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n", sec.title, pterm.RemoveColorFromString(rendered)); err != nil {
			return err
		}
	}
	return nil
}

func topPerformer(s rollup.Summary) string {
	if s.TopPerformer == "" {
		return "-"
	}
	return s.TopPerformer + " (" + s.TopPerformerRevenue.StringFixed(2) + ")"
}

func monthlyRevenueTable(months []rollup.MonthlyRevenue) pterm.TableData {
	data := pterm.TableData{{"Month", "Revenue", "Bookings"}}
	for _, m := range months {
		data = append(data, []string{fmt.Sprintf("%s %d", m.Label, m.Year), m.Revenue.StringFixed(2), strconv.Itoa(m.BookingCount)})
	}
	return data
}

func utilizationTable(rows []rollup.VehicleUtilization) pterm.TableData {
	data := pterm.TableData{{"Vehicle", "Utilization", "Confirmed", "Revenue"}}
	for _, u := range rows {
		data = append(data, []string{u.VehicleName, strconv.Itoa(u.UtilizationPercent) + "%", strconv.Itoa(u.ConfirmedBookingCount), u.Revenue.StringFixed(2)})
	}
	return data
}

func dailyTable(days []rollup.DailyBookingCount) pterm.TableData {
	data := pterm.TableData{{"Day", "Bookings"}}
	for _, d := range days {
		data = append(data, []string{d.Label, strconv.Itoa(d.BookingCount)})
	}
	return data
}

func userGrowthTable(months []rollup.MonthlyUserGrowth) pterm.TableData {
	data := pterm.TableData{{"Month", "New users"}}
	for _, g := range months {
		data = append(data, []string{fmt.Sprintf("%s %d", g.Label, g.Year), strconv.Itoa(g.NewUserCount)})
	}
	return data
}

func categoryTable(cats []rollup.CategoryCount) pterm.TableData {
	data := pterm.TableData{{"Category", "Vehicles"}}
	for _, c := range cats {
		data = append(data, []string{c.Category, strconv.Itoa(c.VehicleCount)})
	}
	return data
}
