package rollup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBucketer_MonthlyWindows(t *testing.T) {
	b := NewBucketer(time.UTC)
	ref := time.Date(2026, 3, 31, 23, 59, 0, 0, time.UTC)

	windows := b.MonthlyWindows(ref, 12)
	require.Len(t, windows, 12)

	require.Equal(t, MonthWindow{Label: "Apr", Year: 2025, Month: time.April}, windows[0])
	require.Equal(t, MonthWindow{Label: "Feb", Year: 2026, Month: time.February}, windows[10])
	require.Equal(t, MonthWindow{Label: "Mar", Year: 2026, Month: time.March}, windows[11])

	// Month-end reference must not skip or repeat a month.
	seen := map[monthKey]bool{}
	for _, w := range windows {
		k := monthKey{year: w.Year, month: w.Month}
		require.False(t, seen[k], "duplicate window %v", k)
		seen[k] = true
	}
}

func TestBucketer_MonthlyWindowsLabelsRepeatAcrossYears(t *testing.T) {
	b := NewBucketer(time.UTC)
	windows := b.MonthlyWindows(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), 13)

	require.Equal(t, "Jan", windows[0].Label)
	require.Equal(t, 2025, windows[0].Year)
	require.Equal(t, "Jan", windows[12].Label)
	require.Equal(t, 2026, windows[12].Year)
}

func TestBucketer_DailyWindows(t *testing.T) {
	b := NewBucketer(time.UTC)
	ref := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	windows := b.DailyWindows(ref, 30)
	require.Len(t, windows, 30)

	require.Equal(t, "Feb 1", windows[0].Label)
	require.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), windows[0].Date)
	require.Equal(t, "Feb 28", windows[27].Label)
	require.Equal(t, "Mar 1", windows[28].Label)
	require.Equal(t, "Mar 2", windows[29].Label)
}

func TestBucketer_NonPositiveCount(t *testing.T) {
	b := NewBucketer(nil)
	require.Empty(t, b.MonthlyWindows(time.Now(), 0))
	require.Empty(t, b.DailyWindows(time.Now(), -3))
	require.Equal(t, time.UTC, b.Location())
}

func TestWindow_Contains(t *testing.T) {
	b := NewBucketer(time.UTC)
	ref := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	month := b.MonthlyWindows(ref, 1)[0]
	day := b.DailyWindows(ref, 1)[0]

	tests := []struct {
		name      string
		at        time.Time
		wantMonth bool
		wantDay   bool
	}{
		{name: "same instant", at: ref, wantMonth: true, wantDay: true},
		{name: "start of day", at: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), wantMonth: true, wantDay: true},
		{name: "last nanosecond of day", at: time.Date(2026, 3, 10, 23, 59, 59, 999999999, time.UTC), wantMonth: true, wantDay: true},
		{name: "next day", at: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), wantMonth: true},
		{name: "same month last year", at: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)},
		{name: "previous month", at: time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.wantMonth, month.contains(tc.at, time.UTC))
			require.Equal(t, tc.wantDay, day.contains(tc.at, time.UTC))

			_, inMonth := b.monthSlot(monthIndex([]MonthWindow{month}), tc.at)
			_, inDay := b.daySlot(dayIndex([]DayWindow{day}), tc.at)
			require.Equal(t, tc.wantMonth, inMonth)
			require.Equal(t, tc.wantDay, inDay)
		})
	}
}

func TestBucketer_TimezoneAppliedToEvents(t *testing.T) {
	loc := time.FixedZone("UTC+5:30", 5*3600+1800)
	b := NewBucketer(loc)

	// 20:00 UTC on Mar 31 is already Apr 1 at UTC+5:30.
	event := time.Date(2026, 3, 31, 20, 0, 0, 0, time.UTC)
	ref := time.Date(2026, 4, 1, 10, 0, 0, 0, loc)

	months := b.MonthlyWindows(ref, 2)
	require.False(t, months[0].contains(event, loc))
	require.True(t, months[1].contains(event, loc))

	days := b.DailyWindows(ref, 2)
	require.False(t, days[0].contains(event, loc))
	require.True(t, days[1].contains(event, loc))
}

func TestBucketer_SlotsAgreeWithContains(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*3600)
	b := NewBucketer(loc)
	ref := time.Date(2026, 1, 1, 3, 0, 0, 0, loc)

	months := b.MonthlyWindows(ref, MonthlyWindowCount)
	days := b.DailyWindows(ref, DailyWindowCount)
	mIdx := monthIndex(months)
	dIdx := dayIndex(days)

	// Seven-hour steps across a year boundary and past both ends of the windows.
	for at := ref.AddDate(-1, -1, 0); at.Before(ref.AddDate(0, 0, 2)); at = at.Add(7 * time.Hour) {
		slot, ok := b.monthSlot(mIdx, at)
		for i, w := range months {
			require.Equal(t, ok && slot == i, w.contains(at, loc), "month %s at %s", w.Label, at)
		}

		slot, ok = b.daySlot(dIdx, at)
		for i, w := range days {
			require.Equal(t, ok && slot == i, w.contains(at, loc), "day %s at %s", w.Label, at)
		}
	}
}
