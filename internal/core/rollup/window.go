package rollup

import (
	"time"
)

// MonthWindow is one calendar month. Label is display-only ("Jan") and
// repeats across years; Year and Month are used for matching.
type MonthWindow struct {
	Label string
	Year  int
	Month time.Month
}

func (w MonthWindow) key() monthKey {
	return monthKey{year: w.Year, month: w.Month}
}

// contains reports whether t falls in the window once converted to loc.
func (w MonthWindow) contains(t time.Time, loc *time.Location) bool {
	return monthKeyOf(t, loc) == w.key()
}

// DayWindow is one calendar day. Date is midnight of that day in the
// bucketer's location.
type DayWindow struct {
	Label string
	Date  time.Time
}

// key is the window's own calendar date. Date already sits in the
// bucketer's location.
func (w DayWindow) key() dayKey {
	return dayKeyOf(w.Date, w.Date.Location())
}

// contains reports whether t falls on the window's calendar date in loc.
func (w DayWindow) contains(t time.Time, loc *time.Location) bool {
	return dayKeyOf(t, loc) == w.key()
}

type monthKey struct {
	year  int
	month time.Month
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func monthKeyOf(t time.Time, loc *time.Location) monthKey {
	lt := t.In(loc)
	return monthKey{year: lt.Year(), month: lt.Month()}
}

func dayKeyOf(t time.Time, loc *time.Location) dayKey {
	y, m, d := t.In(loc).Date()
	return dayKey{year: y, month: m, day: d}
}

// Bucketer generates calendar-aligned trailing windows. Window generation and
// event matching both use the same location, so an instant lands in at most
// one bucket.
type Bucketer struct {
	loc *time.Location
}

// NewBucketer returns a Bucketer for loc. A nil loc means UTC.
func NewBucketer(loc *time.Location) *Bucketer {
	if loc == nil {
		loc = time.UTC
	}
	return &Bucketer{loc: loc}
}

// Location returns the bucketing timezone.
func (b *Bucketer) Location() *time.Location {
	return b.loc
}

// MonthlyWindows returns count months ending with the month of ref, oldest first.
func (b *Bucketer) MonthlyWindows(ref time.Time, count int) []MonthWindow {
	if count <= 0 {
		return []MonthWindow{}
	}

	lr := ref.In(b.loc)
	// Anchor on the 1st so AddDate never normalises Mar 31 - 1 month into March.
	first := time.Date(lr.Year(), lr.Month(), 1, 0, 0, 0, 0, b.loc)

	windows := make([]MonthWindow, 0, count)
	for i := count - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		windows = append(windows, MonthWindow{
			Label: m.Format("Jan"),
			Year:  m.Year(),
			Month: m.Month(),
		})
	}
	return windows
}

// DailyWindows returns count days ending with the day of ref, oldest first.
func (b *Bucketer) DailyWindows(ref time.Time, count int) []DayWindow {
	if count <= 0 {
		return []DayWindow{}
	}

	lr := ref.In(b.loc)
	y, m, d := lr.Date()

	windows := make([]DayWindow, 0, count)
	for i := count - 1; i >= 0; i-- {
		day := time.Date(y, m, d-i, 0, 0, 0, 0, b.loc)
		windows = append(windows, DayWindow{
			Label: day.Format("Jan 2"),
			Date:  day,
		})
	}
	return windows
}

// monthIndex maps each window to its slot for single-pass matching.
func monthIndex(windows []MonthWindow) map[monthKey]int {
	idx := make(map[monthKey]int, len(windows))
	for i, w := range windows {
		idx[w.key()] = i
	}
	return idx
}

func dayIndex(windows []DayWindow) map[dayKey]int {
	idx := make(map[dayKey]int, len(windows))
	for i, w := range windows {
		idx[w.key()] = i
	}
	return idx
}

// monthSlot returns the window slot for t, or false when t is outside every
// window. Slot i matches exactly when windows[i].contains(t, b.loc).
func (b *Bucketer) monthSlot(idx map[monthKey]int, t time.Time) (int, bool) {
	i, ok := idx[monthKeyOf(t, b.loc)]
	return i, ok
}

func (b *Bucketer) daySlot(idx map[dayKey]int, t time.Time) (int, bool) {
	i, ok := idx[dayKeyOf(t, b.loc)]
	return i, ok
}
