package v1

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// timestampLayouts are tried in order. Zone-less layouts are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is an instant that may be missing or malformed in upstream data.
// Decoding never fails on a bad value: it leaves Valid false and the record
// simply matches no time bucket.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// Year bounds of an encodable time. time.Time.MarshalJSON rejects anything
// outside them.
const (
	minYear = 0
	maxYear = 9999
)

// maxEpochMillis keeps float64 → int64 conversion defined. Any value past it
// is far beyond maxYear anyway.
const maxEpochMillis = 1 << 60

// NewTimestamp wraps t. The zero time and times outside years 0-9999 are
// treated as missing.
func NewTimestamp(t time.Time) Timestamp {
	if t.IsZero() || !inYearRange(t) {
		return Timestamp{}
	}
	return Timestamp{Time: t, Valid: true}
}

// inYearRange checks the year both in t's own zone and in UTC, since either
// may be used when the value is encoded or stored.
func inYearRange(t time.Time) bool {
	for _, y := range []int{t.Year(), t.UTC().Year()} {
		if y < minYear || y > maxYear {
			return false
		}
	}
	return true
}

// ParseTimestamp parses s with the accepted layouts.
// Returns an invalid Timestamp when no layout matches.
func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(t)
		}
	}
	return Timestamp{}
}

// UnmarshalJSON accepts a string in one of the accepted layouts or a number of
// Unix epoch milliseconds. Any other token yields an invalid Timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	*t = Timestamp{}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case string:
		*t = ParseTimestamp(v)
	case float64:
		if math.IsNaN(v) || math.Abs(v) > maxEpochMillis {
			return nil
		}
		*t = NewTimestamp(time.UnixMilli(int64(v)).UTC())
	}
	return nil
}

// MarshalJSON emits RFC 3339 or null. A time outside years 0-9999 is null.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.Valid || !inYearRange(t.Time) {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time)
}

// Scan implements sql.Scanner. NULL maps to an invalid Timestamp.
func (t *Timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = Timestamp{}
	case time.Time:
		*t = NewTimestamp(v)
	case []byte:
		*t = ParseTimestamp(string(v))
	case string:
		*t = ParseTimestamp(v)
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	if !t.Valid || !inYearRange(t.Time) {
		return nil, nil
	}
	return t.Time, nil
}
