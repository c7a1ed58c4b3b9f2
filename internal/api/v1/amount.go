package v1

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a non-negative monetary value that may be missing or malformed.
// An invalid Amount contributes zero to every sum.
type Amount struct {
	Decimal decimal.Decimal
	Valid   bool
}

// NewAmount wraps d. Negative values are not valid amounts.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d, Valid: !d.IsNegative()}
}

// NewAmountFromInt is a convenience for whole currency units.
func NewAmountFromInt(v int64) Amount {
	return NewAmount(decimal.NewFromInt(v))
}

// ParseAmount converts a loosely typed value into an Amount.
// JSON numbers decode to float64 in Go, numeric strings are common in cached
// documents; everything else is invalid.
func ParseAmount(v interface{}) Amount {
	switch val := v.(type) {
	case json.Number:
		return parseAmountString(val.String())
	case float64:
		return NewAmount(decimal.NewFromFloat(val))
	case float32:
		return NewAmount(decimal.NewFromFloat32(val))
	case int:
		return NewAmount(decimal.NewFromInt(int64(val)))
	case int64:
		return NewAmount(decimal.NewFromInt(val))
	case int32:
		return NewAmount(decimal.NewFromInt(int64(val)))
	case string:
		return parseAmountString(val)
	case decimal.Decimal:
		return NewAmount(val)
	}
	return Amount{}
}

func parseAmountString(s string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}
	}
	return NewAmount(d)
}

// OrZero returns the amount, or zero when it is not valid.
func (a Amount) OrZero() decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return a.Decimal
}

// UnmarshalJSON never fails: unparseable input leaves the Amount invalid.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil
	}
	*a = ParseAmount(raw)
	return nil
}

// MarshalJSON emits the decimal as a string, or null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return a.Decimal.MarshalJSON()
}

// Scan implements sql.Scanner for NUMERIC columns.
func (a *Amount) Scan(src interface{}) error {
	if src == nil {
		*a = Amount{}
		return nil
	}
	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return err
	}
	*a = NewAmount(d)
	return nil
}

// Value implements driver.Valuer.
func (a Amount) Value() (driver.Value, error) {
	if !a.Valid {
		return nil, nil
	}
	return a.Decimal.String(), nil
}
