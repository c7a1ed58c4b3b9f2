package documents

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	v1 "github.com/aevon-lab/rental-analytics/internal/api/v1"
	"github.com/shopspring/decimal"
)

// flexID accepts a JSON string or number. Cached documents written by older
// clients use numeric ids (Date.now()) while newer ones use strings.
type flexID string

func (id *flexID) UnmarshalJSON(data []byte) error {
	*id = ""

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case string:
		*id = flexID(v)
	case json.Number:
		*id = flexID(v.String())
	}
	return nil
}

// flexInt accepts a JSON number or numeric string. Anything else reads as 0.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	*n = 0

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil
	}

	var s string
	switch v := raw.(type) {
	case json.Number:
		s = v.String()
	case string:
		s = strings.TrimSpace(v)
	default:
		return nil
	}
	if i, err := strconv.Atoi(s); err == nil {
		*n = flexInt(i)
		return nil
	}
	if d, err := decimal.NewFromString(s); err == nil {
		*n = flexInt(d.IntPart())
	}
	return nil
}

// legacyBooking is the camelCase booking shape kept under the "bookings" key.
type legacyBooking struct {
	ID          flexID       `json:"id"`
	CarID       flexID       `json:"carId"`
	UserID      flexID       `json:"userId"`
	BookingDate v1.Timestamp `json:"bookingDate"`
	StartDate   v1.Timestamp `json:"startDate"`
	EndDate     v1.Timestamp `json:"endDate"`
	TotalAmount v1.Amount    `json:"totalAmount"`
	Status      string       `json:"status"`
}

func (b legacyBooking) toRecord() v1.Booking {
	return v1.Booking{
		ID:          string(b.ID),
		VehicleID:   string(b.CarID),
		UserID:      string(b.UserID),
		BookingDate: b.BookingDate,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		TotalAmount: b.TotalAmount,
		Status:      v1.BookingStatus(b.Status),
	}
}

// legacyVehicle is the car shape kept under the "adminCars" key.
type legacyVehicle struct {
	ID           flexID    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Quantity     flexInt   `json:"quantity"`
	Available    flexInt   `json:"available"`
	PricePerDay  v1.Amount `json:"pricePerDay"`
	PricePerHour v1.Amount `json:"pricePerHour"`
}

var hoursPerDay = decimal.NewFromInt(24)

func (v legacyVehicle) toRecord() v1.Vehicle {
	price := v.PricePerDay
	if !price.Valid && v.PricePerHour.Valid {
		price = v1.NewAmount(v.PricePerHour.Decimal.Mul(hoursPerDay))
	}
	return v1.Vehicle{
		ID:          string(v.ID),
		Name:        v.Name,
		Category:    v.Category,
		Quantity:    int(v.Quantity),
		Available:   int(v.Available),
		PricePerDay: price,
	}
}

// legacyUser is the user shape kept under the "adminUsers" key.
type legacyUser struct {
	ID       flexID       `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	JoinDate v1.Timestamp `json:"joinDate"`
	Status   string       `json:"status"`
}

func (u legacyUser) toRecord() v1.User {
	return v1.User{
		ID:       string(u.ID),
		Name:     u.Name,
		Email:    u.Email,
		JoinDate: u.JoinDate,
		Status:   u.Status,
	}
}
