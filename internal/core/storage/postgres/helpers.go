package postgres

import (
	"fmt"

	v1 "github.com/aevon-lab/rental-analytics/internal/api/v1"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanBookingRow scans one bookings row.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanBookingRow(row scanner) (v1.Booking, error) {
	var b v1.Booking
	var status string

	err := row.Scan(
		&b.ID,
		&b.VehicleID,
		&b.UserID,
		&b.BookingDate,
		&b.StartDate,
		&b.EndDate,
		&b.TotalAmount,
		&status,
	)
	if err != nil {
		return v1.Booking{}, fmt.Errorf("failed to scan booking row: %w", err)
	}
	b.Status = v1.BookingStatus(status)
	return b, nil
}

func scanVehicleRow(row scanner) (v1.Vehicle, error) {
	var v v1.Vehicle
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Category,
		&v.Quantity,
		&v.Available,
		&v.PricePerDay,
	)
	if err != nil {
		return v1.Vehicle{}, fmt.Errorf("failed to scan vehicle row: %w", err)
	}
	return v, nil
}

func scanUserRow(row scanner) (v1.User, error) {
	var u v1.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.JoinDate,
		&u.Status,
	)
	if err != nil {
		return v1.User{}, fmt.Errorf("failed to scan user row: %w", err)
	}
	return u, nil
}
