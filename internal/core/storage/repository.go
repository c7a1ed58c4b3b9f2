package storage

import (
	"context"
	"errors"

	v1 "github.com/aevon-lab/rental-analytics/internal/api/v1"
)

// ErrDuplicate is returned when a record with the same id already exists.
var ErrDuplicate = errors.New("record already exists")

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("record not found")

// FleetReader supplies the three collections the rollup engine consumes.
// Each list is returned in a stable order so that repeated reads of
// unchanged data are identical.
type FleetReader interface {
	ListBookings(ctx context.Context) ([]v1.Booking, error)
	ListVehicles(ctx context.Context) ([]v1.Vehicle, error)
	ListUsers(ctx context.Context) ([]v1.User, error)
}

// UserBookingReader is implemented by readers that can filter bookings by
// user server-side. Callers fall back to filtering ListBookings otherwise.
type UserBookingReader interface {
	ListBookingsByUser(ctx context.Context, userID string) ([]v1.Booking, error)
}

// FleetStore is the writable system of record.
type FleetStore interface {
	FleetReader
	UserBookingReader

	// Save* insert a new record. They return ErrDuplicate if the id is taken.
	SaveBooking(ctx context.Context, booking *v1.Booking) error
	SaveVehicle(ctx context.Context, vehicle *v1.Vehicle) error
	SaveUser(ctx context.Context, user *v1.User) error
}

// BookingsForUser returns userID's bookings from r, in r's order.
func BookingsForUser(ctx context.Context, r FleetReader, userID string) ([]v1.Booking, error) {
	if ur, ok := r.(UserBookingReader); ok {
		return ur.ListBookingsByUser(ctx, userID)
	}

	all, err := r.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]v1.Booking, 0)
	for _, b := range all {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}
