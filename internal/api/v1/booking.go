package v1

import "fmt"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Booking is one rental of one vehicle by one user.
type Booking struct {
	// ID is unique across bookings.
	ID string `json:"id"`

	// VehicleID references Vehicle.ID. It is not checked for existence.
	VehicleID string `json:"vehicle_id"`

	// UserID references User.ID.
	UserID string `json:"user_id"`

	// BookingDate is when the booking was made; it drives all time bucketing.
	BookingDate Timestamp `json:"booking_date"`

	// StartDate and EndDate are the rental period. Informational only.
	StartDate Timestamp `json:"start_date"`
	EndDate   Timestamp `json:"end_date"`

	TotalAmount Amount        `json:"total_amount"`
	Status      BookingStatus `json:"status"`
}

// Validate checks a booking strictly before it is stored.
// Rollups never call this: they degrade bad records instead of rejecting them.
func (b *Booking) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("id is required")
	}
	if b.VehicleID == "" {
		return fmt.Errorf("vehicle_id is required")
	}
	if b.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if !b.BookingDate.Valid {
		return fmt.Errorf("booking_date is required")
	}
	if !b.TotalAmount.Valid {
		return fmt.Errorf("total_amount must be a non-negative number")
	}
	if !b.Status.Valid() {
		return fmt.Errorf("invalid status %q", b.Status)
	}
	if b.StartDate.Valid && b.EndDate.Valid && b.EndDate.Time.Before(b.StartDate.Time) {
		return fmt.Errorf("end_date must not be before start_date")
	}
	return nil
}
