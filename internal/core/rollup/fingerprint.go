package rollup

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	v1 "github.com/aevon-lab/rental-analytics/internal/api/v1"
)

// fingerprintInput is the canonical shape hashed by Fingerprint.
// Field order is fixed by the struct, so encoding/json output is stable.
type fingerprintInput struct {
	Day      string       `json:"day"`
	Location string       `json:"location"`
	Bookings []v1.Booking `json:"bookings"`
	Vehicles []v1.Vehicle `json:"vehicles"`
	Users    []v1.User    `json:"users"`
}

// Fingerprint returns the SHA-256 (hex) of the inputs and the reference day in
// loc. Two calls on the same calendar day with equal collections, in the same
// order, produce the same fingerprint and therefore the same Result.
func Fingerprint(bookings []v1.Booking, vehicles []v1.Vehicle, users []v1.User, ref time.Time, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.UTC
	}
	in := fingerprintInput{
		Day:      ref.In(loc).Format("2006-01-02"),
		Location: loc.String(),
		Bookings: bookings,
		Vehicles: vehicles,
		Users:    users,
	}
	// nil and empty collections hash the same.
	if in.Bookings == nil {
		in.Bookings = []v1.Booking{}
	}
	if in.Vehicles == nil {
		in.Vehicles = []v1.Vehicle{}
	}
	if in.Users == nil {
		in.Users = []v1.User{}
	}
	data, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("encode fingerprint input: %w", err)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash), nil
}
