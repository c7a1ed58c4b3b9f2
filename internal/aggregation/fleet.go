package aggregation

import (
	"context"
	"fmt"

	v1 "github.com/aevon-lab/rental-analytics/internal/api/v1"
	"github.com/aevon-lab/rental-analytics/internal/core/storage"
	"golang.org/x/sync/errgroup"
)

// Fleet is one consistent read of the three rollup inputs.
type Fleet struct {
	Bookings []v1.Booking
	Vehicles []v1.Vehicle
	Users    []v1.User
}

// LoadFleet reads the three collections concurrently. The first failure
// cancels the other reads.
func LoadFleet(ctx context.Context, reader storage.FleetReader) (Fleet, error) {
	var fleet Fleet
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		bookings, err := reader.ListBookings(gctx)
		if err != nil {
			return fmt.Errorf("list bookings: %w", err)
		}
		fleet.Bookings = bookings
		return nil
	})
	g.Go(func() error {
		vehicles, err := reader.ListVehicles(gctx)
		if err != nil {
			return fmt.Errorf("list vehicles: %w", err)
		}
		fleet.Vehicles = vehicles
		return nil
	})
	g.Go(func() error {
		users, err := reader.ListUsers(gctx)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		fleet.Users = users
		return nil
	})

	if err := g.Wait(); err != nil {
		return Fleet{}, err
	}
	return fleet, nil
}
