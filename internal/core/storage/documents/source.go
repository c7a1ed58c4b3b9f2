// Package documents reads bookings, vehicles and users from a key-value store
// of JSON documents in the shape the web client caches them: one JSON array
// per collection, camelCase fields.
package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/aevon-lab/rental-analytics/internal/api/v1"
	"github.com/aevon-lab/rental-analytics/internal/core/storage"
)

// ErrKeyNotFound is returned by a Store when the key holds no document.
var ErrKeyNotFound = errors.New("document key not found")

// Store fetches raw documents by key.
type Store interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// Keys names the document holding each collection.
type Keys struct {
	Bookings string
	Vehicles string
	Users    string
}

// DefaultKeys returns the keys used by the web client.
func DefaultKeys() Keys {
	return Keys{Bookings: "bookings", Vehicles: "adminCars", Users: "adminUsers"}
}

// Source adapts a Store to storage.FleetReader.
type Source struct {
	store Store
	keys  Keys
}

var _ storage.FleetReader = (*Source)(nil)

// NewSource returns a FleetReader over store. Empty keys fall back to DefaultKeys.
func NewSource(store Store, keys Keys) *Source {
	def := DefaultKeys()
	if keys.Bookings == "" {
		keys.Bookings = def.Bookings
	}
	if keys.Vehicles == "" {
		keys.Vehicles = def.Vehicles
	}
	if keys.Users == "" {
		keys.Users = def.Users
	}
	return &Source{store: store, keys: keys}
}

func (s *Source) ListBookings(ctx context.Context) ([]v1.Booking, error) {
	return loadCollection(ctx, s.store, s.keys.Bookings, legacyBooking.toRecord)
}

func (s *Source) ListVehicles(ctx context.Context) ([]v1.Vehicle, error) {
	return loadCollection(ctx, s.store, s.keys.Vehicles, legacyVehicle.toRecord)
}

func (s *Source) ListUsers(ctx context.Context) ([]v1.User, error) {
	return loadCollection(ctx, s.store, s.keys.Users, legacyUser.toRecord)
}

var jsonNull = []byte("null")

// loadCollection decodes the array under key. A missing key or a JSON null is
// an empty collection. Elements that do not decode as objects are skipped,
// null elements included.
func loadCollection[L any, R any](ctx context.Context, store Store, key string, convert func(L) R) ([]R, error) {
	out := make([]R, 0)

	data, err := store.Fetch(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return out, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", key, err)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("document %q is not a JSON array: %w", key, err)
	}

	skipped := 0
	for i, raw := range elems {
		if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
			slog.Warn("[Documents] Skipping malformed element",
				"key", key,
				"index", i,
				"error", "null element")
			skipped++
			continue
		}

		var legacy L
		if err := json.Unmarshal(raw, &legacy); err != nil {
			slog.Warn("[Documents] Skipping malformed element",
				"key", key,
				"index", i,
				"error", err)
			skipped++
			continue
		}
		out = append(out, convert(legacy))
	}

	slog.Debug("[Documents] Loaded collection", "key", key, "count", len(out), "skipped", skipped)
	return out, nil
}
