package rollup

import (
	"testing"
	"time"

	v1 "github.com/aevon-lab/rental-analytics/internal/api/v1"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	bookings := []v1.Booking{booking("b1", "v1", 100, v1.StatusConfirmed, testRef)}
	vehicles := []v1.Vehicle{vehicle("v1", "A", "sedan", 2, 1)}

	fp1, err := Fingerprint(bookings, vehicles, nil, testRef, time.UTC)
	require.NoError(t, err)
	require.Len(t, fp1, 64)

	t.Run("same day is stable", func(t *testing.T) {
		later := time.Date(2026, 6, 15, 23, 59, 0, 0, time.UTC)
		fp2, err := Fingerprint(bookings, vehicles, []v1.User{}, later, time.UTC)
		require.NoError(t, err)
		require.Equal(t, fp1, fp2)
	})

	t.Run("next day differs", func(t *testing.T) {
		fp2, err := Fingerprint(bookings, vehicles, nil, testRef.AddDate(0, 0, 1), time.UTC)
		require.NoError(t, err)
		require.NotEqual(t, fp1, fp2)
	})

	t.Run("changed input differs", func(t *testing.T) {
		changed := []v1.Vehicle{vehicle("v1", "A", "sedan", 2, 0)}
		fp2, err := Fingerprint(bookings, changed, nil, testRef, time.UTC)
		require.NoError(t, err)
		require.NotEqual(t, fp1, fp2)
	})

	t.Run("location is part of the key", func(t *testing.T) {
		fp2, err := Fingerprint(bookings, vehicles, nil, testRef, time.FixedZone("X", 3600))
		require.NoError(t, err)
		require.NotEqual(t, fp1, fp2)
	})

	t.Run("nil location is utc", func(t *testing.T) {
		fp2, err := Fingerprint(bookings, vehicles, nil, testRef, nil)
		require.NoError(t, err)
		require.Equal(t, fp1, fp2)
	})
}
