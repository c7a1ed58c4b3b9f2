package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	v1 "github.com/aevon-lab/rental-analytics/internal/api/v1"
	"github.com/aevon-lab/rental-analytics/internal/core/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFleetAdapter_SaveBooking(t *testing.T) {
	bookedAt := time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)
	booking := &v1.Booking{
		ID:          "bk-1",
		VehicleID:   "car-1",
		UserID:      "user-1",
		BookingDate: v1.NewTimestamp(bookedAt),
		TotalAmount: v1.NewAmount(decimal.RequireFromString("149.99")),
		Status:      v1.StatusConfirmed,
	}

	tests := []struct {
		name       string
		mockResult func(mock sqlmock.Sqlmock)
		assertions func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(querySaveBooking)).
					WithArgs(
						"bk-1",
						"car-1",
						"user-1",
						bookedAt,
						nil, // start_date missing
						nil, // end_date missing
						"149.99",
						"confirmed",
					).
					WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(7)))
			},
			assertions: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "duplicate maps to ErrDuplicate",
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(querySaveBooking)).
					WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
						sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"seq"}))
			},
			assertions: func(t *testing.T, err error) {
				require.ErrorIs(t, err, storage.ErrDuplicate)
			},
		},
		{
			name: "database error is wrapped",
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(querySaveBooking)).
					WillReturnError(errors.New("connection reset"))
			},
			assertions: func(t *testing.T, err error) {
				require.ErrorContains(t, err, "failed to save booking")
				require.NotErrorIs(t, err, storage.ErrDuplicate)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adapter, mock, db := newMockAdapter(t)
			defer db.Close()

			tc.mockResult(mock)
			err := adapter.SaveBooking(context.Background(), booking)
			tc.assertions(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFleetAdapter_SaveVehicleAndUser(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(querySaveVehicle)).
		WithArgs("car-1", "Swift", "compact", 3, 1, nil).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(1)))

	joined := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(querySaveUser)).
		WithArgs("user-1", "Asha", "asha@example.com", joined, "active").
		WillReturnRows(sqlmock.NewRows([]string{"seq"}))

	err := adapter.SaveVehicle(context.Background(), &v1.Vehicle{
		ID: "car-1", Name: "Swift", Category: "compact", Quantity: 3, Available: 1,
	})
	require.NoError(t, err)

	err = adapter.SaveUser(context.Background(), &v1.User{
		ID: "user-1", Name: "Asha", Email: "asha@example.com", JoinDate: v1.NewTimestamp(joined), Status: "active",
	})
	require.ErrorIs(t, err, storage.ErrDuplicate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFleetAdapter_ListBookings(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	bookedAt := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(bookingRowColumns()).
		AddRow("bk-1", "car-1", "user-1", bookedAt, nil, nil, "100.00", "confirmed").
		AddRow("bk-2", "car-2", "user-1", nil, nil, nil, nil, "cancelled")
	mock.ExpectQuery(regexp.QuoteMeta(queryListBookings)).WillReturnRows(rows)

	bookings, err := adapter.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	require.Equal(t, "bk-1", bookings[0].ID)
	require.True(t, bookings[0].BookingDate.Valid)
	require.True(t, bookings[0].BookingDate.Time.Equal(bookedAt))
	require.True(t, bookings[0].TotalAmount.Valid)
	require.Equal(t, "100", bookings[0].TotalAmount.Decimal.String())
	require.Equal(t, v1.StatusConfirmed, bookings[0].Status)

	// NULL columns come back as invalid values, not errors.
	require.False(t, bookings[1].BookingDate.Valid)
	require.False(t, bookings[1].TotalAmount.Valid)
	require.False(t, bookings[1].StartDate.Valid)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFleetAdapter_ListBookingsByUser(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryListBookingsByUser)).
		WithArgs("user-9").
		WillReturnRows(sqlmock.NewRows(bookingRowColumns()))

	bookings, err := adapter.ListBookingsByUser(context.Background(), "user-9")
	require.NoError(t, err)
	require.NotNil(t, bookings)
	require.Empty(t, bookings)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFleetAdapter_ListVehiclesAndUsers(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryListVehicles)).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "category", "quantity", "available", "price_per_day"}).
			AddRow("car-1", "Swift", "compact", 3, 1, "45.50").
			AddRow("car-2", "Fortuner", "suv", 0, 0, nil),
	)
	joined := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(queryListUsers)).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "email", "join_date", "status"}).
			AddRow("user-1", "Asha", "asha@example.com", joined, "active"),
	)

	vehicles, err := adapter.ListVehicles(context.Background())
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	require.Equal(t, 3, vehicles[0].Quantity)
	require.Equal(t, "45.5", vehicles[0].PricePerDay.Decimal.String())
	require.False(t, vehicles[1].PricePerDay.Valid)

	users, err := adapter.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.True(t, users[0].JoinDate.Time.Equal(joined))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFleetAdapter_ListScanErrorStopsIteration(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryListVehicles)).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "category", "quantity", "available", "price_per_day"}).
			AddRow("car-1", "Swift", "compact", "three", 1, nil),
	)

	_, err := adapter.ListVehicles(context.Background())
	require.ErrorContains(t, err, "failed to scan vehicle row")
}

func TestValidateSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryValidateSchema)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	err = validateSchema(db)
	require.ErrorContains(t, err, "expected 4 tables, found 2")
}

func newMockAdapter(t *testing.T) (*FleetAdapter, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	adapter := &FleetAdapter{
		db:                   db,
		stmtSaveBooking:      mustPrepareStmt(t, db, mock, querySaveBooking),
		stmtSaveVehicle:      mustPrepareStmt(t, db, mock, querySaveVehicle),
		stmtSaveUser:         mustPrepareStmt(t, db, mock, querySaveUser),
		stmtListBookings:     mustPrepareStmt(t, db, mock, queryListBookings),
		stmtListUserBookings: mustPrepareStmt(t, db, mock, queryListBookingsByUser),
		stmtListVehicles:     mustPrepareStmt(t, db, mock, queryListVehicles),
		stmtListUsers:        mustPrepareStmt(t, db, mock, queryListUsers),
	}

	return adapter, mock, db
}

func mustPrepareStmt(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock, query string) *sql.Stmt {
	t.Helper()

	mock.ExpectPrepare(regexp.QuoteMeta(query))
	stmt, err := db.Prepare(query)
	require.NoError(t, err)

	return stmt
}

func bookingRowColumns() []string {
	return []string{
		"id",
		"vehicle_id",
		"user_id",
		"booking_date",
		"start_date",
		"end_date",
		"total_amount",
		"status",
	}
}
