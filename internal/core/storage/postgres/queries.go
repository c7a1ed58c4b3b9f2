package postgres

// SQL queries for the fleet tables. Every list is ordered by seq (insertion
// order) so repeated reads of unchanged data produce identical collections.

const (
	// querySaveBooking inserts a booking.
	// ON CONFLICT DO NOTHING returns no rows (sql.ErrNoRows) for duplicates.
	querySaveBooking = `
		INSERT INTO bookings (
			id, vehicle_id, user_id, booking_date,
			start_date, end_date, total_amount, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
		RETURNING seq
	`

	querySaveVehicle = `
		INSERT INTO vehicles (
			id, name, category, quantity, available, price_per_day
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
		RETURNING seq
	`

	querySaveUser = `
		INSERT INTO users (
			id, name, email, join_date, status
		)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
		RETURNING seq
	`

	queryListBookings = `
		SELECT
			id, vehicle_id, user_id, booking_date,
			start_date, end_date, total_amount, status
		FROM bookings
		ORDER BY seq ASC
	`

	// queryListBookingsByUser backs the per-user booking list.
	// Served by idx_bookings_user_seq.
	queryListBookingsByUser = `
		SELECT
			id, vehicle_id, user_id, booking_date,
			start_date, end_date, total_amount, status
		FROM bookings
		WHERE user_id = $1
		ORDER BY seq ASC
	`

	queryListVehicles = `
		SELECT id, name, category, quantity, available, price_per_day
		FROM vehicles
		ORDER BY seq ASC
	`

	queryListUsers = `
		SELECT id, name, email, join_date, status
		FROM users
		ORDER BY seq ASC
	`

	queryValidateSchema = `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = current_schema()
		  AND table_name IN ('bookings', 'vehicles', 'users', 'rollup_snapshots')
	`
)
