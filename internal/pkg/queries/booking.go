package queries

const (
	bookingColumns = `id, start_time, end_time, duration, status, first_name, last_name, email, phone,
		grade_level, location, address, notes, price, created_at, updated_at`

	AcquireBookingDayLock = `SELECT pg_advisory_xact_lock($1::int, $2::int)`

	GetConfirmedBookingsOnDay = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = 'confirmed' AND start_time >= $1 AND start_time < $2
		ORDER BY start_time ASC
	`

	GetAllBookings = `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY start_time DESC
	`

	GetBookingByID = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	InsertBooking = `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	CompleteEndedBookings = `
		UPDATE bookings
		SET status = 'completed', updated_at = $2
		WHERE status = 'confirmed' AND end_time <= $1
	`

	UpdateConfirmedBookingStatus = `
		UPDATE bookings
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status = 'confirmed'
		RETURNING ` + bookingColumns
)
