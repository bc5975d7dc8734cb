package bookings

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"
	"tutorat-service/internal/app/contracts"
	"tutorat-service/internal/app/models"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/exceptions"
	"tutorat-service/internal/pkg/queries"
	"tutorat-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

type bookingStore struct {
	q        queryer
	location *time.Location
	now      func() time.Time
	Log      *zap.Logger
}

type bookingPostgresRepository struct {
	*bookingStore
	DB *sql.DB
}

var (
	bookingPostgresRepositoryInstance contracts.BookingRepository
	onceBookingPostgresRepository     sync.Once
)

func NewBookingPostgresRepository(db *sql.DB, location *time.Location, logger *zap.Logger) contracts.BookingRepository {
	onceBookingPostgresRepository.Do(func() {
		bookingPostgresRepositoryInstance = newBookingPostgresRepository(db, location, logger)
	})
	return bookingPostgresRepositoryInstance
}

func newBookingPostgresRepository(db *sql.DB, location *time.Location, logger *zap.Logger) *bookingPostgresRepository {
	return &bookingPostgresRepository{
		bookingStore: &bookingStore{
			q:        db,
			location: location,
			now:      time.Now,
			Log:      logger,
		},
		DB: db,
	}
}

func (repo *bookingPostgresRepository) WithinDayLock(ctx context.Context, day time.Time, fn func(ctx context.Context, store contracts.BookingStore) error) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	dayStart, _ := dayBounds(day, repo.location)
	lockKey := advisoryLockKey(dayStart)
	repo.Log.Info("bookingPostgresRepository.WithinDayLock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, dayStart.Format(constvars.AppDateFormat)),
		zap.Int(constvars.LoggingAdvisoryLockKey, lockKey),
	)

	tx, err := repo.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		repo.Log.Error("bookingPostgresRepository.WithinDayLock error beginning transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBBeginTx(err)
	}

	_, err = tx.ExecContext(ctx, queries.AcquireBookingDayLock, constvars.BookingAdvisoryLockNamespace, lockKey)
	if err != nil {
		tx.Rollback()
		repo.Log.Error("bookingPostgresRepository.WithinDayLock error acquiring advisory lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBAdvisoryLock(err, dayStart.Format(constvars.AppDateFormat))
	}

	txStore := &bookingStore{
		q:        tx,
		location: repo.location,
		now:      repo.now,
		Log:      repo.Log,
	}
	if err := fn(ctx, txStore); err != nil {
		tx.Rollback()
		repo.Log.Info("bookingPostgresRepository.WithinDayLock rolled back",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if err := tx.Commit(); err != nil {
		repo.Log.Error("bookingPostgresRepository.WithinDayLock error committing transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBCommitTx(err)
	}

	repo.Log.Info("bookingPostgresRepository.WithinDayLock succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (repo *bookingPostgresRepository) CompleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	repo.Log.Info("bookingPostgresRepository.CompleteEndedBefore called",
		zap.Time(constvars.LoggingCutoffKey, cutoff),
	)

	result, err := repo.DB.ExecContext(ctx, queries.CompleteEndedBookings, cutoff, repo.now().In(repo.location))
	if err != nil {
		repo.Log.Error("bookingPostgresRepository.CompleteEndedBefore error executing query",
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBUpdateData(err)
	}

	completed, err := result.RowsAffected()
	if err != nil {
		return 0, exceptions.ErrPostgresDBUpdateData(err)
	}

	repo.Log.Info("bookingPostgresRepository.CompleteEndedBefore succeeded",
		zap.Int64(constvars.LoggingCompletedCountKey, completed),
	)
	return completed, nil
}

// advisoryLockKey encodes the day as yyyymmdd.
func advisoryLockKey(dayStart time.Time) int {
	year, month, day := dayStart.Date()
	return year*10000 + int(month)*100 + day
}

func (repo *bookingStore) ConfirmedBookingsOnDay(ctx context.Context, day time.Time) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	dayStart, dayEnd := dayBounds(day, repo.location)
	repo.Log.Info("bookingPostgresRepository.ConfirmedBookingsOnDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, dayStart.Format(constvars.AppDateFormat)),
	)

	bookings, err := repo.queryBookings(ctx, queries.GetConfirmedBookingsOnDay, dayStart, dayEnd)
	if err != nil {
		repo.Log.Error("bookingPostgresRepository.ConfirmedBookingsOnDay error querying bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	repo.Log.Info("bookingPostgresRepository.ConfirmedBookingsOnDay succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingCountKey, len(bookings)),
	)
	return bookings, nil
}

func (repo *bookingStore) FindAll(ctx context.Context) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("bookingPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bookings, err := repo.queryBookings(ctx, queries.GetAllBookings)
	if err != nil {
		repo.Log.Error("bookingPostgresRepository.FindAll error querying bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	repo.Log.Info("bookingPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingCountKey, len(bookings)),
	)
	return bookings, nil
}

func (repo *bookingStore) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("bookingPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	row := repo.q.QueryRowContext(ctx, queries.GetBookingByID, bookingID)
	booking, err := repo.scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			repo.Log.Info("bookingPostgresRepository.FindByID booking not found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBookingIDKey, bookingID),
			)
			return nil, exceptions.ErrBookingNotFound(err, bookingID)
		}
		repo.Log.Error("bookingPostgresRepository.FindByID error scanning row",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("bookingPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return booking, nil
}

// InsertBooking assigns the id and timestamps before writing the row.
func (repo *bookingStore) InsertBooking(ctx context.Context, booking *models.Booking) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("bookingPostgresRepository.InsertBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingBookingStartKey, booking.StartTime),
	)

	if booking.ID == "" {
		booking.ID = utils.GenerateBookingID()
	}
	booking.SetCreatedAtUpdatedAt(repo.now().In(repo.location))

	_, err := repo.q.ExecContext(ctx, queries.InsertBooking,
		booking.ID,
		booking.StartTime,
		booking.EndTime,
		string(booking.Duration),
		string(booking.Status),
		booking.FirstName,
		booking.LastName,
		booking.Email,
		booking.Phone,
		booking.GradeLevel,
		booking.Location,
		booking.Address,
		booking.Notes,
		booking.Price,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		repo.Log.Error("bookingPostgresRepository.InsertBooking error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBInsertData(err)
	}

	repo.Log.Info("bookingPostgresRepository.InsertBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
	)
	return nil
}

// SetStatus only moves confirmed bookings. Repeating the transition a booking already
// made returns it unchanged; any other move out of a terminal state is rejected.
func (repo *bookingStore) SetStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("bookingPostgresRepository.SetStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
		zap.String(constvars.LoggingBookingStatusKey, string(status)),
	)

	row := repo.q.QueryRowContext(ctx, queries.UpdateConfirmedBookingStatus, bookingID, string(status), repo.now().In(repo.location))
	booking, err := repo.scanBooking(row)
	if err == nil {
		repo.Log.Info("bookingPostgresRepository.SetStatus succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
		)
		return booking, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		repo.Log.Error("bookingPostgresRepository.SetStatus error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}

	current, err := repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		repo.Log.Info("bookingPostgresRepository.SetStatus already in requested status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
		)
		return current, nil
	}

	repo.Log.Info("bookingPostgresRepository.SetStatus rejected transition",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
		zap.String(constvars.LoggingBookingStatusKey, string(current.Status)),
	)
	return nil, exceptions.ErrBookingStatusTransition(nil, bookingID, string(current.Status), string(status))
}

func (repo *bookingStore) queryBookings(ctx context.Context, query string, args ...interface{}) ([]models.Booking, error) {
	rows, err := repo.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		booking, err := repo.scanBooking(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		bookings = append(bookings, *booking)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return bookings, nil
}

func (repo *bookingStore) scanBooking(row rowScanner) (*models.Booking, error) {
	var (
		booking  models.Booking
		duration string
		status   string
	)
	err := row.Scan(
		&booking.ID,
		&booking.StartTime,
		&booking.EndTime,
		&duration,
		&status,
		&booking.FirstName,
		&booking.LastName,
		&booking.Email,
		&booking.Phone,
		&booking.GradeLevel,
		&booking.Location,
		&booking.Address,
		&booking.Notes,
		&booking.Price,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Duration = models.DurationLabel(duration)
	booking.Status = models.BookingStatus(status)
	booking.StartTime = booking.StartTime.In(repo.location)
	booking.EndTime = booking.EndTime.In(repo.location)
	return &booking, nil
}
