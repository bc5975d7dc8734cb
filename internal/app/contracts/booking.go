package contracts

import (
	"context"
	"time"
	"tutorat-service/internal/app/models"
	"tutorat-service/internal/pkg/dto/requests"
	"tutorat-service/internal/pkg/dto/responses"
)

// BookingStore is the persistence surface the availability engine reads and writes.
type BookingStore interface {
	// ConfirmedBookingsOnDay returns confirmed bookings starting within the local day of day.
	ConfirmedBookingsOnDay(ctx context.Context, day time.Time) ([]models.Booking, error)
	InsertBooking(ctx context.Context, booking *models.Booking) error
	// SetStatus moves a confirmed booking to status and reports the row it changed.
	SetStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindAll(ctx context.Context) ([]models.Booking, error)
}

type BookingRepository interface {
	BookingStore
	// WithinDayLock runs fn inside one transaction holding the exclusive lock of day.
	WithinDayLock(ctx context.Context, day time.Time, fn func(ctx context.Context, store BookingStore) error) error
	// CompleteEndedBefore marks confirmed bookings that ended by cutoff as completed.
	CompleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type BookingUsecase interface {
	FreeWindows(ctx context.Context, date time.Time, duration models.DurationLabel) ([]responses.TimeSlot, error)
	FreeWindowsAnyDuration(ctx context.Context, date time.Time) ([]responses.TimeSlotWithDuration, error)
	CheckOverlap(ctx context.Context, start, end time.Time) (*responses.Availability, error)
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID string) (*responses.Booking, error)
	CompleteBooking(ctx context.Context, bookingID string) (*responses.Booking, error)
	FindAll(ctx context.Context) ([]responses.Booking, error)
	FindByID(ctx context.Context, bookingID string) (*responses.Booking, error)
}

type PricingUsecase interface {
	GetPricing(ctx context.Context, gradeBand, location string) (*responses.Pricing, error)
}
