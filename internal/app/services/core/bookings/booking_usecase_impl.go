package bookings

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
	"tutorat-service/internal/app/config"
	"tutorat-service/internal/app/contracts"
	"tutorat-service/internal/app/models"
	"tutorat-service/internal/app/services/core/pricing"
	"tutorat-service/internal/app/services/core/timeslots"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/dto/requests"
	"tutorat-service/internal/pkg/dto/responses"
	"tutorat-service/internal/pkg/exceptions"
	"tutorat-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository   contracts.BookingRepository
	LockerService       contracts.LockerService
	NotificationService contracts.NotificationService
	Catalog             *timeslots.Catalog
	InternalConfig      *config.InternalConfig
	Location            *time.Location
	Log                 *zap.Logger
	buffer              time.Duration
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
	bookingUsecaseError    error
)

// NewBookingUsecase wires the availability engine. lockerService and
// notificationService are optional and may be nil.
func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	lockerService contracts.LockerService,
	notificationService contracts.NotificationService,
	catalog *timeslots.Catalog,
	internalConfig *config.InternalConfig,
	location *time.Location,
	logger *zap.Logger,
) (contracts.BookingUsecase, error) {
	onceBookingUsecase.Do(func() {
		instance, err := newBookingUsecase(bookingRepository, lockerService, notificationService, catalog, internalConfig, location, logger)
		if err != nil {
			bookingUsecaseError = err
			return
		}
		bookingUsecaseInstance = instance
	})
	return bookingUsecaseInstance, bookingUsecaseError
}

func newBookingUsecase(
	bookingRepository contracts.BookingRepository,
	lockerService contracts.LockerService,
	notificationService contracts.NotificationService,
	catalog *timeslots.Catalog,
	internalConfig *config.InternalConfig,
	location *time.Location,
	logger *zap.Logger,
) (*bookingUsecase, error) {
	bufferMinutes := internalConfig.Booking.BufferMinutes
	if bufferMinutes < 0 || bufferMinutes > constvars.BookingMaxDayScopedBufferMinutes {
		return nil, exceptions.ErrBufferTooLargeForDayScope(bufferMinutes)
	}

	return &bookingUsecase{
		BookingRepository:   bookingRepository,
		LockerService:       lockerService,
		NotificationService: notificationService,
		Catalog:             catalog,
		InternalConfig:      internalConfig,
		Location:            location,
		Log:                 logger,
		buffer:              time.Duration(bufferMinutes) * time.Minute,
	}, nil
}

func (uc *bookingUsecase) FreeWindows(ctx context.Context, date time.Time, duration models.DurationLabel) ([]responses.TimeSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FreeWindows called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date.Format(constvars.AppDateFormat)),
		zap.String(constvars.LoggingDurationLabelKey, duration.String()),
	)

	if !duration.IsValid() {
		return nil, exceptions.ErrInvalidDurationLabel(nil, duration.String())
	}

	dayStart, _ := dayBounds(date, uc.Location)
	existing, err := uc.BookingRepository.ConfirmedBookingsOnDay(ctx, dayStart)
	if err != nil {
		uc.Log.Error("bookingUsecase.FreeWindows error fetching confirmed bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	slots := uc.freeWindowsFrom(dayStart, duration, existing)

	uc.Log.Info("bookingUsecase.FreeWindows succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(slots)),
	)
	return slots, nil
}

func (uc *bookingUsecase) FreeWindowsAnyDuration(ctx context.Context, date time.Time) ([]responses.TimeSlotWithDuration, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FreeWindowsAnyDuration called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date.Format(constvars.AppDateFormat)),
	)

	dayStart, _ := dayBounds(date, uc.Location)
	existing, err := uc.BookingRepository.ConfirmedBookingsOnDay(ctx, dayStart)
	if err != nil {
		uc.Log.Error("bookingUsecase.FreeWindowsAnyDuration error fetching confirmed bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	slots := make([]responses.TimeSlotWithDuration, 0)
	for _, duration := range models.SupportedDurations {
		for _, slot := range uc.freeWindowsFrom(dayStart, duration, existing) {
			slots = append(slots, responses.TimeSlotWithDuration{
				TimeSlot:        slot,
				Duration:        duration.String(),
				DurationMinutes: duration.Minutes(),
			})
		}
	}

	sortSlotsByStart(slots)

	uc.Log.Info("bookingUsecase.FreeWindowsAnyDuration succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(slots)),
	)
	return slots, nil
}

// sortSlotsByStart orders by start time, shorter sessions first on equal starts.
func sortSlotsByStart(slots []responses.TimeSlotWithDuration) {
	sort.SliceStable(slots, func(i, j int) bool {
		if !slots[i].StartTime.Equal(slots[j].StartTime) {
			return slots[i].StartTime.Before(slots[j].StartTime)
		}
		return slots[i].DurationMinutes < slots[j].DurationMinutes
	})
}

func (uc *bookingUsecase) freeWindowsFrom(dayStart time.Time, duration models.DurationLabel, existing []models.Booking) []responses.TimeSlot {
	windows := uc.Catalog.WindowsForDuration(duration)
	slots := make([]responses.TimeSlot, 0, len(windows))
	for _, window := range windows {
		start := window.Start.On(dayStart)
		end := window.End.On(dayStart)
		if uc.validateInterval(start, end) != nil {
			continue
		}
		if findConflict(bufferedInterval(start, end, uc.buffer), existing, uc.buffer) != nil {
			continue
		}
		slots = append(slots, responses.TimeSlot{
			Start:     window.Start.String(),
			End:       window.End.String(),
			StartTime: start,
			EndTime:   end,
		})
	}
	return slots
}

func (uc *bookingUsecase) CheckOverlap(ctx context.Context, start, end time.Time) (*responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CheckOverlap called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingBookingStartKey, start),
		zap.Time(constvars.LoggingBookingEndKey, end),
	)

	if err := uc.validateInterval(start, end); err != nil {
		uc.Log.Error("bookingUsecase.CheckOverlap invalid interval",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	existing, err := uc.BookingRepository.ConfirmedBookingsOnDay(ctx, start)
	if err != nil {
		uc.Log.Error("bookingUsecase.CheckOverlap error fetching confirmed bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	found := findConflict(bufferedInterval(start, end, uc.buffer), existing, uc.buffer)
	if found != nil {
		uc.Log.Info("bookingUsecase.CheckOverlap found conflict",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, found.bookingID),
			zap.Time(constvars.LoggingNextAvailableKey, found.bufferedEnd),
		)
		nextAvailable := found.bufferedEnd
		return &responses.Availability{
			Available:     false,
			Reason:        found.reason,
			NextAvailable: &nextAvailable,
		}, nil
	}

	uc.Log.Info("bookingUsecase.CheckOverlap succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.Availability{Available: true}, nil
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBookingResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDurationLabelKey, request.Duration),
	)

	booking, err := uc.buildBooking(request)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	dayStart, _ := dayBounds(booking.StartTime, uc.Location)
	if uc.LockerService != nil && uc.InternalConfig.Booking.DayLockEnabled {
		lockKey := fmt.Sprintf(constvars.RedisKeyBookingDayLockFormat, dayStart.Format(constvars.AppDateFormat))
		lockValue, err := uc.LockerService.Lock(ctx, lockKey,
			time.Duration(uc.InternalConfig.Booking.DayLockTTLInSeconds)*time.Second,
			time.Duration(uc.InternalConfig.Booking.DayLockWaitInMilliseconds)*time.Millisecond,
		)
		if err != nil {
			uc.Log.Error("bookingUsecase.CreateBooking error acquiring day lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
			return nil, err
		}
		defer func() {
			if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
				uc.Log.Warn("bookingUsecase.CreateBooking error releasing day lock",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingRedisKey, lockKey),
					zap.Error(err),
				)
			}
		}()
	}

	var blocking *conflict
	err = uc.BookingRepository.WithinDayLock(ctx, dayStart, func(ctx context.Context, store contracts.BookingStore) error {
		existing, err := store.ConfirmedBookingsOnDay(ctx, dayStart)
		if err != nil {
			return err
		}

		blocking = findConflict(bufferedInterval(booking.StartTime, booking.EndTime, uc.buffer), existing, uc.buffer)
		if blocking != nil {
			return nil
		}
		return store.InsertBooking(ctx, booking)
	})
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking error running check-and-insert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if blocking != nil {
		uc.Log.Info("bookingUsecase.CreateBooking rejected by conflict",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConflictReasonKey, blocking.reason),
			zap.Time(constvars.LoggingNextAvailableKey, blocking.bufferedEnd),
		)
		nextAvailable := blocking.bufferedEnd
		return &responses.CreateBookingResult{
			Success:       false,
			Message:       constvars.BookingConflictMessage,
			Error:         blocking.reason,
			NextAvailable: &nextAvailable,
		}, nil
	}

	result := &responses.CreateBookingResult{
		Success: true,
		Message: constvars.CreateBookingSuccessMessage,
		Booking: toBookingResponse(booking),
	}
	if warning := uc.notifyBookingConfirmed(ctx, booking); warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}

	uc.Log.Info("bookingUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
	)
	return result, nil
}

func (uc *bookingUsecase) buildBooking(request *requests.CreateBooking) (*models.Booking, error) {
	start, err := utils.ParseDateTime(request.StartTime, uc.Location)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	duration, err := models.ParseDurationLabel(request.Duration)
	if err != nil {
		return nil, exceptions.ErrInvalidDurationLabel(err, request.Duration)
	}

	end := start.Add(duration.Duration())
	if err := uc.validateInterval(start, end); err != nil {
		return nil, err
	}

	price, err := pricing.Calculate(pricing.GradeBand(request.GradeLevel), request.Location, duration)
	if err != nil {
		return nil, exceptions.ErrInvalidPricingQuery(err)
	}

	return &models.Booking{
		StartTime:  start,
		EndTime:    end,
		Duration:   duration,
		Status:     models.BookingStatusConfirmed,
		FirstName:  request.FirstName,
		LastName:   request.LastName,
		Email:      request.Email,
		Phone:      request.Phone,
		GradeLevel: request.GradeLevel,
		Location:   request.Location,
		Address:    request.Address,
		Notes:      request.Notes,
		Price:      price,
	}, nil
}

// validateInterval requires a positive session whose buffered interval stays on
// its local day. Conflict reads and day locks cover one day, so a buffer reaching
// across midnight would miss bookings on the neighbouring day.
func (uc *bookingUsecase) validateInterval(start, end time.Time) error {
	if !end.After(start) {
		return exceptions.ErrInvalidInterval(nil)
	}
	dayStart, dayEnd := dayBounds(start, uc.Location)
	if end.After(dayEnd) {
		return exceptions.ErrSessionCrossesMidnight(nil)
	}
	buffered := bufferedInterval(start, end, uc.buffer)
	if buffered.start.Before(dayStart) || buffered.end.After(dayEnd) {
		return exceptions.ErrSessionBufferCrossesDay(buffered.start.Format(time.RFC3339), buffered.end.Format(time.RFC3339))
	}
	return nil
}

// notifyBookingConfirmed publishes within the notification timeout and returns
// a warning for the caller instead of failing the committed booking.
func (uc *bookingUsecase) notifyBookingConfirmed(ctx context.Context, booking *models.Booking) string {
	if uc.NotificationService == nil {
		return ""
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	timeout := time.Duration(uc.InternalConfig.App.NotificationTimeoutInSeconds) * time.Second
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := uc.NotificationService.PublishBookingConfirmation(notifyCtx, booking); err != nil {
		uc.Log.Warn("bookingUsecase.notifyBookingConfirmed error publishing confirmation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
		return constvars.WarningNotificationFailed
	}
	return ""
}

func (uc *bookingUsecase) CancelBooking(ctx context.Context, bookingID string) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CancelBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	booking, err := uc.BookingRepository.SetStatus(ctx, bookingID, models.BookingStatusCancelled)
	if err != nil {
		uc.Log.Error("bookingUsecase.CancelBooking error setting status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingUsecase.CancelBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return toBookingResponse(booking), nil
}

func (uc *bookingUsecase) CompleteBooking(ctx context.Context, bookingID string) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CompleteBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	booking, err := uc.BookingRepository.SetStatus(ctx, bookingID, models.BookingStatusCompleted)
	if err != nil {
		uc.Log.Error("bookingUsecase.CompleteBooking error setting status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingUsecase.CompleteBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return toBookingResponse(booking), nil
}

func (uc *bookingUsecase) FindAll(ctx context.Context) ([]responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bookings, err := uc.BookingRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("bookingUsecase.FindAll error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Booking, len(bookings))
	for i := range bookings {
		response[i] = *toBookingResponse(&bookings[i])
	}

	uc.Log.Info("bookingUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingCountKey, len(response)),
	)
	return response, nil
}

func (uc *bookingUsecase) FindByID(ctx context.Context, bookingID string) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.FindByID error fetching booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return toBookingResponse(booking), nil
}

func toBookingResponse(booking *models.Booking) *responses.Booking {
	return &responses.Booking{
		ID:         booking.ID,
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		Duration:   booking.Duration.String(),
		Status:     string(booking.Status),
		FirstName:  booking.FirstName,
		LastName:   booking.LastName,
		Email:      booking.Email,
		Phone:      booking.Phone,
		GradeLevel: booking.GradeLevel,
		Location:   booking.Location,
		Address:    booking.Address,
		Notes:      booking.Notes,
		Price:      booking.Price,
		CreatedAt:  booking.CreatedAt,
		UpdatedAt:  booking.UpdatedAt,
	}
}
