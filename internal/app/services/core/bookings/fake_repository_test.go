package bookings

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
	"tutorat-service/internal/app/contracts"
	"tutorat-service/internal/app/models"
	"tutorat-service/internal/pkg/exceptions"

	"github.com/google/uuid"
)

var testLocation = time.FixedZone("EST", -5*60*60)

// fakeBookingRepository keeps bookings in memory. With locked set, WithinDayLock
// serializes callers per day. readBarrier and readDelay both hold a reader after
// it has taken its snapshot, widening the gap between read and insert.
type fakeBookingRepository struct {
	mu        sync.Mutex
	bookings  map[string]*models.Booking
	dayLocks  map[string]*sync.Mutex
	locked    bool
	readDelay time.Duration
	// readBarrier, when set, holds each snapshot until that many readers have taken one.
	readBarrier *barrier
	findErr     error
}

func newFakeBookingRepository() *fakeBookingRepository {
	return &fakeBookingRepository{
		bookings: make(map[string]*models.Booking),
		dayLocks: make(map[string]*sync.Mutex),
		locked:   true,
	}
}

func (f *fakeBookingRepository) seed(bookings ...models.Booking) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range bookings {
		booking := bookings[i]
		if booking.ID == "" {
			booking.ID = uuid.NewString()
		}
		f.bookings[booking.ID] = &booking
	}
}

func (f *fakeBookingRepository) confirmed() []models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]models.Booking, 0)
	for _, booking := range f.bookings {
		if booking.Status == models.BookingStatusConfirmed {
			result = append(result, *booking)
		}
	}
	return result
}

func (f *fakeBookingRepository) ConfirmedBookingsOnDay(ctx context.Context, day time.Time) ([]models.Booking, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	dayStart, dayEnd := dayBounds(day, testLocation)
	f.mu.Lock()
	result := make([]models.Booking, 0)
	for _, booking := range f.bookings {
		if booking.Status != models.BookingStatusConfirmed {
			continue
		}
		if !booking.StartTime.Before(dayStart) && booking.StartTime.Before(dayEnd) {
			result = append(result, *booking)
		}
	}
	f.mu.Unlock()

	sort.Slice(result, func(i, j int) bool { return result[i].StartTime.Before(result[j].StartTime) })
	if f.readBarrier != nil {
		f.readBarrier.wait()
	}
	if f.readDelay > 0 {
		time.Sleep(f.readDelay)
	}
	return result, nil
}

func (f *fakeBookingRepository) InsertBooking(ctx context.Context, booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	now := time.Now().In(testLocation)
	booking.SetCreatedAtUpdatedAt(now)
	stored := *booking
	f.bookings[booking.ID] = &stored
	return nil
}

func (f *fakeBookingRepository) SetStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[bookingID]
	if !ok {
		return nil, exceptions.ErrBookingNotFound(nil, bookingID)
	}
	if booking.Status == status {
		copied := *booking
		return &copied, nil
	}
	if booking.Status != models.BookingStatusConfirmed {
		return nil, exceptions.ErrBookingStatusTransition(nil, bookingID, string(booking.Status), string(status))
	}
	booking.Status = status
	booking.SetUpdatedAt(time.Now().In(testLocation))
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[bookingID]
	if !ok {
		return nil, exceptions.ErrBookingNotFound(nil, bookingID)
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]models.Booking, 0, len(f.bookings))
	for _, booking := range f.bookings {
		result = append(result, *booking)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime.After(result[j].StartTime) })
	return result, nil
}

func (f *fakeBookingRepository) WithinDayLock(ctx context.Context, day time.Time, fn func(ctx context.Context, store contracts.BookingStore) error) error {
	if f.locked {
		dayLock := f.dayLock(day)
		dayLock.Lock()
		defer dayLock.Unlock()
	}
	return fn(ctx, f)
}

func (f *fakeBookingRepository) CompleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if f.findErr != nil {
		return 0, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var completed int64
	for _, booking := range f.bookings {
		if booking.Status == models.BookingStatusConfirmed && !booking.EndTime.After(cutoff) {
			booking.Status = models.BookingStatusCompleted
			completed++
		}
	}
	return completed, nil
}

func (f *fakeBookingRepository) dayLock(day time.Time) *sync.Mutex {
	dayStart, _ := dayBounds(day, testLocation)
	key := dayStart.Format("2006-01-02")

	f.mu.Lock()
	defer f.mu.Unlock()
	lock, ok := f.dayLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		f.dayLocks[key] = lock
	}
	return lock
}

// barrier releases waiters once n of them have arrived, or after a timeout so a
// locked repository, which never lets n readers in at once, does not deadlock.
type barrier struct {
	mu      sync.Mutex
	n       int
	arrived int
	release chan struct{}
}

func newBarrier(n int) *barrier {
	return &barrier{n: n, release: make(chan struct{})}
}

func (b *barrier) wait() {
	b.mu.Lock()
	b.arrived++
	if b.arrived == b.n {
		close(b.release)
	}
	b.mu.Unlock()

	select {
	case <-b.release:
	case <-time.After(200 * time.Millisecond):
	}
}

type fakeNotificationService struct {
	mu        sync.Mutex
	published []string
	err       error
	delay     time.Duration
}

func (f *fakeNotificationService) PublishBookingConfirmation(ctx context.Context, booking *models.Booking) error {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, booking.ID)
	return nil
}

var errStoreDown = errors.New("store down")
