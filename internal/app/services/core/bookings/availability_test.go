package bookings

import (
	"testing"
	"time"
	"tutorat-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 1, 15, hour, minute, 0, 0, testLocation)
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b interval
		want bool
	}{
		{name: "disjoint", a: interval{at(8, 0), at(9, 0)}, b: interval{at(10, 0), at(11, 0)}, want: false},
		{name: "touching", a: interval{at(9, 30), at(12, 30)}, b: interval{at(12, 30), at(13, 30)}, want: false},
		{name: "touching reversed", a: interval{at(12, 30), at(13, 30)}, b: interval{at(9, 30), at(12, 30)}, want: false},
		{name: "partial", a: interval{at(8, 30), at(10, 30)}, b: interval{at(9, 30), at(12, 30)}, want: true},
		{name: "contained", a: interval{at(10, 0), at(11, 0)}, b: interval{at(9, 30), at(12, 30)}, want: true},
		{name: "identical", a: interval{at(10, 0), at(11, 0)}, b: interval{at(10, 0), at(11, 0)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.overlaps(tt.a))
		})
	}
}

func TestFindConflict(t *testing.T) {
	buffer := 30 * time.Minute
	existing := []models.Booking{
		{ID: "cancelled", StartTime: at(8, 0), EndTime: at(9, 30), Status: models.BookingStatusCancelled},
		{ID: "late-morning", StartTime: at(10, 0), EndTime: at(12, 0), Status: models.BookingStatusConfirmed},
	}

	got := findConflict(bufferedInterval(at(9, 0), at(10, 30), buffer), existing, buffer)
	require.NotNil(t, got)
	assert.Equal(t, "late-morning", got.bookingID)
	assert.Equal(t, at(12, 30), got.bufferedEnd)
	assert.Equal(t, "unavailable: a session is already booked from 09:30 to 12:30 (including travel buffers)", got.reason)

	// Both sides carry a buffer, so 12:30 still reaches back into 09:30-12:30.
	assert.NotNil(t, findConflict(bufferedInterval(at(12, 30), at(13, 30), buffer), existing, buffer))
	assert.Nil(t, findConflict(bufferedInterval(at(13, 0), at(14, 0), buffer), existing, buffer))
	assert.Nil(t, findConflict(bufferedInterval(at(7, 0), at(8, 0), buffer), existing, buffer))
}

func TestDayBounds(t *testing.T) {
	start, end := dayBounds(time.Date(2025, 1, 16, 3, 0, 0, 0, time.UTC), testLocation)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, testLocation), start)
	assert.Equal(t, time.Date(2025, 1, 16, 0, 0, 0, 0, testLocation), end)
}
