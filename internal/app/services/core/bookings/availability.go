package bookings

import (
	"fmt"
	"time"
	"tutorat-service/internal/app/models"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/utils"
)

// interval is half-open: intervals that only touch at an endpoint do not overlap.
type interval struct {
	start time.Time
	end   time.Time
}

func bufferedInterval(start, end time.Time, buffer time.Duration) interval {
	return interval{start: start.Add(-buffer), end: end.Add(buffer)}
}

func (i interval) overlaps(other interval) bool {
	return i.start.Before(other.end) && other.start.Before(i.end)
}

type conflict struct {
	bookingID   string
	bufferedEnd time.Time
	reason      string
}

// findConflict returns the first confirmed booking whose buffered interval
// overlaps the buffered request, or nil when the request is free.
func findConflict(requested interval, bookings []models.Booking, buffer time.Duration) *conflict {
	for i := range bookings {
		booking := &bookings[i]
		if booking.Status != models.BookingStatusConfirmed {
			continue
		}

		existing := bufferedInterval(booking.StartTime, booking.EndTime, buffer)
		if !requested.overlaps(existing) {
			continue
		}

		return &conflict{
			bookingID:   booking.ID,
			bufferedEnd: existing.end,
			reason:      fmt.Sprintf(constvars.BookingConflictReasonFormat, utils.FormatClock(existing.start), utils.FormatClock(existing.end)),
		}
	}
	return nil
}

// dayBounds returns local midnight of t and the following midnight.
func dayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	year, month, day := local.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
