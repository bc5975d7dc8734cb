package timeslots

import (
	"fmt"
	"time"
	"tutorat-service/internal/app/models"
	"tutorat-service/internal/pkg/exceptions"
)

// Clock is a wall-clock time of day without a date.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// On anchors the clock to the calendar day of date, in date's location.
func (c Clock) On(date time.Time) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, c.Hour, c.Minute, 0, 0, date.Location())
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

type TimeWindow struct {
	Start           Clock
	End             Clock
	DurationMinutes int
}

func (w TimeWindow) Duration() time.Duration {
	return time.Duration(w.DurationMinutes) * time.Minute
}

// Catalog is the fixed, ordered set of bookable windows of a day.
type Catalog struct {
	windows []TimeWindow
}

// NewCatalog rejects windows that are unordered, overlapping or whose
// declared duration disagrees with their bounds.
func NewCatalog(windows []TimeWindow) (*Catalog, error) {
	for i, window := range windows {
		if window.End.Minutes()-window.Start.Minutes() != window.DurationMinutes || window.DurationMinutes <= 0 {
			return nil, exceptions.ErrInvalidWindowCatalog(fmt.Errorf("window %s-%s declares %d minutes", window.Start, window.End, window.DurationMinutes))
		}
		if i > 0 && windows[i-1].End.Minutes() > window.Start.Minutes() {
			return nil, exceptions.ErrInvalidWindowCatalog(fmt.Errorf("window %s-%s overlaps or precedes %s-%s", window.Start, window.End, windows[i-1].Start, windows[i-1].End))
		}
	}

	copied := make([]TimeWindow, len(windows))
	copy(copied, windows)
	return &Catalog{windows: copied}, nil
}

var defaultWindows = []TimeWindow{
	{Start: Clock{8, 0}, End: Clock{9, 30}, DurationMinutes: 90},
	{Start: Clock{10, 0}, End: Clock{12, 0}, DurationMinutes: 120},
	{Start: Clock{12, 30}, End: Clock{14, 0}, DurationMinutes: 90},
	{Start: Clock{14, 30}, End: Clock{16, 0}, DurationMinutes: 90},
	{Start: Clock{16, 30}, End: Clock{18, 30}, DurationMinutes: 120},
	{Start: Clock{19, 0}, End: Clock{20, 0}, DurationMinutes: 60},
}

// DefaultCatalog returns the business-day catalog.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog(defaultWindows)
	if err != nil {
		panic(err)
	}
	return catalog
}

// WindowsForDuration returns the windows whose length equals duration
// exactly, in catalog order. Longer windows are never shortened.
func (c *Catalog) WindowsForDuration(duration models.DurationLabel) []TimeWindow {
	minutes := duration.Minutes()
	result := make([]TimeWindow, 0, len(c.windows))
	for _, window := range c.windows {
		if window.DurationMinutes == minutes {
			result = append(result, window)
		}
	}
	return result
}

func (c *Catalog) AllWindows() []TimeWindow {
	result := make([]TimeWindow, len(c.windows))
	copy(result, c.windows)
	return result
}
