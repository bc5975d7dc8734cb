package utils

import (
	"time"
	"tutorat-service/internal/pkg/constvars"

	_ "time/tzdata"
)

// LoadTimezone falls back to the business timezone when name is empty.
func LoadTimezone(name string) (*time.Location, error) {
	if name == "" {
		name = constvars.AppDefaultTimezone
	}
	return time.LoadLocation(name)
}

// ParseDate reads a YYYY-MM-DD date as local midnight of loc.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(constvars.AppDateFormat, raw, loc)
}

// ParseDateTime accepts RFC 3339 and, lacking an offset, a wall-clock time in loc.
func ParseDateTime(raw string, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err == nil {
		return parsed.In(loc), nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", raw, loc)
}

func FormatClock(t time.Time) string {
	return t.Format(constvars.AppClockFormat)
}
