package models

import (
	"fmt"
	"time"
)

// DurationLabel is the wire name of a supported session length.
type DurationLabel string

const (
	DurationShort  DurationLabel = "1h"
	DurationMedium DurationLabel = "1h30"
	DurationLong   DurationLabel = "2h"
)

var durationMinutes = map[DurationLabel]int{
	DurationShort:  60,
	DurationMedium: 90,
	DurationLong:   120,
}

// SupportedDurations lists every label in ascending length.
var SupportedDurations = []DurationLabel{DurationShort, DurationMedium, DurationLong}

func (d DurationLabel) IsValid() bool {
	_, ok := durationMinutes[d]
	return ok
}

// Minutes returns 0 for an unknown label.
func (d DurationLabel) Minutes() int {
	return durationMinutes[d]
}

func (d DurationLabel) Duration() time.Duration {
	return time.Duration(d.Minutes()) * time.Minute
}

func (d DurationLabel) String() string {
	return string(d)
}

func ParseDurationLabel(raw string) (DurationLabel, error) {
	label := DurationLabel(raw)
	if !label.IsValid() {
		return "", fmt.Errorf("unknown duration label %q", raw)
	}
	return label, nil
}
