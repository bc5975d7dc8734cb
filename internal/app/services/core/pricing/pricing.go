package pricing

import (
	"fmt"
	"strings"
	"tutorat-service/internal/app/models"
	"tutorat-service/internal/pkg/constvars"
)

// SessionsPerMonthWeeks is the number of weeks a monthly package covers.
const SessionsPerMonthWeeks = 4

type rateKey struct {
	gradeBand string
	inHome    bool
}

// single session prices, in dollars, by duration
var sessionRates = map[rateKey]map[models.DurationLabel]int{
	{constvars.GradeBandPrimaire, false}:   {models.DurationShort: 35, models.DurationMedium: 50, models.DurationLong: 65},
	{constvars.GradeBandPrimaire, true}:    {models.DurationShort: 40, models.DurationMedium: 60, models.DurationLong: 80},
	{constvars.GradeBandSecondaire, false}: {models.DurationShort: 40, models.DurationMedium: 55, models.DurationLong: 70},
	{constvars.GradeBandSecondaire, true}:  {models.DurationShort: 45, models.DurationMedium: 65, models.DurationLong: 90},
}

// monthly package prices by duration and sessions per week
var packageRates = map[rateKey]map[models.DurationLabel][2]int{
	{constvars.GradeBandPrimaire, false}:   {models.DurationShort: {120, 230}, models.DurationMedium: {175, 340}, models.DurationLong: {220, 440}},
	{constvars.GradeBandPrimaire, true}:    {models.DurationShort: {145, 285}, models.DurationMedium: {210, 420}, models.DurationLong: {270, 550}},
	{constvars.GradeBandSecondaire, false}: {models.DurationShort: {140, 270}, models.DurationMedium: {190, 370}, models.DurationLong: {240, 470}},
	{constvars.GradeBandSecondaire, true}:  {models.DurationShort: {165, 320}, models.DurationMedium: {230, 450}, models.DurationLong: {310, 610}},
}

type Package struct {
	Duration        models.DurationLabel
	SessionsPerWeek int
	Price           int
	OriginalPrice   int
	Savings         int
}

// GradeBand maps a grade level such as "secondaire-3" to its band.
func GradeBand(gradeLevel string) string {
	band, _, _ := strings.Cut(gradeLevel, "-")
	return band
}

func newRateKey(gradeBand, location string) (rateKey, error) {
	if gradeBand != constvars.GradeBandPrimaire && gradeBand != constvars.GradeBandSecondaire {
		return rateKey{}, fmt.Errorf("unknown grade band %q", gradeBand)
	}
	switch location {
	case constvars.LocationTeacher, constvars.LocationOnline:
		return rateKey{gradeBand: gradeBand}, nil
	case constvars.LocationHome:
		return rateKey{gradeBand: gradeBand, inHome: true}, nil
	default:
		return rateKey{}, fmt.Errorf("unknown location %q", location)
	}
}

// Calculate returns the single session price.
func Calculate(gradeBand, location string, duration models.DurationLabel) (int, error) {
	key, err := newRateKey(gradeBand, location)
	if err != nil {
		return 0, err
	}
	price, ok := sessionRates[key][duration]
	if !ok {
		return 0, fmt.Errorf("unknown duration %q", duration)
	}
	return price, nil
}

// Packages lists the monthly offers for one and two sessions per week, ordered by duration.
func Packages(gradeBand, location string) ([]Package, error) {
	key, err := newRateKey(gradeBand, location)
	if err != nil {
		return nil, err
	}

	packages := make([]Package, 0, len(models.SupportedDurations)*2)
	for _, duration := range models.SupportedDurations {
		single := sessionRates[key][duration]
		for i, price := range packageRates[key][duration] {
			sessionsPerWeek := i + 1
			original := single * sessionsPerWeek * SessionsPerMonthWeeks
			packages = append(packages, Package{
				Duration:        duration,
				SessionsPerWeek: sessionsPerWeek,
				Price:           price,
				OriginalPrice:   original,
				Savings:         original - price,
			})
		}
	}
	return packages, nil
}
