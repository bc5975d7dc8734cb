package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	loc, err := LoadTimezone("")
	require.NoError(t, err)
	assert.Equal(t, "America/Toronto", loc.String())

	date, err := ParseDate("2025-01-15", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, loc), date)

	_, err = ParseDate("15/01/2025", loc)
	assert.Error(t, err)
}

func TestParseDateTime(t *testing.T) {
	loc, err := LoadTimezone("America/Toronto")
	require.NoError(t, err)

	withOffset, err := ParseDateTime("2025-01-15T17:30:00Z", loc)
	require.NoError(t, err)
	assert.Equal(t, "12:30", FormatClock(withOffset))

	wallClock, err := ParseDateTime("2025-01-15T12:30:00", loc)
	require.NoError(t, err)
	assert.True(t, withOffset.Equal(wallClock))
}
