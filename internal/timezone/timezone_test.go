package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Marte/Olimpo").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestFormatDateBR(t *testing.T) {
	// 02:00 UTC ainda é o dia anterior em São Paulo.
	ts := time.Date(2025, 3, 10, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, "09/03/2025", FormatDateBR(ts))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1990-07-15")
	require.NoError(t, err)
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, time.July, d.Month())

	_, err = ParseDate("15/07/1990")
	assert.Error(t, err)
}
