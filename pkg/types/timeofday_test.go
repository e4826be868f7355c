package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("16:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay("16:30"), got)

	for _, bad := range []string{"", "24:00", "10:60", "noon"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestTimeOfDay_Ordering(t *testing.T) {
	assert.True(t, TimeOfDay("10:00").IsBefore(TimeOfDay("17:00")))
	assert.False(t, TimeOfDay("17:00").IsBefore(TimeOfDay("10:00")))
	assert.False(t, TimeOfDay("10:00").IsBefore(TimeOfDay("10:00")))

	assert.True(t, TimeOfDay("18:30").IsAfter(TimeOfDay("16:30")))
	assert.False(t, TimeOfDay("16:30").IsAfter(TimeOfDay("16:30")))
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	got, err := TimeOfDay("16:30").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay("18:30"), got)

	_, err = TimeOfDay("bogus").AddMinutes(10)
	assert.Error(t, err)
}

func TestTimeOfDay_At(t *testing.T) {
	loc, err := time.LoadLocation("America/Antigua")
	require.NoError(t, err)

	// Дата может прийти в другой таймзоне, но компоненты берутся как есть
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	got := TimeOfDay("10:00").At(date, loc)

	assert.Equal(t, time.Date(2026, 3, 14, 10, 0, 0, 0, loc), got)
}

func TestTimeOfDay_IsZero(t *testing.T) {
	assert.True(t, TimeOfDay("").IsZero())
	assert.False(t, TimeOfDay("10:00").IsZero())
}
