package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, startHour, endHour int) TimeRange {
	t.Helper()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	r, err := NewTimeRange(day.Add(time.Duration(startHour)*time.Hour), day.Add(time.Duration(endHour)*time.Hour))
	require.NoError(t, err)
	return r
}

func TestNewTimeRange_RejectsInvalid(t *testing.T) {
	day := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	_, err := NewTimeRange(day, day)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = NewTimeRange(day, day.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{name: "identical", a: mustRange(t, 10, 17), b: mustRange(t, 10, 17), want: true},
		{name: "contained", a: mustRange(t, 10, 17), b: mustRange(t, 12, 14), want: true},
		{name: "partial overlap", a: mustRange(t, 10, 13), b: mustRange(t, 12, 15), want: true},
		{name: "disjoint", a: mustRange(t, 10, 13), b: mustRange(t, 14, 17), want: false},
		{name: "touching endpoints do not overlap", a: mustRange(t, 10, 13), b: mustRange(t, 13, 17), want: false},
		{name: "one minute overlap", a: mustRange(t, 10, 14), b: mustRange(t, 13, 17), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}
