package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeRange возвращается при попытке создать диапазон с start >= end
var ErrInvalidTimeRange = errors.New("domain: time range start must be before end")

// TimeRange is a half-open time interval [Start, End).
// Immutable value type; construct via NewTimeRange.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange builds a validated half-open interval.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, fmt.Errorf("%w: [%s, %s)", ErrInvalidTimeRange,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeRange{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals intersect.
// Touching endpoints (a.End == b.Start) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// String returns a compact representation for logs.
func (r TimeRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start.Format(time.RFC3339), r.End.Format(time.RFC3339))
}
