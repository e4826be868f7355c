package types

import (
	"fmt"
	"time"
)

// timeOfDayFormat формат времени "HH:MM"
const timeOfDayFormat = "15:04"

// TimeOfDay represents a wall-clock time of day as an "HH:MM" string.
// The zero value ("") is treated as unset.
type TimeOfDay string

// NewTimeOfDay builds a TimeOfDay from a time.Time, dropping the date part.
func NewTimeOfDay(t time.Time) TimeOfDay {
	return TimeOfDay(t.Format(timeOfDayFormat))
}

// ParseTimeOfDay parses an "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t := TimeOfDay(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks the "HH:MM" format.
func (t TimeOfDay) Validate() error {
	if _, err := time.Parse(timeOfDayFormat, string(t)); err != nil {
		return fmt.Errorf("invalid time of day %q: expected HH:MM", string(t))
	}
	return nil
}

// IsZero reports whether the value is unset.
func (t TimeOfDay) IsZero() bool {
	return t == ""
}

// parsed returns the value as a time.Time on the zero date.
// Panics are avoided by returning the zero time for malformed values;
// callers are expected to Validate on input boundaries.
func (t TimeOfDay) parsed() time.Time {
	parsed, err := time.Parse(timeOfDayFormat, string(t))
	if err != nil {
		return time.Time{}
	}
	return parsed
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t.parsed().Before(other.parsed())
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t.parsed().After(other.parsed())
}

// AddMinutes returns the time of day shifted forward by the given minutes.
func (t TimeOfDay) AddMinutes(minutes int) (TimeOfDay, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	shifted := t.parsed().Add(time.Duration(minutes) * time.Minute)
	return NewTimeOfDay(shifted), nil
}

// At anchors the wall-clock time to the given calendar date in loc.
func (t TimeOfDay) At(date time.Time, loc *time.Location) time.Time {
	p := t.parsed()
	return time.Date(date.Year(), date.Month(), date.Day(), p.Hour(), p.Minute(), 0, 0, loc)
}

// String returns the "HH:MM" representation.
func (t TimeOfDay) String() string {
	return string(t)
}
