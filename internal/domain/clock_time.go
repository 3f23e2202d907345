package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	minutes int
}

// ParseClockTime parses "HH:MM" (24h). A single-digit hour is tolerated.
func ParseClockTime(s string) (ClockTime, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mm) != 2 || len(hh) == 0 || len(hh) > 2 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	return ClockTime{minutes: hour*60 + minute}, nil
}

func MustClockTime(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}

	return c
}

func (c ClockTime) Hour() int {
	return c.minutes / 60
}

func (c ClockTime) Minute() int {
	return c.minutes % 60
}

func (c ClockTime) Before(other ClockTime) bool {
	return c.minutes < other.minutes
}

// On returns the instant this clock time occurs on t's calendar date, in t's location.
func (c ClockTime) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour(), c.Minute(), 0, 0, t.Location())
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
