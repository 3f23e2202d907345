package domain

import (
	"fmt"
	"strings"
	"time"
)

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

var weekdayOrder = map[Weekday]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
	Saturday:  5,
	Sunday:    6,
}

// NewWeekday accepts a weekday name in any letter case.
func NewWeekday(s string) (Weekday, error) {
	trimmed := strings.TrimSpace(s)
	for day := range weekdayOrder {
		if strings.EqualFold(string(day), trimmed) {
			return day, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

func (d Weekday) IsValid() bool {
	_, ok := weekdayOrder[d]

	return ok
}

func (d Weekday) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

// Index orders weekdays Monday-first. Unknown values sort last.
func (d Weekday) Index() int {
	if i, ok := weekdayOrder[d]; ok {
		return i
	}

	return len(weekdayOrder)
}

func (d Weekday) String() string {
	return string(d)
}
