package domain

import (
	"context"
	"fmt"
	"time"
)

// DayOverride makes a calendar date follow another weekday's timetable,
// for example a Saturday running on Monday's classes.
type DayOverride struct {
	userID    UserID
	date      string
	day       Weekday
	createdAt time.Time
}

func NewDayOverride(userID UserID, date string, day Weekday) (*DayOverride, error) {
	if _, err := ParseCalendarDate(date); err != nil {
		return nil, err
	}

	if !day.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, day)
	}

	return &DayOverride{
		userID:    userID,
		date:      date,
		day:       day,
		createdAt: time.Now(),
	}, nil
}

func ReconstituteDayOverride(userID UserID, date string, day Weekday, createdAt time.Time) *DayOverride {
	return &DayOverride{
		userID:    userID,
		date:      date,
		day:       day,
		createdAt: createdAt,
	}
}

func (o *DayOverride) UserID() UserID {
	return o.userID
}

func (o *DayOverride) Date() string {
	return o.date
}

func (o *DayOverride) Day() Weekday {
	return o.day
}

func (o *DayOverride) CreatedAt() time.Time {
	return o.createdAt
}

func ParseCalendarDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return t, nil
}

func CalendarDate(t time.Time) string {
	return t.Format(dateLayout)
}

// DayOverrideProvider looks up the weekday a date runs on. ok is false when
// the date has no override.
type DayOverrideProvider interface {
	OverrideDay(ctx context.Context, userID UserID, date string) (day Weekday, ok bool, err error)
}
