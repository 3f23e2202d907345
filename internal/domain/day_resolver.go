package domain

import (
	"context"
	"fmt"
	"time"
)

// DayResolver determines which weekday's timetable applies at a moment:
// a date override first, then the actual weekday, then the weekend remap.
type DayResolver struct {
	overrides    DayOverrideProvider
	location     *time.Location
	weekendRemap map[Weekday]Weekday
}

// NewDayResolver builds a resolver. overrides may be nil. loc defaults to UTC.
// weekendRemap keys must be Saturday or Sunday.
func NewDayResolver(overrides DayOverrideProvider, loc *time.Location, weekendRemap map[Weekday]Weekday) (*DayResolver, error) {
	if loc == nil {
		loc = time.UTC
	}

	remap := make(map[Weekday]Weekday, len(weekendRemap))
	for from, to := range weekendRemap {
		if !from.IsWeekend() {
			return nil, fmt.Errorf("%w: weekend remap source %q is not a weekend day", ErrInvalidWeekday, from)
		}

		if !to.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, to)
		}

		remap[from] = to
	}

	return &DayResolver{
		overrides:    overrides,
		location:     loc,
		weekendRemap: remap,
	}, nil
}

func (r *DayResolver) ResolveDay(ctx context.Context, userID UserID, now time.Time) (Weekday, error) {
	local := now.In(r.location)

	if r.overrides != nil {
		day, ok, err := r.overrides.OverrideDay(ctx, userID, CalendarDate(local))
		if err != nil {
			return "", err
		}

		if ok {
			return day, nil
		}
	}

	day := WeekdayOf(local)
	if mapped, ok := r.weekendRemap[day]; ok {
		return mapped, nil
	}

	return day, nil
}

func (r *DayResolver) Location() *time.Location {
	return r.location
}
