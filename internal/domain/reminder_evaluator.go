package domain

import (
	"time"
)

type Evaluation struct {
	ToNotify []*ScheduleEntry
	Notified NotifiedSet
}

type ReminderEvaluator struct {
	window ReminderWindow
}

func NewReminderEvaluator(window ReminderWindow) *ReminderEvaluator {
	return &ReminderEvaluator{window: window}
}

// Evaluate selects today's entries whose start falls inside the window and
// that have not fired yet today. The start time is placed on now's calendar
// date in now's location. Entries with an unparsable start time are skipped.
// notified is not modified; the returned set holds the additions.
func (e *ReminderEvaluator) Evaluate(now time.Time, todays []*ScheduleEntry, notified NotifiedSet) Evaluation {
	updated := notified.Clone()
	toNotify := make([]*ScheduleEntry, 0)

	for _, entry := range todays {
		start, err := ParseClockTime(entry.StartTime())
		if err != nil {
			continue
		}

		if !e.window.Contains(start.On(now).Sub(now)) {
			continue
		}

		if !updated.Add(NewNotificationKey(now, entry.ID())) {
			continue
		}

		toNotify = append(toNotify, entry)
	}

	return Evaluation{
		ToNotify: toNotify,
		Notified: updated,
	}
}

func (e *ReminderEvaluator) Window() ReminderWindow {
	return e.window
}
