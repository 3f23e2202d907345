package domain

import (
	"errors"
	"fmt"
	"time"
)

// ReminderWindow decides whether a class start is close enough to remind.
// Without tolerance a start d ahead of now is due when 0 < d <= lookahead.
// With tolerance the window narrows to a band around lookahead:
// lookahead-tolerance <= d < lookahead+tolerance, and still d > 0.
type ReminderWindow struct {
	lookahead time.Duration
	tolerance time.Duration
	minLead   time.Duration
}

type WindowPreset string

const (
	PresetClient    WindowPreset = "client"
	PresetAlternate WindowPreset = "alternate"
	PresetWorker    WindowPreset = "worker"

	DefaultLookahead = 5 * time.Minute
	DefaultTolerance = 30 * time.Second
)

var (
	ErrInvalidLookahead    = errors.New("lookahead must be positive")
	ErrInvalidTolerance    = errors.New("tolerance cannot be negative")
	ErrUnknownWindowPreset = errors.New("unknown reminder window preset")
)

func NewReminderWindow(lookahead, tolerance time.Duration) (ReminderWindow, error) {
	if lookahead <= 0 {
		return ReminderWindow{}, ErrInvalidLookahead
	}

	if tolerance < 0 {
		return ReminderWindow{}, ErrInvalidTolerance
	}

	var minLead time.Duration
	if tolerance > 0 && tolerance < lookahead {
		minLead = lookahead - tolerance
	}

	return ReminderWindow{lookahead: lookahead, tolerance: tolerance, minLead: minLead}, nil
}

func MustReminderWindow(lookahead, tolerance time.Duration) ReminderWindow {
	w, err := NewReminderWindow(lookahead, tolerance)
	if err != nil {
		panic(err)
	}

	return w
}

// PresetWindow returns one of the three reminder styles in use:
//   - client: 5 minutes give or take 30 seconds (default)
//   - alternate: anything within 10 minutes
//   - worker: 5 minutes give or take 30 seconds
func PresetWindow(preset WindowPreset) (ReminderWindow, error) {
	switch preset {
	case PresetClient, "":
		return MustReminderWindow(DefaultLookahead, DefaultTolerance), nil
	case PresetAlternate:
		return MustReminderWindow(10*time.Minute, 0), nil
	case PresetWorker:
		return MustReminderWindow(5*time.Minute, 30*time.Second), nil
	default:
		return ReminderWindow{}, fmt.Errorf("%w: %s", ErrUnknownWindowPreset, preset)
	}
}

func DefaultReminderWindow() ReminderWindow {
	return MustReminderWindow(DefaultLookahead, DefaultTolerance)
}

func (w ReminderWindow) Contains(untilStart time.Duration) bool {
	if untilStart <= 0 || untilStart < w.minLead {
		return false
	}

	if w.tolerance == 0 {
		return untilStart <= w.lookahead
	}

	return untilStart < w.lookahead+w.tolerance
}

func (w ReminderWindow) Lookahead() time.Duration {
	return w.lookahead
}

func (w ReminderWindow) Tolerance() time.Duration {
	return w.tolerance
}

// MinLead is the shortest lead time still reminded; zero means any
// positive lead up to lookahead.
func (w ReminderWindow) MinLead() time.Duration {
	return w.minLead
}
