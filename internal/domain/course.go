package domain

import (
	"fmt"
	"strings"
)

type SessionType string

const (
	SessionTheory SessionType = "theory"
	SessionLab    SessionType = "lab"
)

func NewSessionType(s string) (SessionType, error) {
	switch SessionType(strings.ToLower(strings.TrimSpace(s))) {
	case SessionTheory:
		return SessionTheory, nil
	case SessionLab:
		return SessionLab, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidSessionType, s)
	}
}

// CourseInput is one course as entered at registration time.
// SlotExpression is a "+"-joined list of slot codes such as "A1+TA1".
type CourseInput struct {
	SubjectName    string
	SubjectCode    string
	SessionType    SessionType
	SlotExpression string
	RoomNumber     string
	Credit         float64
}

// EntryDetails carries the fields shared by every schedule entry,
// independent of identity and ownership.
type EntryDetails struct {
	SubjectName string
	SubjectCode string
	SessionType SessionType
	SlotCode    string
	SlotLabel   string
	RoomNumber  string
	Credit      float64
	Day         Weekday
	StartTime   string
	EndTime     string
}

func (d EntryDetails) Validate() error {
	if strings.TrimSpace(d.SubjectName) == "" {
		return ErrEmptySubjectName
	}

	if d.Credit < 0 {
		return ErrNegativeCredit
	}

	if !d.Day.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidWeekday, d.Day)
	}

	start, err := ParseClockTime(d.StartTime)
	if err != nil {
		return err
	}

	end, err := ParseClockTime(d.EndTime)
	if err != nil {
		return err
	}

	if !start.Before(end) {
		return ErrInvalidTimeOrder
	}

	return nil
}
