package app

import "time"

type CourseInput struct {
	SubjectName    string
	SubjectCode    string
	SessionType    string
	SlotExpression string
	RoomNumber     string
	Credit         float64
}

type PreviewCoursesInput struct {
	Courses []CourseInput
}

type RegisterCoursesInput struct {
	UserID  string
	Courses []CourseInput
	// Replace drops the user's previously registered ffcs entries first.
	Replace bool
}

type EntryInput struct {
	SubjectName string
	SubjectCode string
	SessionType string
	SlotCode    string
	SlotLabel   string
	RoomNumber  string
	Credit      float64
	Day         string
	StartTime   string
	EndTime     string
}

type CreateEntryInput struct {
	UserID string
	Entry  EntryInput
}

type UpdateEntryInput struct {
	UserID string
	ID     string
	Entry  EntryInput
}

type DeleteEntryInput struct {
	UserID string
	ID     string
}

type ListEntriesInput struct {
	UserID string
	// Day filters by weekday name when non-empty.
	Day string
}

type ListTodayEntriesInput struct {
	UserID string
	Now    time.Time
}
