package handler

import "time"

// CourseRequest leaves Slot unvalidated so an empty expression reaches the
// resolver and is reported like any other unknown code.
type CourseRequest struct {
	SubjectName string  `json:"subject_name" binding:"required"`
	SubjectCode string  `json:"subject_code"`
	SessionType string  `json:"session_type" binding:"required"`
	Slot        string  `json:"slot"`
	RoomNumber  string  `json:"room_number"`
	Credit      float64 `json:"credit" binding:"gte=0"`
}

type CoursesRequest struct {
	Courses []CourseRequest `json:"courses" binding:"required,dive"`
}

type RegisterCoursesQuery struct {
	Replace bool `form:"replace"`
}

type EntryRequest struct {
	SubjectName string  `json:"subject_name" binding:"required"`
	SubjectCode string  `json:"subject_code"`
	SessionType string  `json:"session_type" binding:"required"`
	SlotCode    string  `json:"slot_code"`
	SlotLabel   string  `json:"slot_label"`
	RoomNumber  string  `json:"room_number"`
	Credit      float64 `json:"credit" binding:"gte=0"`
	Day         string  `json:"day" binding:"required"`
	StartTime   string  `json:"start_time" binding:"required"`
	EndTime     string  `json:"end_time" binding:"required"`
}

type ListEntriesQuery struct {
	Day string `form:"day"`
}

// PushSubscriptionRequest mirrors the browser's PushSubscription.toJSON().
type PushSubscriptionRequest struct {
	Endpoint string               `json:"endpoint" binding:"required,url"`
	Keys     PushSubscriptionKeys `json:"keys" binding:"required"`
}

type PushSubscriptionKeys struct {
	P256dh string `json:"p256dh" binding:"required"`
	Auth   string `json:"auth" binding:"required"`
}

type DayOverrideRequest struct {
	Date string `json:"date" binding:"required"`
	Day  string `json:"day" binding:"required"`
}

type EvaluateRemindersRequest struct {
	Now      *time.Time `json:"now"`
	Notified []string   `json:"notified"`
}
