package handler

import (
	"time"

	"github.com/KasumiMercury/primind-class-remind/internal/app"
)

type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Field   string   `json:"field,omitempty"`
	Details []string `json:"details,omitempty"`
}

type ResolvedEntryResponse struct {
	SubjectName string  `json:"subject_name"`
	SubjectCode string  `json:"subject_code"`
	SessionType string  `json:"session_type"`
	SlotCode    string  `json:"slot_code"`
	SlotLabel   string  `json:"slot_label"`
	RoomNumber  string  `json:"room_number"`
	Credit      float64 `json:"credit"`
	Day         string  `json:"day"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
}

type ResolveCoursesResponse struct {
	Entries []ResolvedEntryResponse `json:"entries"`
	Errors  []string                `json:"errors"`
}

type EntryResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Source string `json:"source"`
	ResolvedEntryResponse
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
	Count   int32           `json:"count"`
}

type TodayEntriesResponse struct {
	Date    string          `json:"date"`
	Day     string          `json:"day"`
	Entries []EntryResponse `json:"entries"`
}

type DayOverrideResponse struct {
	Date      string    `json:"date"`
	Day       string    `json:"day"`
	CreatedAt time.Time `json:"created_at"`
}

type DayOverridesResponse struct {
	Overrides []DayOverrideResponse `json:"overrides"`
}

type DueReminderResponse struct {
	Entry EntryResponse `json:"entry"`
	Key   string        `json:"key"`
	Tag   string        `json:"tag"`
	Title string        `json:"title"`
	Body  string        `json:"body"`
	URL   string        `json:"url"`
}

type EvaluateRemindersResponse struct {
	Date     string                `json:"date"`
	Day      string                `json:"day"`
	Due      []DueReminderResponse `json:"due"`
	Notified []string              `json:"notified"`
}

func fromResolved(o app.ResolvedEntryOutput) ResolvedEntryResponse {
	return ResolvedEntryResponse{
		SubjectName: o.SubjectName,
		SubjectCode: o.SubjectCode,
		SessionType: o.SessionType,
		SlotCode:    o.SlotCode,
		SlotLabel:   o.SlotLabel,
		RoomNumber:  o.RoomNumber,
		Credit:      o.Credit,
		Day:         o.Day,
		StartTime:   o.StartTime,
		EndTime:     o.EndTime,
	}
}

func FromPreview(output app.PreviewOutput) ResolveCoursesResponse {
	entries := make([]ResolvedEntryResponse, 0, len(output.Entries))
	for _, e := range output.Entries {
		entries = append(entries, fromResolved(e))
	}

	errs := output.Errors
	if errs == nil {
		errs = []string{}
	}

	return ResolveCoursesResponse{
		Entries: entries,
		Errors:  errs,
	}
}

func FromDTO(output app.EntryOutput) EntryResponse {
	return EntryResponse{
		ID:                    output.ID,
		UserID:                output.UserID,
		Source:                output.Source,
		ResolvedEntryResponse: fromResolved(output.ResolvedEntryOutput),
		CreatedAt:             output.CreatedAt,
		UpdatedAt:             output.UpdatedAt,
	}
}

func fromDTOList(outputs []app.EntryOutput) []EntryResponse {
	entries := make([]EntryResponse, 0, len(outputs))
	for _, o := range outputs {
		entries = append(entries, FromDTO(o))
	}

	return entries
}

func FromDTOs(output app.EntriesOutput) EntriesResponse {
	return EntriesResponse{
		Entries: fromDTOList(output.Entries),
		Count:   output.Count,
	}
}

func FromToday(output app.TodayEntriesOutput) TodayEntriesResponse {
	return TodayEntriesResponse{
		Date:    output.Date,
		Day:     output.Day,
		Entries: fromDTOList(output.Entries),
	}
}

func FromDayOverride(output app.DayOverrideOutput) DayOverrideResponse {
	return DayOverrideResponse{
		Date:      output.Date,
		Day:       output.Day,
		CreatedAt: output.CreatedAt,
	}
}

func FromDayOverrides(output app.DayOverridesOutput) DayOverridesResponse {
	overrides := make([]DayOverrideResponse, 0, len(output.Overrides))
	for _, o := range output.Overrides {
		overrides = append(overrides, FromDayOverride(o))
	}

	return DayOverridesResponse{Overrides: overrides}
}

func FromEvaluation(output app.EvaluateRemindersOutput) EvaluateRemindersResponse {
	due := make([]DueReminderResponse, 0, len(output.Due))
	for _, d := range output.Due {
		due = append(due, DueReminderResponse{
			Entry: FromDTO(d.Entry),
			Key:   d.Key,
			Tag:   d.Tag,
			Title: d.Title,
			Body:  d.Body,
			URL:   d.URL,
		})
	}

	notified := output.Notified
	if notified == nil {
		notified = []string{}
	}

	return EvaluateRemindersResponse{
		Date:     output.Date,
		Day:      output.Day,
		Due:      due,
		Notified: notified,
	}
}
