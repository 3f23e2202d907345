package app

import (
	"sort"
	"time"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

type ResolvedEntryOutput struct {
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

type PreviewOutput struct {
	Entries []ResolvedEntryOutput
	Errors  []string
}

type EntryOutput struct {
	ID     string
	UserID string
	Source string
	ResolvedEntryOutput
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EntriesOutput struct {
	Entries []EntryOutput
	Count   int32
}

type TodayEntriesOutput struct {
	Date    string
	Day     string
	Entries []EntryOutput
}

func fromDetails(d domain.EntryDetails) ResolvedEntryOutput {
	return ResolvedEntryOutput{
		SubjectName: d.SubjectName,
		SubjectCode: d.SubjectCode,
		SessionType: string(d.SessionType),
		SlotCode:    d.SlotCode,
		SlotLabel:   d.SlotLabel,
		RoomNumber:  d.RoomNumber,
		Credit:      d.Credit,
		Day:         d.Day.String(),
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
	}
}

func FromResolveResult(result domain.ResolveResult) PreviewOutput {
	entries := make([]ResolvedEntryOutput, 0, len(result.Entries))
	for _, d := range result.Entries {
		entries = append(entries, fromDetails(d))
	}

	errs := make([]string, 0, len(result.Errors))
	errs = append(errs, result.Errors...)

	return PreviewOutput{
		Entries: entries,
		Errors:  errs,
	}
}

func FromEntity(entry *domain.ScheduleEntry) EntryOutput {
	return EntryOutput{
		ID:                  entry.ID().String(),
		UserID:              entry.UserID().String(),
		Source:              string(entry.Source()),
		ResolvedEntryOutput: fromDetails(entry.Details()),
		CreatedAt:           entry.CreatedAt(),
		UpdatedAt:           entry.UpdatedAt(),
	}
}

func FromEntities(entries []*domain.ScheduleEntry) EntriesOutput {
	outputs := make([]EntryOutput, 0, len(entries))
	for _, e := range entries {
		outputs = append(outputs, FromEntity(e))
	}

	return EntriesOutput{
		Entries: outputs,
		Count:   int32(len(outputs)), //nolint:gosec
	}
}

// sortEntries orders entries by weekday, then start time. The resolver
// keeps input order, so this is applied only on the way out.
func sortEntries(entries []*domain.ScheduleEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, mi := entries[i].SortKey()
		dj, mj := entries[j].SortKey()

		if di != dj {
			return di < dj
		}

		return mi < mj
	})
}
