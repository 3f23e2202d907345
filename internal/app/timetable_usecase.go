package app

import (
	"context"
)

type TimetableUseCase interface {
	PreviewCourses(ctx context.Context, input PreviewCoursesInput) (PreviewOutput, error)
	RegisterCourses(ctx context.Context, input RegisterCoursesInput) (EntriesOutput, error)
	CreateManualEntry(ctx context.Context, input CreateEntryInput) (EntryOutput, error)
	UpdateEntry(ctx context.Context, input UpdateEntryInput) (EntryOutput, error)
	DeleteEntry(ctx context.Context, input DeleteEntryInput) error
	ListEntries(ctx context.Context, input ListEntriesInput) (EntriesOutput, error)
	ListTodayEntries(ctx context.Context, input ListTodayEntriesInput) (TodayEntriesOutput, error)
}
