package handler_test

import (
	"context"

	"github.com/KasumiMercury/primind-class-remind/internal/app"
)

type stubTimetableUseCase struct {
	preview  func(app.PreviewCoursesInput) (app.PreviewOutput, error)
	register func(app.RegisterCoursesInput) (app.EntriesOutput, error)
	create   func(app.CreateEntryInput) (app.EntryOutput, error)
	update   func(app.UpdateEntryInput) (app.EntryOutput, error)
	remove   func(app.DeleteEntryInput) error
	list     func(app.ListEntriesInput) (app.EntriesOutput, error)
	today    func(app.ListTodayEntriesInput) (app.TodayEntriesOutput, error)
}

func (s *stubTimetableUseCase) PreviewCourses(_ context.Context, input app.PreviewCoursesInput) (app.PreviewOutput, error) {
	return s.preview(input)
}

func (s *stubTimetableUseCase) RegisterCourses(_ context.Context, input app.RegisterCoursesInput) (app.EntriesOutput, error) {
	return s.register(input)
}

func (s *stubTimetableUseCase) CreateManualEntry(_ context.Context, input app.CreateEntryInput) (app.EntryOutput, error) {
	return s.create(input)
}

func (s *stubTimetableUseCase) UpdateEntry(_ context.Context, input app.UpdateEntryInput) (app.EntryOutput, error) {
	return s.update(input)
}

func (s *stubTimetableUseCase) DeleteEntry(_ context.Context, input app.DeleteEntryInput) error {
	return s.remove(input)
}

func (s *stubTimetableUseCase) ListEntries(_ context.Context, input app.ListEntriesInput) (app.EntriesOutput, error) {
	return s.list(input)
}

func (s *stubTimetableUseCase) ListTodayEntries(_ context.Context, input app.ListTodayEntriesInput) (app.TodayEntriesOutput, error) {
	return s.today(input)
}

type stubSubscriptionUseCase struct {
	saved   []app.SaveSubscriptionInput
	deleted []app.DeleteSubscriptionInput
	err     error
}

func (s *stubSubscriptionUseCase) SaveSubscription(_ context.Context, input app.SaveSubscriptionInput) error {
	s.saved = append(s.saved, input)

	return s.err
}

func (s *stubSubscriptionUseCase) DeleteSubscription(_ context.Context, input app.DeleteSubscriptionInput) error {
	s.deleted = append(s.deleted, input)

	return s.err
}

type stubDayOverrideUseCase struct {
	create func(app.CreateDayOverrideInput) (app.DayOverrideOutput, error)
	list   func(app.ListDayOverridesInput) (app.DayOverridesOutput, error)
	remove func(app.DeleteDayOverrideInput) error
}

func (s *stubDayOverrideUseCase) CreateDayOverride(_ context.Context, input app.CreateDayOverrideInput) (app.DayOverrideOutput, error) {
	return s.create(input)
}

func (s *stubDayOverrideUseCase) ListDayOverrides(_ context.Context, input app.ListDayOverridesInput) (app.DayOverridesOutput, error) {
	return s.list(input)
}

func (s *stubDayOverrideUseCase) DeleteDayOverride(_ context.Context, input app.DeleteDayOverrideInput) error {
	return s.remove(input)
}

type stubReminderUseCase struct {
	got    []app.EvaluateRemindersInput
	output app.EvaluateRemindersOutput
	err    error
}

func (s *stubReminderUseCase) EvaluateReminders(_ context.Context, input app.EvaluateRemindersInput) (app.EvaluateRemindersOutput, error) {
	s.got = append(s.got, input)

	return s.output, s.err
}
