package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

type timetableUseCaseImpl struct {
	repo  domain.ScheduleEntryRepository
	today *TodaySchedule
}

func NewTimetableUseCase(repo domain.ScheduleEntryRepository, today *TodaySchedule) TimetableUseCase {
	return &timetableUseCaseImpl{
		repo:  repo,
		today: today,
	}
}

func (uc *timetableUseCaseImpl) PreviewCourses(ctx context.Context, input PreviewCoursesInput) (PreviewOutput, error) {
	courses, err := toDomainCourses(input.Courses)
	if err != nil {
		return PreviewOutput{}, err
	}

	result := domain.ResolveCourses(courses)

	slog.DebugContext(ctx, "courses previewed",
		"course_count", len(courses),
		"entry_count", len(result.Entries),
		"error_count", len(result.Errors),
	)

	return FromResolveResult(result), nil
}

func (uc *timetableUseCaseImpl) RegisterCourses(ctx context.Context, input RegisterCoursesInput) (EntriesOutput, error) {
	slog.DebugContext(ctx, "registering courses",
		"user_id", input.UserID,
		"course_count", len(input.Courses),
		"replace", input.Replace,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return EntriesOutput{}, NewValidationError("user_id", err.Error())
	}

	if len(input.Courses) == 0 {
		return EntriesOutput{}, NewValidationError("courses", "at least one course is required")
	}

	courses, err := toDomainCourses(input.Courses)
	if err != nil {
		return EntriesOutput{}, err
	}

	result := domain.ResolveCourses(courses)
	if result.HasErrors() {
		slog.InfoContext(ctx, "course registration blocked by unresolved slots",
			"user_id", input.UserID,
			"error_count", len(result.Errors),
		)

		return EntriesOutput{}, NewSlotResolutionError(result.Errors)
	}

	entries := make([]*domain.ScheduleEntry, 0, len(result.Entries))
	for i, details := range result.Entries {
		entry, err := domain.NewScheduleEntry(userID, domain.SourceFFCS, details)
		if err != nil {
			return EntriesOutput{}, NewValidationError(fmt.Sprintf("entries[%d]", i), err.Error())
		}

		entries = append(entries, entry)
	}

	if err := uc.repo.WithTx(ctx, func(txRepo domain.ScheduleEntryRepository) error {
		if input.Replace {
			deleted, err := txRepo.DeleteByUserAndSource(ctx, userID, domain.SourceFFCS)
			if err != nil {
				return err
			}

			slog.DebugContext(ctx, "previous ffcs entries removed",
				"user_id", input.UserID,
				"deleted_count", deleted,
			)
		}

		for _, entry := range entries {
			if err := txRepo.Save(ctx, entry); err != nil {
				slog.ErrorContext(ctx, "failed to save schedule entry",
					"error", err,
					"user_id", input.UserID,
					"entry_id", entry.ID().String(),
				)

				return err
			}
		}

		return nil
	}); err != nil {
		return EntriesOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "courses registered",
		"user_id", input.UserID,
		"entry_count", len(entries),
	)

	sortEntries(entries)

	return FromEntities(entries), nil
}

func (uc *timetableUseCaseImpl) CreateManualEntry(ctx context.Context, input CreateEntryInput) (EntryOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return EntryOutput{}, NewValidationError("user_id", err.Error())
	}

	details, err := toDomainDetails(input.Entry)
	if err != nil {
		return EntryOutput{}, err
	}

	entry, err := domain.NewScheduleEntry(userID, domain.SourceManual, details)
	if err != nil {
		return EntryOutput{}, NewValidationError("entry", err.Error())
	}

	if err := uc.repo.Save(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to save manual entry",
			"error", err,
			"user_id", input.UserID,
		)

		return EntryOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "manual entry created",
		"user_id", input.UserID,
		"entry_id", entry.ID().String(),
	)

	return FromEntity(entry), nil
}

// UpdateEntry edits manual and ffcs entries alike; the stored source is kept.
func (uc *timetableUseCaseImpl) UpdateEntry(ctx context.Context, input UpdateEntryInput) (EntryOutput, error) {
	entry, err := uc.findOwnedEntry(ctx, input.UserID, input.ID)
	if err != nil {
		return EntryOutput{}, err
	}

	details, err := toDomainDetails(input.Entry)
	if err != nil {
		return EntryOutput{}, err
	}

	if err := entry.Update(details); err != nil {
		return EntryOutput{}, NewValidationError("entry", err.Error())
	}

	if err := uc.repo.Update(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return EntryOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to update schedule entry",
			"error", err,
			"entry_id", input.ID,
		)

		return EntryOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "schedule entry updated",
		"entry_id", input.ID,
		"source", string(entry.Source()),
	)

	return FromEntity(entry), nil
}

func (uc *timetableUseCaseImpl) DeleteEntry(ctx context.Context, input DeleteEntryInput) error {
	entry, err := uc.findOwnedEntry(ctx, input.UserID, input.ID)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, entry.ID()); err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to delete schedule entry",
			"error", err,
			"entry_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "schedule entry deleted",
		"entry_id", input.ID,
	)

	return nil
}

func (uc *timetableUseCaseImpl) ListEntries(ctx context.Context, input ListEntriesInput) (EntriesOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return EntriesOutput{}, NewValidationError("user_id", err.Error())
	}

	var entries []*domain.ScheduleEntry

	if input.Day == "" {
		entries, err = uc.repo.ListByUser(ctx, userID)
	} else {
		day, dayErr := domain.NewWeekday(input.Day)
		if dayErr != nil {
			return EntriesOutput{}, NewValidationError("day", dayErr.Error())
		}

		entries, err = uc.repo.ListByUserAndDay(ctx, userID, day)
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to list schedule entries",
			"error", err,
			"user_id", input.UserID,
		)

		return EntriesOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	sortEntries(entries)

	return FromEntities(entries), nil
}

func (uc *timetableUseCaseImpl) ListTodayEntries(ctx context.Context, input ListTodayEntriesInput) (TodayEntriesOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return TodayEntriesOutput{}, NewValidationError("user_id", err.Error())
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	day, entries, err := uc.today.Entries(ctx, userID, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load today's entries",
			"error", err,
			"user_id", input.UserID,
		)

		return TodayEntriesOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return TodayEntriesOutput{
		Date:    domain.CalendarDate(now.In(uc.today.Location())),
		Day:     day.String(),
		Entries: FromEntities(entries).Entries,
	}, nil
}

func (uc *timetableUseCaseImpl) findOwnedEntry(ctx context.Context, rawUserID, rawEntryID string) (*domain.ScheduleEntry, error) {
	userID, err := domain.UserIDFromString(rawUserID)
	if err != nil {
		return nil, NewValidationError("user_id", err.Error())
	}

	entryID, err := domain.EntryIDFromString(rawEntryID)
	if err != nil {
		return nil, NewValidationError("id", err.Error())
	}

	entry, err := uc.repo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to find schedule entry",
			"error", err,
			"entry_id", rawEntryID,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	// Entries of other users are reported as missing.
	if !entry.UserID().Equals(userID) {
		slog.WarnContext(ctx, "schedule entry owned by another user",
			"entry_id", rawEntryID,
			"user_id", rawUserID,
		)

		return nil, fmt.Errorf("%w: %v", ErrNotFound, domain.ErrEntryNotFound)
	}

	return entry, nil
}

func toDomainCourses(inputs []CourseInput) ([]domain.CourseInput, error) {
	courses := make([]domain.CourseInput, 0, len(inputs))
	for i, c := range inputs {
		sessionType, err := domain.NewSessionType(c.SessionType)
		if err != nil {
			return nil, NewValidationError(fmt.Sprintf("courses[%d].session_type", i), err.Error())
		}

		courses = append(courses, domain.CourseInput{
			SubjectName:    c.SubjectName,
			SubjectCode:    c.SubjectCode,
			SessionType:    sessionType,
			SlotExpression: c.SlotExpression,
			RoomNumber:     c.RoomNumber,
			Credit:         c.Credit,
		})
	}

	return courses, nil
}

func toDomainDetails(input EntryInput) (domain.EntryDetails, error) {
	sessionType, err := domain.NewSessionType(input.SessionType)
	if err != nil {
		return domain.EntryDetails{}, NewValidationError("session_type", err.Error())
	}

	day, err := domain.NewWeekday(input.Day)
	if err != nil {
		return domain.EntryDetails{}, NewValidationError("day", err.Error())
	}

	start, err := domain.ParseClockTime(input.StartTime)
	if err != nil {
		return domain.EntryDetails{}, NewValidationError("start_time", err.Error())
	}

	end, err := domain.ParseClockTime(input.EndTime)
	if err != nil {
		return domain.EntryDetails{}, NewValidationError("end_time", err.Error())
	}

	return domain.EntryDetails{
		SubjectName: input.SubjectName,
		SubjectCode: input.SubjectCode,
		SessionType: sessionType,
		SlotCode:    input.SlotCode,
		SlotLabel:   input.SlotLabel,
		RoomNumber:  input.RoomNumber,
		Credit:      input.Credit,
		Day:         day,
		StartTime:   start.String(),
		EndTime:     end.String(),
	}, nil
}
