package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-class-remind/internal/app"
	"github.com/KasumiMercury/primind-class-remind/internal/domain"
	"github.com/KasumiMercury/primind-class-remind/internal/testutil"
)

// seedB1 registers DS in slot B1: Tuesday 09:00 and Thursday 10:00.
func seedB1(t *testing.T, repo *memEntryRepo, userID domain.UserID) {
	t.Helper()

	uc := app.NewTimetableUseCase(repo, newTodaySchedule(repo, memOverrides{}))

	_, err := uc.RegisterCourses(context.Background(), app.RegisterCoursesInput{
		UserID:  userID.String(),
		Courses: []app.CourseInput{dsCourse("B1")},
	})
	require.NoError(t, err)
}

func TestEvaluateReminders(t *testing.T) {
	repo := &memEntryRepo{}
	userID := testutil.NewUserID(t)
	seedB1(t, repo, userID)

	uc := app.NewReminderUseCase(newTodaySchedule(repo, memOverrides{}), domain.DefaultReminderWindow(), "/timetable")
	ctx := context.Background()
	now := time.Date(2026, 10, 13, 8, 55, 0, 0, ist)

	first, err := uc.EvaluateReminders(ctx, app.EvaluateRemindersInput{UserID: userID.String(), Now: now})
	require.NoError(t, err)

	assert.Equal(t, "2026-10-13", first.Date)
	assert.Equal(t, "Tuesday", first.Day)
	require.Len(t, first.Due, 1)

	due := first.Due[0]
	assert.Equal(t, "Upcoming class: DS", due.Title)
	assert.Equal(t, "DS (CSE101) starts at 09:00 in R1", due.Body)
	assert.Equal(t, "/timetable", due.URL)
	assert.Equal(t, "2026-10-13|"+due.Entry.ID, due.Key)
	assert.Equal(t, []string{due.Key}, first.Notified)

	second, err := uc.EvaluateReminders(ctx, app.EvaluateRemindersInput{
		UserID:   userID.String(),
		Now:      now.Add(30 * time.Second),
		Notified: first.Notified,
	})
	require.NoError(t, err)
	assert.Empty(t, second.Due)
	assert.Equal(t, first.Notified, second.Notified)
}

func TestEvaluateRemindersPrunesOtherDates(t *testing.T) {
	repo := &memEntryRepo{}
	userID := testutil.NewUserID(t)
	seedB1(t, repo, userID)

	uc := app.NewReminderUseCase(newTodaySchedule(repo, memOverrides{}), domain.DefaultReminderWindow(), "")
	stale := "2026-10-06|" + domain.NewEntryID().String()

	out, err := uc.EvaluateReminders(context.Background(), app.EvaluateRemindersInput{
		UserID:   userID.String(),
		Now:      time.Date(2026, 10, 13, 7, 0, 0, 0, ist),
		Notified: []string{stale},
	})

	require.NoError(t, err)
	assert.Empty(t, out.Due)
	assert.Empty(t, out.Notified)
}

func TestEvaluateRemindersValidation(t *testing.T) {
	uc := app.NewReminderUseCase(newTodaySchedule(&memEntryRepo{}, memOverrides{}), domain.DefaultReminderWindow(), "")

	tests := []struct {
		name      string
		input     app.EvaluateRemindersInput
		wantField string
	}{
		{
			name:      "bad user id",
			input:     app.EvaluateRemindersInput{UserID: "x"},
			wantField: "user_id",
		},
		{
			name:      "bad notified key",
			input:     app.EvaluateRemindersInput{UserID: "0190a6e0-0000-7000-8000-000000000001", Notified: []string{"garbage"}},
			wantField: "notified[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.EvaluateReminders(context.Background(), tt.input)

			var validationErr *app.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}
