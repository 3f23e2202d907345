package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-class-remind/internal/app"
	"github.com/KasumiMercury/primind-class-remind/internal/domain"
	"github.com/KasumiMercury/primind-class-remind/internal/infra/repository"
	"github.com/KasumiMercury/primind-class-remind/internal/testutil"
)

func setupUseCaseTest(t *testing.T) (app.TimetableUseCase, app.DayOverrideUseCase, func()) {
	t.Helper()

	testDB := testutil.SetupTestDB(t)
	entries := repository.NewScheduleEntryRepository(testDB.DB)
	overrides := repository.NewDayOverrideRepository(testDB.DB)

	days, err := domain.NewDayResolver(overrides, ist, nil)
	require.NoError(t, err)

	return app.NewTimetableUseCase(entries, app.NewTodaySchedule(entries, days)),
		app.NewDayOverrideUseCase(overrides),
		func() {
			testDB.CleanTables(t)
			testDB.TeardownTestDB(t)
		}
}

func TestRegisterAndListTodayWithDatabase(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	timetable, dayOverrides, cleanup := setupUseCaseTest(t)
	defer cleanup()

	ctx := context.Background()
	userID := testutil.NewUserID(t).String()

	registered, err := timetable.RegisterCourses(ctx, app.RegisterCoursesInput{
		UserID:  userID,
		Courses: []app.CourseInput{dsCourse("B1"), dsCourse("L31+L32")},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(4), registered.Count)

	_, err = dayOverrides.CreateDayOverride(ctx, app.CreateDayOverrideInput{
		UserID: userID,
		Date:   "2026-10-17",
		Day:    "Thursday",
	})
	require.NoError(t, err)

	today, err := timetable.ListTodayEntries(ctx, app.ListTodayEntriesInput{
		UserID: userID,
		Now:    time.Date(2026, 10, 17, 8, 0, 0, 0, ist),
	})
	require.NoError(t, err)
	assert.Equal(t, "Thursday", today.Day)
	require.Len(t, today.Entries, 1)
	assert.Equal(t, "10:00", today.Entries[0].StartTime)

	_, err = timetable.RegisterCourses(ctx, app.RegisterCoursesInput{
		UserID:  userID,
		Courses: []app.CourseInput{dsCourse("C1")},
		Replace: true,
	})
	require.NoError(t, err)

	all, err := timetable.ListEntries(ctx, app.ListEntriesInput{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, int32(2), all.Count)
}
