package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
	"github.com/KasumiMercury/primind-class-remind/internal/infra/repository"
	"github.com/KasumiMercury/primind-class-remind/internal/testutil"
)

func TestScheduleEntrySaveAndFind(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewScheduleEntryRepository(testDB.DB)
	ctx := context.Background()

	userID := testutil.NewUserID(t)
	entry := testutil.NewEntry(t, userID, domain.SourceFFCS, testutil.EntryDetails(domain.Monday, "08:00", "08:50"))

	require.NoError(t, repo.Save(ctx, entry))

	found, err := repo.FindByID(ctx, entry.ID())
	require.NoError(t, err)
	assert.True(t, entry.ID().Equals(found.ID()))
	assert.True(t, userID.Equals(found.UserID()))
	assert.Equal(t, domain.SourceFFCS, found.Source())
	assert.Equal(t, entry.Details(), found.Details())

	err = repo.Save(ctx, entry)
	assert.Error(t, err, "duplicate ID must be rejected")
}

func TestScheduleEntryFindByIDNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewScheduleEntryRepository(testDB.DB)

	_, err := repo.FindByID(context.Background(), domain.NewEntryID())

	assert.True(t, errors.Is(err, domain.ErrEntryNotFound))
}

func TestScheduleEntryListByUserAndDay(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewScheduleEntryRepository(testDB.DB)
	ctx := context.Background()

	userID := testutil.NewUserID(t)
	other := testutil.NewUserID(t)

	late := testutil.NewEntry(t, userID, domain.SourceFFCS, testutil.EntryDetails(domain.Tuesday, "11:00", "11:50"))
	early := testutil.NewEntry(t, userID, domain.SourceManual, testutil.EntryDetails(domain.Tuesday, "08:00", "08:50"))
	otherDay := testutil.NewEntry(t, userID, domain.SourceFFCS, testutil.EntryDetails(domain.Wednesday, "08:00", "08:50"))
	otherUser := testutil.NewEntry(t, other, domain.SourceFFCS, testutil.EntryDetails(domain.Tuesday, "09:00", "09:50"))

	for _, e := range []*domain.ScheduleEntry{late, early, otherDay, otherUser} {
		require.NoError(t, repo.Save(ctx, e))
	}

	entries, err := repo.ListByUserAndDay(ctx, userID, domain.Tuesday)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, early.ID().Equals(entries[0].ID()))
	assert.True(t, late.ID().Equals(entries[1].ID()))

	all, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestScheduleEntryUpdateAndDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewScheduleEntryRepository(testDB.DB)
	ctx := context.Background()

	entry := testutil.NewEntry(t, testutil.NewUserID(t), domain.SourceManual, testutil.EntryDetails(domain.Friday, "10:00", "10:50"))
	require.NoError(t, repo.Save(ctx, entry))

	details := entry.Details()
	details.RoomNumber = ""
	details.StartTime = "10:10"
	require.NoError(t, entry.Update(details))
	require.NoError(t, repo.Update(ctx, entry))

	found, err := repo.FindByID(ctx, entry.ID())
	require.NoError(t, err)
	assert.Equal(t, "", found.Details().RoomNumber)
	assert.Equal(t, "10:10", found.StartTime())

	require.NoError(t, repo.Delete(ctx, entry.ID()))

	err = repo.Delete(ctx, entry.ID())
	assert.True(t, errors.Is(err, domain.ErrEntryNotFound))

	err = repo.Update(ctx, entry)
	assert.True(t, errors.Is(err, domain.ErrEntryNotFound))
}

func TestScheduleEntryDeleteByUserAndSource(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewScheduleEntryRepository(testDB.DB)
	ctx := context.Background()

	userID := testutil.NewUserID(t)
	require.NoError(t, repo.Save(ctx, testutil.NewEntry(t, userID, domain.SourceFFCS, testutil.EntryDetails(domain.Monday, "08:00", "08:50"))))
	require.NoError(t, repo.Save(ctx, testutil.NewEntry(t, userID, domain.SourceFFCS, testutil.EntryDetails(domain.Wednesday, "09:00", "09:50"))))
	require.NoError(t, repo.Save(ctx, testutil.NewEntry(t, userID, domain.SourceManual, testutil.EntryDetails(domain.Monday, "17:00", "18:00"))))

	deleted, err := repo.DeleteByUserAndSource(ctx, userID, domain.SourceFFCS)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, domain.SourceManual, remaining[0].Source())
}

func TestScheduleEntryWithTx(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewScheduleEntryRepository(testDB.DB)
	ctx := context.Background()

	tests := []struct {
		name      string
		fail      bool
		wantCount int
	}{
		{
			name:      "commit keeps every entry",
			fail:      false,
			wantCount: 2,
		},
		{
			name:      "error rolls back every entry",
			fail:      true,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.CleanTables(t)

			userID := testutil.NewUserID(t)
			errBoom := errors.New("boom")

			err := repo.WithTx(ctx, func(txRepo domain.ScheduleEntryRepository) error {
				for _, day := range []domain.Weekday{domain.Monday, domain.Tuesday} {
					e := testutil.NewEntry(t, userID, domain.SourceFFCS, testutil.EntryDetails(day, "08:00", "08:50"))
					if err := txRepo.Save(ctx, e); err != nil {
						return err
					}
				}

				if tt.fail {
					return errBoom
				}

				return nil
			})

			if tt.fail {
				assert.ErrorIs(t, err, errBoom)
			} else {
				assert.NoError(t, err)
			}

			entries, err := repo.ListByUser(ctx, userID)
			require.NoError(t, err)
			assert.Len(t, entries, tt.wantCount)
		})
	}
}
