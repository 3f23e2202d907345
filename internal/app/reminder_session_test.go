package app_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-class-remind/internal/app"
	"github.com/KasumiMercury/primind-class-remind/internal/domain"
	"github.com/KasumiMercury/primind-class-remind/internal/testutil"
)

type fakeSchedule struct {
	mu      sync.Mutex
	byUser  map[string][]*domain.ScheduleEntry
	errUser map[string]error
	err     error
	onFetch func()
	fetches atomic.Int32
}

func newFakeSchedule() *fakeSchedule {
	return &fakeSchedule{
		byUser:  make(map[string][]*domain.ScheduleEntry),
		errUser: make(map[string]error),
	}
}

func (s *fakeSchedule) add(userID domain.UserID, entries ...*domain.ScheduleEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byUser[userID.String()] = append(s.byUser[userID.String()], entries...)
}

func (s *fakeSchedule) Entries(_ context.Context, userID domain.UserID, now time.Time) (domain.Weekday, []*domain.ScheduleEntry, error) {
	s.fetches.Add(1)

	if s.onFetch != nil {
		s.onFetch()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return "", nil, s.err
	}

	if err := s.errUser[userID.String()]; err != nil {
		return "", nil, err
	}

	return domain.WeekdayOf(now), s.byUser[userID.String()], nil
}

func (s *fakeSchedule) Location() *time.Location {
	return ist
}

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *stepClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = t
}

func tuesdayEntry(t *testing.T, userID domain.UserID, start, end string) *domain.ScheduleEntry {
	t.Helper()

	return testutil.NewEntry(t, userID, domain.SourceFFCS, testutil.EntryDetails(domain.Tuesday, start, end))
}

func newSession(userID domain.UserID, schedule app.ScheduleSource, notifier app.Notifier, clock *stepClock) *app.ReminderSession {
	return app.NewReminderSession(app.ReminderSessionConfig{
		UserID:   userID,
		Window:   domain.DefaultReminderWindow(),
		Interval: time.Minute,
		URL:      "/timetable",
	}, schedule, notifier, app.WithSessionClock(clock.Now))
}

func TestReminderSessionFiresOncePerEntryPerDay(t *testing.T) {
	userID := testutil.NewUserID(t)
	schedule := newFakeSchedule()
	schedule.add(userID, tuesdayEntry(t, userID, "09:00", "09:50"))

	notifier := &recordingNotifier{}
	clock := &stepClock{now: time.Date(2026, 10, 13, 8, 55, 0, 0, ist)}
	session := newSession(userID, schedule, notifier, clock)
	ctx := context.Background()

	fired, ran := session.Tick(ctx)
	assert.True(t, ran)
	assert.Equal(t, 1, fired)

	clock.Set(time.Date(2026, 10, 13, 8, 55, 30, 0, ist))
	fired, _ = session.Tick(ctx)
	assert.Equal(t, 0, fired, "same entry inside the window on the same date must not fire twice")

	clock.Set(time.Date(2026, 10, 20, 8, 55, 10, 0, ist))
	fired, _ = session.Tick(ctx)
	assert.Equal(t, 1, fired, "next week's occurrence fires again")

	keys := session.Notified()
	require.Len(t, keys, 1, "keys of earlier dates are pruned")
	assert.Equal(t, "2026-10-20", keys[0].Date)

	require.Equal(t, 2, notifier.count())
	assert.Equal(t, "Upcoming class: Data Structures", notifier.received[0].Payload.Title)
}

func TestReminderSessionSkipsOverlappingTick(t *testing.T) {
	userID := testutil.NewUserID(t)
	schedule := newFakeSchedule()
	schedule.add(userID, tuesdayEntry(t, userID, "09:00", "09:50"))

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	schedule.onFetch = func() {
		once.Do(func() {
			close(started)
			<-release
		})
	}

	notifier := &recordingNotifier{}
	clock := &stepClock{now: time.Date(2026, 10, 13, 8, 55, 0, 0, ist)}
	session := newSession(userID, schedule, notifier, clock)
	ctx := context.Background()

	done := make(chan int)
	go func() {
		fired, _ := session.Tick(ctx)
		done <- fired
	}()

	<-started

	fired, ran := session.Tick(ctx)
	assert.False(t, ran)
	assert.Equal(t, 0, fired)

	close(release)
	assert.Equal(t, 1, <-done)
	assert.Equal(t, int32(1), schedule.fetches.Load())
	assert.Equal(t, 1, notifier.count())
}

func TestReminderSessionDropsResultsAfterEnd(t *testing.T) {
	userID := testutil.NewUserID(t)
	schedule := newFakeSchedule()
	schedule.add(userID, tuesdayEntry(t, userID, "09:00", "09:50"))

	ctx, cancel := context.WithCancel(context.Background())
	schedule.onFetch = cancel

	notifier := &recordingNotifier{}
	clock := &stepClock{now: time.Date(2026, 10, 13, 8, 55, 0, 0, ist)}
	session := newSession(userID, schedule, notifier, clock)

	fired, ran := session.Tick(ctx)

	assert.True(t, ran)
	assert.Equal(t, 0, fired)
	assert.Equal(t, 0, notifier.count())
	assert.Empty(t, session.Notified())
}

func TestReminderSessionNotifierErrorsAreNotFatal(t *testing.T) {
	userID := testutil.NewUserID(t)
	schedule := newFakeSchedule()
	schedule.add(userID,
		tuesdayEntry(t, userID, "09:00", "09:50"),
		tuesdayEntry(t, userID, "09:00", "10:50"),
	)

	notifier := &recordingNotifier{err: errors.New("notification permission revoked")}
	clock := &stepClock{now: time.Date(2026, 10, 13, 8, 55, 0, 0, ist)}
	session := newSession(userID, schedule, notifier, clock)

	fired, ran := session.Tick(context.Background())

	assert.True(t, ran)
	assert.Equal(t, 0, fired)
	assert.Equal(t, 2, notifier.count(), "every due entry is attempted")
	assert.Len(t, session.Notified(), 2)
}

func TestReminderSessionFetchErrorRetriesNextTick(t *testing.T) {
	userID := testutil.NewUserID(t)
	schedule := newFakeSchedule()
	schedule.add(userID, tuesdayEntry(t, userID, "09:00", "09:50"))
	schedule.err = errStoreDown

	notifier := &recordingNotifier{}
	clock := &stepClock{now: time.Date(2026, 10, 13, 8, 55, 0, 0, ist)}
	session := newSession(userID, schedule, notifier, clock)
	ctx := context.Background()

	fired, ran := session.Tick(ctx)
	assert.True(t, ran)
	assert.Equal(t, 0, fired)

	schedule.mu.Lock()
	schedule.err = nil
	schedule.mu.Unlock()

	fired, _ = session.Tick(ctx)
	assert.Equal(t, 1, fired)
}

func TestReminderSessionRun(t *testing.T) {
	userID := testutil.NewUserID(t)
	schedule := newFakeSchedule()
	schedule.add(userID, tuesdayEntry(t, userID, "09:00", "09:50"))

	notifier := &recordingNotifier{}
	clock := &stepClock{now: time.Date(2026, 10, 13, 8, 55, 0, 0, ist)}

	session := app.NewReminderSession(app.ReminderSessionConfig{
		UserID:   userID,
		Window:   domain.DefaultReminderWindow(),
		Interval: 10 * time.Millisecond,
	}, schedule, notifier, app.WithSessionClock(clock.Now))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)

	go func() {
		errCh <- session.Run(ctx)
	}()

	assert.Eventually(t, func() bool {
		return schedule.fetches.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-errCh)
	assert.Equal(t, 1, notifier.count())
}

func TestReminderSessionRunRejectsZeroInterval(t *testing.T) {
	session := app.NewReminderSession(app.ReminderSessionConfig{
		UserID: testutil.NewUserID(t),
		Window: domain.DefaultReminderWindow(),
	}, newFakeSchedule(), &recordingNotifier{})

	assert.Error(t, session.Run(context.Background()))
}
