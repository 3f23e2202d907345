package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

type ReminderSessionConfig struct {
	UserID   domain.UserID
	Window   domain.ReminderWindow
	Interval time.Duration
	URL      string
}

// ReminderSession drives the evaluator for a single user on a fixed tick.
// It owns the notified set for its lifetime. A tick that starts while the
// previous one is still fetching is skipped, and results that arrive after
// the session ended are discarded.
type ReminderSession struct {
	cfg       ReminderSessionConfig
	schedule  ScheduleSource
	notifier  Notifier
	evaluator *domain.ReminderEvaluator
	clock     func() time.Time

	inFlight atomic.Bool
	stopped  atomic.Bool
	wg       sync.WaitGroup

	mu       sync.Mutex
	notified domain.NotifiedSet
}

type SessionOption func(*ReminderSession)

func WithSessionClock(clock func() time.Time) SessionOption {
	return func(s *ReminderSession) {
		s.clock = clock
	}
}

func NewReminderSession(cfg ReminderSessionConfig, schedule ScheduleSource, notifier Notifier, opts ...SessionOption) *ReminderSession {
	s := &ReminderSession{
		cfg:       cfg,
		schedule:  schedule,
		notifier:  notifier,
		evaluator: domain.NewReminderEvaluator(cfg.Window),
		clock:     time.Now,
		notified:  domain.NewNotifiedSet(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run ticks immediately and then every interval until ctx is done. It waits
// for an in-flight tick before returning.
func (s *ReminderSession) Run(ctx context.Context) error {
	if s.cfg.Interval <= 0 {
		return errors.New("reminder session interval must be positive")
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	defer s.wg.Wait()
	defer s.stopped.Store(true)

	slog.InfoContext(ctx, "reminder session started",
		slog.String("user_id", s.cfg.UserID.String()),
		slog.Duration("interval", s.cfg.Interval),
		slog.Duration("lookahead", s.cfg.Window.Lookahead()),
		slog.Duration("tolerance", s.cfg.Window.Tolerance()),
	)

	s.startTick(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "reminder session stopped",
				slog.String("user_id", s.cfg.UserID.String()),
			)

			return nil
		case <-ticker.C:
			s.startTick(ctx)
		}
	}
}

func (s *ReminderSession) startTick(ctx context.Context) {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		s.Tick(ctx)
	}()
}

// Tick runs one evaluation. ran is false when the tick was skipped because
// another one is still in progress.
func (s *ReminderSession) Tick(ctx context.Context) (fired int, ran bool) {
	if !s.inFlight.CompareAndSwap(false, true) {
		slog.DebugContext(ctx, "previous tick still running",
			slog.String("event", "reminder.tick.skip"),
			slog.String("user_id", s.cfg.UserID.String()),
		)

		return 0, false
	}
	defer s.inFlight.Store(false)

	now := s.clock().In(s.schedule.Location())

	_, entries, err := s.schedule.Entries(ctx, s.cfg.UserID, now)
	if err != nil {
		// The next tick fetches again.
		slog.WarnContext(ctx, "failed to fetch today's entries",
			slog.String("event", "reminder.fetch.fail"),
			slog.String("user_id", s.cfg.UserID.String()),
			slog.String("error", err.Error()),
		)

		return 0, true
	}

	if s.stopped.Load() || ctx.Err() != nil {
		slog.DebugContext(ctx, "discarding entries fetched after session end",
			slog.String("event", "reminder.tick.stale"),
			slog.String("user_id", s.cfg.UserID.String()),
		)

		return 0, true
	}

	s.mu.Lock()
	s.notified.Prune(now)
	eval := s.evaluator.Evaluate(now, entries, s.notified)
	s.notified = eval.Notified
	s.mu.Unlock()

	for _, reminder := range buildDueReminders(now, eval.ToNotify, s.cfg.URL) {
		if err := s.notifier.Notify(ctx, s.cfg.UserID, reminder); err != nil {
			slog.WarnContext(ctx, "failed to dispatch reminder",
				slog.String("event", "reminder.notify.fail"),
				slog.String("user_id", s.cfg.UserID.String()),
				slog.String("entry_id", reminder.Entry.ID().String()),
				slog.String("error", err.Error()),
			)

			continue
		}

		fired++
	}

	return fired, true
}

// Notified returns a snapshot of the keys recorded so far.
func (s *ReminderSession) Notified() []domain.NotificationKey {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.notified.Keys()
}
