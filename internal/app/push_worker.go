package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
	"github.com/KasumiMercury/primind-class-remind/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-class-remind/internal/infra/webpush"
)

const (
	pushWorkerTracer       = "push-worker"
	defaultPushConcurrency = 4
)

// PushMetrics counts delivery outcomes.
type PushMetrics interface {
	RecordSent(ctx context.Context)
	RecordFailed(ctx context.Context)
	RecordExpired(ctx context.Context)
}

type nopPushMetrics struct{}

func (nopPushMetrics) RecordSent(context.Context)    {}
func (nopPushMetrics) RecordFailed(context.Context)  {}
func (nopPushMetrics) RecordExpired(context.Context) {}

type PushWorkerConfig struct {
	Window      domain.ReminderWindow
	Interval    time.Duration
	Concurrency int
	URL         string
}

type PushTickResult struct {
	Users   int
	Sent    int
	Failed  int
	Expired int
}

// PushWorker delivers reminders to every user holding a push subscription.
// Each tick evaluates from scratch with an empty notified set, so an entry
// seen inside the window by two consecutive ticks is pushed twice.
type PushWorker struct {
	cfg       PushWorkerConfig
	subs      domain.PushSubscriptionRepository
	schedule  ScheduleSource
	sender    webpush.Sender
	publisher pubsub.Publisher
	metrics   PushMetrics
	evaluator *domain.ReminderEvaluator
	clock     func() time.Time
}

type PushWorkerOption func(*PushWorker)

func WithPushWorkerClock(clock func() time.Time) PushWorkerOption {
	return func(w *PushWorker) {
		w.clock = clock
	}
}

func WithPushMetrics(metrics PushMetrics) PushWorkerOption {
	return func(w *PushWorker) {
		if metrics != nil {
			w.metrics = metrics
		}
	}
}

// NewPushWorker builds a worker. publisher may be nil, in which case
// expired subscriptions are only cleared.
func NewPushWorker(
	cfg PushWorkerConfig,
	subs domain.PushSubscriptionRepository,
	schedule ScheduleSource,
	sender webpush.Sender,
	publisher pubsub.Publisher,
	opts ...PushWorkerOption,
) *PushWorker {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultPushConcurrency
	}

	w := &PushWorker{
		cfg:       cfg,
		subs:      subs,
		schedule:  schedule,
		sender:    sender,
		publisher: publisher,
		metrics:   nopPushMetrics{},
		evaluator: domain.NewReminderEvaluator(cfg.Window),
		clock:     time.Now,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

func (w *PushWorker) Run(ctx context.Context) error {
	if w.cfg.Interval <= 0 {
		return errors.New("push worker interval must be positive")
	}

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "push worker started",
		slog.Duration("interval", w.cfg.Interval),
		slog.Int("concurrency", w.cfg.Concurrency),
	)

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "push worker stopped")

			return nil
		case <-ticker.C:
			if _, err := w.Tick(ctx); err != nil {
				slog.ErrorContext(ctx, "push worker tick failed",
					slog.String("event", "push.tick.fail"),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

// Tick runs one delivery pass. Only a failure to list subscriptions is
// returned; per-user failures are logged and counted.
func (w *PushWorker) Tick(ctx context.Context) (PushTickResult, error) {
	ctx, span := otel.Tracer(pushWorkerTracer).Start(ctx, "push.tick")
	defer span.End()

	now := w.clock().In(w.schedule.Location())

	users, err := w.subs.ListWithSubscription(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list subscriptions")

		return PushTickResult{}, err
	}

	var sent, failed, expired atomic.Int64

	var g errgroup.Group
	g.SetLimit(w.cfg.Concurrency)

	for _, us := range users {
		g.Go(func() error {
			s, f, e := w.deliver(ctx, now, us)
			sent.Add(int64(s))
			failed.Add(int64(f))
			expired.Add(int64(e))

			return nil
		})
	}

	_ = g.Wait()

	result := PushTickResult{
		Users:   len(users),
		Sent:    int(sent.Load()),
		Failed:  int(failed.Load()),
		Expired: int(expired.Load()),
	}

	span.SetAttributes(
		attribute.Int("push.users", result.Users),
		attribute.Int("push.sent", result.Sent),
		attribute.Int("push.failed", result.Failed),
		attribute.Int("push.expired", result.Expired),
	)

	slog.DebugContext(ctx, "push tick finished",
		slog.String("event", "push.tick.finish"),
		slog.Int("users", result.Users),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("expired", result.Expired),
	)

	return result, nil
}

func (w *PushWorker) deliver(ctx context.Context, now time.Time, us domain.UserSubscription) (sent, failed, expired int) {
	userID := us.UserID.String()

	_, entries, err := w.schedule.Entries(ctx, us.UserID, now)
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch entries for push",
			slog.String("event", "push.fetch.fail"),
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)

		return 0, 1, 0
	}

	eval := w.evaluator.Evaluate(now, entries, domain.NewNotifiedSet())

	for _, reminder := range buildDueReminders(now, eval.ToNotify, w.cfg.URL) {
		payload, err := reminder.Payload.JSON()
		if err != nil {
			failed++

			continue
		}

		err = w.sender.Send(ctx, us.Subscription, payload)
		if err == nil {
			sent++
			w.metrics.RecordSent(ctx)

			continue
		}

		if errors.Is(err, domain.ErrSubscriptionGone) {
			w.expire(ctx, us)
			expired++

			// The subscription no longer exists; the rest would fail too.
			return sent, failed, expired
		}

		failed++
		w.metrics.RecordFailed(ctx)

		slog.WarnContext(ctx, "failed to send push notification",
			slog.String("event", "push.send.fail"),
			slog.String("user_id", userID),
			slog.String("entry_id", reminder.Entry.ID().String()),
			slog.String("error", err.Error()),
		)
	}

	return sent, failed, expired
}

func (w *PushWorker) expire(ctx context.Context, us domain.UserSubscription) {
	userID := us.UserID.String()

	w.metrics.RecordExpired(ctx)

	if err := w.subs.Clear(ctx, us.UserID); err != nil && !errors.Is(err, domain.ErrSubscriptionNotFound) {
		slog.ErrorContext(ctx, "failed to clear expired subscription",
			slog.String("event", "push.subscription.clear.fail"),
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)

		return
	}

	slog.InfoContext(ctx, "push subscription expired and cleared",
		slog.String("event", "push.subscription.expire"),
		slog.String("user_id", userID),
	)

	if w.publisher == nil {
		return
	}

	if err := w.publisher.PublishSubscriptionExpired(ctx, pubsub.SubscriptionExpiredEvent{
		UserID:     userID,
		Endpoint:   us.Subscription.Endpoint(),
		StatusCode: http.StatusGone,
		ExpiredAt:  w.clock(),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish subscription expired event",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}
}
