// Command notifier runs the reminder loop for a single student and hands
// due reminders to the message bus, or to the log when no bus is set.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KasumiMercury/primind-class-remind/internal/app"
	"github.com/KasumiMercury/primind-class-remind/internal/config"
	"github.com/KasumiMercury/primind-class-remind/internal/domain"
	"github.com/KasumiMercury/primind-class-remind/internal/infra/overridefile"
	"github.com/KasumiMercury/primind-class-remind/internal/infra/repository"
)

var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	if err := cfg.PubSub.Validate(); err != nil {
		slog.Error("pubsub configuration error", "error", err)
		return 1
	}

	userID, err := domain.UserIDFromString(cfg.Notifier.UserID)
	if err != nil {
		slog.Error("NOTIFIER_USER_ID is invalid", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("failed to shutdown observability", "error", err)
		}
	}()

	overrides, err := overridefile.Load(cfg.Notifier.DayOverrideFile)
	if err != nil {
		slog.Error("failed to load day overrides", "error", err)
		return 1
	}

	db, err := repository.OpenDatabase(cfg.Database, cfg.Log.Level)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		return 1
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get underlying sql.DB", "error", err)
		return 1
	}
	defer sqlDB.Close()

	days, err := domain.NewDayResolver(overrides, cfg.Reminder.Location, cfg.Reminder.WeekendRemap)
	if err != nil {
		slog.Error("invalid day resolver configuration", "error", err)
		return 1
	}

	publisher, err := initPublisher(ctx, cfg)
	if err != nil {
		slog.Error("failed to create publisher", "error", err)
		return 1
	}

	notifier := app.NewLogNotifier()
	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Warn("failed to close publisher", "error", err)
			}
		}()

		notifier = app.NewPublisherNotifier(publisher)
	}

	session := app.NewReminderSession(app.ReminderSessionConfig{
		UserID:   userID,
		Window:   cfg.Reminder.Window,
		Interval: cfg.Reminder.TickInterval,
		URL:      cfg.Reminder.URL,
	}, app.NewTodaySchedule(repository.NewScheduleEntryRepository(db), days), notifier)

	if err := session.Run(ctx); err != nil {
		slog.Error("reminder session failed", "error", err)
		return 1
	}

	slog.Info("notifier exited", "version", Version)

	return 0
}
