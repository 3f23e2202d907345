package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-class-remind/internal/app"
	"github.com/KasumiMercury/primind-class-remind/internal/config"
	"github.com/KasumiMercury/primind-class-remind/internal/domain"
	"github.com/KasumiMercury/primind-class-remind/internal/infra/handler"
	"github.com/KasumiMercury/primind-class-remind/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-class-remind/internal/infra/repository"
	"github.com/KasumiMercury/primind-class-remind/internal/infra/webpush"
	"github.com/KasumiMercury/primind-class-remind/internal/observability/logging"
	"github.com/KasumiMercury/primind-class-remind/internal/observability/metrics"
	"github.com/KasumiMercury/primind-class-remind/internal/observability/middleware"
)

// Version is set at build time with -ldflags "-X main.Version=...".
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
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
	}()

	if err := repository.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		return 1
	}

	publisher, err := initPublisher(ctx, cfg)
	if err != nil {
		slog.Error("failed to create publisher", "error", err)
		return 1
	}
	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Warn("failed to close publisher", "error", err)
			}
		}()
	}

	entryRepo := repository.NewScheduleEntryRepository(db)
	overrideRepo := repository.NewDayOverrideRepository(db)
	subscriptionRepo := repository.NewPushSubscriptionRepository(db)

	days, err := domain.NewDayResolver(overrideRepo, cfg.Reminder.Location, cfg.Reminder.WeekendRemap)
	if err != nil {
		slog.Error("invalid day resolver configuration", "error", err)
		return 1
	}

	today := app.NewTodaySchedule(entryRepo, days)

	httpMetrics, err := metrics.NewHTTPMetrics(obs.Metrics.Meter("http"))
	if err != nil {
		slog.Error("failed to create http metrics", "error", err)
		return 1
	}

	router := setupRouter(httpMetrics,
		handler.NewTimetableHandler(app.NewTimetableUseCase(entryRepo, today)),
		handler.NewSubscriptionHandler(app.NewSubscriptionUseCase(subscriptionRepo)),
		handler.NewDayOverrideHandler(app.NewDayOverrideUseCase(overrideRepo)),
		handler.NewReminderHandler(app.NewReminderUseCase(today, cfg.Reminder.Window, cfg.Reminder.URL)),
	)

	workerDone := make(chan struct{})
	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	worker, err := newPushWorker(cfg, subscriptionRepo, today, publisher, obs.Metrics)
	if err != nil {
		slog.Error("failed to create push worker", "error", err)
		return 1
	}

	go func() {
		defer close(workerDone)

		if worker == nil {
			return
		}

		if err := worker.Run(workerCtx); err != nil {
			slog.Error("push worker exited with error", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", "address", cfg.Server.Address(), "version", Version)
		serverErr <- srv.ListenAndServe()
	}()

	exitCode := 0

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", "error", err)
			exitCode = 1
		}

	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server exited with error", "error", err)
			exitCode = 1
		}
	}

	cancelWorker()
	<-workerDone

	slog.Info("server exited", "exit_code", exitCode)

	return exitCode
}

// newPushWorker returns nil when no VAPID key pair is configured.
func newPushWorker(
	cfg *config.Config,
	subs domain.PushSubscriptionRepository,
	schedule app.ScheduleSource,
	publisher pubsub.Publisher,
	provider *metrics.Provider,
) (*app.PushWorker, error) {
	if !cfg.Push.Enabled() {
		slog.Warn("VAPID keys not set, push delivery disabled")
		return nil, nil
	}

	sender, err := webpush.NewVAPIDSender(webpush.Config{
		VAPIDPublicKey:  cfg.Push.VAPIDPublicKey,
		VAPIDPrivateKey: cfg.Push.VAPIDPrivateKey,
		Subscriber:      cfg.Push.Subscriber,
		TTL:             cfg.Push.TTL,
		HTTPClient:      &http.Client{Timeout: 30 * time.Second},
	})
	if err != nil {
		return nil, err
	}

	pushMetrics, err := metrics.NewPushMetrics(provider.Meter("push"))
	if err != nil {
		return nil, err
	}

	return app.NewPushWorker(app.PushWorkerConfig{
		Window:      cfg.Push.Window,
		Interval:    cfg.Reminder.TickInterval,
		Concurrency: cfg.Push.Concurrency,
		URL:         cfg.Reminder.URL,
	}, subs, schedule, sender, publisher, app.WithPushMetrics(pushMetrics)), nil
}

type routeRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

func setupRouter(httpMetrics *metrics.HTTPMetrics, handlers ...routeRegistrar) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Gin(middleware.GinConfig{
			SkipPaths:      []string{"/ping"},
			Module:         logging.Module("timetable"),
			ModuleResolver: moduleForRoute,
			TracerName:     "class-remind",
			HTTPMetrics:    httpMetrics,
		}),
		middleware.PanicRecoveryGin(),
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1")
	for _, h := range handlers {
		h.RegisterRoutes(v1)
	}

	return router
}

func moduleForRoute(c *gin.Context) logging.Module {
	route := c.FullPath()

	switch {
	case strings.Contains(route, "/push-subscription"):
		return logging.Module("push")
	case strings.Contains(route, "/reminders"):
		return logging.Module("reminder")
	default:
		return ""
	}
}
