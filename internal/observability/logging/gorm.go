package logging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const moduleDB Module = "db"

// GormLogger routes gorm output through slog. Statements are logged at
// debug, slow ones at warn and failures at error. Record-not-found is an
// expected outcome for lookups and is never reported.
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormlogger.LogLevel
}

// NewGormLogger maps a slog level name onto gorm's levels.
func NewGormLogger(slowThreshold time.Duration, level string) *GormLogger {
	var gormLevel gormlogger.LogLevel

	switch ParseLevel(level) {
	case slog.LevelDebug:
		gormLevel = gormlogger.Info
	case slog.LevelError:
		gormLevel = gormlogger.Error
	default:
		gormLevel = gormlogger.Warn
	}

	return &GormLogger{
		SlowThreshold: slowThreshold,
		LogLevel:      gormLevel,
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.LogLevel = level

	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, gormlogger.Info, slog.LevelInfo, fmt.Sprintf(msg, args...))
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, gormlogger.Warn, slog.LevelWarn, fmt.Sprintf(msg, args...))
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, gormlogger.Error, slog.LevelError, fmt.Sprintf(msg, args...))
}

func (l *GormLogger) log(ctx context.Context, min gormlogger.LogLevel, level slog.Level, msg string, attrs ...slog.Attr) {
	if l.LogLevel < min {
		return
	}

	if ModuleFromContext(ctx) == "" {
		ctx = WithModule(ctx, moduleDB)
	}

	if len(attrs) == 0 {
		attrs = []slog.Attr{slog.String("event", "db.log")}
	}

	slog.LogAttrs(ctx, level, msg, attrs...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	stmt := []slog.Attr{
		slog.Duration("duration", elapsed),
		slog.String("sql", sql),
		slog.Int64("rows", rows),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		l.log(ctx, gormlogger.Error, slog.LevelError, "query error",
			append([]slog.Attr{slog.String("event", "db.query.fail"), slog.String("error", err.Error())}, stmt...)...)
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold:
		l.log(ctx, gormlogger.Warn, slog.LevelWarn, "slow query",
			append([]slog.Attr{slog.String("event", "db.query.slow.detect"), slog.Duration("threshold", l.SlowThreshold)}, stmt...)...)
	default:
		l.log(ctx, gormlogger.Info, slog.LevelDebug, "query executed",
			append([]slog.Attr{slog.String("event", "db.query")}, stmt...)...)
	}
}
