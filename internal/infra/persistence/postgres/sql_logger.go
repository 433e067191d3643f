package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"zephyr/config"
	deliverycontext "zephyr/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowProfileQuery = 200 * time.Millisecond

// sqlLogger sends gorm output to slog. Statements issued under a request context use
// that request's logger and so carry its request_id and user_id.
type sqlLogger struct {
	base  *slog.Logger
	level logger.LogLevel
	slow  time.Duration
}

func newSQLLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &sqlLogger{base: base, level: level, slow: slowProfileQuery}
}

func (l *sqlLogger) LogMode(level logger.LogLevel) logger.Interface {
	next := *l
	next.level = level

	return &next
}

func (l *sqlLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *sqlLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *sqlLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *sqlLogger) message(ctx context.Context, enabled logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < enabled {
		return
	}

	l.from(ctx).LogAttrs(ctx, level, "Profile store", slog.String("detail", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements, slow statements and, in debug mode, every statement.
// A missing profile row is a normal lookup outcome and is not logged as a failure.
func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		l.statement(ctx, slog.LevelError, "Profile store query failed", fc, elapsed, slog.String("error", err.Error()))
	case l.slow > 0 && elapsed > l.slow && l.level >= logger.Warn:
		l.statement(ctx, slog.LevelWarn, "Slow profile store query", fc, elapsed, slog.Duration("threshold", l.slow))
	case l.level >= logger.Info:
		l.statement(ctx, slog.LevelDebug, "Profile store query", fc, elapsed)
	}
}

func (l *sqlLogger) statement(ctx context.Context, level slog.Level, msg string, fc func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := fc()
	attrs := append([]slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}, extra...)

	l.from(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *sqlLogger) from(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
