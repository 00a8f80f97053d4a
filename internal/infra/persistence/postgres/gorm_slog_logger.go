package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"perks/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output into the service logger.
//
// Unique violations are demoted to debug: a second scan on the same day is
// rejected by the redemptions index and surfaces as ALREADY_REDEEMED_TODAY,
// so it is not a database fault.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
	now           func() time.Time
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return &gormSlogLogger{
		logger:        baseLogger.With(slog.String("component", "gorm")),
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
		now:           time.Now,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}

	l.logger.LogAttrs(ctx, level, fmt.Sprintf(msg, args...))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := l.now().Sub(begin)

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		// Lookups for unknown vendor codes are routine.
	case err != nil && isUniqueConstraintViolation(err):
		if l.level >= logger.Info {
			l.logQuery(ctx, slog.LevelDebug, "Query rejected by unique constraint", sqlAndRowsFn, elapsed, slog.String("error", err.Error()))
		}
	case err != nil:
		if l.level >= logger.Error {
			l.logQuery(ctx, slog.LevelError, "Query failed", sqlAndRowsFn, elapsed, slog.String("error", err.Error()))
		}
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.logQuery(ctx, slog.LevelWarn, "Slow query", sqlAndRowsFn, elapsed, slog.Duration("slow_threshold", l.slowThreshold))
	case l.level >= logger.Info:
		l.logQuery(ctx, slog.LevelDebug, "Query", sqlAndRowsFn, elapsed)
	}
}

func (l *gormSlogLogger) logQuery(ctx context.Context, level slog.Level, msg string, sqlAndRowsFn func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := sqlAndRowsFn()
	attrs := make([]slog.Attr, 0, 3+len(extra))
	attrs = append(attrs,
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	)
	attrs = append(attrs, extra...)

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}
