package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowThreshold = 200 * time.Millisecond

// GormLogger routes gorm's query log through zerolog.
type GormLogger struct {
	Log           zerolog.Logger
	Level         gormlogger.LogLevel
	SlowThreshold time.Duration
}

func NewGormLogger(log zerolog.Logger) *GormLogger {
	return &GormLogger{
		Log:           log,
		Level:         gormlogger.Warn,
		SlowThreshold: defaultSlowThreshold,
	}
}

func (g *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.Level = level
	return &clone
}

func (g *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if g.Level >= gormlogger.Info {
		g.Log.Info().Msg(fmt.Sprintf(msg, data...))
	}
}

func (g *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if g.Level >= gormlogger.Warn {
		g.Log.Warn().Msg(fmt.Sprintf(msg, data...))
	}
}

func (g *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if g.Level >= gormlogger.Error {
		g.Log.Error().Msg(fmt.Sprintf(msg, data...))
	}
}

func (g *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.Level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && g.Level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		g.Log.Error().
			Err(err).
			Str("query", sql).
			Int64("rows", rows).
			Dur("duration_ms", elapsed).
			Msg("gorm_query_failed")
	case g.SlowThreshold != 0 && elapsed > g.SlowThreshold && g.Level >= gormlogger.Warn:
		sql, rows := fc()
		g.Log.Warn().
			Str("query", sql).
			Int64("rows", rows).
			Dur("duration_ms", elapsed).
			Dur("threshold_ms", g.SlowThreshold).
			Msg("gorm_slow_query")
	case g.Level >= gormlogger.Info:
		sql, rows := fc()
		g.Log.Debug().
			Str("query", sql).
			Int64("rows", rows).
			Dur("duration_ms", elapsed).
			Msg("gorm_query")
	}
}
