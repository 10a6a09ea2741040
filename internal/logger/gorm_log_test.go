package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestGormLogger(buf *bytes.Buffer) *GormLogger {
	return NewGormLogger(zerolog.New(buf).Level(zerolog.DebugLevel))
}

func sqlFunc() (string, int64) {
	return "SELECT * FROM questions", 3
}

func TestGormLoggerTraceError(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf)

	l.Trace(context.Background(), time.Now(), sqlFunc, errors.New("boom"))

	assert.Contains(t, buf.String(), "gorm_query_failed")
	assert.Contains(t, buf.String(), "SELECT * FROM questions")
	assert.Contains(t, buf.String(), "boom")
}

func TestGormLoggerIgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf)

	l.Trace(context.Background(), time.Now(), sqlFunc, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormLoggerSlowQuery(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf)
	l.SlowThreshold = time.Millisecond

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFunc, nil)

	assert.Contains(t, buf.String(), "gorm_slow_query")
}

func TestGormLoggerLogMode(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf)

	silent := l.LogMode(gormlogger.Silent)
	silent.Trace(context.Background(), time.Now(), sqlFunc, errors.New("boom"))
	silent.Error(context.Background(), "error %d", 1)
	assert.Empty(t, buf.String())
	assert.Equal(t, gormlogger.Warn, l.Level, "LogMode must not mutate the receiver")

	verbose := l.LogMode(gormlogger.Info)
	verbose.Trace(context.Background(), time.Now(), sqlFunc, nil)
	verbose.Info(context.Background(), "connected to %s", "sqlite")
	assert.Contains(t, buf.String(), "gorm_query")
	assert.Contains(t, buf.String(), "connected to sqlite")
}

func TestGormLoggerWarnLevelSkipsInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf)

	l.Info(context.Background(), "hidden")
	l.Trace(context.Background(), time.Now(), sqlFunc, nil)
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "visible %s", "warning")
	assert.Contains(t, buf.String(), "visible warning")
}
