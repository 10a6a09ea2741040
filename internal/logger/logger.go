package logger

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"trivia-backend/internal/helper"

	"github.com/rs/zerolog"
)

var (
	AppLogger  = zerolog.Nop()
	HttpLogger = zerolog.Nop()
)

// Init configures AppLogger (console + app.log, with caller info) and
// HttpLogger (http.log only). An empty logDir keeps everything on the console.
func Init(level string, logDir string) error {
	logLevel := parseLogLevel(level, zerolog.InfoLevel)

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	if logDir == "" {
		AppLogger = zerolog.New(console).Level(logLevel).With().Timestamp().Caller().Logger()
		HttpLogger = zerolog.New(console).Level(logLevel).With().Timestamp().Logger()
		return nil
	}

	logPath := filepath.Join(logDir, helper.GetCurrentTimeWithFormat("02-01-2006"))
	if !helper.CheckIfFileExists(logPath) {
		if err := helper.CreateDirectory(logPath); err != nil {
			return err
		}
	}

	appFile, err := openLogFile(filepath.Join(logPath, "app.log"))
	if err != nil {
		return err
	}
	httpFile, err := openLogFile(filepath.Join(logPath, "http.log"))
	if err != nil {
		return err
	}

	AppLogger = zerolog.New(zerolog.MultiLevelWriter(console, appFile)).
		Level(logLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	HttpLogger = zerolog.New(httpFile).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	return nil
}

func openLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o664)
}

func parseLogLevel(levelStr string, defaultLevel zerolog.Level) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return defaultLevel
	}
}
