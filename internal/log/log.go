// Package log configures the process-wide slog logger. The terminal belongs
// to the UI, so records go to a rotating file unless stderr is requested.
package log

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
	"time"

	charmlog "charm.land/log/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Stderr is the log file value that routes records to standard error.
const Stderr = "-"

var initOnce sync.Once

// Setup installs the default slog logger. It is safe to call more than once;
// only the first call has any effect.
func Setup(logFile string, debug bool) {
	initOnce.Do(func() {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(newHandler(logFile, level)))
	})
}

func newHandler(logFile string, level slog.Level) slog.Handler {
	if logFile == Stderr {
		logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Level:           charmlog.Level(level),
		})
		return logger
	}

	rotator := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 0,
		MaxAge:     30, // days
		Compress:   false,
	}
	return slog.NewJSONHandler(rotator, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
}

// RecoverPanic logs a panic raised by background work named name and runs
// cleanup, if any.
func RecoverPanic(name string, cleanup func()) {
	if r := recover(); r != nil {
		slog.Error(fmt.Sprintf("Panic in %s", name), "panic", r, "stack", string(debug.Stack()))
		if cleanup != nil {
			cleanup()
		}
	}
}
