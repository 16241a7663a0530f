// Package log builds the per-run logger. Output goes to the console and,
// when a file is configured, to a log file as well.
package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/paularlott/logger"
	logslog "github.com/paularlott/logger/slog"
)

// Options controls logger construction
type Options struct {
	Level  string // trace, debug, info, warn, error
	Format string // console, json
	File   string // optional log file, appended to
}

// New creates a logger writing to stderr and, when opts.File is set, to
// that file. The file always gets JSON lines so it carries no terminal
// colour codes. The returned close function closes the file.
func New(opts Options) (logger.Logger, func() error, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	format := opts.Format
	if format == "" {
		format = "console"
	}

	console := logslog.New(logslog.Config{Level: level, Format: format, Writer: os.Stderr})
	if opts.File == "" {
		return console, func() error { return nil }, nil
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	file := logslog.New(logslog.Config{Level: level, Format: "json", Writer: f})
	return tee{console, file}, f.Close, nil
}

// Nop returns a logger that discards everything
func Nop() logger.Logger {
	return logger.NewNullLogger()
}

// OrNop returns l, or a no-op logger when l is nil
func OrNop(l logger.Logger) logger.Logger {
	if l == nil {
		return Nop()
	}
	return l
}

// WithRunID tags every entry from l with a fresh run id
func WithRunID(l logger.Logger) logger.Logger {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return l.With("run_id", id.String())
}

func parseLevel(level string) (string, error) {
	switch l := strings.ToLower(strings.TrimSpace(level)); l {
	case "":
		return "info", nil
	case "trace", "debug", "info", "warn", "error":
		return l, nil
	case "warning":
		return "warn", nil
	default:
		return "", fmt.Errorf("unknown log level %q", level)
	}
}

// tee sends every entry to both loggers
type tee [2]logger.Logger

func (t tee) Trace(msg string, kv ...any) { t[0].Trace(msg, kv...); t[1].Trace(msg, kv...) }
func (t tee) Debug(msg string, kv ...any) { t[0].Debug(msg, kv...); t[1].Debug(msg, kv...) }
func (t tee) Info(msg string, kv ...any)  { t[0].Info(msg, kv...); t[1].Info(msg, kv...) }
func (t tee) Warn(msg string, kv ...any)  { t[0].Warn(msg, kv...); t[1].Warn(msg, kv...) }
func (t tee) Error(msg string, kv ...any) { t[0].Error(msg, kv...); t[1].Error(msg, kv...) }

// Fatal records to the file before the console logger exits the process
func (t tee) Fatal(msg string, kv ...any) {
	t[1].Error(msg, kv...)
	t[0].Fatal(msg, kv...)
}

func (t tee) With(key string, value any) logger.Logger {
	return tee{t[0].With(key, value), t[1].With(key, value)}
}

func (t tee) WithError(err error) logger.Logger {
	return tee{t[0].WithError(err), t[1].WithError(err)}
}

func (t tee) WithGroup(group string) logger.Logger {
	return tee{t[0].WithGroup(group), t[1].WithGroup(group)}
}
