// Package logging builds the structured logger used by the engine and CLI.
//
// Logs are written with log/slog: as JSON to a size-rotated file when a log
// directory is given, otherwise as text to the supplied writer (stderr from
// the CLI).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the name of the active log file inside the log directory.
const FileName = "deconflict.slog"

// Options configures New.
type Options struct {
	// Level is one of debug, info, warn, error
	Level string

	// Dir enables rotating file output when non-empty
	Dir string

	// Writer receives text output when Dir is empty
	Writer io.Writer
}

// Logger wraps slog.Logger and remembers where it writes.
type Logger struct {
	*slog.Logger

	// LogFile is the rotating file path, empty for writer output
	LogFile string

	closer io.Closer
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", level)
	}
}

// New creates a Logger from opts.
func New(opts Options) (*Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	if opts.Dir != "" {
		w := &lumberjack.Logger{
			Filename:   filepath.Join(opts.Dir, FileName),
			MaxSize:    16, // MB
			MaxBackups: 3,
			MaxAge:     14,
			Compress:   true,
		}
		return &Logger{
			Logger:  slog.New(slog.NewJSONHandler(w, hopts)),
			LogFile: w.Filename,
			closer:  w,
		}, nil
	}

	w := opts.Writer
	if w == nil {
		w = io.Discard
	}
	return &Logger{Logger: slog.New(slog.NewTextHandler(w, hopts))}, nil
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
