// Package logger configures the process-wide slog logger to write JSON lines
// to a rotated log file
package logger

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// NewWriter returns a size-rotated writer for the log file at path.
func NewWriter(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
}

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Init installs a file logger as the slog default and returns a function
// that closes the log file.
func Init(path string, level slog.Leveler) func() error {
	w := NewWriter(path)

	slog.SetDefault(New(w, level))

	return w.Close
}
