// Package logging constructs console loggers with charmbracelet/log.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options holds configuration for console logging.
type Options struct {
	Level           log.Level
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns default options for console logging.
func DefaultOptions() Options {
	return Options{
		Level:           log.WarnLevel,
		ReportTimestamp: false,
		Prefix:          "taskman",
	}
}

// New creates a leveled, human-readable console logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// ParseLevel converts a level name to a log.Level, falling back to the
// default options level for unknown names.
func ParseLevel(name string) log.Level {
	level, err := log.ParseLevel(name)
	if err != nil {
		return DefaultOptions().Level
	}
	return level
}
