// Package logging builds the structured loggers shared by the CLI, the board
// loader, storage and the SSH server.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Options controls logger construction.
type Options struct {
	Level      string // debug, info, warn, error; empty means info
	Prefix     string
	Timestamps bool
	Output     io.Writer // defaults to os.Stderr
}

// New creates a logger. An unknown level falls back to info.
func New(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := log.InfoLevel
	if opts.Level != "" {
		if parsed, err := log.ParseLevel(strings.ToLower(opts.Level)); err == nil {
			level = parsed
		}
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: opts.Timestamps,
		Prefix:          opts.Prefix,
		Level:           level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
