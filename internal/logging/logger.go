// Package logging builds the charmbracelet/log logger shared by all components.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mj1618/pcremote/internal/config"
)

// Options describe how to configure a logger instance.
type Options struct {
	Level  string
	Format string
	Output io.Writer
	Prefix string
}

// New creates a structured logger.
func New(opts Options) (*log.Logger, error) {
	levelName, err := config.NormalizeLogLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	format, err := config.NormalizeLogFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	formatter := log.TextFormatter
	switch format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	return log.NewWithOptions(out, log.Options{
		Level:           level,
		Formatter:       formatter,
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	}), nil
}

// FromConfig builds a logger from the logging section of cfg.
func FromConfig(cfg config.LoggingConfig, out io.Writer) (*log.Logger, error) {
	return New(Options{Level: cfg.Level, Format: cfg.Format, Output: out})
}

// Discard returns a logger that drops everything, for tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
