// Package logging builds the structured service loggers shared by commands.
package logging

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Format names accepted by Options.Format.
const (
	FormatText   = "text"
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

// Options configures a service logger.
type Options struct {
	Level  string
	Format string
	Writer io.Writer
}

// New returns an info-level text logger on stderr prefixed with service.
func New(service string) *log.Logger {
	logger, _ := NewWithOptions(service, Options{})
	return logger
}

// NewWithOptions returns a logger configured by opts. Unknown levels or
// formats are rejected so misconfiguration surfaces at startup.
func NewWithOptions(service string, opts Options) (*log.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}
	level := log.InfoLevel
	if raw := strings.TrimSpace(opts.Level); raw != "" {
		parsed, err := log.ParseLevel(strings.ToLower(raw))
		if err != nil {
			return log.New(writer), fmt.Errorf("parse log level %q: %w", raw, err)
		}
		level = parsed
	}
	formatter, err := parseFormatter(opts.Format)
	if err != nil {
		return log.New(writer), err
	}
	return log.NewWithOptions(writer, log.Options{
		Prefix:          strings.TrimSpace(service),
		Level:           level,
		ReportTimestamp: true,
		Formatter:       formatter,
	}), nil
}

// Standard bridges a structured logger into the standard library logger used
// by HTTP middleware and net/http's ErrorLog.
func Standard(logger *log.Logger) *stdlog.Logger {
	if logger == nil {
		logger = log.Default()
	}
	return logger.StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel})
}

func parseFormatter(raw string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", FormatText:
		return log.TextFormatter, nil
	case FormatLogfmt:
		return log.LogfmtFormatter, nil
	case FormatJSON:
		return log.JSONFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("unsupported log format %q", raw)
	}
}
