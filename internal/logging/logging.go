// Package logging configures the charmbracelet/log logger and the
// error-reporting channel used for storage failures.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/rogersnm/taskeasy/internal/config"
)

// New creates a logger writing to w with the configured level and format.
func New(w io.Writer, cfg config.LogConfig) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:     ParseLevel(cfg.Level),
		Formatter: ParseFormatter(cfg.Format),
		Prefix:    "taskeasy",
	})
}

func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// Reporter forwards storage failures to a logger at error level.
type Reporter struct {
	Logger *log.Logger
}

func NewReporter(l *log.Logger) *Reporter {
	return &Reporter{Logger: l}
}

func (r *Reporter) Report(msg string, err error) {
	if r == nil || r.Logger == nil {
		return
	}
	r.Logger.Error(msg, "err", err)
}
