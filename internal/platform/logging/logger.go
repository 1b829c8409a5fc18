package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pscheid92/autorotate/internal/platform/correlation"
)

// Logger is the process-wide structured logger instance.
var Logger *slog.Logger

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Anything else is info.
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// NewLogger builds a text or json ("json") logger writing to w, tagged with tick IDs.
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(correlation.NewHandler(handler))
}

// InitLogger installs a stderr logger as the slog default. stdout is left to
// the monitor view.
func InitLogger(level, format string) {
	Logger = NewLogger(os.Stderr, level, format)
	slog.SetDefault(Logger)
}
