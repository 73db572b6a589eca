/*
PURPOSE:
  Provides a structured logger for perf-metrics.
  Wraps zerolog for consistent output.

REQUIREMENTS:
  User-specified:
  - "Sane" CLI output. stdout belongs to the report table.

  Implementation-discovered:
  - Needs console and JSON formats (--log-format).
  - Quiet on success at the default level; --log-level debug shows the
    parse summary and output paths.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

ERROR HANDLING:
  - N/A

IMPLEMENTATION RULES:
  - Always write to stderr.

USAGE:
  output.Logger.Info().Str("key", "value").Msg("message")

RELATED FILES:
  - internal/cli/root.go
*/

package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var Logger zerolog.Logger

func init() {
	Logger = NewLogger(os.Stderr, "console", zerolog.InfoLevel)
}

// NewLogger builds a logger for the given format ("json" or "console").
func NewLogger(w io.Writer, format string, level zerolog.Level) zerolog.Logger {
	if strings.ToLower(format) == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		return zerolog.New(w).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a level name (debug, info, warn, ...) to a zerolog level.
// An empty name means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return lvl, nil
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l zerolog.Logger) {
	Logger = l
}
