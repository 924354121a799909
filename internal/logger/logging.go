// Package logger provides the application logger and crash recovery for todo.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// DefaultLevel keeps the interactive screen quiet unless something goes wrong.
const DefaultLevel = "warn"

// New returns a slog.Logger that renders through charmbracelet/log.
// level is one of debug, info, warn, error; verbose forces debug.
func New(w io.Writer, level string, verbose bool) (*slog.Logger, error) {
	if verbose {
		level = "debug"
	}
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}

	lvl, err := charmlog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		Prefix:          "todo",
		ReportTimestamp: verbose,
	})
	return slog.New(handler), nil
}
