package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// newLogHandler creates a [slog.Handler] writing human-readable records to w
// at the named level (debug, info, warn, error).
func newLogHandler(w io.Writer, level string) (slog.Handler, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "typedpath",
	}), nil
}
