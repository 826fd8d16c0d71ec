// Package cli implements the quotecraft command-line interface.
//
// The default command composes one quote image and can loop to make more.
// Supporting commands list background presets and fonts, manage the font
// index cache, and generate shell completions. The CLI is built using cobra
// and logs through charmbracelet/log.
//
// # Commands
//
//   - create: compose a quote image (also what bare "quotecraft" runs)
//   - backgrounds: list background presets by category
//   - fonts: list fonts found in the fonts directory and the system
//   - cache: manage the font index cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels in the command context via log.WithContext.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger. Timestamps are only shown at debug
// level, where they help line up render stages.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{TimeFormat: "15:04:05.000"})
	setLevel(l, level)
	return l
}

func setLevel(l *log.Logger, level log.Level) {
	l.SetLevel(level)
	l.SetReportTimestamp(level <= log.DebugLevel)
}

// stopwatch measures one user-visible operation.
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

func startStopwatch(l *log.Logger) stopwatch {
	return stopwatch{logger: l, start: time.Now()}
}

// finish logs msg at info level with the elapsed time attached.
func (s stopwatch) finish(msg string, keyvals ...any) {
	took := time.Since(s.start).Round(time.Millisecond)
	s.logger.Info(msg, append(keyvals, "took", took)...)
}
