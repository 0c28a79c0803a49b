// Package logging builds the structured loggers used by tally.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at info level, or debug level when
// verbose is set.
func New(w io.Writer, verbose bool) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           levelFor(verbose),
		Prefix:          "tally",
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
	})
}

// Stderr returns a logger for CLI commands. Without verbose it only reports
// warnings and errors so normal output stays clean.
func Stderr(verbose bool) *log.Logger {
	l := New(os.Stderr, verbose)
	if !verbose {
		l.SetLevel(log.WarnLevel)
	}
	return l
}

// File returns a logger appending to dir/tally.log along with a close
// function. The TUI owns the terminal, so it logs here instead of stderr.
func File(dir string, verbose bool) (*log.Logger, func() error, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "tally.log"), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	l := log.NewWithOptions(f, log.Options{
		Level:           levelFor(verbose),
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.LogfmtFormatter,
	})
	return l, f.Close, nil
}

func levelFor(verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}
