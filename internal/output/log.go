// Package output provides terminal output utilities for the fforge CLI.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Verbosity levels accepted by the --verbosity flag. Each value selects the
// minimum level that is emitted; values outside the table fall back to INFO.
const (
	VerbosityCritical = 0
	VerbosityError    = 1
	VerbosityWarning  = 2
	VerbosityInfo     = 3
	VerbosityDebug    = 4
)

// LevelForVerbosity maps a --verbosity value to a log level.
func LevelForVerbosity(verbosity int) log.Level {
	switch verbosity {
	case VerbosityCritical:
		return log.FatalLevel
	case VerbosityError:
		return log.ErrorLevel
	case VerbosityWarning:
		return log.WarnLevel
	case VerbosityInfo:
		return log.InfoLevel
	case VerbosityDebug:
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}

// NewLogger creates the logger for one generation run. The logger is passed
// into each pipeline component at construction; there is no process-wide
// logger instance.
func NewLogger(verbosity int) *log.Logger {
	return NewLoggerTo(os.Stderr, verbosity)
}

// NewLoggerTo creates a logger writing to w. Used by tests to capture output.
func NewLoggerTo(w io.Writer, verbosity int) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           LevelForVerbosity(verbosity),
		Prefix:          "fforge",
		ReportTimestamp: verbosity >= VerbosityDebug,
		ReportCaller:    verbosity >= VerbosityDebug,
	})
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	os.Stdout.WriteString(msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}
