package ui

import (
	"io"
)

// UI is everything the commands and scripts print.
//
// Production code uses TerminalUI, tests use RecordingUI which captures the
// output so it can be asserted on.
//
// Use [UI.Indent] to get a child UI one level deeper, for details that
// belong to the line printed before them:
//
//	u.Info("1. Name: %s", n.GetName())
//	u.Indent().KeyValue(rows)
type UI interface {
	// Info writes a neutral status line (no prefix, no color).
	Info(format string, args ...any)

	// Success writes a positive outcome in green.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning in yellow.
	Warn(format string, args ...any)

	// Error writes a failure in red.
	// This does NOT exit or return an error, callers decide what to do next.
	Error(format string, args ...any)

	// Critical writes a result the user must not miss, like the value a
	// script was run to find out. It renders as bold text.
	Critical(format string, args ...any)

	// Section writes a visual separator centred around a title.
	// Example: "===== Deploying mocks ====="
	Section(title string)

	// KeyValue renders an aligned 2-column block, label on the left and
	// value on the right.
	KeyValue(rows [][2]string)

	// Table renders a bordered table with a header row followed by data
	// rows.
	Table(headers []string, rows [][]string)

	// Spinner starts an animated spinner with the given message and returns a
	// stop function:
	//
	//   stop := u.Spinner("Deploying Lottery...")
	//   defer stop()
	//
	// In RecordingUI and non-terminal contexts the stop function is a no-op.
	Spinner(msg string) func()

	// Indent returns a child UI with indent level increased by one,
	// sharing the same underlying writer as the parent.
	Indent() UI

	// Writer returns an io.Writer that prepends the current indentation
	// to every line.
	Writer() io.Writer
}
