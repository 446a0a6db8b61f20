package common

import (
	"fmt"
	"io"
	"os"
	"time"
)

// LoggingEnabled controls whether Logf produces output.
var LoggingEnabled = true

// Output receives report lines written by Logf and LogDuration.
var Output io.Writer = os.Stdout

// Logf writes a formatted report line if logging is enabled.
func Logf(format string, args ...any) {
	if LoggingEnabled {
		fmt.Fprintf(Output, format, args...)
	}
}

// formatDuration formats a duration with 2 decimal places, choosing
// microseconds, milliseconds or seconds by magnitude.
func formatDuration(d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)

	switch {
	case ms >= 1000:
		return fmt.Sprintf("%.2f s", ms/1000)
	case ms < 0.01:
		return fmt.Sprintf("%.2f us", ms*1000)
	default:
		return fmt.Sprintf("%.2f ms", ms)
	}
}

// LogDuration reports a message prefixed with the time elapsed since start,
// e.g. "(1.23 ms)  filter populated".
func LogDuration(start time.Time, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	durStr := fmt.Sprintf("(%s)", formatDuration(time.Since(start)))
	Logf("%-10s%s\n", durStr, msg)
}
