// Package debug provides debug logging utilities.
package debug

import (
	"fmt"
	"io"
	"os"
	"time"
)

var (
	enabled           = os.Getenv("ATTITUDE_DEBUG") == "1"
	out     io.Writer = os.Stderr
)

// Logf writes a debug message to stderr if ATTITUDE_DEBUG=1
func Logf(format string, args ...any) {
	if !enabled {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[DEBUG %s] %s\n", timestamp, msg)
}

// Enabled returns true if debug logging is enabled
func Enabled() bool {
	return enabled
}

// Enable turns debug logging on, used by the --debug flag.
func Enable() {
	enabled = true
}
