// Package timing logs startup checkpoints when ATTITUDE_DEBUG_TIMING=1.
package timing

import (
	"fmt"
	"io"
	"os"
	"time"
)

var (
	enabled             = os.Getenv("ATTITUDE_DEBUG_TIMING") == "1"
	out       io.Writer = os.Stderr
	startTime           = time.Now()
	lastTime            = startTime
)

// Start resets the reference point for subsequent checkpoints.
func Start() {
	startTime = time.Now()
	lastTime = startTime
}

// Log writes a checkpoint with the time since the previous one and since Start.
func Log(label string) {
	if !enabled {
		return
	}
	now := time.Now()
	sinceLast := now.Sub(lastTime)
	sinceStart := now.Sub(startTime)
	fmt.Fprintf(out, "[TIMING] %s: +%dms (total: %dms)\n", label, sinceLast.Milliseconds(), sinceStart.Milliseconds())
	lastTime = now
}
