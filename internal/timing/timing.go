// Package timing measures operation durations for image generation,
// storage and mini-map rendering. Lines are only emitted when DEBUG=1.
package timing

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"time"
)

var debugEnabled atomic.Bool

func init() {
	debugEnabled.Store(os.Getenv("DEBUG") == "1")
}

// IsDebugEnabled returns whether timing lines are emitted
func IsDebugEnabled() bool {
	return debugEnabled.Load()
}

// SetDebug overrides the DEBUG environment switch
func SetDebug(on bool) {
	debugEnabled.Store(on)
}

// Timer tracks one run of a named operation, e.g. "minimap_render"
type Timer struct {
	name    string
	start   time.Time
	elapsed time.Duration
	done    bool
}

// Start begins timing name
func Start(name string) *Timer {
	return &Timer{name: name, start: time.Now()}
}

// Stop freezes the elapsed time; later calls are no-ops
func (t *Timer) Stop() {
	if t.done {
		return
	}
	t.elapsed = time.Since(t.start)
	t.done = true
}

// Duration is the frozen elapsed time, or the running time before Stop
func (t *Timer) Duration() time.Duration {
	if t.done {
		return t.elapsed
	}
	return time.Since(t.start)
}

// Name of the timed operation
func (t *Timer) Name() string {
	return t.name
}

// StopAndLog stops t and writes its timing line
func (t *Timer) StopAndLog(success bool) time.Duration {
	t.Stop()
	LogOperation(t.name, t.elapsed, success)
	return t.elapsed
}

// StopAndLogDetails is StopAndLog with a formatted key=value suffix such as
// "model=... attempts=2"
func (t *Timer) StopAndLogDetails(success bool, format string, args ...interface{}) time.Duration {
	t.Stop()
	LogOperationWithDetails(t.name, t.elapsed, success, fmt.Sprintf(format, args...))
	return t.elapsed
}

// LogOperation writes "[timing] operation=<name> duration_ms=<n> success=<bool>"
func LogOperation(name string, duration time.Duration, success bool) {
	LogOperationWithDetails(name, duration, success, "")
}

// LogOperationWithDetails appends details to the LogOperation line
func LogOperationWithDetails(name string, duration time.Duration, success bool, details string) {
	if !IsDebugEnabled() {
		return
	}
	line := fmt.Sprintf("[timing] operation=%s duration_ms=%d success=%t", name, duration.Milliseconds(), success)
	if details != "" {
		line += " " + details
	}
	log.Print(line)
}
