// Package clock holds the time collaborators the stopwatch depends on: a
// wall-clock source and a repeating-callback scheduler.
package clock

import (
	"time"

	"oss.indeed.com/go/libtime"
)

// Source supplies the current wall-clock time.
type Source interface {
	Now() time.Time
}

// System returns the process wall clock.
func System() Source { return libtime.SystemClock() }

// Millis reads src and returns milliseconds since the Unix epoch.
func Millis(src Source) int64 {
	if src == nil {
		src = System()
	}
	return int64(libtime.ToMilliseconds(src.Now()))
}

// Handle cancels a scheduled repeating callback. Cancel must be safe to call
// more than once.
type Handle interface {
	Cancel()
}

// Scheduler registers fn to run every interval until the returned handle is
// cancelled. Implementations run fn on the UI event thread.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
}
