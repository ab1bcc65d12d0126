package presenter

import (
	"time"

	"github.com/tobilastik/iphone-stopwatch-clone/domain/clock"
)

// DefaultTick is the refresh cadence while the stopwatch runs.
const DefaultTick = 100 * time.Millisecond

// Loop drives a periodic callback through an injected scheduler.
//
// Stop is idempotent. A callback that the scheduler delivers after Stop (or
// after a restart) is dropped, so a cancelled loop never calls back.
// The zero value is unusable; construct with NewLoop. Methods are nil-safe.
type Loop struct {
	sched    clock.Scheduler
	interval time.Duration
	handle   clock.Handle
	gen      uint64
}

func NewLoop(sched clock.Scheduler, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultTick
	}
	return &Loop{sched: sched, interval: interval}
}

// Start begins calling fn every interval, replacing any running callback.
func (l *Loop) Start(fn func()) {
	if l == nil || l.sched == nil || fn == nil {
		return
	}
	l.Stop()
	l.gen++
	gen := l.gen
	l.handle = l.sched.Every(l.interval, func() {
		if l.handle == nil || l.gen != gen { // stale
			return
		}
		fn()
	})
}

// Stop cancels the running callback, if any.
func (l *Loop) Stop() {
	if l == nil || l.handle == nil {
		return
	}
	h := l.handle
	l.handle = nil
	l.gen++
	h.Cancel()
}

// Running reports whether a callback is scheduled.
func (l *Loop) Running() bool { return l != nil && l.handle != nil }

// Interval returns the tick cadence.
func (l *Loop) Interval() time.Duration {
	if l == nil {
		return 0
	}
	return l.interval
}
