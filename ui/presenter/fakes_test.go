package presenter

import (
	"time"

	"github.com/tobilastik/iphone-stopwatch-clone/domain/clock"
)

type fakeClock struct{ now time.Time }

func newFakeClock() *fakeClock               { return &fakeClock{now: time.UnixMilli(1_700_000_000_000)} }
func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type scheduled struct {
	interval  time.Duration
	fn        func()
	cancelled int
}

func (s *scheduled) Cancel() { s.cancelled++ }

// fakeScheduler keeps every registration, cancelled or not, so tests can
// deliver callbacks the way a late timer would.
type fakeScheduler struct{ entries []*scheduled }

func (f *fakeScheduler) Every(interval time.Duration, fn func()) clock.Handle {
	s := &scheduled{interval: interval, fn: fn}
	f.entries = append(f.entries, s)
	return s
}

// fireActive runs the callbacks that have not been cancelled.
func (f *fakeScheduler) fireActive() {
	for _, s := range f.entries {
		if s.cancelled == 0 {
			s.fn()
		}
	}
}

// fireAll runs every callback ever registered, including cancelled ones.
func (f *fakeScheduler) fireAll() {
	for _, s := range f.entries {
		s.fn()
	}
}

func (f *fakeScheduler) active() int {
	n := 0
	for _, s := range f.entries {
		if s.cancelled == 0 {
			n++
		}
	}
	return n
}

type fakeView struct {
	timer       string
	left, right Control
	laps        []LapLine
	timerCalls  int
	ctrlCalls   int
	lapsCalls   int
	currentRuns int
}

func (v *fakeView) SetTimer(text string)            { v.timer = text; v.timerCalls++ }
func (v *fakeView) SetControls(left, right Control) { v.left, v.right = left, right; v.ctrlCalls++ }
func (v *fakeView) SetLaps(lines []LapLine)         { v.laps = append([]LapLine(nil), lines...); v.lapsCalls++ }
func (v *fakeView) SetCurrentLap(line LapLine)      { v.laps[0] = line; v.currentRuns++ }
