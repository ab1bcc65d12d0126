package stopwatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const t0 = int64(1_700_000_000_000)

func TestApply_StartInitializesRunningSession(t *testing.T) {
	s := Apply(Session{}, Start(t0))
	require.Equal(t, StateRunning, s.State())
	require.Equal(t, t0, s.StartReference)
	require.Equal(t, t0, s.CurrentTime)
	require.Equal(t, []int64{0}, s.Laps)
}

func TestApply_StartStopSameInstant(t *testing.T) {
	s := Apply(Session{}, Start(t0))
	s = Apply(s, Stop())
	require.Equal(t, StateStopped, s.State())
	require.Equal(t, []int64{0}, s.Laps)
	require.Zero(t, s.StartReference)
	require.Zero(t, s.CurrentTime)
}

func TestApply_LapThenStopProducesTwoLaps(t *testing.T) {
	s := Apply(Session{}, Start(t0))
	// ticks every 100ms until the lap at 500ms
	for at := t0 + 100; at <= t0+500; at += 100 {
		s = Apply(s, Tick(at))
	}
	s = Apply(s, Lap(t0+500))
	require.Equal(t, []int64{0, 500}, s.Laps)
	require.Equal(t, t0+500, s.StartReference)

	for at := t0 + 600; at <= t0+800; at += 100 {
		s = Apply(s, Tick(at))
	}
	s = Apply(s, Stop())
	require.Equal(t, []int64{300, 500}, s.Laps)
	require.Equal(t, StateStopped, s.State())
	require.Equal(t, int64(800), s.Total())
}

func TestApply_LapFoldsLastTickNotPressTime(t *testing.T) {
	s := Apply(Session{}, Start(t0))
	s = Apply(s, Tick(t0+400))
	// the 60ms between the last tick and the press are not attributed
	s = Apply(s, Lap(t0+460))
	require.Equal(t, []int64{0, 400}, s.Laps)
	require.Equal(t, t0+460, s.CurrentTime)
}

func TestApply_FoldAddsOntoExistingFirstEntry(t *testing.T) {
	s := Session{StartReference: t0, CurrentTime: t0 + 250, Laps: []int64{1000, 700}}
	require.Equal(t, []int64{0, 1250, 700}, Apply(s, Lap(t0+300)).Laps)
	require.Equal(t, []int64{1250, 700}, Apply(s, Stop()).Laps)
}

func TestApply_ResumeKeepsLaps(t *testing.T) {
	s := Session{Laps: []int64{300, 500}}
	r := Apply(s, Resume(t0))
	require.Equal(t, StateRunning, r.State())
	require.Equal(t, []int64{300, 500}, r.Laps)
	require.Equal(t, int64(800), r.Total())

	r = Apply(r, Tick(t0+200))
	require.Equal(t, int64(1000), r.Total())
	r = Apply(r, Stop())
	require.Equal(t, []int64{500, 500}, r.Laps)
}

func TestApply_ResetReturnsIdle(t *testing.T) {
	s := Apply(Session{}, Start(t0))
	s = Apply(s, Tick(t0+100))
	s = Apply(s, Stop())
	s = Apply(s, Reset())
	require.Equal(t, Session{}, s)
	require.Equal(t, StateIdle, s.State())
}

func TestApply_InvalidEventsLeaveSessionUnchanged(t *testing.T) {
	running := Session{StartReference: t0, CurrentTime: t0 + 10, Laps: []int64{0}}
	stopped := Session{Laps: []int64{40}}
	cases := []struct {
		name string
		in   Session
		ev   Event
	}{
		{"lap while idle", Session{}, Lap(t0)},
		{"stop while idle", Session{}, Stop()},
		{"resume while idle", Session{}, Resume(t0)},
		{"reset while idle", Session{}, Reset()},
		{"tick while idle", Session{}, Tick(t0)},
		{"start while running", running, Start(t0 + 50)},
		{"resume while running", running, Resume(t0 + 50)},
		{"reset while running", running, Reset()},
		{"start while stopped", stopped, Start(t0)},
		{"lap while stopped", stopped, Lap(t0)},
		{"stop while stopped", stopped, Stop()},
		{"tick while stopped", stopped, Tick(t0)},
		{"unknown kind", running, Event{}},
		{"start at zero", Session{}, Start(0)},
		{"lap at zero", running, Lap(0)},
		{"resume at zero", stopped, Resume(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.in, Apply(tc.in, tc.ev))
		})
	}
}

func TestApply_DoesNotAliasInput(t *testing.T) {
	s := Session{StartReference: t0, CurrentTime: t0 + 100, Laps: make([]int64, 1, 8)}
	ticked := Apply(s, Tick(t0+200))
	ticked.Laps[0] = 99
	require.Zero(t, s.Laps[0])

	lapped := Apply(s, Lap(t0+200))
	lapped.Laps[1] = 99
	require.Zero(t, s.Laps[0])
}

func TestSession_LiveClampsClockRollback(t *testing.T) {
	s := Session{StartReference: t0, CurrentTime: t0 - 500, Laps: []int64{0, 200}}
	require.Zero(t, s.Live())
	require.Equal(t, int64(200), s.Total())
}

func TestState_String(t *testing.T) {
	require.Equal(t, "idle", StateIdle.String())
	require.Equal(t, "running", StateRunning.String())
	require.Equal(t, "stopped", StateStopped.String())
	require.Equal(t, "unknown", State(42).String())
	require.Equal(t, "resume", EventResume.String())
}
