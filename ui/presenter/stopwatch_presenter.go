package presenter

import (
	"log/slog"

	"github.com/tobilastik/iphone-stopwatch-clone/domain/clock"
	"github.com/tobilastik/iphone-stopwatch-clone/domain/stopwatch"
	"github.com/tobilastik/iphone-stopwatch-clone/ui/model"
)

// LapLine is a lap row formatted for display.
type LapLine struct {
	Label   string
	Time    string
	Fastest bool
	Slowest bool
}

// StopwatchView is the rendering surface driven by the presenter.
type StopwatchView interface {
	SetTimer(text string)
	SetControls(left, right Control)
	SetLaps(lines []LapLine)
	// SetCurrentLap rewrites only the first (in-progress) line, leaving the
	// rest of the list and its scroll position alone.
	SetCurrentLap(line LapLine)
}

// StopwatchPresenter owns the user actions of the stopwatch screen. It
// applies them to the model, keeps the tick loop in step with the session
// state and projects every change onto the view.
type StopwatchPresenter struct {
	model  *model.StopwatchModel
	clock  clock.Source
	loop   *Loop
	view   StopwatchView
	logger *slog.Logger

	closed   bool
	rendered bool
	shown    stopwatch.State // state whose controls are on screen
	laps     []LapLine       // lines currently on screen
}

// NewStopwatchPresenter returns a presenter. A nil clock uses the system clock.
func NewStopwatchPresenter(m *model.StopwatchModel, clk clock.Source, loop *Loop, view StopwatchView, logger *slog.Logger) *StopwatchPresenter {
	if clk == nil {
		clk = clock.System()
	}
	p := &StopwatchPresenter{model: m, clock: clk, loop: loop, view: view, logger: logger}
	m.AddListener(p.onState)
	return p
}

func (p *StopwatchPresenter) Start()  { p.dispatch(stopwatch.Start(p.now())) }
func (p *StopwatchPresenter) Lap()    { p.dispatch(stopwatch.Lap(p.now())) }
func (p *StopwatchPresenter) Stop()   { p.dispatch(stopwatch.Stop()) }
func (p *StopwatchPresenter) Resume() { p.dispatch(stopwatch.Resume(p.now())) }
func (p *StopwatchPresenter) Reset()  { p.dispatch(stopwatch.Reset()) }

// Tick samples the clock. It is the loop callback.
func (p *StopwatchPresenter) Tick() { p.dispatch(stopwatch.Tick(p.now())) }

// Press runs the action if one of the current controls offers it enabled.
func (p *StopwatchPresenter) Press(a Action) {
	if p == nil || p.closed || p.model == nil {
		return
	}
	left, right := ControlsFor(p.model.State())
	if !(left.Enabled && left.Action == a) && !(right.Enabled && right.Action == a) {
		return
	}
	switch a {
	case ActionStart:
		p.Start()
	case ActionLap:
		p.Lap()
	case ActionStop:
		p.Stop()
	case ActionReset:
		p.Reset()
	case ActionResume:
		p.Resume()
	}
}

// PressLeft presses whatever the left control currently offers.
func (p *StopwatchPresenter) PressLeft() {
	if p == nil || p.model == nil {
		return
	}
	left, _ := ControlsFor(p.model.State())
	p.Press(left.Action)
}

// PressRight presses whatever the right control currently offers.
func (p *StopwatchPresenter) PressRight() {
	if p == nil || p.model == nil {
		return
	}
	_, right := ControlsFor(p.model.State())
	p.Press(right.Action)
}

// Close cancels ticking and detaches the presenter. Safe to call repeatedly
// and in any state; every later action or tick is ignored.
func (p *StopwatchPresenter) Close() {
	if p == nil || p.closed {
		return
	}
	p.closed = true
	p.loop.Stop()
	if p.logger != nil {
		p.logger.Debug("stopwatch closed")
	}
}

// Render pushes the current session to the view from a single snapshot.
func (p *StopwatchPresenter) Render() {
	if p == nil || p.model == nil || p.view == nil {
		return
	}
	snap := p.model.Snapshot()
	state := snap.State()
	p.view.SetTimer(stopwatch.Format(snap.Total()).String())
	first := !p.rendered
	if first || state != p.shown {
		left, right := ControlsFor(state)
		p.view.SetControls(left, right)
		p.shown = state
		p.rendered = true
	}
	rows := stopwatch.LapRows(snap.Laps, snap.Live())
	lines := make([]LapLine, len(rows))
	for i, r := range rows {
		lines[i] = LapLine{Label: r.Label(), Time: stopwatch.Format(r.Duration).String(), Fastest: r.Fastest, Slowest: r.Slowest}
	}
	change := diffLaps(p.laps, lines)
	if first {
		change = lapsAll
	}
	switch change {
	case lapsFirstOnly:
		p.view.SetCurrentLap(lines[0])
	case lapsAll:
		p.view.SetLaps(lines)
	}
	p.laps = lines
}

// lapChange says how much of the lap list must be redrawn.
type lapChange int

const (
	lapsUnchanged lapChange = iota
	lapsFirstOnly
	lapsAll
)

// diffLaps compares what is on screen with the next lines. A running lap only
// changes line 0, which the view can rewrite without touching the scroll.
func diffLaps(prev, next []LapLine) lapChange {
	if len(prev) != len(next) {
		return lapsAll
	}
	for i := len(next) - 1; i >= 1; i-- {
		if prev[i] != next[i] {
			return lapsAll
		}
	}
	if len(next) > 0 && prev[0] != next[0] {
		return lapsFirstOnly
	}
	return lapsUnchanged
}

func (p *StopwatchPresenter) dispatch(ev stopwatch.Event) {
	if p == nil || p.closed || p.model == nil {
		return
	}
	if !p.model.Apply(ev) {
		return
	}
	if ev.Kind == stopwatch.EventLap && p.logger != nil {
		snap := p.model.Snapshot()
		p.logger.Info("lap recorded",
			"lap", len(snap.Laps)-1,
			"duration_ms", snap.Laps[1],
			"total", stopwatch.Format(snap.Total()).String(),
		)
	}
	p.syncLoop()
	p.Render()
}

// syncLoop keeps the tick loop running exactly while the session runs.
func (p *StopwatchPresenter) syncLoop() {
	running := p.model.State() == stopwatch.StateRunning
	switch {
	case running && !p.loop.Running():
		p.loop.Start(p.Tick)
	case !running && p.loop.Running():
		p.loop.Stop()
	}
}

func (p *StopwatchPresenter) onState(prev, next stopwatch.State) {
	if p.logger != nil {
		p.logger.Debug("stopwatch state transition", "from", prev.String(), "to", next.String())
	}
}

func (p *StopwatchPresenter) now() int64 {
	if p == nil {
		return 0
	}
	return clock.Millis(p.clock)
}
