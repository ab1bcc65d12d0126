package view

import (
	"log/slog"

	"github.com/tobilastik/iphone-stopwatch-clone/ui/presenter"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the stopwatch screen: timer, control buttons and lap list.
// It implements presenter.StopwatchView; every method is a no-op until Build.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Timer    TimerDisplay
	Controls ControlBar
	Laps     LapList
}

var _ presenter.StopwatchView = (*RootView)(nil)

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Key sequences for the two controls. Upper case keeps them working with
// Caps Lock on.
var (
	leftKeys  = []string{"<KeyPress-l>", "<KeyPress-L>"}
	rightKeys = []string{"<KeyPress-s>", "<KeyPress-S>"}
)

// Build constructs the layout. onLeft and onRight are bound to the two
// buttons and to the "l" and "s" keys respectively.
func (rv *RootView) Build(onLeft, onRight func()) {
	if rv == nil {
		return
	}
	rv.Timer = NewTimerDisplay(0)
	rv.Controls = NewControlBar(1, onLeft, onRight)
	rv.Laps = NewLapList(2)

	for _, k := range leftKeys {
		Bind(App, k, Command(onLeft))
	}
	for _, k := range rightKeys {
		Bind(App, k, Command(onRight))
	}
	if rv.logger != nil {
		rv.logger.Debug("stopwatch view built")
	}
}

// SetTimer updates the main time display.
func (rv *RootView) SetTimer(text string) {
	if rv != nil && rv.Timer != nil {
		rv.Timer.SetText(text)
	}
}

// SetControls updates both buttons.
func (rv *RootView) SetControls(left, right presenter.Control) {
	if rv != nil && rv.Controls != nil {
		rv.Controls.SetControls(left, right)
	}
}

// SetLaps proxies to the lap list.
func (rv *RootView) SetLaps(lines []presenter.LapLine) {
	if rv != nil && rv.Laps != nil {
		rv.Laps.SetLaps(lines)
	}
}

// SetCurrentLap proxies to the lap list.
func (rv *RootView) SetCurrentLap(line presenter.LapLine) {
	if rv != nil && rv.Laps != nil {
		rv.Laps.SetCurrentLap(line)
	}
}
