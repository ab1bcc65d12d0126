package presenter

import "github.com/tobilastik/iphone-stopwatch-clone/domain/stopwatch"

// Action identifies what a control does when pressed.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionLap
	ActionStop
	ActionReset
	ActionResume
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionLap:
		return "lap"
	case ActionStop:
		return "stop"
	case ActionReset:
		return "reset"
	case ActionResume:
		return "resume"
	default:
		return "none"
	}
}

// Tone selects the visual emphasis of a control.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGo
	ToneStop
)

// Control describes one of the two round buttons under the timer.
type Control struct {
	Title   string
	Action  Action
	Enabled bool
	Tone    Tone
}

// ControlsFor returns the left and right controls offered in state s.
// Which actions are reachable is decided here and nowhere else.
func ControlsFor(s stopwatch.State) (left, right Control) {
	switch s {
	case stopwatch.StateRunning:
		return Control{Title: "Lap", Action: ActionLap, Enabled: true, Tone: ToneNeutral},
			Control{Title: "Stop", Action: ActionStop, Enabled: true, Tone: ToneStop}
	case stopwatch.StateStopped:
		return Control{Title: "Reset", Action: ActionReset, Enabled: true, Tone: ToneNeutral},
			Control{Title: "Start", Action: ActionResume, Enabled: true, Tone: ToneGo}
	default:
		return Control{Title: "Lap", Action: ActionLap, Enabled: false, Tone: ToneNeutral},
			Control{Title: "Start", Action: ActionStart, Enabled: true, Tone: ToneGo}
	}
}
