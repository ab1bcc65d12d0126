package stopwatch

// State enumerates the derived states of a stopwatch session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// EventKind enumerates the inputs accepted by Apply.
type EventKind int

const (
	EventStart EventKind = iota + 1
	EventLap
	EventStop
	EventResume
	EventReset
	EventTick
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventLap:
		return "lap"
	case EventStop:
		return "stop"
	case EventResume:
		return "resume"
	case EventReset:
		return "reset"
	case EventTick:
		return "tick"
	default:
		return "unknown"
	}
}

// Event is a single input to the session reducer. At is the clock reading in
// milliseconds since the epoch; Stop and Reset ignore it.
type Event struct {
	Kind EventKind
	At   int64
}

// Convenience constructors.
func Start(at int64) Event  { return Event{Kind: EventStart, At: at} }
func Lap(at int64) Event    { return Event{Kind: EventLap, At: at} }
func Stop() Event           { return Event{Kind: EventStop} }
func Resume(at int64) Event { return Event{Kind: EventResume, At: at} }
func Reset() Event          { return Event{Kind: EventReset} }
func Tick(at int64) Event   { return Event{Kind: EventTick, At: at} }

// StateListener is called after a transition that changed the derived state.
type StateListener func(prev, next State)
