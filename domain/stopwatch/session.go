package stopwatch

// Session is the complete mutable state of one stopwatch screen.
//
// Laps is ordered newest first. Laps[0] is the in-progress lap whose running
// segment is tracked separately through StartReference and CurrentTime.
// StartReference == 0 means the stopwatch is not ticking, so the timestamps
// carried by Start, Lap and Resume must be non-zero; Apply ignores those
// events at 0. The zero value is the idle session.
type Session struct {
	StartReference int64
	CurrentTime    int64
	Laps           []int64
}

// State derives the session state from its fields.
func (s Session) State() State {
	if s.StartReference != 0 {
		return StateRunning
	}
	if len(s.Laps) == 0 {
		return StateIdle
	}
	return StateStopped
}

// Live returns the elapsed time of the running segment, or 0 when stopped.
// A clock that went backwards yields 0 rather than a negative value.
func (s Session) Live() int64 {
	if s.StartReference == 0 {
		return 0
	}
	if d := s.CurrentTime - s.StartReference; d > 0 {
		return d
	}
	return 0
}

// Total returns the grand total shown on the main timer.
func (s Session) Total() int64 {
	total := s.Live()
	for _, l := range s.Laps {
		total += l
	}
	return total
}

// Clone returns a copy that does not share the Laps backing array.
func (s Session) Clone() Session {
	if s.Laps != nil {
		s.Laps = append([]int64(nil), s.Laps...)
	}
	return s
}

// Apply returns the session that results from ev. The input is never
// modified. Events that are not valid for the current state leave the
// session unchanged.
func Apply(s Session, ev Event) Session {
	if ev.At == 0 && startsSegment(ev.Kind) {
		return s
	}
	switch ev.Kind {
	case EventStart:
		if s.State() != StateIdle {
			return s
		}
		return Session{StartReference: ev.At, CurrentTime: ev.At, Laps: []int64{0}}
	case EventLap:
		if s.State() != StateRunning {
			return s
		}
		laps := make([]int64, 0, len(s.Laps)+1)
		laps = append(laps, 0, s.fold())
		laps = append(laps, s.rest()...)
		return Session{StartReference: ev.At, CurrentTime: ev.At, Laps: laps}
	case EventStop:
		if s.State() != StateRunning {
			return s
		}
		laps := make([]int64, 0, len(s.Laps))
		laps = append(laps, s.fold())
		laps = append(laps, s.rest()...)
		return Session{Laps: laps}
	case EventResume:
		if s.State() != StateStopped {
			return s
		}
		return Session{StartReference: ev.At, CurrentTime: ev.At, Laps: append([]int64(nil), s.Laps...)}
	case EventReset:
		if s.State() != StateStopped {
			return s
		}
		return Session{}
	case EventTick:
		if s.State() != StateRunning {
			return s
		}
		next := s.Clone()
		next.CurrentTime = ev.At
		return next
	}
	return s
}

// startsSegment reports whether the event stores At as StartReference.
func startsSegment(k EventKind) bool {
	return k == EventStart || k == EventLap || k == EventResume
}

// fold closes the running segment onto the value already held at index 0.
func (s Session) fold() int64 {
	if len(s.Laps) == 0 {
		return s.Live()
	}
	return s.Laps[0] + s.Live()
}

func (s Session) rest() []int64 {
	if len(s.Laps) < 2 {
		return nil
	}
	return s.Laps[1:]
}
