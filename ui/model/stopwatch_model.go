package model

import (
	"github.com/tobilastik/iphone-stopwatch-clone/domain/stopwatch"
)

// StopwatchModel owns the single stopwatch session of the screen.
// It is decoupled from the UI; presenters apply events and read Snapshot().
// No synchronization needed: all mutations happen on the UI thread.
// The zero value is ready to use and idle.
type StopwatchModel struct {
	session   stopwatch.Session
	listeners []stopwatch.StateListener
}

// NewStopwatchModel returns a pointer to a ready-to-use StopwatchModel.
func NewStopwatchModel() *StopwatchModel { return &StopwatchModel{} }

// AddListener registers a listener invoked when an event changes the state.
func (m *StopwatchModel) AddListener(l stopwatch.StateListener) {
	if m == nil || l == nil {
		return
	}
	m.listeners = append(m.listeners, l)
}

// Apply runs ev through the session reducer and stores the result.
// It reports whether the session changed.
func (m *StopwatchModel) Apply(ev stopwatch.Event) bool {
	if m == nil {
		return false
	}
	prev := m.session
	next := stopwatch.Apply(prev, ev)
	if sameSession(prev, next) {
		return false
	}
	m.session = next
	if ps, ns := prev.State(), next.State(); ps != ns {
		for _, l := range m.listeners {
			l(ps, ns)
		}
	}
	return true
}

// Snapshot returns a copy of the session safe to read during one render pass.
func (m *StopwatchModel) Snapshot() stopwatch.Session {
	if m == nil {
		return stopwatch.Session{}
	}
	return m.session.Clone()
}

// State returns the current derived state.
func (m *StopwatchModel) State() stopwatch.State {
	if m == nil {
		return stopwatch.StateIdle
	}
	return m.session.State()
}

func sameSession(a, b stopwatch.Session) bool {
	if a.StartReference != b.StartReference || a.CurrentTime != b.CurrentTime || len(a.Laps) != len(b.Laps) {
		return false
	}
	for i := range a.Laps {
		if a.Laps[i] != b.Laps[i] {
			return false
		}
	}
	return true
}
