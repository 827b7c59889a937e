// Package loopstop halts selection previews once playback reaches the end marker.
//
// The monitor is a two-state machine. Watch arms it and returns the first
// tick; every TickMsg handed back to Check either schedules the next tick or,
// once the position has reached the end marker, returns the monitor to Idle.
// Ticks are delivered through the bubbletea event loop, so Check never runs
// concurrently with position updates.
package loopstop

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is how often the end marker is checked.
const DefaultInterval = 50 * time.Millisecond

// State of the monitor.
type State int

const (
	Idle State = iota
	Watching
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Watching:
		return "Watching"
	default:
		return "Unknown"
	}
}

// TickMsg asks the monitor to compare the position against the end marker.
type TickMsg struct {
	generation int
}

// Monitor watches for the end of a selection.
type Monitor struct {
	state      State
	endMs      int64
	interval   time.Duration
	generation int
}

// New returns an idle monitor polling at the given interval.
// Non-positive intervals fall back to DefaultInterval.
func New(interval time.Duration) Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Monitor{interval: interval}
}

// Watch moves to Watching with the given end marker and returns the first tick.
// Ticks issued by an earlier Watch are invalidated.
func (m *Monitor) Watch(endMs int64) tea.Cmd {
	m.generation++
	m.state = Watching
	m.endMs = endMs
	return m.tick()
}

// Stop returns to Idle; pending ticks are ignored.
func (m *Monitor) Stop() {
	m.generation++
	m.state = Idle
}

// Check handles a tick. It reports reached when positionMs is at or past the
// end marker, in which case the monitor is Idle again and the caller must
// pause playback. Otherwise the next tick is returned.
func (m *Monitor) Check(msg TickMsg, positionMs int64) (reached bool, next tea.Cmd) {
	if m.state != Watching || msg.generation != m.generation {
		return false, nil
	}

	if positionMs >= m.endMs {
		m.Stop()
		return true, nil
	}

	return false, m.tick()
}

func (m *Monitor) tick() tea.Cmd {
	generation := m.generation
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return TickMsg{generation: generation}
	})
}

// State returns the current state.
func (m Monitor) State() State {
	return m.state
}

// EndMs returns the end marker being watched.
func (m Monitor) EndMs() int64 {
	return m.endMs
}
