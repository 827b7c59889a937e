package playback

import (
	"github.com/aschmelyun/tcut/clock"
	"github.com/samber/lo"
)

// Position tracks the playback position and duration in milliseconds.
// A zero duration means no media is loaded or its length is not known yet.
type Position struct {
	CurrentMs  int64
	DurationMs int64
}

// SetDuration records the media length and pulls the current position back into range.
func (p *Position) SetDuration(ms int64) {
	p.DurationMs = max(ms, 0)
	p.SetCurrent(p.CurrentMs)
}

// SetCurrent records the playback position, clamped to [0, duration] once the duration is known.
func (p *Position) SetCurrent(ms int64) {
	if p.DurationMs > 0 {
		p.CurrentMs = lo.Clamp(ms, 0, p.DurationMs)
		return
	}
	p.CurrentMs = max(ms, 0)
}

// Reset forgets everything, as on loading new media.
func (p *Position) Reset() {
	*p = Position{}
}

// Known reports whether the duration has been reported.
func (p Position) Known() bool {
	return p.DurationMs > 0
}

// Range is the timeline range.
func (p Position) Range() (low, high int64) {
	return 0, p.DurationMs
}

// Fraction is the position as a share of the duration, in [0, 1].
func (p Position) Fraction() float64 {
	if p.DurationMs <= 0 {
		return 0
	}
	return float64(p.CurrentMs) / float64(p.DurationMs)
}

// CurrentLabel renders the current position as MM:SS.
func (p Position) CurrentLabel() string {
	return clock.FormatMillis(p.CurrentMs)
}

// TotalLabel renders the duration as MM:SS.
func (p Position) TotalLabel() string {
	return clock.FormatMillis(p.DurationMs)
}
