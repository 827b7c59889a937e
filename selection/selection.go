// Package selection holds the start/end markers of the excerpt being previewed.
package selection

import (
	"errors"
	"fmt"

	"github.com/aschmelyun/tcut/clock"
	"github.com/samber/mo"
)

// ErrInvalidSelection is returned when a marked end is not strictly after the marked start.
var ErrInvalidSelection = errors.New("start must be before end")

// Placeholder is shown while no complete selection exists.
const Placeholder = "—"

// Selection is an optional start and end position in milliseconds.
// When both are set, start is strictly before end.
type Selection struct {
	start mo.Option[int64]
	end   mo.Option[int64]
}

// MarkStart sets the start marker. Both markers are cleared if the result is invalid.
func (s *Selection) MarkStart(ms int64) error {
	s.start = mo.Some(ms)
	return s.validate()
}

// MarkEnd sets the end marker. Both markers are cleared if the result is invalid.
func (s *Selection) MarkEnd(ms int64) error {
	s.end = mo.Some(ms)
	return s.validate()
}

func (s *Selection) validate() error {
	start, end, ok := s.Bounds()
	if !ok || start < end {
		return nil
	}

	s.Clear()
	return fmt.Errorf("%w (start %s, end %s)", ErrInvalidSelection, clock.FormatMillis(start), clock.FormatMillis(end))
}

// Clear unsets both markers.
func (s *Selection) Clear() {
	s.start = mo.None[int64]()
	s.end = mo.None[int64]()
}

// Start returns the start marker, if set.
func (s Selection) Start() mo.Option[int64] {
	return s.start
}

// End returns the end marker, if set.
func (s Selection) End() mo.Option[int64] {
	return s.end
}

// Bounds returns both markers; ok is false unless both are set.
func (s Selection) Bounds() (start, end int64, ok bool) {
	start, hasStart := s.start.Get()
	end, hasEnd := s.end.Get()
	return start, end, hasStart && hasEnd
}

// Complete reports whether both markers are set, which makes the selection playable.
func (s Selection) Complete() bool {
	_, _, ok := s.Bounds()
	return ok
}

// Summary is the human readable form, e.g. "Selection: 00:05 → 00:15".
func (s Selection) Summary() string {
	start, end, ok := s.Bounds()
	if !ok {
		return "Selection: " + Placeholder
	}
	return fmt.Sprintf("Selection: %s → %s", clock.FormatMillis(start), clock.FormatMillis(end))
}
