package playback

// Event is a notification from the backend. Events are delivered in order
// on Backend.Events and are meant to be fed straight into the UI event loop.
type Event interface {
	event()
}

// DurationChanged is emitted when the length of the loaded media becomes known.
type DurationChanged struct {
	DurationMs int64
}

// PositionChanged is emitted as playback advances or after a seek.
type PositionChanged struct {
	PositionMs int64
}

// StateChanged is emitted when playback starts, pauses or stops.
type StateChanged struct {
	State State
}

func (DurationChanged) event() {}
func (PositionChanged) event() {}
func (StateChanged) event()    {}
