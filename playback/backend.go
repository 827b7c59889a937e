package playback

// Backend is a media player that can be driven from the UI.
type Backend interface {
	// Start launches the player and begins delivering events.
	Start() error

	// Load opens a local media file, paused at its beginning.
	Load(path string) error

	Play() error
	Pause() error

	// PositionMs returns the current position as reported by the player.
	PositionMs() (int64, error)

	// SetPositionMs seeks to an absolute position. The player clamps out of range targets.
	SetPositionMs(ms int64) error

	// DurationMs returns the length of the loaded media, or 0 when unknown.
	DurationMs() (int64, error)

	// State returns the last state the player reported.
	State() State

	// Events delivers player notifications. It is closed when the player exits.
	Events() <-chan Event

	// Close stops the player and releases its resources.
	Close() error
}
