// Package key lists the configuration keys understood by tcut.
package key

// Media backend.
const (
	PlayerBinary       = "player.binary"
	PlayerPollInterval = "player.poll_interval"
)

// Timeline scrubbing.
const (
	TimelineSeekStep      = "timeline.seek_step"
	TimelineSeekStepLarge = "timeline.seek_step_large"
)

// File picker.
const (
	FilesExtensions = "files.extensions"
	FilesStartDir   = "files.start_dir"
	FilesShowHidden = "files.show_hidden"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)
