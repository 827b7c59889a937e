package config

import (
	"strings"

	"github.com/aschmelyun/tcut/constant"
	"github.com/aschmelyun/tcut/key"
)

// Field is a single registered configuration entry.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable bound to the field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	return strings.ToUpper(constant.App) + "_" + env
}

// Default holds every registered field keyed by name.
var Default = make(map[string]Field)

// EnvExposed holds the keys bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.PlayerBinary, "mpv", "mpv executable used for playback")
	register(key.PlayerPollInterval, 50, "How often, in milliseconds, the selection end is checked during preview")
	register(key.TimelineSeekStep, 5, "Seconds skipped by the left/right keys")
	register(key.TimelineSeekStepLarge, 30, "Seconds skipped by shift+left/right")
	register(key.FilesExtensions, []string{".mp3", ".wav", ".m4a", ".flac", ".ogg"}, "Extensions offered by the file picker")
	register(key.FilesStartDir, "", "Directory the file picker opens in.\nEmpty means the working directory")
	register(key.FilesShowHidden, false, "Show hidden files in the file picker")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
}
