package main

import (
	"time"

	"github.com/aschmelyun/tcut/loopstop"
	"github.com/aschmelyun/tcut/playback"
	"github.com/aschmelyun/tcut/selection"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
)

type backendReadyMsg struct{}

type backendClosedMsg struct{}

type fileLoadedMsg struct {
	path string
}

// selectionPlayingMsg reports that playback started at the selection start.
type selectionPlayingMsg struct {
	startMs int64
	endMs   int64
}

type errorMsg struct {
	err   error
	fatal bool
}

// settings are the tunables read from configuration at startup.
type settings struct {
	pollInterval  time.Duration
	seekStep      time.Duration
	seekStepLarge time.Duration
	extensions    []string
	startDir      string
	showHidden    bool
}

type model struct {
	backend  playback.Backend
	settings settings

	spinner    spinner.Model
	loading    bool
	loadingMsg string
	picker     filepicker.Model
	picking    bool
	timeline   progress.Model
	help       help.Model
	keys       keyMap

	ready       bool
	loaded      bool
	inputFile   string
	pendingFile string
	position    playback.Position
	state       playback.State
	selection   selection.Selection
	monitor     loopstop.Monitor

	warning  string
	quitting bool
	errorMsg string
	statuses []string
	width    int
}
