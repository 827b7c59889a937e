package main

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/aschmelyun/tcut/filesystem"
	"github.com/aschmelyun/tcut/key"
	"github.com/aschmelyun/tcut/loopstop"
	"github.com/aschmelyun/tcut/playback"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const maxStatuses = 5

func startBackendCmd(backend playback.Backend) tea.Cmd {
	return func() tea.Msg {
		if err := backend.Start(); err != nil {
			return errorMsg{err: err, fatal: true}
		}
		return backendReadyMsg{}
	}
}

// waitForEventCmd delivers the next backend event into the update loop.
// It is re-issued after every event, so exactly one reader drains the channel.
func waitForEventCmd(events <-chan playback.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return backendClosedMsg{}
		}
		return ev
	}
}

func loadFileCmd(backend playback.Backend, path string, extensions []string) tea.Cmd {
	return func() tea.Msg {
		if err := validateAudioFile(path, extensions); err != nil {
			return errorMsg{err: err}
		}
		if err := backend.Load(path); err != nil {
			return errorMsg{err: err}
		}
		return fileLoadedMsg{path: path}
	}
}

func togglePlaybackCmd(backend playback.Backend) tea.Cmd {
	return func() tea.Msg {
		var err error
		if backend.State() == playback.StatePlaying {
			err = backend.Pause()
		} else {
			err = backend.Play()
		}
		if err != nil {
			return errorMsg{err: fmt.Errorf("toggle playback: %w", err)}
		}
		return nil
	}
}

func seekCmd(backend playback.Backend, targetMs int64) tea.Cmd {
	return func() tea.Msg {
		if err := backend.SetPositionMs(targetMs); err != nil {
			return errorMsg{err: fmt.Errorf("seek: %w", err)}
		}
		return nil
	}
}

func playSelectionCmd(backend playback.Backend, startMs, endMs int64) tea.Cmd {
	return func() tea.Msg {
		if err := backend.SetPositionMs(startMs); err != nil {
			return errorMsg{err: fmt.Errorf("seek to selection: %w", err)}
		}
		if err := backend.Play(); err != nil {
			return errorMsg{err: fmt.Errorf("play selection: %w", err)}
		}
		return selectionPlayingMsg{startMs: startMs, endMs: endMs}
	}
}

func pauseAtEndCmd(backend playback.Backend) tea.Cmd {
	return func() tea.Msg {
		if err := backend.Pause(); err != nil {
			return errorMsg{err: fmt.Errorf("pause at selection end: %w", err)}
		}
		return nil
	}
}

func settingsFromConfig() settings {
	return settings{
		pollInterval:  time.Duration(viper.GetInt(key.PlayerPollInterval)) * time.Millisecond,
		seekStep:      time.Duration(viper.GetInt(key.TimelineSeekStep)) * time.Second,
		seekStepLarge: time.Duration(viper.GetInt(key.TimelineSeekStepLarge)) * time.Second,
		extensions:    normalizeExtensions(viper.GetStringSlice(key.FilesExtensions)),
		startDir:      viper.GetString(key.FilesStartDir),
		showHidden:    viper.GetBool(key.FilesShowHidden),
	}
}

func defaultSettings() settings {
	return settings{
		pollInterval:  loopstop.DefaultInterval,
		seekStep:      5 * time.Second,
		seekStepLarge: 30 * time.Second,
		extensions:    []string{".mp3", ".wav", ".m4a", ".flac", ".ogg"},
	}
}

func normalizeExtensions(exts []string) []string {
	return lo.Uniq(lo.Map(exts, func(ext string, _ int) string {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		return ext
	}))
}

// validateAudioFile checks that path exists and has one of the allowed extensions.
func validateAudioFile(path string, extensions []string) error {
	exists, err := filesystem.API().Exists(path)
	if err != nil {
		return fmt.Errorf("could not check '%s': %w", path, err)
	}
	if !exists {
		return fmt.Errorf("file '%s' does not exist", path)
	}

	if !lo.Contains(extensions, strings.ToLower(filepath.Ext(path))) {
		return fmt.Errorf("file '%s' is not a supported audio file", path)
	}

	return nil
}

func styleOutput(statuses []string) string {
	var styledStatuses []string
	for i, status := range statuses {
		bullet := "├"
		if i == len(statuses)-1 {
			bullet = "└"
		}
		styledStatuses = append(styledStatuses, BulletStyle.Render(bullet)+TextStyle.Render(status))
	}
	return strings.Join(styledStatuses, "\n") + "\n"
}

func appendStatus(statuses []string, status string) []string {
	statuses = append(statuses, status)
	if len(statuses) > maxStatuses {
		statuses = statuses[len(statuses)-maxStatuses:]
	}
	return statuses
}

func checkDependency(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}
