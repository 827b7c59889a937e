// Package player drives an mpv process over its JSON-IPC socket and exposes it as a playback.Backend.
package player

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aschmelyun/tcut/constant"
	"github.com/aschmelyun/tcut/log"
	"github.com/aschmelyun/tcut/playback"
	"github.com/aschmelyun/tcut/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitTimeout       = 3 * time.Second
	eventBuffer       = 64
)

var _ playback.Backend = (*MPV)(nil)

// ErrUnsupportedPlatform is returned by Start where mpv's IPC server is not a unix socket.
var ErrUnsupportedPlatform = errors.New("mpv IPC is only supported over unix sockets")

// MPV is an idle, windowless mpv instance used purely for audio playback.
type MPV struct {
	binary     string
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	listener   *EventListener
	events     chan playback.Event
	closing    chan struct{}
	closeOnce  sync.Once
	mu         sync.Mutex // serialises IPC round trips

	stateMu sync.Mutex
	idle    bool
	paused  bool
}

// NewMPV creates a player backed by the given mpv executable. Nothing is started until Start.
func NewMPV(binary string) *MPV {
	if binary == "" {
		binary = "mpv"
	}
	return &MPV{
		binary:  binary,
		exited:  make(chan struct{}),
		events:  make(chan playback.Event, eventBuffer),
		closing: make(chan struct{}),
		idle:    true,
		paused:  true,
	}
}

// Start launches mpv, waits for its socket and subscribes to property changes.
func (m *MPV) Start() error {
	if err := checkPlatform(); err != nil {
		return err
	}

	path, err := exec.LookPath(m.binary)
	if err != nil {
		return fmt.Errorf("%s not found: %w", m.binary, err)
	}

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Errorf("generate socket name: %w", err)
	}
	socketPath := filepath.Join(where.Temp(), fmt.Sprintf("%s-%x.sock", constant.App, randomBytes))

	cmd := exec.Command(path, buildArgs(socketPath)...)
	cmd.SysProcAttr = sysProcAttr()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}
	// Close only has a process to stop from here on.
	m.cmd = cmd
	m.socketPath = socketPath
	log.Infof("started %s (pid %d) on %s", path, m.cmd.Process.Pid, m.socketPath)

	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(m.cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	m.listener = NewEventListener(m.socketPath, m.handleProperty, func() { close(m.events) })
	if err := m.listener.Start(); err != nil {
		return err
	}

	return nil
}

func buildArgs(socketPath string) []string {
	return []string{
		"--idle=yes",
		"--pause",
		"--no-video",
		"--no-terminal",
		"--really-quiet",
		"--keep-open=yes",
		fmt.Sprintf("--input-ipc-server=%s", socketPath),
	}
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return errors.New("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// Load replaces the current media with a local file, paused at its start.
func (m *MPV) Load(path string) error {
	safe, err := sanitizePath(path)
	if err != nil {
		return fmt.Errorf("invalid media path: %w", err)
	}

	if err := m.Pause(); err != nil {
		return err
	}

	if _, err := m.sendCommand("loadfile", safe, "replace"); err != nil {
		return fmt.Errorf("load %s: %w", filepath.Base(safe), err)
	}

	log.Infof("loaded %s", safe)
	return nil
}

func (m *MPV) Play() error {
	_, err := m.sendCommand("set_property", "pause", false)
	return err
}

func (m *MPV) Pause() error {
	_, err := m.sendCommand("set_property", "pause", true)
	return err
}

// PositionMs returns mpv's time-pos.
func (m *MPV) PositionMs() (int64, error) {
	sec, err := m.getFloatProperty("time-pos")
	if err != nil {
		return 0, err
	}
	return toMillis(sec), nil
}

// SetPositionMs seeks to an absolute position.
func (m *MPV) SetPositionMs(ms int64) error {
	_, err := m.sendCommand("seek", float64(ms)/1000, "absolute+exact")
	return err
}

// DurationMs returns the media length, or 0 while nothing is loaded.
func (m *MPV) DurationMs() (int64, error) {
	sec, err := m.getFloatProperty("duration")
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) && cmdErr.Unavailable() {
			return 0, nil
		}
		return 0, err
	}
	return toMillis(sec), nil
}

// State derives the playback state from the last reported idle and pause flags.
func (m *MPV) State() playback.State {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()
	return m.stateLocked()
}

func (m *MPV) stateLocked() playback.State {
	switch {
	case m.idle:
		return playback.StateStopped
	case m.paused:
		return playback.StatePaused
	default:
		return playback.StatePlaying
	}
}

func (m *MPV) Events() <-chan playback.Event {
	return m.events
}

// Close asks mpv to quit, killing it if it does not, and removes the socket.
func (m *MPV) Close() error {
	if m.socketPath == "" {
		return nil
	}
	m.closeOnce.Do(func() { close(m.closing) })

	_, _ = m.sendCommand("quit")

	select {
	case <-m.exited:
	case <-time.After(quitTimeout):
		_ = killProcess(m.cmd)
	}

	if m.listener != nil {
		m.listener.Stop()
	}

	_ = os.Remove(m.socketPath)
	return nil
}

// handleProperty turns observed property changes into playback events.
// It runs on the listener goroutine, which is the only sender on m.events.
func (m *MPV) handleProperty(name string, data interface{}) {
	switch name {
	case "time-pos":
		if sec, ok := data.(float64); ok {
			m.emit(playback.PositionChanged{PositionMs: toMillis(sec)})
		}
	case "duration":
		sec, _ := data.(float64)
		m.emit(playback.DurationChanged{DurationMs: toMillis(sec)})
	case "pause", "idle-active":
		flag, ok := data.(bool)
		if !ok {
			return
		}

		m.stateMu.Lock()
		before := m.stateLocked()
		if name == "pause" {
			m.paused = flag
		} else {
			m.idle = flag
		}
		after := m.stateLocked()
		m.stateMu.Unlock()

		if before != after {
			m.emit(playback.StateChanged{State: after})
		}
	}
}

func (m *MPV) emit(ev playback.Event) {
	select {
	case m.events <- ev:
	case <-m.closing:
	}
}

func (m *MPV) getFloatProperty(name string) (float64, error) {
	data, err := m.sendCommand("get_property", name)
	if err != nil {
		return 0, err
	}

	val, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected float64, got %T", name, data)
	}
	return val, nil
}

func toMillis(sec float64) int64 {
	if sec <= 0 || math.IsNaN(sec) {
		return 0
	}
	return int64(math.Round(sec * 1000))
}

// sanitizePath validates a local media path and makes it absolute.
func sanitizePath(path string) (string, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		return "", errors.New("empty path")
	}

	if strings.ContainsAny(p, "\x00\n\r") {
		return "", errors.New("invalid control characters in path")
	}

	if strings.Contains(p, "://") {
		return "", errors.New("only local files are supported")
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return abs, nil
}
