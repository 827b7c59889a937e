package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aschmelyun/tcut/clock"
	"github.com/aschmelyun/tcut/log"
	"github.com/aschmelyun/tcut/loopstop"
	"github.com/aschmelyun/tcut/playback"
	"github.com/aschmelyun/tcut/selection"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
)

const (
	defaultWidth    = 64
	invalidSelTitle = "Invalid selection"
	invalidSelText  = "Start must be before end."
)

func newModel(backend playback.Backend, opts settings, inputFile string) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	fp := filepicker.New()
	fp.AllowedTypes = opts.extensions
	fp.ShowHidden = opts.showHidden
	if opts.startDir != "" {
		fp.CurrentDirectory = opts.startDir
	}

	m := model{
		backend:    backend,
		settings:   opts,
		spinner:    s,
		loading:    true,
		loadingMsg: "Starting mpv...",
		picker:     fp,
		timeline:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(defaultWidth)),
		help:       help.New(),
		keys:       newKeyMap(),
		inputFile:  inputFile,
		monitor:    loopstop.New(opts.pollInterval),
	}
	m.refreshKeys()
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		startBackendCmd(m.backend),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.timeline.Width = lo.Clamp(msg.Width-4, 10, 120)
		m.help.Width = msg.Width

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case backendReadyMsg:
		m.loading = false
		m.ready = true
		m.statuses = appendStatus(m.statuses, SuccessStyle.Render("mpv is ready."))
		m.refreshKeys()

		cmd := waitForEventCmd(m.backend.Events())
		if m.inputFile != "" {
			var load tea.Cmd
			m, load = m.loadFile(m.inputFile)
			return m, tea.Batch(cmd, load)
		}
		return m, cmd

	case backendClosedMsg:
		m.ready = false
		m.loaded = false
		m.monitor.Stop()
		m.statuses = appendStatus(m.statuses, "mpv exited.")
		m.refreshKeys()
		return m, nil

	case fileLoadedMsg:
		if msg.path != m.pendingFile {
			return m, nil
		}
		m.inputFile = msg.path
		m.loaded = true
		m.statuses = appendStatus(m.statuses, SuccessStyle.Render("Loaded "+filepath.Base(msg.path)))
		m.refreshKeys()
		return m, nil

	case selectionPlayingMsg:
		// A load or a new selection since the request makes this preview stale.
		start, end, ok := m.selection.Bounds()
		if !ok || start != msg.startMs || end != msg.endMs {
			return m, nil
		}
		log.Debugf("previewing %s → %s", clock.FormatMillis(start), clock.FormatMillis(end))
		return m, m.monitor.Watch(msg.endMs)

	case playback.DurationChanged:
		m.position.SetDuration(msg.DurationMs)
		m.refreshKeys()
		return m, waitForEventCmd(m.backend.Events())

	case playback.PositionChanged:
		m.position.SetCurrent(msg.PositionMs)
		return m, waitForEventCmd(m.backend.Events())

	case playback.StateChanged:
		m.state = msg.State
		m.refreshKeys()
		return m, waitForEventCmd(m.backend.Events())

	case loopstop.TickMsg:
		reached, next := m.monitor.Check(msg, m.position.CurrentMs)
		if reached {
			log.Debugf("selection end %s reached", clock.FormatMillis(m.monitor.EndMs()))
			return m, pauseAtEndCmd(m.backend)
		}
		return m, next

	case errorMsg:
		log.Error(msg.err)
		m.statuses = appendStatus(m.statuses, msg.err.Error())
		m.loading = false
		if msg.fatal {
			m.errorMsg = msg.err.Error()
		}
		m.refreshKeys()
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// The file picker reads directories asynchronously.
	if m.picking {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.forceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.warning != "" {
		if key.Matches(msg, m.keys.dismiss) {
			m.warning = ""
		}
		return m, nil
	}

	if m.picking {
		return m.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.showHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.open):
		m.picking = true
		return m, m.picker.Init()

	case key.Matches(msg, m.keys.playPause):
		return m, togglePlaybackCmd(m.backend)

	case key.Matches(msg, m.keys.back):
		return m.seekBy(-m.settings.seekStep.Milliseconds())

	case key.Matches(msg, m.keys.forward):
		return m.seekBy(m.settings.seekStep.Milliseconds())

	case key.Matches(msg, m.keys.backLarge):
		return m.seekBy(-m.settings.seekStepLarge.Milliseconds())

	case key.Matches(msg, m.keys.forwardLarge):
		return m.seekBy(m.settings.seekStepLarge.Milliseconds())

	case key.Matches(msg, m.keys.jump):
		tenths := int64(msg.Runes[0] - '0')
		return m.seek(m.position.DurationMs * tenths / 10)

	case key.Matches(msg, m.keys.markStart):
		return m.afterMark(m.selection.MarkStart(m.position.CurrentMs)), nil

	case key.Matches(msg, m.keys.markEnd):
		return m.afterMark(m.selection.MarkEnd(m.position.CurrentMs)), nil

	case key.Matches(msg, m.keys.playSelection):
		return m.playSelection()
	}

	return m, nil
}

func (m model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.cancel) {
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		var load tea.Cmd
		m, load = m.loadFile(path)
		return m, tea.Batch(cmd, load)
	}

	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.statuses = appendStatus(m.statuses, fmt.Sprintf("'%s' is not a supported audio file.", filepath.Base(path)))
		return m, cmd
	}

	return m, cmd
}

// loadFile hands path to the backend. The selection, position and any
// running preview are reset first, even if the file turns out to be unusable.
func (m model) loadFile(path string) (model, tea.Cmd) {
	m.picking = false
	m.loaded = false
	m.pendingFile = path
	m.selection.Clear()
	m.monitor.Stop()
	m.position.Reset()
	m.refreshKeys()

	return m, loadFileCmd(m.backend, path, m.settings.extensions)
}

func (m model) seekBy(deltaMs int64) (model, tea.Cmd) {
	return m.seek(max(m.position.CurrentMs+deltaMs, 0))
}

// seek moves the timeline at once and forwards the target to the backend,
// which clamps out of range targets.
func (m model) seek(targetMs int64) (model, tea.Cmd) {
	m.position.SetCurrent(targetMs)
	return m, seekCmd(m.backend, targetMs)
}

func (m model) afterMark(err error) model {
	if errors.Is(err, selection.ErrInvalidSelection) {
		log.Warnf("selection rejected: %v", err)
		m.warning = invalidSelText
	}
	m.refreshKeys()
	return m
}

// playSelection seeks to the start and plays. The end is watched once the
// backend confirms, see selectionPlayingMsg.
func (m model) playSelection() (tea.Model, tea.Cmd) {
	start, end, ok := m.selection.Bounds()
	if !ok {
		return m, nil
	}

	m.position.SetCurrent(start)
	return m, playSelectionCmd(m.backend, start, end)
}

// refreshKeys enables exactly the controls whose action is currently possible.
func (m *model) refreshKeys() {
	usable := m.ready && m.errorMsg == ""
	loaded := usable && m.loaded

	m.keys.open.SetEnabled(usable)
	for _, b := range []*key.Binding{
		&m.keys.playPause,
		&m.keys.back, &m.keys.forward,
		&m.keys.backLarge, &m.keys.forwardLarge,
		&m.keys.markStart, &m.keys.markEnd,
	} {
		b.SetEnabled(loaded)
	}
	m.keys.jump.SetEnabled(loaded && m.position.Known())
	m.keys.playSelection.SetEnabled(loaded && m.selection.Complete())

	if m.state == playback.StatePlaying {
		m.keys.playPause.SetHelp("space", "pause")
	} else {
		m.keys.playPause.SetHelp("space", "play")
	}
}

func (m model) View() string {
	if m.quitting {
		return styleOutput(m.statuses)
	}

	if m.errorMsg != "" {
		return styleOutput(m.statuses) + "\nPress 'q' to quit"
	}

	if m.loading {
		loadingText := fmt.Sprintf("%s%s", m.spinner.View(), m.loadingMsg)
		if len(m.statuses) > 0 {
			return styleOutput(m.statuses) + loadingText
		}
		return loadingText
	}

	var b strings.Builder
	if len(m.statuses) > 0 {
		b.WriteString(styleOutput(m.statuses))
	}
	b.WriteString("\n")

	if m.picking {
		b.WriteString(SectionStyle.Render(TitleStyle.Render("Select audio file")+DimTextStyle.Render("  ("+strings.Join(m.settings.extensions, " ")+")")) + "\n\n")
		b.WriteString(m.picker.View())
		b.WriteString("\n" + SectionStyle.Render(DimTextStyle.Render("esc cancel")))
		return b.String()
	}

	b.WriteString(m.fileLine() + "\n\n")
	b.WriteString(SectionStyle.Render(m.timeline.ViewAs(m.position.Fraction())) + "\n")
	b.WriteString(SectionStyle.Render(m.timeLine()) + "\n\n")
	b.WriteString(StateStyle.Render(m.stateLine()) + "\n")
	b.WriteString(SelectionStyle.Render(m.markersLine()) + "\n")
	b.WriteString(SelectionStyle.Render(m.selection.Summary()) + "\n")

	if m.warning != "" {
		b.WriteString("\n" + WarningStyle.Render(
			ErrorStyle.Render(invalidSelTitle)+"\n\n"+
				TextStyle.Render(m.warning)+"\n\n"+
				DimTextStyle.Render("enter ok"),
		) + "\n")
		return b.String()
	}

	b.WriteString("\n" + SectionStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m model) fileLine() string {
	if !m.loaded {
		return SectionStyle.Render(DimTextStyle.Render("No audio loaded. Press o to load a file."))
	}
	name := filepath.Base(m.inputFile)
	if m.width > 0 {
		name = truncate.StringWithTail(name, uint(max(m.width-4, 8)), "…")
	}
	return FileStyle.Render(name)
}

func (m model) timeLine() string {
	current := m.position.CurrentLabel()
	total := m.position.TotalLabel()
	gap := max(m.timeline.Width-len(current)-len(total), 1)
	return TimeStyle.Render(current + strings.Repeat(" ", gap) + total)
}

func (m model) stateLine() string {
	var line string
	switch m.state {
	case playback.StatePlaying:
		line = "▶ Playing"
	case playback.StatePaused:
		line = "❚❚ Paused"
	default:
		line = "■ Stopped"
	}
	if m.monitor.State() == loopstop.Watching {
		line += DimTextStyle.Render(" · previewing until " + clock.FormatMillis(m.monitor.EndMs()))
	}
	return line
}

func (m model) markersLine() string {
	format := func(ms int64) string { return clock.FormatMillis(ms) }
	start := lo.Ternary(m.selection.Start().IsPresent(), format(m.selection.Start().OrEmpty()), "--:--")
	end := lo.Ternary(m.selection.End().IsPresent(), format(m.selection.End().OrEmpty()), "--:--")
	return DimTextStyle.Render(fmt.Sprintf("Start %s   End %s", start, end))
}
