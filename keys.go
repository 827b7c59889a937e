package main

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the controls. A binding is disabled while its action is
// unavailable, which both hides it from help and stops it matching.
type keyMap struct {
	open          key.Binding
	playPause     key.Binding
	back          key.Binding
	forward       key.Binding
	backLarge     key.Binding
	forwardLarge  key.Binding
	jump          key.Binding
	markStart     key.Binding
	markEnd       key.Binding
	playSelection key.Binding
	dismiss       key.Binding
	cancel        key.Binding
	showHelp      key.Binding
	quit          key.Binding
	forceQuit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "load audio"),
		),
		playPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play"),
		),
		back: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "back"),
		),
		forward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "forward"),
		),
		backLarge: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("shift+←", "back more"),
		),
		forwardLarge: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("shift+→", "forward more"),
		),
		jump: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "jump"),
		),
		markStart: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "set start"),
		),
		markEnd: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "set end"),
		),
		playSelection: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("p", "play selected"),
		),
		dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter", "ok"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.open, k.playPause, k.markStart, k.markEnd, k.playSelection, k.showHelp, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.open, k.playPause, k.quit},
		{k.back, k.forward, k.backLarge, k.forwardLarge, k.jump},
		{k.markStart, k.markEnd, k.playSelection, k.showHelp},
	}
}
