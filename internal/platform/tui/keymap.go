package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Jump       key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Runs       key.Binding
	Screenshot key.Binding
	Up         key.Binding
	Down       key.Binding
	Back       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Restart, k.Runs, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Restart, k.Quit},
		{k.Runs, k.Screenshot},
	}
}

// RunsHelp is the help shown while the runs table is open.
type RunsHelp struct{ KeyMap }

// ShortHelp returns key bindings for the runs table.
func (k RunsHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the runs table.
func (k RunsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "w", "up"),
			key.WithHelp("space/w/up", "jump"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Runs: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "runs"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "tab", "b"),
			key.WithHelp("esc/tab", "back"),
		),
	}
}

// Intent translates a key message to a simulation intent.
// Unbound keys map to IntentNone.
func (k KeyMap) Intent(msg tea.KeyMsg) core.Intent {
	switch {
	case key.Matches(msg, k.Quit):
		return core.IntentQuit
	case key.Matches(msg, k.Jump):
		return core.IntentJump
	case key.Matches(msg, k.Restart):
		return core.IntentRestart
	}
	return core.IntentNone
}
