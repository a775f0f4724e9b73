package tui

import "github.com/charmbracelet/bubbles/key"

// Key bindings
type keyMap struct {
	Play      key.Binding
	Back      key.Binding
	Forward   key.Binding
	Start     key.Binding
	End       key.Binding
	NextScene key.Binding
	PrevScene key.Binding
	Add       key.Binding
	Shrink    key.Binding
	Grow      key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Jump      key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Play: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "play/pause"),
	),
	Back: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous frame"),
	),
	Forward: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next frame"),
	),
	Start: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first frame"),
	),
	End: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last frame"),
	),
	NextScene: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "select next scene"),
	),
	PrevScene: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "select previous scene"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add scene"),
	),
	Shrink: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "shrink scene"),
	),
	Grow: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "grow scene"),
	),
	MoveLeft: key.NewBinding(
		key.WithKeys("<", ","),
		key.WithHelp("<", "move scene left"),
	),
	MoveRight: key.NewBinding(
		key.WithKeys(">", "."),
		key.WithHelp(">", "move scene right"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "redo"),
	),
	Jump: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "jump to frame"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy position"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// groups lists bindings for the help overlay.
func (k keyMap) groups() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Back, k.Forward, k.Start, k.End, k.Jump},
		{k.NextScene, k.PrevScene, k.Add, k.Shrink, k.Grow, k.MoveLeft, k.MoveRight},
		{k.Undo, k.Redo, k.Copy, k.Help, k.Quit},
	}
}
