package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the picker's bindings; it satisfies help.KeyMap
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	FineLeft  key.Binding
	FineRight key.Binding
	Random    key.Binding
	Toggle    key.Binding
	Hex       key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev slider"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next slider"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		FineLeft: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("H", "fine decrease"),
		),
		FineRight: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("L", "fine increase"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random color"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "show/hide sliders"),
		),
		Hex: key.NewBinding(
			key.WithKeys("#", "/"),
			key.WithHelp("#", "enter hex"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply hex"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// setSlidersEnabled turns the slider bindings on or off with the sliders
func (k *keyMap) setSlidersEnabled(enabled bool) {
	for _, b := range []*key.Binding{&k.Up, &k.Down, &k.Left, &k.Right, &k.FineLeft, &k.FineRight} {
		b.SetEnabled(enabled)
	}
}

// setEditing switches between the hex-field bindings and the normal ones
func (k *keyMap) setEditing(editing bool, slidersVisible bool) {
	k.Submit.SetEnabled(editing)
	k.Cancel.SetEnabled(editing)
	k.Random.SetEnabled(!editing)
	k.Toggle.SetEnabled(!editing)
	k.Hex.SetEnabled(!editing)
	k.Help.SetEnabled(!editing)
	k.setSlidersEnabled(!editing && slidersVisible)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Random, k.Toggle, k.Hex, k.Submit, k.Cancel, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.FineLeft, k.FineRight},
		{k.Random, k.Toggle, k.Hex},
		{k.Submit, k.Cancel, k.Help, k.Quit},
	}
}
