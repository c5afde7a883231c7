package reference

import "charm.land/bubbles/v2/key"

// keyMap holds the bindings of the reference screen.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Activate    key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	ScrollTop   key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
	Help        key.Binding
}

func newKeyMap(scrollTop bool) keyMap {
	k := keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous stage"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next stage"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter", "toggle"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		ScrollTop: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "back to top"),
		),
		ExpandAll: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand all"),
		),
		CollapseAll: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "collapse all"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
	k.ScrollTop.SetEnabled(scrollTop)
	return k
}

// All returns every binding in help order.
func (k keyMap) All() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Left, k.Right, k.Activate,
		k.PageUp, k.PageDown, k.Home, k.End, k.ScrollTop,
		k.ExpandAll, k.CollapseAll, k.Help,
	}
}
