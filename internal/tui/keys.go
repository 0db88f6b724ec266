package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	reload    key.Binding
	next      key.Binding
	prev      key.Binding
	fav       key.Binding
	unfav     key.Binding
	clear     key.Binding
	selectOne key.Binding
	copyLink  key.Binding
	reply     key.Binding
	logout    key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	reload:    key.NewBinding(key.WithKeys("r")),
	next:      key.NewBinding(key.WithKeys("n", "right")),
	prev:      key.NewBinding(key.WithKeys("p", "left")),
	fav:       key.NewBinding(key.WithKeys("f")),
	unfav:     key.NewBinding(key.WithKeys("u")),
	clear:     key.NewBinding(key.WithKeys("c")),
	selectOne: key.NewBinding(key.WithKeys(" ")),
	copyLink:  key.NewBinding(key.WithKeys("y")),
	reply:     key.NewBinding(key.WithKeys("m")),
	logout:    key.NewBinding(key.WithKeys("x")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
}
