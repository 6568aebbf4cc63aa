package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all pages.
type KeyMap struct {
	Quit     key.Binding
	NextPage key.Binding // tab — cycle pages
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Back     key.Binding // esc — close detail / cancel input
	Compose  key.Binding // p — new post
	Like     key.Binding // l — like post or comment
	Comment  key.Binding // c — write a comment
	Edit     key.Binding // e — edit profile
	Avatar   key.Binding // a — load avatar from file
	Submit   key.Binding // ctrl+d — submit multi-line compose
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Compose: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "new post"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit profile"),
		),
		Avatar: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "avatar"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "submit"),
		),
	}
}
