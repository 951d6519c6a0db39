package tui

import "github.com/charmbracelet/bubbles/key"

// inputKeyMap defines key bindings for the seed entry screen
type inputKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Submit, k.Quit},
	}
}

// fetchingKeyMap defines key bindings while a lookup is running
type fetchingKeyMap struct {
	Cancel key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k fetchingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cancel, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k fetchingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Cancel, k.Quit},
	}
}

// reviewKeyMap defines key bindings for the review screen
type reviewKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Edit    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k reviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Edit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k reviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Confirm, k.Edit, k.Restart, k.Quit},
	}
}

// confirmedKeyMap defines key bindings for the confirmation screen
type confirmedKeyMap struct {
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k confirmedKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k confirmedKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Restart, k.Quit},
	}
}

// errorKeyMap defines key bindings for the lookup failure screen
type errorKeyMap struct {
	Retry   key.Binding
	Edit    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k errorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Retry, k.Edit, k.Restart, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k errorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Retry, k.Edit, k.Restart, k.Quit},
	}
}

func newInputKeyMap() inputKeyMap {
	return inputKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "find keywords"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func newFetchingKeyMap() fetchingKeyMap {
	return fetchingKeyMap{
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newReviewKeyMap() reviewKeyMap {
	return reviewKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter/y", "confirm"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "esc"),
			key.WithHelp("e", "edit seeds"),
		),
		Restart: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "start over"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newConfirmedKeyMap() confirmedKeyMap {
	return confirmedKeyMap{
		Restart: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "new search"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newErrorKeyMap() errorKeyMap {
	return errorKeyMap{
		Retry: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "retry"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "esc"),
			key.WithHelp("e", "edit seeds"),
		),
		Restart: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "start over"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}
