package form

import "github.com/charmbracelet/bubbles/key"

// formKeys holds key bindings for form mode.
type formKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Add    key.Binding
	Update key.Binding
	Delete key.Binding
	Clear  key.Binding
	View   key.Binding
	Quit   key.Binding
}

// ShortHelp returns the form mode bindings for the help bar.
func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Enter, k.Add, k.Update, k.Delete, k.Clear, k.View, k.Quit}
}

// FullHelp returns the form mode bindings grouped for expanded help.
func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Enter, k.Add, k.Update, k.Delete},
		{k.Clear, k.View, k.Quit},
	}
}

// listKeys holds key bindings for the read-only listing.
type listKeys struct {
	AnyKey key.Binding
}

// ShortHelp returns the listing bindings for the help bar.
func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.AnyKey}
}

// FullHelp returns the listing bindings grouped for expanded help.
func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.AnyKey}}
}

// FormKeyMap returns the key bindings for form mode.
func FormKeyMap() formKeys {
	return formKeys{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
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
			key.WithHelp("enter", "select/submit"),
		),
		Add: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "add"),
		),
		Update: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "update"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		View: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "view all"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ListKeyMap returns the key bindings for the read-only listing.
func ListKeyMap() listKeys {
	return listKeys{
		// "any" is a display-only key for the help bar; actual any-key
		// handling is done in the Update() switch on tea.KeyMsg.
		AnyKey: key.NewBinding(
			key.WithKeys("any"),
			key.WithHelp("any key", "back"),
		),
	}
}
