package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of the page view. The short help lists the
// bindings shown in the footer, in footer order.
type KeyMap struct {
	Goto     key.Binding
	Previous key.Binding
	Next     key.Binding
	History  key.Binding
	Quit     key.Binding
	Left     key.Binding
	Right    key.Binding
	Reload   key.Binding
	View     key.Binding
	Help     key.Binding
	ForceQ   key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Goto:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "Gå till")),
		Previous: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "Föregående sida")),
		Next:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "Nästa sida")),
		History:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "Historik")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Avsluta")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "Föregående del")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "Nästa del")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Ladda om")),
		View:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "Visa hela sidan")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Hjälp")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp returns the footer bindings
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Goto, k.Previous, k.Next, k.History, k.Quit}
}

// FullHelp returns every binding, grouped for the help pager
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.Goto, k.Left, k.Right},
		{k.History, k.Reload, k.View, k.Help, k.Quit},
	}
}
