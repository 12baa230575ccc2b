package bubbletea

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	next    key.Binding
	prev    key.Binding
	choose  key.Binding
	search  key.Binding
	cancel  key.Binding
	larger  key.Binding
	smaller key.Binding
	theme   key.Binding
	copy    key.Binding
	quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sonraki")),
		prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "önceki")),
		choose:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "seç")),
		search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "ara")),
		cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "aramayı temizle")),
		larger:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "büyüt")),
		smaller: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "küçült")),
		theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tema")),
		copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "kopyala")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "çık")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.next, k.choose, k.search, k.larger, k.smaller, k.theme, k.copy, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.prev, k.cancel}}
}
