package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// PlaygroundKeyMap defines keybindings for the layout playground.
type PlaygroundKeyMap struct {
	Open        key.Binding
	Close       key.Binding
	FocusLeft   key.Binding
	FocusDown   key.Binding
	FocusUp     key.Binding
	FocusRight  key.Binding
	MoveLeft    key.Binding
	MoveDown    key.Binding
	MoveUp      key.Binding
	MoveRight   key.Binding
	Grow        key.Binding
	Shrink      key.Binding
	Float       key.Binding
	Minimize    key.Binding
	Restore     key.Binding
	CycleEngine key.Binding
	Promote     key.Binding
	Demote      key.Binding
	Split       key.Binding
	Maximize    key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PlaygroundKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Close, k.Float, k.CycleEngine, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PlaygroundKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Close, k.Minimize, k.Restore},
		{k.FocusLeft, k.FocusDown, k.FocusUp, k.FocusRight},
		{k.MoveLeft, k.MoveDown, k.MoveUp, k.MoveRight},
		{k.Grow, k.Shrink, k.Float},
		{k.CycleEngine, k.Promote, k.Demote, k.Split, k.Maximize},
		{k.Help, k.Quit},
	}
}

// DefaultPlaygroundKeyMap returns the default playground keybindings.
func DefaultPlaygroundKeyMap() PlaygroundKeyMap {
	return PlaygroundKeyMap{
		Open:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new window")),
		Close:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close")),
		FocusLeft:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "focus left")),
		FocusDown:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "focus down")),
		FocusUp:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "focus up")),
		FocusRight:  key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "focus right")),
		MoveLeft:    key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "move left")),
		MoveDown:    key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
		MoveUp:      key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
		MoveRight:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "move right")),
		Grow:        key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "grow")),
		Shrink:      key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shrink")),
		Float:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "float")),
		Minimize:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "minimize")),
		Restore:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restore")),
		CycleEngine: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "next engine")),
		Promote:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "promote")),
		Demote:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "demote")),
		Split:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle split")),
		Maximize:    key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "toggle maximized")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
