package termplot

import "github.com/charmbracelet/bubbles/key"

type Keymap struct {
	Quit     key.Binding
	Income   key.Binding
	Poverty  key.Binding
	Age      key.Binding
	Health   key.Binding
	Obesity  key.Binding
	Smokes   key.Binding
	NextX    key.Binding
	NextY    key.Binding
	NextMark key.Binding
	PrevMark key.Binding
	Blur     key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Income: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "income"),
	),
	Poverty: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "poverty"),
	),
	Age: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "age"),
	),
	Health: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "healthcare"),
	),
	Obesity: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "obesity"),
	),
	Smokes: key.NewBinding(
		key.WithKeys("6"),
		key.WithHelp("6", "smokes"),
	),
	NextX: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next x"),
	),
	NextY: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "next y"),
	),
	NextMark: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next state"),
	),
	PrevMark: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous state"),
	),
	Blur: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "hide tooltip"),
	),
}

func (k Keymap) bindings() []key.Binding {
	return []key.Binding{
		k.Income,
		k.Poverty,
		k.Age,
		k.Health,
		k.Obesity,
		k.Smokes,
		k.NextX,
		k.NextY,
		k.NextMark,
		k.Quit,
	}
}
