package termplot

import "github.com/charmbracelet/lipgloss"

const (
	markerFGColor   = "#89bdd3"
	axisFGColor     = "#808080"
	activeFGColor   = "#e0e0e0"
	inactiveFGColor = "#5f5f5f"
	tooltipBGColor  = "#3a3a3a"
)

var (
	plainStyle    = lipgloss.NewStyle()
	axisStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(axisFGColor))
	markerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(markerFGColor))
	textStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(markerFGColor)).Bold(true)
	focusStyle    = lipgloss.NewStyle().Reverse(true).Bold(true)
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(activeFGColor)).Bold(true).Underline(true)
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(inactiveFGColor))
	tooltipStyle  = lipgloss.NewStyle().Background(lipgloss.Color(tooltipBGColor)).Padding(0, 1)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	markerRune = '●'
)

type kind int

const (
	kindPlain kind = iota
	kindAxis
	kindMarker
	kindText
	kindFocus
	kindActive
	kindInactive
)

func (k kind) style() lipgloss.Style {
	switch k {
	case kindAxis:
		return axisStyle
	case kindMarker:
		return markerStyle
	case kindText:
		return textStyle
	case kindFocus:
		return focusStyle
	case kindActive:
		return activeStyle
	case kindInactive:
		return inactiveStyle
	default:
		return plainStyle
	}
}
