package termplot

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/midbel/scatter"
	"github.com/midbel/slices"
)

const (
	frameRate = time.Second / 30

	// rows kept below the chart for the tooltip and the help line
	footerRows = 2

	defaultCols = 100
	defaultRows = 30
)

type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type Model struct {
	ctrl *scatter.Controller
	grid *Grid
	keys Keymap

	width   int
	height  int
	playing bool
}

// NewModel builds the terminal chart of data. The chart is drawn at a default
// size until the terminal reports its own.
func NewModel(data scatter.Dataset, options ...scatter.Option) (*Model, error) {
	return newModel(data, time.Now, options...)
}

func newModel(data scatter.Dataset, now func() time.Time, options ...scatter.Option) (*Model, error) {
	grid := NewGrid(now)
	options = append([]scatter.Option{scatter.WithPadding(Padding)}, options...)

	ctrl := scatter.New(grid, defaultCols, defaultRows-footerRows, options...)
	if err := ctrl.Initialize(data); err != nil {
		return nil, err
	}
	m := Model{
		ctrl:   ctrl,
		grid:   grid,
		keys:   Keys,
		width:  defaultCols,
		height: defaultRows,
	}
	return &m, nil
}

func (m *Model) Controller() *scatter.Controller {
	return m.ctrl
}

func (m *Model) Init() tea.Cmd {
	log.Printf("scatter: terminal chart ready with %d states", len(m.ctrl.Dataset()))
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if err := m.ctrl.Resize(float64(msg.Width), float64(msg.Height-footerRows)); err != nil {
			log.Printf("scatter: resize to %dx%d: %v", msg.Width, msg.Height, err)
		}
		return m, nil
	case frameMsg:
		if m.grid.Moving() {
			return m, nextFrame()
		}
		m.playing = false
		return m, nil
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var changed bool
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Income):
		changed = m.ctrl.SelectX(scatter.Income)
	case key.Matches(msg, m.keys.Poverty):
		changed = m.ctrl.SelectX(scatter.Poverty)
	case key.Matches(msg, m.keys.Age):
		changed = m.ctrl.SelectX(scatter.Age)
	case key.Matches(msg, m.keys.Health):
		changed = m.ctrl.SelectY(scatter.Healthcare)
	case key.Matches(msg, m.keys.Obesity):
		changed = m.ctrl.SelectY(scatter.Obesity)
	case key.Matches(msg, m.keys.Smokes):
		changed = m.ctrl.SelectY(scatter.Smokes)
	case key.Matches(msg, m.keys.NextX):
		changed = m.ctrl.SelectX(nextX(m.ctrl.Selection().X))
	case key.Matches(msg, m.keys.NextY):
		changed = m.ctrl.SelectY(nextY(m.ctrl.Selection().Y))
	case key.Matches(msg, m.keys.NextMark):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevMark):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Blur):
		m.grid.Focus(-1)
	}
	if !changed {
		return m, nil
	}
	log.Printf("scatter: selection changed to %s/%s", m.ctrl.Selection().X, m.ctrl.Selection().Y)
	return m, m.play()
}

// play starts the frame loop unless it already runs.
func (m *Model) play() tea.Cmd {
	if m.playing {
		return nil
	}
	m.playing = true
	return nextFrame()
}

func (m *Model) moveFocus(step int) {
	n := m.grid.Markers()
	if n == 0 {
		return
	}
	curr := m.grid.Focused()
	if curr < 0 && step < 0 {
		curr = 0
	}
	m.grid.Focus((curr + step + n) % n)
}

func (m *Model) View() string {
	var tip string
	if str := m.grid.Tooltip(); str != "" {
		tip = tooltipStyle.Render(strings.ReplaceAll(str, "<br>", " · "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.grid.View(), tip, m.helpView())
}

func (m *Model) helpView() string {
	var parts []string
	for _, b := range m.keys.bindings() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}

func nextX(f scatter.XField) scatter.XField {
	list := scatter.XFields()
	if f == slices.Lst(list) {
		return slices.Fst(list)
	}
	for i, x := range list {
		if x == f {
			return list[i+1]
		}
	}
	return slices.Fst(list)
}

func nextY(f scatter.YField) scatter.YField {
	list := scatter.YFields()
	if f == slices.Lst(list) {
		return slices.Fst(list)
	}
	for i, y := range list {
		if y == f {
			return list[i+1]
		}
	}
	return slices.Fst(list)
}
