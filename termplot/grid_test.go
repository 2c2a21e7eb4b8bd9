package termplot

import (
	"strings"
	"testing"

	"github.com/midbel/scatter"
)

func TestGridLayout(t *testing.T) {
	m, _ := setup(t)
	lines := strings.Split(m.grid.View(), "\n")

	for _, want := range []string{"Lacks Healthcare (%)", "Obesity (%)", "Smokes (%)"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("%q not found on the first row", want)
		}
	}
	var footer strings.Builder
	for _, str := range lines[len(lines)-4:] {
		footer.WriteString(str)
	}
	for _, want := range []string{"Household Income (Median)", "In Poverty (%)", "Age (Median)"} {
		if !strings.Contains(footer.String(), want) {
			t.Errorf("%q not found at the bottom of the chart", want)
		}
	}
	for _, want := range []string{"AL", "BE", "GA", "└"} {
		if !strings.Contains(m.grid.View(), want) {
			t.Errorf("%q not found in chart", want)
		}
	}
}

func TestGridTransition(t *testing.T) {
	m, clk := setup(t)
	m.Controller().SelectY(scatter.Obesity)
	if !m.grid.Moving() {
		t.Fatalf("grid should be moving")
	}
	before := m.grid.ViewAt(clk.Now())
	clk.Add(m.Controller().Duration() / 2)
	if m.grid.ViewAt(clk.Now()) == before {
		t.Errorf("frame should change while moving")
	}
	clk.Add(m.Controller().Duration())
	if m.grid.Moving() {
		t.Errorf("grid should be still")
	}
	for _, l := range m.grid.labels {
		want := l.Value == "income" || l.Value == "obesity"
		if l.Active != want {
			t.Errorf("%s: active should be %t", l.Value, want)
		}
	}
}

func TestGridFocusBounds(t *testing.T) {
	g := NewGrid(nil)
	g.Focus(3)
	if g.Focused() != -1 {
		t.Errorf("focus on an empty grid should be removed, got %d", g.Focused())
	}
	if g.View() != "" {
		t.Errorf("empty grid should render nothing")
	}
}
