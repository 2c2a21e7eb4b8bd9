// Package termplot draws the scatter chart in a terminal.
package termplot

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/midbel/scatter"
)

// Padding is the room, in cells, left around the plotting area for ticks and
// labels.
var Padding = scatter.Padding{
	Top:    2,
	Right:  4,
	Bottom: 6,
	Left:   9,
}

type element struct {
	id    string
	index int
	str   string
	tween scatter.Tween
}

type tick struct {
	label string
	tween scatter.Tween
}

type axis struct {
	scatter.Orientation
	ticks []tick
}

// Grid is a scatter.Surface made of character cells. Labels of the vertical
// axis can not be rotated in a terminal: they are written on the first row.
type Grid struct {
	now func() time.Time

	area    scatter.Area
	axes    map[string]*axis
	markers []*element
	texts   []*element
	labels  []scatter.Label
	index   map[string]*element
	tooltip func(int) string
	focus   int
}

func NewGrid(now func() time.Time) *Grid {
	if now == nil {
		now = time.Now
	}
	g := Grid{
		now:   now,
		axes:  make(map[string]*axis),
		index: make(map[string]*element),
		focus: -1,
	}
	return &g
}

func (g *Grid) Reset(area scatter.Area) {
	g.area = area
	g.axes = make(map[string]*axis)
	g.markers = g.markers[:0]
	g.texts = g.texts[:0]
	g.labels = g.labels[:0]
	g.index = make(map[string]*element)
	g.tooltip = nil
}

func (g *Grid) DrawAxis(a scatter.Axis) {
	x := axis{
		Orientation: a.Orientation,
	}
	for _, t := range a.Ticks {
		x.ticks = append(x.ticks, tick{
			label: t.Label,
			tween: scatter.Still(tickPos(a.Orientation, t.Offset)),
		})
	}
	g.axes[a.ID] = &x
}

func (g *Grid) DrawMarker(m scatter.Marker) {
	e := element{
		id:    m.ID,
		index: m.Index,
		tween: scatter.Still(m.Pos),
	}
	g.markers = append(g.markers, &e)
	g.index[m.ID] = &e
}

func (g *Grid) DrawText(t scatter.Text) {
	e := element{
		id:    t.ID,
		index: t.Index,
		str:   t.Str,
		tween: scatter.Still(t.Pos),
	}
	g.texts = append(g.texts, &e)
	g.index[t.ID] = &e
}

func (g *Grid) DrawLabel(l scatter.Label) {
	g.labels = append(g.labels, l)
}

func (g *Grid) SetActive(id string, active bool) {
	for i := range g.labels {
		if g.labels[i].ID == id {
			g.labels[i].Active = active
		}
	}
}

func (g *Grid) BindTooltip(fn func(int) string) {
	g.tooltip = fn
}

func (g *Grid) Transition(d time.Duration) scatter.Animator {
	return animator{
		Grid:     g,
		start:    g.now(),
		duration: d,
	}
}

func (g *Grid) Moving() bool {
	now := g.now()
	for _, e := range g.index {
		if !e.tween.Done(now) {
			return true
		}
	}
	for _, a := range g.axes {
		for _, t := range a.ticks {
			if !t.tween.Done(now) {
				return true
			}
		}
	}
	return false
}

// Focus gives the focus to the marker at index i. A negative index removes
// the focus.
func (g *Grid) Focus(i int) {
	if i >= len(g.markers) {
		i = len(g.markers) - 1
	}
	g.focus = i
}

func (g *Grid) Focused() int {
	return g.focus
}

func (g *Grid) Markers() int {
	return len(g.markers)
}

// Tooltip is the text bound to the marker having the focus.
func (g *Grid) Tooltip() string {
	if g.tooltip == nil || g.focus < 0 {
		return ""
	}
	return g.tooltip(g.focus)
}

type animator struct {
	*Grid
	start    time.Time
	duration time.Duration
}

func (a animator) MoveAxis(x scatter.Axis) {
	curr, ok := a.axes[x.ID]
	if !ok {
		a.DrawAxis(x)
		return
	}
	prev := make(map[string]scatter.Tween)
	for _, t := range curr.ticks {
		prev[t.label] = t.tween
	}
	curr.ticks = curr.ticks[:0]
	for _, t := range x.Ticks {
		pos := tickPos(x.Orientation, t.Offset)
		tw, ok := prev[t.Label]
		if ok {
			tw = tw.Retarget(pos, a.start, a.duration)
		} else {
			tw = scatter.Still(pos)
		}
		curr.ticks = append(curr.ticks, tick{
			label: t.Label,
			tween: tw,
		})
	}
}

func (a animator) Move(id string, pos scatter.Pos) {
	e, ok := a.index[id]
	if !ok {
		return
	}
	e.tween = e.tween.Retarget(pos, a.start, a.duration)
}

func tickPos(orient scatter.Orientation, offset float64) scatter.Pos {
	if orient.Vertical() {
		return scatter.NewPos(0, offset)
	}
	return scatter.NewPos(offset, 0)
}

type cell struct {
	r rune
	k kind
}

type canvas struct {
	width  int
	height int
	cells  [][]cell
}

func newCanvas(width, height int) *canvas {
	c := canvas{
		width:  width,
		height: height,
		cells:  make([][]cell, height),
	}
	for i := range c.cells {
		c.cells[i] = make([]cell, width)
		for j := range c.cells[i] {
			c.cells[i][j] = cell{r: ' '}
		}
	}
	return &c
}

func (c *canvas) put(x, y int, r rune, k kind) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = cell{r: r, k: k}
}

func (c *canvas) write(x, y int, str string, k kind) {
	for _, r := range str {
		c.put(x, y, r, k)
		x++
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for i, row := range c.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		var (
			run  strings.Builder
			curr kind
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(curr.style().Render(run.String()))
			run.Reset()
		}
		for j, c := range row {
			if j > 0 && c.k != curr {
				flush()
			}
			curr = c.k
			run.WriteRune(c.r)
		}
		flush()
	}
	return b.String()
}

// View renders the scene at the current instant.
func (g *Grid) View() string {
	return g.ViewAt(g.now())
}

func (g *Grid) ViewAt(now time.Time) string {
	var (
		width  = int(g.area.Width)
		height = int(g.area.Height)
	)
	if width <= 0 || height <= 0 {
		return ""
	}
	var (
		cv   = newCanvas(width, height)
		left = int(g.area.Left)
		top  = int(g.area.Top)
		dw   = int(math.Round(g.area.DrawingWidth()))
		dh   = int(math.Round(g.area.DrawingHeight()))
	)
	g.drawFrame(cv, left, top, dw, dh, now)
	g.drawElements(cv, left, top, now)
	g.drawLabels(cv, left, top, dw, dh)
	return cv.String()
}

func (g *Grid) drawFrame(cv *canvas, left, top, dw, dh int, now time.Time) {
	for y := top; y < top+dh; y++ {
		cv.put(left-1, y, '│', kindAxis)
	}
	for x := left; x <= left+dw; x++ {
		cv.put(x, top+dh, '─', kindAxis)
	}
	cv.put(left-1, top+dh, '└', kindAxis)

	if a, ok := g.axes[scatter.AxisY]; ok {
		for _, t := range a.ticks {
			row := top + round(t.tween.At(now).Y)
			cv.put(left-1, row, '┤', kindAxis)
			cv.write(left-2-utf8.RuneCountInString(t.label), row, t.label, kindAxis)
		}
	}
	if a, ok := g.axes[scatter.AxisX]; ok {
		last := -1
		for _, t := range a.ticks {
			col := left + round(t.tween.At(now).X)
			cv.put(col, top+dh, '┬', kindAxis)

			beg := col - utf8.RuneCountInString(t.label)/2
			if beg <= last {
				continue
			}
			cv.write(beg, top+dh+1, t.label, kindAxis)
			last = beg + utf8.RuneCountInString(t.label)
		}
	}
}

func (g *Grid) drawElements(cv *canvas, left, top int, now time.Time) {
	for _, m := range g.markers {
		var (
			pos = m.tween.At(now)
			k   = kindMarker
		)
		if m.index == g.focus {
			k = kindFocus
		}
		cv.put(left+round(pos.X), top+round(pos.Y), markerRune, k)
	}
	for _, t := range g.texts {
		var (
			pos = t.tween.At(now)
			k   = kindText
		)
		if t.index == g.focus {
			k = kindFocus
		}
		cv.write(left+round(pos.X)+1, top+round(pos.Y), t.str, k)
	}
}

func (g *Grid) drawLabels(cv *canvas, left, top, dw, dh int) {
	var (
		row    = top + dh + 3
		offset = left
	)
	for _, l := range g.labels {
		k := kindInactive
		if l.Active {
			k = kindActive
		}
		switch l.Axis {
		case scatter.AxisX:
			size := utf8.RuneCountInString(l.Str)
			cv.write(left+(dw-size)/2, row, l.Str, k)
			row++
		case scatter.AxisY:
			cv.write(offset, 0, l.Str, k)
			offset += utf8.RuneCountInString(l.Str) + 3
		}
	}
}

func round(f float64) int {
	return int(math.Round(f))
}
