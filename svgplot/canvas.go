// Package svgplot draws the scatter chart as an SVG document.
//
// A Canvas keeps the drawn scene in memory. Transitions are resolved against
// the clock of the canvas each time a frame is rendered, so a host only has to
// render the canvas again while Moving reports true.
package svgplot

import (
	"bufio"
	"io"
	"time"

	"github.com/midbel/scatter"
	"github.com/midbel/svg"
)

type Style struct {
	Marker        string
	MarkerOpacity float64
	Text          string
	Active        string
	Inactive      string
}

func DefaultStyle() Style {
	return Style{
		Marker:        "#89bdd3",
		MarkerOpacity: 0.5,
		Text:          "#ffffff",
		Active:        "#000000",
		Inactive:      "#aaaaaa",
	}
}

type node struct {
	id    string
	index int
	tween scatter.Tween
}

type markerNode struct {
	node
	radius float64
}

type textNode struct {
	node
	str  string
	size float64
}

type labelNode struct {
	scatter.Label
}

type Canvas struct {
	Style
	now func() time.Time

	area    scatter.Area
	axes    []*axisNode
	markers []*markerNode
	texts   []*textNode
	labels  []*labelNode
	nodes   map[string]*node
	tooltip func(int) string
}

type Option func(*Canvas)

func WithClock(now func() time.Time) Option {
	return func(c *Canvas) {
		c.now = now
	}
}

func WithStyle(style Style) Option {
	return func(c *Canvas) {
		c.Style = style
	}
}

func New(options ...Option) *Canvas {
	c := Canvas{
		Style: DefaultStyle(),
		now:   time.Now,
		nodes: make(map[string]*node),
	}
	for _, o := range options {
		o(&c)
	}
	return &c
}

func (c *Canvas) Reset(area scatter.Area) {
	c.area = area
	c.axes = c.axes[:0]
	c.markers = c.markers[:0]
	c.texts = c.texts[:0]
	c.labels = c.labels[:0]
	c.nodes = make(map[string]*node)
	c.tooltip = nil
}

func (c *Canvas) DrawAxis(a scatter.Axis) {
	for i := range c.axes {
		if c.axes[i].id == a.ID {
			c.axes[i] = makeAxisNode(a)
			return
		}
	}
	c.axes = append(c.axes, makeAxisNode(a))
}

func (c *Canvas) DrawMarker(m scatter.Marker) {
	n := markerNode{
		node: node{
			id:    m.ID,
			index: m.Index,
			tween: scatter.Still(m.Pos),
		},
		radius: m.Radius,
	}
	c.markers = append(c.markers, &n)
	c.nodes[m.ID] = &n.node
}

func (c *Canvas) DrawText(t scatter.Text) {
	n := textNode{
		node: node{
			id:    t.ID,
			index: t.Index,
			tween: scatter.Still(t.Pos),
		},
		str:  t.Str,
		size: t.Size,
	}
	c.texts = append(c.texts, &n)
	c.nodes[t.ID] = &n.node
}

func (c *Canvas) DrawLabel(l scatter.Label) {
	c.labels = append(c.labels, &labelNode{Label: l})
}

func (c *Canvas) SetActive(id string, active bool) {
	for _, n := range c.labels {
		if n.ID == id {
			n.Active = active
		}
	}
}

func (c *Canvas) BindTooltip(fn func(int) string) {
	c.tooltip = fn
}

// Tooltip gives the text bound to the marker at index i.
func (c *Canvas) Tooltip(i int) string {
	if c.tooltip == nil {
		return ""
	}
	return c.tooltip(i)
}

// Labels returns the axis labels currently drawn.
func (c *Canvas) Labels() []scatter.Label {
	list := make([]scatter.Label, 0, len(c.labels))
	for _, n := range c.labels {
		list = append(list, n.Label)
	}
	return list
}

// Position returns where the element id is at instant now.
func (c *Canvas) Position(id string, now time.Time) (scatter.Pos, bool) {
	n, ok := c.nodes[id]
	if !ok {
		return scatter.Pos{}, false
	}
	return n.tween.At(now), true
}

func (c *Canvas) Transition(d time.Duration) scatter.Animator {
	return animator{
		Canvas:   c,
		start:    c.now(),
		duration: d,
	}
}

// Moving reports whether some elements have not reached their target yet.
func (c *Canvas) Moving() bool {
	now := c.now()
	for _, n := range c.nodes {
		if !n.tween.Done(now) {
			return true
		}
	}
	for _, a := range c.axes {
		if a.moving(now) {
			return true
		}
	}
	return false
}

type animator struct {
	*Canvas
	start    time.Time
	duration time.Duration
}

func (a animator) MoveAxis(axis scatter.Axis) {
	for _, n := range a.axes {
		if n.id == axis.ID {
			n.update(axis, a.start, a.duration)
			return
		}
	}
	a.DrawAxis(axis)
}

func (a animator) Move(id string, pos scatter.Pos) {
	n, ok := a.nodes[id]
	if !ok {
		return
	}
	n.tween = n.tween.Retarget(pos, a.start, a.duration)
}

// Render writes the frame of the scene at the current instant.
func (c *Canvas) Render(w io.Writer) {
	c.RenderAt(w, c.now())
}

func (c *Canvas) RenderAt(w io.Writer, now time.Time) {
	el := svg.NewSVG(svg.WithDimension(c.area.Width, c.area.Height))
	el.OmitProlog = true
	el.Append(c.drawChart(now))

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	el.Render(bw)
}

func (c *Canvas) drawChart(now time.Time) svg.Element {
	var (
		width  = c.area.DrawingWidth()
		height = c.area.DrawingHeight()
		g      = svg.NewGroup(svg.WithID("chart"), svg.WithTranslate(c.area.Left, c.area.Top))
	)
	for _, a := range c.axes {
		g.Append(a.render(height, now))
	}
	g.Append(c.drawMarkers(now))
	g.Append(c.drawTexts(now))
	g.Append(c.drawLabels(scatter.AxisX, "x-labels", width/2, height+20))
	g.Append(c.drawLabels(scatter.AxisY, "y-labels", 0, height/2))
	return g.AsElement()
}

func (c *Canvas) drawMarkers(now time.Time) svg.Element {
	grp := getBaseGroup(c.Marker, "markers")
	for _, m := range c.markers {
		var (
			g  = svg.NewGroup(svg.WithID(m.id))
			el svg.Circle
		)
		g.Class = append(g.Class, "stateCircle")
		pos := m.tween.At(now)
		el.Pos = svg.NewPos(pos.X, pos.Y)
		el.Radius = m.radius
		el.Fill = svg.NewFill(c.Marker)
		el.Fill.Opacity = c.MarkerOpacity
		g.Append(el.AsElement())
		grp.Append(g.AsElement())
	}
	return grp.AsElement()
}

func (c *Canvas) drawTexts(now time.Time) svg.Element {
	grp := getBaseGroup(c.Text, "stateText")
	for _, t := range c.texts {
		var (
			pos = t.tween.At(now)
			txt = svg.NewText(t.str)
		)
		txt.Pos = svg.NewPos(pos.X, pos.Y+t.size*0.3)
		txt.Font = svg.NewFont(t.size)
		txt.Anchor = "middle"
		txt.Baseline = "middle"
		grp.Append(txt.AsElement())
	}
	return grp.AsElement()
}

// drawLabels draws the labels of one axis inside a group placed at left, top.
// Labels of a vertical axis are rotated within that group.
func (c *Canvas) drawLabels(axis, id string, left, top float64) svg.Element {
	grp := svg.NewGroup(svg.WithID(id), svg.WithTranslate(left, top))
	for _, n := range c.labels {
		if n.Axis != axis {
			continue
		}
		color := c.Inactive
		if n.Active {
			color = c.Active
		}
		g := getBaseGroup(color, n.Class(), "aText")
		g.Id = n.ID
		if axis == scatter.AxisY {
			g.Transform.RA = n.Rotate
		}

		var (
			txt = svg.NewText(n.Str)
			x   = n.X - left
			y   = n.Y - top
		)
		if axis == scatter.AxisY {
			x, y = 0, n.X
		}
		txt.Pos = svg.NewPos(x, y)
		txt.Font = svg.NewFont(scatter.FontSize)
		txt.Anchor = "middle"
		g.Append(txt.AsElement())
		grp.Append(g.AsElement())
	}
	return grp.AsElement()
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
	}
	g.Class = class
	return g
}
