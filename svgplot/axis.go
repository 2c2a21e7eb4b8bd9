package svgplot

import (
	"time"

	"github.com/midbel/scatter"
	"github.com/midbel/svg"
)

type tickNode struct {
	label string
	tween scatter.Tween
}

type axisNode struct {
	id     string
	orient scatter.Orientation
	length float64
	ticks  []tickNode
}

func makeAxisNode(a scatter.Axis) *axisNode {
	n := axisNode{
		id:     a.ID,
		orient: a.Orientation,
		length: a.Length,
	}
	for _, t := range a.Ticks {
		n.ticks = append(n.ticks, tickNode{
			label: t.Label,
			tween: scatter.Still(tickPos(a.Orientation, t.Offset)),
		})
	}
	return &n
}

// update replaces the ticks of the axis. Ticks already shown slide to their
// new offset, others appear directly at their place.
func (n *axisNode) update(a scatter.Axis, now time.Time, d time.Duration) {
	prev := make(map[string]scatter.Tween)
	for _, t := range n.ticks {
		prev[t.label] = t.tween
	}
	n.length = a.Length
	n.ticks = n.ticks[:0]
	for _, t := range a.Ticks {
		pos := tickPos(a.Orientation, t.Offset)
		tween, ok := prev[t.Label]
		if ok {
			tween = tween.Retarget(pos, now, d)
		} else {
			tween = scatter.Still(pos)
		}
		n.ticks = append(n.ticks, tickNode{
			label: t.Label,
			tween: tween,
		})
	}
}

func (n *axisNode) moving(now time.Time) bool {
	for _, t := range n.ticks {
		if !t.tween.Done(now) {
			return true
		}
	}
	return false
}

// render draws the axis line and its ticks. Horizontal axes are moved down by
// top, vertical ones stay on the left edge of the drawing area.
func (n *axisNode) render(top float64, now time.Time) svg.Element {
	g := svg.NewGroup(svg.WithID(n.id))
	if !n.orient.Vertical() {
		g.Transform = svg.Translate(0, top)
	}
	g.Class = append(g.Class, "axis", n.id)

	var (
		stroke = svg.NewStroke("black", 1)
		font   = svg.NewFont(scatter.FontSize)
		size   = scatter.FontSize * 0.5
		gap    = scatter.FontSize * 0.8
		end    = svg.NewPos(n.length, 0)
		mark   = svg.NewPos(0, size)
	)
	if n.orient.Vertical() {
		end = svg.NewPos(0, n.length)
		mark = svg.NewPos(-size, 0)
	}
	line := svg.NewLine(svg.NewPos(0, 0), end)
	line.Stroke = stroke
	g.Append(line.AsElement())

	for _, t := range n.ticks {
		var (
			pos  = t.tween.At(now)
			grp  = svg.NewGroup(svg.WithTranslate(pos.X, pos.Y))
			tick = svg.NewLine(svg.NewPos(0, 0), mark)
			text = svg.NewText(t.label)
		)
		tick.Stroke = stroke
		grp.Append(tick.AsElement())

		text.Font = font
		if n.orient.Vertical() {
			text.Pos = svg.NewPos(-gap, 0)
			text.Anchor = "end"
			text.Baseline = "middle"
		} else {
			text.Pos = svg.NewPos(0, gap)
			text.Anchor = "middle"
			text.Baseline = "hanging"
		}
		grp.Append(text.AsElement())
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

func tickPos(orient scatter.Orientation, offset float64) scatter.Pos {
	if orient.Vertical() {
		return scatter.NewPos(0, offset)
	}
	return scatter.NewPos(offset, 0)
}
