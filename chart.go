package scatter

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// DefaultPadding leaves room below the chart for the stacked x labels and on
// the left for the rotated y labels.
var DefaultPadding = Padding{
	Top:    50,
	Right:  50,
	Bottom: 100,
	Left:   80,
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Viewport is the size of the whole drawing surface.
type Viewport struct {
	Width  float64
	Height float64
}

// Area is the part of a viewport left for plotting once padding is removed.
type Area struct {
	Viewport
	Padding
}

func (a Area) DrawingWidth() float64 {
	return a.Width - a.Padding.Horizontal()
}

func (a Area) DrawingHeight() float64 {
	return a.Height - a.Padding.Vertical()
}

func (a Area) RangeX() Range {
	return NewRange(0, a.DrawingWidth())
}

func (a Area) RangeY() Range {
	return NewRange(a.DrawingHeight(), 0)
}
