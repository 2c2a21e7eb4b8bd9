package scatter

import (
	"fmt"
	"strconv"
	"time"
)

const (
	DefaultDuration = time.Second
	DefaultRadius   = 20
	DefaultTextSize = 9
)

// Controller keeps the scatter plot drawn on a Surface consistent with the
// current Selection and viewport.
//
// A Controller is not safe for concurrent use: hosts deliver their events one
// at a time.
type Controller struct {
	surface Surface
	area    Area

	duration time.Duration
	radius   float64
	textSize float64
	ticks    int

	data   Dataset
	sel    Selection
	xscale Scaler
	yscale Scaler
}

type Option func(*Controller)

func WithPadding(pad Padding) Option {
	return func(c *Controller) {
		c.area.Padding = pad
	}
}

func WithDuration(d time.Duration) Option {
	return func(c *Controller) {
		c.duration = d
	}
}

func WithRadius(r float64) Option {
	return func(c *Controller) {
		c.radius = r
	}
}

func WithTextSize(size float64) Option {
	return func(c *Controller) {
		c.textSize = size
	}
}

func WithTicks(n int) Option {
	return func(c *Controller) {
		c.ticks = n
	}
}

func WithSelection(sel Selection) Option {
	return func(c *Controller) {
		c.sel = sel
	}
}

func New(surface Surface, width, height float64, options ...Option) *Controller {
	c := Controller{
		surface:  surface,
		duration: DefaultDuration,
		radius:   DefaultRadius,
		textSize: DefaultTextSize,
		ticks:    DefaultTicks,
		sel:      DefaultSelection(),
	}
	c.area.Width = width
	c.area.Height = height
	c.area.Padding = DefaultPadding
	for _, o := range options {
		o(&c)
	}
	return &c
}

// Initialize draws the whole chart for data.
func (c *Controller) Initialize(data Dataset) error {
	if len(data) == 0 {
		return ErrEmpty
	}
	c.data = data
	c.draw()
	return nil
}

// Resize throws away the chart and draws it again at the new size. The
// selection is kept.
func (c *Controller) Resize(width, height float64) error {
	c.area.Width = width
	c.area.Height = height
	if len(c.data) == 0 {
		return ErrEmpty
	}
	c.draw()
	return nil
}

// SelectX binds f to the horizontal axis and moves every element to its new
// position. It reports whether the selection changed.
func (c *Controller) SelectX(f XField) bool {
	if f == c.sel.X {
		return false
	}
	c.sel.X = f
	if len(c.data) == 0 {
		return true
	}
	c.xscale = c.scaleX()

	anim := c.surface.Transition(c.duration)
	anim.MoveAxis(c.axisX())
	c.move(anim)
	for _, x := range XFields() {
		c.surface.SetActive(LabelID(x.String()), x == f)
	}
	c.surface.BindTooltip(c.Tooltip)
	return true
}

// SelectY is the vertical counterpart of SelectX.
func (c *Controller) SelectY(f YField) bool {
	if f == c.sel.Y {
		return false
	}
	c.sel.Y = f
	if len(c.data) == 0 {
		return true
	}
	c.yscale = c.scaleY()

	anim := c.surface.Transition(c.duration)
	anim.MoveAxis(c.axisY())
	c.move(anim)
	for _, y := range YFields() {
		c.surface.SetActive(LabelID(y.String()), y == f)
	}
	c.surface.BindTooltip(c.Tooltip)
	return true
}

// SelectXName selects the x field identified by the value of a clicked label.
func (c *Controller) SelectXName(str string) (bool, error) {
	f, err := ParseXField(str)
	if err != nil {
		return false, err
	}
	return c.SelectX(f), nil
}

func (c *Controller) SelectYName(str string) (bool, error) {
	f, err := ParseYField(str)
	if err != nil {
		return false, err
	}
	return c.SelectY(f), nil
}

// FormatTooltip gives the text shown when hovering the marker of r.
func (c *Controller) FormatTooltip(r Record) string {
	return FormatTooltip(c.sel, r)
}

// Tooltip is FormatTooltip for the record at index i of the dataset.
func (c *Controller) Tooltip(i int) string {
	if i < 0 || i >= len(c.data) {
		return ""
	}
	return c.FormatTooltip(c.data[i])
}

func (c *Controller) Selection() Selection {
	return c.sel
}

func (c *Controller) Dataset() Dataset {
	return c.data
}

func (c *Controller) Area() Area {
	return c.area
}

func (c *Controller) Duration() time.Duration {
	return c.duration
}

func (c *Controller) XScale() Scaler {
	return c.xscale
}

func (c *Controller) YScale() Scaler {
	return c.yscale
}

// Position is where the marker of the record at index i is headed.
func (c *Controller) Position(i int) Pos {
	if i < 0 || i >= len(c.data) {
		return Pos{}
	}
	return c.position(c.data[i])
}

func (c *Controller) position(r Record) Pos {
	return NewPos(c.xscale.Scale(c.sel.X.Value(r)), c.yscale.Scale(c.sel.Y.Value(r)))
}

func (c *Controller) draw() {
	c.xscale = c.scaleX()
	c.yscale = c.scaleY()

	c.surface.Reset(c.area)
	c.surface.DrawAxis(c.axisX())
	c.surface.DrawAxis(c.axisY())
	for i, r := range c.data {
		pos := c.position(r)
		c.surface.DrawMarker(Marker{
			ID:     MarkerID(i),
			Index:  i,
			Radius: c.radius,
			Pos:    pos,
		})
		c.surface.DrawText(Text{
			ID:    TextID(i),
			Index: i,
			Str:   r.Abbr,
			Size:  c.textSize,
			Pos:   pos,
		})
	}
	c.drawLabels()
	c.surface.BindTooltip(c.Tooltip)
}

func (c *Controller) drawLabels() {
	var (
		width  = c.area.DrawingWidth()
		height = c.area.DrawingHeight()
	)
	for i, f := range XFields() {
		c.surface.DrawLabel(Label{
			ID:     LabelID(f.String()),
			Axis:   AxisX,
			Value:  f.String(),
			Str:    f.Label(),
			Active: f == c.sel.X,
			Pos:    NewPos(width/2, height+20+float64(i+1)*20),
		})
	}
	for i, f := range YFields() {
		c.surface.DrawLabel(Label{
			ID:     LabelID(f.String()),
			Axis:   AxisY,
			Value:  f.String(),
			Str:    f.Label(),
			Active: f == c.sel.Y,
			Rotate: -90,
			Pos:    NewPos(-(45+float64(i)*20)+FontSize, height/2),
		})
	}
}

func (c *Controller) move(anim Animator) {
	for i, r := range c.data {
		pos := c.position(r)
		anim.Move(MarkerID(i), pos)
		anim.Move(TextID(i), pos)
	}
}

func (c *Controller) scaleX() Scaler {
	return FieldScaler(c.data, c.sel.X.Value, c.area.RangeX())
}

func (c *Controller) scaleY() Scaler {
	return FieldScaler(c.data, c.sel.Y.Value, c.area.RangeY())
}

func (c *Controller) axisX() Axis {
	return NewAxis(AxisX, OrientBottom, c.xscale, c.ticks)
}

func (c *Controller) axisY() Axis {
	return NewAxis(AxisY, OrientLeft, c.yscale, c.ticks)
}

// FormatTooltip prints the state of r and its values for the fields of sel.
// Only poverty is a percentage among the x fields while every y field is.
func FormatTooltip(sel Selection, r Record) string {
	xval := formatValue(sel.X.Value(r))
	if sel.X.percent() {
		xval += "%"
	}
	yval := formatValue(sel.Y.Value(r)) + "%"
	return fmt.Sprintf("%s<br>%s %s<br>%s %s", r.State, sel.X.Caption(), xval, sel.Y.Caption(), yval)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
