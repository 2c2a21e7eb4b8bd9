package scatter

const FontSize = 12.0

const DefaultTicks = 10

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

// Tick is a position along an axis and the text printed next to it.
type Tick struct {
	Offset float64
	Label  string
}

// Axis describes one axis of the chart once its scaler has been applied.
type Axis struct {
	ID string
	Orientation
	Length float64
	Ticks  []Tick
}

const (
	AxisX = "x-axis"
	AxisY = "y-axis"
)

// NewAxis computes the ticks of scaler. The axis is drawn along the range of
// the scaler.
func NewAxis(id string, orient Orientation, scaler Scaler, count int) Axis {
	a := Axis{
		ID:          id,
		Orientation: orient,
		Length:      scaler.Max() - scaler.Min(),
	}
	values, step := scaler.Domain.Ticks(count)
	for _, v := range values {
		t := Tick{
			Offset: scaler.Scale(v),
			Label:  FormatTick(v, step),
		}
		a.Ticks = append(a.Ticks, t)
	}
	return a
}
