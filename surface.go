package scatter

import (
	"strconv"
	"time"
)

type Pos struct {
	X float64
	Y float64
}

func NewPos(x, y float64) Pos {
	return Pos{
		X: x,
		Y: y,
	}
}

// Marker is the circle drawn for one record.
type Marker struct {
	ID     string
	Index  int
	Radius float64
	Pos
}

// Text is the abbreviation printed over the marker of a record.
type Text struct {
	ID    string
	Index int
	Str   string
	Size  float64
	Pos
}

// Label is a clickable axis title. Value is the identifier of the field the
// label selects when clicked.
type Label struct {
	ID     string
	Axis   string
	Value  string
	Str    string
	Active bool
	Rotate float64
	Pos
}

// Class names carried by labels.
const (
	ClassActive   = "active"
	ClassInactive = "inactive"
)

func (l Label) Class() string {
	if l.Active {
		return ClassActive
	}
	return ClassInactive
}

// Surface is the drawing environment a Controller renders on. Positions are
// relative to the drawing area, ie once the padding given to Reset has been
// applied.
type Surface interface {
	// Reset discards everything drawn so far and prepares an empty canvas.
	Reset(Area)
	DrawAxis(Axis)
	DrawMarker(Marker)
	DrawText(Text)
	DrawLabel(Label)
	SetActive(id string, active bool)
	BindTooltip(func(int) string)
	// Transition returns an Animator whose changes reach their target after
	// d. Changes made on an element still moving replace its previous target.
	Transition(d time.Duration) Animator
}

type Animator interface {
	MoveAxis(Axis)
	Move(id string, pos Pos)
}

func MarkerID(i int) string {
	return "marker-" + strconv.Itoa(i)
}

func TextID(i int) string {
	return "text-" + strconv.Itoa(i)
}

func LabelID(field string) string {
	return "label-" + field
}
