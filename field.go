package scatter

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrField = errors.New("unknown field")

// XField is one of the dimensions that can be bound to the horizontal axis.
type XField int

const (
	Income XField = iota
	Poverty
	Age
)

// XFields returns the horizontal dimensions in the order their labels are
// stacked below the chart.
func XFields() []XField {
	return []XField{Income, Poverty, Age}
}

func ParseXField(str string) (XField, error) {
	for _, f := range XFields() {
		if f.String() == str {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not an x field", ErrField, str)
}

func (f XField) String() string {
	switch f {
	case Income:
		return "income"
	case Poverty:
		return "poverty"
	case Age:
		return "age"
	default:
		return "x(" + strconv.Itoa(int(f)) + ")"
	}
}

// Label is the text of the clickable axis label.
func (f XField) Label() string {
	switch f {
	case Income:
		return "Household Income (Median)"
	case Poverty:
		return "In Poverty (%)"
	case Age:
		return "Age (Median)"
	default:
		return f.String()
	}
}

// Caption is the text introducing the value in a tooltip.
func (f XField) Caption() string {
	switch f {
	case Income:
		return "Income [$]"
	case Poverty:
		return "Poverty %"
	case Age:
		return "Age"
	default:
		return f.String()
	}
}

func (f XField) Value(r Record) float64 {
	switch f {
	case Income:
		return r.Income
	case Poverty:
		return r.Poverty
	case Age:
		return r.Age
	default:
		return 0
	}
}

func (f XField) percent() bool {
	return f == Poverty
}

// YField is one of the dimensions that can be bound to the vertical axis.
type YField int

const (
	Healthcare YField = iota
	Obesity
	Smokes
)

func YFields() []YField {
	return []YField{Healthcare, Obesity, Smokes}
}

func ParseYField(str string) (YField, error) {
	for _, f := range YFields() {
		if f.String() == str {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a y field", ErrField, str)
}

func (f YField) String() string {
	switch f {
	case Healthcare:
		return "healthcare"
	case Obesity:
		return "obesity"
	case Smokes:
		return "smokes"
	default:
		return "y(" + strconv.Itoa(int(f)) + ")"
	}
}

func (f YField) Label() string {
	switch f {
	case Healthcare:
		return "Lacks Healthcare (%)"
	case Obesity:
		return "Obesity (%)"
	case Smokes:
		return "Smokes (%)"
	default:
		return f.String()
	}
}

func (f YField) Caption() string {
	switch f {
	case Healthcare:
		return "Healthcare status:"
	case Obesity:
		return "Obesity index:"
	case Smokes:
		return "Smokers index:"
	default:
		return f.String()
	}
}

func (f YField) Value(r Record) float64 {
	switch f {
	case Healthcare:
		return r.Healthcare
	case Obesity:
		return r.Obesity
	case Smokes:
		return r.Smokes
	default:
		return 0
	}
}

// Selection is the pair of dimensions currently displayed.
type Selection struct {
	X XField
	Y YField
}

func DefaultSelection() Selection {
	return Selection{
		X: Income,
		Y: Healthcare,
	}
}
