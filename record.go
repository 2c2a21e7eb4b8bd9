package scatter

import (
	"errors"
	"math"

	"github.com/midbel/slices"
)

var ErrEmpty = errors.New("empty dataset")

// Record is one row of the census dataset.
type Record struct {
	State string
	Abbr  string

	Income  float64
	Poverty float64
	Age     float64

	Healthcare float64
	Obesity    float64
	Smokes     float64
}

type Dataset []Record

// Extent returns the smallest and largest values produced by get over the
// dataset.
func (d Dataset) Extent(get func(Record) float64) (float64, float64) {
	if len(d) == 0 {
		return 0, 0
	}
	min := get(slices.Fst(d))
	max := min
	for _, r := range slices.Rest(d) {
		v := get(r)
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return min, max
}
