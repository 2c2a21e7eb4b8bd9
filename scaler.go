package scatter

import (
	"math"
	"strconv"
	"strings"
)

// DefaultMargin is the part of the observed extent added below the minimum
// and above the maximum of a domain.
const DefaultMargin = 0.2

type Domain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain {
	return Domain{
		fst: f,
		lst: t,
	}
}

// PaddedDomain scales min down and max up by margin.
func PaddedDomain(min, max, margin float64) Domain {
	return NumberDomain(min*(1-margin), max*(1+margin))
}

func (d Domain) Min() float64 {
	return d.fst
}

func (d Domain) Max() float64 {
	return d.lst
}

func (d Domain) Diff(v float64) float64 {
	return v - d.fst
}

func (d Domain) Extend() float64 {
	return d.lst - d.fst
}

// Ticks returns round values within the domain, roughly c of them, and the
// step that separates them.
func (d Domain) Ticks(c int) ([]float64, float64) {
	lo, hi := d.fst, d.lst
	if lo > hi {
		lo, hi = hi, lo
	}
	step := tickStep(lo, hi, c)
	if step == 0 {
		return []float64{lo}, 0
	}
	var (
		beg  = math.Ceil(lo / step)
		end  = math.Floor(hi / step)
		list []float64
	)
	for i := beg; i <= end; i++ {
		list = append(list, i*step)
	}
	return list, step
}

func tickStep(lo, hi float64, c int) float64 {
	if c <= 0 || hi <= lo {
		return 0
	}
	var (
		raw   = (hi - lo) / float64(c)
		power = math.Pow(10, math.Floor(math.Log10(raw)))
		err   = raw / power
	)
	switch {
	case err >= math.Sqrt(50):
		power *= 10
	case err >= math.Sqrt(10):
		power *= 5
	case err >= math.Sqrt(2):
		power *= 2
	}
	return power
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return math.Max(r.F, r.T)
}

func (r Range) Min() float64 {
	return math.Min(r.F, r.T)
}

// Scaler maps values of its domain linearly onto its range.
type Scaler struct {
	Range
	Domain
}

func NumberScaler(dom Domain, rg Range) Scaler {
	return Scaler{
		Range:  rg,
		Domain: dom,
	}
}

// FieldScaler builds the scaler of a dataset column padded by DefaultMargin.
func FieldScaler(data Dataset, get func(Record) float64, rg Range) Scaler {
	min, max := data.Extent(get)
	return NumberScaler(PaddedDomain(min, max, DefaultMargin), rg)
}

func (s Scaler) Scale(v float64) float64 {
	if s.Extend() == 0 {
		return s.F + s.Len()/2
	}
	return s.F + s.Diff(v)*s.Space()
}

func (s Scaler) Space() float64 {
	return s.Len() / s.Extend()
}

func (s Scaler) Min() float64 {
	return s.Range.Min()
}

func (s Scaler) Max() float64 {
	return s.Range.Max()
}

// FormatTick prints v with as many decimals as step requires and groups the
// integer part by thousands.
func FormatTick(v, step float64) string {
	prec := 0
	if step > 0 && step < 1 {
		prec = int(math.Ceil(-math.Log10(step)))
	}
	str := strconv.FormatFloat(v, 'f', prec, 64)
	return groupThousands(str)
}

func groupThousands(str string) string {
	var sign string
	if strings.HasPrefix(str, "-") {
		sign, str = "-", str[1:]
	}
	var frac string
	if x := strings.IndexByte(str, '.'); x >= 0 {
		str, frac = str[:x], str[x:]
	}
	if len(str) <= 3 {
		return sign + str + frac
	}
	var b strings.Builder
	lead := len(str) % 3
	if lead > 0 {
		b.WriteString(str[:lead])
	}
	for i := lead; i < len(str); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(str[i : i+3])
	}
	return sign + b.String() + frac
}
