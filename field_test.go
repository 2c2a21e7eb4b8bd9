package scatter

import (
	"errors"
	"testing"
)

func TestParseField(t *testing.T) {
	for _, f := range XFields() {
		got, err := ParseXField(f.String())
		if err != nil || got != f {
			t.Errorf("%s: got %s (%v)", f, got, err)
		}
	}
	for _, f := range YFields() {
		got, err := ParseYField(f.String())
		if err != nil || got != f {
			t.Errorf("%s: got %s (%v)", f, got, err)
		}
	}
	for _, str := range []string{"", "Income", "healthcare", "state"} {
		if _, err := ParseXField(str); !errors.Is(err, ErrField) {
			t.Errorf("%q: want ErrField, got %v", str, err)
		}
	}
	for _, str := range []string{"", "poverty", "obese"} {
		if _, err := ParseYField(str); !errors.Is(err, ErrField) {
			t.Errorf("%q: want ErrField, got %v", str, err)
		}
	}
}

func TestFieldValue(t *testing.T) {
	xs := map[XField]float64{
		Income:  50000,
		Poverty: 10,
		Age:     30,
	}
	for f, want := range xs {
		if got := f.Value(alpha); got != want {
			t.Errorf("%s: want %f, got %f", f, want, got)
		}
	}
	ys := map[YField]float64{
		Healthcare: 8,
		Obesity:    20,
		Smokes:     15,
	}
	for f, want := range ys {
		if got := f.Value(alpha); got != want {
			t.Errorf("%s: want %f, got %f", f, want, got)
		}
	}
}
