// Package pngplot exports a still image of the scatter chart.
package pngplot

import (
	"io"
	"strings"

	"github.com/midbel/scatter"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 960
	DefaultHeight = 500
)

type Options struct {
	Width  int
	Height int
	Color  string
	Title  string
	Labels bool
}

func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Color:  "#89bdd3",
		Labels: true,
	}
}

// Chart builds the chart of data for sel. The axes use the same padded
// domains as the interactive chart.
func Chart(data scatter.Dataset, sel scatter.Selection, opts Options) chart.Chart {
	var (
		xs = make([]float64, len(data))
		ys = make([]float64, len(data))
	)
	for i, r := range data {
		xs[i] = sel.X.Value(r)
		ys[i] = sel.Y.Value(r)
	}
	var (
		xscale = scatter.FieldScaler(data, sel.X.Value, scatter.NewRange(0, 1))
		yscale = scatter.FieldScaler(data, sel.Y.Value, scatter.NewRange(0, 1))
		series = []chart.Series{
			chart.ContinuousSeries{
				Name:    sel.X.String() + "/" + sel.Y.String(),
				XValues: xs,
				YValues: ys,
				Style:   pointStyle(opts.Color),
			},
		}
	)
	if opts.Labels {
		notes := chart.AnnotationSeries{}
		for i, r := range data {
			notes.Annotations = append(notes.Annotations, chart.Value2{
				XValue: xs[i],
				YValue: ys[i],
				Label:  r.Abbr,
			})
		}
		series = append(series, notes)
	}
	return chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  sel.X.Label(),
			Range: &chart.ContinuousRange{Min: xscale.Domain.Min(), Max: xscale.Domain.Max()},
		},
		YAxis: chart.YAxis{
			Name:  sel.Y.Label(),
			Range: &chart.ContinuousRange{Min: yscale.Domain.Min(), Max: yscale.Domain.Max()},
		},
		Series: series,
	}
}

// Export writes the PNG image of the chart shown by ctrl.
func Export(w io.Writer, ctrl *scatter.Controller, opts Options) error {
	data := ctrl.Dataset()
	if len(data) == 0 {
		return scatter.ErrEmpty
	}
	ch := Chart(data, ctrl.Selection(), opts)
	return ch.Render(chart.PNG, w)
}

// pointStyle renders points only, without connecting line.
func pointStyle(color string) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    6,
		DotColor:    drawing.ColorFromHex(strings.TrimPrefix(color, "#")),
	}
}
