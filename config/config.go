// Package config loads the settings of the scatter chart from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/midbel/scatter"
	"github.com/midbel/scatter/svgplot"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid configuration")

type Margin struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

type Colors struct {
	Marker        string  `yaml:"marker"`
	MarkerOpacity float64 `yaml:"marker_opacity"`
	Text          string  `yaml:"text"`
	Active        string  `yaml:"active"`
	Inactive      string  `yaml:"inactive"`
}

type Config struct {
	Sources  []string      `yaml:"sources"`
	Address  string        `yaml:"address"`
	Width    float64       `yaml:"width"`
	Height   float64       `yaml:"height"`
	Margin   Margin        `yaml:"margin"`
	Duration time.Duration `yaml:"duration"`
	Radius   float64       `yaml:"radius"`
	TextSize float64       `yaml:"text_size"`
	Ticks    int           `yaml:"ticks"`
	X        string        `yaml:"x"`
	Y        string        `yaml:"y"`
	Colors   Colors        `yaml:"colors"`
}

func Default() Config {
	style := svgplot.DefaultStyle()
	sel := scatter.DefaultSelection()
	return Config{
		Sources:  []string{"data/data.csv"},
		Address:  ":8080",
		Width:    960,
		Height:   500,
		Margin: Margin{
			Top:    scatter.DefaultPadding.Top,
			Right:  scatter.DefaultPadding.Right,
			Bottom: scatter.DefaultPadding.Bottom,
			Left:   scatter.DefaultPadding.Left,
		},
		Duration: scatter.DefaultDuration,
		Radius:   scatter.DefaultRadius,
		TextSize: scatter.DefaultTextSize,
		Ticks:    scatter.DefaultTicks,
		X:        sel.X.String(),
		Y:        sel.Y.String(),
		Colors: Colors{
			Marker:        style.Marker,
			MarkerOpacity: style.MarkerOpacity,
			Text:          style.Text,
			Active:        style.Active,
			Inactive:      style.Inactive,
		},
	}
}

// Load reads the configuration in file. Settings missing from the file keep
// their default values. An empty file name gives the default configuration.
//
// The result is not checked: callers apply their own overrides first and call
// Check afterwards.
func Load(file string) (Config, error) {
	if file == "" {
		return Default(), nil
	}
	r, err := os.Open(file)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer r.Close()
	return Decode(r)
}

// Decode reads the settings of r over the default configuration, so a zero
// value given explicitly in the file is kept.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Check reports whether the configuration can be used to draw a chart.
func (c Config) Check() error {
	if _, err := c.Selection(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	if c.Width <= c.Margin.Left+c.Margin.Right || c.Height <= c.Margin.Top+c.Margin.Bottom {
		return fmt.Errorf("%w: margins larger than chart (%gx%g)", ErrInvalid, c.Width, c.Height)
	}
	if c.Duration < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalid)
	}
	return nil
}

func (c Config) Selection() (scatter.Selection, error) {
	x, err := scatter.ParseXField(c.X)
	if err != nil {
		return scatter.Selection{}, err
	}
	y, err := scatter.ParseYField(c.Y)
	if err != nil {
		return scatter.Selection{}, err
	}
	return scatter.Selection{X: x, Y: y}, nil
}

func (c Config) Padding() scatter.Padding {
	return scatter.Padding{
		Top:    c.Margin.Top,
		Right:  c.Margin.Right,
		Bottom: c.Margin.Bottom,
		Left:   c.Margin.Left,
	}
}

func (c Config) Style() svgplot.Style {
	return svgplot.Style{
		Marker:        c.Colors.Marker,
		MarkerOpacity: c.Colors.MarkerOpacity,
		Text:          c.Colors.Text,
		Active:        c.Colors.Active,
		Inactive:      c.Colors.Inactive,
	}
}

// Options gives the controller options matching the configuration. The
// padding is left to the caller since it depends on the surface.
func (c Config) Options() []scatter.Option {
	var options []scatter.Option
	if sel, err := c.Selection(); err == nil {
		options = append(options, scatter.WithSelection(sel))
	}
	options = append(options,
		scatter.WithDuration(c.Duration),
		scatter.WithRadius(c.Radius),
		scatter.WithTextSize(c.TextSize),
		scatter.WithTicks(c.Ticks),
	)
	return options
}
