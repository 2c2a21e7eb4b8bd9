package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/midbel/scatter"
)

func TestLoad(t *testing.T) {
	cfg, err := Load("testdata/chart.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Sources) != 2 {
		t.Errorf("want 2 sources, got %d", len(cfg.Sources))
	}
	if cfg.Width != 1200 || cfg.Height != 640 {
		t.Errorf("unexpected size %gx%g", cfg.Width, cfg.Height)
	}
	if cfg.Duration != 500*time.Millisecond {
		t.Errorf("unexpected duration %s", cfg.Duration)
	}
	sel, err := cfg.Selection()
	if err != nil {
		t.Fatal(err)
	}
	if sel.X != scatter.Poverty || sel.Y != scatter.Smokes {
		t.Errorf("unexpected selection %s/%s", sel.X, sel.Y)
	}
	if pad := cfg.Padding(); pad.Left != 100 || pad.Bottom != 120 {
		t.Errorf("unexpected padding %+v", pad)
	}
	style := cfg.Style()
	if style.Marker != "#ff7f0e" {
		t.Errorf("marker color not read: %s", style.Marker)
	}
	if def := Default(); style.Active != def.Colors.Active || cfg.Radius != def.Radius || cfg.Address != def.Address {
		t.Errorf("missing settings should keep their default values")
	}
}

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if sel, _ := cfg.Selection(); sel != scatter.DefaultSelection() {
		t.Errorf("default selection expected, got %v", sel)
	}
	if cfg.Width != 960 || cfg.Height != 500 {
		t.Errorf("unexpected default size %gx%g", cfg.Width, cfg.Height)
	}
	if len(cfg.Options()) != 5 {
		t.Errorf("want 5 options, got %d", len(cfg.Options()))
	}
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Duration != scatter.DefaultDuration {
		t.Errorf("want default duration, got %s", cfg.Duration)
	}
}

func TestDecodeZeroValues(t *testing.T) {
	const str = `
duration: 0s
colors:
  marker_opacity: 0
margin:
  top: 0
  left: 120
`
	cfg, err := Decode(strings.NewReader(str))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Duration != 0 {
		t.Errorf("explicit zero duration replaced by %s", cfg.Duration)
	}
	if cfg.Colors.MarkerOpacity != 0 {
		t.Errorf("explicit zero opacity replaced by %f", cfg.Colors.MarkerOpacity)
	}
	if cfg.Margin.Top != 0 || cfg.Margin.Left != 120 {
		t.Errorf("margin not read: %+v", cfg.Margin)
	}
	if def := Default(); cfg.Margin.Bottom != def.Margin.Bottom || cfg.Colors.Marker != def.Colors.Marker {
		t.Errorf("missing settings should keep their default values")
	}
	if err := cfg.Check(); err != nil {
		t.Errorf("instant transitions should be accepted: %v", err)
	}
}

func TestInvalid(t *testing.T) {
	tests := []string{
		"x: wealth",
		"y: income",
		"width: 100",
		"duration: -2s",
	}
	for _, str := range tests {
		cfg, err := Decode(strings.NewReader(str))
		if err != nil {
			t.Errorf("%s: decoding should not check the settings: %v", str, err)
			continue
		}
		if err := cfg.Check(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: want %v, got %v", str, ErrInvalid, err)
		}
	}
	if _, err := Decode(strings.NewReader("width: [1, 2]")); err == nil {
		t.Errorf("malformed yaml should fail")
	}

	cfg, err := Load("testdata/invalid.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Check(); !errors.Is(err, ErrInvalid) {
		t.Errorf("want ErrInvalid, got %v", err)
	}
	cfg.X = "age"
	cfg.Width = 960
	if err := cfg.Check(); err != nil {
		t.Errorf("overridden settings should be valid: %v", err)
	}
	if _, err := Load("testdata/missing.yaml"); err == nil {
		t.Errorf("missing file should fail")
	}
}
