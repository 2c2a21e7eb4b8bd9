package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/scatter/config"
)

func TestOverrideFixesFile(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader("x: foo\nwidth: 100\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Check(); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("file alone should be invalid, got %v", err)
	}
	cfg = override(cfg, ":9090", "poverty", "", 1200, 0)
	if err := cfg.Check(); err != nil {
		t.Fatalf("flags should override the file: %v", err)
	}
	if cfg.Address != ":9090" || cfg.X != "poverty" || cfg.Width != 1200 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if def := config.Default(); cfg.Y != def.Y || cfg.Height != def.Height {
		t.Errorf("unset flags should keep file values")
	}
}

func TestWriteFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "chart.svg")
	err := writeFile(file, func(w io.Writer) error {
		_, err := io.WriteString(w, "<svg></svg>")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	buf, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != "<svg></svg>" {
		t.Errorf("unexpected content %q", buf)
	}

	errWrite := errors.New("write failed")
	err = writeFile(file, func(io.Writer) error {
		return errWrite
	})
	if !errors.Is(err, errWrite) {
		t.Errorf("want %v, got %v", errWrite, err)
	}
	err = writeFile(filepath.Join(t.TempDir(), "missing", "chart.png"), func(io.Writer) error {
		return nil
	})
	if err == nil {
		t.Errorf("file in a missing directory should fail")
	}
}
