package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/midbel/scatter"
	"github.com/midbel/scatter/census"
	"github.com/midbel/scatter/config"
	"github.com/midbel/scatter/logging"
	"github.com/midbel/scatter/pngplot"
	"github.com/midbel/scatter/svgplot"
	"github.com/midbel/scatter/termplot"
	"github.com/midbel/scatter/web"
)

func main() {
	var (
		file    = flag.String("config", "", "configuration file")
		addr    = flag.String("addr", "", "address to listen on")
		tui     = flag.Bool("tui", false, "show chart in terminal")
		svgfile = flag.String("svg", "", "write svg snapshot to file")
		pngfile = flag.String("png", "", "write png snapshot to file")
		xfield  = flag.String("x", "", "field on x axis")
		yfield  = flag.String("y", "", "field on y axis")
		width   = flag.Float64("width", 0, "chart width")
		height  = flag.Float64("height", 0, "chart height")
		logfile = flag.String("log", "", "write logs to file")
	)
	flag.Parse()

	cfg, err := config.Load(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg = override(cfg, *addr, *xfield, *yfield, *width, *height)
	if err := cfg.Check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	sources := flag.Args()
	if len(sources) == 0 {
		sources = cfg.Sources
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	data, err := census.LoadAll(ctx, sources...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fail loading census data: %s\n", err)
		os.Exit(2)
	}

	switch {
	case *svgfile != "" || *pngfile != "":
		err = snapshot(cfg, data, *svgfile, *pngfile)
	case *tui:
		err = runTerminal(cfg, data, *logfile)
	default:
		err = serve(ctx, cfg, data, *logfile)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func override(cfg config.Config, addr, x, y string, width, height float64) config.Config {
	if addr != "" {
		cfg.Address = addr
	}
	if x != "" {
		cfg.X = x
	}
	if y != "" {
		cfg.Y = y
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	return cfg
}

func serve(ctx context.Context, cfg config.Config, data scatter.Dataset, logfile string) error {
	done, err := logging.Stderr(logfile)
	if err != nil {
		return err
	}
	defer done()

	canvas, ctrl, err := svgChart(cfg, data)
	if err != nil {
		return err
	}
	srv := web.New(ctrl, canvas, web.WithAddr(cfg.Address), web.WithExport(exportOptions(cfg)))
	return srv.Run(ctx)
}

func runTerminal(cfg config.Config, data scatter.Dataset, logfile string) error {
	done, err := logging.SetupTerminal(logfile)
	if err != nil {
		return err
	}
	defer done()

	m, err := termplot.NewModel(data, cfg.Options()...)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		log.Printf("terminal program: %v", err)
	}
	return err
}

func snapshot(cfg config.Config, data scatter.Dataset, svgfile, pngfile string) error {
	canvas, ctrl, err := svgChart(cfg, data)
	if err != nil {
		return err
	}
	if svgfile != "" {
		err := writeFile(svgfile, func(w io.Writer) error {
			canvas.Render(w)
			return nil
		})
		if err != nil {
			return err
		}
	}
	if pngfile != "" {
		return writeFile(pngfile, func(w io.Writer) error {
			return pngplot.Export(w, ctrl, exportOptions(cfg))
		})
	}
	return nil
}

func svgChart(cfg config.Config, data scatter.Dataset) (*svgplot.Canvas, *scatter.Controller, error) {
	var (
		canvas  = svgplot.New(svgplot.WithStyle(cfg.Style()))
		options = append(cfg.Options(), scatter.WithPadding(cfg.Padding()))
		ctrl    = scatter.New(canvas, cfg.Width, cfg.Height, options...)
	)
	return canvas, ctrl, ctrl.Initialize(data)
}

func exportOptions(cfg config.Config) pngplot.Options {
	opts := pngplot.DefaultOptions()
	opts.Width = int(cfg.Width)
	opts.Height = int(cfg.Height)
	opts.Color = cfg.Colors.Marker
	return opts
}

func writeFile(file string, write func(io.Writer) error) (err error) {
	if file == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()
	return write(f)
}
