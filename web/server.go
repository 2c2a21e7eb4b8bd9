// Package web serves the scatter chart to a browser.
//
// Every request touching the chart is turned into an event handled by a single
// loop, so the controller and its canvas only ever see one event at a time.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/midbel/scatter"
	"github.com/midbel/scatter/pngplot"
	"github.com/midbel/scatter/svgplot"
	"golang.org/x/sync/errgroup"
)

const DefaultAddr = ":8080"

var (
	ErrAxis    = errors.New("unknown axis")
	ErrClosed  = errors.New("event loop closed")
	ErrRequest = errors.New("bad request")
)

type event struct {
	fn   func() error
	done chan error
}

type Server struct {
	ctrl   *scatter.Controller
	canvas *svgplot.Canvas
	addr   string
	export pngplot.Options

	queue chan event
	quit  chan struct{}
}

type Option func(*Server)

func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

func WithExport(opts pngplot.Options) Option {
	return func(s *Server) {
		s.export = opts
	}
}

// New creates the server of the chart managed by ctrl and drawn on canvas.
func New(ctrl *scatter.Controller, canvas *svgplot.Canvas, options ...Option) *Server {
	s := Server{
		ctrl:   ctrl,
		canvas: canvas,
		addr:   DefaultAddr,
		export: pngplot.DefaultOptions(),
		queue:  make(chan event),
		quit:   make(chan struct{}),
	}
	for _, o := range options {
		o(&s)
	}
	return &s
}

// Run serves the chart until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	srv := http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return s.Loop(ctx)
	})
	grp.Go(func() error {
		log.Printf("scatter: listening on %s", s.addr)
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		return err
	})
	grp.Go(func() error {
		<-ctx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	})
	return grp.Wait()
}

// Loop handles the events of the server one after the other until ctx is
// done.
func (s *Server) Loop(ctx context.Context) error {
	defer close(s.quit)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-s.queue:
			ev.done <- ev.fn()
		}
	}
}

func (s *Server) exec(ctx context.Context, fn func() error) error {
	ev := event{
		fn:   fn,
		done: make(chan error, 1),
	}
	select {
	case s.queue <- ev:
	case <-s.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-ev.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /chart.svg", s.handleFrame)
	mux.HandleFunc("POST /select", s.handleSelect)
	mux.HandleFunc("POST /resize", s.handleResize)
	mux.HandleFunc("GET /tooltip", s.handleTooltip)
	mux.HandleFunc("GET /export.png", s.handleExport)
	return mux
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var (
		frame bytes.Buffer
		sel   scatter.Selection
	)
	err := s.exec(r.Context(), func() error {
		s.canvas.Render(&frame)
		sel = s.ctrl.Selection()
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderPage(w, sel, frame.String()); err != nil {
		log.Printf("scatter: page: %v", err)
	}
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	var (
		frame  bytes.Buffer
		moving bool
	)
	err := s.exec(r.Context(), func() error {
		s.canvas.Render(&frame)
		moving = s.canvas.Moving()
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Moving", strconv.FormatBool(moving))
	w.Write(frame.Bytes())
}

type selection struct {
	Changed bool   `json:"changed"`
	X       string `json:"x"`
	Y       string `json:"y"`
	Until   int64  `json:"until,omitempty"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var (
		query = r.URL.Query()
		axis  = query.Get("axis")
		field = query.Get("field")
		res   selection
	)
	err := s.exec(r.Context(), func() error {
		var err error
		switch axis {
		case "x":
			res.Changed, err = s.ctrl.SelectXName(field)
		case "y":
			res.Changed, err = s.ctrl.SelectYName(field)
		default:
			err = fmt.Errorf("%w: %q", ErrAxis, axis)
		}
		sel := s.ctrl.Selection()
		res.X = sel.X.String()
		res.Y = sel.Y.String()
		if res.Changed {
			res.Until = s.ctrl.Duration().Milliseconds()
		}
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}
	if res.Changed {
		log.Printf("scatter: selection changed to %s/%s", res.X, res.Y)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	var (
		query        = r.URL.Query()
		width, errw  = strconv.ParseFloat(query.Get("width"), 64)
		height, errh = strconv.ParseFloat(query.Get("height"), 64)
	)
	if err := errors.Join(errw, errh); err != nil {
		writeError(w, fmt.Errorf("%w: %s", ErrRequest, err))
		return
	}
	err := s.exec(r.Context(), func() error {
		area := s.ctrl.Area()
		if width <= area.Horizontal() || height <= area.Vertical() {
			return fmt.Errorf("%w: viewport too small (%gx%g)", ErrRequest, width, height)
		}
		return s.ctrl.Resize(width, height)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	log.Printf("scatter: chart resized to %gx%g", width, height)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTooltip(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.URL.Query().Get("index"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %s", ErrRequest, err))
		return
	}
	var (
		text  string
		found bool
	)
	err = s.exec(r.Context(), func() error {
		found = index >= 0 && index < len(s.ctrl.Dataset())
		text = s.canvas.Tooltip(index)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	if !found {
		http.Error(w, "no such state", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(text))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var img bytes.Buffer
	err := s.exec(r.Context(), func() error {
		return pngplot.Export(&img, s.ctrl, s.export)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(img.Bytes())
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, scatter.ErrField), errors.Is(err, ErrAxis), errors.Is(err, ErrRequest):
		code = http.StatusBadRequest
	case errors.Is(err, scatter.ErrEmpty):
		code = http.StatusConflict
	case errors.Is(err, ErrClosed), errors.Is(err, context.Canceled):
		code = http.StatusServiceUnavailable
	}
	if code == http.StatusInternalServerError {
		log.Printf("scatter: %v", err)
	}
	http.Error(w, err.Error(), code)
}
