package web

import (
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/midbel/scatter"
	"github.com/midbel/scatter/svgplot"
)

var dataset = scatter.Dataset{
	{State: "Alpha", Abbr: "AL", Income: 50000, Poverty: 10, Age: 30, Healthcare: 8, Obesity: 20, Smokes: 15},
	{State: "Beta", Abbr: "BE", Income: 70000, Poverty: 5, Age: 40, Healthcare: 12, Obesity: 25, Smokes: 10},
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

func setup(t *testing.T) (*httptest.Server, *scatter.Controller) {
	t.Helper()
	var (
		clk    = clock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
		canvas = svgplot.New(svgplot.WithClock(clk.Now))
		ctrl   = scatter.New(canvas, 960, 500)
	)
	if err := ctrl.Initialize(dataset); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	srv := New(ctrl, canvas)
	go srv.Loop(ctx)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		cancel()
	})
	return ts, ctrl
}

func TestPage(t *testing.T) {
	ts, _ := setup(t)
	res, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", res.StatusCode)
	}
	var body strings.Builder
	if _, err := body.ReadFrom(res.Body); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<svg", "marker-1", "label-age", `data-x="income"`, "\nresize();"} {
		if !strings.Contains(body.String(), want) {
			t.Errorf("%q not found in page", want)
		}
	}
}

func TestSelect(t *testing.T) {
	ts, _ := setup(t)

	tests := []struct {
		Query   string
		Code    int
		Changed bool
		X       string
		Y       string
	}{
		{Query: "axis=x&field=poverty", Code: http.StatusOK, Changed: true, X: "poverty", Y: "healthcare"},
		{Query: "axis=x&field=poverty", Code: http.StatusOK, X: "poverty", Y: "healthcare"},
		{Query: "axis=y&field=obesity", Code: http.StatusOK, Changed: true, X: "poverty", Y: "obesity"},
		{Query: "axis=y&field=income", Code: http.StatusBadRequest},
		{Query: "axis=z&field=age", Code: http.StatusBadRequest},
		{Query: "axis=x&field=wealth", Code: http.StatusBadRequest},
	}
	for _, tt := range tests {
		res, err := http.Post(ts.URL+"/select?"+tt.Query, "", nil)
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != tt.Code {
			t.Errorf("%s: want status %d, got %d", tt.Query, tt.Code, res.StatusCode)
		}
		if tt.Code != http.StatusOK {
			res.Body.Close()
			continue
		}
		var sel selection
		err = json.NewDecoder(res.Body).Decode(&sel)
		res.Body.Close()
		if err != nil {
			t.Fatal(err)
		}
		if sel.Changed != tt.Changed || sel.X != tt.X || sel.Y != tt.Y {
			t.Errorf("%s: unexpected selection %+v", tt.Query, sel)
		}
	}
}

func TestFrame(t *testing.T) {
	ts, _ := setup(t)

	res, err := http.Get(ts.URL + "/chart.svg")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.Header.Get("X-Moving") != "false" {
		t.Errorf("chart should be still")
	}
	if ct := res.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("unexpected content type %s", ct)
	}

	res, err = http.Post(ts.URL+"/select?axis=x&field=age", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()

	res, err = http.Get(ts.URL + "/chart.svg")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.Header.Get("X-Moving") != "true" {
		t.Errorf("chart should be moving after a selection")
	}
}

func TestResize(t *testing.T) {
	ts, ctrl := setup(t)

	tests := []struct {
		Query string
		Code  int
	}{
		{Query: "width=1130&height=650", Code: http.StatusNoContent},
		{Query: "width=abc&height=650", Code: http.StatusBadRequest},
		{Query: "width=100&height=100", Code: http.StatusBadRequest},
		{Query: "height=650", Code: http.StatusBadRequest},
	}
	for _, tt := range tests {
		res, err := http.Post(ts.URL+"/resize?"+tt.Query, "", nil)
		if err != nil {
			t.Fatal(err)
		}
		res.Body.Close()
		if res.StatusCode != tt.Code {
			t.Errorf("%s: want status %d, got %d", tt.Query, tt.Code, res.StatusCode)
		}
	}
	res, err := http.Get(ts.URL + "/chart.svg")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if area := ctrl.Area(); area.Width != 1130 || area.Height != 650 {
		t.Errorf("unexpected viewport %gx%g", area.Width, area.Height)
	}
}

func TestTooltip(t *testing.T) {
	ts, _ := setup(t)

	tests := []struct {
		Index string
		Code  int
		Want  string
	}{
		{Index: "0", Code: http.StatusOK, Want: "Alpha<br>Income [$] 50000<br>Healthcare status: 8%"},
		{Index: "2", Code: http.StatusNotFound},
		{Index: "-1", Code: http.StatusNotFound},
		{Index: "first", Code: http.StatusBadRequest},
	}
	for _, tt := range tests {
		res, err := http.Get(ts.URL + "/tooltip?index=" + tt.Index)
		if err != nil {
			t.Fatal(err)
		}
		var body strings.Builder
		body.ReadFrom(res.Body)
		res.Body.Close()
		if res.StatusCode != tt.Code {
			t.Errorf("%s: want status %d, got %d", tt.Index, tt.Code, res.StatusCode)
			continue
		}
		if tt.Want != "" && body.String() != tt.Want {
			t.Errorf("%s: want %q, got %q", tt.Index, tt.Want, body.String())
		}
	}
}

func TestExport(t *testing.T) {
	ts, _ := setup(t)
	res, err := http.Get(ts.URL + "/export.png")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", res.StatusCode)
	}
	if _, err := png.Decode(res.Body); err != nil {
		t.Errorf("invalid png: %v", err)
	}
}

func TestClosedLoop(t *testing.T) {
	var (
		canvas = svgplot.New()
		ctrl   = scatter.New(canvas, 960, 500)
		srv    = New(ctrl, canvas)
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := srv.Loop(ctx); err != nil {
		t.Fatal(err)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chart.svg", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("want status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}
