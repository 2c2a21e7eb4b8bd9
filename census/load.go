// Package census reads the demographic dataset plotted by the scatter chart.
package census

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/midbel/scatter"
	"github.com/midbel/slices"
	"golang.org/x/sync/errgroup"
)

var (
	ErrColumn = errors.New("missing column")
	ErrValue  = errors.New("invalid value")
)

const (
	colState      = "state"
	colAbbr       = "abbr"
	colPoverty    = "poverty"
	colAge        = "age"
	colIncome     = "income"
	colHealthcare = "healthcare"
	colObesity    = "obesity"
	colSmokes     = "smokes"
)

var columns = []string{
	colState,
	colAbbr,
	colPoverty,
	colAge,
	colIncome,
	colHealthcare,
	colObesity,
	colSmokes,
}

// Load reads every record of r. The first row is the header; columns can come
// in any order and unknown columns are ignored.
func Load(r io.Reader) (scatter.Dataset, error) {
	rs := csv.NewReader(r)
	rs.TrimLeadingSpace = true
	rs.FieldsPerRecord = -1

	head, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrColumn)
		}
		return nil, err
	}
	index, err := indexColumns(head)
	if err != nil {
		return nil, err
	}
	var (
		data scatter.Dataset
		line = 1
	)
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		line++
		if isBlank(row) {
			continue
		}
		rec, err := index.record(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		data = append(data, rec)
	}
	return data, nil
}

// LoadFile is Load on a local file or on the body of an http(s) location.
func LoadFile(ctx context.Context, location string) (scatter.Dataset, error) {
	r, err := readFrom(ctx, location)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := Load(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	return data, nil
}

// LoadAll loads all locations concurrently. Records are returned in the order
// of the locations.
func LoadAll(ctx context.Context, locations ...string) (scatter.Dataset, error) {
	var (
		parts  = make([]scatter.Dataset, len(locations))
		grp, c = errgroup.WithContext(ctx)
	)
	for i := range locations {
		i := i
		grp.Go(func() error {
			data, err := LoadFile(c, locations[i])
			if err != nil {
				return err
			}
			parts[i] = data
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, nil
	}
	all := slices.Fst(parts)
	for _, p := range slices.Rest(parts) {
		all = append(all, p...)
	}
	return all, nil
}

type header map[string]int

func indexColumns(row []string) (header, error) {
	index := make(header)
	for i, name := range row {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := index[name]; ok {
			continue
		}
		index[name] = i
	}
	for _, c := range columns {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrColumn, c)
		}
	}
	return index, nil
}

func (h header) record(row []string) (scatter.Record, error) {
	var (
		rec scatter.Record
		err error
	)
	if rec.State, err = h.text(row, colState); err != nil {
		return rec, err
	}
	if rec.Abbr, err = h.text(row, colAbbr); err != nil {
		return rec, err
	}
	fields := []struct {
		Name string
		Ptr  *float64
	}{
		{Name: colPoverty, Ptr: &rec.Poverty},
		{Name: colAge, Ptr: &rec.Age},
		{Name: colIncome, Ptr: &rec.Income},
		{Name: colHealthcare, Ptr: &rec.Healthcare},
		{Name: colObesity, Ptr: &rec.Obesity},
		{Name: colSmokes, Ptr: &rec.Smokes},
	}
	for _, f := range fields {
		if *f.Ptr, err = h.number(row, f.Name); err != nil {
			return rec, err
		}
	}
	return rec, nil
}

func (h header) text(row []string, name string) (string, error) {
	ix := h[name]
	if ix >= len(row) {
		return "", fmt.Errorf("%w: %s", ErrColumn, name)
	}
	return strings.TrimSpace(row[ix]), nil
}

func (h header) number(row []string, name string) (float64, error) {
	str, err := h.text(row, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s = %q", ErrValue, name, str)
	}
	return v, nil
}

func isBlank(row []string) bool {
	if len(row) == 0 {
		return true
	}
	return len(row) == 1 && strings.TrimSpace(slices.Fst(row)) == ""
}

func readFrom(ctx context.Context, location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, fmt.Errorf("%s: unexpected status %s", location, res.Status)
		}
		return res.Body, nil
	case "", "file":
		return os.Open(u.Path)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme", u.Scheme)
	}
}
