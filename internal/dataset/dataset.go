// Package dataset reads the reference HR dataset. It is only consulted to
// populate option lists; inference never touches it.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrUnknownColumn is returned when a column is not present in the header.
var ErrUnknownColumn = errors.New("unknown column")

// Dataset is an immutable in-memory table.
type Dataset struct {
	header []string
	index  map[string]int
	rows   [][]string
}

// Load reads a CSV file with a header row.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ds, nil
}

// Read parses CSV content with a header row.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty dataset: missing header")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		header[i] = name
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		index[name] = i
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	return &Dataset{header: header, index: index, rows: rows}, nil
}

// Columns returns the header names in file order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.header))
	copy(out, d.header)
	return out
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Unique returns the distinct non-empty values of a column in order of
// first appearance.
func (d *Dataset) Unique(column string) ([]string, error) {
	idx, ok := d.index[column]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	seen := make(map[string]struct{})
	var out []string
	for _, row := range d.rows {
		if idx >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[idx])
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

// UniqueInts is Unique for integer-coded columns. Values written as
// integral floats ("3.0") are accepted.
func (d *Dataset) UniqueInts(column string) ([]int, error) {
	raw, err := d.Unique(column)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(raw))
	out := make([]int, 0, len(raw))
	for _, s := range raw {
		n, err := parseInt(s)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", column, err)
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out, nil
}

func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), nil
}
