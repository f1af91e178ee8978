// Package features turns a submitted profile into the row the classifier
// consumes: numeric fields verbatim, categorical fields one-hot expanded,
// then reconciled against the classifier's declared feature list.
package features

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/churnlens/internal/form"
)

// ErrNoDeclaredFeatures is returned when the classifier does not declare its
// training-time feature list. The column order cannot be guessed.
var ErrNoDeclaredFeatures = errors.New("classifier declares no feature names")

// Column is a named value of the expanded record.
type Column struct {
	Name  string
	Value float64
}

// Vector is a single encoded row. Columns and Values are parallel and
// ordered exactly like the declared feature list.
type Vector struct {
	Columns []string
	Values  []float64
}

// Len returns the number of columns.
func (v Vector) Len() int {
	return len(v.Columns)
}

// Value returns the value of a named column.
func (v Vector) Value(name string) (float64, bool) {
	for i, c := range v.Columns {
		if c == name {
			return v.Values[i], true
		}
	}
	return 0, false
}

// String renders the row as "name=value" pairs.
func (v Vector) String() string {
	var b strings.Builder
	for i, c := range v.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(v.Values[i], 'g', -1, 64))
	}
	return b.String()
}

// IndicatorName returns the one-hot column name for a categorical value.
func IndicatorName(field, value string) string {
	return field + "_" + value
}

// Expand builds the flat record: every numeric field verbatim followed by one
// indicator column set to 1 per categorical field. Only values present in
// this row produce columns.
func Expand(p form.Profile) []Column {
	num := p.Numeric()
	cat := p.Categorical()

	cols := make([]Column, 0, len(num)+len(cat))
	for _, n := range num {
		cols = append(cols, Column{Name: n.Name, Value: n.Value})
	}
	for _, c := range cat {
		cols = append(cols, Column{Name: IndicatorName(c.Name, c.Value), Value: 1})
	}
	return cols
}

// Encode expands p and reconciles the result against declared: declared
// columns missing from the expansion are filled with 0, extra columns are
// dropped and the output follows declared order.
func Encode(p form.Profile, declared []string) (Vector, error) {
	if len(declared) == 0 {
		return Vector{}, ErrNoDeclaredFeatures
	}

	expanded := make(map[string]float64, len(declared))
	for _, c := range Expand(p) {
		expanded[c.Name] = c.Value
	}

	v := Vector{
		Columns: make([]string, len(declared)),
		Values:  make([]float64, len(declared)),
	}
	seen := make(map[string]struct{}, len(declared))
	for i, name := range declared {
		if _, dup := seen[name]; dup {
			return Vector{}, fmt.Errorf("declared feature %q listed twice", name)
		}
		seen[name] = struct{}{}

		v.Columns[i] = name
		v.Values[i] = expanded[name]
	}
	return v, nil
}

// Dropped returns the expanded columns that the declared list does not
// contain. A categorical value unseen at training time shows up here.
func Dropped(p form.Profile, declared []string) []string {
	keep := make(map[string]struct{}, len(declared))
	for _, name := range declared {
		keep[name] = struct{}{}
	}
	var out []string
	for _, c := range Expand(p) {
		if _, ok := keep[c.Name]; !ok {
			out = append(out, c.Name)
		}
	}
	return out
}
