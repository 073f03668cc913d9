// Package metrics implements the fixed set of class cohesion metrics.
//
// Every metric is an independent strategy over the same Base snapshot: it
// is constructed with a Base and computes one score per analyzable class.
// The registry is closed; extending the tool means adding to the list in
// Registry. Scores follow each metric's published formula, so ranges are
// metric-defined (most fall in [0, 1], LCOM does not).
package metrics

import (
	"errors"
	"fmt"

	"github.com/cohrep/cohrep/internal/base"
)

// Variable is one named sub-measurement contributing to a class score,
// kept for report diagnostics.
type Variable struct {
	Name  string
	Value float64
}

// ClassScore is the score of one metric for one class. Degenerate classes
// (for which the formula is undefined) score 0 with Defined false, so
// averaging stays total.
type ClassScore struct {
	Name    string
	Score   float64
	Defined bool
	Vars    []Variable
}

// Result is the output of one metric applied to the whole codebase:
// exactly one entry per analyzable class.
type Result struct {
	Metric  string
	Classes []ClassScore
}

// Score returns the metric's own aggregate: the arithmetic mean of the
// per-class scores, undefined classes contributing zero. Zero when there
// are no classes.
func (r *Result) Score() float64 {
	if len(r.Classes) == 0 {
		return 0
	}
	var sum float64
	for _, c := range r.Classes {
		sum += c.Score
	}
	return sum / float64(len(r.Classes))
}

// Metric computes per-class cohesion scores from a Base snapshot.
// Compute is a pure function of the snapshot: deterministic, no side
// effects.
type Metric interface {
	Name() string
	Compute() (*Result, error)
}

// ErrDuplicateMetric is returned when two configured metrics share an
// identifier. Identifiers double as report file stems, so a collision
// would silently overwrite an artifact.
var ErrDuplicateMetric = errors.New("duplicate metric identifier")

// Registry returns the fixed metric set, in report order, validating
// identifier uniqueness.
func Registry(b base.Base) ([]Metric, error) {
	ms := []Metric{
		NewCAMC(b),
		NewLCOM(b),
		NewOCC(b),
		NewNHD(b),
		NewLCOM2(b),
		NewLCOM3(b),
	}
	seen := make(map[string]bool, len(ms))
	for _, m := range ms {
		if seen[m.Name()] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMetric, m.Name())
		}
		seen[m.Name()] = true
	}
	return ms, nil
}

// Names returns the identifiers of the given metrics, in order.
func Names(ms []Metric) []string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.Name()
	}
	return names
}

// undefined builds the sentinel score for a class a formula cannot rate.
func undefined(name string, vars ...Variable) ClassScore {
	return ClassScore{Name: name, Score: 0, Defined: false, Vars: vars}
}

// fieldUseCount returns, per instance field, how many of the given
// methods use it.
func fieldUseCount(fields []string, methods []base.Method) map[string]int {
	counts := make(map[string]int, len(fields))
	for _, f := range fields {
		counts[f] = 0
	}
	for _, m := range methods {
		for _, f := range m.Uses {
			if _, ok := counts[f]; ok {
				counts[f]++
			}
		}
	}
	return counts
}

// shareField reports whether two methods use at least one common field.
func shareField(a, b base.Method) bool {
	set := make(map[string]bool, len(a.Uses))
	for _, f := range a.Uses {
		set[f] = true
	}
	for _, f := range b.Uses {
		if set[f] {
			return true
		}
	}
	return false
}

// paramTypeUnion returns the distinct parameter types across all methods,
// and each method's distinct parameter-type set.
func paramTypeUnion(methods []base.Method) (map[string]bool, []map[string]bool) {
	union := make(map[string]bool)
	perMethod := make([]map[string]bool, len(methods))
	for i, m := range methods {
		set := make(map[string]bool, len(m.Params))
		for _, p := range m.Params {
			set[p] = true
			union[p] = true
		}
		perMethod[i] = set
	}
	return union, perMethod
}
