package metrics

import "github.com/cohrep/cohrep/internal/base"

// NHD is the normalized Hamming distance agreement between the
// parameter-type occurrence vectors of a class's methods:
// 1 - 2/(l*m*(m-1)) * sum_j c_j*(m - c_j), where c_j counts the methods
// using type j. One means all methods agree on every type.
type NHD struct {
	base base.Base
}

// NewNHD creates the metric over the given base.
func NewNHD(b base.Base) *NHD {
	return &NHD{base: b}
}

// Name returns the metric identifier.
func (m *NHD) Name() string { return "NHD" }

// Compute scores every class in the base.
func (m *NHD) Compute() (*Result, error) {
	classes, err := m.base.Classes()
	if err != nil {
		return nil, err
	}
	result := &Result{Metric: m.Name()}
	for i := range classes {
		result.Classes = append(result.Classes, nhdOf(&classes[i]))
	}
	return result, nil
}

func nhdOf(c *base.Class) ClassScore {
	mc := len(c.Methods)
	union, perMethod := paramTypeUnion(c.Methods)
	l := len(union)
	if mc < 2 || l == 0 {
		return undefined(c.QualifiedName(),
			Variable{"methods", float64(mc)},
			Variable{"types", float64(l)},
		)
	}

	var disagreement int
	for t := range union {
		var cj int
		for _, set := range perMethod {
			if set[t] {
				cj++
			}
		}
		disagreement += cj * (mc - cj)
	}

	score := 1 - 2*float64(disagreement)/float64(l*mc*(mc-1))
	return ClassScore{
		Name:    c.QualifiedName(),
		Score:   score,
		Defined: true,
		Vars: []Variable{
			{"methods", float64(mc)},
			{"types", float64(l)},
			{"disagreement", float64(disagreement)},
		},
	}
}
