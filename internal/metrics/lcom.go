package metrics

import "github.com/cohrep/cohrep/internal/base"

// LCOM is the Chidamber-Kemerer lack of cohesion in methods: the number
// of method pairs sharing no instance field, minus the pairs sharing at
// least one, floored at zero. Higher means less cohesive.
type LCOM struct {
	base base.Base
}

// NewLCOM creates the metric over the given base.
func NewLCOM(b base.Base) *LCOM {
	return &LCOM{base: b}
}

// Name returns the metric identifier.
func (m *LCOM) Name() string { return "LCOM" }

// Compute scores every class in the base.
func (m *LCOM) Compute() (*Result, error) {
	classes, err := m.base.Classes()
	if err != nil {
		return nil, err
	}
	result := &Result{Metric: m.Name()}
	for i := range classes {
		result.Classes = append(result.Classes, lcomOf(&classes[i]))
	}
	return result, nil
}

func lcomOf(c *base.Class) ClassScore {
	methods := c.InstanceMethods()
	n := len(methods)
	if n < 2 {
		return undefined(c.QualifiedName(), Variable{"methods", float64(n)})
	}

	var disjoint, sharing int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if shareField(methods[i], methods[j]) {
				sharing++
			} else {
				disjoint++
			}
		}
	}

	score := float64(disjoint - sharing)
	if score < 0 {
		score = 0
	}
	return ClassScore{
		Name:    c.QualifiedName(),
		Score:   score,
		Defined: true,
		Vars: []Variable{
			{"methods", float64(n)},
			{"pairs_disjoint", float64(disjoint)},
			{"pairs_sharing", float64(sharing)},
		},
	}
}
