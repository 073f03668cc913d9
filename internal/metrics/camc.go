package metrics

import "github.com/cohrep/cohrep/internal/base"

// CAMC is cohesion among methods of classes: the mean overlap of each
// method's parameter-type set with the union of parameter types across
// all methods. One means every method accepts every type the class works
// with; values near zero indicate methods with unrelated signatures.
type CAMC struct {
	base base.Base
}

// NewCAMC creates the metric over the given base.
func NewCAMC(b base.Base) *CAMC {
	return &CAMC{base: b}
}

// Name returns the metric identifier.
func (m *CAMC) Name() string { return "CAMC" }

// Compute scores every class in the base.
func (m *CAMC) Compute() (*Result, error) {
	classes, err := m.base.Classes()
	if err != nil {
		return nil, err
	}
	result := &Result{Metric: m.Name()}
	for i := range classes {
		result.Classes = append(result.Classes, camcOf(&classes[i]))
	}
	return result, nil
}

func camcOf(c *base.Class) ClassScore {
	mc := len(c.Methods)
	union, perMethod := paramTypeUnion(c.Methods)
	l := len(union)
	if mc == 0 || l == 0 {
		return undefined(c.QualifiedName(),
			Variable{"methods", float64(mc)},
			Variable{"types", float64(l)},
		)
	}

	var sum int
	for _, set := range perMethod {
		sum += len(set)
	}

	score := float64(sum) / float64(l*mc)
	return ClassScore{
		Name:    c.QualifiedName(),
		Score:   score,
		Defined: true,
		Vars: []Variable{
			{"methods", float64(mc)},
			{"types", float64(l)},
			{"occurrences", float64(sum)},
		},
	}
}
