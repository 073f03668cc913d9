package metrics

import "github.com/cohrep/cohrep/internal/base"

// LCOM2 measures lack of cohesion as one minus the average fraction of
// methods using each instance field: 1 - sum(mu(f)) / (m * a). Zero means
// every method uses every field; one means no method touches any field.
type LCOM2 struct {
	base base.Base
}

// NewLCOM2 creates the metric over the given base.
func NewLCOM2(b base.Base) *LCOM2 {
	return &LCOM2{base: b}
}

// Name returns the metric identifier.
func (m *LCOM2) Name() string { return "LCOM2" }

// Compute scores every class in the base.
func (m *LCOM2) Compute() (*Result, error) {
	classes, err := m.base.Classes()
	if err != nil {
		return nil, err
	}
	result := &Result{Metric: m.Name()}
	for i := range classes {
		result.Classes = append(result.Classes, lcom2Of(&classes[i]))
	}
	return result, nil
}

func lcom2Of(c *base.Class) ClassScore {
	methods := c.InstanceMethods()
	fields := c.InstanceFields()
	mc, ac := len(methods), len(fields)
	if mc == 0 || ac == 0 {
		return undefined(c.QualifiedName(),
			Variable{"methods", float64(mc)},
			Variable{"attributes", float64(ac)},
		)
	}

	var sum int
	for _, count := range fieldUseCount(fields, methods) {
		sum += count
	}

	score := 1 - float64(sum)/float64(mc*ac)
	return ClassScore{
		Name:    c.QualifiedName(),
		Score:   score,
		Defined: true,
		Vars: []Variable{
			{"methods", float64(mc)},
			{"attributes", float64(ac)},
			{"uses", float64(sum)},
		},
	}
}
