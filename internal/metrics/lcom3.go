package metrics

import "github.com/cohrep/cohrep/internal/base"

// LCOM3 is the Henderson-Sellers revision of LCOM:
// (m - sum(mu(f))/a) / (m - 1). Zero is perfect cohesion, one means each
// field is used by a single method on average.
type LCOM3 struct {
	base base.Base
}

// NewLCOM3 creates the metric over the given base.
func NewLCOM3(b base.Base) *LCOM3 {
	return &LCOM3{base: b}
}

// Name returns the metric identifier.
func (m *LCOM3) Name() string { return "LCOM3" }

// Compute scores every class in the base.
func (m *LCOM3) Compute() (*Result, error) {
	classes, err := m.base.Classes()
	if err != nil {
		return nil, err
	}
	result := &Result{Metric: m.Name()}
	for i := range classes {
		result.Classes = append(result.Classes, lcom3Of(&classes[i]))
	}
	return result, nil
}

func lcom3Of(c *base.Class) ClassScore {
	methods := c.InstanceMethods()
	fields := c.InstanceFields()
	mc, ac := len(methods), len(fields)
	if mc < 2 || ac == 0 {
		return undefined(c.QualifiedName(),
			Variable{"methods", float64(mc)},
			Variable{"attributes", float64(ac)},
		)
	}

	var sum int
	for _, count := range fieldUseCount(fields, methods) {
		sum += count
	}

	avg := float64(sum) / float64(ac)
	score := (float64(mc) - avg) / float64(mc-1)
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
