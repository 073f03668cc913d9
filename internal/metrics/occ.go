package metrics

import "github.com/cohrep/cohrep/internal/base"

// OCC measures optimistic class cohesion through method connectivity:
// two methods are connected when they use a common instance field or one
// calls the other, and the score is the largest fraction of the other
// methods any single method can reach through such connections.
type OCC struct {
	base base.Base
}

// NewOCC creates the metric over the given base.
func NewOCC(b base.Base) *OCC {
	return &OCC{base: b}
}

// Name returns the metric identifier.
func (m *OCC) Name() string { return "OCC" }

// Compute scores every class in the base.
func (m *OCC) Compute() (*Result, error) {
	classes, err := m.base.Classes()
	if err != nil {
		return nil, err
	}
	result := &Result{Metric: m.Name()}
	for i := range classes {
		result.Classes = append(result.Classes, occOf(&classes[i]))
	}
	return result, nil
}

func occOf(c *base.Class) ClassScore {
	methods := c.InstanceMethods()
	n := len(methods)
	if n < 2 {
		return undefined(c.QualifiedName(), Variable{"methods", float64(n)})
	}

	adjacent := connectionGraph(methods)

	// Reachability is symmetric here, so every member of a connected
	// component reaches component-size minus one methods; the maximum
	// over methods is decided by the largest component.
	largest := largestComponent(n, adjacent)

	score := float64(largest-1) / float64(n-1)
	return ClassScore{
		Name:    c.QualifiedName(),
		Score:   score,
		Defined: true,
		Vars: []Variable{
			{"methods", float64(n)},
			{"component", float64(largest)},
		},
	}
}

// connectionGraph builds the undirected method connection relation:
// shared field use or a call in either direction.
func connectionGraph(methods []base.Method) [][]int {
	index := make(map[string]int, len(methods))
	for i, m := range methods {
		index[m.Name] = i
	}

	adjacent := make([][]int, len(methods))
	connect := func(i, j int) {
		adjacent[i] = append(adjacent[i], j)
		adjacent[j] = append(adjacent[j], i)
	}

	for i := 0; i < len(methods); i++ {
		for j := i + 1; j < len(methods); j++ {
			if shareField(methods[i], methods[j]) {
				connect(i, j)
			}
		}
		for _, callee := range methods[i].Calls {
			if j, ok := index[callee]; ok && j != i {
				connect(i, j)
			}
		}
	}
	return adjacent
}

// largestComponent returns the size of the largest connected component.
func largestComponent(n int, adjacent [][]int) int {
	visited := make([]bool, n)
	largest := 0
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		size := 0
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			for _, w := range adjacent[v] {
				if !visited[w] {
					visited[w] = true
					stack = append(stack, w)
				}
			}
		}
		if size > largest {
			largest = size
		}
	}
	return largest
}
