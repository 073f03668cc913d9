package report

import "sort"

// Matrix pivots the same per-metric documents the index reads into a
// class-major MatrixDocument for cross-comparison. It reads from disk
// rather than from an IndexDocument so the two aggregation shapes stay
// decoupled, coupled only through the on-disk contract.
type Matrix struct {
	dir   string
	names []string
}

// NewMatrix creates a matrix over the given output directory and metric
// list.
func NewMatrix(dir string, names []string) *Matrix {
	return &Matrix{dir: dir, names: names}
}

// Value assembles the class-major view: one row per class, sorted by
// class name, with one cell per metric in configuration order.
func (m *Matrix) Value() (*MatrixDocument, error) {
	rows := make(map[string][]MatrixCell)
	for _, name := range m.names {
		md, err := readMetricDocument(m.dir, name)
		if err != nil {
			return nil, err
		}
		for _, entry := range md.Classes {
			rows[entry.ID] = append(rows[entry.ID], MatrixCell{
				Metric:  md.Name,
				Value:   entry.Value,
				Defined: entry.Defined,
			})
		}
	}

	ids := make([]string, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	doc := &MatrixDocument{}
	for _, id := range ids {
		doc.Classes = append(doc.Classes, MatrixRow{ID: id, Cells: rows[id]})
	}
	return doc, nil
}
