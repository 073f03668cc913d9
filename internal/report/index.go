package report

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// Index folds the per-metric documents previously written to a directory
// into one metric-major IndexDocument, in the configured metric order.
type Index struct {
	dir   string
	names []string
}

// NewIndex creates an index over the given output directory and metric
// list.
func NewIndex(dir string, names []string) *Index {
	return &Index{dir: dir, names: names}
}

// Value reads every per-metric document back from disk and assembles the
// index. A document that is missing, unreadable, or lacking its score
// node is a structural error, never silently skipped.
func (i *Index) Value() (*IndexDocument, error) {
	doc := &IndexDocument{}
	for _, name := range i.names {
		md, err := readMetricDocument(i.dir, name)
		if err != nil {
			return nil, err
		}
		doc.Metrics = append(doc.Metrics, *md)
	}
	return doc, nil
}

// readMetricDocument loads and validates one <name>.xml document.
func readMetricDocument(dir, name string) (*MetricDocument, error) {
	path := filepath.Join(dir, name+".xml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metric document %s: %w", path, err)
	}

	var md MetricDocument
	if err := xml.Unmarshal(data, &md); err != nil {
		return nil, &AggregationError{Metric: name, Reason: fmt.Sprintf("malformed document: %v", err)}
	}
	if md.Name != name {
		return nil, &AggregationError{Metric: name, Reason: fmt.Sprintf("document names metric %q", md.Name)}
	}
	if md.Score == "" {
		return nil, &AggregationError{Metric: name, Reason: "missing score node"}
	}
	return &md, nil
}
