package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cohrep/cohrep/internal/metrics"
)

// MetricRenderer turns a metric document into its human-readable view.
// Implemented by the render package; accepted as an interface so the
// report layer stays free of template concerns.
type MetricRenderer interface {
	MetricHTML(doc *MetricDocument) ([]byte, error)
}

// Report persists one metric's output as a standalone artifact pair: the
// structured XML document and its rendered HTML view.
type Report struct {
	metric   metrics.Metric
	renderer MetricRenderer
}

// NewReport creates a report for one metric.
func NewReport(m metrics.Metric, r MetricRenderer) *Report {
	return &Report{metric: m, renderer: r}
}

// Save computes the metric and writes <name>.xml and <name>.html into the
// output directory, which must already exist. Errors propagate unchanged;
// no partial-write recovery is attempted.
func (r *Report) Save(dir string) error {
	result, err := r.metric.Compute()
	if err != nil {
		return fmt.Errorf("computing %s: %w", r.metric.Name(), err)
	}

	doc := NewMetricDocument(result)

	data, err := MarshalDocument(doc)
	if err != nil {
		return err
	}
	xmlPath := filepath.Join(dir, doc.Name+".xml")
	if err := os.WriteFile(xmlPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", xmlPath, err)
	}

	html, err := r.renderer.MetricHTML(doc)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", doc.Name, err)
	}
	htmlPath := filepath.Join(dir, doc.Name+".html")
	if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", htmlPath, err)
	}
	return nil
}
