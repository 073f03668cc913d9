// Package report holds the document model of an analysis run: one XML
// document per metric, the cross-metric index, the class-major matrix,
// and the aggregate score stamped on the index.
//
// Index and Matrix deliberately re-read the per-metric documents Report
// wrote to disk instead of sharing in-memory state. The on-disk files are
// the contract between the two aggregation shapes, which keeps either one
// replayable over a partially written output directory when diagnosing a
// failed run.
package report

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/cohrep/cohrep/internal/metrics"
)

// Variable is a named sub-measurement recorded for diagnostics.
type Variable struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// ClassEntry is one class's score within a metric document.
type ClassEntry struct {
	ID      string     `xml:"id,attr"`
	Value   string     `xml:"value,attr"`
	Defined bool       `xml:"defined,attr"`
	Vars    []Variable `xml:"vars>var"`
}

// MetricDocument is the standalone structured document for one metric:
// its aggregate score and one entry per analyzable class.
type MetricDocument struct {
	XMLName xml.Name     `xml:"metric"`
	Name    string       `xml:"name,attr"`
	Score   string       `xml:"score"`
	Classes []ClassEntry `xml:"classes>class"`
}

// IndexDocument aggregates every metric document, metric-major. The Score
// attribute carries the project aggregate once stamped.
type IndexDocument struct {
	XMLName xml.Name         `xml:"metrics"`
	Score   string           `xml:"score,attr,omitempty"`
	Metrics []MetricDocument `xml:"metric"`
}

// MatrixCell is one class-metric score in the matrix view.
type MatrixCell struct {
	Metric  string `xml:"metric,attr"`
	Value   string `xml:"value,attr"`
	Defined bool   `xml:"defined,attr"`
}

// MatrixRow collects one class's scores across all metrics.
type MatrixRow struct {
	ID    string       `xml:"id,attr"`
	Cells []MatrixCell `xml:"cell"`
}

// MatrixDocument is the class-major pivot of the same facts the index
// holds; the two must agree on every class-metric pair.
type MatrixDocument struct {
	XMLName xml.Name    `xml:"matrix"`
	Classes []MatrixRow `xml:"class"`
}

// FormatScore renders a score the way every artifact prints it, badge
// included: fixed four decimal places.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 4, 64)
}

// NewMetricDocument converts a metric result into its document form.
func NewMetricDocument(result *metrics.Result) *MetricDocument {
	doc := &MetricDocument{
		Name:  result.Metric,
		Score: FormatScore(result.Score()),
	}
	for _, c := range result.Classes {
		entry := ClassEntry{
			ID:      c.Name,
			Value:   FormatScore(c.Score),
			Defined: c.Defined,
		}
		for _, v := range c.Vars {
			entry.Vars = append(entry.Vars, Variable{
				Name:  v.Name,
				Value: strconv.FormatFloat(v.Value, 'f', -1, 64),
			})
		}
		doc.Classes = append(doc.Classes, entry)
	}
	return doc
}

// MarshalDocument serializes a document with the standard XML header and
// stable indentation, so identical inputs yield identical bytes.
func MarshalDocument(doc any) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling document: %w", err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
