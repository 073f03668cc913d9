// Package render turns report documents into their presentation forms:
// HTML views for the index, matrix and per-metric documents, and the SVG
// scorecard badge.
//
// A Renderer is pure: it holds precompiled templates and performs no I/O.
// Writing the rendered bytes is the caller's job.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	texttemplate "text/template"

	"github.com/cohrep/cohrep/internal/report"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// templateNames are the presentation templates copied into every output
// bundle for offline re-rendering.
var templateNames = []string{
	"index.html.tmpl",
	"matrix.html.tmpl",
	"metric.html.tmpl",
}

// Renderer holds the precompiled presentation templates. Construct with
// New; the zero value is not usable.
type Renderer struct {
	index  *template.Template
	matrix *template.Template
	metric *template.Template
	badge  *texttemplate.Template
}

// New parses the embedded templates into a Renderer.
func New() (*Renderer, error) {
	r := &Renderer{}

	for _, t := range []struct {
		name string
		dst  **template.Template
	}{
		{"index.html.tmpl", &r.index},
		{"matrix.html.tmpl", &r.matrix},
		{"metric.html.tmpl", &r.metric},
	} {
		source, err := templateFS.ReadFile("templates/" + t.name)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", t.name, err)
		}
		parsed, err := template.New(t.name).Parse(string(source))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", t.name, err)
		}
		*t.dst = parsed
	}

	source, err := templateFS.ReadFile("templates/badge.svg.tmpl")
	if err != nil {
		return nil, fmt.Errorf("reading badge template: %w", err)
	}
	badge, err := texttemplate.New("badge.svg.tmpl").Parse(string(source))
	if err != nil {
		return nil, fmt.Errorf("parsing badge template: %w", err)
	}
	r.badge = badge

	return r, nil
}

// IndexHTML renders the metric-major index view.
func (r *Renderer) IndexHTML(doc *report.IndexDocument) ([]byte, error) {
	return execute(r.index, doc)
}

// MatrixHTML renders the class-major matrix view.
func (r *Renderer) MatrixHTML(doc *report.MatrixDocument) ([]byte, error) {
	return execute(r.matrix, doc)
}

// MetricHTML renders one metric's standalone view.
func (r *Renderer) MetricHTML(doc *report.MetricDocument) ([]byte, error) {
	return execute(r.metric, doc)
}

// Badge renders the scorecard badge for the aggregate score, formatted to
// four decimal places.
func (r *Renderer) Badge(score float64) ([]byte, error) {
	var buf bytes.Buffer
	data := struct{ Score string }{Score: report.FormatScore(score)}
	if err := r.badge.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering badge: %w", err)
	}
	return buf.Bytes(), nil
}

// TemplateNames lists the presentation templates shipped with every
// output bundle.
func TemplateNames() []string {
	names := make([]string, len(templateNames))
	copy(names, templateNames)
	return names
}

// TemplateSource returns the raw source of a shipped template.
func TemplateSource(name string) ([]byte, error) {
	data, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	return data, nil
}

func execute(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", t.Name(), err)
	}
	return buf.Bytes(), nil
}
