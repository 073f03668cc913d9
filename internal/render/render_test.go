package render

import (
	"strings"
	"testing"

	"github.com/cohrep/cohrep/internal/report"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return r
}

func TestBadgeFormatting(t *testing.T) {
	r := newRenderer(t)

	tests := []struct {
		score    float64
		expected string
	}{
		{1.0, "1.0000"},
		{0.0, "0.0000"},
		{0.625, "0.6250"},
	}

	for _, tt := range tests {
		svg, err := r.Badge(tt.score)
		if err != nil {
			t.Fatalf("Badge(%v) returned error: %v", tt.score, err)
		}
		if !strings.Contains(string(svg), ">"+tt.expected+"<") {
			t.Errorf("Badge(%v) does not embed %q", tt.score, tt.expected)
		}
		if !strings.HasPrefix(string(svg), "<svg") {
			t.Errorf("badge is not an SVG document")
		}
	}
}

func TestMetricHTML(t *testing.T) {
	r := newRenderer(t)

	doc := &report.MetricDocument{
		Name:  "LCOM2",
		Score: "0.5000",
		Classes: []report.ClassEntry{
			{ID: "com.example.Counter", Value: "0.5000", Defined: true,
				Vars: []report.Variable{{Name: "methods", Value: "4"}}},
		},
	}

	html, err := r.MetricHTML(doc)
	if err != nil {
		t.Fatalf("MetricHTML returned error: %v", err)
	}
	out := string(html)
	for _, want := range []string{"LCOM2", "com.example.Counter", "0.5000", "methods=4"} {
		if !strings.Contains(out, want) {
			t.Errorf("metric HTML missing %q", want)
		}
	}
}

func TestIndexHTML(t *testing.T) {
	r := newRenderer(t)

	doc := &report.IndexDocument{
		Score: "0.6250",
		Metrics: []report.MetricDocument{
			{Name: "M1", Score: "0.7500", Classes: []report.ClassEntry{
				{ID: "class1", Value: "1.0000", Defined: true},
			}},
		},
	}

	html, err := r.IndexHTML(doc)
	if err != nil {
		t.Fatalf("IndexHTML returned error: %v", err)
	}
	out := string(html)
	for _, want := range []string{"0.6250", "M1", "0.7500", "class1"} {
		if !strings.Contains(out, want) {
			t.Errorf("index HTML missing %q", want)
		}
	}
}

func TestMatrixHTML(t *testing.T) {
	r := newRenderer(t)

	doc := &report.MatrixDocument{
		Classes: []report.MatrixRow{
			{ID: "class1", Cells: []report.MatrixCell{
				{Metric: "M1", Value: "1.0000", Defined: true},
				{Metric: "M2", Value: "0.0000", Defined: true},
			}},
		},
	}

	html, err := r.MatrixHTML(doc)
	if err != nil {
		t.Fatalf("MatrixHTML returned error: %v", err)
	}
	out := string(html)
	for _, want := range []string{"class1", "M1", "M2", "1.0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("matrix HTML missing %q", want)
		}
	}
}

func TestTemplateAssets(t *testing.T) {
	names := TemplateNames()
	if len(names) != 3 {
		t.Fatalf("expected 3 shipped templates, got %d", len(names))
	}
	for _, name := range names {
		data, err := TemplateSource(name)
		if err != nil {
			t.Errorf("TemplateSource(%s): %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("template %s is empty", name)
		}
	}

	if _, err := TemplateSource("nope.tmpl"); err == nil {
		t.Error("expected error for unknown template")
	}
}
