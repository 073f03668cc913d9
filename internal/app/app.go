// Package app orchestrates one analysis run: discover classes, run every
// configured metric, aggregate the index and matrix, compute the project
// score, and emit the output bundle.
//
// The pipeline is linear and fail-fast. Any step's failure aborts the run
// and already-written artifacts are left in place; an incomplete output
// directory is the diagnostic. The refusal to reuse an existing output
// directory is the only guard against mixing runs; two processes racing
// to create the same directory simultaneously are not protected against.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cohrep/cohrep/internal/base"
	"github.com/cohrep/cohrep/internal/cache"
	"github.com/cohrep/cohrep/internal/config"
	"github.com/cohrep/cohrep/internal/exclude"
	"github.com/cohrep/cohrep/internal/metrics"
	"github.com/cohrep/cohrep/internal/render"
	"github.com/cohrep/cohrep/internal/report"
)

// PreconditionError is returned when the output location already exists.
// Nothing is written in that case.
type PreconditionError struct {
	Path string
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("output location already exists: %s", e.Path)
}

// App runs the full analysis pipeline for one input/output pair.
type App struct {
	input    string
	output   string
	cfg      *config.Config
	renderer *render.Renderer
	noCache  bool
	logf     func(format string, args ...any)
}

// Option configures an App.
type Option func(*App)

// WithConfig supplies a loaded configuration instead of the defaults.
func WithConfig(cfg *config.Config) Option {
	return func(a *App) { a.cfg = cfg }
}

// WithoutCache disables the skeleton cache for this run.
func WithoutCache() Option {
	return func(a *App) { a.noCache = true }
}

// WithLogf sets a progress logging function.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(a *App) { a.logf = logf }
}

// New creates an App over the given input and output locations.
func New(input, output string, opts ...Option) (*App, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}
	a := &App{
		input:    input,
		output:   output,
		cfg:      config.Default(),
		renderer: renderer,
		logf:     func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Analyze performs the full pipeline:
// preflight, run metrics, build index, compute score, emit index
// artifacts, build matrix, emit matrix artifacts, emit badge, copy
// template assets.
func (a *App) Analyze() error {
	if _, err := os.Stat(a.output); err == nil {
		return &PreconditionError{Path: a.output}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking output location %s: %w", a.output, err)
	}
	if err := os.MkdirAll(a.output, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", a.output, err)
	}

	b, closeCache, err := a.newBase()
	if err != nil {
		return err
	}
	defer closeCache()

	ms, err := metrics.Registry(b)
	if err != nil {
		return err
	}

	for _, m := range ms {
		a.logf("computing %s", m.Name())
		if err := report.NewReport(m, a.renderer).Save(a.output); err != nil {
			return err
		}
	}

	names := metrics.Names(ms)

	index, err := report.NewIndex(a.output, names).Value()
	if err != nil {
		return err
	}
	score, err := report.AggregateScore(index)
	if err != nil {
		return err
	}
	report.StampScore(index, score)
	a.logf("aggregate score %s", report.FormatScore(score))

	if err := a.emitDocument(index, "index"); err != nil {
		return err
	}
	indexHTML, err := a.renderer.IndexHTML(index)
	if err != nil {
		return err
	}
	if err := a.write("index.html", indexHTML); err != nil {
		return err
	}

	matrix, err := report.NewMatrix(a.output, names).Value()
	if err != nil {
		return err
	}
	if err := a.emitDocument(matrix, "matrix"); err != nil {
		return err
	}
	matrixHTML, err := a.renderer.MatrixHTML(matrix)
	if err != nil {
		return err
	}
	if err := a.write("matrix.html", matrixHTML); err != nil {
		return err
	}

	badge, err := a.renderer.Badge(score)
	if err != nil {
		return err
	}
	if err := a.write("badge.svg", badge); err != nil {
		return err
	}

	return a.copyTemplates()
}

// newBase assembles the Base for this run: exclude matcher, optional
// skeleton cache, and a memoizing snapshot shared by all metrics. The
// returned closer releases the cache.
func (a *App) newBase() (base.Base, func(), error) {
	noop := func() {}

	matcher, err := exclude.NewMatcher(a.cfg.Analysis.Exclude)
	if err != nil {
		return nil, noop, err
	}

	opts := []base.Option{
		base.WithMatcher(matcher),
		base.WithLogf(a.logf),
	}
	closeCache := noop
	if a.cfg.Cache.Enabled && !a.noCache {
		c, err := cache.Open(filepath.Join(a.input, a.cfg.Cache.Dir))
		if err != nil {
			return nil, noop, err
		}
		opts = append(opts, base.WithCache(c))
		closeCache = func() { c.Close() }
	}

	return base.Snapshot(base.New(a.input, opts...)), closeCache, nil
}

// emitDocument writes a document as <stem>.xml in the output directory.
func (a *App) emitDocument(doc any, stem string) error {
	data, err := report.MarshalDocument(doc)
	if err != nil {
		return err
	}
	return a.write(stem+".xml", data)
}

// copyTemplates ships the presentation templates alongside the generated
// artifacts so the bundle can be re-rendered offline.
func (a *App) copyTemplates() error {
	for _, name := range render.TemplateNames() {
		data, err := render.TemplateSource(name)
		if err != nil {
			return err
		}
		if err := a.write(name, data); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) write(name string, data []byte) error {
	path := filepath.Join(a.output, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
