// Package base enumerates the analyzable classes of a Java codebase.
//
// A Base walks an input directory, parses every Java source file it finds,
// and reduces each class to a skeleton: fields, method signatures, and the
// fields and sibling methods each method touches. Metrics consume these
// skeletons and nothing else. The class list is sorted by qualified name
// so every downstream artifact is deterministic.
package base

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cohrep/cohrep/internal/cache"
	"github.com/cohrep/cohrep/internal/exclude"
	"github.com/cohrep/cohrep/internal/parser"
)

// Base yields the set of analyzable classes from a project snapshot.
type Base interface {
	Classes() ([]Class, error)
}

// ExtractError is returned when a source file cannot be turned into
// skeletons, typically because it does not parse.
type ExtractError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ExtractError) Error() string {
	return fmt.Sprintf("extracting classes from %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ExtractError) Unwrap() error {
	return e.Err
}

// DefaultBase walks a directory tree of Java sources.
type DefaultBase struct {
	root    string
	matcher *exclude.Matcher
	cache   *cache.Cache
	logf    func(format string, args ...any)
}

// Option configures a DefaultBase.
type Option func(*DefaultBase)

// WithMatcher sets the user exclude matcher applied during discovery.
func WithMatcher(m *exclude.Matcher) Option {
	return func(b *DefaultBase) { b.matcher = m }
}

// WithCache enables the skeleton cache for unchanged files.
func WithCache(c *cache.Cache) Option {
	return func(b *DefaultBase) { b.cache = c }
}

// WithLogf sets a progress logging function.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(b *DefaultBase) { b.logf = logf }
}

// New creates a DefaultBase rooted at the given directory.
func New(root string, opts ...Option) *DefaultBase {
	b := &DefaultBase{
		root: root,
		logf: func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Classes walks the input tree and returns every analyzable class, sorted
// by qualified name. A file that fails to parse aborts the walk.
func (b *DefaultBase) Classes() ([]Class, error) {
	files, err := b.discover()
	if err != nil {
		return nil, err
	}

	p := parser.New()
	defer p.Close()

	var classes []Class
	for _, relPath := range files {
		extracted, err := b.classesOf(p, relPath)
		if err != nil {
			return nil, err
		}
		classes = append(classes, extracted...)
	}

	sort.Slice(classes, func(i, j int) bool {
		return classes[i].QualifiedName() < classes[j].QualifiedName()
	})
	return classes, nil
}

// discover lists Java files under the root, relative paths sorted.
func (b *DefaultBase) discover() ([]string, error) {
	var files []string
	err := filepath.WalkDir(b.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(b.root, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if rel != "." && (exclude.SkipDir(d.Name()) || b.matches(rel)) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".java") || b.matches(rel) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", b.root, err)
	}
	sort.Strings(files)
	return files, nil
}

func (b *DefaultBase) matches(rel string) bool {
	return b.matcher != nil && b.matcher.Match(rel)
}

// classesOf extracts the skeletons of one file, consulting the cache
// first. Cache decode failures fall through to a fresh parse.
func (b *DefaultBase) classesOf(p *parser.Parser, relPath string) ([]Class, error) {
	absPath := filepath.Join(b.root, relPath)
	source, err := os.ReadFile(absPath)
	if err != nil {
		return nil, &ExtractError{Path: relPath, Err: err}
	}

	hash := contentHash(source)
	if b.cache != nil {
		if payload, ok := b.cache.Get(relPath, hash); ok {
			var cached []Class
			if err := json.Unmarshal(payload, &cached); err == nil {
				return cached, nil
			}
		}
	}

	result, err := p.Parse(source)
	if err != nil {
		return nil, &ExtractError{Path: relPath, Err: err}
	}
	defer result.Close()

	if result.HasErrors() {
		return nil, &ExtractError{Path: relPath, Err: fmt.Errorf("source contains syntax errors")}
	}

	classes := extractClasses(result, relPath)
	b.logf("extracted %d class(es) from %s", len(classes), relPath)

	if b.cache != nil {
		if payload, err := json.Marshal(classes); err == nil {
			if err := b.cache.Put(relPath, hash, payload); err != nil {
				// Cache writes never fail the analysis.
				b.logf("cache write failed for %s: %v", relPath, err)
			}
		}
	}
	return classes, nil
}

func contentHash(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}
