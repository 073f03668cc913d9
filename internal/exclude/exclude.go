// Package exclude decides which paths are skipped during source discovery.
//
// Two mechanisms combine: a built-in list of dependency and build
// directories that are never worth analyzing, and user-supplied glob
// patterns matched against paths relative to the input root.
package exclude

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// skipDirs are directory names that are always skipped, at any depth.
var skipDirs = map[string]bool{
	"target":       true,
	"build":        true,
	"out":          true,
	"bin":          true,
	"node_modules": true,
	"vendor":       true,
}

// Matcher combines built-in directory skipping with user glob patterns.
type Matcher struct {
	globs []glob.Glob
}

// NewMatcher compiles the given glob patterns into a Matcher.
// An invalid pattern is a configuration error.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{}
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// SkipDir reports whether a directory with the given base name should be
// skipped entirely. Hidden directories are skipped too.
func SkipDir(name string) bool {
	if strings.HasPrefix(name, ".") && name != "." {
		return true
	}
	return skipDirs[name]
}

// Match reports whether the path (relative to the input root) matches any
// user exclude pattern. Paths are normalized to forward slashes so
// patterns behave the same on every platform.
func (m *Matcher) Match(relPath string) bool {
	normalized := filepath.ToSlash(relPath)
	for _, g := range m.globs {
		if g.Match(normalized) {
			return true
		}
	}
	return false
}
