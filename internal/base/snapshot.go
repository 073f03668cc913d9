package base

import "sync"

// snapshot memoizes another Base so the class list is extracted once and
// replayed to every metric. Metrics are pure functions over one immutable
// snapshot; walking the tree per metric would only repeat the same work.
type snapshot struct {
	inner   Base
	once    sync.Once
	classes []Class
	err     error
}

// Snapshot wraps a Base so that its Classes result is computed once and
// shared by all callers. Safe for concurrent use.
func Snapshot(b Base) Base {
	return &snapshot{inner: b}
}

// Classes returns the memoized class list.
func (s *snapshot) Classes() ([]Class, error) {
	s.once.Do(func() {
		s.classes, s.err = s.inner.Classes()
	})
	return s.classes, s.err
}
