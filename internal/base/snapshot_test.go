package base

import (
	"errors"
	"testing"
)

// countingBase records how many times Classes is invoked.
type countingBase struct {
	calls   int
	classes []Class
	err     error
}

func (c *countingBase) Classes() ([]Class, error) {
	c.calls++
	return c.classes, c.err
}

func TestSnapshotComputesOnce(t *testing.T) {
	inner := &countingBase{classes: []Class{{Name: "A"}}}
	s := Snapshot(inner)

	for i := 0; i < 3; i++ {
		classes, err := s.Classes()
		if err != nil {
			t.Fatalf("Classes returned error: %v", err)
		}
		if len(classes) != 1 || classes[0].Name != "A" {
			t.Fatalf("unexpected classes: %+v", classes)
		}
	}

	if inner.calls != 1 {
		t.Errorf("inner base called %d times, expected 1", inner.calls)
	}
}

func TestSnapshotMemoizesError(t *testing.T) {
	boom := errors.New("boom")
	inner := &countingBase{err: boom}
	s := Snapshot(inner)

	for i := 0; i < 2; i++ {
		if _, err := s.Classes(); !errors.Is(err, boom) {
			t.Fatalf("expected memoized error, got %v", err)
		}
	}
	if inner.calls != 1 {
		t.Errorf("inner base called %d times, expected 1", inner.calls)
	}
}
