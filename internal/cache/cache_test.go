package cache

import (
	"path/filepath"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), ".cohrep"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestGetMissOnEmptyCache(t *testing.T) {
	c := openTestCache(t)

	if _, ok := c.Get("src/Foo.java", "abc"); ok {
		t.Error("expected miss on empty cache")
	}
}

func TestPutThenGet(t *testing.T) {
	c := openTestCache(t)

	payload := []byte(`[{"name":"Foo"}]`)
	if err := c.Put("src/Foo.java", "abc", payload); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	got, ok := c.Get("src/Foo.java", "abc")
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if string(got) != string(payload) {
		t.Errorf("payload mismatch: got %q", got)
	}
}

func TestGetMissOnHashChange(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put("src/Foo.java", "abc", []byte("old")); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("src/Foo.java", "def"); ok {
		t.Error("expected miss when content hash differs")
	}
}

func TestPutReplacesExisting(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put("src/Foo.java", "v1", []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := c.Put("src/Foo.java", "v2", []byte("two")); err != nil {
		t.Fatal(err)
	}

	got, ok := c.Get("src/Foo.java", "v2")
	if !ok || string(got) != "two" {
		t.Errorf("expected replaced payload, got %q (hit=%v)", got, ok)
	}

	n, err := c.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected 1 entry after replace, got %d", n)
	}
}

func TestClear(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put("src/Foo.java", "abc", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if _, ok := c.Get("src/Foo.java", "abc"); ok {
		t.Error("expected miss after Clear")
	}
}
