package base

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cohrep/cohrep/internal/cache"
	"github.com/cohrep/cohrep/internal/exclude"
	"github.com/cohrep/cohrep/internal/parser"
)

const counterSource = `package com.example;

public class Counter {
    private int total;
    private int steps;
    private static int instances;

    public Counter(int start) {
        this.total = start;
    }

    public void add(int delta) {
        total += delta;
        steps++;
    }

    public int value() {
        return total;
    }

    public int average() {
        int steps = 10;
        return value() / steps;
    }

    public static int created() {
        return instances;
    }
}
`

func extractFromSource(t *testing.T, source string) []Class {
	t.Helper()
	p := parser.New()
	defer p.Close()

	result, err := p.Parse([]byte(source))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	defer result.Close()

	return extractClasses(result, "Test.java")
}

func findMethod(t *testing.T, c Class, name string) Method {
	t.Helper()
	for _, m := range c.Methods {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("method %s not found in %s", name, c.Name)
	return Method{}
}

func TestExtractClassSkeleton(t *testing.T) {
	classes := extractFromSource(t, counterSource)
	if len(classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(classes))
	}

	c := classes[0]
	if c.QualifiedName() != "com.example.Counter" {
		t.Errorf("unexpected qualified name: %s", c.QualifiedName())
	}
	if len(c.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(c.Fields))
	}
	if got := c.InstanceFields(); !reflect.DeepEqual(got, []string{"steps", "total"}) {
		t.Errorf("unexpected instance fields: %v", got)
	}
	if len(c.Methods) != 5 {
		t.Fatalf("expected 5 methods, got %d", len(c.Methods))
	}
	if len(c.InstanceMethods()) != 4 {
		t.Errorf("expected 4 instance methods, got %d", len(c.InstanceMethods()))
	}
}

func TestExtractFieldUses(t *testing.T) {
	classes := extractFromSource(t, counterSource)
	c := classes[0]

	tests := []struct {
		method string
		uses   []string
	}{
		{"Counter", []string{"total"}}, // this.total
		{"add", []string{"steps", "total"}},
		{"value", []string{"total"}},
		{"average", nil}, // local steps shadows the field
	}

	for _, tt := range tests {
		m := findMethod(t, c, tt.method)
		if !reflect.DeepEqual(m.Uses, tt.uses) {
			t.Errorf("%s: uses = %v, expected %v", tt.method, m.Uses, tt.uses)
		}
	}
}

func TestExtractSiblingCalls(t *testing.T) {
	classes := extractFromSource(t, counterSource)
	m := findMethod(t, classes[0], "average")
	if !reflect.DeepEqual(m.Calls, []string{"value"}) {
		t.Errorf("average: calls = %v, expected [value]", m.Calls)
	}
}

func TestExtractSignatures(t *testing.T) {
	classes := extractFromSource(t, counterSource)
	c := classes[0]

	ctor := findMethod(t, c, "Counter")
	if !ctor.Ctor {
		t.Error("Counter should be marked as constructor")
	}
	if !reflect.DeepEqual(ctor.Params, []string{"int"}) {
		t.Errorf("ctor params = %v", ctor.Params)
	}

	value := findMethod(t, c, "value")
	if value.Return != "int" {
		t.Errorf("value return = %q, expected int", value.Return)
	}
	if len(value.Params) != 0 {
		t.Errorf("value params = %v, expected none", value.Params)
	}

	created := findMethod(t, c, "created")
	if !created.Static {
		t.Error("created should be static")
	}
}

func TestExtractSkipsNonClasses(t *testing.T) {
	source := `package com.example;

interface Shape { double area(); }

enum Color { RED, GREEN }

public class Circle {
    private double radius;
    public double area() { return 3.14 * radius * radius; }
}
`
	classes := extractFromSource(t, source)
	if len(classes) != 1 || classes[0].Name != "Circle" {
		t.Fatalf("expected only Circle, got %+v", classes)
	}
}

func TestExtractNestedClass(t *testing.T) {
	source := `package com.example;

public class Outer {
    private int x;

    static class Inner {
        private int y;
        int get() { return y; }
    }
}
`
	classes := extractFromSource(t, source)
	if len(classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(classes))
	}
	names := []string{classes[0].Name, classes[1].Name}
	found := false
	for _, n := range names {
		if n == "Outer.Inner" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected nested class Outer.Inner, got %v", names)
	}
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestClassesWalkSortedAndExcluded(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/B.java":      "public class B { private int b; int get() { return b; } }",
		"src/A.java":      "public class A { private int a; int get() { return a; } }",
		"target/Gen.java": "public class Gen {}",
		"notes.txt":       "not java",
	})

	b := New(root)
	classes, err := b.Classes()
	if err != nil {
		t.Fatalf("Classes returned error: %v", err)
	}

	if len(classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(classes))
	}
	if classes[0].Name != "A" || classes[1].Name != "B" {
		t.Errorf("classes not sorted by name: %s, %s", classes[0].Name, classes[1].Name)
	}
}

func TestClassesUserExcludes(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/main/Keep.java":     "public class Keep {}",
		"src/test/KeepTest.java": "public class KeepTest {}",
	})

	m, err := exclude.NewMatcher([]string{"src/test/**"})
	if err != nil {
		t.Fatal(err)
	}

	classes, err := New(root, WithMatcher(m)).Classes()
	if err != nil {
		t.Fatalf("Classes returned error: %v", err)
	}
	if len(classes) != 1 || classes[0].Name != "Keep" {
		t.Fatalf("expected only Keep, got %+v", classes)
	}
}

func TestClassesParseFailureAborts(t *testing.T) {
	root := writeTree(t, map[string]string{
		"Bad.java": "public class {{{",
	})

	_, err := New(root).Classes()
	if err == nil {
		t.Fatal("expected error for unparseable source")
	}
	if _, ok := err.(*ExtractError); !ok {
		t.Errorf("expected *ExtractError, got %T", err)
	}
}

func TestClassesCacheRoundTrip(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/Counter.java": counterSource,
	})

	c, err := cache.Open(filepath.Join(root, ".cohrep"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	first, err := New(root, WithCache(c)).Classes()
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := New(root, WithCache(c)).Classes()
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("cached run produced different skeletons")
	}

	n, err := c.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected 1 cached file, got %d", n)
	}
}
