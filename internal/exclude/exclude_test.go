package exclude

import "testing"

func TestSkipDir(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"target", true},
		{"build", true},
		{"node_modules", true},
		{"vendor", true},
		{".git", true},
		{".cohrep", true},
		{"src", false},
		{"main", false},
		{".", false},
	}

	for _, tt := range tests {
		if got := SkipDir(tt.name); got != tt.expected {
			t.Errorf("SkipDir(%q) = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestMatcherGlobs(t *testing.T) {
	m, err := NewMatcher([]string{"**/generated/**", "src/test/**"})
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}

	tests := []struct {
		path     string
		expected bool
	}{
		{"src/main/generated/Foo.java", true},
		{"src/test/java/FooTest.java", true},
		{"src/main/java/Foo.java", false},
		{"Foo.java", false},
	}

	for _, tt := range tests {
		if got := m.Match(tt.path); got != tt.expected {
			t.Errorf("Match(%q) = %v, expected %v", tt.path, got, tt.expected)
		}
	}
}

func TestMatcherInvalidPattern(t *testing.T) {
	_, err := NewMatcher([]string{"[unclosed"})
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestMatcherEmpty(t *testing.T) {
	m, err := NewMatcher(nil)
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}
	if m.Match("src/main/java/Foo.java") {
		t.Error("empty matcher should not match anything")
	}
}
