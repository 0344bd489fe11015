package spec

import (
	"testing"
)

func TestSpecName(t *testing.T) {
	s := &Spec{Rune: "top", Meta: Meta{Name: "meta"}}
	if got := s.Name(); got != "top" {
		t.Errorf("Name() = %q, want top", got)
	}

	s = &Spec{Meta: Meta{Name: "meta"}}
	if got := s.Name(); got != "meta" {
		t.Errorf("Name() = %q, want meta fallback", got)
	}
}

func TestSpecIsAsync(t *testing.T) {
	tests := []struct {
		signature string
		want      bool
	}{
		{"async def fetch(url)", true},
		{"fetch(url)", false},
		{"do_async_work(x)", false},
		{"casync ly(x)", true}, // substring heuristic, false positive kept
	}
	for _, tt := range tests {
		s := &Spec{Signature: tt.signature}
		if got := s.IsAsync(); got != tt.want {
			t.Errorf("IsAsync(%q) = %v, want %v", tt.signature, got, tt.want)
		}
	}
}

func TestSpecTests(t *testing.T) {
	s := &Spec{}
	if s.HasTests() {
		t.Error("HasTests() true for empty spec")
	}
	s.Tests = []string{"a", "b"}
	if !s.HasTests() || s.TestCount() != 2 {
		t.Errorf("HasTests/TestCount = %v/%d, want true/2", s.HasTests(), s.TestCount())
	}
}

func TestSpecToMap(t *testing.T) {
	s := &Spec{
		Meta: Meta{
			Name:     "calc",
			Language: "go",
			Version:  "1.0",
			Tags:     []string{"math"},
		},
		Rune:      "calc",
		Signature: "calc(x int) int",
		Intent:    "Compute.",
		Behavior:  []string{"WHEN x THEN y"},
		Tests:     []string{"calc(1) == 1"},
		Complexity: Complexity{
			Time: "O(1)",
		},
	}

	m := s.ToMap()
	if m["RUNE"] != "calc" {
		t.Errorf("RUNE = %v", m["RUNE"])
	}

	meta, ok := m["meta"].(map[string]any)
	if !ok {
		t.Fatalf("meta has wrong type: %T", m["meta"])
	}
	if meta["language"] != "go" {
		t.Errorf("meta.language = %v", meta["language"])
	}
	if _, present := meta["agent"]; present {
		t.Error("absent agent serialized")
	}

	if _, present := m["CONSTRAINTS"]; present {
		t.Error("absent CONSTRAINTS serialized")
	}

	complexity, ok := m["COMPLEXITY"].(map[string]any)
	if !ok {
		t.Fatalf("COMPLEXITY has wrong type: %T", m["COMPLEXITY"])
	}
	if complexity["time"] != "O(1)" {
		t.Errorf("COMPLEXITY.time = %v", complexity["time"])
	}
	if _, present := complexity["space"]; present {
		t.Error("absent space serialized")
	}
}

func TestIsSupportedLanguage(t *testing.T) {
	for _, lang := range []string{"python", "go", "rust", "kotlin"} {
		if !IsSupportedLanguage(lang) {
			t.Errorf("IsSupportedLanguage(%q) = false", lang)
		}
	}
	for _, lang := range []string{"", "cobol", "Python", "GO"} {
		if IsSupportedLanguage(lang) {
			t.Errorf("IsSupportedLanguage(%q) = true", lang)
		}
	}
}

func TestIdentifierRe(t *testing.T) {
	valid := []string{"a", "_x", "snake_case", "CamelCase", "x1"}
	invalid := []string{"", "1x", "with-dash", "with space", "fn()"}

	for _, id := range valid {
		if !IdentifierRe.MatchString(id) {
			t.Errorf("%q should match", id)
		}
	}
	for _, id := range invalid {
		if IdentifierRe.MatchString(id) {
			t.Errorf("%q should not match", id)
		}
	}
}
