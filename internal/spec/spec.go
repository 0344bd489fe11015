// Package spec defines the RUNE specification model: the typed entities a
// parsed document maps onto, the value coercion rules shared by every
// list-shaped field, and the YAML mapping decode both checking tiers build on.
package spec

import "strings"

// Meta holds the metadata block of a RUNE spec.
type Meta struct {
	Name      string
	Language  string
	Version   string
	Tags      []string
	Agent     string
	MCPServer string
	// Extra preserves unrecognized meta keys verbatim so documents written
	// by newer tooling survive a parse unchanged.
	Extra map[string]any
}

// Complexity records optional time/space complexity annotations. Either
// side may be absent independently.
type Complexity struct {
	Time  string
	Space string
}

// Spec is the parsed representation of a RUNE specification document.
// A Spec is immutable once built.
type Spec struct {
	Meta         Meta
	Rune         string
	Signature    string
	Intent       string
	Behavior     []string
	Tests        []string
	Constraints  []string
	EdgeCases    []string
	Dependencies []string
	Examples     []string
	Complexity   Complexity
	// Raw is the decoded document mapping, retained unmodified for
	// diagnostics and round-tripping.
	Raw map[string]any
}

// Name returns the RUNE identifier, falling back to meta.name when the
// top-level RUNE field is empty.
func (s *Spec) Name() string {
	if s.Rune != "" {
		return s.Rune
	}
	return s.Meta.Name
}

// Language returns the declared target language.
func (s *Spec) Language() string {
	return s.Meta.Language
}

// IsAsync reports whether the signature carries an asynchronous marker.
// This is a plain substring check, not a grammar check; downstream tooling
// depends on this exact heuristic, false positives included.
func (s *Spec) IsAsync() bool {
	return strings.Contains(s.Signature, "async ")
}

// HasTests reports whether the spec records any test cases.
func (s *Spec) HasTests() bool {
	return len(s.Tests) > 0
}

// TestCount returns the number of recorded test cases.
func (s *Spec) TestCount() int {
	return len(s.Tests)
}

// ToMap serializes the spec back to a plain mapping holding the required
// fields plus whichever optional fields are present. The result round-trips
// through DecodeMapping without needing the original text.
func (s *Spec) ToMap() map[string]any {
	meta := map[string]any{
		"name":     s.Meta.Name,
		"language": s.Meta.Language,
		"version":  s.Meta.Version,
	}
	if len(s.Meta.Tags) > 0 {
		meta["tags"] = s.Meta.Tags
	}
	if s.Meta.Agent != "" {
		meta["agent"] = s.Meta.Agent
	}
	if s.Meta.MCPServer != "" {
		meta["mcp_server"] = s.Meta.MCPServer
	}

	result := map[string]any{
		"meta":      meta,
		"RUNE":      s.Rune,
		"SIGNATURE": s.Signature,
		"INTENT":    s.Intent,
		"BEHAVIOR":  s.Behavior,
		"TESTS":     s.Tests,
	}
	if len(s.Constraints) > 0 {
		result["CONSTRAINTS"] = s.Constraints
	}
	if len(s.EdgeCases) > 0 {
		result["EDGE_CASES"] = s.EdgeCases
	}
	if len(s.Dependencies) > 0 {
		result["DEPENDENCIES"] = s.Dependencies
	}
	if len(s.Examples) > 0 {
		result["EXAMPLES"] = s.Examples
	}
	if s.Complexity.Time != "" || s.Complexity.Space != "" {
		complexity := map[string]any{}
		if s.Complexity.Time != "" {
			complexity["time"] = s.Complexity.Time
		}
		if s.Complexity.Space != "" {
			complexity["space"] = s.Complexity.Space
		}
		result["COMPLEXITY"] = complexity
	}
	return result
}
