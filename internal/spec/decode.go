package spec

import (
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Extension is the canonical file extension for RUNE spec documents.
const Extension = ".rune"

// ErrSpecNotFound is wrapped by file-level operations when the given
// path does not exist.
var ErrSpecNotFound = errors.New("spec file not found")

// YAMLError wraps a decoder failure. The decoder's own message is preserved
// so diagnostics can surface the exact syntax problem.
type YAMLError struct {
	Err error
}

func (e *YAMLError) Error() string { return "Invalid YAML: " + e.Err.Error() }

func (e *YAMLError) Unwrap() error { return e.Err }

// ShapeError reports a document whose root decoded to something other than
// a mapping. Shape names the decoded form: "list", "scalar", or "null".
type ShapeError struct {
	Shape string
}

func (e *ShapeError) Error() string { return "Expected YAML mapping, got " + e.Shape }

// DecodeMapping decodes spec text into a single top-level mapping.
//
// The conventional .rune layout wraps the meta block between `---` markers,
// which YAML reads as a separate document ahead of the remaining keys. The
// delimiters are cosmetic, so the whole stream is decoded and every document
// is merged into one mapping, later keys winning. Empty documents are
// skipped; a document of any other shape fails with a ShapeError, and a
// syntax failure with a YAMLError.
func DecodeMapping(text string) (map[string]any, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))
	merged := map[string]any{}
	seen := false

	for {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &YAMLError{Err: err}
		}
		if doc == nil {
			continue
		}
		m, ok := AsMapping(doc)
		if !ok {
			return nil, &ShapeError{Shape: ShapeOf(doc)}
		}
		for k, v := range m {
			merged[k] = v
		}
		seen = true
	}

	if !seen {
		return nil, &ShapeError{Shape: "null"}
	}
	return merged, nil
}

// AsMapping converts a decoded value to a string-keyed mapping when its
// underlying form allows it.
func AsMapping(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[Stringify(k)] = v
		}
		return out, true
	default:
		return nil, false
	}
}

// ShapeOf names the decoded form of a YAML value for diagnostics.
func ShapeOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any, map[any]any:
		return "mapping"
	case []any:
		return "list"
	default:
		return "scalar"
	}
}
