// Package parser turns raw RUNE spec text into spec.Spec values. Parsing is
// maximally permissive: any text that decodes to a mapping yields a usable
// Spec, and only undecodable text or a wrong root shape is a hard failure.
// The stricter quality checks live in internal/validator.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/runestone-dev/runestone/internal/spec"
)

// metaKeys are the recognized meta sub-keys; anything else lands in Extra.
var metaKeys = map[string]bool{
	"name":       true,
	"language":   true,
	"version":    true,
	"tags":       true,
	"agent":      true,
	"mcp_server": true,
}

// Parser builds Spec values from text or files. It carries no state between
// calls; construct one wherever needed.
type Parser struct {
	fs afero.Fs
}

// New returns a Parser reading files through the OS filesystem.
func New() *Parser {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs returns a Parser reading files through fs.
func NewWithFs(fs afero.Fs) *Parser {
	return &Parser{fs: fs}
}

// Parse decodes spec text into a Spec. It fails with a ParseError when the
// text is blank, when the YAML decode errors, or when the decoded root is
// not a mapping. Past that point the build always succeeds: missing or
// malformed sub-structure defaults to empty values.
func (p *Parser) Parse(text string) (*spec.Spec, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Kind: KindEmptyContent, Message: "Spec content is empty"}
	}

	data, err := spec.DecodeMapping(text)
	if err != nil {
		var yamlErr *spec.YAMLError
		if errors.As(err, &yamlErr) {
			return nil, &ParseError{Kind: KindInvalidYAML, Message: yamlErr.Error(), Err: yamlErr.Err}
		}
		var shapeErr *spec.ShapeError
		if errors.As(err, &shapeErr) {
			return nil, &ParseError{Kind: KindWrongShape, Message: shapeErr.Error()}
		}
		return nil, &ParseError{Kind: KindInvalidYAML, Message: err.Error(), Err: err}
	}

	return build(data), nil
}

// ParseFile reads the file at path and delegates to Parse. A missing file
// fails with an error wrapping spec.ErrSpecNotFound.
func (p *Parser) ParseFile(path string) (*spec.Spec, error) {
	exists, err := afero.Exists(p.fs, path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", spec.ErrSpecNotFound, path)
	}

	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, err
	}
	return p.Parse(string(data))
}

// Validate runs the minimal structural checks over a parsed Spec and returns
// the error messages in a fixed order; an empty slice means the spec is
// structurally sound. Note that an unsupported meta.language is an error at
// this tier while the quality validator treats it as a warning; the two
// tiers deliberately disagree.
func (p *Parser) Validate(s *spec.Spec) []string {
	var errs []string

	if s.Meta.Name == "" {
		errs = append(errs, "meta.name is required")
	}
	if s.Meta.Language == "" {
		errs = append(errs, "meta.language is required")
	} else if !spec.IsSupportedLanguage(s.Meta.Language) {
		errs = append(errs, fmt.Sprintf("Unsupported language: %s", s.Meta.Language))
	}
	if s.Rune == "" {
		errs = append(errs, "RUNE field is required")
	}
	if strings.TrimSpace(s.Signature) == "" {
		errs = append(errs, "SIGNATURE is required")
	}
	if strings.TrimSpace(s.Intent) == "" {
		errs = append(errs, "INTENT is required")
	}
	if len(s.Behavior) == 0 {
		errs = append(errs, "BEHAVIOR must have at least one entry")
	}
	if len(s.Tests) == 0 {
		errs = append(errs, "TESTS must have at least one entry")
	}

	return errs
}

func build(data map[string]any) *spec.Spec {
	rawMeta, ok := spec.AsMapping(data["meta"])
	if !ok {
		rawMeta = map[string]any{}
	}

	meta := spec.Meta{
		Name:      spec.Stringify(rawMeta["name"]),
		Language:  spec.Stringify(rawMeta["language"]),
		Version:   stringifyOr(rawMeta["version"], "1.0"),
		Tags:      spec.ToStringList(rawMeta["tags"]),
		Agent:     spec.Stringify(rawMeta["agent"]),
		MCPServer: spec.Stringify(rawMeta["mcp_server"]),
		Extra:     map[string]any{},
	}
	for k, v := range rawMeta {
		if !metaKeys[k] {
			meta.Extra[k] = v
		}
	}

	rawComplexity, ok := spec.AsMapping(data["COMPLEXITY"])
	if !ok {
		rawComplexity = map[string]any{}
	}
	complexity := spec.Complexity{
		Time:  spec.Stringify(rawComplexity["time"]),
		Space: spec.Stringify(rawComplexity["space"]),
	}

	return &spec.Spec{
		Meta:         meta,
		Rune:         spec.Stringify(data["RUNE"]),
		Signature:    strings.TrimSpace(spec.Stringify(data["SIGNATURE"])),
		Intent:       strings.TrimSpace(spec.Stringify(data["INTENT"])),
		Behavior:     spec.ToStringList(data["BEHAVIOR"]),
		Tests:        spec.ToStringList(data["TESTS"]),
		Constraints:  spec.ToStringList(data["CONSTRAINTS"]),
		EdgeCases:    spec.ToStringList(data["EDGE_CASES"]),
		Dependencies: spec.ToStringList(data["DEPENDENCIES"]),
		Examples:     spec.ToStringList(data["EXAMPLES"]),
		Complexity:   complexity,
		Raw:          data,
	}
}

func stringifyOr(value any, fallback string) string {
	if value == nil {
		return fallback
	}
	return spec.Stringify(value)
}
