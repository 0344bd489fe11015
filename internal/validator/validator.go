// Package validator runs the quality rule set over RUNE spec text and
// produces diagnostic reports. Unlike the parser's structural tier it never
// raises for malformed content below the root shape: every finding lands in
// the report as exactly one error, warning, or suggestion, and evaluation
// always runs to completion.
package validator

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/runestone-dev/runestone/internal/spec"
)

var (
	requiredFields     = []string{"meta", "RUNE", "SIGNATURE", "INTENT", "BEHAVIOR", "TESTS"}
	requiredMetaFields = []string{"name", "language"}
	optionalFields     = []string{"CONSTRAINTS", "EDGE_CASES", "DEPENDENCIES", "EXAMPLES", "COMPLEXITY"}

	listFields = map[string]bool{
		"BEHAVIOR":     true,
		"TESTS":        true,
		"CONSTRAINTS":  true,
		"EDGE_CASES":   true,
		"DEPENDENCIES": true,
		"EXAMPLES":     true,
	}

	signatureKeywords = []string{"def ", "func ", "function ", "class ", "fn ", "pub ", "async "}
)

// Validator evaluates spec documents against the quality rule set. In
// strict mode the optional fields are additionally treated as expected.
// A Validator holds no per-call state; construct one per call site.
type Validator struct {
	fs     afero.Fs
	strict bool
}

// New returns a Validator reading files through the OS filesystem.
func New(strict bool) *Validator {
	return NewWithFs(afero.NewOsFs(), strict)
}

// NewWithFs returns a Validator reading files through fs.
func NewWithFs(fs afero.Fs, strict bool) *Validator {
	return &Validator{fs: fs, strict: strict}
}

// ValidateText evaluates spec text and returns the full report. A decode
// failure or non-mapping root short-circuits into a single-error report;
// otherwise every rule runs and accumulates findings without stopping.
func (v *Validator) ValidateText(text string) *Report {
	report := newReport()

	data, err := spec.DecodeMapping(text)
	if err != nil {
		var shapeErr *spec.ShapeError
		if errors.As(err, &shapeErr) {
			report.Errors = append(report.Errors, "Spec must be a YAML mapping, got "+shapeErr.Shape)
		} else {
			report.Errors = append(report.Errors, err.Error())
		}
		return report
	}

	v.checkRequired(data, report)
	v.checkMeta(data, report)
	v.checkRune(data, report)
	v.checkSignature(data, report)
	v.checkIntent(data, report)
	v.checkBehavior(data, report)
	v.checkTests(data, report)
	v.checkOptional(data, report)

	report.Valid = len(report.Errors) == 0
	report.Summary = summarize(report)
	return report
}

// ValidateFile validates the spec file at path. A missing file fails with an
// error wrapping spec.ErrSpecNotFound. Blank content short-circuits to a
// single "File is empty" error without touching the decoder; otherwise the
// report carries the path and, when the extension is not the canonical one,
// an advisory warning.
func (v *Validator) ValidateFile(path string) (*Report, error) {
	exists, err := afero.Exists(v.fs, path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", spec.ErrSpecNotFound, path)
	}

	data, err := afero.ReadFile(v.fs, path)
	if err != nil {
		return nil, err
	}

	content := string(data)
	if strings.TrimSpace(content) == "" {
		report := newReport()
		report.Errors = append(report.Errors, "File is empty")
		report.Filepath = path
		return report, nil
	}

	report := v.ValidateText(content)
	report.Filepath = path
	if ext := filepath.Ext(path); ext != spec.Extension {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("File extension is '%s', expected '%s'", ext, spec.Extension))
	}
	return report, nil
}

func (v *Validator) checkRequired(data map[string]any, report *Report) {
	for _, field := range requiredFields {
		value, present := data[field]
		info := FieldInfo{Present: present}
		if present {
			if listFields[field] {
				if list, ok := value.([]any); ok {
					n := len(list)
					info.Count = &n
				}
			}
		} else {
			report.Errors = append(report.Errors, "Missing required field: "+field)
		}
		report.FieldSummary[field] = info
	}
}

func (v *Validator) checkMeta(data map[string]any, report *Report) {
	value, present := data["meta"]
	if !present || value == nil {
		return
	}

	meta, ok := spec.AsMapping(value)
	if !ok {
		report.Errors = append(report.Errors, "meta must be a mapping")
		return
	}

	for _, mf := range requiredMetaFields {
		if _, ok := meta[mf]; !ok {
			report.Errors = append(report.Errors, "Missing required meta field: meta."+mf)
		}
	}

	lang := spec.Stringify(meta["language"])
	if lang != "" && !spec.IsSupportedLanguage(lang) {
		// Softer than the parser's structural check on purpose.
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("Unrecognized language '%s' (supported: %s)",
				lang, strings.Join(spec.SupportedLanguageList(), ", ")))
	}

	name := spec.Stringify(meta["name"])
	if name != "" && !spec.IdentifierRe.MatchString(name) {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("meta.name '%s' is not a valid identifier", name))
	}
}

func (v *Validator) checkRune(data map[string]any, report *Report) {
	runeName := spec.Stringify(data["RUNE"])
	if runeName != "" && !spec.IdentifierRe.MatchString(runeName) {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("RUNE value '%s' is not a valid identifier", runeName))
	}
}

func (v *Validator) checkSignature(data map[string]any, report *Report) {
	sig, isString := data["SIGNATURE"].(string)
	if isString && strings.TrimSpace(sig) != "" {
		lower := strings.ToLower(strings.TrimSpace(sig))
		found := false
		for _, kw := range signatureKeywords {
			if strings.Contains(lower, kw) {
				found = true
				break
			}
		}
		if !found {
			report.Warnings = append(report.Warnings,
				"SIGNATURE may not use target language syntax (no function/class keyword found)")
		}
	} else if _, present := data["SIGNATURE"]; present {
		report.Errors = append(report.Errors, "SIGNATURE must be a non-empty string")
	}
}

func (v *Validator) checkIntent(data map[string]any, report *Report) {
	intent, isString := data["INTENT"].(string)
	if isString && strings.TrimSpace(intent) != "" {
		sentences := 0
		for _, part := range strings.Split(strings.TrimSpace(intent), ".") {
			if strings.TrimSpace(part) != "" {
				sentences++
			}
		}
		if sentences > 5 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("INTENT has %d sentences (recommended: 1-3)", sentences))
		}
	} else if _, present := data["INTENT"]; present {
		report.Errors = append(report.Errors, "INTENT must be a non-empty string")
	}
}

func (v *Validator) checkBehavior(data map[string]any, report *Report) {
	value, present := data["BEHAVIOR"]
	if !present {
		value = []any{}
	}

	list, ok := value.([]any)
	if !ok {
		report.Errors = append(report.Errors, "BEHAVIOR must be a list")
		return
	}

	if len(list) == 0 {
		report.Errors = append(report.Errors, "BEHAVIOR must have at least one entry")
		return
	}

	for _, entry := range list {
		s := spec.Stringify(entry)
		if strings.Contains(s, "WHEN") && strings.Contains(s, "THEN") {
			return
		}
	}
	report.Suggestions = append(report.Suggestions,
		"Consider using WHEN/THEN format in BEHAVIOR for clarity")
}

func (v *Validator) checkTests(data map[string]any, report *Report) {
	value, present := data["TESTS"]
	if !present {
		value = []any{}
	}

	list, ok := value.([]any)
	if !ok {
		report.Errors = append(report.Errors, "TESTS must be a list")
		return
	}

	switch {
	case len(list) == 0:
		report.Errors = append(report.Errors, "TESTS must have at least one test case")
	case len(list) < 3:
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("TESTS has %d cases (recommended minimum: 3)", len(list)))
		report.Suggestions = append(report.Suggestions,
			"Add test cases for: happy path, boundary conditions, and error cases")
	}
}

func (v *Validator) checkOptional(data map[string]any, report *Report) {
	for _, field := range optionalFields {
		value, present := data[field]
		info := FieldInfo{Present: present}
		if present {
			if listFields[field] {
				if list, ok := value.([]any); ok {
					n := len(list)
					info.Count = &n
				}
			} else if field == "COMPLEXITY" {
				if m, ok := spec.AsMapping(value); ok {
					info.Keys = sortedKeys(m)
				}
			}
		} else if v.strict {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Missing optional field: %s (required in strict mode)", field))
		}
		report.FieldSummary[field] = info
	}

	if !v.strict {
		return
	}

	edgeCases, present := data["EDGE_CASES"]
	if !present {
		edgeCases = []any{}
	}
	if list, ok := edgeCases.([]any); ok && len(list) < 2 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("EDGE_CASES has %d entries (strict minimum: 2)", len(list)))
	}

	examples, present := data["EXAMPLES"]
	if !present {
		examples = []any{}
	}
	if list, ok := examples.([]any); ok && len(list) < 1 {
		report.Warnings = append(report.Warnings,
			"EXAMPLES should have at least 1 entry in strict mode")
	}
}

func summarize(report *Report) string {
	var summary string
	if report.Valid {
		summary = "Valid RUNE specification"
	} else {
		summary = fmt.Sprintf("Invalid: %d error(s)", len(report.Errors))
	}
	if len(report.Warnings) > 0 {
		summary += fmt.Sprintf(", %d warning(s)", len(report.Warnings))
	}
	return summary
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
