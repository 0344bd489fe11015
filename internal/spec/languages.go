package spec

import (
	"regexp"
	"sort"
)

// SupportedLanguages is the fixed set of target languages a spec may
// declare in meta.language.
var SupportedLanguages = map[string]bool{
	"python":     true,
	"typescript": true,
	"javascript": true,
	"go":         true,
	"rust":       true,
	"java":       true,
	"csharp":     true,
	"cpp":        true,
	"c":          true,
	"ruby":       true,
	"php":        true,
	"swift":      true,
	"kotlin":     true,
}

// IdentifierRe matches a bare identifier: a letter or underscore followed
// by letters, digits, or underscores.
var IdentifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// IsSupportedLanguage reports whether lang is in the supported set.
func IsSupportedLanguage(lang string) bool {
	return SupportedLanguages[lang]
}

// SupportedLanguageList returns the supported languages in sorted order
// for use in diagnostic messages.
func SupportedLanguageList() []string {
	list := make([]string, 0, len(SupportedLanguages))
	for lang := range SupportedLanguages {
		list = append(list, lang)
	}
	sort.Strings(list)
	return list
}
