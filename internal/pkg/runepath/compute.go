// Package runepath computes filesystem-safe filenames for generated spec
// documents.
package runepath

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/runestone-dev/runestone/internal/spec"
)

const (
	maxSlugLen   = 64
	fallbackSlug = "spec"
)

// Slugify converts a rune name into a file stem: NFKC normalization,
// lowercasing, and filtering to [a-z0-9_-] with runs of other characters
// collapsed into a single hyphen. An empty result falls back to "spec".
func Slugify(name string) string {
	name = strings.ToLower(norm.NFKC.String(name))

	var b strings.Builder
	pendingHyphen := false
	for _, r := range name {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-'
		if ok {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxSlugLen {
		slug = strings.Trim(slug[:maxSlugLen], "-")
	}
	if slug == "" {
		return fallbackSlug
	}
	return slug
}

// Filename returns the canonical spec filename for a rune name.
func Filename(name string) string {
	return Slugify(name) + spec.Extension
}
