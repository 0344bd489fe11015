package spec

import (
	"github.com/spf13/afero"

	"github.com/runestone-dev/runestone/internal/parser"
	"github.com/runestone-dev/runestone/internal/validator"
)

// Listing is one entry in a directory listing. A file that fails to
// parse is still listed, with Error set instead of the spec fields.
type Listing struct {
	Filepath string `json:"filepath"`
	Name     string `json:"name,omitempty"`
	Language string `json:"language,omitempty"`
	Intent   string `json:"intent,omitempty"`
	Tests    int    `json:"tests"`
	Error    string `json:"error,omitempty"`
}

const intentPreviewLen = 120

// ListSpecs builds a listing for every spec file under dir, in sorted
// path order. Per-file parse failures never abort the listing.
func ListSpecs(fs afero.Fs, dir string) ([]Listing, error) {
	paths, err := validator.DiscoverSpecs(fs, dir)
	if err != nil {
		return nil, err
	}

	p := parser.NewWithFs(fs)
	listings := make([]Listing, 0, len(paths))
	for _, path := range paths {
		entry := Listing{Filepath: path}
		s, err := p.ParseFile(path)
		if err != nil {
			entry.Error = err.Error()
		} else {
			entry.Name = s.Name()
			entry.Language = s.Language()
			entry.Intent = truncateIntent(s.Intent)
			entry.Tests = s.TestCount()
		}
		listings = append(listings, entry)
	}
	return listings, nil
}

func truncateIntent(intent string) string {
	if len(intent) <= intentPreviewLen {
		return intent
	}
	return intent[:intentPreviewLen] + "..."
}
