package validator

import (
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/runestone-dev/runestone/internal/spec"
)

// DiscoverSpecs returns the paths of every spec file under dir, recursively,
// in lexicographically sorted order. A directory with no matching files
// yields an empty slice.
func DiscoverSpecs(fs afero.Fs, dir string) ([]string, error) {
	rooted := afero.NewIOFS(afero.NewBasePathFs(fs, dir))
	matches, err := doublestar.Glob(rooted, "**/*"+spec.Extension)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(dir, filepath.FromSlash(m)))
	}
	sort.Strings(paths)
	return paths, nil
}

// ValidateDirectory validates every spec file under dir. Files are
// independent, so they are validated concurrently, but the returned reports
// preserve the deterministic sorted-path order. An empty directory yields an
// empty list, never an error.
func (v *Validator) ValidateDirectory(dir string) ([]*Report, error) {
	paths, err := DiscoverSpecs(v.fs, dir)
	if err != nil {
		return nil, err
	}

	reports := make([]*Report, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			report, err := v.ValidateFile(path)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
