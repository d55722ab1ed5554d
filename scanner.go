package main

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/woozymasta/pathrules"
	"go.uber.org/zap"
)

// walkOptions selects which filters a traversal applies. The unfiltered
// traversal carries only the git filter; the filtered traversal additionally
// carries the compiled ignore matcher. Keeping the git filter in both is what
// makes the later reconciliation meaningful: the diff then isolates exactly
// the paths excluded by ignore rules.
type walkOptions struct {
	git    *gitFilter
	ignore *pathrules.Matcher
}

// walkTree traverses the tree rooted at root and returns the surviving
// entries. Hidden entries (dot-prefixed names, including .git) are skipped in
// every traversal. Directories excluded by a filter are pruned so their
// contents never surface. An unreadable entry is reported and skipped; only a
// failure on the root itself aborts the walk.
func walkTree(root string, opts walkOptions, logger *zap.Logger) ([]WalkEntry, error) {
	var entries []WalkEntry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			logger.Warn("skipping unreadable entry",
				zap.String("path", path),
				zap.Error(walkErr))
			return nil
		}
		if path == root {
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			logger.Warn("skipping entry outside root",
				zap.String("path", path),
				zap.Error(relErr))
			return nil
		}
		relPath = filepath.ToSlash(relPath)
		isDir := d.IsDir()

		if isHidden(d.Name()) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		if opts.git != nil {
			if isDir {
				if opts.git.excludesDir(relPath) {
					return fs.SkipDir
				}
			} else if !opts.git.visibleFile(relPath) {
				return nil
			}
		}

		if opts.ignore != nil && opts.ignore.Excluded(relPath, isDir) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		entries = append(entries, WalkEntry{
			AbsPath:   path,
			RelPath:   relPath,
			IsDir:     isDir,
			IsRegular: d.Type().IsRegular(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// isHidden reports whether a base name refers to a hidden entry.
func isHidden(name string) bool {
	return name != "." && name != ".." && strings.HasPrefix(name, ".")
}
