package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// ignoredPaths returns the root-relative paths present in the unfiltered
// traversal but absent from the filtered one: the set excluded specifically by
// ignore rules. Membership is keyed on the relative path, so the difference is
// linear in the number of entries. The result is diagnostic only and never
// feeds the prompt.
func ignoredPaths(unfiltered, filtered []WalkEntry) []string {
	kept := make(map[string]struct{}, len(filtered))
	for _, entry := range filtered {
		kept[entry.RelPath] = struct{}{}
	}

	var ignored []string
	for _, entry := range unfiltered {
		if _, ok := kept[entry.RelPath]; !ok {
			ignored = append(ignored, entry.RelPath)
		}
	}
	return ignored
}

// collectFiles reduces the filtered traversal to the final FileSet: regular
// files only, optionally narrowed by the match pattern, sorted ascending by
// relative path. The sort is the sole source of determinism in the output, so
// repeated runs over an unchanged tree produce byte-identical prompts.
func collectFiles(filtered []WalkEntry, pattern string, caseSensitive bool) ([]string, error) {
	var files []string
	for _, entry := range filtered {
		if !entry.IsRegular {
			continue
		}
		if pattern != "" {
			matched, err := matchesPattern(entry.RelPath, pattern, caseSensitive)
			if err != nil {
				return nil, err
			}
			if !matched {
				continue
			}
		}
		files = append(files, entry.RelPath)
	}

	sort.Strings(files)
	return files, nil
}

// matchesPattern checks the glob against the relative path and, failing that,
// against the basename, honoring the case-sensitivity toggle.
func matchesPattern(relPath, pattern string, caseSensitive bool) (bool, error) {
	candidate := relPath
	if !caseSensitive {
		candidate = strings.ToLower(candidate)
		pattern = strings.ToLower(pattern)
	}

	matched, err := filepath.Match(pattern, candidate)
	if err != nil {
		return false, fmt.Errorf("invalid match pattern %q: %w", pattern, err)
	}
	if matched {
		return true, nil
	}

	matched, err = filepath.Match(pattern, filepath.Base(candidate))
	if err != nil {
		return false, fmt.Errorf("invalid match pattern %q: %w", pattern, err)
	}
	return matched, nil
}
