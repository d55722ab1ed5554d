package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// selectFilesInteractively runs a fuzzy multi-select over the sorted file set
// and returns the chosen subset in its original sorted order. Aborting the
// finder (Esc) returns a nil slice with no error so the caller can exit
// cleanly without producing a prompt.
func selectFilesInteractively(root string, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files to select from")
	}

	indices, err := fuzzyfinder.FindMulti(
		paths,
		func(i int) string {
			return paths[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select files to include in the prompt. Tab to multi-select, Enter to confirm."
			}
			fullPath := filepath.Join(root, filepath.FromSlash(paths[i]))
			info, statErr := os.Stat(fullPath)
			if statErr != nil {
				return fmt.Sprintf("Path: %s\nError getting info: %v", paths[i], statErr)
			}
			return fmt.Sprintf("Path: %s\nSize: %d bytes", paths[i], info.Size())
		}),
	)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return nil, nil
		}
		return nil, fmt.Errorf("fuzzy finder error: %w", err)
	}

	sort.Ints(indices)
	selected := make([]string, len(indices))
	for i, index := range indices {
		selected[i] = paths[index]
	}
	return selected, nil
}
