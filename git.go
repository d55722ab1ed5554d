package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"go.uber.org/zap"
)

// gitFilter restricts traversals to files visible to git: entries tracked in
// the repository index, minus anything matched by the global, system, or
// info/exclude pattern sets. It is applied identically to both traversals so
// untracked files never show up spuriously as "ignored".
type gitFilter struct {
	tracked map[string]struct{} // scan-root-relative slash paths from the index
	matcher gitignore.Matcher
	prefix  []string // scan root's path components below the worktree root
}

// newGitFilter opens the repository enclosing root and builds the filter.
// Running git-only mode outside a repository is an error: there is no tracked
// set to honor.
func newGitFilter(root string, logger *zap.Logger) (*gitFilter, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("git-only mode: opening repository at %s: %w", root, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("git-only mode: resolving worktree: %w", err)
	}
	worktreeRoot := worktree.Filesystem.Root()

	rootRel, err := filepath.Rel(worktreeRoot, root)
	if err != nil || strings.HasPrefix(rootRel, "..") {
		return nil, fmt.Errorf("git-only mode: scan root %s is outside worktree %s", root, worktreeRoot)
	}
	rootRel = filepath.ToSlash(rootRel)

	index, err := repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("git-only mode: reading index: %w", err)
	}

	tracked := make(map[string]struct{}, len(index.Entries))
	for _, entry := range index.Entries {
		name := entry.Name
		if rootRel != "." {
			if !strings.HasPrefix(name, rootRel+"/") {
				continue
			}
			name = strings.TrimPrefix(name, rootRel+"/")
		}
		tracked[name] = struct{}{}
	}

	var prefix []string
	if rootRel != "." {
		prefix = strings.Split(rootRel, "/")
	}

	return &gitFilter{
		tracked: tracked,
		matcher: gitignore.NewMatcher(loadGitExcludePatterns(worktreeRoot, logger)),
		prefix:  prefix,
	}, nil
}

// loadGitExcludePatterns gathers the repository's .gitignore and info/exclude
// patterns plus the user's global and system excludes. Failures here degrade
// to fewer patterns, never to an aborted run.
func loadGitExcludePatterns(worktreeRoot string, logger *zap.Logger) []gitignore.Pattern {
	var patterns []gitignore.Pattern

	repoPatterns, err := gitignore.ReadPatterns(osfs.New(worktreeRoot), nil)
	if err != nil {
		logger.Warn("could not read repository exclude patterns", zap.Error(err))
	}
	patterns = append(patterns, repoPatterns...)

	globalPatterns, err := gitignore.LoadGlobalPatterns(osfs.New("/"))
	if err != nil {
		logger.Warn("could not read global git excludes", zap.Error(err))
	}
	patterns = append(patterns, globalPatterns...)

	systemPatterns, err := gitignore.LoadSystemPatterns(osfs.New("/"))
	if err != nil {
		logger.Warn("could not read system git excludes", zap.Error(err))
	}
	patterns = append(patterns, systemPatterns...)

	return patterns
}

// visibleFile reports whether the root-relative file path is tracked.
func (f *gitFilter) visibleFile(relPath string) bool {
	_, ok := f.tracked[relPath]
	return ok
}

// excludesDir reports whether the root-relative directory is matched by the
// git exclude pattern sets and can be pruned from traversal.
func (f *gitFilter) excludesDir(relPath string) bool {
	return f.matcher.Match(f.worktreePath(relPath), true)
}

// worktreePath converts a scan-root-relative path into the worktree-relative
// component slice the gitignore matcher expects.
func (f *gitFilter) worktreePath(relPath string) []string {
	return append(append([]string{}, f.prefix...), strings.Split(relPath, "/")...)
}
