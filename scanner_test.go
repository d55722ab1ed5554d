package main

import (
	"testing"

	"github.com/woozymasta/pathrules"
	"go.uber.org/zap"
)

func relPaths(entries []WalkEntry) []string {
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, entry.RelPath)
	}
	return paths
}

func containsPath(entries []WalkEntry, rel string) bool {
	for _, entry := range entries {
		if entry.RelPath == rel {
			return true
		}
	}
	return false
}

func mustMatcher(t *testing.T, rulesText string, caseSensitive bool) *pathrules.Matcher {
	t.Helper()
	rules, err := pathrules.ParseRulesString(rulesText)
	if err != nil {
		t.Fatalf("ParseRulesString: %v", err)
	}
	matcher, err := compileIgnoreMatcher(rules, caseSensitive)
	if err != nil {
		t.Fatalf("compileIgnoreMatcher: %v", err)
	}
	return matcher
}

func TestWalkTreeSkipsHidden(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "a.txt", "a")
	writeTestFile(t, root, ".hidden.txt", "h")
	writeTestFile(t, root, ".hiddendir/b.txt", "b")

	entries, err := walkTree(root, walkOptions{}, zap.NewNop())
	if err != nil {
		t.Fatalf("walkTree: %v", err)
	}

	if len(entries) != 1 || entries[0].RelPath != "a.txt" {
		t.Fatalf("expected exactly a.txt, got %v", relPaths(entries))
	}
	if !entries[0].IsRegular {
		t.Errorf("a.txt must be classified as a regular file")
	}
}

func TestWalkTreeFilteredPrunesDirectories(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "build/x.txt", "x")
	writeTestFile(t, root, "src/y.txt", "y")

	matcher := mustMatcher(t, "build/\n", false)

	unfiltered, err := walkTree(root, walkOptions{}, zap.NewNop())
	if err != nil {
		t.Fatalf("unfiltered walkTree: %v", err)
	}
	filtered, err := walkTree(root, walkOptions{ignore: matcher}, zap.NewNop())
	if err != nil {
		t.Fatalf("filtered walkTree: %v", err)
	}

	for _, rel := range []string{"build", "build/x.txt", "src", "src/y.txt"} {
		if !containsPath(unfiltered, rel) {
			t.Errorf("unfiltered walk missing %s", rel)
		}
	}
	if containsPath(filtered, "build") || containsPath(filtered, "build/x.txt") {
		t.Errorf("filtered walk must prune build/ entirely, got %v", relPaths(filtered))
	}
	if !containsPath(filtered, "src/y.txt") {
		t.Errorf("filtered walk must keep src/y.txt, got %v", relPaths(filtered))
	}
}

func TestWalkTreeMissingRoot(t *testing.T) {
	if _, err := walkTree(t.TempDir()+"/does-not-exist", walkOptions{}, zap.NewNop()); err == nil {
		t.Fatalf("expected error for missing root")
	}
}

func TestResolveRootPathMissing(t *testing.T) {
	if _, err := resolveRootPath(t.TempDir() + "/does-not-exist"); err == nil {
		t.Fatalf("expected error for unresolvable scan root")
	}
}
