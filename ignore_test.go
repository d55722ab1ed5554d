package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writeTestFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func TestLoadIgnoreRulesMissingFiles(t *testing.T) {
	dir := t.TempDir()

	rules, err := loadIgnoreRules(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("loadIgnoreRules: %v", err)
	}
	if len(rules) != 0 {
		t.Fatalf("expected no rules, got %d", len(rules))
	}
}

func TestLoadIgnoreRulesOverrideOrder(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, gitIgnoreFileName, "*.log\n")
	writeTestFile(t, dir, preludeIgnoreFileName, "!keep.log\n")

	rules, err := loadIgnoreRules(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("loadIgnoreRules: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}

	matcher, err := compileIgnoreMatcher(rules, false)
	if err != nil {
		t.Fatalf("compileIgnoreMatcher: %v", err)
	}

	if !matcher.Excluded("debug.log", false) {
		t.Errorf("debug.log must be excluded by the generic ignore file")
	}
	if matcher.Excluded("keep.log", false) {
		t.Errorf("keep.log must be re-included by the tool-specific override")
	}
}

func TestIgnoreMatcherCaseToggle(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, gitIgnoreFileName, "foo.txt\n")

	rules, err := loadIgnoreRules(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("loadIgnoreRules: %v", err)
	}

	insensitive, err := compileIgnoreMatcher(rules, false)
	if err != nil {
		t.Fatalf("compileIgnoreMatcher: %v", err)
	}
	if !insensitive.Excluded("Foo.txt", false) {
		t.Errorf("default mode must exclude Foo.txt for pattern foo.txt")
	}

	sensitive, err := compileIgnoreMatcher(rules, true)
	if err != nil {
		t.Fatalf("compileIgnoreMatcher: %v", err)
	}
	if sensitive.Excluded("Foo.txt", false) {
		t.Errorf("case-sensitive mode must keep Foo.txt for pattern foo.txt")
	}
	if !sensitive.Excluded("foo.txt", false) {
		t.Errorf("case-sensitive mode must still exclude an exact match")
	}
}
