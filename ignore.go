package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/woozymasta/pathrules"
	"go.uber.org/zap"
)

const (
	gitIgnoreFileName     = ".gitignore"
	preludeIgnoreFileName = ".preludeignore"
)

// loadIgnoreRules reads the generic ignore file and the tool-specific override
// file from dir, returning one ordered rule list. The lookup directory is the
// process working directory, not the scan root, so invoking the tool from
// outside the scanned tree uses the caller's ignore files. The override file
// is appended last so its rules win under last-match-wins evaluation. Missing
// files are not an error.
func loadIgnoreRules(dir string, logger *zap.Logger) ([]pathrules.Rule, error) {
	var sets [][]pathrules.Rule

	for _, name := range []string{gitIgnoreFileName, preludeIgnoreFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("checking ignore file %s: %w", path, err)
		}

		rules, err := pathrules.LoadRulesFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading ignore file %s: %w", path, err)
		}
		logger.Info("found ignore file, applying patterns",
			zap.String("file", name),
			zap.Int("rules", len(rules)))
		sets = append(sets, rules)
	}

	return pathrules.MergeRules(sets...), nil
}

// compileIgnoreMatcher compiles the loaded rules into a matcher. Matching is
// case-insensitive unless caseSensitive is set. With no rules the matcher
// includes everything, leaving filtering to git integration alone.
func compileIgnoreMatcher(rules []pathrules.Rule, caseSensitive bool) (*pathrules.Matcher, error) {
	matcher, err := pathrules.NewMatcher(rules, pathrules.MatcherOptions{
		CaseInsensitive: !caseSensitive,
		DefaultAction:   pathrules.ActionInclude,
	})
	if err != nil {
		return nil, fmt.Errorf("compiling ignore rules: %w", err)
	}
	return matcher, nil
}
