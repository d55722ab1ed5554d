package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	// Scan surface
	scanPath      string
	matchPattern  string
	gitOnly       bool
	caseSensitive bool

	// Output
	outputFile string

	// Extras
	verbose         bool
	interactiveMode bool
	disableTokens   bool
	tokenModel      string
)

// version is the application version, set via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "prelude",
	Short: "prelude bundles a codebase into a single prompt for an LLM chat.",
	Long: `prelude scans a directory tree, applies ignore-file semantics, and
concatenates the surviving text files together with a file tree into one
prompt, delivered to a file or to the clipboard.

Ignore patterns are read from .gitignore and .preludeignore in the current
working directory (not the scan root), with .preludeignore taking precedence.`,
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := setupLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()

		return run(logger)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVarP(&scanPath, "path", "P", ".", "Root directory to scan")
	viper.BindPFlag("path", rootCmd.Flags().Lookup("path"))
	rootCmd.Flags().StringVarP(&outputFile, "file", "F", "", "Save the prompt to this file instead of the clipboard")
	viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	rootCmd.Flags().StringVarP(&matchPattern, "match", "M", "", "Keep only files whose relative path or name matches this glob")
	viper.BindPFlag("match", rootCmd.Flags().Lookup("match"))
	rootCmd.Flags().BoolVarP(&gitOnly, "git-only", "g", false, "Only include files tracked by git")
	viper.BindPFlag("git_only", rootCmd.Flags().Lookup("git-only"))
	rootCmd.Flags().BoolVarP(&caseSensitive, "case-sensitive", "c", false, "Match ignore patterns case-sensitively")
	viper.BindPFlag("case_sensitive", rootCmd.Flags().Lookup("case-sensitive"))

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
	rootCmd.Flags().BoolVarP(&interactiveMode, "interactive", "I", false, "Pick the files to include through a fuzzy finder")
	viper.BindPFlag("interactive", rootCmd.Flags().Lookup("interactive"))
	rootCmd.Flags().BoolVar(&disableTokens, "no-tokens", false, "Skip counting prompt tokens")
	viper.BindPFlag("no_tokens", rootCmd.Flags().Lookup("no-tokens"))
	rootCmd.Flags().StringVar(&tokenModel, "model", defaultTokenModel, "Tiktoken model used for token counting")
	viper.BindPFlag("model", rootCmd.Flags().Lookup("model"))

	viper.SetDefault("model", defaultTokenModel)
	viper.SetDefault("no_tokens", false)
}

// initConfig reads the config file and PRELUDE_* environment variables.
func initConfig() {
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "prelude"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("PRELUDE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
		}
	}

	// Flags left at their defaults pick up config/env values.
	if !rootCmd.Flags().Changed("model") {
		tokenModel = viper.GetString("model")
	}
	if !rootCmd.Flags().Changed("no-tokens") {
		disableTokens = viper.GetBool("no_tokens")
	}
	if !rootCmd.Flags().Changed("verbose") {
		verbose = viper.GetBool("verbose")
	}
}

// run drives the scan: load ignore sources, walk the tree twice, reconcile,
// collect, render, and deliver.
func run(logger *zap.Logger) error {
	logger.Info("starting file scan")

	rootPath, err := resolveRootPath(scanPath)
	if err != nil {
		return err
	}
	logger.Info("scanning directory", zap.String("root", rootPath))

	workingDirectory, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determining working directory: %w", err)
	}
	rules, err := loadIgnoreRules(workingDirectory, logger)
	if err != nil {
		return err
	}
	matcher, err := compileIgnoreMatcher(rules, caseSensitive)
	if err != nil {
		return err
	}
	if caseSensitive {
		logger.Info("case-sensitive matching enabled")
	}

	var gitRules *gitFilter
	if gitOnly {
		logger.Info("git-only mode enabled, only including tracked files")
		gitRules, err = newGitFilter(rootPath, logger)
		if err != nil {
			return err
		}
	}

	logger.Info("collecting files")

	unfiltered, err := walkTree(rootPath, walkOptions{git: gitRules}, logger)
	if err != nil {
		return fmt.Errorf("unfiltered traversal of %s: %w", rootPath, err)
	}
	filtered, err := walkTree(rootPath, walkOptions{git: gitRules, ignore: matcher}, logger)
	if err != nil {
		return fmt.Errorf("filtered traversal of %s: %w", rootPath, err)
	}

	ignored := ignoredPaths(unfiltered, filtered)
	if len(ignored) > 0 {
		logger.Debug("ignored files", zap.Int("count", len(ignored)))
		for _, path := range ignored {
			logger.Debug("ignored", zap.String("path", path))
		}
	}

	files, err := collectFiles(filtered, matchPattern, caseSensitive)
	if err != nil {
		return err
	}

	if interactiveMode {
		files, err = selectFilesInteractively(rootPath, files)
		if err != nil {
			return err
		}
		if files == nil {
			logger.Info("interactive selection aborted")
			return nil
		}
	}

	logger.Info("building file tree")
	tree := buildTree(files)

	logger.Info("reading file contents")
	concatenated := concatenateFiles(rootPath, files, logger)

	logger.Info("building final prompt")
	prompt := buildPrompt(tree, concatenated)

	if !disableTokens {
		tokenCount, tokenErr := countPromptTokens(prompt, tokenModel)
		if tokenErr != nil {
			logger.Warn("token counting skipped", zap.Error(tokenErr))
		} else {
			logger.Info("prompt token count",
				zap.Int("tokens", tokenCount),
				zap.String("model", tokenModel))
		}
	}

	if err := deliverPrompt(prompt, outputFile, logger); err != nil {
		return err
	}

	logger.Info("process completed successfully")
	return nil
}

// resolveRootPath canonicalizes the scan root. A root that does not exist or
// cannot be resolved aborts the run.
func resolveRootPath(path string) (string, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve scan root %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(absolute)
	if err != nil {
		return "", fmt.Errorf("cannot resolve scan root %s: %w", path, err)
	}
	return resolved, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
