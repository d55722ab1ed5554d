package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// buildTree renders the flat tree listing for the sorted file set.
func buildTree(paths []string) string {
	var builder strings.Builder
	builder.WriteString(".\n")
	for _, path := range paths {
		builder.WriteString("├── ")
		builder.WriteString(path)
		builder.WriteString("\n")
	}
	return builder.String()
}

// concatenateFiles reads each file in sorted order and appends its content as
// a delimited section. A file that cannot be read as text, whether it vanished
// after discovery or holds binary content, is reported and its section
// omitted; the remaining files keep their positions.
func concatenateFiles(root string, paths []string, logger *zap.Logger) string {
	var builder strings.Builder
	for _, path := range paths {
		fullPath := filepath.Join(root, filepath.FromSlash(path))
		content, err := os.ReadFile(fullPath)
		if err != nil {
			logger.Error("error reading file",
				zap.String("file", path),
				zap.Error(err))
			continue
		}
		if isBinary(content) {
			logger.Error("error reading file",
				zap.String("file", path),
				zap.String("reason", "binary content"))
			continue
		}

		logger.Debug("processing file", zap.String("file", path))
		builder.WriteString("\n\n--- File: ")
		builder.WriteString(path)
		builder.WriteString(" ---\n\n")
		builder.Write(content)
	}
	return builder.String()
}

// buildPrompt assembles the final prompt from the rendered tree and the
// concatenated file sections.
func buildPrompt(tree, concatenated string) string {
	return "I want you to help me fix some issues with my code.\n\n" +
		"I have attached the code and file structure.\n\n\n" +
		"File Tree:\n" + tree + "\n\n" +
		"Concatenated Files:" + concatenated
}

// deliverPrompt writes the prompt to outputFile when set, otherwise to the
// system clipboard. A file write failure is fatal; a clipboard failure is
// reported and the run still counts as successful, since the prompt itself was
// constructed correctly.
func deliverPrompt(prompt, outputFile string, logger *zap.Logger) error {
	if outputFile != "" {
		logger.Info("saving prompt to file", zap.String("file", outputFile))
		if err := os.WriteFile(outputFile, []byte(prompt), 0644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", outputFile, err)
		}
		logger.Info("successfully saved prompt", zap.String("file", outputFile))
		return nil
	}

	logger.Info("copying prompt to clipboard")
	if err := clipboard.WriteAll(prompt); err != nil {
		logger.Error("failed to copy prompt to clipboard", zap.Error(err))
		return nil
	}
	logger.Info("prompt copied to clipboard")
	return nil
}
