package main

import (
	"go.uber.org/zap"
)

// setupLogger builds the application logger. Verbose mode switches to the
// development config so per-file decisions and the ignored-path dump become
// visible at debug level.
func setupLogger(verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName": "prelude",
	}

	return cfg.Build()
}
