// Package config handles application setup
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger for the given verbosity. debug wins over
// quiet.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
