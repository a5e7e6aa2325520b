// Package main implements a generator that turns RISC-V encoding tables
// into decoder source.
package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/tebeka/atexit"

	"github.com/apparentlymart/rvdecodegen/internal/cli"
	"github.com/apparentlymart/rvdecodegen/internal/config"
	"github.com/apparentlymart/rvdecodegen/internal/pipeline"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	atexit.Exit(run(os.Args))
}

// run executes the generator for the command line args, including the
// program name, and returns the exit status.
func run(args []string) int {
	opts, err := cli.ParseFlags(filepath.Base(args[0]), args[1:])
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			logger.Error("Invalid arguments", log.Err(err))
			usageErr.ShowUsage()
		} else {
			logger.Error("Parsing arguments failed", log.Err(err))
		}
		return 1
	}

	printBanner(logger, opts)

	if err := pipeline.Run(logger, opts.Options); err != nil {
		logger.Error("Generating decoder failed", log.Err(err))
		return 1
	}
	return 0
}

func printBanner(logger *log.Logger, opts cli.Options) {
	if opts.Quiet {
		return
	}
	logger.Info("rvdecodegen", log.String("version", buildinfo.Version(version, commit, date)))
}
