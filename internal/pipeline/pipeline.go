// Package pipeline runs a whole generator pass: load the tables, generate
// the decode cases, expand the template and write the output.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrogolib/log"

	"github.com/apparentlymart/rvdecodegen/internal/decodegen"
	"github.com/apparentlymart/rvdecodegen/internal/encoding"
	"github.com/apparentlymart/rvdecodegen/internal/expand"
	"github.com/apparentlymart/rvdecodegen/internal/report"
)

// Options configures a run.
type Options struct {
	TableDir  string
	Prefix    string
	Template  string
	Output    string
	Separator string

	Lint    bool
	Summary bool
	Dump    bool

	// Report receives the summary and dump; os.Stdout if nil.
	Report io.Writer
}

// Run loads the template named by opts and generates the output.
func Run(logger *log.Logger, opts Options) error {
	tmpl, err := expand.LoadTemplate(opts.Template)
	if err != nil {
		return err
	}
	return Generate(logger, opts, tmpl)
}

// Generate runs the pass with exp as the template. Nothing is written
// unless every step succeeds.
func Generate(logger *log.Logger, opts Options, exp expand.Expander) error {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = encoding.DefaultPrefix
	}

	encs, err := encoding.LoadDir(opts.TableDir, prefix)
	if err != nil {
		return err
	}
	logger.Info("Loaded encoding tables",
		log.String("dir", opts.TableDir),
		log.Int("instructions", len(encs)))

	if opts.Lint {
		lint(logger, encs)
	}

	w := opts.Report
	if w == nil {
		w = os.Stdout
	}
	if opts.Summary {
		report.Summary(w, encs)
	}
	if opts.Dump {
		report.Dump(w, encs)
	}

	placeholders, err := decodegen.Generate(encs, opts.Separator)
	if err != nil {
		return fmt.Errorf("generating decoder: %w", err)
	}

	src, err := exp.Expand(placeholders)
	if err != nil {
		return fmt.Errorf("expanding template: %w", err)
	}
	src, err = expand.FormatGo(opts.Output, src)
	if err != nil {
		return err
	}

	if err := expand.WriteFile(opts.Output, src); err != nil {
		return fmt.Errorf("writing %s: %w", opts.Output, err)
	}
	logger.Info("Wrote decoder",
		log.String("output", opts.Output),
		log.Int("bytes", len(src)))
	return nil
}

// lint warns about every pair of encodings some word matches both of.
// The generated decoder prefers the earlier one, which makes the later
// one unreachable when it is shadowed completely.
func lint(logger *log.Logger, encs []encoding.Encoding) (overlaps, unreachable int) {
	logger.Debug("Recognized arguments",
		log.String("args", strings.Join(decodegen.Arguments(), " ")))

	for i := range encs {
		for j := i + 1; j < len(encs); j++ {
			first, second := encs[i], encs[j]
			if !first.Overlaps(second) {
				continue
			}
			overlaps++

			msg := "Overlapping encodings, the first one wins"
			if first.Shadows(second) {
				unreachable++
				msg = "Encoding is never reached, an earlier one matches all its words"
			}
			logger.Warn(msg,
				log.String("first", first.Name),
				log.String("first_source", first.Source.String()),
				log.String("second", second.Name),
				log.String("second_source", second.Source.String()))
		}
	}
	logger.Debug("Checked encodings for overlaps",
		log.Int("overlaps", overlaps),
		log.Int("unreachable", unreachable))
	return overlaps, unreachable
}
