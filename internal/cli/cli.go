// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/apparentlymart/rvdecodegen/internal/encoding"
	"github.com/apparentlymart/rvdecodegen/internal/pipeline"
)

// Options are the parsed command line settings.
type Options struct {
	pipeline.Options

	Debug bool
	Quiet bool
}

// ParseFlags parses args, which exclude the program name.
func ParseFlags(name string, args []string) (Options, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.Usage = func() {}
	var opts Options
	readOptionFlags(flags, &opts)

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	if rest := flags.Args(); len(rest) > 0 {
		return opts, &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("unexpected argument %s, all settings are passed as flags", rest[0]),
		}
	}
	if opts.TableDir == "" || opts.Template == "" || opts.Output == "" {
		return opts, &UsageError{flags: flags, msg: "-dir, -t and -o must not be empty"}
	}
	opts.Separator = strings.ReplaceAll(opts.Separator, `\n`, "\n")

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: rvdecodegen [options]\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

func readOptionFlags(flags *flag.FlagSet, opts *Options) {
	flags.StringVar(&opts.TableDir, "dir", "opcodes", "directory holding the encoding tables")
	flags.StringVar(&opts.Prefix, "prefix", encoding.DefaultPrefix, "only load table files whose name starts with this prefix")
	flags.StringVar(&opts.Template, "t", "decoder/decode.go.tmpl", "template to expand")
	flags.StringVar(&opts.Output, "o", "decoder/decode_gen.go", "name of the generated file, formatted as Go if it ends in .go")
	flags.StringVar(&opts.Separator, "sep", `\n`, "separator between opcode identifiers, \\n is a newline")
	flags.BoolVar(&opts.Lint, "lint", false, "warn about encodings that overlap")
	flags.BoolVar(&opts.Summary, "summary", false, "print a table of the loaded encodings")
	flags.BoolVar(&opts.Dump, "dump", false, "dump the loaded encoding model")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
