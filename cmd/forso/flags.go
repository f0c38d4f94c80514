package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds output destination and format flags.
type outputFlags struct {
	path   string // File or directory
	suffix string // Inserted before the extension in batch mode
	html   bool   // Write HTML instead of text
	title  string // HTML document title
}

// formatFlags holds all flags for the format command.
type formatFlags struct {
	common  commonFlags
	output  outputFlags
	mode    string
	workers int
}

// sampleFlags holds flags for the sample command.
type sampleFlags struct {
	run bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and statistics")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "output", "o", "", "output file or directory")
	fs.StringVar(&f.suffix, "suffix", "", "suffix added to output file names (default \".formatted\")")
	fs.BoolVar(&f.html, "html", false, "write an HTML document instead of text")
	fs.StringVar(&f.title, "title", "", "HTML document title")
}

// buildFormatFlagSet registers the format command flags into f.
// Shared by parsing and shell completion.
func buildFormatFlagSet(f *formatFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)

	fs.StringVarP(&f.mode, "mode", "m", "", "formatting mode: questions, options, number")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addOutputFlags(fs, &f.output)
	addCommonFlags(fs, &f.common)

	return fs
}

// parseFormatFlags parses format command flags and returns positional args.
func parseFormatFlags(args []string, usageOut io.Writer) (*formatFlags, []string, error) {
	f := &formatFlags{}
	fs := buildFormatFlagSet(f)
	if err := parseFlagSet(fs, args, usageOut, printFormatUsage); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseSampleFlags parses sample command flags and returns positional args.
func parseSampleFlags(args []string, usageOut io.Writer) (*sampleFlags, []string, error) {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	f := &sampleFlags{}
	fs.BoolVarP(&f.run, "run", "r", false, "also print the formatted sample")
	if err := parseFlagSet(fs, args, usageOut, printSampleUsage); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, usageOut io.Writer) (*commonFlags, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	f := &commonFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	if err := parseFlagSet(fs, args, usageOut, printConfigUsage); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrInvalidFlag, fs.Arg(0))
	}
	return f, nil
}

// parseFlagSet parses args silently. On -h/--help the command usage is
// printed to usageOut and flag.ErrHelp returned; other failures are
// wrapped in ErrInvalidFlag.
func parseFlagSet(fs *flag.FlagSet, args []string, usageOut io.Writer, usage func(io.Writer)) error {
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(usageOut)
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	return nil
}
