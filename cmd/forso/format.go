package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alnah/go-forso"
	"github.com/alnah/go-forso/internal/config"
	"github.com/alnah/go-forso/internal/fileutil"
	"github.com/alnah/go-forso/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadInput          = errors.New("failed to read input")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrInvalidExtension   = errors.New("file extension not accepted")
	ErrOutputIsInput      = errors.New("output would overwrite input")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidFlag        = errors.New("invalid flags")
	ErrFormatFailed       = errors.New("formatting failed")
)

// stdinArg selects stdin as the input.
const stdinArg = "-"

// TextFormatter is the interface for the formatting service.
type TextFormatter interface {
	Format(ctx context.Context, input forso.Input) (*forso.Result, error)
}

// Compile-time interface implementation check.
var _ TextFormatter = (*forso.Formatter)(nil)

// formatParams groups parameters shared across batch/file formatting.
type formatParams struct {
	mode  forso.Mode
	html  bool
	title string // Fixed HTML title (empty = per-file name)
}

// runFormat orchestrates the format command.
func runFormat(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseFormatFlags(args, env.Stdout)
	if err != nil {
		return err
	}

	// Load configuration: file, then env, then CLI flags
	envCfg := loadEnvConfig()

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return err
	}

	cfg, err := resolveConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	mode, err := forso.ParseMode(cfg.Mode)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForUnknownMode(modeNames()))
	}

	formatter, err := forso.NewFormatter(
		forso.WithDefaultMode(mode),
		forso.WithHTMLTitle(cfg.HTML.Title),
	)
	if err != nil {
		return err
	}

	params := &formatParams{
		mode:  mode,
		html:  strings.EqualFold(cfg.Output.Format, config.FormatHTML),
		title: cfg.HTML.Title,
	}

	readStdin, err := useStdin(positional, cfg, env)
	if err != nil {
		return err
	}
	if readStdin {
		return formatStdin(ctx, formatter, flags, params, env)
	}

	inputs := positional
	if len(inputs) == 0 {
		inputs = []string{cfg.Input.DefaultDir}
	}

	outputDir := resolveOutputDir(flags.output.path, cfg)
	files, err := discoverFiles(inputs, outputDir, cfg.Input.Extensions, outputNaming{
		suffix: cfg.Output.Suffix,
		html:   params.html,
	})
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no matching files in %s%s", ErrNoInput, strings.Join(inputs, ", "), hints.ForNoFiles(cfg.Input.Extensions))
	}

	poolSize := forso.ResolvePoolSize(workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Mode: %s, files: %d, workers: %d\n", mode, len(files), poolSize)
	}

	results := formatBatch(ctx, formatter, files, params, poolSize)

	failed := printResults(results, params.mode, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d document(s)", ErrFormatFailed, failed, len(results))
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *formatFlags, cfg *config.Config) {
	if flags.mode != "" {
		cfg.Mode = flags.mode
	}
	if flags.output.suffix != "" {
		cfg.Output.Suffix = flags.output.suffix
	}
	if flags.output.html {
		cfg.Output.Format = config.FormatHTML
	}
	if flags.output.title != "" {
		cfg.HTML.Title = flags.output.title
	}
}

// useStdin reports whether input comes from stdin: an explicit "-", or no
// positional input, no configured input directory and piped stdin.
func useStdin(args []string, cfg *config.Config, env *Environment) (bool, error) {
	for _, a := range args {
		if a == stdinArg {
			if len(args) > 1 {
				return false, fmt.Errorf("%w: %q cannot be combined with other inputs", ErrInvalidFlag, stdinArg)
			}
			return true, nil
		}
	}
	if len(args) > 0 {
		return false, nil
	}
	if cfg.Input.DefaultDir != "" {
		return false, nil
	}
	if env.StdinPiped {
		return true, nil
	}
	return false, fmt.Errorf("%w%s", ErrNoInput, hints.ForEmptyInput())
}

// resolveOutputDir determines the output path from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// formatStdin formats stdin and writes the result to --output or stdout.
func formatStdin(ctx context.Context, formatter TextFormatter, flags *formatFlags, params *formatParams, env *Environment) error {
	start := env.Now()

	// Read one byte past the limit so oversized input is reported, not truncated
	data, err := io.ReadAll(io.LimitReader(env.Stdin, forso.DefaultMaxInputSize+1))
	if err != nil {
		return fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
	}

	res, err := formatter.Format(ctx, forso.Input{
		Text:  string(data),
		Mode:  params.mode,
		HTML:  params.html,
		Title: params.title,
	})
	if err != nil {
		if errors.Is(err, forso.ErrEmptyInput) {
			return fmt.Errorf("%w%s", err, hints.ForEmptyInput())
		}
		return err
	}

	if !flags.common.quiet && noQuestions(res, params.mode) {
		fmt.Fprintf(env.Stderr, "warning: no question detected in stdin%s\n", hints.ForNoQuestions())
	}

	out := renderedOutput(res, params.html)
	if flags.output.path == "" {
		if _, err := io.WriteString(env.Stdout, out); err != nil {
			return fmt.Errorf("%w: stdout: %v", ErrWriteOutput, err)
		}
	} else {
		if err := fileutil.WriteFile(flags.output.path, []byte(out)); err != nil {
			return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", flags.output.path)
		}
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "stdin: %d question(s), %d merged marker(s) (%v)\n",
			res.Questions, res.MergedMarkers, env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// renderedOutput returns what gets written for a result: the HTML document,
// or the text trimmed and ending with exactly one newline.
func renderedOutput(res *forso.Result, html bool) string {
	if html {
		return res.HTML
	}
	text := strings.TrimSpace(res.Text)
	if text == "" {
		return ""
	}
	return text + "\n"
}

// noQuestions reports a result where question detection found nothing.
// The options mode never numbers questions, so it is never flagged.
func noQuestions(res *forso.Result, mode forso.Mode) bool {
	return mode != forso.ModeOptions && res.Questions == 0
}

// modeNames returns the mode names for hints and completion.
func modeNames() []string {
	modes := forso.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return names
}
