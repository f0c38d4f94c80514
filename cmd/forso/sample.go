package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-forso"
	"github.com/alnah/go-forso/internal/hints"
)

// runSample prints the built-in sample for a mode, or lists samples when no
// mode is given. With --run the formatted sample follows the input.
func runSample(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseSampleFlags(args, env.Stdout)
	if err != nil {
		return err
	}

	if len(positional) == 0 {
		printSampleList(env)
		return nil
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one mode, got %d", ErrInvalidFlag, len(positional))
	}

	mode, err := forso.ParseMode(positional[0])
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForUnknownMode(modeNames()))
	}

	sample, err := env.AssetLoader.LoadSample(mode.String())
	if err != nil {
		return err
	}

	if !flags.run {
		fmt.Fprintln(env.Stdout, sample)
		return nil
	}

	formatter, err := forso.NewFormatter(forso.WithDefaultMode(mode))
	if err != nil {
		return err
	}
	res, err := formatter.Format(ctx, forso.Input{Text: sample})
	if err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, "Input:")
	fmt.Fprintln(env.Stdout, sample)
	fmt.Fprintln(env.Stdout)
	fmt.Fprintf(env.Stdout, "Output (forso format -m %s):\n", mode)
	fmt.Fprint(env.Stdout, renderedOutput(res, false))
	return nil
}

// printSampleList prints every mode with its description.
func printSampleList(env *Environment) {
	fmt.Fprintln(env.Stdout, "Available samples:")
	for _, m := range forso.Modes() {
		fmt.Fprintf(env.Stdout, "  %-10s %s\n", m, m.Description())
	}
	fmt.Fprintln(env.Stdout)
	fmt.Fprintf(env.Stdout, "Run 'forso sample <mode> --run' to see one formatted (%s).\n", strings.Join(modeNames(), ", "))
}
