package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the subcommands runMain dispatches.
var commands = []string{"format", "sample", "config", "faq", "completion", "version", "help"}

func main() {
	env := DefaultEnv()

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	setupMaxProcs(env.Stderr, hasVerboseFlag(os.Args[1:]))

	os.Exit(runMain(os.Args, env))
}

// setupMaxProcs aligns GOMAXPROCS with the container CPU quota.
func setupMaxProcs(w io.Writer, verbose bool) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// hasVerboseFlag reports whether -v or --verbose appears before "--".
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// isCommand reports whether name is a known subcommand (case sensitive).
func isCommand(name string) bool {
	for _, c := range commands {
		if c == name {
			return true
		}
	}
	return false
}

// looksLikeInput reports whether arg is more likely a file than a command.
func looksLikeInput(arg string) bool {
	return arg == "-" || filepath.Ext(arg) != "" || strings.ContainsAny(arg, "/\\")
}

// runMain dispatches the subcommand and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	warnUnknownEnvVars(env.Stderr)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, cmdArgs := args[1], args[2:]

	var err error
	switch cmd {
	case "format":
		err = runFormat(ctx, cmdArgs, env)
	case "sample":
		err = runSample(ctx, cmdArgs, env)
	case "config":
		err = runConfig(cmdArgs, env)
	case "faq":
		err = runFAQ(env)
	case "completion":
		err = runCompletion(cmdArgs, env)
	case "version":
		fmt.Fprintf(env.Stdout, "forso %s\n", Version)
	case "help", "-h", "--help":
		return runHelp(cmdArgs, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
		if looksLikeInput(cmd) {
			fmt.Fprintf(env.Stderr, "did you mean 'forso format %s'?\n", cmd)
		}
		fmt.Fprintln(env.Stderr)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		// Usage was already printed for -h/--help
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, "error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
