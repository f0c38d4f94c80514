package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed positional values (modes, shells, commands)
	TakesFiles  bool     // accepts file arguments
	FilePattern string   // glob for file arguments (e.g., "*.txt")
}

// completionMeta holds completion-specific metadata for flags.
// This is the ONLY place where completion hints are defined.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"mode":   {Values: modeNames()},
	"config": {FileGlob: "*.yaml,*.yml"},
	"output": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		// Determine base type from pflag type
		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		// Override type based on completion metadata
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets - single source of truth.
func getCommands() []commandDef {
	formatFlagDefs := extractFlagsFromFlagSet(buildFormatFlagSet(&formatFlags{}))

	return []commandDef{
		{
			Name:        "format",
			Desc:        "Format exam question files or stdin",
			Flags:       formatFlagDefs,
			TakesFiles:  true,
			FilePattern: "*.txt",
		},
		{
			Name:  "sample",
			Desc:  "Show the built-in sample for a mode",
			Flags: []flagDef{{Long: "run", Short: "r", Type: flagBool, Desc: "also print the formatted sample"}},
			Args:  modeNames(),
		},
		{
			Name:  "config",
			Desc:  "Print the effective configuration",
			Flags: []flagDef{{Long: "config", Short: "c", Type: flagFile, Desc: "config file name or path", FileGlob: "*.yaml,*.yml"}},
		},
		{
			Name: "faq",
			Desc: "Why formatting may not come out right",
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)},
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: commands,
		},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w, getCommands())
	case ShellZsh:
		return generateZsh(w, getCommands())
	case ShellFish:
		return generateFish(w, getCommands())
	case ShellPowerShell:
		return generatePowerShell(w, getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	shell := Shell(args[0])
	return GenerateCompletion(env.Stdout, shell)
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: forso completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(forso completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(forso completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    forso completion fish > ~/.config/fish/completions/forso.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    forso completion powershell | Out-String | Invoke-Expression")
}
