package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-forso/internal/assets"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: forso <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  format      Format exam question files or stdin")
	fmt.Fprintln(w, "  sample      Show the built-in sample for a mode")
	fmt.Fprintln(w, "  config      Print the effective configuration")
	fmt.Fprintln(w, "  faq         Why formatting may not come out right")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'forso help <command>' for details on a specific command.")
}

// printFormatUsage prints usage for the format command.
func printFormatUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: forso format [flags] [input...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reformat pasted exam questions and answer options.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Text files or directories (default: input.defaultDir, or stdin when piped)")
	fmt.Fprintln(w, "           Use - to read stdin explicitly; the result is written to stdout")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Modes:")
	fmt.Fprintln(w, "  -m, --mode <s>            "+strings.Join(modeNames(), ", ")+" (default: questions)")
	fmt.Fprintln(w, "                            questions: rejoin option letters, number questions")
	fmt.Fprintln(w, "                            options:   join short markers with their text")
	fmt.Fprintln(w, "                            number:    number paragraphs ending in ...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "      --suffix <s>          Output name suffix next to the source (default: .formatted)")
	fmt.Fprintln(w, "      --html                Write an HTML document instead of text")
	fmt.Fprintln(w, "      --title <s>           HTML title (default: file name)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing and statistics")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  FORSO_CONFIG, FORSO_MODE, FORSO_INPUT_DIR, FORSO_OUTPUT_DIR,")
	fmt.Fprintln(w, "  FORSO_FORMAT, FORSO_WORKERS (flags > env > config file > defaults)")
}

// printSampleUsage prints usage for the sample command.
func printSampleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: forso sample [mode] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the built-in sample input for a mode, or list samples.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -r, --run                 Also print the formatted result")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: forso config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML (config file + environment).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Names are searched as ./<name>.yaml, ./<name>.yml, then in the user")
	fmt.Fprintln(w, "config directory (~/.config/go-forso/ on Linux).")
}

// runHelp prints help for a specific command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		if about, err := env.AssetLoader.LoadText(assets.AboutText); err == nil {
			fmt.Fprintln(env.Stdout, strings.TrimSpace(about))
			fmt.Fprintln(env.Stdout)
		}
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "format":
		printFormatUsage(env.Stdout)
	case "sample":
		printSampleUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "faq":
		fmt.Fprintln(env.Stdout, "Usage: forso faq")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Explain why some text may not format as expected.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: forso version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: forso help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
