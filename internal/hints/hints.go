// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-forso/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-forso") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForEmptyInput returns a hint for runs that received no text.
func ForEmptyInput() string {
	return format("pass a file or directory, or pipe text on stdin (use - to force stdin)")
}

// ForNoQuestions returns a hint for documents where no question was detected.
// Questions are recognized by a "..." at the end of the stem.
func ForNoQuestions() string {
	return format(`end each question stem with "..." so it can be detected and numbered`)
}

// ForUnknownMode lists the modes that are accepted.
func ForUnknownMode(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available modes: " + strings.Join(available, ", "))
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForOutputOverwritesInput returns a hint for outputs that would replace their source.
func ForOutputOverwritesInput() string {
	return format("set a non-empty output.suffix or pass --output with a different directory")
}

// ForNoFiles returns hints for a directory without matching input files.
func ForNoFiles(extensions []string) string {
	if len(extensions) == 0 {
		return ""
	}
	return format("looked for " + strings.Join(extensions, ", ") + "; set input.extensions in the config to change it")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
