package forso

import (
	"fmt"
	"strings"
)

// Mode selects the formatting pipeline.
type Mode string

// Formatting modes.
const (
	ModeQuestions Mode = "questions" // Rejoin option markers and number questions
	ModeOptions   Mode = "options"   // Normalize compact option markers
	ModeNumber    Mode = "number"    // Number question paragraphs
)

// modeAliases maps accepted spellings to modes (lowercase keys).
var modeAliases = map[string]Mode{
	"questions": ModeQuestions,
	"question":  ModeQuestions,
	"reunify":   ModeQuestions,
	"a":         ModeQuestions,
	"options":   ModeOptions,
	"option":    ModeOptions,
	"compact":   ModeOptions,
	"b":         ModeOptions,
	"number":    ModeNumber,
	"numbering": ModeNumber,
	"c":         ModeNumber,
}

// Modes returns all modes in pipeline order.
func Modes() []Mode {
	return []Mode{ModeQuestions, ModeOptions, ModeNumber}
}

// ParseMode resolves a mode name or alias (case-insensitive).
func ParseMode(s string) (Mode, error) {
	if m, ok := modeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeQuestions, ModeOptions, ModeNumber:
		return true
	}
	return false
}

func (m Mode) String() string {
	return string(m)
}

// Description returns a one-line summary for help output.
func (m Mode) Description() string {
	switch m {
	case ModeQuestions:
		return "fix questions and answers: rejoin option letters, number questions"
	case ModeOptions:
		return "fix answer options: join short markers with their text"
	case ModeNumber:
		return "fill in question numbers on paragraphs ending in ..."
	}
	return ""
}
