package transform

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	// paragraphBreak is any whitespace run holding at least one blank line.
	paragraphBreak = regexp.MustCompile(`\n\s*\n`)

	// leadingNumber matches an existing "3.", "3)" or "(3)" enumeration.
	leadingNumber = regexp.MustCompile(`^\s*(?:\d+\.\s*|\d+\)\s*|\(\d+\)\s*)`)
)

// ParagraphNumberer (re)numbers question paragraphs of an already formatted
// document.
type ParagraphNumberer struct{}

// Transform returns the renumbered document.
func (n *ParagraphNumberer) Transform(text string) string {
	out, _ := n.TransformWithStats(text)
	return out
}

// TransformWithStats replaces the leading enumeration of every paragraph that
// contains an ellipsis with the running question number. Other paragraphs are
// returned byte for byte. Blank input is returned unchanged.
func (n *ParagraphNumberer) TransformWithStats(text string) (string, Stats) {
	if isBlank(text) {
		return text, Stats{}
	}

	paragraphs := paragraphBreak.Split(text, -1)
	number := 1
	for i, p := range paragraphs {
		if !hasEllipsis(p) {
			continue
		}
		body := strings.TrimLeftFunc(stripLeadingNumber(p), unicode.IsSpace)
		paragraphs[i] = strconv.Itoa(number) + ". " + body
		number++
	}

	return strings.Join(paragraphs, "\n\n"), Stats{Questions: number - 1}
}

// stripLeadingNumber removes an existing enumeration prefix, if any.
func stripLeadingNumber(p string) string {
	loc := leadingNumber.FindStringIndex(p)
	if loc == nil {
		return p
	}
	return p[loc[1]:]
}
