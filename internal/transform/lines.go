package transform

import (
	"regexp"
	"strings"
	"unicode"
)

// ellipsis marks a paragraph as a question stem awaiting options.
const ellipsis = "..."

// lineBreak matches \r\n and lone \r so all three line endings split alike.
var lineBreak = regexp.MustCompile(`\r\n?`)

// NormalizeLineEndings rewrites \r\n and lone \r as \n.
func NormalizeLineEndings(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	return lineBreak.ReplaceAllString(text, "\n")
}

// splitLines splits text into lines on \n, \r\n or \r.
// A single trailing line break does not produce an extra empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = NormalizeLineEndings(text)
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// isBlank returns true if the line is empty or contains only whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// hasEllipsis returns true if s contains the ellipsis token.
func hasEllipsis(s string) bool {
	return strings.Contains(s, ellipsis)
}

// trimRight removes trailing whitespace.
func trimRight(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

// nextNonBlank returns the index of the first non-blank line at or after
// start, or len(lines) if there is none.
func nextNonBlank(lines []string, start int) int {
	j := start
	for j < len(lines) && isBlank(lines[j]) {
		j++
	}
	return j
}

// joinTrimmed trims every line and joins them with single spaces.
func joinTrimmed(lines []string) string {
	parts := make([]string, len(lines))
	for i, ln := range lines {
		parts[i] = strings.TrimSpace(ln)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
