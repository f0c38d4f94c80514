package transform

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxCompactMarkerLen is the longest token (in characters) still read as
// a compact option marker, e.g. "a.", "(b)", "iv)".
const maxCompactMarkerLen = 4

// optionStart matches a letter followed by '.', ')' or whitespace.
var optionStart = regexp.MustCompile(`^\s*[A-Za-z](?:\.|\)|\s)`)

// markerLetter returns the letter held by a line whose trimmed content is a
// single ASCII letter.
func markerLetter(line string) (string, bool) {
	s := strings.TrimSpace(line)
	if len(s) != 1 {
		return "", false
	}
	c := s[0]
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return s, true
	}
	return "", false
}

// isMarkerLine reports whether the line is a lone single-letter marker.
func isMarkerLine(line string) bool {
	_, ok := markerLetter(line)
	return ok
}

// isOptionStart reports whether the line opens an option block.
func isOptionStart(line string) bool {
	return optionStart.MatchString(line)
}

// isCompactMarker reports whether the trimmed line is a short token with no
// space in it. Tabs do not disqualify a token.
func isCompactMarker(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}
	return utf8.RuneCountInString(s) <= maxCompactMarkerLen && !strings.Contains(s, " ")
}
