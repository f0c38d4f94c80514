package forso

import "github.com/alnah/go-forso/internal/transform"

// ReunifyMarkers runs the questions pipeline: lone option letters are joined
// with the next non-blank line, each question stem ending in "..." is put on
// one line above its options, and questions are numbered from 1.
// Running it twice adds a second number; it is not idempotent.
func ReunifyMarkers(text string) string {
	return (&transform.MarkerReunifier{}).Transform(text)
}

// NormalizeOptions runs the options pipeline: short marker tokens (up to four
// characters, no space) are joined with the next non-blank line, blank runs
// collapse to one empty line and leading or trailing blank lines are dropped.
func NormalizeOptions(text string) string {
	return (&transform.CompactNormalizer{}).Transform(text)
}

// NumberQuestions runs the number pipeline: blank-line separated paragraphs
// containing "..." are renumbered from 1 and all other paragraphs are kept
// verbatim. Blank input is returned unchanged.
func NumberQuestions(text string) string {
	return (&transform.ParagraphNumberer{}).Transform(text)
}
