package transform

import (
	"strconv"
	"strings"
)

// MarkerReunifier repairs question documents whose option letters were split
// from their text, e.g. "a\n\nAtribut" becomes "a Atribut", then numbers the
// question paragraphs.
type MarkerReunifier struct{}

// Transform returns the reformatted document.
func (r *MarkerReunifier) Transform(text string) string {
	out, _ := r.TransformWithStats(text)
	return out
}

// TransformWithStats runs the three passes: marker premerge, paragraphing,
// then per-paragraph formatting with sequential numbering.
func (r *MarkerReunifier) TransformWithStats(text string) (string, Stats) {
	var stats Stats

	lines, merged := premergeMarkers(splitLines(text))
	stats.MergedMarkers = merged

	paragraphs := splitParagraphs(lines)
	blocks := make([]string, 0, len(paragraphs))
	number := 1
	for _, par := range paragraphs {
		block, question := formatParagraph(par)
		if question {
			block = strconv.Itoa(number) + ". " + block
			number++
		}
		blocks = append(blocks, block)
	}
	stats.Questions = number - 1

	return strings.Join(blocks, "\n\n"), stats
}

// premergeMarkers joins every lone letter line with the next non-blank line.
// Blank lines between the two are consumed. A marker with nothing after it
// is kept as is. Returns the new lines and the number of merges.
func premergeMarkers(lines []string) ([]string, int) {
	out := make([]string, 0, len(lines))
	merged := 0

	for i := 0; i < len(lines); {
		letter, ok := markerLetter(lines[i])
		if !ok {
			out = append(out, lines[i])
			i++
			continue
		}

		j := nextNonBlank(lines, i+1)
		if j == len(lines) {
			out = append(out, lines[i])
			i++
			continue
		}

		out = append(out, letter+" "+strings.TrimSpace(lines[j]))
		merged++
		i = j + 1
	}

	return out, merged
}

// splitParagraphs groups right-trimmed non-blank lines into paragraphs.
// Any run of blank lines is a single separator.
func splitParagraphs(lines []string) [][]string {
	var (
		paragraphs [][]string
		buf        []string
	)
	for _, ln := range lines {
		if isBlank(ln) {
			if len(buf) > 0 {
				paragraphs = append(paragraphs, buf)
				buf = nil
			}
			continue
		}
		buf = append(buf, trimRight(ln))
	}
	if len(buf) > 0 {
		paragraphs = append(paragraphs, buf)
	}
	return paragraphs
}

// formatParagraph renders one paragraph and reports whether it is a question.
// Questions keep the stem on one line and each option on its own line.
// Anything else collapses to a single line.
func formatParagraph(par []string) (string, bool) {
	if !paragraphHasEllipsis(par) {
		return joinTrimmed(par), false
	}

	split := optionStartIndex(par)
	if split < 0 {
		return joinTrimmed(par), true
	}

	out := make([]string, 0, len(par)-split+1)
	out = append(out, joinTrimmed(par[:split]))
	for _, opt := range par[split:] {
		out = append(out, strings.TrimSpace(opt))
	}
	return strings.Join(out, "\n"), true
}

// optionStartIndex returns the index of the first option line, or -1.
func optionStartIndex(par []string) int {
	for i, ln := range par {
		if isOptionStart(ln) {
			return i
		}
	}
	return -1
}

func paragraphHasEllipsis(par []string) bool {
	for _, ln := range par {
		if hasEllipsis(ln) {
			return true
		}
	}
	return false
}
