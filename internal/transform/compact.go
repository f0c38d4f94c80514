package transform

import "strings"

// markerSuffixChars are stripped from a compact marker before it is joined,
// so "a." and "b)" both render as a bare letter.
const markerSuffixChars = ". )"

// CompactNormalizer rebuilds option lists where each short marker token sits
// on its own line, apart from its description.
type CompactNormalizer struct{}

// Transform returns the normalized option list.
func (c *CompactNormalizer) Transform(text string) string {
	out, _ := c.TransformWithStats(text)
	return out
}

// TransformWithStats makes a single forward pass over the lines.
// A marker only merges with the next non-blank line when that line is not a
// marker itself. Blank runs collapse to one separator and leading or trailing
// separators are dropped.
func (c *CompactNormalizer) TransformWithStats(text string) (string, Stats) {
	var stats Stats

	lines := splitLines(text)
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		line := lines[i]

		if isCompactMarker(line) {
			j := nextNonBlank(lines, i+1)
			if j < len(lines) && !isCompactMarker(lines[j]) {
				marker := strings.TrimRight(strings.TrimSpace(line), markerSuffixChars)
				out = append(out, marker+" "+strings.TrimSpace(lines[j]))
				stats.MergedMarkers++
				i = j + 1
				continue
			}
			out = append(out, strings.TrimSpace(line))
			i++
			continue
		}

		if isBlank(line) {
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
		} else {
			out = append(out, trimRight(line))
		}
		i++
	}

	return strings.Join(trimBlankEntries(out), "\n"), stats
}

// trimBlankEntries drops empty entries at both ends.
func trimBlankEntries(lines []string) []string {
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
