package frame

import (
	"strings"

	"github.com/gogpu/gg"
)

// wrapHeader breaks s into lines no wider than maxWidth as measured with
// the context's current font. Word boundaries are preferred; a single token
// too wide for a line on its own is broken rune by rune.
func wrapHeader(dc *gg.Context, s string, maxWidth float64) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		if w, _ := dc.MeasureString(word); w > maxWidth {
			// flush the pending line, then split the long token
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			lines = append(lines, wrapRunes(dc, word, maxWidth)...)
			continue
		}
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if w, _ := dc.MeasureString(candidate); w > maxWidth && line != "" {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// wrapRunes splits one unbreakable token at character boundaries.
func wrapRunes(dc *gg.Context, word string, maxWidth float64) []string {
	var lines []string
	line := ""
	for _, r := range word {
		candidate := line + string(r)
		if w, _ := dc.MeasureString(candidate); w > maxWidth && line != "" {
			lines = append(lines, line)
			line = string(r)
		} else {
			line = candidate
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
