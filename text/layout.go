package text

import (
	"strings"

	"golang.org/x/image/font"
)

// lineSpacingFactor is the inter-line gap as a fraction of the font size.
const lineSpacingFactor = 0.2

// Default bounds for the size search.
const (
	MinFontSize = 10
	MaxFontSize = 300
)

// BreakLines splits a phrase into display lines by word count. Short
// phrases stay on one line, longer ones spread over up to four lines so
// the block stays roughly square instead of a long ribbon:
//
//	1-2 words: one line
//	3-4 words: two lines
//	5-6 words: three lines
//	7+ words:  up to four lines
//
// Existing whitespace is collapsed; the word order is preserved.
func BreakLines(s string) []string {
	words := strings.Fields(s)
	n := len(words)

	switch {
	case n == 0:
		return nil
	case n <= 2:
		return []string{strings.Join(words, " ")}
	case n <= 4:
		mid := n / 2
		return []string{
			strings.Join(words[:mid], " "),
			strings.Join(words[mid:], " "),
		}
	case n <= 6:
		per := n / 3
		return []string{
			strings.Join(words[:per], " "),
			strings.Join(words[per:2*per], " "),
			strings.Join(words[2*per:], " "),
		}
	}

	lineCount := (n + 1) / 2
	if lineCount > 4 {
		lineCount = 4
	}
	per := n / lineCount

	lines := make([]string, 0, lineCount)
	for i := 0; i < lineCount-1; i++ {
		lines = append(lines, strings.Join(words[i*per:(i+1)*per], " "))
	}
	lines = append(lines, strings.Join(words[(lineCount-1)*per:], " "))
	return lines
}

// lineExtent is the ink bounding box of one laid-out line in pixels.
type lineExtent struct {
	width  int
	height int
	// minX and minY are the ink origin relative to the pen position,
	// minY negative above the baseline.
	minX int
	minY int
}

// measureLine returns the ink extent of a single line at the face's size.
func measureLine(face font.Face, line string) lineExtent {
	bounds, _ := font.BoundString(face, line)
	return lineExtent{
		width:  (bounds.Max.X - bounds.Min.X).Ceil(),
		height: (bounds.Max.Y - bounds.Min.Y).Ceil(),
		minX:   bounds.Min.X.Floor(),
		minY:   bounds.Min.Y.Floor(),
	}
}

// measureBlock returns the total ink extent of the lines with inter-line
// spacing at the given size.
func measureBlock(face font.Face, lines []string, size float64) (width, height int) {
	spacing := int(size * lineSpacingFactor)
	for i, line := range lines {
		ext := measureLine(face, line)
		if ext.width > width {
			width = ext.width
		}
		height += ext.height
		if i > 0 {
			height += spacing
		}
	}
	return width, height
}

// FitSize binary-searches the largest integer font size in
// [MinFontSize, MaxFontSize] whose line block fits within maxWidth x
// maxHeight. When even the minimum size does not fit, the minimum is
// returned; callers get a render that overflows rather than an error.
func FitSize(src *Source, lines []string, maxWidth, maxHeight int) (float64, error) {
	low, high := MinFontSize, MaxFontSize
	best := MinFontSize

	for low <= high {
		mid := (low + high) / 2
		face, err := src.Face(float64(mid))
		if err != nil {
			return 0, err
		}

		w, h := measureBlock(face, lines, float64(mid))
		if w <= maxWidth && h <= maxHeight {
			best = mid
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	return float64(best), nil
}
