package text

import "golang.org/x/text/unicode/bidi"

// Direction is the resolved base direction of a phrase.
type Direction int

const (
	// DirectionLTR is left-to-right text.
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text.
	DirectionRTL
)

// BaseDirection resolves the paragraph-level base direction of the text
// using the Unicode bidirectional algorithm. Neutral or empty text reads
// as left-to-right.
func BaseDirection(s string) Direction {
	if s == "" {
		return DirectionLTR
	}

	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return DirectionLTR
	}
	if p.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}
