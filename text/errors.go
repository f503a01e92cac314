package text

import "errors"

var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoText is returned when there is nothing to render.
	ErrNoText = errors.New("text: empty text")

	// ErrEmptyCanvas is returned for non-positive canvas dimensions.
	ErrEmptyCanvas = errors.New("text: canvas has no area")

	// ErrFontNotFound is returned when a resolver has no font under the
	// requested family name.
	ErrFontNotFound = errors.New("text: font not found")
)
