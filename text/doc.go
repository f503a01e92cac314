// Package text rasterizes styled text into the alpha masks the compositor
// consumes.
//
// The package owns everything between a font file and a coverage mask:
// loading and resolving fonts, breaking a phrase into lines, finding the
// largest font size that fits a safe area, and rendering the laid-out lines
// as anti-aliased alpha coverage. It deliberately knows nothing about
// effects; its single product is a mask plus the tight pixel bounds of the
// rendered glyphs.
package text
