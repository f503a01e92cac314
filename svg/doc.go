// Package svg serializes style descriptors to and from SVG documents.
//
// The mapping follows the common layer-effects export convention: fills
// and strokes become linearGradient/radialGradient paint servers, shadow
// and glow become filter chains of feOffset, feGaussianBlur and
// feColorMatrix, and an inner shadow is marked by an arithmetic
// feComposite (k2=-1 k3=1) that subtracts the source silhouette. Offset,
// blur, color and opacity survive an export/import round trip without
// loss; purely raster parameters with no SVG counterpart (glow intensity)
// fall back to their defaults on import.
package svg
