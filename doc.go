// Package wordart composites stylized text effects onto raster images.
//
// # Overview
//
// wordart takes a rasterized text-alpha mask and a style descriptor, builds
// one raster layer per active effect (shadow, glow, fill, outline, inner
// shadow), and alpha-composites the layers bottom-to-top in a fixed,
// SVG-compatible stacking order, producing a single flattened RGBA image.
//
// # Quick Start
//
//	import "github.com/typefx/wordart"
//
//	// mask is a *wordart.Mask from the text rasterizer (see text subpackage)
//	style := &wordart.Style{
//	    Fill:    &wordart.FillStyle{Paint: wordart.Solid(wordart.Hex("#FF0000")), Opacity: 1},
//	    Outline: &wordart.OutlineStyle{Paint: wordart.Solid(wordart.Hex("#0000FF")), Width: 3, Opacity: 1},
//	}
//
//	result, err := wordart.NewCompositor().Compose(mask, style)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result.Image.SavePNG("out.png")
//
// # Stacking order
//
// Layers are composited bottom to top as shadow, glow, fill, outline, inner
// shadow. Shadow and glow sit behind the glyph body, fill is the body,
// outline wraps the glyph edge without covering interior pixels, and inner
// shadow shades the glyph interior without extending past it.
//
// # Architecture
//
// The library is organized into:
//   - Root package: Mask, Pixmap, RGBA, Style, effect builders, Compositor
//   - internal/filter: Gaussian blur kernels and morphological dilation
//   - internal/blend: alpha-over compositing
//   - text: font loading, layout, and glyph rasterization to alpha masks
//   - style: JSON style-file loading and the style registry
//   - svg: SVG interchange for style descriptors
//   - palette: dominant-color extraction
//
// # Coordinate System
//
// Standard raster coordinates: origin (0,0) at top-left, X increases right,
// Y increases down. Gradient angles are in degrees with 0 pointing right and
// positive angles turning counter-clockwise as seen on screen.
//
// # Determinism
//
// Composing the same mask and style twice yields byte-identical output. The
// core performs no I/O, holds no global mutable state, and each Compose call
// is independent, so callers may run distinct render jobs concurrently.
package wordart

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
