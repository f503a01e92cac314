package wordart

import (
	"log/slog"

	"github.com/typefx/wordart/internal/blend"
)

// CompositeResult is the flattened image plus optional per-layer
// diagnostics. The caller owns everything in it after Compose returns.
type CompositeResult struct {
	// Image is the final RGBA canvas, same dimensions as the input mask.
	Image *Pixmap

	// Layers maps layer names to the individual effect layers. Populated
	// only when the compositor captures layers; absent effects have no key.
	Layers map[string]*Pixmap

	// Reports records each builder's outcome in stacking order, including
	// effects that were skipped or had parameters defaulted.
	Reports []LayerReport
}

// Compositor flattens effect layers onto a transparent canvas in the fixed
// stacking order shadow, glow, fill, outline, inner shadow.
//
// A Compositor holds no per-render state: one instance may serve concurrent
// Compose calls as long as each call gets its own mask.
type Compositor struct {
	// CaptureLayers retains each built layer in the result for
	// inspection or debug dumps.
	CaptureLayers bool
}

// NewCompositor creates a compositor with default settings.
func NewCompositor() *Compositor {
	return &Compositor{}
}

// Compose builds every active effect layer from the text mask and
// alpha-composites them bottom-to-top onto a transparent canvas.
//
// A style with no active effects produces a fully transparent canvas, as
// does a mask with no coverage; neither is an error. Only structural
// problems (nil mask, non-positive dimensions) fail.
func (c *Compositor) Compose(mask *Mask, style *Style) (*CompositeResult, error) {
	if mask == nil {
		return nil, ErrNilMask
	}
	if mask.Width() <= 0 || mask.Height() <= 0 {
		return nil, ErrEmptyCanvas
	}
	if style == nil {
		style = &Style{}
	}

	log := Logger()
	canvas := NewPixmap(mask.Width(), mask.Height())

	result := &CompositeResult{
		Image:   canvas,
		Reports: make([]LayerReport, 0, len(layerOrder)),
	}
	if c.CaptureLayers {
		result.Layers = make(map[string]*Pixmap)
	}

	for _, name := range layerOrder {
		layer, report := c.buildLayer(name, mask, style)
		result.Reports = append(result.Reports, report)

		if layer == nil {
			continue
		}
		if report.Status == StatusDefaulted {
			log.Warn("effect parameters defaulted",
				slog.String("style", style.Name),
				slog.String("layer", name),
				slog.String("note", report.Note))
		}

		blend.SourceOver(canvas.Data(), layer.Data())
		if c.CaptureLayers {
			result.Layers[name] = layer
		}
		log.Debug("composited layer",
			slog.String("style", style.Name),
			slog.String("layer", name))
	}

	if opacity := style.globalOpacity(); opacity < 1 {
		canvas.ScaleAlpha(opacity)
	}

	return result, nil
}

// buildLayer dispatches to the builder for the named effect.
func (c *Compositor) buildLayer(name string, mask *Mask, style *Style) (*Pixmap, LayerReport) {
	switch name {
	case LayerShadow:
		return BuildShadowLayer(mask, style.Shadow)
	case LayerGlow:
		return BuildGlowLayer(mask, style.Glow)
	case LayerFill:
		return BuildFillLayer(mask, style.Fill)
	case LayerOutline:
		return BuildOutlineLayer(mask, style.Outline)
	default:
		return BuildInnerShadowLayer(mask, style.InnerShadow)
	}
}

// Compose is a convenience wrapper using a default compositor without layer
// capture.
func Compose(mask *Mask, style *Style) (*CompositeResult, error) {
	return NewCompositor().Compose(mask, style)
}
