package wordart

import "github.com/typefx/wordart/internal/blend"

// glowBoostThreshold and glowBoostBlurFactor control the high-intensity
// glow boost: above the threshold a second, less-blurred pass is stacked on
// top of the halo so strong glows read as punchy rather than merely wide.
// The constants are empirically tuned cosmetic values kept for visual
// parity with existing styles; they are tunable, not load-bearing.
const (
	glowBoostThreshold  = 0.6
	glowBoostBlurFactor = 0.5
)

// BuildGlowLayer renders the outer-glow layer: the unoffset text mask is
// blurred by Radius, tinted, and scaled by opacity*intensity (the factors
// multiply, so either one reduces visibility independently).
//
// The glow is never confined to the text shape beyond the blur's natural
// spread; it bleeds outward freely, which is why callers reserve extra
// safe-area margin when glow is active.
func BuildGlowLayer(mask *Mask, s *GlowStyle) (*Pixmap, LayerReport) {
	report := LayerReport{Name: LayerGlow}
	if !s.enabled() {
		return nil, report
	}

	opacity := normUnit(s.Opacity)
	intensity := normUnit(s.Intensity)
	effective := opacity * intensity

	halo := Scale(Blur(mask, s.Radius), effective)
	layer := tintMask(halo, s.Color)

	if intensity > glowBoostThreshold {
		inner := Scale(Blur(mask, s.Radius*glowBoostBlurFactor), effective)
		blend.SourceOver(layer.Data(), tintMask(inner, s.Color).Data())
	}

	report.Status = StatusBuilt
	return layer, report
}
