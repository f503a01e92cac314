package style

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/typefx/wordart"
)

// Parameter defaults for keys a style file leaves out. These match the
// values long-lived style collections were authored against.
const (
	defaultShadowOffset = 5
	defaultShadowBlur   = 5

	defaultInnerOffset  = 2
	defaultInnerBlur    = 3
	defaultInnerOpacity = 0.5

	defaultGlowOpacity   = 0.8
	defaultGlowRadius    = 10
	defaultGlowIntensity = 1

	defaultOutlineWidth = 1
)

// Decode parses a JSON style document into a compositor descriptor.
// Invalid JSON is the only error; cosmetic problems inside a valid
// document degrade to defaults, matching the compositor's own policy.
func Decode(data []byte) (*wordart.Style, error) {
	var fs fileStyle
	if err := json.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("style: parse: %w", err)
	}
	return translate(&fs), nil
}

// LoadFile reads and decodes a style file.
func LoadFile(path string) (*wordart.Style, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("style: read file: %w", err)
	}
	return Decode(data)
}

func translate(fs *fileStyle) *wordart.Style {
	s := &wordart.Style{Name: fs.Name}
	if fs.Opacity != nil {
		s.Opacity = *fs.Opacity
	}

	if fs.Fill != nil {
		s.Fill = translateFill(fs.Fill)
	}
	if fs.Outline != nil {
		s.Outline = translateOutline(fs.Outline)
	}
	if fs.Shadow != nil {
		s.Shadow = &wordart.ShadowStyle{
			Color:   styleColor(fs.Shadow.Color, "#000000"),
			Opacity: opacityOrHexAlpha(fs.Shadow.Opacity, fs.Shadow.Color, 1),
			OffsetX: intOr(fs.Shadow.OffsetX, defaultShadowOffset),
			OffsetY: intOr(fs.Shadow.OffsetY, defaultShadowOffset),
			Blur:    floatOr(fs.Shadow.Blur, defaultShadowBlur),
		}
	}
	if glow := firstGlow(fs); glow != nil {
		s.Glow = &wordart.GlowStyle{
			Color:     styleColor(glow.Color, "#ffffff"),
			Opacity:   opacityOrHexAlpha(glow.Opacity, glow.Color, defaultGlowOpacity),
			Radius:    floatOr(glow.Radius, defaultGlowRadius),
			Intensity: floatOr(glow.Intensity, defaultGlowIntensity),
		}
	}
	if fs.InnerShadow != nil {
		s.InnerShadow = &wordart.InnerShadowStyle{
			Color:   styleColor(fs.InnerShadow.Color, "#000000"),
			Opacity: opacityOrHexAlpha(fs.InnerShadow.Opacity, fs.InnerShadow.Color, defaultInnerOpacity),
			OffsetX: intOr(fs.InnerShadow.OffsetX, defaultInnerOffset),
			OffsetY: intOr(fs.InnerShadow.OffsetY, defaultInnerOffset),
			Blur:    floatOr(fs.InnerShadow.Blur, defaultInnerBlur),
		}
	}
	return s
}

func translateFill(f *fillSpec) *wordart.FillStyle {
	out := &wordart.FillStyle{
		Opacity: opacityOrHexAlpha(f.Opacity, f.Color, 1),
	}
	if isGradientType(f.Type) {
		out.Paint = wordart.GradientPaint(gradientFrom(f.Colors, f.Direction, f.Angle, f.Type))
		return out
	}
	out.Paint = wordart.Solid(styleColor(f.Color, "#ffffff"))
	return out
}

func translateOutline(o *outlineSpec) *wordart.OutlineStyle {
	width := o.Width
	if width == 0 {
		width = defaultOutlineWidth
	}
	out := &wordart.OutlineStyle{
		Width:   int(width),
		Opacity: opacityOrHexAlpha(o.Opacity, o.Color, 1),
	}

	switch {
	case o.Gradient != nil:
		g := o.Gradient
		out.Paint = wordart.GradientPaint(gradientFrom(g.Colors, g.Direction, g.Angle, g.Type))
	case len(o.Colors) > 0:
		// Gradient keys inlined on the outline object.
		out.Paint = wordart.GradientPaint(gradientFrom(o.Colors, o.Direction, o.Angle, ""))
	default:
		out.Paint = wordart.Solid(styleColor(o.Color, "#000000"))
	}
	return out
}

func gradientFrom(hexColors []string, direction string, angle float64, typ string) wordart.GradientSpec {
	spec := wordart.GradientSpec{
		Angle:  angle,
		Radial: typ == "radial",
	}
	for _, h := range hexColors {
		spec.Colors = append(spec.Colors, wordart.Hex(h))
	}
	if d, ok := wordart.ParseDirection(direction); ok {
		spec.Direction = d
	}
	return spec
}

// isGradientType reports whether a fill type selects gradient paint.
func isGradientType(typ string) bool {
	return typ == "gradient" || typ == "linear" || typ == "radial"
}

// firstGlow prefers the modern "glow" key, falling back to "outer_glow".
func firstGlow(fs *fileStyle) *glowSpec {
	if fs.Glow != nil {
		return fs.Glow
	}
	return fs.OuterGlow
}

// styleColor parses a hex color, substituting a default for an absent
// value. The color is always returned opaque: layer transparency comes
// from the effect's opacity, never from the tint color.
func styleColor(hex, fallback string) wordart.RGBA {
	if hex == "" {
		hex = fallback
	}
	return wordart.Hex(hex).WithAlpha(1)
}

// opacityOrHexAlpha resolves an effect's opacity: explicit field first,
// then an 8-digit hex alpha, then the default.
func opacityOrHexAlpha(opacity *float64, hex string, fallback float64) float64 {
	if opacity != nil {
		return *opacity
	}
	if len(hex) == 9 && hex[0] == '#' || len(hex) == 8 && hex[0] != '#' {
		if a := wordart.Hex(hex).A; a < 1 {
			return a
		}
	}
	return fallback
}

func intOr(v *float64, fallback int) int {
	if v == nil {
		return fallback
	}
	return int(*v)
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
