package wordart

import "github.com/typefx/wordart/internal/filter"

// Mask operations used to derive effect-region masks from a source alpha
// channel. Every function returns a new mask; inputs are never mutated.
// Referential transparency here is what keeps effect layers independent of
// one another.

// Dilate grows the nonzero region of the mask by applying a 3x3 max filter
// radius times. The iteration count is the parameter: outline growth is
// squarish at low radii rather than circular.
func Dilate(m *Mask, radius int) *Mask {
	out := NewMask(m.width, m.height)
	out.data = filter.Dilate(m.data, m.width, m.height, radius)
	return out
}

// Blur applies a Gaussian blur with the given sigma to the mask.
// sigma <= 0 is the identity.
func Blur(m *Mask, sigma float64) *Mask {
	out := NewMask(m.width, m.height)
	out.data = filter.BlurAlpha(m.data, m.width, m.height, sigma)
	return out
}

// SubtractClamped returns clamp(a - b, 0, 255) per pixel. Masks of different
// sizes subtract over a's bounds; b reads as 0 outside its own.
//
// Subtracting an unmodified mask from a dilated copy isolates the
// outline-only ring; subtracting an offset copy from the original isolates
// the inner-shadow edge band.
func SubtractClamped(a, b *Mask) *Mask {
	out := NewMask(a.width, a.height)
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			av := a.data[y*a.width+x]
			bv := b.At(x, y)
			if av > bv {
				out.data[y*a.width+x] = av - bv
			}
		}
	}
	return out
}

// Scale multiplies every mask value by factor, rounding to nearest and
// clamping to [0, 255]. Used to apply effect opacity.
func Scale(m *Mask, factor float64) *Mask {
	out := NewMask(m.width, m.height)
	for i, v := range m.data {
		out.data[i] = uint8(clamp255(float64(v)*factor + 0.5))
	}
	return out
}

// Multiply modulates a by b per pixel: round(a*b/255). Used to confine a
// blurred band back inside its source coverage.
func Multiply(a, b *Mask) *Mask {
	out := NewMask(a.width, a.height)
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			av := uint16(a.data[y*a.width+x])
			bv := uint16(b.At(x, y))
			out.data[y*a.width+x] = uint8((av*bv + 127) / 255)
		}
	}
	return out
}

// Threshold returns a binary mask: values >= cutoff become 255, the rest 0.
// Used to suppress sub-visible alpha noise before recombining layers.
func Threshold(m *Mask, cutoff uint8) *Mask {
	out := NewMask(m.width, m.height)
	for i, v := range m.data {
		if v >= cutoff {
			out.data[i] = 255
		}
	}
	return out
}

// Cap limits every mask value to at most limit.
func Cap(m *Mask, limit uint8) *Mask {
	out := NewMask(m.width, m.height)
	for i, v := range m.data {
		if v > limit {
			v = limit
		}
		out.data[i] = v
	}
	return out
}

// Offset shifts the mask by (dx, dy) pixels. Regions shifted in from
// outside the mask are zero-filled; regions shifted out are discarded.
func Offset(m *Mask, dx, dy int) *Mask {
	out := NewMask(m.width, m.height)
	for y := 0; y < m.height; y++ {
		srcY := y - dy
		if srcY < 0 || srcY >= m.height {
			continue
		}
		for x := 0; x < m.width; x++ {
			srcX := x - dx
			if srcX < 0 || srcX >= m.width {
				continue
			}
			out.data[y*m.width+x] = m.data[srcY*m.width+srcX]
		}
	}
	return out
}
