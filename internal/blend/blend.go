// Package blend implements the alpha-over compositing used to flatten
// effect layers.
//
// Buffers hold straight (non-premultiplied) RGBA bytes. The source-over
// operator premultiplies internally, applies S + D*(1-Sa), and converts
// back, which matches the layer semantics of every raster editor this
// package interoperates with.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// SourceOver composites src over dst in place. Both buffers are straight
// RGBA with the same length; extra trailing bytes in either are ignored.
func SourceOver(dst, src []uint8) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	n -= n % 4

	for i := 0; i < n; i += 4 {
		sa := float32(src[i+3]) / 255
		if sa == 0 {
			continue
		}
		da := float32(dst[i+3]) / 255
		if sa == 1 || da == 0 {
			dst[i+0] = src[i+0]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i+2]
			dst[i+3] = src[i+3]
			continue
		}

		// out = src + dst*(1-srcA), computed premultiplied
		outA := sa + da*(1-sa)
		invSa := 1 - sa
		for c := 0; c < 3; c++ {
			s := float32(src[i+c]) / 255 * sa
			d := float32(dst[i+c]) / 255 * da
			dst[i+c] = clampByte((s + d*invSa) / outA * 255)
		}
		dst[i+3] = clampByte(outA * 255)
	}
}

// clampByte clamps a float32 to [0, 255] and rounds to uint8.
func clampByte(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
