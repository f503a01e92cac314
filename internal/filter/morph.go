package filter

import "github.com/typefx/wordart/internal/parallel"

// MaxFilter3 applies a single 3x3 max filter to a single-channel buffer and
// returns the result. Each output pixel is the maximum of its 3x3
// neighborhood; values outside the buffer count as 0.
func MaxFilter3(src []uint8, width, height int) []uint8 {
	dst := make([]uint8, len(src))
	if width <= 0 || height <= 0 || len(src) < width*height {
		return dst
	}

	parallel.For(height, func(y int) {
		y0, y1 := y-1, y+1
		if y0 < 0 {
			y0 = 0
		}
		if y1 >= height {
			y1 = height - 1
		}
		for x := 0; x < width; x++ {
			x0, x1 := x-1, x+1
			if x0 < 0 {
				x0 = 0
			}
			if x1 >= width {
				x1 = width - 1
			}

			var maxVal uint8
			for ny := y0; ny <= y1; ny++ {
				row := ny * width
				for nx := x0; nx <= x1; nx++ {
					if v := src[row+nx]; v > maxVal {
						maxVal = v
					}
				}
			}
			dst[y*width+x] = maxVal
		}
	})

	return dst
}

// Dilate grows the nonzero region of a coverage buffer by applying the 3x3
// max filter `radius` times. The iteration count, not a circular kernel, is
// the parameter: growth is squarish at low radii, which matches the outline
// look this package targets.
//
// radius <= 0 returns an unmodified copy.
func Dilate(src []uint8, width, height int, radius int) []uint8 {
	if radius <= 0 {
		dst := make([]uint8, len(src))
		copy(dst, src)
		return dst
	}

	out := src
	for i := 0; i < radius; i++ {
		out = MaxFilter3(out, width, height)
	}
	return out
}
