package filter

import "github.com/typefx/wordart/internal/parallel"

// BlurAlpha applies a separable Gaussian blur to a single-channel coverage
// buffer and returns the blurred copy. The two-pass algorithm convolves rows
// then columns with the same 1D kernel, O(w*h*k) instead of O(w*h*k²).
//
// Edges are handled by zero extension: coverage outside the buffer is
// treated as empty, so blurring a shape near the border lets it fade out
// rather than smear against a phantom edge.
//
// For sigma <= 0 or a degenerate buffer the input is copied unchanged.
func BlurAlpha(src []uint8, width, height int, sigma float64) []uint8 {
	dst := make([]uint8, len(src))
	if width <= 0 || height <= 0 || len(src) < width*height {
		return dst
	}
	if sigma <= 0 {
		copy(dst, src)
		return dst
	}

	kernel := CachedGaussianKernel(sigma)
	kernelSize := len(kernel)
	halfKernel := kernelSize / 2

	temp := make([]float32, width*height)

	// Horizontal pass. Rows are independent, so both passes fan out
	// across rows.
	parallel.For(height, func(y int) {
		row := y * width
		for x := 0; x < width; x++ {
			var sum float32
			for k := 0; k < kernelSize; k++ {
				kx := x + k - halfKernel
				if kx < 0 || kx >= width {
					continue
				}
				sum += float32(src[row+kx]) * kernel[k]
			}
			temp[row+x] = sum
		}
	})

	// Vertical pass
	parallel.For(height, func(y int) {
		for x := 0; x < width; x++ {
			var sum float32
			for k := 0; k < kernelSize; k++ {
				ky := y + k - halfKernel
				if ky < 0 || ky >= height {
					continue
				}
				sum += temp[ky*width+x] * kernel[k]
			}
			dst[y*width+x] = clampUint8(sum)
		}
	})

	return dst
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
