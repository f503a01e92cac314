package filter

import (
	"math"

	"github.com/typefx/wordart/internal/cache"
)

// GaussianKernel generates a 1D Gaussian kernel for the given sigma.
// The kernel is normalized so all values sum to 1.0.
//
// The kernel size is computed as 2 * ceil(sigma * 3) + 1, which covers
// 99.7% of the Gaussian distribution (3 standard deviations).
//
// For sigma <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1.0}
	}

	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1

	kernel := make([]float32, size)

	// Gaussian formula: G(x) = exp(-x²/(2σ²)) / (σ√(2π))
	// We skip the normalization constant since we'll normalize sum to 1
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	// Normalize so kernel sums to 1.0
	if sum > 0 {
		invSum := float32(1.0 / sum)
		for i := range kernel {
			kernel[i] *= invSum
		}
	}

	return kernel
}

// kernelCache holds computed kernels keyed by sigma quantized to 0.01,
// bounded by the cache's LRU eviction.
var kernelCache = cache.New[int, []float32](16)

// CachedGaussianKernel returns a cached Gaussian kernel for the sigma.
// This is more efficient when the same sigma is used repeatedly.
func CachedGaussianKernel(sigma float64) []float32 {
	key := int(sigma * 100)
	return kernelCache.GetOrCreate(key, func() []float32 {
		return GaussianKernel(sigma)
	})
}

// KernelSize returns the kernel length for a given sigma.
// This is useful for pre-allocating buffers.
func KernelSize(sigma float64) int {
	if sigma <= 0 {
		return 1
	}
	halfSize := int(math.Ceil(sigma * 3))
	return halfSize*2 + 1
}
