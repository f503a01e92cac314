// Package filter implements the low-level raster transforms used to derive
// effect-region masks: separable Gaussian blur over single-channel coverage
// buffers, and iterated 3x3 max-filter dilation for outline growth.
//
// All functions allocate their results; source buffers are never modified.
package filter
