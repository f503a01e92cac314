// Package palette extracts dominant colors from images.
//
// Extract clusters a downsampled pixel set with k-means in CIE Lab space
// and reports each cluster center with the fraction of pixels it covers.
// Name classifies a color into a small set of everyday color names by its
// HSV coordinates, which is useful for matching images against styles.
//
// Extraction is deterministic: the cluster seeding uses a fixed random
// source, so the same image always yields the same swatches.
package palette
