package palette

import (
	"errors"
	"image"
	"math"
	"math/rand"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/typefx/wordart"
)

// ErrEmptyImage is returned when there are no pixels to analyze.
var ErrEmptyImage = errors.New("palette: empty image")

// Defaults for Extract when the caller passes zero.
const (
	DefaultColors  = 5
	DefaultSamples = 1000
)

// clusterSeed fixes the k-means initialization so extraction is
// reproducible across runs.
const clusterSeed = 42

const maxIterations = 64

// Swatch is one dominant color and the fraction of sampled pixels that
// cluster around it.
type Swatch struct {
	Color    wordart.RGBA
	Fraction float64
}

type labPoint struct {
	l, a, b float64
}

func (p labPoint) distSq(q labPoint) float64 {
	dl, da, db := p.l-q.l, p.a-q.a, p.b-q.b
	return dl*dl + da*da + db*db
}

// Extract returns the n most dominant colors of img, sorted by coverage.
// The image is downsampled to at most samples pixels before clustering.
// Zero n or samples selects the defaults. Fewer distinct pixel values than
// n yield fewer swatches; fractions always sum to 1.
func Extract(img image.Image, n, samples int) ([]Swatch, error) {
	if n <= 0 {
		n = DefaultColors
	}
	if samples <= 0 {
		samples = DefaultSamples
	}
	points := samplePixels(img, samples)
	if len(points) == 0 {
		return nil, ErrEmptyImage
	}
	if n > len(points) {
		n = len(points)
	}

	rng := rand.New(rand.NewSource(clusterSeed))
	centers, labels := cluster(points, n, rng)

	counts := make([]int, len(centers))
	for _, l := range labels {
		counts[l]++
	}

	swatches := make([]Swatch, 0, len(centers))
	for i, c := range centers {
		if counts[i] == 0 {
			continue
		}
		rgb := colorful.Lab(c.l, c.a, c.b).Clamped()
		swatches = append(swatches, Swatch{
			Color:    wordart.RGB(rgb.R, rgb.G, rgb.B),
			Fraction: float64(counts[i]) / float64(len(labels)),
		})
	}
	sort.SliceStable(swatches, func(i, j int) bool {
		return swatches[i].Fraction > swatches[j].Fraction
	})

	wordart.Logger().Debug("palette: extracted swatches",
		"pixels", len(points), "clusters", len(swatches))
	return swatches, nil
}

// samplePixels downsamples img so its pixel count stays at or below the
// budget, preserving aspect ratio, and converts every pixel to Lab.
func samplePixels(img image.Image, budget int) []labPoint {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	ratio := math.Min(1, math.Sqrt(float64(budget)/float64(w*h)))
	sw := max(1, int(float64(w)*ratio))
	sh := max(1, int(float64(h)*ratio))

	small := image.NewRGBA(image.Rect(0, 0, sw, sh))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, draw.Src, nil)

	points := make([]labPoint, 0, sw*sh)
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			c, _ := colorful.MakeColor(small.RGBAAt(x, y))
			l, a, bb := c.Lab()
			points = append(points, labPoint{l, a, bb})
		}
	}
	return points
}

// cluster runs Lloyd's algorithm with k-means++ seeding. Labels index
// centers; iteration stops when assignments are stable.
func cluster(points []labPoint, k int, rng *rand.Rand) ([]labPoint, []int) {
	centers := seedCenters(points, k, rng)
	labels := make([]int, len(points))

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, p := range points {
			best, bestD := 0, math.Inf(1)
			for j, c := range centers {
				if d := p.distSq(c); d < bestD {
					best, bestD = j, d
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		sums := make([]labPoint, k)
		counts := make([]int, k)
		for i, p := range points {
			l := labels[i]
			sums[l].l += p.l
			sums[l].a += p.a
			sums[l].b += p.b
			counts[l]++
		}
		for j := range centers {
			if counts[j] == 0 {
				continue
			}
			n := float64(counts[j])
			centers[j] = labPoint{sums[j].l / n, sums[j].a / n, sums[j].b / n}
		}
	}
	return centers, labels
}

// seedCenters picks k initial centers, the first at random and the rest
// weighted by squared distance to the nearest chosen center.
func seedCenters(points []labPoint, k int, rng *rand.Rand) []labPoint {
	centers := make([]labPoint, 0, k)
	centers = append(centers, points[rng.Intn(len(points))])

	dist := make([]float64, len(points))
	for len(centers) < k {
		total := 0.0
		for i, p := range points {
			d := math.Inf(1)
			for _, c := range centers {
				if dd := p.distSq(c); dd < d {
					d = dd
				}
			}
			dist[i] = d
			total += d
		}
		if total == 0 {
			// All remaining points coincide with a center.
			centers = append(centers, centers[0])
			continue
		}
		target := rng.Float64() * total
		idx := len(points) - 1
		for i, d := range dist {
			target -= d
			if target <= 0 {
				idx = i
				break
			}
		}
		centers = append(centers, points[idx])
	}
	return centers
}
