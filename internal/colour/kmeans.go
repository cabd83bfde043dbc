package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"sort"
)

// Extractor pulls the dominant colours out of an image using k-means
// clustering. Clustering happens in OKLab space so that Euclidean
// centroid distance tracks perceived colour difference; the extract
// command feeds the resulting colours into the dye search.
type Extractor struct {
	maxIterations int
	convergence   float64
	maxSamples    int
}

// NewExtractor creates an Extractor with default settings.
func NewExtractor() *Extractor {
	return &Extractor{
		maxIterations: 20,
		convergence:   0.002, // average centroid movement in OKLab units
		maxSamples:    2000,
	}
}

// DominantColour is one extracted colour with its share of the sampled
// pixels. Weights across a result sum to 1.
type DominantColour struct {
	Colour Colour  `json:"colour"`
	Weight float64 `json:"weight"`
}

// Extract returns up to count dominant colours, ordered by descending
// cluster weight.
func (e *Extractor) Extract(img image.Image, count int) ([]DominantColour, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 || count > 64 {
		return nil, fmt.Errorf("%w: colour count %d (want 1-64)", ErrInvalidRange, count)
	}

	samples := samplePixels(img, e.maxSamples)
	if len(samples) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	// Dedupe first: asking for more colours than the image holds just
	// returns everything, weighted by pixel count.
	counts := make(map[Colour]int, len(samples))
	unique := make([]Colour, 0, len(samples))
	for _, c := range samples {
		if counts[c] == 0 {
			unique = append(unique, c)
		}
		counts[c]++
	}
	if count >= len(unique) {
		out := make([]DominantColour, len(unique))
		for i, c := range unique {
			out[i] = DominantColour{Colour: c, Weight: float64(counts[c]) / float64(len(samples))}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })
		return out, nil
	}

	points := make([]OKLab, len(samples))
	for i, c := range samples {
		points[i] = c.ToOKLab()
	}

	centroids, weights := e.cluster(points, count)

	out := make([]DominantColour, len(centroids))
	for i, ct := range centroids {
		out[i] = DominantColour{Colour: ct.ToColour(), Weight: weights[i]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })
	return out, nil
}

// samplePixels reads at most maxSamples pixels from the image, grid
// sampling large images for performance.
func samplePixels(img image.Image, maxSamples int) []Colour {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()

	step := 1
	if total > maxSamples {
		step = max(int(math.Sqrt(float64(total)/float64(maxSamples))), 1)
	}

	pixels := make([]Colour, 0, maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, Colour{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
			if len(pixels) >= maxSamples && total > maxSamples {
				return pixels
			}
		}
	}
	return pixels
}

func oklabDist(a, b OKLab) float64 {
	return math.Sqrt(sq(a.L-b.L) + sq(a.A-b.A) + sq(a.B-b.B))
}

// cluster runs k-means over the OKLab points and returns centroids with
// their normalised cluster weights.
func (e *Extractor) cluster(points []OKLab, k int) ([]OKLab, []float64) {
	centroids := e.seedCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		// Under 1% reassignment counts as converged.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recomputeCentroids(points, assignments, k)

		movement := 0.0
		for i := range centroids {
			movement += oklabDist(centroids[i], next[i])
		}
		centroids = next

		if movement/float64(k) < e.convergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, a := range assignments {
		weights[a]++
	}
	for i := range weights {
		weights[i] /= float64(len(assignments))
	}
	return centroids, weights
}

// seedCentroids picks initial centroids with k-means++: each new seed
// is chosen with probability proportional to its squared distance from
// the nearest existing seed.
func (e *Extractor) seedCentroids(points []OKLab, k int) []OKLab {
	centroids := make([]OKLab, 0, k)
	centroids = append(centroids, points[rand.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		total := 0.0
		for i, p := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := oklabDist(p, c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Every remaining point coincides with a seed; nudge the last
			// one so the loop terminates.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, OKLab{L: last.L + 1e-4, A: last.A, B: last.B})
			continue
		}

		target := rand.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}
	return centroids
}

func nearestCentroid(p OKLab, centroids []OKLab) int {
	nearest := 0
	minDist := math.MaxFloat64
	for i, c := range centroids {
		if d := oklabDist(p, c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

func recomputeCentroids(points []OKLab, assignments []int, k int) []OKLab {
	sums := make([]OKLab, k)
	counts := make([]int, k)
	for i, p := range points {
		c := assignments[i]
		sums[c].L += p.L
		sums[c].A += p.A
		sums[c].B += p.B
		counts[c]++
	}

	centroids := make([]OKLab, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			n := float64(counts[i])
			centroids[i] = OKLab{L: sums[i].L / n, A: sums[i].A / n, B: sums[i].B / n}
		} else {
			// Empty cluster, reseed from a random point.
			centroids[i] = points[rand.Intn(len(points))]
		}
	}
	return centroids
}
