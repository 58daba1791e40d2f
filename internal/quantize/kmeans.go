package quantize

import (
	"cmp"
	"crypto/sha256"
	"encoding/binary"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/jmylchreest/hctheme/internal/colour"
)

// KMeans clusters colours in L*a*b* space, seeding its centroids with
// k-means++. Unless Seed is set, the random source is seeded from the pixel
// content, so the same pixels always give the same result.
type KMeans struct {
	// MaxIterations bounds the refinement passes.
	MaxIterations int
	// Convergence is the mean centroid movement, in ΔE, below which
	// refinement stops.
	Convergence float64
	// MaxSamples bounds the pixels clustered. Larger inputs are sampled
	// with an even stride.
	MaxSamples int
	// Seed fixes the random source when non-zero.
	Seed uint64
}

// NewKMeans returns a KMeans quantizer with default settings.
func NewKMeans() *KMeans {
	return &KMeans{
		MaxIterations: 20,
		Convergence:   0.5,
		MaxSamples:    5000,
	}
}

// point is a colour in L*a*b* space.
type point struct {
	L, A, B float64
}

func pointOf(c colour.ARGB) point {
	l, a, b := c.Lab()
	return point{l, a, b}
}

func (p point) distanceSquared(o point) float64 {
	dl := p.L - o.L
	da := p.A - o.A
	db := p.B - o.B
	return dl*dl + da*da + db*db
}

func (p point) argb() colour.ARGB {
	return colour.FromLab(p.L, p.A, p.B)
}

// Quantize implements Quantizer. Cluster counts are in pixels of the input,
// scaled up when the input was sampled.
func (k *KMeans) Quantize(pixels []colour.ARGB, maxColors int) (Result, error) {
	if err := validateCount(maxColors); err != nil {
		return Result{}, err
	}
	population := Map(pixels).ColorToCount
	if len(population) == 0 {
		return Result{}, ErrNoPixels
	}
	if len(population) <= maxColors {
		return Result{ColorToCount: population}, nil
	}

	samples := k.sample(pixels)
	points := make([]point, len(samples))
	for i, c := range samples {
		points[i] = pointOf(c)
	}

	seed := k.Seed
	if seed == 0 {
		seed = contentSeed(samples)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	centroids, sizes := k.cluster(rng, points, maxColors)

	total := 0
	for _, n := range population {
		total += n
	}
	scale := float64(total) / float64(len(points))

	out := make(map[colour.ARGB]int, len(centroids))
	for i, c := range centroids {
		if sizes[i] == 0 {
			continue
		}
		out[c.argb()] += int(math.Round(float64(sizes[i]) * scale))
	}
	return Result{ColorToCount: out}, nil
}

// sample returns the opaque pixels, thinned to at most MaxSamples.
func (k *KMeans) sample(pixels []colour.ARGB) []colour.ARGB {
	opaque := make([]colour.ARGB, 0, len(pixels))
	for _, p := range pixels {
		if p.IsOpaque() {
			opaque = append(opaque, p)
		}
	}
	if k.MaxSamples <= 0 || len(opaque) <= k.MaxSamples {
		return opaque
	}
	step := len(opaque) / k.MaxSamples
	if len(opaque)%k.MaxSamples != 0 {
		step++
	}
	sampled := make([]colour.ARGB, 0, k.MaxSamples)
	for i := 0; i < len(opaque); i += step {
		sampled = append(sampled, opaque[i])
	}
	return sampled
}

// contentSeed derives a seed from the pixels.
func contentSeed(pixels []colour.ARGB) uint64 {
	h := sha256.New()
	buf := make([]byte, 4)
	for _, p := range pixels {
		binary.LittleEndian.PutUint32(buf, uint32(p))
		h.Write(buf)
	}
	return binary.LittleEndian.Uint64(h.Sum(nil))
}

// cluster runs k-means and returns the centroids and the number of points
// assigned to each.
func (k *KMeans) cluster(rng *rand.Rand, points []point, n int) ([]point, []int) {
	centroids := initialCentroids(rng, points, n)
	assignments := make([]int, len(points))
	for i := range assignments {
		assignments[i] = -1
	}

	for range max(k.MaxIterations, 1) {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if changed == 0 {
			break
		}

		next := recalculate(rng, points, assignments, len(centroids))
		movement := 0.0
		for i := range centroids {
			movement += math.Sqrt(centroids[i].distanceSquared(next[i]))
		}
		centroids = next
		if movement/float64(len(centroids)) < k.Convergence {
			for i, p := range points {
				assignments[i] = nearestCentroid(p, centroids)
			}
			break
		}
	}

	sizes := make([]int, len(centroids))
	for _, a := range assignments {
		sizes[a]++
	}
	return centroids, sizes
}

// initialCentroids picks n starting centroids with k-means++: each new
// centroid is a point chosen with probability proportional to its squared
// distance from the nearest existing one.
func initialCentroids(rng *rand.Rand, points []point, n int) []point {
	centroids := make([]point, 0, n)
	centroids = append(centroids, points[rng.IntN(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < n {
		total := 0.0
		for i, p := range points {
			nearest := math.MaxFloat64
			for _, c := range centroids {
				nearest = math.Min(nearest, p.distanceSquared(c))
			}
			distances[i] = nearest
			total += nearest
		}
		if total == 0 {
			// Every point is already a centroid.
			break
		}

		target := rng.Float64() * total
		cumulative := 0.0
		chosen := len(points) - 1
		for i, d := range distances {
			cumulative += d
			if cumulative >= target && d > 0 {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}
	return centroids
}

func nearestCentroid(p point, centroids []point) int {
	best := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := p.distanceSquared(c); d < best {
			best = d
			nearest = i
		}
	}
	return nearest
}

// recalculate moves each centroid to the mean of its points. An empty
// cluster is restarted at a random point.
func recalculate(rng *rand.Rand, points []point, assignments []int, n int) []point {
	sums := make([]point, n)
	counts := make([]int, n)
	for i, p := range points {
		c := assignments[i]
		sums[c].L += p.L
		sums[c].A += p.A
		sums[c].B += p.B
		counts[c]++
	}

	centroids := make([]point, n)
	for i := range n {
		if counts[i] == 0 {
			centroids[i] = points[rng.IntN(len(points))]
			continue
		}
		count := float64(counts[i])
		centroids[i] = point{sums[i].L / count, sums[i].A / count, sums[i].B / count}
	}
	return centroids
}

// mostCommon returns the n colours with the highest counts, ties broken by
// colour value.
func mostCommon(counts map[colour.ARGB]int, n int) []colour.ARGB {
	colours := make([]colour.ARGB, 0, len(counts))
	for c := range counts {
		colours = append(colours, c)
	}
	slices.SortFunc(colours, func(a, b colour.ARGB) int {
		if counts[a] != counts[b] {
			return counts[b] - counts[a]
		}
		return cmp.Compare(a, b)
	})
	if len(colours) > n {
		colours = colours[:n]
	}
	return colours
}
