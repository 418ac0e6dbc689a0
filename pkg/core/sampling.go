package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// Can be swapped out for deterministic testing or different sampling patterns.
// A Sampler is owned by a single goroutine and is not safe for concurrent use.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded from seed.
// Seed 0 is shifted so that every seed yields a distinct stream.
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed + 42)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SampleCosineHemisphere generates a cosine-weighted direction in the hemisphere around normal
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	phi := 2.0 * math.Pi * sample.X
	r := math.Sqrt(sample.Y)

	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	z := math.Sqrt(math.Max(0, 1.0-sample.Y))

	tangent, bitangent := OrthonormalBasis(normal)
	return tangent.Multiply(x).Add(bitangent.Multiply(y)).Add(normal.Multiply(z))
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SamplePointInUnitDisk maps a square sample onto the unit disk using the
// concentric mapping, so the density is uniform without rejection.
func SamplePointInUnitDisk(sample Vec2) Vec2 {
	ox := 2*sample.X - 1
	oy := 2*sample.Y - 1
	if ox == 0 && oy == 0 {
		return Vec2{}
	}

	var r, theta float64
	if math.Abs(ox) > math.Abs(oy) {
		r = ox
		theta = math.Pi / 4 * (oy / ox)
	} else {
		r = oy
		theta = math.Pi/2 - math.Pi/4*(ox/oy)
	}
	return NewVec2(r*math.Cos(theta), r*math.Sin(theta))
}

// SampleTriangleBarycentric returns uniformly distributed barycentric weights (b1, b2)
// for the second and third vertex of a triangle.
func SampleTriangleBarycentric(sample Vec2) (float64, float64) {
	su := math.Sqrt(sample.X)
	return 1 - su, sample.Y * su
}
