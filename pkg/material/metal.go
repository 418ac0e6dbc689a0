package material

import (
	"math"

	"github.com/df07/go-mc-renderer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material, clamping fuzzness to [0, 1]
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzzness: max(0.0, min(1.0, fuzzness))}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzzness > 0 {
		// Uniform point inside the unit sphere
		radius := math.Cbrt(sampler.Get1D())
		perturbation := core.SampleOnUnitSphere(sampler.Get2D()).Multiply(radius * m.Fuzzness)
		reflected = reflected.Add(perturbation).Normalize()
	}

	// Perturbed rays that end up below the surface are absorbed
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
		PDF:         0,
	}, true
}

// EvaluateBRDF is zero everywhere for a delta reflector
func (m *Metal) EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
