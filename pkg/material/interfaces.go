package material

import (
	"github.com/df07/go-mc-renderer/pkg/core"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter samples an outgoing direction for the incoming ray.
	// Returns false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// EvaluateBRDF evaluates the BRDF for a pair of directions, both pointing away
	// from the surface. Delta (specular) materials return zero.
	EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Vec3
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emit(rayIn core.Ray, hit HitRecord) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // BRDF value for diffuse scattering, reflectance for specular
	PDF         float64   // Solid angle density of Scattered (0 for specular)
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.PDF <= 0
}

// Weight returns the path throughput factor f·cosθ/pdf for this scattering event
func (s ScatterResult) Weight(normal core.Vec3) core.Vec3 {
	if s.IsSpecular() {
		return s.Attenuation
	}
	cosine := s.Scattered.Direction.Normalize().Dot(normal)
	if cosine <= 0 {
		return core.Vec3{}
	}
	return s.Attenuation.Multiply(cosine / s.PDF)
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, facing the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
