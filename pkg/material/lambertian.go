package material

import (
	"math"

	"github.com/df07/go-mc-renderer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())

	cosTheta := scatterDirection.Dot(hit.Normal)
	if cosTheta <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: l.Albedo.Multiply(1.0 / math.Pi),
		PDF:         cosTheta / math.Pi,
	}, true
}

// EvaluateBRDF returns albedo/π above the surface and zero below it
func (l *Lambertian) EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Vec3 {
	if outgoingDir.Dot(normal) <= 0 {
		return core.Vec3{}
	}
	return l.Albedo.Multiply(1.0 / math.Pi)
}
