// Package scene holds the renderable world and its light transport estimators.
package scene

import (
	"math"

	"github.com/df07/go-mc-renderer/pkg/core"
	"github.com/df07/go-mc-renderer/pkg/geometry"
	"github.com/df07/go-mc-renderer/pkg/material"
	"github.com/df07/go-mc-renderer/pkg/sky"
)

const (
	// tMin offsets secondary rays off the surface they leave
	tMin = 1e-4

	minSurvival = 0.05
	maxSurvival = 0.95
)

// Scene contains all the elements needed for rendering.
// After Preprocess it is read-only and safe for concurrent use.
type Scene struct {
	Shapes []geometry.Shape     // Objects in the scene
	Lights []geometry.AreaLight // Emissive shapes, sampled for next-event estimation
	Sky    sky.Sky              // Radiance for escaping rays; nil is black
	BVH    *geometry.BVH        // Acceleration structure for ray-object intersection

	MaxDepth             int // Maximum path vertices per camera ray
	RussianRouletteDepth int // Bounces before Russian roulette can terminate a path
}

// Preprocess builds the BVH and collects every emissive area shape as a light
func (s *Scene) Preprocess() {
	s.BVH = geometry.NewBVH(s.Shapes)

	s.Lights = s.Lights[:0]
	for _, shape := range s.Shapes {
		light, ok := shape.(geometry.AreaLight)
		if !ok {
			continue
		}
		if _, emissive := light.GetMaterial().(material.Emitter); emissive {
			s.Lights = append(s.Lights, light)
		}
	}
}

// Radiance estimates the radiance arriving along ray with unidirectional path
// tracing: emission is gathered at every hit and the sky on escape.
func (s *Scene) Radiance(ray core.Ray, sampler core.Sampler) core.Vec3 {
	var radiance core.Vec3
	throughput := core.NewVec3(1, 1, 1)

	for depth := 0; depth < s.MaxDepth; depth++ {
		hit, isHit := s.BVH.Hit(ray, tMin, math.Inf(1))
		if !isHit {
			radiance = radiance.Add(throughput.MultiplyVec(s.skyRadiance(ray)))
			break
		}

		radiance = radiance.Add(throughput.MultiplyVec(emitted(ray, hit)))

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			break
		}

		var alive bool
		throughput, alive = s.continuePath(depth, throughput.MultiplyVec(scatter.Weight(hit.Normal)), sampler)
		if !alive {
			break
		}
		ray = scatter.Scattered
	}
	return radiance
}

// RadianceDirect estimates the radiance arriving along ray with path tracing
// and next-event estimation. Emitters are sampled explicitly at diffuse hits,
// so emission reached by a diffuse bounce is skipped to avoid counting it twice.
func (s *Scene) RadianceDirect(ray core.Ray, sampler core.Sampler) core.Vec3 {
	var radiance core.Vec3
	throughput := core.NewVec3(1, 1, 1)
	countEmission := true // camera rays and specular bounces see emitters directly

	for depth := 0; depth < s.MaxDepth; depth++ {
		hit, isHit := s.BVH.Hit(ray, tMin, math.Inf(1))
		if !isHit {
			radiance = radiance.Add(throughput.MultiplyVec(s.skyRadiance(ray)))
			break
		}

		if countEmission {
			radiance = radiance.Add(throughput.MultiplyVec(emitted(ray, hit)))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			break
		}

		if !scatter.IsSpecular() {
			radiance = radiance.Add(throughput.MultiplyVec(s.sampleDirect(ray, hit, sampler)))
		}
		countEmission = scatter.IsSpecular()

		var alive bool
		throughput, alive = s.continuePath(depth, throughput.MultiplyVec(scatter.Weight(hit.Normal)), sampler)
		if !alive {
			break
		}
		ray = scatter.Scattered
	}
	return radiance
}

// sampleDirect picks one light uniformly, samples a point on it and returns
// f·Le·cosθ·cosθ'/(r²·pdf) when the point is visible
func (s *Scene) sampleDirect(ray core.Ray, hit *material.HitRecord, sampler core.Sampler) core.Vec3 {
	numLights := len(s.Lights)
	if numLights == 0 {
		return core.Vec3{}
	}

	index := int(sampler.Get1D() * float64(numLights))
	if index >= numLights {
		index = numLights - 1
	}
	light := s.Lights[index]
	selectionPDF := 1.0 / float64(numLights)

	point, lightNormal, areaPDF := light.SamplePoint(sampler.Get2D())
	if areaPDF <= 0 {
		return core.Vec3{}
	}

	toLight := point.Subtract(hit.Point)
	distanceSquared := toLight.LengthSquared()
	distance := math.Sqrt(distanceSquared)
	if distance < tMin {
		return core.Vec3{}
	}
	direction := toLight.Multiply(1 / distance)

	cosSurface := direction.Dot(hit.Normal)
	cosLight := direction.Negate().Dot(lightNormal)
	if cosSurface <= 0 || cosLight <= 0 {
		return core.Vec3{}
	}

	shadowRay := core.NewRay(hit.Point, direction)
	if _, blocked := s.BVH.Hit(shadowRay, tMin, distance*(1-1e-6)-tMin); blocked {
		return core.Vec3{}
	}

	emitter, ok := light.GetMaterial().(material.Emitter)
	if !ok {
		return core.Vec3{}
	}
	lightHit := material.HitRecord{Point: point, Normal: lightNormal, T: distance, FrontFace: true, Material: light.GetMaterial()}
	emission := emitter.Emit(shadowRay, lightHit)

	brdf := hit.Material.EvaluateBRDF(ray.Direction.Negate().Normalize(), direction, hit.Normal)
	return brdf.MultiplyVec(emission).Multiply(cosSurface * cosLight / (distanceSquared * areaPDF * selectionPDF))
}

// continuePath applies Russian roulette once depth reaches RussianRouletteDepth.
// It returns the compensated throughput and whether the path survives.
func (s *Scene) continuePath(depth int, throughput core.Vec3, sampler core.Sampler) (core.Vec3, bool) {
	if throughput.IsZero() {
		return throughput, false
	}
	if depth+1 < s.RussianRouletteDepth {
		return throughput, true
	}

	survival := math.Min(maxSurvival, math.Max(minSurvival, throughput.MaxComponent()))
	if sampler.Get1D() >= survival {
		return core.Vec3{}, false
	}
	return throughput.Multiply(1 / survival), true
}

func (s *Scene) skyRadiance(ray core.Ray) core.Vec3 {
	if s.Sky == nil {
		return core.Vec3{}
	}
	return s.Sky.Radiance(ray.Direction.Normalize())
}

// emitted returns the emission at hit if its material is an emitter
func emitted(ray core.Ray, hit *material.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(material.Emitter); isEmissive {
		return emitter.Emit(ray, *hit)
	}
	return core.Vec3{}
}
