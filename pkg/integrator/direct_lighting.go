package integrator

import (
	"github.com/df07/go-mc-renderer/pkg/core"
)

// DirectLightingIntegrator estimates pixels with path tracing plus explicit
// light sampling at every diffuse vertex
type DirectLightingIntegrator struct{}

// NewDirectLightingIntegrator creates a new direct lighting integrator
func NewDirectLightingIntegrator() *DirectLightingIntegrator {
	return &DirectLightingIntegrator{}
}

// Estimate returns the mean of spp light-sampled path traced samples for pixel (x, y)
func (dl *DirectLightingIntegrator) Estimate(x, y int, cam Camera, sc Scene, spp int, sampler core.Sampler) core.Vec3 {
	return estimate(x, y, cam, sc, spp, sampler, func(sc Scene, ray core.Ray, sampler core.Sampler) core.Vec3 {
		return sc.RadianceDirect(ray, sampler)
	})
}
