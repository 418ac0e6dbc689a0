package integrator

import (
	"github.com/df07/go-mc-renderer/pkg/core"
)

// PathTracingIntegrator estimates pixels with unidirectional path tracing
type PathTracingIntegrator struct{}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{}
}

// Estimate returns the mean of spp path traced samples for pixel (x, y)
func (pt *PathTracingIntegrator) Estimate(x, y int, cam Camera, sc Scene, spp int, sampler core.Sampler) core.Vec3 {
	return estimate(x, y, cam, sc, spp, sampler, func(sc Scene, ray core.Ray, sampler core.Sampler) core.Vec3 {
		return sc.Radiance(ray, sampler)
	})
}
