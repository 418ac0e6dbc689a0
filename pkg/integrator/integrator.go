// Package integrator turns camera samples and scene radiance into per-pixel estimates.
package integrator

import (
	"errors"
	"fmt"

	"github.com/df07/go-mc-renderer/pkg/core"
)

// ErrUnknownIntegrator is returned by Parse for names it does not recognise
var ErrUnknownIntegrator = errors.New("unknown integrator type")

// Camera generates sensor samples. Implementations must be safe for concurrent use.
type Camera interface {
	// Sample returns a ray for a point inside pixel (x, y), the density of the
	// sample and the geometric term between the sensor and the aperture.
	Sample(x, y int, sampler core.Sampler) (ray core.Ray, pdf float64, gTerm float64)

	// SensorSensitivity converts sensor irradiance into a pixel value
	SensorSensitivity() float64
}

// Scene estimates radiance arriving along a ray. Implementations must be safe
// for concurrent use.
type Scene interface {
	// Radiance uses plain path tracing
	Radiance(ray core.Ray, sampler core.Sampler) core.Vec3
	// RadianceDirect path traces with next-event estimation toward emitters
	RadianceDirect(ray core.Ray, sampler core.Sampler) core.Vec3
}

// Integrator produces the radiance estimate for one pixel
type Integrator interface {
	Estimate(x, y int, cam Camera, sc Scene, spp int, sampler core.Sampler) core.Vec3
}

// Type selects an integrator
type Type int

const (
	PathTracingType    Type = iota // "pt"
	DirectLightingType             // "pt-direct"
)

// String returns the configuration name of the integrator type
func (t Type) String() string {
	switch t {
	case PathTracingType:
		return "pt"
	case DirectLightingType:
		return "pt-direct"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Parse maps a configuration name to an integrator type
func Parse(name string) (Type, error) {
	switch name {
	case "pt":
		return PathTracingType, nil
	case "pt-direct":
		return DirectLightingType, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownIntegrator, name)
	}
}

// New returns the integrator for the given type
func New(t Type) Integrator {
	if t == PathTracingType {
		return NewPathTracingIntegrator()
	}
	return NewDirectLightingIntegrator()
}

// transport is the scene method an integrator uses for each camera ray
type transport func(sc Scene, ray core.Ray, sampler core.Sampler) core.Vec3

// estimate averages spp sensor samples of transport for pixel (x, y):
// each sample contributes L·g·(sensitivity/pdf).
func estimate(x, y int, cam Camera, sc Scene, spp int, sampler core.Sampler, radiance transport) core.Vec3 {
	if spp < 1 {
		return core.Vec3{}
	}

	sensitivity := cam.SensorSensitivity()
	var sum core.Vec3
	for i := 0; i < spp; i++ {
		ray, pdf, gTerm := cam.Sample(x, y, sampler)
		irradiance := radiance(sc, ray, sampler).Multiply(gTerm)
		sum = sum.Add(irradiance.Multiply(sensitivity / pdf))
	}
	return sum.Multiply(1.0 / float64(spp))
}
