package geometry

import (
	"github.com/df07/go-mc-renderer/pkg/core"
	"github.com/df07/go-mc-renderer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}

// AreaLight is a shape whose surface can be sampled uniformly by area,
// used for next-event estimation toward emissive objects.
type AreaLight interface {
	Shape

	// SamplePoint returns a point on the surface, the outward normal there and
	// the density of that point with respect to surface area.
	SamplePoint(sample core.Vec2) (point, normal core.Vec3, areaPDF float64)

	// GetMaterial returns the material of the surface
	GetMaterial() material.Material
}
