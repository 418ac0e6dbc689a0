package geometry

import (
	"github.com/df07/go-mc-renderer/pkg/core"
	"github.com/df07/go-mc-renderer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices.
// The front face is the one whose normal is (V1-V0)×(V2-V0).
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   material.Material
	normal     core.Vec3
	area       float64
	bbox       core.AABB
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	cross := v1.Subtract(v0).Cross(v2.Subtract(v0))
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
		normal:   cross.Normalize(),
		area:     0.5 * cross.Length(),
		bbox:     core.NewAABBFromPoints(v0, v1, v2),
	}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	const epsilon = 1e-12

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return nil, false // Ray lies in the triangle's plane
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tHit := f * edge2.Dot(q)
	if tHit < tMin || tHit > tMax {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        tHit,
		Point:    ray.At(tHit),
		Material: t.Material,
	}
	hit.SetFaceNormal(ray, t.normal)
	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's front-face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Area returns the surface area of the triangle
func (t *Triangle) Area() float64 {
	return t.area
}

// SamplePoint samples the triangle uniformly by area
func (t *Triangle) SamplePoint(sample core.Vec2) (core.Vec3, core.Vec3, float64) {
	b1, b2 := core.SampleTriangleBarycentric(sample)
	point := t.V0.
		Add(t.V1.Subtract(t.V0).Multiply(b1)).
		Add(t.V2.Subtract(t.V0).Multiply(b2))
	return point, t.normal, 1.0 / t.area
}

// GetMaterial returns the triangle's material
func (t *Triangle) GetMaterial() material.Material {
	return t.Material
}
