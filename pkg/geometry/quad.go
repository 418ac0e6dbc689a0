package geometry

import (
	"math"

	"github.com/df07/go-mc-renderer/pkg/core"
	"github.com/df07/go-mc-renderer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors.
// The front face normal is U × V.
type Quad struct {
	Corner   core.Vec3
	U        core.Vec3
	V        core.Vec3
	Material material.Material
	normal   core.Vec3
	d        float64   // Plane constant: normal · p = d
	w        core.Vec3 // n / (n · (U×V)) for planar coordinates
	area     float64
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()
	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Material: mat,
		normal:   normal,
		d:        normal.Dot(corner),
		w:        cross.Multiply(1.0 / cross.Dot(cross)),
		area:     cross.Length(),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.normal)
	if math.Abs(denominator) < 1e-12 {
		return nil, false
	}

	t := (q.d - ray.Origin.Dot(q.normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	planar := point.Subtract(q.Corner)
	alpha := q.w.Dot(planar.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planar))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    point,
		Material: q.Material,
	}
	hit.SetFaceNormal(ray, q.normal)
	return hit, true
}

// BoundingBox returns the bounding box of the four corners, padded on flat axes
func (q *Quad) BoundingBox() core.AABB {
	box := core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	)
	const pad = 1e-4
	if box.Max.X-box.Min.X < pad {
		box.Min.X -= pad
		box.Max.X += pad
	}
	if box.Max.Y-box.Min.Y < pad {
		box.Min.Y -= pad
		box.Max.Y += pad
	}
	if box.Max.Z-box.Min.Z < pad {
		box.Min.Z -= pad
		box.Max.Z += pad
	}
	return box
}

// SamplePoint samples the quad uniformly by area
func (q *Quad) SamplePoint(sample core.Vec2) (core.Vec3, core.Vec3, float64) {
	point := q.Corner.Add(q.U.Multiply(sample.X)).Add(q.V.Multiply(sample.Y))
	return point, q.normal, 1.0 / q.area
}

// GetMaterial returns the quad's material
func (q *Quad) GetMaterial() material.Material {
	return q.Material
}
