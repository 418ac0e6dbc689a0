// Package sky models the radiance arriving from directions that escape the scene.
package sky

import (
	"math"

	"github.com/df07/go-mc-renderer/pkg/core"
)

// Sky returns the radiance seen along a direction that leaves the scene.
// Implementations are immutable and safe for concurrent use.
type Sky interface {
	Radiance(direction core.Vec3) core.Vec3
}

// Uniform emits the same radiance in every direction
type Uniform struct {
	Emission core.Vec3
}

// NewUniform creates a uniform sky
func NewUniform(emission core.Vec3) *Uniform {
	return &Uniform{Emission: emission}
}

// Radiance returns the fixed emission
func (u *Uniform) Radiance(direction core.Vec3) core.Vec3 {
	return u.Emission
}

// Simple blends between a horizon color and a meridian color by |direction.y|.
// Directions are expected to be unit length.
type Simple struct {
	Meridian core.Vec3
	Horizon  core.Vec3
}

// NewSimple creates a two-color gradient sky
func NewSimple(meridian, horizon core.Vec3) *Simple {
	return &Simple{Meridian: meridian, Horizon: horizon}
}

// Radiance returns Meridian straight up or down and Horizon at the horizon
func (s *Simple) Radiance(direction core.Vec3) core.Vec3 {
	weight := math.Abs(direction.Y)
	return s.Meridian.Multiply(weight).Add(s.Horizon.Multiply(1 - weight))
}
