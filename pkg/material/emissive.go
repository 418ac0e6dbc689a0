package material

import (
	"github.com/df07/go-mc-renderer/pkg/core"
)

// Emissive represents a light-emitting material.
// It emits from its front face only and never scatters.
type Emissive struct {
	Emission core.Vec3
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter absorbs every incoming ray
func (e *Emissive) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit returns the emission when the front face was hit
func (e *Emissive) Emit(rayIn core.Ray, hit HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return e.Emission
}

// EvaluateBRDF is zero: lights don't reflect
func (e *Emissive) EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Vec3 {
	return core.Vec3{}
}
