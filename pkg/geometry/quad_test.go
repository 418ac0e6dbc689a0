package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-mc-renderer/pkg/core"
)

func TestQuad_Hit(t *testing.T) {
	// Unit square in the XZ plane facing -Y (U × V = X × Z = -Y)
	quad := NewQuad(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), nil)

	tests := []struct {
		name      string
		origin    core.Vec3
		shouldHit bool
	}{
		{"inside", core.NewVec3(0.5, 0, 0.5), true},
		{"near corner", core.NewVec3(0.01, 0, 0.99), true},
		{"outside U", core.NewVec3(1.5, 0, 0.5), false},
		{"outside V", core.NewVec3(0.5, 0, -0.1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := quad.Hit(core.NewRay(tt.origin, core.NewVec3(0, 1, 0)), 0.001, 100)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, isHit)
			}
			if !isHit {
				return
			}
			if !hit.FrontFace {
				t.Errorf("Expected front face hit from below")
			}
			if math.Abs(hit.T-1.0) > 1e-9 {
				t.Errorf("Expected t=1, got %f", hit.T)
			}
		})
	}
}

func TestQuad_SamplePoint(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, 2, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), nil)

	point, normal, pdf := quad.SamplePoint(core.NewVec2(0.25, 0.75))
	if point.Subtract(core.NewVec3(-0.5, 2, 0.5)).Length() > 1e-9 {
		t.Errorf("Unexpected sample point %v", point)
	}
	if normal.Subtract(core.NewVec3(0, -1, 0)).Length() > 1e-9 {
		t.Errorf("Expected -Y normal, got %v", normal)
	}
	if math.Abs(pdf-0.25) > 1e-12 {
		t.Errorf("Expected pdf 0.25, got %f", pdf)
	}
}

func TestQuad_BoundingBoxPadded(t *testing.T) {
	box := NewQuad(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), nil).BoundingBox()
	if box.Max.Y-box.Min.Y <= 0 {
		t.Errorf("Expected padded Y extent, got %v", box)
	}
}
