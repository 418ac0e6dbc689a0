package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-mc-renderer/pkg/core"
)

func TestBVH_Empty(t *testing.T) {
	bvh := NewBVH(nil)
	if _, isHit := bvh.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), 0.001, 100); isHit {
		t.Error("Expected empty BVH to miss")
	}
}

// The BVH must agree with a brute-force closest-hit search
func TestBVH_MatchesLinearSearch(t *testing.T) {
	var shapes []Shape
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			shapes = append(shapes, NewSphere(core.NewVec3(float64(i)*2.5, float64(j)*2.5, float64((i+j)%3)), 1.0, nil))
		}
	}
	first := shapes[0]
	bvh := NewBVH(shapes)

	if shapes[0] != first {
		t.Fatal("NewBVH reordered the caller's slice")
	}

	sampler := core.NewSeededSampler(1)
	for k := 0; k < 500; k++ {
		origin := core.NewVec3(sampler.Get1D()*25, sampler.Get1D()*25, -10)
		direction := core.NewVec3(sampler.Get1D()-0.5, sampler.Get1D()-0.5, 1).Normalize()
		ray := core.NewRay(origin, direction)

		expectedT := math.Inf(1)
		for _, shape := range shapes {
			if hit, isHit := shape.Hit(ray, 0.001, expectedT); isHit {
				expectedT = hit.T
			}
		}

		hit, isHit := bvh.Hit(ray, 0.001, math.Inf(1))
		if math.IsInf(expectedT, 1) {
			if isHit {
				t.Fatalf("ray %d: BVH hit at t=%f, linear search missed", k, hit.T)
			}
			continue
		}
		if !isHit {
			t.Fatalf("ray %d: BVH missed, linear search hit at t=%f", k, expectedT)
		}
		if math.Abs(hit.T-expectedT) > 1e-9 {
			t.Fatalf("ray %d: expected t=%f, got %f", k, expectedT, hit.T)
		}
	}
}
