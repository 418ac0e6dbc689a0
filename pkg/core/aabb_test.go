package core

import (
	"math"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"straight through", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), true},
		{"miss above", NewRay(NewVec3(0, 2, 5), NewVec3(0, 0, -1)), false},
		{"parallel inside slab", NewRay(NewVec3(0.5, 0.5, 5), NewVec3(0, 0, -1)), true},
		{"pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), false},
		{"origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 1, 0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, 0.001, math.Inf(1)); got != tt.expected {
				t.Errorf("Expected hit=%t, got %t", tt.expected, got)
			}
		})
	}
}

func TestAABB_UnionAndAxis(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-2, 0.5, 0), NewVec3(0, 3, 0.5))

	u := a.Union(b)
	if u.Min != NewVec3(-2, 0, 0) || u.Max != NewVec3(1, 3, 1) {
		t.Errorf("Unexpected union %v", u)
	}
	if u.LongestAxis() != 0 && u.LongestAxis() != 1 {
		t.Errorf("Expected X or Y as longest axis, got %d", u.LongestAxis())
	}
	if got := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(0, 0, 4)).LongestAxis(); got != 2 {
		t.Errorf("Expected Z as longest axis, got %d", got)
	}
}
