package geometry

import (
	"sort"

	"github.com/df07/go-mc-renderer/pkg/core"
	"github.com/df07/go-mc-renderer/pkg/material"
)

// leafThreshold is the largest shape count stored directly in a leaf
const leafThreshold = 8

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // Leaf shapes (nil for internal nodes)
}

// BVH is a bounding volume hierarchy over a fixed set of shapes.
// It is immutable after construction and safe for concurrent Hit calls.
type BVH struct {
	Root *BVHNode
}

// NewBVH constructs a BVH from a slice of shapes. The input slice is not reordered.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{Root: buildBVH(shapesCopy)}
}

// buildBVH splits at the median along the longest axis of the node bounds
func buildBVH(shapes []Shape) *BVHNode {
	boundingBox := shapes[0].BoundingBox()
	for _, shape := range shapes[1:] {
		boundingBox = boundingBox.Union(shape.BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	axis := boundingBox.LongestAxis()
	sort.Slice(shapes, func(i, j int) bool {
		return shapes[i].BoundingBox().CenterAxis(axis) < shapes[j].BoundingBox().CenterAxis(axis)
	})

	mid := len(shapes) / 2
	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(shapes[:mid]),
		Right:       buildBVH(shapes[mid:]),
	}
}

// Hit returns the closest intersection with any shape in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return hitNode(bvh.Root, ray, tMin, tMax)
}

func hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	var closestHit *material.HitRecord
	closestSoFar := tMax

	// Leaf: linear search
	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
				closestSoFar = hit.T
				closestHit = hit
			}
		}
		return closestHit, closestHit != nil
	}

	for _, child := range []*BVHNode{node.Left, node.Right} {
		if child == nil {
			continue
		}
		if hit, isHit := hitNode(child, ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}
	return closestHit, closestHit != nil
}
