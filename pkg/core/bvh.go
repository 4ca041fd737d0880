package core

import (
	"sort"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox AABB
	Left        *BVHNode
	Right       *BVHNode
	Objects     []Hittable // Multiple objects for leaf nodes (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection
type BVH struct {
	Root *BVHNode
}

// NewBVH constructs a BVH from a slice of hittables
func NewBVH(objects []Hittable) *BVH {
	if len(objects) == 0 {
		return &BVH{Root: nil}
	}

	// Make a copy to avoid reordering the caller's slice
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return &BVH{
		Root: buildBVH(objectsCopy, 0),
	}
}

// Leaf threshold: if we have this many or fewer objects, store them in a leaf node
const leafThreshold = 8

// buildBVH recursively builds the BVH using median splits with leaf thresholding
func buildBVH(objects []Hittable, depth int) *BVHNode {
	// Calculate bounding box for all objects
	var boundingBox AABB
	if len(objects) > 0 {
		boundingBox = objects[0].BoundingBox()
		for i := 1; i < len(objects); i++ {
			boundingBox = boundingBox.Union(objects[i].BoundingBox())
		}
	}

	// Base case: few objects - create leaf node with linear search
	if len(objects) <= leafThreshold {
		return &BVHNode{
			BoundingBox: boundingBox,
			Objects:     objects,
		}
	}

	// Median split along the longest axis; faster than SAH and good
	// enough for the scene sizes here
	axis := boundingBox.LongestAxis()
	sortObjectsByAxis(objects, axis)

	mid := len(objects) / 2

	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(objects[:mid], depth+1),
		Right:       buildBVH(objects[mid:], depth+1),
	}
}

// sortObjectsByAxis sorts objects by their bounding box center along the specified axis
func sortObjectsByAxis(objects []Hittable, axis int) {
	sort.Slice(objects, func(i, j int) bool {
		centerI := objects[i].BoundingBox().Center()
		centerJ := objects[j].BoundingBox().Center()

		switch axis {
		case 0:
			return centerI.X < centerJ.X
		case 1:
			return centerI.Y < centerJ.Y
		case 2:
			return centerI.Z < centerJ.Z
		default:
			return false
		}
	})
}

// Hit tests if a ray intersects any object in the BVH
func (bvh *BVH) Hit(ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.hitNode(bvh.Root, ray, tMin, tMax, sampler)
}

// BoundingBox returns the bounds of the whole hierarchy
func (bvh *BVH) BoundingBox() AABB {
	if bvh.Root == nil {
		return AABB{}
	}
	return bvh.Root.BoundingBox
}

// hitNode recursively tests ray intersection with BVH nodes
func (bvh *BVH) hitNode(node *BVHNode, ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	// Leaf node: linear search through all objects
	if node.Objects != nil {
		var closestHit *HitRecord
		hitAnything := false
		closestSoFar := tMax

		for _, object := range node.Objects {
			if hit, isHit := object.Hit(ray, tMin, closestSoFar, sampler); isHit {
				hitAnything = true
				closestSoFar = hit.T
				closestHit = hit
			}
		}

		return closestHit, hitAnything
	}

	// Internal node: test both children, keeping the closer hit
	var closestHit *HitRecord
	hitAnything := false
	closestSoFar := tMax

	if node.Left != nil {
		if hit, isHit := bvh.hitNode(node.Left, ray, tMin, closestSoFar, sampler); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	if node.Right != nil {
		if hit, isHit := bvh.hitNode(node.Right, ray, tMin, closestSoFar, sampler); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
