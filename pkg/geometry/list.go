package geometry

import (
	"github.com/tracelab/go-pathtracer/pkg/core"
)

// HittableList is a flat collection of hittables searched linearly
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (hl *HittableList) Add(object core.Hittable) {
	hl.Objects = append(hl.Objects, object)
}

// Hit tests the ray against every object, keeping the closest hit
func (hl *HittableList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, object := range hl.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar, sampler); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// BoundingBox returns the union of all object bounds
func (hl *HittableList) BoundingBox() core.AABB {
	if len(hl.Objects) == 0 {
		return core.AABB{}
	}
	box := hl.Objects[0].BoundingBox()
	for _, object := range hl.Objects[1:] {
		box = box.Union(object.BoundingBox())
	}
	return box
}
