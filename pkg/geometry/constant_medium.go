package geometry

import (
	"math"

	"github.com/tracelab/go-pathtracer/pkg/core"
	"github.com/tracelab/go-pathtracer/pkg/material"
)

// ConstantMedium represents a volume of constant density (smoke, fog)
// bounded by another hittable. Rays passing through may scatter at a
// random depth inside the volume; scattering direction comes from the
// isotropic phase function.
type ConstantMedium struct {
	Boundary      core.Hittable
	PhaseFunction core.Material
	NegInvDensity float64
}

// NewConstantMedium creates a medium with the given density and a solid
// scattering color. The boundary must be convex.
func NewConstantMedium(boundary core.Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewIsotropic(albedo),
		NegInvDensity: -1.0 / density,
	}
}

// NewTexturedConstantMedium creates a medium scattering through a texture
func NewTexturedConstantMedium(boundary core.Hittable, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		NegInvDensity: -1.0 / density,
	}
}

// Hit finds where the ray enters and exits the boundary, then draws an
// exponentially distributed scattering distance. If the draw exceeds the
// distance through the volume the ray passes through unscattered.
func (cm *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	// Entry point, searching the whole ray so we handle origins inside the volume
	hit1, ok := cm.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	// Exit point past the entry
	hit2, ok := cm.Boundary.Hit(ray, hit1.T+0.0001, math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	t1 := math.Max(hit1.T, tMin)
	t2 := math.Min(hit2.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := cm.NegInvDensity * math.Log(sampler.Get1D())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength

	return &core.HitRecord{
		T:     t,
		Point: ray.At(t),
		// Normal and front face are arbitrary inside a volume
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  cm.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's bounding box
func (cm *ConstantMedium) BoundingBox() core.AABB {
	return cm.Boundary.BoundingBox()
}
