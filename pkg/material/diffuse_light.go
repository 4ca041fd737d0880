package material

import (
	"github.com/tracelab/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material. It never scatters;
// paths terminate here and pick up the emitted radiance instead.
type DiffuseLight struct {
	Emit Texture // Emitted light color/intensity
}

// NewDiffuseLight creates a new emissive material with a solid color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a new emissive material with a texture
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always returns false; lights absorb incoming rays
func (dl *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted returns the light's radiance at the given surface coordinates
func (dl *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return dl.Emit.Value(u, v, p)
}
