package material

import (
	"github.com/tracelab/go-pathtracer/pkg/core"
)

// Isotropic scatters uniformly in all directions, independent of the
// surface normal. Used as the phase function inside participating media
// (fog, smoke), where the normal is an arbitrary construct rather than a
// physical surface orientation.
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates a new isotropic material with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates a new isotropic material with a texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniform random direction on the unit sphere. Always scatters.
func (i *Isotropic) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	scattered := core.NewRayAtTime(hit.Point, core.RandomUnitVector(sampler.Get2D()), rayIn.Time)
	attenuation := i.Albedo.Value(hit.U, hit.V, hit.Point)

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: attenuation,
	}, true
}

// Emitted returns black; media don't emit light
func (i *Isotropic) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
