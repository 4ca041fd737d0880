package material

import (
	"github.com/tracelab/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture // Base color/reflectance (solid or textured)
}

// NewLambertian creates a new lambertian material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with a texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements diffuse scattering: the scatter direction is the
// surface normal plus a uniform random unit vector, which distributes
// directions proportional to cos(θ) around the normal. Always scatters.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler.Get2D()))

	// When the random vector lands opposite the normal the sum degenerates
	// to zero; fall back to the normal itself
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	scattered := core.NewRayAtTime(hit.Point, scatterDirection, rayIn.Time)
	attenuation := l.Albedo.Value(hit.U, hit.V, hit.Point)

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: attenuation,
	}, true
}

// Emitted returns black; lambertian surfaces don't emit light
func (l *Lambertian) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
