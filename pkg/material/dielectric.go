package material

import (
	"math"

	"github.com/tracelab/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction relative to air (e.g. 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements dielectric scattering. Always returns true; clear glass
// absorbs nothing, so attenuation is (1,1,1). The choice between reflection
// and refraction is forced by total internal reflection where Snell's law
// has no solution, and otherwise importance-sampled from Schlick's
// approximation of the Fresnel reflectance.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// front_face tells us which side was hit: entering the material uses
	// 1/eta, exiting uses eta
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	} else {
		refractionRatio = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()

	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Total internal reflection: refraction geometrically impossible
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || sampler.Get1D() < Reflectance(cosTheta, refractionRatio) {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, refractionRatio)
	}

	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: attenuation,
	}, true
}

// Emitted returns black; dielectrics don't emit light
func (d *Dielectric) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
