package material

import (
	"github.com/tracelab/go-pathtracer/pkg/core"
)

// fixedSampler returns the same values on every draw, letting tests force
// a specific random direction or Fresnel decision.
//
// Useful Get2D values for RandomUnitVector:
//
//	{0.5, 0.25} maps to ~(0, 1, 0)
//	{0.5, 0.75} maps to ~(0, -1, 0)
type fixedSampler struct {
	scalar float64
	pair   core.Vec2
}

func (f fixedSampler) Get1D() float64 { return f.scalar }
func (f fixedSampler) Get2D() core.Vec2 { return f.pair }

func approxEqual(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}
