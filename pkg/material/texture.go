package material

import (
	"math"

	"github.com/tracelab/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials. UV is used for
// image textures, the 3D point for procedural textures. Textures are
// read-only after scene construction and may be shared across materials.
type Texture interface {
	Value(u, v float64, point core.Vec3) core.Vec3
}

// SolidColor provides a uniform color regardless of position
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates two textures in a 3D checkerboard pattern
type Checker struct {
	InvScale float64
	Even     Texture
	Odd      Texture
}

// NewChecker creates a checker texture from two solid colors
func NewChecker(scale float64, even, odd core.Vec3) *Checker {
	return &Checker{
		InvScale: 1.0 / scale,
		Even:     NewSolidColor(even),
		Odd:      NewSolidColor(odd),
	}
}

// Value alternates between the two textures based on the hit point position
func (c *Checker) Value(u, v float64, point core.Vec3) core.Vec3 {
	xInt := int(math.Floor(c.InvScale * point.X))
	yInt := int(math.Floor(c.InvScale * point.Y))
	zInt := int(math.Floor(c.InvScale * point.Z))

	if (xInt+yInt+zInt)%2 == 0 {
		return c.Even.Value(u, v, point)
	}
	return c.Odd.Value(u, v, point)
}
