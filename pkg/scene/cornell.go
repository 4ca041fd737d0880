package scene

import (
	"math"

	"github.com/tracelab/go-pathtracer/pkg/core"
	"github.com/tracelab/go-pathtracer/pkg/geometry"
	"github.com/tracelab/go-pathtracer/pkg/material"
	"github.com/tracelab/go-pathtracer/pkg/renderer"
)

// NewCornellScene builds the Cornell box: colored walls, a quad area light,
// and two rotated boxes. With smoky=true the boxes become constant-density
// volumes (white smoke and dark smoke) scattered by the isotropic material.
func NewCornellScene(smoky bool) *Scene {
	s := NewScene(renderer.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 1.0,
	})
	// The box is lit only by its area light
	s.TopColor = core.Vec3{}
	s.BottomColor = core.Vec3{}

	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	s.Add(
		// Left wall (green), right wall (red)
		geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red),
		// Floor, ceiling, back wall (white)
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		geometry.NewQuad(core.NewVec3(0, 555, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white),
		// Area light in the ceiling
		geometry.NewQuad(core.NewVec3(213, 554, 227), core.NewVec3(130, 0, 0), core.NewVec3(0, 0, 105), light),
	)

	tall := geometry.NewBox(
		core.NewVec3(347.5, 165, 377.5),
		core.NewVec3(82.5, 165, 82.5),
		15*math.Pi/180,
		white,
	)
	short := geometry.NewBox(
		core.NewVec3(212.5, 82.5, 147.5),
		core.NewVec3(82.5, 82.5, 82.5),
		-18*math.Pi/180,
		white,
	)

	if smoky {
		s.Add(
			geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
			geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
		)
	} else {
		s.Add(tall, short)
	}

	return s
}
