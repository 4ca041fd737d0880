package scene

import (
	"math/rand"

	"github.com/tracelab/go-pathtracer/pkg/core"
	"github.com/tracelab/go-pathtracer/pkg/geometry"
	"github.com/tracelab/go-pathtracer/pkg/material"
	"github.com/tracelab/go-pathtracer/pkg/renderer"
)

// NewDefaultScene builds the default showcase scene: a checkered ground, a
// grid of small random spheres (some moving during the shutter interval),
// and three large spheres covering the glass, diffuse and metal materials.
func NewDefaultScene(aspectRatio float64) *Scene {
	s := NewScene(renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   aspectRatio,
		Aperture:      0.1,
		FocusDistance: 10.0,
		ShutterOpen:   0.0,
		ShutterClose:  1.0,
	})
	s.TopColor = core.NewVec3(0.5, 0.7, 1.0)
	s.BottomColor = core.NewVec3(1.0, 1.0, 1.0)

	ground := material.NewTexturedLambertian(
		material.NewChecker(0.5, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	// Seeded so the scene layout is reproducible across runs
	random := rand.New(rand.NewSource(1984))

	for a := -7; a < 7; a++ {
		for b := -7; b < 7; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Keep clear of the three big spheres
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			chooseMaterial := random.Float64()
			switch {
			case chooseMaterial < 0.8:
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				diffuse := material.NewLambertian(albedo)
				// Some diffuse spheres bounce during the exposure
				if random.Float64() < 0.3 {
					center1 := center.Add(core.NewVec3(0, 0.4*random.Float64(), 0))
					s.Add(geometry.NewMovingSphere(center, center1, 0.2, diffuse))
				} else {
					s.Add(geometry.NewSphere(center, 0.2, diffuse))
				}
			case chooseMaterial < 0.95:
				albedo := core.NewVec3(
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
				)
				fuzz := 0.5 * random.Float64()
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}
