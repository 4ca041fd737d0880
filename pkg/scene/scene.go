package scene

import (
	"github.com/tracelab/go-pathtracer/pkg/core"
	"github.com/tracelab/go-pathtracer/pkg/renderer"
)

// Scene bundles the world geometry, camera, and render settings
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	SamplingConfig core.SamplingConfig
	TopColor       core.Vec3 // Background gradient at the top of the frame
	BottomColor    core.Vec3 // Background gradient at the bottom of the frame

	objects []core.Hittable
	world   *core.BVH
}

// NewScene creates an empty scene with the given camera
func NewScene(cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		SamplingConfig: core.DefaultSamplingConfig(),
	}
}

// Add appends objects to the scene, invalidating the acceleration structure
func (s *Scene) Add(objects ...core.Hittable) {
	s.objects = append(s.objects, objects...)
	s.world = nil
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the scene geometry behind a BVH, building it on first use
func (s *Scene) GetWorld() core.Hittable {
	if s.world == nil {
		s.world = core.NewBVH(s.objects)
	}
	return s.world
}

// GetBackgroundColors returns the background gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}
