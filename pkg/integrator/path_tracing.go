package integrator

import (
	"math"

	"github.com/tracelab/go-pathtracer/pkg/core"
)

// Scene is the view of the world the integrator needs. Kept as a local
// interface to avoid importing the scene package.
type Scene interface {
	GetWorld() core.Hittable
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// PathTracingIntegrator implements unidirectional path tracing over the
// material contract: at each bounce, emitted light is collected and the
// material decides whether and how the path continues.
type PathTracingIntegrator struct {
	config core.SamplingConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config core.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{config: config}
}

// RayColor computes the color for a single ray. throughput is the
// accumulated attenuation along the path so far, used only for Russian
// Roulette termination; callers start with (1,1,1).
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene Scene, sampler core.Sampler, depth int, throughput core.Vec3) core.Vec3 {
	// Bounce limit reached, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	shouldTerminate, rrCompensation := pt.applyRussianRoulette(depth, throughput, sampler)
	if shouldTerminate {
		return core.Vec3{}
	}

	hit, isHit := scene.GetWorld().Hit(ray, 0.001, math.Inf(1), sampler)
	if !isHit {
		return pt.backgroundGradient(ray, scene).Multiply(rrCompensation)
	}

	// Emission is collected whether or not the material scatters, so a
	// material could in principle both emit and reflect
	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Path terminates here; only the emitted light survives
		return emitted.Multiply(rrCompensation)
	}

	nextThroughput := throughput.MultiplyVec(scatter.Attenuation)
	incoming := pt.RayColor(scatter.Scattered, scene, sampler, depth-1, nextThroughput)

	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming)).Multiply(rrCompensation)
}

// applyRussianRoulette decides whether to terminate the path early once it
// has bounced enough times. Surviving paths are compensated by the inverse
// continuation probability so the estimator stays unbiased.
func (pt *PathTracingIntegrator) applyRussianRoulette(depth int, throughput core.Vec3, sampler core.Sampler) (bool, float64) {
	if pt.config.RussianRouletteDepth <= 0 {
		return false, 1.0
	}

	bounces := pt.config.MaxDepth - depth
	if bounces < pt.config.RussianRouletteDepth {
		return false, 1.0
	}

	continueProbability := math.Min(math.Max(throughput.Luminance(), 0.05), 0.95)
	if sampler.Get1D() >= continueProbability {
		return true, 0
	}

	return false, 1.0 / continueProbability
}

// backgroundGradient returns the background color for a ray that escaped
// the scene, blending bottom to top on the ray's vertical direction
func (pt *PathTracingIntegrator) backgroundGradient(ray core.Ray, scene Scene) core.Vec3 {
	topColor, bottomColor := scene.GetBackgroundColors()

	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}
