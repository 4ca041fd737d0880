package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tracelab/go-pathtracer/pkg/core"
)

func TestIsotropic_AlwaysScatters(t *testing.T) {
	isotropic := NewIsotropic(core.NewVec3(0.7, 0.7, 0.7))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	hit := core.HitRecord{
		Point:  core.NewVec3(1, 2, 3),
		Normal: core.NewVec3(1, 0, 0),
	}
	ray := core.NewRayAtTime(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), 0.4)

	for i := 0; i < 1000; i++ {
		scatter, didScatter := isotropic.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatalf("Isotropic should always scatter (iteration %d)", i)
		}
		if math.Abs(scatter.Scattered.Direction.Length()-1.0) > 1e-12 {
			t.Fatalf("Isotropic scatter direction should be unit length, got %f",
				scatter.Scattered.Direction.Length())
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray should start at the hit point, got %v",
				scatter.Scattered.Origin)
		}
		if scatter.Scattered.Time != 0.4 {
			t.Fatalf("Scattered ray should carry the incoming ray's time, got %f",
				scatter.Scattered.Time)
		}
	}
}

func TestIsotropic_UniformDistribution(t *testing.T) {
	isotropic := NewIsotropic(core.NewVec3(0.7, 0.7, 0.7))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	hit := core.HitRecord{Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0))

	// Mean of uniform sphere directions converges to zero; no bias toward
	// the normal
	const n = 10000
	mean := core.Vec3{}
	for i := 0; i < n; i++ {
		scatter, _ := isotropic.Scatter(ray, hit, sampler)
		mean = mean.Add(scatter.Scattered.Direction)
	}
	mean = mean.Multiply(1.0 / n)

	if mean.Length() > 0.03 {
		t.Errorf("Isotropic scattering should have no directional bias, mean %v (len %f)",
			mean, mean.Length())
	}
}

func TestIsotropic_IgnoresNormal(t *testing.T) {
	// The phase function is independent of the surface normal: the same
	// sample gives the same direction whatever the normal is
	isotropic := NewIsotropic(core.NewVec3(0.7, 0.7, 0.7))
	sampler := fixedSampler{pair: core.NewVec2(0.3, 0.8)}

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	hitA := core.HitRecord{Normal: core.NewVec3(1, 0, 0)}
	hitB := core.HitRecord{Normal: core.NewVec3(0, 0, -1)}

	scatterA, _ := isotropic.Scatter(ray, hitA, sampler)
	scatterB, _ := isotropic.Scatter(ray, hitB, sampler)

	if !scatterA.Scattered.Direction.Equals(scatterB.Scattered.Direction) {
		t.Errorf("Scatter direction should not depend on the normal: %v vs %v",
			scatterA.Scattered.Direction, scatterB.Scattered.Direction)
	}
}

func TestIsotropic_TexturedAlbedo(t *testing.T) {
	checker := NewChecker(1.0, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	isotropic := NewTexturedIsotropic(checker)
	sampler := fixedSampler{pair: core.NewVec2(0.3, 0.8)}

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	hit := core.HitRecord{Point: core.NewVec3(0.5, 0.5, 0.5)}

	scatter, _ := isotropic.Scatter(ray, hit, sampler)
	if !scatter.Attenuation.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("Attenuation should come from the texture, got %v", scatter.Attenuation)
	}
}

func TestIsotropic_EmittedIsBlack(t *testing.T) {
	isotropic := NewIsotropic(core.NewVec3(0.7, 0.7, 0.7))
	if emitted := isotropic.Emitted(0.5, 0.5, core.NewVec3(1, 2, 3)); !emitted.Equals(core.Vec3{}) {
		t.Errorf("Isotropic emission should be black, got %v", emitted)
	}
}
