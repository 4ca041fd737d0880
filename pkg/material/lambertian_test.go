package material

import (
	"math/rand"
	"testing"

	"github.com/tracelab/go-pathtracer/pkg/core"
)

func TestLambertian_AlwaysScatters(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatalf("Lambertian should always scatter (iteration %d)", i)
		}
		// The near-zero guard means the direction is never degenerate
		if scatter.Scattered.Direction.NearZero() {
			t.Fatalf("Scatter direction should never be near zero (iteration %d)", i)
		}
	}
}

func TestLambertian_ForcedSample(t *testing.T) {
	// Random unit vector forced to ~(0,1,0); with normal (0,1,0) the
	// scatter direction becomes (0,2,0)
	albedo := core.NewVec3(0.5, 0.5, 0.5)
	lambertian := NewLambertian(albedo)
	sampler := fixedSampler{pair: core.NewVec2(0.5, 0.25)}

	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}
	ray := core.NewRayAtTime(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 0.7)

	scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian should scatter")
	}

	if !approxEqual(scatter.Scattered.Direction, core.NewVec3(0, 2, 0), 1e-12) {
		t.Errorf("Expected scatter direction (0,2,0), got %v", scatter.Scattered.Direction)
	}
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Attenuation should be the albedo %v, got %v", albedo, scatter.Attenuation)
	}
	if scatter.Scattered.Origin != hit.Point {
		t.Errorf("Scattered ray should start at the hit point, got %v", scatter.Scattered.Origin)
	}
	if scatter.Scattered.Time != 0.7 {
		t.Errorf("Scattered ray should carry the incoming ray's time, got %f", scatter.Scattered.Time)
	}
}

func TestLambertian_NearZeroFallback(t *testing.T) {
	// Random unit vector forced to ~(0,-1,0), the opposite of the normal:
	// the candidate direction degenerates and the normal is used instead
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	sampler := fixedSampler{pair: core.NewVec2(0.5, 0.75)}

	normal := core.NewVec3(0, 1, 0)
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: normal,
	}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian should scatter")
	}
	if !scatter.Scattered.Direction.Equals(normal) {
		t.Errorf("Degenerate direction should fall back to the normal, got %v",
			scatter.Scattered.Direction)
	}
}

func TestLambertian_CosineWeighted(t *testing.T) {
	// normal + random unit vector distributes directions proportional to
	// cos(θ): the mean cosine against the normal should be ~2/3
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	const n = 20000
	sumCos := 0.0
	for i := 0; i < n; i++ {
		scatter, _ := lambertian.Scatter(ray, hit, sampler)
		cosTheta := scatter.Scattered.Direction.Normalize().Dot(normal)
		if cosTheta < 0 {
			t.Fatalf("Diffuse scatter went below the surface: cos=%f", cosTheta)
		}
		sumCos += cosTheta
	}

	meanCos := sumCos / n
	if meanCos < 0.64 || meanCos > 0.70 {
		t.Errorf("Mean cosine for cosine-weighted scattering should be ~0.667, got %f", meanCos)
	}
}

func TestLambertian_TexturedAlbedo(t *testing.T) {
	checker := NewChecker(1.0, core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	lambertian := NewTexturedLambertian(checker)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// Points in adjacent checker cells sample different colors
	hitEven := core.HitRecord{Point: core.NewVec3(0.5, 0.5, 0.5), Normal: core.NewVec3(0, 1, 0)}
	hitOdd := core.HitRecord{Point: core.NewVec3(1.5, 0.5, 0.5), Normal: core.NewVec3(0, 1, 0)}

	scatterEven, _ := lambertian.Scatter(ray, hitEven, sampler)
	scatterOdd, _ := lambertian.Scatter(ray, hitOdd, sampler)

	if !scatterEven.Attenuation.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Even cell should sample the even color, got %v", scatterEven.Attenuation)
	}
	if !scatterOdd.Attenuation.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Odd cell should sample the odd color, got %v", scatterOdd.Attenuation)
	}
}

func TestLambertian_EmittedIsBlack(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	if emitted := lambertian.Emitted(0.5, 0.5, core.NewVec3(1, 2, 3)); !emitted.Equals(core.Vec3{}) {
		t.Errorf("Lambertian emission should be black, got %v", emitted)
	}
}
