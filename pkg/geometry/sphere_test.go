package geometry

import (
	"math"
	"testing"

	"github.com/tracelab/go-pathtracer/pkg/core"
	"github.com/tracelab/go-pathtracer/pkg/material"
)

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	tests := []struct {
		name    string
		ray     core.Ray
		wantHit bool
		wantT   float64
	}{
		{
			name:    "head on hit",
			ray:     core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)),
			wantHit: true,
			wantT:   4.0,
		},
		{
			name:    "miss to the side",
			ray:     core.NewRay(core.Vec3{}, core.NewVec3(0, 2, -1)),
			wantHit: false,
		},
		{
			name:    "pointing away",
			ray:     core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)),
			wantHit: false,
		},
		{
			name:    "tangent graze",
			ray:     core.NewRay(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1)),
			wantHit: true,
			wantT:   5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(tt.ray, 0.001, math.Inf(1), nil)
			if isHit != tt.wantHit {
				t.Fatalf("Hit = %v, want %v", isHit, tt.wantHit)
			}
			if isHit && math.Abs(hit.T-tt.wantT) > 1e-10 {
				t.Errorf("T = %f, want %f", hit.T, tt.wantT)
			}
		})
	}
}

func TestSphere_InteriorHit(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, 2.0, material.NewDielectric(1.5))

	// Ray from inside: the near root is behind tMin, so the far root is used
	// and the normal flips inward
	hit, isHit := sphere.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1), nil)
	if !isHit {
		t.Fatal("Ray from the center should hit the shell")
	}
	if math.Abs(hit.T-2.0) > 1e-10 {
		t.Errorf("T = %f, want 2.0", hit.T)
	}
	if hit.FrontFace {
		t.Error("Interior hit should have FrontFace false")
	}
	if !hit.Normal.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Interior normal should point back at the ray, got %v", hit.Normal)
	}
}

func TestSphere_HitRangeClipping(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	// Near root at t=4 excluded: far root at t=6 is used
	hit, isHit := sphere.Hit(ray, 4.5, math.Inf(1), nil)
	if !isHit {
		t.Fatal("Far root should still be in range")
	}
	if math.Abs(hit.T-6.0) > 1e-10 {
		t.Errorf("T = %f, want 6.0", hit.T)
	}

	// Both roots excluded
	if _, isHit := sphere.Hit(ray, 0.001, 3.0, nil); isHit {
		t.Error("Hit outside [tMin, tMax] should be rejected")
	}
}

func TestSphereUV(t *testing.T) {
	tests := []struct {
		name  string
		point core.Vec3
		wantU float64
		wantV float64
	}{
		{"positive x", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"negative x", core.NewVec3(-1, 0, 0), 0.0, 0.5},
		{"north pole", core.NewVec3(0, 1, 0), 0.5, 1.0},
		{"south pole", core.NewVec3(0, -1, 0), 0.5, 0.0},
		{"positive z", core.NewVec3(0, 0, 1), 0.25, 0.5},
		{"negative z", core.NewVec3(0, 0, -1), 0.75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := sphereUV(tt.point)
			if math.Abs(u-tt.wantU) > 1e-10 || math.Abs(v-tt.wantV) > 1e-10 {
				t.Errorf("sphereUV(%v) = (%f, %f), want (%f, %f)",
					tt.point, u, v, tt.wantU, tt.wantV)
			}
		})
	}
}

func TestMovingSphere_HitAtTime(t *testing.T) {
	// Sphere slides from the origin to (2,0,0) over the shutter interval
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, -5), core.NewVec3(2, 0, -5),
		0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	)

	rayAtStart := core.NewRayAtTime(core.Vec3{}, core.NewVec3(0, 0, -1), 0.0)
	if _, isHit := sphere.Hit(rayAtStart, 0.001, math.Inf(1), nil); !isHit {
		t.Error("Ray at time 0 should hit the sphere at its start position")
	}

	rayAtEnd := core.NewRayAtTime(core.Vec3{}, core.NewVec3(0, 0, -1), 1.0)
	if _, isHit := sphere.Hit(rayAtEnd, 0.001, math.Inf(1), nil); isHit {
		t.Error("Ray at time 1 should miss; the sphere has moved away")
	}

	displaced := core.NewRayAtTime(core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -1), 1.0)
	if _, isHit := sphere.Hit(displaced, 0.001, math.Inf(1), nil); !isHit {
		t.Error("Ray at time 1 aimed at the end position should hit")
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	static := NewSphere(core.NewVec3(1, 2, 3), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	box := static.BoundingBox()
	if !box.Min.Equals(core.NewVec3(0.5, 1.5, 2.5)) || !box.Max.Equals(core.NewVec3(1.5, 2.5, 3.5)) {
		t.Errorf("Static bounding box = [%v, %v]", box.Min, box.Max)
	}

	// A moving sphere's box covers both endpoint positions
	moving := NewMovingSphere(
		core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0),
		0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	)
	box = moving.BoundingBox()
	if !box.Min.Equals(core.NewVec3(-0.5, -0.5, -0.5)) || !box.Max.Equals(core.NewVec3(2.5, 0.5, 0.5)) {
		t.Errorf("Moving bounding box = [%v, %v]", box.Min, box.Max)
	}
}
