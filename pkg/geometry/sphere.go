package geometry

import (
	"math"

	"github.com/tracelab/go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape, optionally moving linearly between two
// centers over the shutter interval [0, 1]
type Sphere struct {
	Center     core.Vec3
	CenterMove core.Vec3 // Displacement to the center at time 1 (zero if static)
	Radius     float64
	Material   core.Material
	moving     bool
}

// NewSphere creates a new static sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// NewMovingSphere creates a sphere that moves from center0 at time 0 to
// center1 at time 1
func NewMovingSphere(center0, center1 core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:     center0,
		CenterMove: center1.Subtract(center0),
		Radius:     radius,
		Material:   material,
		moving:     true,
	}
}

// centerAt returns the sphere center at the given ray time
func (s *Sphere) centerAt(time float64) core.Vec3 {
	if !s.moving {
		return s.Center
	}
	return s.Center.Add(s.CenterMove.Multiply(time))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	center := s.centerAt(ray.Time)

	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Find the nearest intersection point within the valid range
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal points from center to hit point
	outwardNormal := hitRecord.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.U, hitRecord.V = sphereUV(outwardNormal)

	return hitRecord, true
}

// sphereUV maps a point on the unit sphere to (u, v) surface coordinates:
// u from the angle around the Y axis, v from the angle from -Y to +Y
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	u = phi / (2 * math.Pi)
	v = theta / math.Pi
	return u, v
}

// BoundingBox returns the axis-aligned bounding box for this sphere over
// the whole shutter interval
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(
		s.centerAt(0).Subtract(radius),
		s.centerAt(0).Add(radius),
	)
	if !s.moving {
		return box0
	}
	box1 := core.NewAABB(
		s.centerAt(1).Subtract(radius),
		s.centerAt(1).Add(radius),
	)
	return box0.Union(box1)
}
