package core

// Material decides whether and how a ray continues after striking a surface
type Material interface {
	// Scatter returns the continuation of the incoming ray, or false if the
	// surface absorbs/emits rather than continuing the path. When true, the
	// result's Attenuation is the componentwise color factor applied to all
	// light carried by the scattered ray.
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)

	// Emitted returns the light emitted at surface coordinates (u, v) and
	// point p. Black for everything except emissive materials. Called by the
	// integrator regardless of Scatter's result, so emissive and reflective
	// behavior could coexist on one material.
	Emitted(u, v float64, p Vec3) Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray; carries the incoming ray's time
	Attenuation Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, oriented against the incoming ray
	T         float64  // Parameter t along the ray
	U, V      float64  // Surface parametrization at the hit point
	FrontFace bool     // Whether the ray hit the outward-facing side
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Hittable is anything a ray can intersect. The sampler is threaded through
// because participating media consume a random draw during traversal;
// surface geometry ignores it.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool)
	BoundingBox() AABB
}

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
