package geometry

import (
	"math"

	"github.com/tracelab/go-pathtracer/pkg/core"
)

// Box represents a rectangular box made up of 6 quads, optionally rotated
// around the Y axis
type Box struct {
	Center    core.Vec3     // Center point of the box
	Size      core.Vec3     // Half-extents along each axis
	RotationY float64       // Rotation around the Y axis in radians
	Material  core.Material // Material for all faces
	faces     *HittableList
	bbox      core.AABB
}

// NewBox creates a new box with the given center, half-extents, Y rotation
// and material. A size of (1,1,1) creates a 2x2x2 box.
func NewBox(center, size core.Vec3, rotationY float64, material core.Material) *Box {
	box := &Box{
		Center:    center,
		Size:      size,
		RotationY: rotationY,
		Material:  material,
	}
	box.generateFaces()
	return box
}

// NewAxisAlignedBox creates a new axis-aligned box (no rotation)
func NewAxisAlignedBox(center, size core.Vec3, material core.Material) *Box {
	return NewBox(center, size, 0, material)
}

// rotateY rotates a vector around the Y axis
func rotateY(v core.Vec3, angle float64) core.Vec3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return core.NewVec3(
		cos*v.X+sin*v.Z,
		v.Y,
		-sin*v.X+cos*v.Z,
	)
}

// generateFaces creates the 6 quad faces of the box
func (b *Box) generateFaces() {
	// Local axes after rotation, scaled to full edge lengths
	xAxis := rotateY(core.NewVec3(2*b.Size.X, 0, 0), b.RotationY)
	yAxis := core.NewVec3(0, 2*b.Size.Y, 0)
	zAxis := rotateY(core.NewVec3(0, 0, 2*b.Size.Z), b.RotationY)

	// Corner at local (-1,-1,-1)
	corner := b.Center.
		Subtract(xAxis.Multiply(0.5)).
		Subtract(yAxis.Multiply(0.5)).
		Subtract(zAxis.Multiply(0.5))

	b.faces = NewHittableList(
		NewQuad(corner, xAxis, yAxis, b.Material),                  // back
		NewQuad(corner.Add(zAxis), xAxis, yAxis, b.Material),       // front
		NewQuad(corner, zAxis, yAxis, b.Material),                  // left
		NewQuad(corner.Add(xAxis), zAxis, yAxis, b.Material),       // right
		NewQuad(corner, xAxis, zAxis, b.Material),                  // bottom
		NewQuad(corner.Add(yAxis), xAxis, zAxis, b.Material),       // top
	)

	b.bbox = b.faces.BoundingBox()
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	if !b.bbox.Hit(ray, tMin, tMax) {
		return nil, false
	}
	return b.faces.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the bounding box enclosing all faces
func (b *Box) BoundingBox() core.AABB {
	return b.bbox
}
