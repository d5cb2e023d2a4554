package render

import "github.com/go-gl/mathgl/mgl32"

// Transform holds the placement of the scene object
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler angles in radians, applied X then Y then Z
	Scale    mgl32.Vec3
}

// NewTransform returns an identity transform
func NewTransform() *Transform {
	return &Transform{
		Scale: mgl32.Vec3{1, 1, 1},
	}
}

// ModelMatrix returns Translate * RotateXYZ * Scale
func (t *Transform) ModelMatrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := mgl32.HomogRotate3DX(t.Rotation.X()).
		Mul4(mgl32.HomogRotate3DY(t.Rotation.Y())).
		Mul4(mgl32.HomogRotate3DZ(t.Rotation.Z()))
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotate).Mul4(scale)
}
