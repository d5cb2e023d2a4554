package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the Y-up axis shared by the camera and the view matrix
var WorldUp = mgl32.Vec3{0, 1, 0}

// Camera implements a free-fly first person camera.
// Orientation is kept as Euler angles in degrees; every direction and the
// view matrix are derived from them on demand.
type Camera struct {
	position mgl32.Vec3

	// Euler angles
	pitch float32 // [MinPitch, MaxPitch]
	yaw   float32 // [0, 360)
}

// NewCamera creates a camera at position with the default orientation
func NewCamera(position mgl32.Vec3) *Camera {
	return &Camera{
		position: position,
		pitch:    DefaultPitch,
		yaw:      DefaultYaw,
	}
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the current camera orientation (pitch, yaw) in degrees
func (c *Camera) Orientation() (pitch, yaw float32) {
	return c.pitch, c.yaw
}

// SetRotation sets both angles, applying the same clamp and wrap as the
// incremental rotations.
func (c *Camera) SetRotation(pitch, yaw float32) {
	c.pitch = clampPitch(pitch)
	c.yaw = wrapYaw(yaw)
}

// Facing returns the unit direction the camera looks along.
// It returns the zero vector if the direction cannot be normalized.
func (c *Camera) Facing() mgl32.Vec3 {
	pitch := float64(mgl32.DegToRad(c.pitch))
	yaw := float64(mgl32.DegToRad(c.yaw))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	return normalizeOrZero(front)
}

// Translate moves the camera by delta in world space
func (c *Camera) Translate(delta mgl32.Vec3) {
	c.position = c.position.Add(delta)
}

// TranslateVertical moves the camera along the world Y axis only
func (c *Camera) TranslateVertical(dy float32) {
	c.position[1] += dy
}

// RotatePitch adds delta degrees and clamps to [MinPitch, MaxPitch]
func (c *Camera) RotatePitch(delta float32) {
	c.pitch = clampPitch(c.pitch + delta)
}

// RotateYaw adds delta degrees and wraps into [0, 360)
func (c *Camera) RotateYaw(delta float32) {
	c.yaw = wrapYaw(c.yaw + delta)
}

// LateralMove moves the camera relative to its heading. xz.X() is the
// right/left component and xz.Y() the forward/back component. Both axes are
// taken from the horizontal projection of the facing vector, so pitch has
// no influence on direction or speed.
func (c *Camera) LateralMove(xz mgl32.Vec2) {
	c.position = c.position.Add(c.Forward().Mul(xz.Y()))
	c.position = c.position.Add(c.Right().Mul(xz.X()))
}

// Forward returns the horizontal forward vector of the current heading
func (c *Camera) Forward() mgl32.Vec3 {
	facing := c.Facing()
	return normalizeOrZero(mgl32.Vec3{facing.X(), 0, facing.Z()})
}

// Right returns the horizontal right vector of the current heading
func (c *Camera) Right() mgl32.Vec3 {
	// forward x up points left in a left-handed frame
	return normalizeOrZero(c.Forward().Cross(WorldUp)).Mul(-1)
}

// ViewMatrix returns the left-handed view matrix for the current state
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return LookAtLH(c.position, c.position.Add(c.Facing()), WorldUp)
}

func clampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, MinPitch, MaxPitch)
}

func wrapYaw(yaw float32) float32 {
	yaw = float32(math.Mod(float64(yaw), 360))
	if yaw < 0 {
		yaw += 360
	}
	// a tiny negative remainder rounds up to exactly 360 in float32
	if yaw >= 360 {
		yaw = 0
	}
	return yaw
}

func normalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(float64(l)) || math.IsInf(float64(l), 0) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
