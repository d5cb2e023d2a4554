package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LookAtLH builds a left-handed view matrix looking from eye towards center.
// The camera's forward axis maps to +Z in view space.
func LookAtLH(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	f := normalizeOrZero(center.Sub(eye))
	s := normalizeOrZero(up.Cross(f))
	u := f.Cross(s)

	return mgl32.Mat4{
		s[0], u[0], f[0], 0,
		s[1], u[1], f[1], 0,
		s[2], u[2], f[2], 0,
		-s.Dot(eye), -u.Dot(eye), -f.Dot(eye), 1,
	}
}

// PerspectiveLH builds a left-handed perspective projection mapping view
// depth [near, far] to clip depth [0, 1]. fovY is in radians.
func PerspectiveLH(fovY, aspect, near, far float32) mgl32.Mat4 {
	h := float32(1 / math.Tan(float64(fovY)/2))
	w := h / aspect
	r := far / (far - near)

	return mgl32.Mat4{
		w, 0, 0, 0,
		0, h, 0, 0,
		0, 0, r, 1,
		0, 0, -r * near, 0,
	}
}
