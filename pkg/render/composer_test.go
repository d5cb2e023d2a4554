package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPerspectiveLHDepthRange(t *testing.T) {
	near, far := float32(0.1), float32(100)
	proj := PerspectiveLH(mgl32.DegToRad(75), 1, near, far)

	clipNear := proj.Mul4x1(mgl32.Vec4{0, 0, near, 1})
	assert.InDelta(t, 0, clipNear.Z()/clipNear.W(), epsilon)

	clipFar := proj.Mul4x1(mgl32.Vec4{0, 0, far, 1})
	assert.InDelta(t, 1, clipFar.Z()/clipFar.W(), epsilon)

	// w carries +z, so points in front of the camera have positive w
	assert.Greater(t, clipFar.W(), float32(0))
}

func TestPerspectiveLHFieldOfView(t *testing.T) {
	fov := mgl32.DegToRad(90)
	proj := PerspectiveLH(fov, 2, 1, 10)

	// with a 90 degree fov the top edge at depth d is at y = d
	edge := proj.Mul4x1(mgl32.Vec4{0, 5, 5, 1})
	assert.InDelta(t, 1, edge.Y()/edge.W(), epsilon)

	// aspect 2 means x spans twice as far
	side := proj.Mul4x1(mgl32.Vec4{10, 0, 5, 1})
	assert.InDelta(t, 1, side.X()/side.W(), epsilon)
}

func TestLookAtLHOrthonormal(t *testing.T) {
	view := LookAtLH(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 2, 7}, WorldUp)

	rot := view.Mat3()
	product := rot.Mul3(rot.Transpose())
	for i := 0; i < 9; i++ {
		assert.InDelta(t, mgl32.Ident3()[i], product[i], epsilon)
	}
}

func TestModelMatrixIdentity(t *testing.T) {
	assert.Equal(t, mgl32.Ident4(), NewTransform().ModelMatrix())
}

func TestModelMatrixOrder(t *testing.T) {
	tr := &Transform{
		Position: mgl32.Vec3{0, 0, 25},
		Rotation: mgl32.Vec3{math.Pi / 2, math.Pi / 2, 0},
		Scale:    mgl32.Vec3{2, 2, 2},
	}

	// scale first, then rotate about Y, then about X, then translate
	p := tr.ModelMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assertVec3InDelta(t, mgl32.Vec3{0, 2, 25}, p.Vec3(), 1e-4)
}

func TestModelMatrixTranslationOnly(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{1, 2, 3}

	m := tr.ModelMatrix()
	assert.Equal(t, mgl32.Vec4{1, 2, 3, 1}, m.Col(3))
}

func TestCompose(t *testing.T) {
	proj := PerspectiveLH(mgl32.DegToRad(75), 1, 0.1, 100)
	light := Light{Color: mgl32.Vec3{1, 1, 1}, Position: mgl32.Vec3{5, 15, 5}}
	composer := NewComposer(proj, light)

	cam := NewCamera(mgl32.Vec3{0, 10, 0})
	obj := NewTransform()
	obj.Position = mgl32.Vec3{0, 0, 25}

	u := composer.Compose(cam, obj)
	assert.Equal(t, obj.ModelMatrix(), u.Model)
	assert.Equal(t, cam.ViewMatrix(), u.View)
	assert.Equal(t, proj, u.Projection)
	assert.Equal(t, composer.Projection(), u.Projection)
	assert.Equal(t, mgl32.Vec3{0, 10, 0}, u.ViewPosition)
	assert.Equal(t, light.Color, u.LightColor)
	assert.Equal(t, light.Position, u.LightPosition)

	// the view follows the camera, the projection does not
	cam.RotateYaw(30)
	cam.Translate(mgl32.Vec3{1, 0, 0})
	next := composer.Compose(cam, obj)
	assert.NotEqual(t, u.View, next.View)
	assert.Equal(t, u.Projection, next.Projection)
	assert.Equal(t, mgl32.Vec3{1, 10, 0}, next.ViewPosition)
}

func TestComposeObjectInView(t *testing.T) {
	composer := NewComposer(PerspectiveLH(mgl32.DegToRad(75), 1, 0.1, 100), Light{})
	cam := NewCamera(mgl32.Vec3{0, 10, 0})
	obj := NewTransform()
	obj.Position = mgl32.Vec3{0, 10, 25}

	u := composer.Compose(cam, obj)
	clip := u.Projection.Mul4(u.View).Mul4(u.Model).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	ndc := clip.Vec3().Mul(1 / clip.W())

	assert.InDelta(t, 0, ndc.X(), 1e-4)
	assert.InDelta(t, 0, ndc.Y(), 1e-4)
	assert.Greater(t, ndc.Z(), float32(0))
	assert.Less(t, ndc.Z(), float32(1))
}
