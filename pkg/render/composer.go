package render

import "github.com/go-gl/mathgl/mgl32"

// Light is the single point light of the scene
type Light struct {
	Color    mgl32.Vec3
	Position mgl32.Vec3
}

// Uniforms is everything the shader program needs for one frame
type Uniforms struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4

	ViewPosition  mgl32.Vec3
	LightColor    mgl32.Vec3
	LightPosition mgl32.Vec3
}

// Composer combines camera, object transform, a fixed projection and a
// fixed light into per-frame uniforms.
type Composer struct {
	projection mgl32.Mat4
	light      Light
}

// NewComposer creates a composer. The projection and light never change
// afterwards.
func NewComposer(projection mgl32.Mat4, light Light) *Composer {
	return &Composer{
		projection: projection,
		light:      light,
	}
}

// Projection returns the fixed projection matrix
func (c *Composer) Projection() mgl32.Mat4 {
	return c.projection
}

// Compose builds the uniforms for the current camera and object state
func (c *Composer) Compose(camera *Camera, object *Transform) Uniforms {
	return Uniforms{
		Model:         object.ModelMatrix(),
		View:          camera.ViewMatrix(),
		Projection:    c.projection,
		ViewPosition:  camera.Position(),
		LightColor:    c.light.Color,
		LightPosition: c.light.Position,
	}
}
