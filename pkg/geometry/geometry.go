// Package geometry generates the vertex and index buffers of the scene
// object. Vertices are interleaved as position (3 floats) then normal
// (3 floats).
package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved vertex size
const FloatsPerVertex = 6

// Data is an immutable vertex/index buffer pair
type Data struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in d
func (d Data) VertexCount() int {
	return len(d.Vertices) / FloatsPerVertex
}

// Position returns the position of vertex i
func (d Data) Position(i int) mgl32.Vec3 {
	base := i * FloatsPerVertex
	return mgl32.Vec3{d.Vertices[base], d.Vertices[base+1], d.Vertices[base+2]}
}

// Normal returns the normal of vertex i
func (d Data) Normal(i int) mgl32.Vec3 {
	base := i*FloatsPerVertex + 3
	return mgl32.Vec3{d.Vertices[base], d.Vertices[base+1], d.Vertices[base+2]}
}

// ByName returns the named mesh ("knot" or "cube")
func ByName(name string) (Data, error) {
	switch name {
	case "knot":
		return TorusKnot(DefaultKnot), nil
	case "cube":
		return Cube(), nil
	}
	return Data{}, fmt.Errorf("unknown mesh %q", name)
}

// KnotParams describes a (P, Q) torus knot tube
type KnotParams struct {
	Radius          float32 // radius of the torus the knot winds around
	Tube            float32 // radius of the tube
	TubularSegments int
	RadialSegments  int
	P, Q            int
}

// DefaultKnot is a trefoil
var DefaultKnot = KnotParams{
	Radius:          5,
	Tube:            1.5,
	TubularSegments: 128,
	RadialSegments:  16,
	P:               2,
	Q:               3,
}

// TorusKnot builds a tube swept along a (P, Q) torus knot
func TorusKnot(params KnotParams) Data {
	tubular, radial := params.TubularSegments, params.RadialSegments
	vertices := make([]float32, 0, (tubular+1)*(radial+1)*FloatsPerVertex)
	indices := make([]uint32, 0, tubular*radial*6)

	for j := 0; j <= tubular; j++ {
		u := float64(j) / float64(tubular) * float64(params.P) * 2 * math.Pi

		// frame along the curve from two nearby samples
		p1 := knotPoint(u, params)
		p2 := knotPoint(u+0.01, params)
		t := p2.Sub(p1)
		n := p2.Add(p1)
		b := t.Cross(n)
		n = b.Cross(t)
		b = b.Normalize()
		n = n.Normalize()

		for i := 0; i <= radial; i++ {
			v := float64(i) / float64(radial) * 2 * math.Pi
			cx := -params.Tube * float32(math.Cos(v))
			cy := params.Tube * float32(math.Sin(v))

			pos := p1.Add(n.Mul(cx)).Add(b.Mul(cy))
			normal := pos.Sub(p1).Normalize()

			vertices = append(vertices,
				pos[0], pos[1], pos[2],
				normal[0], normal[1], normal[2],
			)
		}
	}

	stride := uint32(radial + 1)
	for j := 1; j <= tubular; j++ {
		for i := 1; i <= radial; i++ {
			a := stride*uint32(j-1) + uint32(i-1)
			b := stride*uint32(j) + uint32(i-1)
			c := stride*uint32(j) + uint32(i)
			d := stride*uint32(j-1) + uint32(i)

			indices = append(indices, a, b, d, b, c, d)
		}
	}

	return Data{Vertices: vertices, Indices: indices}
}

func knotPoint(u float64, params KnotParams) mgl32.Vec3 {
	quOverP := float64(params.Q) / float64(params.P) * u
	cs := math.Cos(quOverP)
	r := float64(params.Radius)

	return mgl32.Vec3{
		float32(r * (2 + cs) * 0.5 * math.Cos(u)),
		float32(r * (2 + cs) * 0.5 * math.Sin(u)),
		float32(r * math.Sin(quOverP) * 0.5),
	}
}

// Cube returns a unit cube centered on the origin with per-face normals
func Cube() Data {
	vertices := []float32{
		// Front face
		-0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
		0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
		0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
		-0.5, 0.5, 0.5, 0.0, 0.0, 1.0,

		// Back face
		-0.5, -0.5, -0.5, 0.0, 0.0, -1.0,
		-0.5, 0.5, -0.5, 0.0, 0.0, -1.0,
		0.5, 0.5, -0.5, 0.0, 0.0, -1.0,
		0.5, -0.5, -0.5, 0.0, 0.0, -1.0,

		// Top face
		-0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
		-0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
		0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
		0.5, 0.5, -0.5, 0.0, 1.0, 0.0,

		// Bottom face
		-0.5, -0.5, -0.5, 0.0, -1.0, 0.0,
		0.5, -0.5, -0.5, 0.0, -1.0, 0.0,
		0.5, -0.5, 0.5, 0.0, -1.0, 0.0,
		-0.5, -0.5, 0.5, 0.0, -1.0, 0.0,

		// Right face
		0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
		0.5, 0.5, -0.5, 1.0, 0.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 0.0, 0.0,
		0.5, -0.5, 0.5, 1.0, 0.0, 0.0,

		// Left face
		-0.5, -0.5, -0.5, -1.0, 0.0, 0.0,
		-0.5, -0.5, 0.5, -1.0, 0.0, 0.0,
		-0.5, 0.5, 0.5, -1.0, 0.0, 0.0,
		-0.5, 0.5, -0.5, -1.0, 0.0, 0.0,
	}

	indices := []uint32{
		0, 1, 2, 2, 3, 0, // Front face
		4, 5, 6, 6, 7, 4, // Back face
		8, 9, 10, 10, 11, 8, // Top face
		12, 13, 14, 14, 15, 12, // Bottom face
		16, 17, 18, 18, 19, 16, // Right face
		20, 21, 22, 22, 23, 20, // Left face
	}

	return Data{Vertices: vertices, Indices: indices}
}
