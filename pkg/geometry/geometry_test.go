package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertWellFormed(t *testing.T, d Data) {
	t.Helper()
	require.Zero(t, len(d.Vertices)%FloatsPerVertex)
	require.Zero(t, len(d.Indices)%3)

	count := uint32(d.VertexCount())
	for _, idx := range d.Indices {
		require.Less(t, idx, count)
	}
	for i := 0; i < d.VertexCount(); i++ {
		require.InDelta(t, 1, d.Normal(i).Len(), 1e-4, "normal of vertex %d", i)
	}
}

func TestCube(t *testing.T) {
	d := Cube()
	assert.Equal(t, 24, d.VertexCount())
	assert.Len(t, d.Indices, 36)
	assertWellFormed(t, d)

	for i := 0; i < d.VertexCount(); i++ {
		p := d.Position(i)
		for _, c := range p {
			assert.InDelta(t, 0.5, abs(c), 1e-6)
		}
	}
}

func TestTorusKnot(t *testing.T) {
	params := DefaultKnot
	d := TorusKnot(params)

	assert.Equal(t, (params.TubularSegments+1)*(params.RadialSegments+1), d.VertexCount())
	assert.Len(t, d.Indices, params.TubularSegments*params.RadialSegments*6)
	assertWellFormed(t, d)

	// everything fits inside the torus the knot winds around
	limit := float64(params.Radius*1.5 + params.Tube)
	for i := 0; i < d.VertexCount(); i++ {
		require.LessOrEqual(t, float64(d.Position(i).Len()), limit+1e-3)
	}
}

func TestTorusKnotSmall(t *testing.T) {
	d := TorusKnot(KnotParams{Radius: 1, Tube: 0.25, TubularSegments: 8, RadialSegments: 3, P: 2, Q: 3})
	assert.Equal(t, 9*4, d.VertexCount())
	assert.Len(t, d.Indices, 8*3*6)
	assertWellFormed(t, d)
}

func TestByName(t *testing.T) {
	knot, err := ByName("knot")
	require.NoError(t, err)
	assert.Equal(t, TorusKnot(DefaultKnot).VertexCount(), knot.VertexCount())

	cube, err := ByName("cube")
	require.NoError(t, err)
	assert.Equal(t, 24, cube.VertexCount())

	_, err = ByName("teapot")
	assert.Error(t, err)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
