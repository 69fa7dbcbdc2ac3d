package generate

import (
	"math/rand"
	"testing"

	"github.com/simogasp/half-edge/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	m := Grid(3, 2, 6, 4)
	assert.Len(t, m.Points, 12)
	assert.Len(t, m.Faces, 3*2*3*2)
	assert.Equal(t, 6.0, m.Points[len(m.Points)-1].X)
	assert.Equal(t, 4.0, m.Points[len(m.Points)-1].Y)

	tr, err := m.Build()
	require.NoError(t, err)
	// контур 2*(3+2)
	assert.Equal(t, 10, tr.BorderEdgeCount())
	assert.NoError(t, tr.Validate())
}

func TestAnnulus(t *testing.T) {
	m := Annulus(4, 4, 4, 4)
	// 16 квадратов без внутренних 2x2
	assert.Len(t, m.Faces, 12*6)

	tr, err := m.Build()
	require.NoError(t, err)
	loops, err := tr.BoundaryLoops()
	require.NoError(t, err)
	assert.Len(t, loops, 2)
}

func TestJitteredGrid_KeepsBorder(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	plain := Grid(4, 4, 8, 8)
	m := JitteredGrid(rnd, 4, 4, 8, 8, 0.3)

	require.Len(t, m.Points, len(plain.Points))
	assert.Equal(t, plain.Faces, m.Faces)
	for j := 0; j <= 4; j++ {
		for i := 0; i <= 4; i++ {
			k := j*5 + i
			if i == 0 || j == 0 || i == 4 || j == 4 {
				assert.Equal(t, plain.Points[k], m.Points[k])
			} else {
				assert.InDelta(t, plain.Points[k].X, m.Points[k].X, 0.3*2)
				assert.InDelta(t, plain.Points[k].Y, m.Points[k].Y, 0.3*2)
			}
		}
	}
}

func TestFan(t *testing.T) {
	tr, err := Fan(6, 1).Build()
	require.NoError(t, err)
	assert.Equal(t, 6, tr.FaceCount())
	assert.Equal(t, 6, tr.BorderEdgeCount())

	deg, err := tr.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 6, deg)
}

func TestOctahedron(t *testing.T) {
	tr, err := Octahedron(1).Build()
	require.NoError(t, err)
	assert.Zero(t, tr.BorderEdgeCount())
	for v := 0; v < tr.VertexCount(); v++ {
		deg, err := tr.Degree(mesh.Index(v))
		require.NoError(t, err)
		assert.Equal(t, 4, deg)
	}
}
