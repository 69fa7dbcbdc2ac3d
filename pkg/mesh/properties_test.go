package mesh_test

import (
	"sync"
	"testing"

	"github.com/simogasp/half-edge/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvariants(t *testing.T) {
	for _, f := range allFixtures() {
		t.Run(f.name, func(t *testing.T) {
			tr := build(t, f)
			require.NoError(t, tr.Validate())

			for i := 0; i < tr.HalfEdgeCount(); i++ {
				e := mesh.Index(i)

				twin, err := tr.Twin(e)
				require.NoError(t, err)
				assert.NotEqual(t, e, twin)
				twinTwin, err := tr.Twin(twin)
				require.NoError(t, err)
				assert.Equal(t, e, twinTwin, "twin involution at %d", e)

				n := next(t, tr, e)
				nextOrigin, err := tr.Origin(n)
				require.NoError(t, err)
				target, err := tr.Target(e)
				require.NoError(t, err)
				assert.Equal(t, target, nextOrigin, "loop consistency at %d", e)

				ccw, err := tr.CCWEdgeToVertex(e)
				require.NoError(t, err)
				back, err := tr.CWEdgeToVertex(ccw)
				require.NoError(t, err)
				assert.Equal(t, e, back, "rotation inverse at %d", e)

				if !tr.IsExterior(e) {
					assert.Equal(t, e, next(t, tr, next(t, tr, n)), "face cycle at %d", e)
					prev, err := tr.Prev(n)
					require.NoError(t, err)
					assert.Equal(t, e, prev)
				}
			}
		})
	}
}

func TestBoundaryClosure(t *testing.T) {
	for _, f := range allFixtures() {
		t.Run(f.name, func(t *testing.T) {
			tr := build(t, f)
			for i := tr.InteriorHalfEdgeCount(); i < tr.HalfEdgeCount(); i++ {
				start := mesh.Index(i)
				cur := next(t, tr, start)
				steps := 1
				for cur != start && steps <= tr.HalfEdgeCount() {
					assert.True(t, tr.IsExterior(cur))
					cur = next(t, tr, cur)
					steps++
				}
				assert.Equal(t, start, cur, "loop from %d does not close", start)
			}
		})
	}
}

func TestBorderSymmetry(t *testing.T) {
	for _, f := range allFixtures() {
		t.Run(f.name, func(t *testing.T) {
			tr := build(t, f)

			onBoundary := make(map[mesh.Index]bool)
			for i := tr.InteriorHalfEdgeCount(); i < tr.HalfEdgeCount(); i++ {
				border, err := tr.IsBorderFace(mesh.Index(i))
				require.NoError(t, err)
				assert.True(t, border)

				org, err := tr.Origin(mesh.Index(i))
				require.NoError(t, err)
				tgt, err := tr.Target(mesh.Index(i))
				require.NoError(t, err)
				onBoundary[org] = true
				onBoundary[tgt] = true
			}
			for v := 0; v < tr.VertexCount(); v++ {
				border, err := tr.IsBorderVertex(mesh.Index(v))
				require.NoError(t, err)
				assert.Equal(t, onBoundary[mesh.Index(v)], border, "vertex %d", v)
			}
		})
	}
}

func TestDegreeMatchesStar(t *testing.T) {
	tr := build(t, allFixtures()[3])
	for v := 0; v < tr.VertexCount(); v++ {
		star, err := tr.VertexStar(mesh.Index(v))
		require.NoError(t, err)
		deg, err := tr.Degree(mesh.Index(v))
		require.NoError(t, err)
		assert.Len(t, star, deg)
		for _, e := range star {
			org, err := tr.Origin(e)
			require.NoError(t, err)
			assert.Equal(t, mesh.Index(v), org)
		}
	}
}

func TestEdges(t *testing.T) {
	tr := build(t, twoTriangles())
	edges := tr.Edges()
	require.Len(t, edges, 5)

	var border int
	for _, e := range edges {
		if e.Border {
			border++
		}
	}
	assert.Equal(t, 4, border)
}

func TestQueries_OutOfRange(t *testing.T) {
	tr := build(t, singleTriangle())
	bad := []mesh.Index{-1, 6, 100}

	for _, e := range bad {
		_, err := tr.Origin(e)
		assert.ErrorIs(t, err, mesh.ErrOutOfRange)
		_, err = tr.Target(e)
		assert.ErrorIs(t, err, mesh.ErrOutOfRange)
		_, err = tr.Twin(e)
		assert.ErrorIs(t, err, mesh.ErrOutOfRange)
		_, err = tr.Next(e)
		assert.ErrorIs(t, err, mesh.ErrOutOfRange)
		_, err = tr.Prev(e)
		assert.ErrorIs(t, err, mesh.ErrOutOfRange)
		_, err = tr.CCWEdgeToVertex(e)
		assert.ErrorIs(t, err, mesh.ErrOutOfRange)
		_, err = tr.CWEdgeToVertex(e)
		assert.ErrorIs(t, err, mesh.ErrOutOfRange)
		_, err = tr.IsBorderFace(e)
		assert.ErrorIs(t, err, mesh.ErrOutOfRange)
		_, err = tr.HalfEdgeAt(e)
		assert.ErrorIs(t, err, mesh.ErrOutOfRange)
	}

	for _, v := range []mesh.Index{-1, 3} {
		_, err := tr.EdgeOfVertex(v)
		assert.ErrorIs(t, err, mesh.ErrOutOfRange)
		_, err = tr.IsBorderVertex(v)
		assert.ErrorIs(t, err, mesh.ErrOutOfRange)
		_, err = tr.Degree(v)
		assert.ErrorIs(t, err, mesh.ErrOutOfRange)
		_, err = tr.PointX(v)
		assert.ErrorIs(t, err, mesh.ErrOutOfRange)
		_, err = tr.PointY(v)
		assert.ErrorIs(t, err, mesh.ErrOutOfRange)
		_, err = tr.VertexAt(v)
		assert.ErrorIs(t, err, mesh.ErrOutOfRange)
	}

	_, err := tr.IncidentHalfEdge(1)
	assert.ErrorIs(t, err, mesh.ErrOutOfRange)
	e, err := tr.IncidentHalfEdge(0)
	require.NoError(t, err)
	assert.Equal(t, mesh.Index(0), e)
}

func TestPoints(t *testing.T) {
	tr := build(t, twoTriangles())
	x, err := tr.PointX(3)
	require.NoError(t, err)
	y, err := tr.PointY(3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 1.0, y)
}

func TestIdempotentConcurrentReads(t *testing.T) {
	tr := build(t, allFixtures()[4])

	snapshot := func() []mesh.HalfEdge {
		out := make([]mesh.HalfEdge, tr.HalfEdgeCount())
		for i := range out {
			he, err := tr.HalfEdgeAt(mesh.Index(i))
			if err != nil {
				panic(err)
			}
			out[i] = he
		}
		return out
	}
	want := snapshot()

	var wg sync.WaitGroup
	results := make([][]mesh.HalfEdge, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for v := 0; v < tr.VertexCount(); v++ {
				_, _ = tr.Degree(mesh.Index(v))
			}
			results[i] = snapshot()
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
