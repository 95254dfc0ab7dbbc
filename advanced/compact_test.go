package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompact(t *testing.T) {
	l := RotatedLShape()
	m, _ := partitioned(t, l)
	require.Equal(t, 1, m.Merge(nil))

	compact := m.Compact()
	require.NoError(t, compact.Check())

	assert.Len(t, compact.Vertices, 6)
	assert.Len(t, compact.HalfEdges, 14)
	assert.Len(t, compact.Faces, 2)
	assert.Len(t, compact.Diagonals, 1)
	assert.Equal(t, m.Polygons(), compact.Polygons())

	for i, v := range compact.Vertices {
		require.NotEqual(t, NoEdge, v.IncidentEdge, "vertex %d", i)
		assert.Equal(t, VertexIndex(i), compact.HalfEdges[v.IncidentEdge].Origin)
		assert.Equal(t, v.IncidentEdge, compact.HalfEdges[v.Prev].Next)
		assert.True(t, compact.IsLive(compact.FaceOf(v.IncidentEdge)))
	}

	t.Run("the original is untouched", func(t *testing.T) {
		assert.Len(t, m.HalfEdges, 16)
		assert.Len(t, m.Faces, 4)
		require.NoError(t, m.Check())
	})

	t.Run("compacting again is a no-op", func(t *testing.T) {
		again := compact.Compact()
		assert.Equal(t, compact.HalfEdges, again.HalfEdges)
		assert.Equal(t, compact.Faces, again.Faces)
		assert.Equal(t, compact.Diagonals, again.Diagonals)
	})

	t.Run("compacted mesh can still merge", func(t *testing.T) {
		assert.Equal(t, 0, compact.Merge(nil))
		assert.Equal(t, 2, compact.LiveFaceCount())
	})
}

func TestCompactFixtures(t *testing.T) {
	for _, name := range fixtureNames {
		t.Run(name, func(t *testing.T) {
			polygon := LoadFixture(name)
			result := Decompose(polygon, nil)
			compact := result.Mesh.Compact()
			require.NoError(t, compact.Check())
			assert.Equal(t, result.Stats.Faces, compact.LiveFaceCount())
			assert.Len(t, compact.Faces, compact.LiveFaceCount())
			AssertValidDecomposition(t, polygon, compact.Polygons())
		})
	}
}
