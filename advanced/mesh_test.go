package advanced

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMesh(t *testing.T) {
	square := UnitSquare()
	m, err := NewMesh(square.Points)
	require.NoError(t, err)

	assert.Len(t, m.Vertices, 4)
	assert.Len(t, m.HalfEdges, 8)
	assert.Len(t, m.Faces, 1)
	assert.Empty(t, m.Diagonals)
	require.NoError(t, m.Check())

	assert.Equal(t, []VertexIndex{0, 1, 2, 3}, m.FaceVertices(0))
	assert.Equal(t, []EdgeIndex{0, 1, 2, 3}, m.FaceEdges(0))
	assert.Equal(t, 4, m.FaceLen(0))
	assert.Equal(t, square.Points, m.FacePolygon(0).Points)

	t.Run("boundary edges", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			e := EdgeIndex(i)
			assert.Equal(t, VertexIndex(i), m.HalfEdges[e].Origin)
			assert.Equal(t, VertexIndex((i+1)%4), m.Dest(e))
			assert.Equal(t, FaceIndex(0), m.FaceOf(e))
			assert.Equal(t, EdgeIndex(4+i), m.HalfEdges[e].Twin)
		}
	})

	t.Run("exterior loop runs clockwise", func(t *testing.T) {
		var origins []VertexIndex
		m.walkLoop(4, func(e EdgeIndex) bool {
			assert.Equal(t, NoFace, m.FaceOf(e))
			origins = append(origins, m.HalfEdges[e].Origin)
			return true
		})
		assert.Equal(t, []VertexIndex{1, 0, 3, 2}, origins)
	})

	t.Run("vertex caches", func(t *testing.T) {
		for i := range m.Vertices {
			v := m.Vertices[i]
			assert.Equal(t, v.IncidentEdge, m.HalfEdges[v.Prev].Next)
			assert.Equal(t, VertexIndex((i+1)%4), m.Next(VertexIndex(i)))
			assert.Equal(t, VertexIndex((i+3)%4), m.PrevVertex(0, VertexIndex(i)))
		}
	})
}

func TestNewMeshTooFewVertices(t *testing.T) {
	for _, points := range [][]*Point{nil, pointsOf(0, 0), pointsOf(0, 0, 1, 0)} {
		m, err := NewMesh(points)
		require.Error(t, err)
		assert.Equal(t, ErrTooFewVertices, errors.Cause(err))
		assert.Empty(t, m.Vertices)
		assert.Empty(t, m.HalfEdges)
		assert.Empty(t, m.Faces)
		assert.NoError(t, m.Check())
	}
}

func TestMeshTriangle(t *testing.T) {
	m, err := NewMesh(Triangle().Points)
	require.NoError(t, err)
	require.NoError(t, m.Check())
	assert.Equal(t, 1, m.LiveFaceCount())
	assert.Equal(t, []FaceIndex{0}, m.LiveFaces())
	assert.Len(t, m.Polygons(), 1)
}

func TestCheckDetectsCorruption(t *testing.T) {
	t.Run("broken twin", func(t *testing.T) {
		m, _ := NewMesh(UnitSquare().Points)
		m.HalfEdges[0].Twin = 5
		assert.Error(t, m.Check())
	})

	t.Run("mislabelled face", func(t *testing.T) {
		m, _ := NewMesh(UnitSquare().Points)
		_, err := m.Split(0, 2)
		require.NoError(t, err)
		m.HalfEdges[1].Face = 0
		assert.Error(t, m.Check())
	})

	t.Run("half removed diagonal", func(t *testing.T) {
		m, _ := NewMesh(UnitSquare().Points)
		d, err := m.Split(0, 2)
		require.NoError(t, err)
		m.HalfEdges[d].Removed = true
		assert.Error(t, m.Check())
	})

	t.Run("loop that never closes", func(t *testing.T) {
		m, _ := NewMesh(UnitSquare().Points)
		m.HalfEdges[3].Next = 1
		assert.Error(t, m.Check())
	})
}
