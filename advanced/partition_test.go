package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partitioned(t *testing.T, polygon Polygon) (*Mesh, int) {
	t.Helper()
	m, err := NewMesh(polygon.Points)
	require.NoError(t, err)
	cuts := m.Partition(nil)
	require.NoError(t, m.Check())
	return m, cuts
}

func TestPartitionConvex(t *testing.T) {
	for name, polygon := range map[string]Polygon{
		"triangle": Triangle(),
		"square":   UnitSquare(),
		"hexagon":  RegularPolygon(6, 3),
		"40-gon":   RegularPolygon(40, 10),
	} {
		t.Run(name, func(t *testing.T) {
			m, cuts := partitioned(t, polygon)
			assert.Equal(t, 0, cuts)
			assert.Equal(t, 1, m.LiveFaceCount())
			assert.Equal(t, polygon.Points, m.FacePolygon(0).Points)
		})
	}
}

func TestPartitionLShape(t *testing.T) {
	l := LShape()
	m, cuts := partitioned(t, l)
	require.Equal(t, 1, cuts)

	// The diagonal runs from the first vertex to the reflex corner
	d := m.Diagonals[0]
	assert.Equal(t, VertexIndex(0), m.HalfEdges[d].Origin)
	assert.Equal(t, VertexIndex(3), m.Dest(d))

	assert.Equal(t, []VertexIndex{0, 3, 4, 5}, m.FaceVertices(0))
	assert.Equal(t, []VertexIndex{3, 0, 1, 2}, m.FaceVertices(1))
	AssertValidDecomposition(t, l, m.Polygons())
}

func TestPartitionRotatedLShape(t *testing.T) {
	// The first candidate swallows the reflex corner and has to shrink
	l := RotatedLShape()
	m, cuts := partitioned(t, l)
	require.Equal(t, 2, cuts)

	assert.Equal(t, VertexIndex(0), m.HalfEdges[m.Diagonals[0]].Origin)
	assert.Equal(t, VertexIndex(2), m.Dest(m.Diagonals[0]))
	assert.Equal(t, VertexIndex(2), m.HalfEdges[m.Diagonals[1]].Origin)
	assert.Equal(t, VertexIndex(5), m.Dest(m.Diagonals[1]))

	assert.Equal(t, []VertexIndex{2, 5, 0}, m.FaceVertices(0))
	assert.Equal(t, []VertexIndex{2, 0, 1}, m.FaceVertices(1))
	assert.Equal(t, []VertexIndex{5, 2, 3, 4}, m.FaceVertices(2))
	AssertValidDecomposition(t, l, m.Polygons())
}

func TestPartitionChevron(t *testing.T) {
	// The first candidate contains the notch, and shrinks to a single edge
	chevron := LoadFixture("chevron")
	m, cuts := partitioned(t, chevron)
	require.Equal(t, 1, cuts)
	assert.Equal(t, VertexIndex(1), m.HalfEdges[m.Diagonals[0]].Origin)
	assert.Equal(t, VertexIndex(3), m.Dest(m.Diagonals[0]))
	AssertValidDecomposition(t, chevron, m.Polygons())
}

func TestPartitionStar(t *testing.T) {
	// Every tip is cut off, leaving the inner pentagon with one tip attached
	star := SimpleStar()
	m, cuts := partitioned(t, star)
	require.Equal(t, 4, cuts)
	assert.Len(t, m.FaceVertices(0), 6)
	AssertValidDecomposition(t, star, m.Polygons())
}

func TestPartitionFixtures(t *testing.T) {
	for _, name := range fixtureNames {
		t.Run(name, func(t *testing.T) {
			polygon := LoadFixture(name)
			m, cuts := partitioned(t, polygon)
			assert.Equal(t, cuts+1, m.LiveFaceCount())
			AssertValidDecomposition(t, polygon, m.Polygons())
		})
	}
}

func TestPartitionRemainingFaceShrinks(t *testing.T) {
	m, _ := partitioned(t, RotatedLShape())
	// The original face is what is left once everything else is cut off
	assert.Equal(t, 3, m.FaceLen(0))
	assert.True(t, m.FacePolygon(0).IsConvex())
}
