package advanced

// Helpers for checking that a decomposition is valid. The rules are:
// 1. Every piece is counterclockwise, convex, and has at least 3 vertices.
// 2. The pieces use exactly the vertices of the polygon.
// 3. Every boundary edge of the polygon is an edge of some piece, with the same direction.
// 4. The areas of the pieces sum to the area of the polygon.
// 5. Sampled points inside the polygon are in exactly one piece, and sampled
//    points outside it are in none.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertValidDecomposition(t *testing.T, polygon Polygon, pieces PolygonList) {
	t.Helper()
	require.True(t, polygon.IsCCW(), "polygon is not counterclockwise")
	require.NotEmpty(t, pieces)

	polyPoints := make(PointSet)
	for _, p := range polygon.Points {
		polyPoints.Add(p)
	}
	piecePoints := make(PointSet)
	pieceEdges := make(map[directedSegment]struct{})
	var area float64
	for _, piece := range pieces {
		require.GreaterOrEqual(t, len(piece.Points), 3, "degenerate piece %v", piece.Points)
		require.True(t, piece.IsCCW(), "clockwise piece %v", piece.Points)
		require.True(t, piece.IsConvex(), "reflex piece %v", piece.Points)
		area += piece.Area()
		for i, p := range piece.Points {
			piecePoints.Add(p)
			pieceEdges[directedSegment{p, piece.Points[CircularIndex(i+1, len(piece.Points))]}] = struct{}{}
		}
	}
	require.True(t, polyPoints.Equals(piecePoints), "pieces must use exactly the vertices of the polygon")

	for i, p := range polygon.Points {
		q := polygon.Points[CircularIndex(i+1, len(polygon.Points))]
		_, ok := pieceEdges[directedSegment{p, q}]
		require.True(t, ok, "boundary edge %v-%v is not an edge of any piece", *p, *q)
	}

	scale := math.Max(polygon.BoundingBox().Width(), polygon.BoundingBox().Height())
	require.InDelta(t, polygon.Area(), area, 1e-9*scale*scale, "areas of the pieces must sum to the area of the polygon")

	validatePiecesBySampling(t, polygon, pieces)
}

type directedSegment struct {
	start, end *Point
}

// Sample a grid over the polygon's padded bounding box. Samples very close to
// any edge are skipped, so only unambiguous containment is compared.
func validatePiecesBySampling(t *testing.T, polygon Polygon, pieces PolygonList) {
	t.Helper()
	box := polygon.BoundingBox()
	size := math.Max(box.Width(), box.Height())
	step := size / 47
	tolerance := step * 1e-3

	var edges []directedSegment
	for _, poly := range append(PolygonList{polygon}, pieces...) {
		for i, p := range poly.Points {
			edges = append(edges, directedSegment{p, poly.Points[CircularIndex(i+1, len(poly.Points))]})
		}
	}

	// The odd offset keeps samples off the lattice most fixtures are drawn on
	for y := box.MinY - size*0.1 + step*0.37; y <= box.MaxY+size*0.1; y += step {
	sample:
		for x := box.MinX - size*0.1 + step*0.29; x <= box.MaxX+size*0.1; x += step {
			p := &Point{X: x, Y: y}
			for _, edge := range edges {
				if distanceToSegment(p, edge.start, edge.end) < tolerance {
					continue sample
				}
			}

			inside := evenOdd(p, polygon.Points)
			count := 0
			for _, piece := range pieces {
				if strictlyInsideConvex(p, piece.Points) {
					count++
				}
			}
			if inside {
				assert.Equal(t, 1, count, "point %v should be in exactly one piece", *p)
			} else {
				assert.Equal(t, 0, count, "point %v should not be in any piece", *p)
			}
		}
	}
}

// Plain crossing-number test, independent of the engine's own ray casting
func evenOdd(p *Point, loop []*Point) bool {
	inside := false
	for i, a := range loop {
		b := loop[CircularIndex(i+1, len(loop))]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

func strictlyInsideConvex(p *Point, loop []*Point) bool {
	for i, a := range loop {
		b := loop[CircularIndex(i+1, len(loop))]
		if Orientation(a, b, p) <= 0 {
			return false
		}
	}
	return true
}

func distanceToSegment(p, a, b *Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lengthSquared := dx*dx + dy*dy
	if lengthSquared == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lengthSquared
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
