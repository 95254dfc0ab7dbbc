package polygen

import (
	"testing"

	"github.com/osuushi/convexpart/advanced"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reports whether any two non-adjacent edges of the polygon touch.
func selfIntersects(poly advanced.Polygon) bool {
	points := poly.Points
	n := len(points)
	for i := 0; i < n; i++ {
		a1, a2 := points[i], points[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			b1, b2 := points[j], points[(j+1)%n]
			if segmentsTouch(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

func segmentsTouch(a1, a2, b1, b2 *advanced.Point) bool {
	d1 := advanced.Orientation(a1, a2, b1)
	d2 := advanced.Orientation(a1, a2, b2)
	d3 := advanced.Orientation(b1, b2, a1)
	d4 := advanced.Orientation(b1, b2, a2)
	return ((d1 >= 0 && d2 <= 0) || (d1 <= 0 && d2 >= 0)) &&
		((d3 >= 0 && d4 <= 0) || (d3 <= 0 && d4 >= 0))
}

func TestGenerate(t *testing.T) {
	for _, profile := range Profiles {
		t.Run(profile, func(t *testing.T) {
			rng := RandWithSeed(7)
			for n := 3; n <= 60; n++ {
				poly, err := Generate(rng, Options{Vertices: n, Jaggedness: 0.8, Profile: Profile(profile)})
				require.NoError(t, err)
				require.Len(t, poly.Points, n)
				require.True(t, poly.IsCCW(), "n=%d", n)
				require.False(t, selfIntersects(poly), "n=%d", n)

				box := poly.BoundingBox()
				assert.LessOrEqual(t, box.MaxX, 100.0)
				assert.GreaterOrEqual(t, box.MinX, -100.0)
			}
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	options := Options{Vertices: 25, Radius: 10, Jaggedness: 0.5}
	a, err := Generate(RandWithSeed(42), options)
	require.NoError(t, err)
	b, err := Generate(RandWithSeed(42), options)
	require.NoError(t, err)
	c, err := Generate(RandWithSeed(43), options)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGenerateZeroJaggednessIsConvex(t *testing.T) {
	poly, err := Generate(RandWithSeed(1), Options{Vertices: 30})
	require.NoError(t, err)
	assert.True(t, poly.IsConvex())
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(RandWithSeed(1), Options{Vertices: 2})
	assert.Equal(t, ErrTooFewVertices, errors.Cause(err))

	_, err = Generate(RandWithSeed(1), Options{Vertices: 10, Jaggedness: 1})
	assert.Equal(t, ErrJaggedness, errors.Cause(err))

	_, err = GenerateList(RandWithSeed(1), 3, Options{Vertices: 0})
	assert.Equal(t, ErrTooFewVertices, errors.Cause(err))
}

func TestGeneratedPolygonsDecompose(t *testing.T) {
	rng := RandWithSeed(2024)
	for n := 4; n <= 80; n += 4 {
		list, err := GenerateList(rng, 5, Options{Vertices: n, Jaggedness: 0.7, Profile: Quad})
		require.NoError(t, err)
		for _, poly := range list {
			result := advanced.Decompose(poly, &advanced.Options{CheckInvariants: true})
			require.NotEmpty(t, result.Polygons)
			assert.InDelta(t, poly.Area(), result.Polygons.Area(), 1e-6)
			for _, piece := range result.Polygons {
				require.True(t, piece.IsConvex(), "n=%d: reflex piece %v", n, piece.Points)
			}
			assert.Equal(t, n, countDistinct(result.Polygons))
		}
	}
}

func countDistinct(list advanced.PolygonList) int {
	seen := make(advanced.PointSet)
	for _, poly := range list {
		for _, p := range poly.Points {
			seen.Add(p)
		}
	}
	return len(seen)
}
