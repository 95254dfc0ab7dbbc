package advanced

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// SVG fixtures live in fixtures/ and are loaded by name, sans extension. Only
// the first polygon element of each file is used, and it is normalized to
// counterclockwise winding. Anything unexpected panics.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []*Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, &Point{x, y})
	}
	result := Polygon{Points: points}
	if result.IsCW() {
		result = result.Reverse()
	}
	return result
}

var fixtureNames = []string{"chevron", "l_shape", "comb", "keyhole", "zigzag"}

func pointsOf(coords ...float64) []*Point {
	points := make([]*Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		points = append(points, &Point{X: coords[i], Y: coords[i+1]})
	}
	return points
}

func UnitSquare() Polygon {
	return Polygon{pointsOf(0, 0, 1, 0, 1, 1, 0, 1)}
}

func Triangle() Polygon {
	return Polygon{pointsOf(0, 0, 4, 0, 1, 3)}
}

// Reflex corner at (1, 1), which is vertex 3
func LShape() Polygon {
	return Polygon{pointsOf(0, 0, 2, 0, 2, 1, 1, 1, 1, 2, 0, 2)}
}

// The same L, starting at a different vertex
func RotatedLShape() Polygon {
	return Polygon{pointsOf(1, 2, 0, 2, 0, 0, 2, 0, 2, 1, 1, 1)}
}

func RegularPolygon(n int, radius float64) Polygon {
	var points []*Point
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

func SimpleStar() Polygon {
	var points []*Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}
