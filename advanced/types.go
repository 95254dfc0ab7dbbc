package advanced

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// A simple polygon given as a counterclockwise loop. The closing edge from the
// last point back to the first is implicit.
//
// Note that all points involved with the decomposition are pointers. The mesh
// never copies or modifies a point from the input, so output polygons share
// their points with the input polygon and can be compared by identity.
type Polygon struct {
	Points []*Point `yaml:"points"`
}

type PolygonList []Polygon

type Segment struct {
	Start *Point
	End   *Point
}

// Axis aligned bounding box. Containment is inclusive on every side.
type BoundingBox struct {
	MinX, MaxX, MinY, MaxY float64
}

type PointSet map[*Point]struct{}
