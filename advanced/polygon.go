package advanced

import "math"

// Shoelace signed area. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// A counterclockwise polygon is convex when none of its corners is a reflex turn.
func (poly Polygon) IsConvex() bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	for i := range poly.Points {
		a := poly.Points[CircularIndex(i-1, n)]
		b := poly.Points[i]
		c := poly.Points[CircularIndex(i+1, n)]
		if !IsNonReflex(a, b, c) {
			return false
		}
	}
	return true
}

// Ray casting point in polygon, boundary inclusive.
func (poly Polygon) ContainsPoint(p *Point) bool {
	return PointInLoop(p, poly.Points)
}

func (poly Polygon) BoundingBox() BoundingBox {
	return BoundingBoxOf(poly.Points)
}

func (list PolygonList) Area() float64 {
	var area float64
	for _, poly := range list {
		area += poly.Area()
	}
	return area
}

// Reports whether any polygon in the list contains the point.
func (list PolygonList) ContainsPoint(p *Point) bool {
	for _, poly := range list {
		if poly.ContainsPoint(p) {
			return true
		}
	}
	return false
}

func (list PolygonList) BoundingBox() BoundingBox {
	box := BoundingBoxOf(nil)
	for _, poly := range list {
		box = box.Union(poly.BoundingBox())
	}
	return box
}

func (list PolygonList) PointCount() int {
	var count int
	for _, poly := range list {
		count += len(poly.Points)
	}
	return count
}
