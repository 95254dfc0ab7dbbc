package advanced

import "math"

// Geometry predicates used by the partition and merge passes. These compare
// exactly, without tolerance, since every decision they feed is a comparison
// between input coordinates.

// Twice the signed area of the triangle a, b, c, which is the cross product
// (b-a)×(c-a). Positive when the turn a→b→c is counterclockwise.
func Orientation(a, b, c *Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// A turn a→b→c is non-reflex when c lies on or to the left of the directed
// line a→b. Collinear turns count as non-reflex.
func IsNonReflex(a, b, c *Point) bool {
	return Orientation(a, b, c) >= 0
}

// The x coordinate where the horizontal line through p meets the line through
// v1 and v2. The segment must not be horizontal; callers special case that.
func RayIntersectX(p, v1, v2 *Point) float64 {
	return v1.X + (p.Y-v1.Y)*(v2.X-v1.X)/(v2.Y-v1.Y)
}

// Reports whether p lies on the same side of the directed line v1→v2 as some
// anchor whose orientation against that line is val. Points on the line count
// as the same side. A collinear anchor (val == 0) has no side, and every point
// is reported as being on it.
func SameSide(v1, v2 *Point, val float64, p *Point) bool {
	if val == 0 {
		return true
	}
	side := Orientation(v1, v2, p)
	if val < 0 {
		side = -side
	}
	return side >= 0
}

// Count the crossings of a rightward horizontal ray from p with the closed
// loop of points. Non-horizontal edges use the half-open convention
// max(y1,y2) >= p.Y > min(y1,y2), so a vertex shared by two edges is counted
// once. Horizontal edges never cross the ray. If p lies on any edge, onBoundary
// is set and the count is meaningless.
func CrossingCount(p *Point, loop []*Point) (count int, onBoundary bool) {
	for i, v1 := range loop {
		v2 := loop[CircularIndex(i+1, len(loop))]
		crosses, on := rayCrossesEdge(p, v1, v2)
		if on {
			return count, true
		}
		if crosses {
			count++
		}
	}
	return count, false
}

func rayCrossesEdge(p, v1, v2 *Point) (crosses, onBoundary bool) {
	if v1.Y == v2.Y {
		if p.Y != v1.Y {
			return false, false
		}
		return false, p.X >= math.Min(v1.X, v2.X) && p.X <= math.Max(v1.X, v2.X)
	}

	minY := math.Min(v1.Y, v2.Y)
	maxY := math.Max(v1.Y, v2.Y)
	if p.Y < minY || p.Y > maxY {
		return false, false
	}
	x := RayIntersectX(p, v1, v2)
	if p.X == x {
		return false, true
	}
	return p.Y > minY && p.X < x, false
}

// Ray casting point in polygon. Points on the boundary are inside.
func PointInLoop(p *Point, loop []*Point) bool {
	count, onBoundary := CrossingCount(p, loop)
	return onBoundary || count%2 == 1
}

func BoundingBoxOf(points []*Point) BoundingBox {
	box := BoundingBox{
		MinX: math.Inf(1),
		MaxX: math.Inf(-1),
		MinY: math.Inf(1),
		MaxY: math.Inf(-1),
	}
	for _, p := range points {
		box.MinX = math.Min(box.MinX, p.X)
		box.MaxX = math.Max(box.MaxX, p.X)
		box.MinY = math.Min(box.MinY, p.Y)
		box.MaxY = math.Max(box.MaxY, p.Y)
	}
	return box
}

func (b BoundingBox) Contains(p *Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

func (b BoundingBox) Width() float64 {
	return b.MaxX - b.MinX
}

func (b BoundingBox) Height() float64 {
	return b.MaxY - b.MinY
}

// Grow the box to cover other as well.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		MinX: math.Min(b.MinX, other.MinX),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}
