// Decomposition of simple polygons into convex pieces.
//
// This package takes a simple polygon, which may be non-convex, and splits it
// into a set of convex polygons using only the original points. The pieces are
// found by greedily cutting off convex chains along the boundary, then
// removing every cut that turns out not to be needed.
//
// For access to the underlying half-edge mesh, see the advanced package.
package convexpart

import "github.com/osuushi/convexpart/advanced"

type Point = advanced.Point
type Polygon = advanced.Polygon
type Options = advanced.Options
type Result = advanced.Result

// Split a simple polygon into convex polygons.
//
// The polygon must be simple, and its points must be given in counterclockwise
// order. The returned polygons are also counterclockwise, and share the
// original *Point values.
func Decompose(points []*Point) ([]Polygon, error) {
	result, err := DecomposeWithOptions(nil, points)
	if err != nil {
		return nil, err
	}
	return []Polygon(result.Polygons), nil
}

// Like Decompose, but with control over logging, merging and invariant
// checks. The result also carries the mesh and counts for each phase.
func DecomposeWithOptions(options *Options, points []*Point) (result *Result, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Decompose(advanced.Polygon{Points: points}, options), nil
}
