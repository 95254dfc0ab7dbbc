// Reading and writing polygon lists for the command line tool.
//
// Polygons are read as plain point lists and are not validated here. Winding
// is left as found; callers that need counterclockwise input normalise it.
package polyio

import (
	"github.com/osuushi/convexpart/advanced"
	"github.com/pkg/errors"
)

type Format string

const (
	Auto    Format = "auto"
	Text    Format = "text"
	Counted Format = "counted"
	SVG     Format = "svg"
	YAML    Format = "yaml"
	PNG     Format = "png"
	HTML    Format = "html"
)

var InputFormats = []string{string(Auto), string(Text), string(Counted), string(SVG), string(YAML)}
var OutputFormats = []string{string(Text), string(Counted), string(YAML), string(SVG), string(PNG), string(HTML)}

var ErrUnknownFormat = errors.New("unknown format")

// Returned by readers when the input holds no polygons at all.
var ErrNoPolygons = errors.New("no polygons in input")

// Flip polygons given clockwise so that every polygon in the list winds
// counterclockwise. Returns the number of polygons reversed.
func NormalizeWinding(list advanced.PolygonList) int {
	reversed := 0
	for i, poly := range list {
		if poly.IsCW() {
			list[i] = poly.Reverse()
			reversed++
		}
	}
	return reversed
}
