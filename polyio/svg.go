package polyio

import (
	"fmt"
	"io"

	"github.com/JoshVarga/svgparser"
	svg "github.com/ajstarks/svgo/float"
	"github.com/osuushi/convexpart/advanced"
	"github.com/pkg/errors"
)

// Read every <polygon> element in an SVG document, in document order.
// Coordinates are taken as written, with no transforms applied. SVG's y axis
// points down, so polygons drawn counterclockwise on screen read as clockwise.
func ReadSVG(r io.Reader) (advanced.PolygonList, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var list advanced.PolygonList
	for i, el := range root.FindAll("polygon") {
		fields := splitFields(el.Attributes["points"])
		if len(fields)%2 != 0 {
			return nil, errors.Errorf("polygon %d: odd number of coordinates", i+1)
		}
		points := make([]*advanced.Point, 0, len(fields)/2)
		for j := 0; j < len(fields); j += 2 {
			point, err := parsePoint(fields[j : j+2])
			if err != nil {
				return nil, errors.Wrapf(err, "polygon %d", i+1)
			}
			points = append(points, point)
		}
		list = append(list, advanced.Polygon{Points: points})
	}
	return list, nil
}

// Draw the polygons as an SVG picture, with the y axis flipped so that the
// picture has its origin at the bottom left. Each polygon gets a fill colour
// from the palette.
func WriteSVG(w io.Writer, list advanced.PolygonList, scale float64) error {
	if len(list) == 0 {
		return ErrNoPolygons
	}
	frame := newFrame(list, scale)

	canvas := svg.New(w)
	canvas.Start(frame.width, frame.height)
	canvas.Rect(0, 0, frame.width, frame.height, "fill: white")
	for i, poly := range list {
		xs := make([]float64, len(poly.Points))
		ys := make([]float64, len(poly.Points))
		for j, p := range poly.Points {
			xs[j], ys[j] = frame.project(p)
		}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill: %s; stroke: black; stroke-width: 1", paletteHex(i)))
	}
	canvas.End()
	return nil
}
