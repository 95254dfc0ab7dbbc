package polyio

import (
	"io"

	"github.com/fogleman/gg"
	"github.com/osuushi/convexpart/advanced"
	"github.com/pkg/errors"
)

// Render the polygons as a PNG, each filled with a palette colour and outlined
// in black. A scale of zero fits the drawing to 800 pixels.
func WritePNG(w io.Writer, list advanced.PolygonList, scale float64) error {
	if len(list) == 0 {
		return ErrNoPolygons
	}
	frame := newFrame(list, scale)

	c := gg.NewContext(int(frame.width), int(frame.height))
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, frame.width, frame.height)
	c.Fill()

	c.SetLineWidth(1.5)
	for i, poly := range list {
		if len(poly.Points) == 0 {
			continue
		}
		c.MoveTo(frame.project(poly.Points[0]))
		for _, p := range poly.Points[1:] {
			c.LineTo(frame.project(p))
		}
		c.ClosePath()
		c.SetRGB(paletteRGB(i))
		c.FillPreserve()
		c.SetRGB(0, 0, 0)
		c.Stroke()
	}

	return errors.Wrap(c.EncodePNG(w), "encoding png")
}
