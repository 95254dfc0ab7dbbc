package polyio

import (
	"fmt"
	"math"

	"github.com/osuushi/convexpart/advanced"
)

const drawPadding = 10

// Maps polygon coordinates onto an image with the origin at the bottom left.
type frame struct {
	box           advanced.BoundingBox
	scale         float64
	width, height float64
}

func newFrame(list advanced.PolygonList, scale float64) frame {
	box := list.BoundingBox()
	if scale <= 0 {
		// Fit the larger side to 800 pixels
		scale = 800 / math.Max(math.Max(box.Width(), box.Height()), advanced.Epsilon)
	}
	return frame{
		box:    box,
		scale:  scale,
		width:  math.Ceil(scale*box.Width()) + drawPadding*2,
		height: math.Ceil(scale*box.Height()) + drawPadding*2,
	}
}

func (f frame) project(p *advanced.Point) (x, y float64) {
	x = drawPadding + (p.X-f.box.MinX)*f.scale
	y = f.height - drawPadding - (p.Y-f.box.MinY)*f.scale
	return x, y
}

// A fixed qualitative palette, repeated as needed.
var palette = [][3]float64{
	{0.40, 0.76, 0.65},
	{0.99, 0.55, 0.38},
	{0.55, 0.63, 0.80},
	{0.91, 0.54, 0.76},
	{0.65, 0.85, 0.33},
	{1.00, 0.85, 0.18},
	{0.90, 0.77, 0.58},
	{0.70, 0.70, 0.70},
}

func paletteRGB(i int) (r, g, b float64) {
	c := palette[advanced.CircularIndex(i, len(palette))]
	return c[0], c[1], c[2]
}

func paletteHex(i int) string {
	r, g, b := paletteRGB(i)
	return fmt.Sprintf("#%02x%02x%02x", int(r*255+0.5), int(g*255+0.5), int(b*255+0.5))
}
