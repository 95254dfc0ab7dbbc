package polyio

import (
	"io"

	"github.com/osuushi/convexpart/advanced"
	"github.com/pkg/errors"
)

type WriteOptions struct {
	// Pixels per unit for PNG and SVG output. Zero fits the drawing to 800
	// pixels.
	Scale float64
	// Chart title for HTML output.
	Title string
}

func Write(w io.Writer, format Format, list advanced.PolygonList, options WriteOptions) error {
	switch format {
	case Text:
		return WriteText(w, list)
	case Counted:
		return WriteCounted(w, list)
	case YAML:
		return WriteYAML(w, list)
	case SVG:
		return WriteSVG(w, list, options.Scale)
	case PNG:
		return WritePNG(w, list, options.Scale)
	case HTML:
		title := options.Title
		if title == "" {
			title = "Convex decomposition"
		}
		return WriteChart(w, title, list)
	}
	return errors.Wrapf(ErrUnknownFormat, "output format %q", format)
}
