package polyio

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/osuushi/convexpart/advanced"
	"github.com/pkg/errors"
)

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Height:    "800px",
			Width:     "800px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Render the polygons as an interactive HTML chart: the vertices as a scatter
// series, and one closed line series per polygon.
func WriteChart(w io.Writer, title string, list advanced.PolygonList) error {
	if len(list) == 0 {
		return ErrNoPolygons
	}
	scatter := charts.NewScatter()
	prepareScatter(scatter, title)

	var vertices []opts.ScatterData
	for _, poly := range list {
		for _, p := range poly.Points {
			vertices = append(vertices, opts.ScatterData{Value: []float64{p.X, p.Y}})
		}
	}
	scatter.AddSeries("Vertices", vertices).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "black",
			}),
		)

	for i, poly := range list {
		if len(poly.Points) == 0 {
			continue
		}
		var loop []opts.LineData
		for j := 0; j <= len(poly.Points); j++ {
			p := poly.Points[advanced.CircularIndex(j, len(poly.Points))]
			loop = append(loop, opts.LineData{Value: []float64{p.X, p.Y}})
		}
		line := charts.NewLine()
		line.AddSeries(fmt.Sprintf("Polygon %d", i+1), loop).
			SetSeriesOptions(
				charts.WithLineStyleOpts(opts.LineStyle{
					Width: 2,
					Color: paletteHex(i),
				}),
			)
		scatter.Overlap(line)
	}

	return errors.Wrap(scatter.Render(w), "rendering chart")
}

// Mean decomposition time for polygons with a given number of vertices.
type Timing struct {
	Vertices int
	Mean     time.Duration
}

// Render decomposition timings as an HTML line chart of milliseconds against
// vertex count.
func WriteTimingChart(w io.Writer, title string, timings []Timing) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Vertices",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Time (ms)",
		}),
	)

	data := make([]opts.LineData, len(timings))
	for i, timing := range timings {
		ms := float64(timing.Mean) / float64(time.Millisecond)
		data[i] = opts.LineData{Value: []float64{float64(timing.Vertices), ms}}
	}
	line.AddSeries("Mean time", data).
		SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 1,
			}),
		)
	return errors.Wrap(line.Render(w), "rendering chart")
}
