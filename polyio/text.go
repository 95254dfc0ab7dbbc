package polyio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/osuushi/convexpart/advanced"
	"github.com/pkg/errors"
)

// Read newline separated points in the form "x y" or "x, y", with each polygon
// separated by a blank line. A line holding a lone integer is taken as a
// vertex count header and also starts a new polygon, so counted files read
// correctly too.
func ReadText(r io.Reader) (advanced.PolygonList, error) {
	var list advanced.PolygonList
	var points []*advanced.Point
	flush := func() {
		if len(points) > 0 {
			list = append(list, advanced.Polygon{Points: points})
			points = nil
		}
	}

	scanner := bufio.NewScanner(r)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		fields := splitFields(scanner.Text())
		if len(fields) == 0 {
			flush()
			continue
		}
		if len(fields) == 1 {
			if _, err := strconv.Atoi(fields[0]); err == nil {
				flush()
				continue
			}
		}
		point, err := parsePoint(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading text polygons")
	}
	flush()
	return list, nil
}

// Read the counted format: a vertex count, then that many
// "x y" pairs, repeated for each polygon. Whitespace and commas are
// interchangeable.
func ReadCounted(r io.Reader) (advanced.PolygonList, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(scanFields)
	next := func() (string, bool) {
		if scanner.Scan() {
			return scanner.Text(), true
		}
		return "", false
	}

	var list advanced.PolygonList
	for {
		token, ok := next()
		if !ok {
			break
		}
		count, err := strconv.Atoi(token)
		if err != nil || count < 0 {
			return nil, errors.Errorf("polygon %d: invalid vertex count %q", len(list)+1, token)
		}
		points := make([]*advanced.Point, 0, count)
		for i := 0; i < count; i++ {
			x, okX := next()
			y, okY := next()
			if !okX || !okY {
				return nil, errors.Errorf("polygon %d: expected %d points, got %d", len(list)+1, count, i)
			}
			point, err := parsePoint([]string{x, y})
			if err != nil {
				return nil, errors.Wrapf(err, "polygon %d, point %d", len(list)+1, i+1)
			}
			points = append(points, point)
		}
		list = append(list, advanced.Polygon{Points: points})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading counted polygons")
	}
	return list, nil
}

// Write each polygon as "x, y" lines, with a blank line after each polygon.
func WriteText(w io.Writer, list advanced.PolygonList) error {
	bw := bufio.NewWriter(w)
	for _, poly := range list {
		for _, p := range poly.Points {
			fmt.Fprintf(bw, "%s, %s\n", formatFloat(p.X), formatFloat(p.Y))
		}
		bw.WriteString("\n")
	}
	return errors.Wrap(bw.Flush(), "writing text polygons")
}

// Write each polygon as its vertex count followed by "x y" lines.
func WriteCounted(w io.Writer, list advanced.PolygonList) error {
	bw := bufio.NewWriter(w)
	for _, poly := range list {
		fmt.Fprintf(bw, "%d\n", len(poly.Points))
		for _, p := range poly.Points {
			fmt.Fprintf(bw, "%s %s\n", formatFloat(p.X), formatFloat(p.Y))
		}
	}
	return errors.Wrap(bw.Flush(), "writing counted polygons")
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ','
}

func splitFields(line string) []string {
	return strings.FieldsFunc(line, isSeparator)
}

// bufio.SplitFunc for tokens separated by whitespace or commas
func scanFields(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSeparator(rune(data[start])) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSeparator(rune(data[i])) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

func parsePoint(fields []string) (*advanced.Point, error) {
	if len(fields) != 2 {
		return nil, errors.Errorf("expected x and y, got %d values", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid x value %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid y value %q", fields[1])
	}
	return &advanced.Point{X: x, Y: y}, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
