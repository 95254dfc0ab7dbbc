package polyio

import (
	"bufio"
	"bytes"
	"io"
	"regexp"

	"github.com/osuushi/convexpart/advanced"
	"github.com/pkg/errors"
)

// Read a polygon list in the given format. Auto sniffs the format from the
// first bytes of the input.
func Read(r io.Reader, format Format) (advanced.PolygonList, error) {
	br := bufio.NewReader(r)
	if format == Auto {
		format = Sniff(br)
	}

	var list advanced.PolygonList
	var err error
	switch format {
	case Text:
		list, err = ReadText(br)
	case Counted:
		list, err = ReadCounted(br)
	case SVG:
		list, err = ReadSVG(br)
	case YAML:
		list, err = ReadYAML(br)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "input format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, errors.Wrapf(ErrNoPolygons, "reading %s", format)
	}
	return list, nil
}

var (
	countLine = regexp.MustCompile(`^\s*\d+\s*$`)
	yamlStart = regexp.MustCompile(`^(---|polygons\s*:|#)`)
)

// Guess the format of buffered input without consuming it. Markup is SVG, a
// document opening like the YAML writer's output is YAML, and a first line
// holding a lone count is the counted text format. Everything else is text.
func Sniff(r *bufio.Reader) Format {
	// A short read still returns what is there
	head, _ := r.Peek(512)
	head = bytes.TrimLeft(head, " \t\r\n\ufeff")
	if len(head) == 0 {
		return Text
	}
	if head[0] == '<' {
		return SVG
	}
	if yamlStart.Match(head) {
		return YAML
	}
	firstLine := head
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		firstLine = head[:i]
	}
	if countLine.Match(firstLine) {
		return Counted
	}
	return Text
}
