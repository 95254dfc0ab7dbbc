package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/convexpart/dbg"
)

type faceKey struct {
	mesh *Mesh
	face FaceIndex
}

// Readable, coloured name for a face. Live faces are green, dead faces red.
func (m *Mesh) FaceName(f FaceIndex) string {
	name := fmt.Sprintf("%s#%d", dbg.Name(faceKey{m, f}), f)
	if m.IsLive(f) {
		return aurora.Green(name).String()
	}
	return aurora.Red(name).String()
}

func (m *Mesh) FaceString(f FaceIndex) string {
	var parts []string
	for _, v := range m.FaceVertices(f) {
		p := m.Point(v)
		parts = append(parts, fmt.Sprintf("%d(%g, %g)", v, p.X, p.Y))
	}
	return fmt.Sprintf("Face %s [%s]", m.FaceName(f), strings.Join(parts, " → "))
}

// One line per live face, plus a summary.
func (m *Mesh) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mesh { vertices: %d, half-edges: %d, faces: %d (%d live), diagonals: %d (%d live) }",
		len(m.Vertices),
		len(m.HalfEdges),
		len(m.Faces),
		m.LiveFaceCount(),
		len(m.Diagonals),
		len(m.LiveDiagonals()),
	)
	for _, f := range m.LiveFaces() {
		b.WriteString("\n  ")
		b.WriteString(m.FaceString(f))
	}
	return b.String()
}
