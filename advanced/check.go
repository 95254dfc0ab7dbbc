package advanced

import (
	"github.com/osuushi/convexpart/dbg"
	"github.com/pkg/errors"
)

// Verify the structural invariants of the live mesh:
//
//  1. Twins pair up: twin(twin(e)) == e.
//  2. Every live face's loop closes and every half-edge on it names that face.
//  3. No removed half-edge is reachable from a live face.
//  4. Each live diagonal separates two distinct live faces.
//  5. Bookkeeping: 2n boundary half-edges plus two per diagonal, and one face
//     per diagonal plus one per merge on top of the original.
//
// Returns the first violation found.
func (m *Mesh) Check() error {
	n := len(m.Vertices)
	if n == 0 {
		if len(m.HalfEdges) != 0 || len(m.Faces) != 0 {
			return errors.New("mesh without vertices has edges or faces")
		}
		return nil
	}

	for i, edge := range m.HalfEdges {
		e := EdgeIndex(i)
		if edge.Twin < 0 || int(edge.Twin) >= len(m.HalfEdges) {
			return errors.Errorf("half-edge %d has no twin", e)
		}
		if m.HalfEdges[edge.Twin].Twin != e {
			return errors.Errorf("half-edge %d is not its twin's twin: %s", e, dbg.Dump(edge))
		}
		if edge.Removed != m.HalfEdges[edge.Twin].Removed {
			return errors.Errorf("half-edge %d was removed without its twin", e)
		}
	}

	merges := 0
	for _, d := range m.Diagonals {
		if m.HalfEdges[d].Removed {
			merges++
		}
	}

	if expected := 2*n + 2*len(m.Diagonals); len(m.HalfEdges) != expected {
		return errors.Errorf("mesh has %d half-edges, expected %d", len(m.HalfEdges), expected)
	}
	if expected := 1 + len(m.Diagonals) + merges; len(m.Faces) != expected {
		return errors.Errorf("mesh has %d faces, expected %d", len(m.Faces), expected)
	}
	if expected := 1 + len(m.Diagonals) - merges; m.LiveFaceCount() != expected {
		return errors.Errorf("mesh has %d live faces, expected %d", m.LiveFaceCount(), expected)
	}

	for _, f := range m.LiveFaces() {
		if err := m.checkFaceLoop(f); err != nil {
			return err
		}
	}

	for _, d := range m.LiveDiagonals() {
		faceA := m.HalfEdges[d].Face
		faceB := m.HalfEdges[m.HalfEdges[d].Twin].Face
		if faceA == faceB {
			return errors.Errorf("diagonal %d has face %d on both sides", d, faceA)
		}
		if !m.IsLive(faceA) || !m.IsLive(faceB) {
			return errors.Errorf("diagonal %d borders a dead face (%d, %d)", d, faceA, faceB)
		}
	}
	return nil
}

func (m *Mesh) checkFaceLoop(f FaceIndex) error {
	start := m.Faces[f].OuterComponent
	if start < 0 || int(start) >= len(m.HalfEdges) {
		return errors.Errorf("face %d has no outer component", f)
	}
	e := start
	for steps := 0; ; steps++ {
		if steps > len(m.HalfEdges) {
			return errors.Errorf("loop of face %d does not close", f)
		}
		edge := m.HalfEdges[e]
		if edge.Removed {
			return errors.Errorf("face %d reaches removed half-edge %d", f, e)
		}
		if edge.Face != f {
			return errors.Errorf("half-edge %d on the loop of face %d names face %d", e, f, edge.Face)
		}
		if edge.Next < 0 || int(edge.Next) >= len(m.HalfEdges) {
			return errors.Errorf("half-edge %d has no next", e)
		}
		e = edge.Next
		if e == start {
			break
		}
	}
	if m.FaceLen(f) < 3 {
		return errors.Errorf("face %d has fewer than 3 vertices", f)
	}
	return nil
}
