package advanced

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrSameVertex   = errors.New("split endpoints are the same vertex")
	ErrNotOnFace    = errors.New("split endpoint is not on the face")
	ErrAdjacent     = errors.New("split endpoints are adjacent on the face boundary")
	ErrDeadFace     = errors.New("face is not live")
	ErrStaleVertex  = errors.New("vertex has no incident edge on a live face")
	ErrUnknownIndex = errors.New("index out of range")
)

// Insert a diagonal from v1 to v2 across the face that v1's cached incident
// edge belongs to. See SplitFace.
func (m *Mesh) Split(v1, v2 VertexIndex) (EdgeIndex, error) {
	if !m.validVertex(v1) || !m.validVertex(v2) {
		return NoEdge, errors.Wrapf(ErrUnknownIndex, "split %d-%d", v1, v2)
	}
	incident := m.Vertices[v1].IncidentEdge
	if incident == NoEdge || m.HalfEdges[incident].Removed {
		return NoEdge, errors.Wrapf(ErrStaleVertex, "vertex %d", v1)
	}
	return m.SplitFace(m.HalfEdges[incident].Face, v1, v2)
}

// Insert a diagonal from v1 to v2 across face f, dividing it in two. The
// boundary running from v1 to v2 becomes a new face, and the boundary from v2
// back to v1 stays with f. Returns the diagonal's half-edge on f, which runs
// v1→v2 and is appended to Diagonals.
//
// Both vertices must be on f and must not be neighbours on its boundary.
// Afterwards both vertices' cached incident and predecessor edges refer to f.
func (m *Mesh) SplitFace(f FaceIndex, v1, v2 VertexIndex) (EdgeIndex, error) {
	if !m.validVertex(v1) || !m.validVertex(v2) {
		return NoEdge, errors.Wrapf(ErrUnknownIndex, "split %d-%d", v1, v2)
	}
	if !m.IsLive(f) {
		return NoEdge, errors.Wrapf(ErrDeadFace, "split face %d", f)
	}
	if v1 == v2 {
		return NoEdge, errors.Wrapf(ErrSameVertex, "split %d-%d", v1, v2)
	}

	start := m.outgoingOnFace(f, v1)
	if start == NoEdge {
		return NoEdge, errors.Wrapf(ErrNotOnFace, "vertex %d, face %d", v1, f)
	}

	// One walk around f finds v2's outgoing edge and both incoming edges.
	end := NoEdge     // leaves v2
	intoEnd := NoEdge // arrives at v2
	prev := NoEdge
	m.walkLoop(start, func(e EdgeIndex) bool {
		if m.HalfEdges[e].Origin == v2 && end == NoEdge {
			end = e
			intoEnd = prev
		}
		prev = e
		return true
	})
	intoV1 := prev // arrives at v1

	if end == NoEdge {
		return NoEdge, errors.Wrapf(ErrNotOnFace, "vertex %d, face %d", v2, f)
	}
	if m.HalfEdges[start].Next == end || m.HalfEdges[end].Next == start {
		return NoEdge, errors.Wrapf(ErrAdjacent, "split %d-%d on face %d", v1, v2, f)
	}

	one, two := m.addEdgePair(v1, v2)
	small := m.addFace(two)

	// The chain v1 → v2 moves to the new face
	for e := start; e != end; e = m.HalfEdges[e].Next {
		m.HalfEdges[e].Face = small
	}

	m.HalfEdges[one].Face = f
	m.HalfEdges[one].Next = end
	m.HalfEdges[two].Face = small
	m.HalfEdges[two].Next = start
	m.HalfEdges[intoEnd].Next = two
	m.HalfEdges[intoV1].Next = one

	m.Faces[f].OuterComponent = one

	m.Vertices[v1].IncidentEdge = one
	m.Vertices[v1].Prev = intoV1
	m.Vertices[v2].IncidentEdge = end
	m.Vertices[v2].Prev = one

	m.Diagonals = append(m.Diagonals, one)
	return one, nil
}

// Split for use inside the engine, where a failure means the algorithm has
// broken its own invariants.
func (m *Mesh) mustSplit(v1, v2 VertexIndex, log *zap.Logger) EdgeIndex {
	diagonal, err := m.Split(v1, v2)
	if err != nil {
		fatalWrap(err, "partition produced an invalid diagonal")
	}
	log.Debug("[split] diagonal inserted",
		zap.Int("from", int(v1)),
		zap.Int("to", int(v2)),
		zap.Int("edge", int(diagonal)),
		zap.Int("newFace", int(m.FaceOf(m.HalfEdges[diagonal].Twin))),
	)
	return diagonal
}

func (m *Mesh) validVertex(v VertexIndex) bool {
	return v >= 0 && int(v) < len(m.Vertices)
}
