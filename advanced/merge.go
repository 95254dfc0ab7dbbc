package advanced

import "go.uber.org/zap"

// Diagonal elimination.
//
// The greedy partition cuts pieces off one at a time, and many of its
// diagonals turn out to be unnecessary once the neighbouring pieces exist.
// A diagonal can go whenever the two faces it separates form a convex polygon
// once it is removed. Only the two corners at the diagonal's endpoints change
// when the faces are joined, so those are the only turns to check.
//
// Diagonals are visited in creation order. Removing one changes the corners
// seen by later diagonals, so the order affects the result.

// Run one elimination pass over every remaining diagonal. Returns the number
// of diagonals removed.
func (m *Mesh) Merge(log *zap.Logger) int {
	if log == nil {
		log = zap.NewNop()
	}
	merged := 0
	for _, d := range m.Diagonals {
		if m.HalfEdges[d].Removed {
			continue
		}
		if m.TryMerge(d, log) {
			merged++
		}
	}
	log.Info("[merge] pass finished",
		zap.Int("diagonals", len(m.Diagonals)),
		zap.Int("merged", merged),
		zap.Int("liveFaces", m.LiveFaceCount()),
	)
	return merged
}

// Merge the two faces on either side of diagonal d if that leaves no reflex
// corner. d must be one of the half-edges in Diagonals. The merged face is
// appended to Faces, and the two original faces are marked dead.
func (m *Mesh) TryMerge(d EdgeIndex, log *zap.Logger) bool {
	if log == nil {
		log = zap.NewNop()
	}
	diagonal := m.HalfEdges[d]
	if diagonal.Removed {
		return false
	}
	twin := diagonal.Twin

	// Current faces, read from the half-edges. Merging relabels every edge of
	// the joined boundary, so these are never faces that have already died.
	faceA := diagonal.Face
	faceB := m.HalfEdges[twin].Face
	if faceA == faceB || !m.IsLive(faceA) || !m.IsLive(faceB) {
		fatalf("diagonal %d does not separate two live faces (%d, %d)", d, faceA, faceB)
	}

	// The diagonal runs from t to s on face A; the twin runs from s to t on face B.
	t := diagonal.Origin
	s := m.HalfEdges[twin].Origin

	afterS := m.Dest(diagonal.Next)          // follows s on face A
	afterT := m.Dest(m.HalfEdges[twin].Next) // follows t on face B
	beforeS := m.PrevVertex(faceB, s)        // precedes s on face B
	beforeT := m.PrevVertex(faceA, t)        // precedes t on face A

	// Once joined, the boundary passes beforeS → s → afterS and beforeT → t → afterT.
	convexAtS := !IsNonReflex(m.Point(afterS), m.Point(s), m.Point(beforeS))
	convexAtT := !IsNonReflex(m.Point(afterT), m.Point(t), m.Point(beforeT))

	log.Debug("[merge] diagonal tested",
		zap.Int("edge", int(d)),
		zap.Int("from", int(t)),
		zap.Int("to", int(s)),
		zap.Bool("convexAtFrom", convexAtT),
		zap.Bool("convexAtTo", convexAtS),
	)
	if !convexAtS || !convexAtT {
		return false
	}

	intoT := m.incomingEdge(d)    // on face A
	intoS := m.incomingEdge(twin) // on face B

	// Skip both halves of the diagonal
	m.HalfEdges[intoT].Next = m.HalfEdges[twin].Next
	m.HalfEdges[intoS].Next = diagonal.Next
	m.HalfEdges[d].Removed = true
	m.HalfEdges[twin].Removed = true

	merged := m.addFace(diagonal.Next)
	m.relabelLoop(diagonal.Next, merged)
	m.Faces[faceA].Live = false
	m.Faces[faceB].Live = false

	log.Debug("[merge] faces joined",
		zap.Int("faceA", int(faceA)),
		zap.Int("faceB", int(faceB)),
		zap.Int("merged", int(merged)),
	)
	return true
}

// The half-edge whose next is e, found by walking e's loop.
func (m *Mesh) incomingEdge(e EdgeIndex) EdgeIndex {
	incoming := NoEdge
	m.walkLoop(e, func(candidate EdgeIndex) bool {
		if m.HalfEdges[candidate].Next == e {
			incoming = candidate
			return false
		}
		return true
	})
	if incoming == NoEdge {
		fatalf("half-edge %d has no predecessor on its loop", e)
	}
	return incoming
}
