package advanced

import (
	"go.uber.org/zap"
)

// Greedy convex partitioning.
//
// The sweep walks the boundary of the face still being cut down, which is
// always the face the mesh was built with. From a seed vertex it grows a
// candidate chain along the boundary for as long as the chain and its closing
// edge stay convex. A convex chain can still swallow other vertices of the
// remaining polygon, so the chain is then shrunk until it contains none, and
// what is left is cut off with a diagonal. The next candidate is seeded with
// the last vertex of the previous one.
//
// Every cut leaves a smaller polygon. A candidate that shrinks to a single
// edge cuts nothing and only advances the seed; if the seed goes all the way
// around the remaining boundary without a cut, the sweep gives up.

// Partition the mesh's original face into convex faces by inserting
// diagonals. The mesh must be freshly built. Returns the number of diagonals
// inserted.
func (m *Mesh) Partition(log *zap.Logger) int {
	if log == nil {
		log = zap.NewNop()
	}
	if len(m.Faces) == 0 {
		fatalf("cannot partition an empty mesh")
	}

	const remaining FaceIndex = 0
	n := m.FaceLen(remaining)
	seed := m.HalfEdges[m.Faces[remaining].OuterComponent].Origin
	stalled := 0
	cuts := 0

	log.Info("[partition] started", zap.Int("vertices", n))
	for iteration := 0; n > 3; iteration++ {
		candidate := m.growCandidate(seed, n)
		log.Debug("[partition] candidate grown",
			zap.Int("iteration", iteration),
			zap.Int("seed", int(seed)),
			zap.Ints("candidate", vertexInts(candidate)),
		)

		if len(candidate) < n {
			candidate = m.shrinkCandidate(remaining, candidate, log)
		}

		first := candidate[0]
		last := candidate[len(candidate)-1]
		if len(candidate) > 2 {
			if m.Next(last) == first {
				// The whole remaining boundary is convex
				log.Debug("[partition] remaining face is convex", zap.Int("vertices", n))
				break
			}
			m.mustSplit(first, last, log)
			cuts++
			n = n - len(candidate) + 2
			stalled = 0
		} else {
			stalled++
			if stalled > n {
				fatalf("partition made no progress around a remaining boundary of %d vertices", n)
			}
		}
		seed = last
	}
	log.Info("[partition] finished", zap.Int("diagonals", cuts), zap.Int("faces", len(m.Faces)))
	return cuts
}

// Grow a convex chain along the boundary from seed. The chain keeps extending
// while the last three vertices turn left, and the two turns through the
// closing edge back to the seed do too. It never grows past n vertices.
func (m *Mesh) growCandidate(seed VertexIndex, n int) []VertexIndex {
	candidate := []VertexIndex{seed, m.Next(seed)}
	for len(candidate) < n {
		k := len(candidate)
		a := m.Point(candidate[k-2])
		b := m.Point(candidate[k-1])
		next := m.Next(candidate[k-1])
		c := m.Point(next)
		first := m.Point(candidate[0])
		second := m.Point(candidate[1])
		if !IsNonReflex(a, b, c) || !IsNonReflex(b, c, first) || !IsNonReflex(c, first, second) {
			break
		}
		candidate = append(candidate, next)
	}
	return candidate
}

// Shrink the candidate until no other vertex of the remaining face lies in
// it. Vertices are tested in boundary order, first against the candidate's
// bounding box and then by ray casting. When one is inside, the line from the
// candidate's first vertex through it splits the candidate; only the part on
// the far side from the candidate's last vertex survives.
func (m *Mesh) shrinkCandidate(remaining FaceIndex, candidate []VertexIndex, log *zap.Logger) []VertexIndex {
	inCandidate := make(map[VertexIndex]bool, len(candidate))
	for _, v := range candidate {
		inCandidate[v] = true
	}
	var pending []VertexIndex
	for _, v := range m.FaceVertices(remaining) {
		if !inCandidate[v] {
			pending = append(pending, v)
		}
	}

	for len(pending) > 0 && len(candidate) > 2 {
		box := BoundingBoxOf(m.points(candidate))
		shrunk := false
		for !shrunk && len(pending) > 0 {
			for len(pending) > 0 && !box.Contains(m.Point(pending[0])) {
				pending = pending[1:]
			}
			if len(pending) == 0 {
				break
			}

			offender := pending[0]
			first := candidate[0]
			last := candidate[len(candidate)-1]
			if m.chainContains(first, last, m.Point(offender)) {
				firstPoint := m.Point(first)
				offenderPoint := m.Point(offender)
				val := Orientation(firstPoint, offenderPoint, m.Point(last))
				if val == 0 {
					log.Debug("[partition] offender collinear with candidate end",
						zap.Int("offender", int(offender)),
					)
					return []VertexIndex{first, m.Next(first)}
				}

				kept := []VertexIndex{first}
				for _, v := range candidate[1:] {
					if !SameSide(firstPoint, offenderPoint, val, m.Point(v)) {
						kept = append(kept, v)
					}
				}
				if len(kept) < 2 {
					kept = append(kept, m.Next(first))
				}
				log.Debug("[partition] candidate shrunk",
					zap.Int("offender", int(offender)),
					zap.Ints("candidate", vertexInts(kept)),
				)
				candidate = kept
				shrunk = true
			}
			pending = pending[1:]
		}
	}
	return candidate
}

// Ray cast p against the polygon made of the boundary chain from first to
// last, closed by the edge from last back to first.
func (m *Mesh) chainContains(first, last VertexIndex, p *Point) bool {
	var loop []*Point
	m.walkLoop(m.Vertices[first].IncidentEdge, func(e EdgeIndex) bool {
		origin := m.HalfEdges[e].Origin
		loop = append(loop, m.Point(origin))
		return origin != last
	})
	return PointInLoop(p, loop)
}

func (m *Mesh) points(vertices []VertexIndex) []*Point {
	points := make([]*Point, len(vertices))
	for i, v := range vertices {
		points[i] = m.Point(v)
	}
	return points
}

func vertexInts(vertices []VertexIndex) []int {
	ints := make([]int, len(vertices))
	for i, v := range vertices {
		ints[i] = int(v)
	}
	return ints
}
