package advanced

import "github.com/pkg/errors"

// A half-edge mesh (doubly connected edge list) over one simple polygon.
//
// All entities live in growable slices owned by the Mesh, and every relation
// between them is an index into those slices rather than a pointer. Indices
// are stable for the life of the mesh: splitting only appends, and merging
// only relinks and flags. Nothing is reclaimed until Compact is called.

type VertexIndex int
type EdgeIndex int
type FaceIndex int

const (
	NoVertex VertexIndex = -1
	NoEdge   EdgeIndex   = -1
	NoFace   FaceIndex   = -1
)

var ErrTooFewVertices = errors.New("cannot build a mesh for a polygon with fewer than 3 vertices")

type Vertex struct {
	Point *Point
	// Outgoing half-edge on the face this vertex was last updated for. During
	// partitioning that is always the face still being cut down.
	IncidentEdge EdgeIndex
	// Incoming half-edge on the same face, so that Edges[Prev].Next ==
	// IncidentEdge while the cache is current. Vertices which have been cut
	// off into a finished face keep stale values; nothing reads them there.
	Prev EdgeIndex
}

type HalfEdge struct {
	Origin VertexIndex
	Twin   EdgeIndex
	// NoFace for the exterior loop
	Face FaceIndex
	Next EdgeIndex
	// Set on both halves of a diagonal eliminated by merging. Removed edges
	// are unreachable from every live face.
	Removed bool
}

type Face struct {
	OuterComponent EdgeIndex
	// False once the face has been merged into a larger one.
	Live bool
}

type Mesh struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge
	Faces     []Face
	// The half-edge of each diagonal inserted by Split, in creation order.
	// Each diagonal's half-edge originates at the v1 passed to Split, and
	// stays on the face that was split; its twin bounds the new face.
	Diagonals []EdgeIndex
}

// Build a mesh from a simple counterclockwise polygon. The boundary half-edges
// are 0..n-1 (edge i runs from point i to point i+1) and form face 0. Their
// twins are n..2n-1 and form the exterior loop, which has no face. On error,
// the returned mesh is empty.
func NewMesh(points []*Point) (*Mesh, error) {
	n := len(points)
	if n < 3 {
		return &Mesh{}, errors.Wrapf(ErrTooFewVertices, "got %d", n)
	}

	m := &Mesh{
		Vertices:  make([]Vertex, n),
		HalfEdges: make([]HalfEdge, 2*n),
		Faces:     []Face{{OuterComponent: 0, Live: true}},
	}

	for i, p := range points {
		next := CircularIndex(i+1, n)
		prev := CircularIndex(i-1, n)
		m.Vertices[i] = Vertex{
			Point:        p,
			IncidentEdge: EdgeIndex(i),
			Prev:         EdgeIndex(prev),
		}
		// Boundary edge i → i+1
		m.HalfEdges[i] = HalfEdge{
			Origin: VertexIndex(i),
			Twin:   EdgeIndex(n + i),
			Face:   0,
			Next:   EdgeIndex(next),
		}
		// Reverse edge i+1 → i, followed by the reverse of the edge into i
		m.HalfEdges[n+i] = HalfEdge{
			Origin: VertexIndex(next),
			Twin:   EdgeIndex(i),
			Face:   NoFace,
			Next:   EdgeIndex(n + prev),
		}
	}
	return m, nil
}

func (m *Mesh) Point(v VertexIndex) *Point {
	return m.Vertices[v].Point
}

// The vertex following v on the face its cached incident edge belongs to.
func (m *Mesh) Next(v VertexIndex) VertexIndex {
	return m.Dest(m.Vertices[v].IncidentEdge)
}

// Destination vertex of a half-edge.
func (m *Mesh) Dest(e EdgeIndex) VertexIndex {
	return m.HalfEdges[m.HalfEdges[e].Next].Origin
}

func (m *Mesh) FaceOf(e EdgeIndex) FaceIndex {
	return m.HalfEdges[e].Face
}

func (m *Mesh) IsLive(f FaceIndex) bool {
	return f >= 0 && int(f) < len(m.Faces) && m.Faces[f].Live
}

// Walk a boundary loop from start, calling fn for each half-edge until it
// returns false or the loop closes. A loop longer than the whole edge arena
// means the mesh is corrupt.
func (m *Mesh) walkLoop(start EdgeIndex, fn func(e EdgeIndex) bool) {
	e := start
	for steps := 0; ; steps++ {
		if steps > len(m.HalfEdges) {
			fatalf("boundary loop from half-edge %d does not close", start)
		}
		if !fn(e) {
			return
		}
		e = m.HalfEdges[e].Next
		if e == start {
			return
		}
	}
}

// Half-edges of a face, starting at its outer component.
func (m *Mesh) FaceEdges(f FaceIndex) []EdgeIndex {
	var edges []EdgeIndex
	m.walkLoop(m.Faces[f].OuterComponent, func(e EdgeIndex) bool {
		edges = append(edges, e)
		return true
	})
	return edges
}

// Vertices of a face in counterclockwise order, starting at the origin of its
// outer component.
func (m *Mesh) FaceVertices(f FaceIndex) []VertexIndex {
	var vertices []VertexIndex
	m.walkLoop(m.Faces[f].OuterComponent, func(e EdgeIndex) bool {
		vertices = append(vertices, m.HalfEdges[e].Origin)
		return true
	})
	return vertices
}

func (m *Mesh) FaceLen(f FaceIndex) int {
	var n int
	m.walkLoop(m.Faces[f].OuterComponent, func(EdgeIndex) bool {
		n++
		return true
	})
	return n
}

// The vertex before v on the boundary of f. v must be on f.
func (m *Mesh) PrevVertex(f FaceIndex, v VertexIndex) VertexIndex {
	prev := NoVertex
	m.walkLoop(m.Faces[f].OuterComponent, func(e EdgeIndex) bool {
		if m.Dest(e) == v {
			prev = m.HalfEdges[e].Origin
			return false
		}
		return true
	})
	if prev == NoVertex {
		fatalf("vertex %d is not on face %d", v, f)
	}
	return prev
}

// The half-edge of face f which leaves v, or NoEdge if v is not on f.
func (m *Mesh) outgoingOnFace(f FaceIndex, v VertexIndex) EdgeIndex {
	found := NoEdge
	m.walkLoop(m.Faces[f].OuterComponent, func(e EdgeIndex) bool {
		if m.HalfEdges[e].Origin == v {
			found = e
			return false
		}
		return true
	})
	return found
}

func (m *Mesh) FacePolygon(f FaceIndex) Polygon {
	vertices := m.FaceVertices(f)
	points := make([]*Point, len(vertices))
	for i, v := range vertices {
		points[i] = m.Point(v)
	}
	return Polygon{Points: points}
}

// Faces still part of the decomposition, in creation order.
func (m *Mesh) LiveFaces() []FaceIndex {
	var faces []FaceIndex
	for i, face := range m.Faces {
		if face.Live {
			faces = append(faces, FaceIndex(i))
		}
	}
	return faces
}

func (m *Mesh) LiveFaceCount() int {
	var count int
	for _, face := range m.Faces {
		if face.Live {
			count++
		}
	}
	return count
}

// The boundary loops of all live faces.
func (m *Mesh) Polygons() PolygonList {
	var list PolygonList
	for _, f := range m.LiveFaces() {
		list = append(list, m.FacePolygon(f))
	}
	return list
}

// Diagonals which have not been eliminated by merging.
func (m *Mesh) LiveDiagonals() []EdgeIndex {
	var diagonals []EdgeIndex
	for _, d := range m.Diagonals {
		if !m.HalfEdges[d].Removed {
			diagonals = append(diagonals, d)
		}
	}
	return diagonals
}

func (m *Mesh) addEdgePair(v1, v2 VertexIndex) (EdgeIndex, EdgeIndex) {
	one := EdgeIndex(len(m.HalfEdges))
	two := one + 1
	m.HalfEdges = append(m.HalfEdges,
		HalfEdge{Origin: v1, Twin: two, Face: NoFace, Next: NoEdge},
		HalfEdge{Origin: v2, Twin: one, Face: NoFace, Next: NoEdge},
	)
	return one, two
}

func (m *Mesh) addFace(outer EdgeIndex) FaceIndex {
	m.Faces = append(m.Faces, Face{OuterComponent: outer, Live: true})
	return FaceIndex(len(m.Faces) - 1)
}

// Label every half-edge of the loop through start with face f.
func (m *Mesh) relabelLoop(start EdgeIndex, f FaceIndex) {
	m.walkLoop(start, func(e EdgeIndex) bool {
		m.HalfEdges[e].Face = f
		return true
	})
}
