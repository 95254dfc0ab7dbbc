package advanced

// Merging never frees anything: eliminated diagonals stay in the edge arena
// and dead faces stay in the face arena. That is fine for a single shot
// decomposition. For meshes that are kept around, Compact copies out only what
// is still reachable.

// Return a new mesh holding the live faces, every half-edge that has not been
// removed, and the surviving diagonals in their original order. Indices are
// renumbered; vertex indices are unchanged. Vertex caches are rebuilt to point
// at an edge on some live face.
func (m *Mesh) Compact() *Mesh {
	edgeMap := make([]EdgeIndex, len(m.HalfEdges))
	faceMap := make([]FaceIndex, len(m.Faces))

	compact := &Mesh{
		Vertices: make([]Vertex, len(m.Vertices)),
	}

	for i, face := range m.Faces {
		faceMap[i] = NoFace
		if face.Live {
			faceMap[i] = FaceIndex(len(compact.Faces))
			compact.Faces = append(compact.Faces, face)
		}
	}

	for i, edge := range m.HalfEdges {
		edgeMap[i] = NoEdge
		if !edge.Removed {
			edgeMap[i] = EdgeIndex(len(compact.HalfEdges))
			compact.HalfEdges = append(compact.HalfEdges, edge)
		}
	}

	for i := range compact.HalfEdges {
		edge := &compact.HalfEdges[i]
		edge.Twin = edgeMap[edge.Twin]
		edge.Next = edgeMap[edge.Next]
		if edge.Face != NoFace {
			edge.Face = faceMap[edge.Face]
		}
	}

	for i := range compact.Faces {
		compact.Faces[i].OuterComponent = edgeMap[compact.Faces[i].OuterComponent]
	}

	for _, d := range m.Diagonals {
		if !m.HalfEdges[d].Removed {
			compact.Diagonals = append(compact.Diagonals, edgeMap[d])
		}
	}

	for i, v := range m.Vertices {
		compact.Vertices[i] = Vertex{Point: v.Point, IncidentEdge: NoEdge, Prev: NoEdge}
	}
	for _, f := range compact.LiveFaces() {
		edges := compact.FaceEdges(f)
		for i, e := range edges {
			v := compact.HalfEdges[e].Origin
			compact.Vertices[v].IncidentEdge = e
			compact.Vertices[v].Prev = edges[CircularIndex(i-1, len(edges))]
		}
	}
	return compact
}
