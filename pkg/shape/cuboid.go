package shape

// Faces in the order they are emitted
var cuboidFaces = [6]Facing{NegX, PosX, NegY, PosY, NegZ, PosZ}

// Cuboid is a unit cube centered at the origin. Faces share no vertices so
// each keeps its own flat normal; use Scale for other proportions.
type Cuboid struct{}

func (Cuboid) generate() (Mesh, error) {
	m := Mesh{
		Vertices:  make([]Vertex, 0, 4*len(cuboidFaces)),
		Indices:   make([]uint32, 0, len(faceIndices)*len(cuboidFaces)),
		Primitive: Triangles,
	}
	for _, f := range cuboidFaces {
		appendFace(&m, f, 0.5)
	}
	return m, nil
}
