package shape

import "github.com/go-gl/mathgl/mgl32"

// Axes are three unit line segments from the origin along +X, +Y and +Z.
// Each vertex normal is its segment's axis, which renderers use for color.
type Axes struct{}

func (Axes) generate() (Mesh, error) {
	m := Mesh{
		Vertices:  make([]Vertex, 0, 6),
		Indices:   make([]uint32, 0, 6),
		Primitive: Lines,
	}
	for _, axis := range []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			Vertex{Position: mgl32.Vec3{}, Normal: axis, TexCoord: mgl32.Vec2{0, 0}},
			Vertex{Position: axis, Normal: axis, TexCoord: mgl32.Vec2{1, 0}},
		)
		m.Indices = append(m.Indices, base, base+1)
	}
	return m, nil
}
