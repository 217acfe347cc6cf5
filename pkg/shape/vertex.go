package shape

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Position(3) + Normal(3) + TexCoord(2)
	VertexSize = 8
	FloatSize  = 4
)

// Vertex is a single mesh vertex. Normals are unit length.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Primitive selects how an index buffer is assembled into primitives
type Primitive int

const (
	Triangles Primitive = iota
	Lines
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// verticesPer returns the number of indices that make up one primitive
func (p Primitive) verticesPer() int {
	if p == Lines {
		return 2
	}
	return 3
}

// Mesh is an indexed vertex list. Vertex order is index order.
type Mesh struct {
	Vertices  []Vertex
	Indices   []uint32
	Primitive Primitive
}

// Validate reports an error if an index is out of range or the index count
// does not form whole primitives.
func (m Mesh) Validate() error {
	if n := m.Primitive.verticesPer(); len(m.Indices)%n != 0 {
		return fmt.Errorf("mesh: %d indices do not form whole %s", len(m.Indices), m.Primitive)
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("mesh: index %d at %d out of range (%d vertices)", idx, i, len(m.Vertices))
		}
	}
	return nil
}

// PrimitiveCount returns the number of triangles or line segments
func (m Mesh) PrimitiveCount() int {
	return len(m.Indices) / m.Primitive.verticesPer()
}

// Bounds returns the axis-aligned bounding box of all vertex positions
func (m Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	inf := float32(math.Inf(1))
	b := Bounds{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
	for _, v := range m.Vertices {
		for i := 0; i < 3; i++ {
			b.Min[i] = min(b.Min[i], v.Position[i])
			b.Max[i] = max(b.Max[i], v.Position[i])
		}
	}
	return b
}

// Interleave flattens vertices into the layout the GPU consumes:
// Position(3) + Normal(3) + TexCoord(2) per vertex.
func Interleave(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*VertexSize)
	for _, v := range vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return out
}

// Bounds is an axis-aligned bounding box
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Radius returns the radius of the sphere enclosing the box
func (b Bounds) Radius() float32 {
	return b.Size().Len() * 0.5
}
