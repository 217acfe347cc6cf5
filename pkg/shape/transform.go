package shape

import "github.com/go-gl/mathgl/mgl32"

// Transform returns a copy of m with cfg applied: positions by the model
// matrix, normals by the normal matrix followed by re-normalization. Indices
// are shared with m.
func Transform(m Mesh, cfg Config) Mesh {
	model := cfg.Matrix()
	normal := cfg.NormalMatrix()

	out := Mesh{
		Vertices:  make([]Vertex, len(m.Vertices)),
		Indices:   m.Indices,
		Primitive: m.Primitive,
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = Vertex{
			Position: model.Mul4x1(v.Position.Vec4(1)).Vec3(),
			Normal:   normalize(normal.Mul3x1(v.Normal)),
			TexCoord: v.TexCoord,
		}
	}
	return out
}

func normalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}
