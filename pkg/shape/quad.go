package shape

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Facing is the outward direction of a flat face
type Facing int

const (
	PosZ Facing = iota // XY plane, the default
	NegZ
	PosX
	NegX
	PosY
	NegY
)

var facingNames = [...]string{"+z", "-z", "+x", "-x", "+y", "-y"}

func (f Facing) String() string {
	if f.valid() {
		return facingNames[f]
	}
	return fmt.Sprintf("Facing(%d)", int(f))
}

func (f Facing) valid() bool {
	return f >= PosZ && f <= NegY
}

// ParseFacing parses "+x", "-y", "z" (same as "+z") and the like
func ParseFacing(s string) (Facing, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 {
		s = "+" + s
	}
	for i, name := range facingNames {
		if s == name {
			return Facing(i), nil
		}
	}
	return 0, &ConfigurationError{Field: "facing", Value: s, Reason: "must be one of +x -x +y -y +z -z"}
}

// Normal returns the unit outward direction
func (f Facing) Normal() mgl32.Vec3 {
	u, v := f.basis()
	return u.Cross(v)
}

// basis returns the in-plane axes of a face. u x v points along the facing,
// so corners emitted in (u, v) order wind counter-clockwise seen from outside.
func (f Facing) basis() (u, v mgl32.Vec3) {
	switch f {
	case NegZ:
		return mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}
	case PosX:
		return mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}
	case NegX:
		return mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}
	case PosY:
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}
	case NegY:
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}
	}
	return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}
}

// Corner order is (0,0) (1,0) (0,1) (1,1) in (u, v); two CCW triangles.
var faceIndices = [6]uint32{0, 1, 2, 2, 1, 3}

// appendFace adds a unit square facing f, pushed out from the origin by
// offset along its normal.
func appendFace(m *Mesh, f Facing, offset float32) {
	u, v := f.basis()
	n := u.Cross(v)
	center := n.Mul(offset)
	base := uint32(len(m.Vertices))

	for corner := 0; corner < 4; corner++ {
		s := float32(corner % 2)
		t := float32(corner / 2)
		m.Vertices = append(m.Vertices, Vertex{
			Position: center.Add(u.Mul(s - 0.5)).Add(v.Mul(t - 0.5)),
			Normal:   n,
			TexCoord: mgl32.Vec2{s, t},
		})
	}
	for _, idx := range faceIndices {
		m.Indices = append(m.Indices, base+idx)
	}
}

// Quad is a flat unit square centered at the origin
type Quad struct {
	Facing Facing
}

func (q Quad) generate() (Mesh, error) {
	if !q.Facing.valid() {
		return Mesh{}, &ConfigurationError{Field: "facing", Value: int(q.Facing), Reason: "unknown facing"}
	}
	m := Mesh{
		Vertices:  make([]Vertex, 0, 4),
		Indices:   make([]uint32, 0, len(faceIndices)),
		Primitive: Triangles,
	}
	appendFace(&m, q.Facing, 0)
	return m, nil
}
