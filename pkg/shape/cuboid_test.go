package shape

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuboidCounts(t *testing.T) {
	m, err := NewCuboid().Mesh()
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 24)
	assert.Len(t, m.Indices, 36)
	assert.Equal(t, 12, m.PrimitiveCount())
	assert.Equal(t, Triangles, m.Primitive)
}

func TestCuboidHasUnitDimensions(t *testing.T) {
	m, err := NewCuboid().Mesh()
	require.NoError(t, err)
	for _, v := range m.Vertices {
		for i := 0; i < 3; i++ {
			assert.Equal(t, float32(0.5), abs(v.Position[i]))
		}
	}
	b := m.Bounds()
	assert.Equal(t, mgl32.Vec3{-0.5, -0.5, -0.5}, b.Min)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, b.Max)
	assert.Equal(t, mgl32.Vec3{}, b.Center())
}

func TestCuboidHasCentroidAtOrigin(t *testing.T) {
	m, err := NewCuboid().Mesh()
	require.NoError(t, err)
	var sum mgl32.Vec3
	for _, v := range m.Vertices {
		sum = sum.Add(v.Position)
	}
	assert.Equal(t, mgl32.Vec3{}, sum)
}

func TestCuboidHasOutwardFacingNormals(t *testing.T) {
	m, err := NewCuboid().ScaleUniform(2).Mesh()
	require.NoError(t, err)
	for _, v := range m.Vertices {
		outside := v.Position.Add(v.Normal)
		for i := 0; i < 3; i++ {
			assert.GreaterOrEqual(t, abs(outside[i]), abs(v.Position[i]))
		}
	}
}

func TestCuboidFacesAreIndependent(t *testing.T) {
	m, err := NewCuboid().Mesh()
	require.NoError(t, err)

	// Every face owns four vertices that share one normal and span the unit UV square.
	for face := 0; face < 6; face++ {
		quad := m.Vertices[face*4 : face*4+4]
		uvMin, uvMax := mgl32.Vec2{1, 1}, mgl32.Vec2{0, 0}
		for _, v := range quad {
			assert.Equal(t, quad[0].Normal, v.Normal)
			for i := 0; i < 2; i++ {
				uvMin[i] = min(uvMin[i], v.TexCoord[i])
				uvMax[i] = max(uvMax[i], v.TexCoord[i])
			}
		}
		assert.Equal(t, mgl32.Vec2{0, 0}, uvMin)
		assert.Equal(t, mgl32.Vec2{1, 1}, uvMax)
		for _, idx := range m.Indices[face*6 : face*6+6] {
			assert.GreaterOrEqual(t, int(idx), face*4)
			assert.Less(t, int(idx), face*4+4)
		}
	}
}

func TestCuboidHasFacetedNormals(t *testing.T) {
	m, err := NewCuboid().Mesh()
	require.NoError(t, err)
	for i := 0; i < len(m.Indices); i += 3 {
		v0 := m.Vertices[m.Indices[i]]
		v1 := m.Vertices[m.Indices[i+1]]
		v2 := m.Vertices[m.Indices[i+2]]
		n := v1.Position.Sub(v0.Position).Cross(v2.Position.Sub(v0.Position)).Normalize()
		assertVec3Near(t, n, v0.Normal)
		assertVec3Near(t, n, v1.Normal)
		assertVec3Near(t, n, v2.Normal)
	}
}

func TestCuboidNonUniformScale(t *testing.T) {
	unit, err := NewCuboid().Mesh()
	require.NoError(t, err)
	box, err := NewCuboid().Scale(2, 3, 4).Mesh()
	require.NoError(t, err)

	require.Len(t, box.Vertices, len(unit.Vertices))
	assert.Equal(t, unit.Indices, box.Indices)
	for i := range unit.Vertices {
		want := mgl32.Vec3{
			unit.Vertices[i].Position.X() * 2,
			unit.Vertices[i].Position.Y() * 3,
			unit.Vertices[i].Position.Z() * 4,
		}
		assertVec3Near(t, want, box.Vertices[i].Position)
		assertVec3Near(t, unit.Vertices[i].Normal, box.Vertices[i].Normal)
		assert.Equal(t, unit.Vertices[i].TexCoord, box.Vertices[i].TexCoord)
	}
	assertCCW(t, box)
}

func TestCuboidScaleAppliesBeforeRotation(t *testing.T) {
	m, err := NewCuboid().Scale(2, 1, 1).RotateZ(mgl32.DegToRad(90)).Mesh()
	require.NoError(t, err)
	b := m.Bounds()
	// The long X side now lies along Y.
	assert.InDelta(t, 1.0, b.Size().X(), tol)
	assert.InDelta(t, 2.0, b.Size().Y(), tol)
	assert.InDelta(t, 1.0, b.Size().Z(), tol)
}
