package shape

import "github.com/go-gl/mathgl/mgl32"

// Buffer is a device-resident buffer handle
type Buffer interface {
	Release()
}

// Device materializes meshes on the GPU. Implementations are called
// synchronously from the goroutine that owns the rendering context.
type Device interface {
	CreateVertexBuffer(vertices []Vertex) (Buffer, error)
	CreateIndexBuffer(indices []uint32) (Buffer, error)
}

// Shape is a built mesh together with its device buffers. It is owned by
// whoever built it and is not modified after construction.
type Shape struct {
	mesh      Mesh
	vertices  Buffer
	indices   Buffer
	transform mgl32.Mat4
	bounds    Bounds
}

func newShape(dev Device, m Mesh, transform mgl32.Mat4) (*Shape, error) {
	vb, err := dev.CreateVertexBuffer(m.Vertices)
	if err != nil {
		return nil, &UploadError{Buffer: "vertex", Err: err}
	}
	ib, err := dev.CreateIndexBuffer(m.Indices)
	if err != nil {
		vb.Release()
		return nil, &UploadError{Buffer: "index", Err: err}
	}
	return &Shape{
		mesh:      m,
		vertices:  vb,
		indices:   ib,
		transform: transform,
		bounds:    m.Bounds(),
	}, nil
}

// Mesh returns the transformed geometry. The slices must not be modified.
func (s *Shape) Mesh() Mesh {
	return s.mesh
}

func (s *Shape) VertexBuffer() Buffer {
	return s.vertices
}

func (s *Shape) IndexBuffer() Buffer {
	return s.indices
}

func (s *Shape) Primitive() Primitive {
	return s.mesh.Primitive
}

func (s *Shape) IndexCount() int {
	return len(s.mesh.Indices)
}

// Bounds returns the bounding box of the transformed vertices
func (s *Shape) Bounds() Bounds {
	return s.bounds
}

// Transform returns the model transform that was baked into the vertices
func (s *Shape) Transform() mgl32.Mat4 {
	return s.transform
}

// Release frees the device buffers. The shape must not be drawn afterwards.
func (s *Shape) Release() {
	if s.indices != nil {
		s.indices.Release()
		s.indices = nil
	}
	if s.vertices != nil {
		s.vertices.Release()
		s.vertices = nil
	}
}
