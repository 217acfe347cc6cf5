package graphics

import (
	"errors"
	"fmt"
	"log"

	"glshapes/pkg/shape"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertex attribute locations shared by every shape shader
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribTexCoord = 2
)

var errEmptyBuffer = errors.New("empty buffer")

// VertexBuffer is a VAO with its interleaved VBO
type VertexBuffer struct {
	VAO   uint32
	VBO   uint32
	Count int32
}

// Release deletes the GL objects
func (b *VertexBuffer) Release() {
	if b.VAO != 0 {
		gl.DeleteVertexArrays(1, &b.VAO)
		b.VAO = 0
	}
	if b.VBO != 0 {
		gl.DeleteBuffers(1, &b.VBO)
		b.VBO = 0
	}
}

// IndexBuffer is an element buffer of uint32 indices
type IndexBuffer struct {
	EBO   uint32
	Count int32
}

// Release deletes the GL buffer
func (b *IndexBuffer) Release() {
	if b.EBO != 0 {
		gl.DeleteBuffers(1, &b.EBO)
		b.EBO = 0
	}
}

// Device uploads shape meshes into OpenGL buffers. It must be used on the
// thread that owns the current GL context.
type Device struct{}

// NewDevice creates a GL device for the current context
func NewDevice() *Device {
	return &Device{}
}

var _ shape.Device = (*Device)(nil)

// CreateVertexBuffer uploads vertices and records the attribute layout in a VAO
func (d *Device) CreateVertexBuffer(vertices []shape.Vertex) (shape.Buffer, error) {
	if len(vertices) == 0 {
		return nil, errEmptyBuffer
	}
	data := shape.Interleave(vertices)

	b := &VertexBuffer{Count: int32(len(vertices))}
	gl.GenVertexArrays(1, &b.VAO)
	gl.GenBuffers(1, &b.VBO)
	if b.VAO == 0 || b.VBO == 0 {
		b.Release()
		return nil, fmt.Errorf("could not allocate vertex array (vao=%d, vbo=%d)", b.VAO, b.VBO)
	}

	gl.BindVertexArray(b.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*shape.FloatSize, gl.Ptr(data), gl.STATIC_DRAW)

	stride := int32(shape.VertexSize * shape.FloatSize)
	gl.EnableVertexAttribArray(AttribPosition)
	gl.VertexAttribPointerWithOffset(AttribPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(AttribNormal)
	gl.VertexAttribPointerWithOffset(AttribNormal, 3, gl.FLOAT, false, stride, 3*shape.FloatSize)
	gl.EnableVertexAttribArray(AttribTexCoord)
	gl.VertexAttribPointerWithOffset(AttribTexCoord, 2, gl.FLOAT, false, stride, 6*shape.FloatSize)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if err := glError("vertex buffer"); err != nil {
		b.Release()
		return nil, err
	}
	return b, nil
}

// CreateIndexBuffer uploads indices. The buffer is attached to a VAO at draw time.
func (d *Device) CreateIndexBuffer(indices []uint32) (shape.Buffer, error) {
	if len(indices) == 0 {
		return nil, errEmptyBuffer
	}

	b := &IndexBuffer{Count: int32(len(indices))}
	gl.GenBuffers(1, &b.EBO)
	if b.EBO == 0 {
		return nil, errors.New("could not allocate element buffer")
	}

	// No VAO is bound here, so upload through a generic binding point.
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, b.EBO)
	gl.BufferData(gl.COPY_WRITE_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, 0)

	if err := glError("index buffer"); err != nil {
		b.Release()
		return nil, err
	}
	return b, nil
}

// Draw issues the draw call for a shape built with this device
func (d *Device) Draw(s *shape.Shape) {
	vb, ok := s.VertexBuffer().(*VertexBuffer)
	if !ok || vb.VAO == 0 {
		return
	}
	ib, ok := s.IndexBuffer().(*IndexBuffer)
	if !ok || ib.EBO == 0 {
		return
	}

	gl.BindVertexArray(vb.VAO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.EBO)
	gl.DrawElements(primitiveMode(s.Primitive()), ib.Count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func primitiveMode(p shape.Primitive) uint32 {
	if p == shape.Lines {
		return gl.LINES
	}
	return gl.TRIANGLES
}

// glError drains the GL error queue, logging every code, and returns the first one
func glError(label string) error {
	var first uint32
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		log.Printf("gl error %s: 0x%x", label, code)
		if first == 0 {
			first = code
		}
	}
	if first != 0 {
		return fmt.Errorf("gl error %s: 0x%x", label, first)
	}
	return nil
}
