package shape

import "github.com/go-gl/mathgl/mgl32"

// Generator produces raw, untransformed geometry in shape-local space.
// The set is closed: Axes, Quad, Cuboid and Sphere.
type Generator interface {
	generate() (Mesh, error)
}

// Builder pairs a Generator with the placement shared by every shape.
//
// The setters never validate; problems are reported by Mesh and Build.
// Rotations accumulate, each applied after the ones before it.
type Builder struct {
	cfg Config
	gen Generator
}

// New returns a builder for gen with the identity placement
func New(gen Generator) *Builder {
	return &Builder{cfg: DefaultConfig(), gen: gen}
}

func NewAxes() *Builder {
	return New(Axes{})
}

func NewQuad(facing Facing) *Builder {
	return New(Quad{Facing: facing})
}

func NewCuboid() *Builder {
	return New(Cuboid{})
}

// NewSphere returns a sphere builder; pass zero for either count to use the default
func NewSphere(latitudeBands, longitudeSegments int) *Builder {
	s := DefaultSphere()
	if latitudeBands != 0 {
		s.LatitudeBands = latitudeBands
	}
	if longitudeSegments != 0 {
		s.LongitudeSegments = longitudeSegments
	}
	return New(s)
}

// Config returns a copy of the current placement
func (b *Builder) Config() Config {
	return b.cfg
}

// Generator returns the shape variant being built
func (b *Builder) Generator() Generator {
	return b.gen
}

// WithConfig replaces the whole placement
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.cfg = cfg
	return b
}

// Translate sets the translation
func (b *Builder) Translate(x, y, z float32) *Builder {
	b.cfg.Translation = mgl32.Vec3{x, y, z}
	return b
}

// Scale sets the per-axis scale
func (b *Builder) Scale(x, y, z float32) *Builder {
	b.cfg.Scale = mgl32.Vec3{x, y, z}
	return b
}

// ScaleUniform sets the same scale on every axis. For a sphere this is the radius.
func (b *Builder) ScaleUniform(s float32) *Builder {
	return b.Scale(s, s, s)
}

// Orient replaces the orientation
func (b *Builder) Orient(q mgl32.Quat) *Builder {
	b.cfg.Orientation = q
	return b
}

// Rotate adds a rotation of angle radians about axis
func (b *Builder) Rotate(angle float32, axis mgl32.Vec3) *Builder {
	b.cfg.Orientation = mgl32.QuatRotate(angle, normalize(axis)).Mul(b.cfg.rotation())
	return b
}

func (b *Builder) RotateX(radians float32) *Builder {
	return b.Rotate(radians, mgl32.Vec3{1, 0, 0})
}

func (b *Builder) RotateY(radians float32) *Builder {
	return b.Rotate(radians, mgl32.Vec3{0, 1, 0})
}

func (b *Builder) RotateZ(radians float32) *Builder {
	return b.Rotate(radians, mgl32.Vec3{0, 0, 1})
}

// Mesh validates the builder and returns the transformed geometry without
// touching any device.
func (b *Builder) Mesh() (Mesh, error) {
	if err := b.cfg.Validate(); err != nil {
		return Mesh{}, err
	}
	if b.gen == nil {
		return Mesh{}, &ConfigurationError{Field: "generator", Value: nil, Reason: "no shape selected"}
	}
	raw, err := b.gen.generate()
	if err != nil {
		return Mesh{}, err
	}
	return Transform(raw, b.cfg), nil
}

// Build generates the mesh and uploads it through dev. On error nothing is
// left allocated on the device.
func (b *Builder) Build(dev Device) (*Shape, error) {
	m, err := b.Mesh()
	if err != nil {
		return nil, err
	}
	if dev == nil {
		return nil, &ConfigurationError{Field: "device", Value: nil, Reason: "no device to upload to"}
	}
	return newShape(dev, m, b.cfg.Matrix())
}
