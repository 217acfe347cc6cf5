package shape

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsIdentity(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, mgl32.Ident4(), cfg.Matrix())
	assert.Equal(t, mgl32.Ident3(), cfg.NormalMatrix())
}

func TestConfigMatrixScalesThenRotatesThenTranslates(t *testing.T) {
	cfg := NewCuboid().
		Scale(2, 1, 1).
		RotateZ(math.Pi / 2).
		Translate(0, 0, 5).
		Config()

	got := cfg.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assertVec3Near(t, mgl32.Vec3{0, 2, 5}, got)
}

func TestRotationsAccumulateInCallOrder(t *testing.T) {
	cfg := NewCuboid().RotateX(math.Pi / 2).RotateY(math.Pi / 2).Config()

	// +Y goes to +Z about X, then +Z goes to +X about Y.
	got := cfg.Matrix().Mul4x1(mgl32.Vec4{0, 1, 0, 1}).Vec3()
	assertVec3Near(t, mgl32.Vec3{1, 0, 0}, got)
}

func TestRotateNormalizesAxis(t *testing.T) {
	a := NewCuboid().Rotate(0.8, mgl32.Vec3{0, 10, 0}).Config().Matrix()
	b := NewCuboid().RotateY(0.8).Config().Matrix()
	assert.True(t, a.ApproxEqualThreshold(b, tol))
}

func TestNormalMatrixIsInverseTranspose(t *testing.T) {
	cfg := NewSphere(0, 0).Scale(2, 4, 8).Translate(100, 0, 0).Config()
	got := cfg.NormalMatrix().Mul3x1(mgl32.Vec3{1, 1, 1})
	assertVec3Near(t, mgl32.Vec3{0.5, 0.25, 0.125}, got)
}

func TestZeroOrientationCountsAsIdentity(t *testing.T) {
	cfg := Config{Scale: mgl32.Vec3{1, 1, 1}}
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Matrix().ApproxEqualThreshold(mgl32.Ident4(), tol))
}

func TestConfigValidate(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"negative scale", DefaultConfig().withScale(1, -1, 1), "scale.y"},
		{"zero scale", DefaultConfig().withScale(1, 1, 0), "scale.z"},
		{"nan scale", DefaultConfig().withScale(nan, 1, 1), "scale.x"},
		{"infinite scale", DefaultConfig().withScale(1, inf, 1), "scale.y"},
		{"nan translation", Config{Scale: mgl32.Vec3{1, 1, 1}, Translation: mgl32.Vec3{0, 0, nan}}, "translation.z"},
		{"nan orientation", Config{Scale: mgl32.Vec3{1, 1, 1}, Orientation: mgl32.Quat{W: nan}}, "orientation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.NotErrorIs(t, err, ErrUpload)
		})
	}
}

func (c Config) withScale(x, y, z float32) Config {
	c.Scale = mgl32.Vec3{x, y, z}
	return c
}

func TestSettersDoNotValidate(t *testing.T) {
	b := NewQuad(PosZ)
	assert.Same(t, b, b.Scale(0, 0, 0))
	assert.Same(t, b, b.Translate(1, 2, 3))
	assert.Same(t, b, b.RotateX(1))
	assert.Same(t, b, b.WithConfig(DefaultConfig()))

	_, err := b.Scale(0, 1, 1).Mesh()
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestBuilderWithoutGenerator(t *testing.T) {
	_, err := New(nil).Mesh()
	assert.ErrorIs(t, err, ErrConfiguration)
}
