package shape

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var axisNames = [3]string{"x", "y", "z"}

// Config holds the model-space placement shared by every shape. The
// resulting transform scales first, then rotates, then translates.
type Config struct {
	Translation mgl32.Vec3
	Scale       mgl32.Vec3
	Orientation mgl32.Quat
}

// DefaultConfig returns the identity placement
func DefaultConfig() Config {
	return Config{
		Scale:       mgl32.Vec3{1, 1, 1},
		Orientation: mgl32.QuatIdent(),
	}
}

// Validate reports a *ConfigurationError for a scale component that is not
// strictly positive or for any non-finite component.
func (c Config) Validate() error {
	for i, s := range c.Scale {
		if !finite(s) || s <= 0 {
			return &ConfigurationError{
				Field:  "scale." + axisNames[i],
				Value:  s,
				Reason: "must be positive and finite",
			}
		}
	}
	for i, t := range c.Translation {
		if !finite(t) {
			return &ConfigurationError{
				Field:  "translation." + axisNames[i],
				Value:  t,
				Reason: "must be finite",
			}
		}
	}
	q := c.Orientation
	if !finite(q.W) || !finite(q.V[0]) || !finite(q.V[1]) || !finite(q.V[2]) {
		return &ConfigurationError{Field: "orientation", Value: q, Reason: "must be finite"}
	}
	return nil
}

// rotation returns the normalized orientation; a zero quaternion counts as identity
func (c Config) rotation() mgl32.Quat {
	if c.Orientation.Len() == 0 {
		return mgl32.QuatIdent()
	}
	return c.Orientation.Normalize()
}

// Matrix returns the affine model transform T * R * S
func (c Config) Matrix() mgl32.Mat4 {
	t, s := c.Translation, c.Scale
	return mgl32.Translate3D(t[0], t[1], t[2]).
		Mul4(c.rotation().Mat4()).
		Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
}

// NormalMatrix returns the inverse-transpose of the linear part of Matrix.
// Only valid for a configuration that passes Validate.
func (c Config) NormalMatrix() mgl32.Mat3 {
	return c.Matrix().Mat3().Inv().Transpose()
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
