package graphics

import (
	"glshapes/pkg/shape"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	maxPitch    = 89.0
	minDistance = 0.1
)

// Camera orbits a target point. Yaw and Pitch are in degrees; yaw 0 looks
// down -Z from the +Z side.
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32

	Target   mgl32.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:       60.0,
		NearPlane: 0.1,
		FarPlane:  1000.0,
		Distance:  5,
		Yaw:       30,
		Pitch:     20,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio; a zero height (minimized window) is ignored
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Position returns the eye position in world space
func (c *Camera) Position() mgl32.Vec3 {
	sinYaw, cosYaw := math32.Sincos(mgl32.DegToRad(c.Yaw))
	sinPitch, cosPitch := math32.Sincos(mgl32.DegToRad(c.Pitch))
	offset := mgl32.Vec3{cosPitch * sinYaw, sinPitch, cosPitch * cosYaw}
	return c.Target.Add(offset.Mul(c.Distance))
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// Orbit rotates the eye around the target by the given degrees
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
}

// Zoom scales the orbit distance; factors below 1 move closer
func (c *Camera) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	c.Distance = max(c.Distance*factor, minDistance)
}

// Frame points the camera at b from far enough to see all of it
func (c *Camera) Frame(b shape.Bounds) {
	c.Target = b.Center()
	r := max(b.Radius(), minDistance)
	halfFOV := mgl32.DegToRad(c.FOV) / 2
	c.Distance = r / math32.Sin(halfFOV) * 1.1
	c.FarPlane = max(c.FarPlane, c.Distance+r*2)
}
