package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	minPitch    = -89.0
	maxPitch    = 89.0
	minDistance = 0.5
	maxDistance = 20.0
)

// Camera orbits the origin, where the viewed model sits, and produces the
// view and projection matrices.
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32

	// Yaw and Pitch are in degrees; Distance is in blocks.
	Yaw      float32
	Pitch    float32
	Distance float32
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:       60.0,
		NearPlane: 0.05,
		FarPlane:  100.0,
		Yaw:       45.0,
		Pitch:     30.0,
		Distance:  2.5,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio. Zero sizes (minimized windows) are
// ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// Orbit turns the camera by the given yaw and pitch deltas in degrees.
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	for c.Yaw >= 360 {
		c.Yaw -= 360
	}
	for c.Yaw < 0 {
		c.Yaw += 360
	}
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, minPitch, maxPitch)
}

// Zoom scales the orbit distance; factors below 1 move closer.
func (c *Camera) Zoom(factor float32) {
	c.Distance = mgl32.Clamp(c.Distance*factor, minDistance, maxDistance)
}

// Position returns the eye position in world space.
func (c *Camera) Position() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	dir := mgl32.SphericalToCartesian(1, mgl32.DegToRad(90)-pitch, yaw)
	// SphericalToCartesian is z-up; the scene is y-up.
	return mgl32.Vec3{dir.Y(), dir.Z(), dir.X()}.Mul(c.Distance)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}
