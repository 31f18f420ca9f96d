package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"toy-scene-renderer/internal/mathutil"
)

var worldUp = mgl64.Vec3{0, 1, 0}

// maxPitch keeps the view direction off the up axis.
var maxPitch = mathutil.Deg2Rad(89)

// Camera is a free-look camera. Yaw 0 looks down -Z; positive pitch looks up.
type Camera struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
	Proj     mgl64.Mat4
}

// SetViewMatrix places the camera at pos looking at target.
func (c *Camera) SetViewMatrix(pos, target mgl64.Vec3) {
	c.Position = pos
	d := target.Sub(pos)
	if d.Len() < 1e-12 {
		return
	}
	d = d.Normalize()
	c.Pitch = math.Asin(mathutil.Clamp(d[1], -1, 1))
	c.Yaw = math.Atan2(d[0], -d[2])
}

// SetProjMatrix sets the projection.
func (c *Camera) SetProjMatrix(p mgl64.Mat4) {
	c.Proj = p
}

// Front returns the unit view direction.
func (c *Camera) Front() mgl64.Vec3 {
	cp := math.Cos(c.Pitch)
	return mgl64.Vec3{math.Sin(c.Yaw) * cp, math.Sin(c.Pitch), -math.Cos(c.Yaw) * cp}
}

// Right returns the unit vector to the camera's right, parallel to the ground.
func (c *Camera) Right() mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(c.Yaw), 0, math.Sin(c.Yaw)}
}

// View returns the world-to-eye matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Position.Add(c.Front()), worldUp)
}

// Update moves the camera along its view and right directions.
func (c *Camera) Update(moveForward, moveRight float64) {
	c.Position = c.Position.Add(c.Front().Mul(moveForward)).Add(c.Right().Mul(moveRight))
}

// UpdateRotation turns the camera. A positive yaw delta turns left
// (counter-clockwise about +Y); a positive pitch delta looks up.
func (c *Camera) UpdateRotation(deltaYaw, deltaPitch float64) {
	c.Yaw -= deltaYaw
	c.Pitch = mathutil.Clamp(c.Pitch+deltaPitch, -maxPitch, maxPitch)
}

// Perspective returns a perspective projection with a vertical field of view
// in degrees.
func Perspective(fovDeg, aspect, near, far float64) mgl64.Mat4 {
	return mgl64.Perspective(mathutil.Deg2Rad(fovDeg), aspect, near, far)
}
