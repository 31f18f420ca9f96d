package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotX returns a 4×4 rotation around the X axis. Angle in radians.
func RotX(a float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(a)
}

// RotY returns a 4×4 rotation around the Y axis.
func RotY(a float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DY(a)
}

// RotZ returns a 4×4 rotation around the Z axis.
func RotZ(a float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DZ(a)
}

// Rotate returns a rotation of a radians around an arbitrary axis.
// The axis does not need to be unit length.
func Rotate(a float64, axis mgl64.Vec3) mgl64.Mat4 {
	if axis.Len() < 1e-12 {
		return mgl64.Ident4()
	}
	return mgl64.HomogRotate3D(a, axis.Normalize())
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}
