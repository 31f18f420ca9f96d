package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ReflectY mirrors geometry about the horizontal (XZ) plane.
var ReflectY = mgl64.Scale3D(1, -1, 1)

// Translate returns a translation matrix.
func Translate(v mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(v[0], v[1], v[2])
}

// Scale returns a non-uniform scale matrix.
func Scale(v mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Scale3D(v[0], v[1], v[2])
}

// Compose returns ms[0] × ms[1] × ... × ms[n-1].
// Applied to a point, the last matrix acts first.
func Compose(ms ...mgl64.Mat4) mgl64.Mat4 {
	m := mgl64.Ident4()
	for _, x := range ms {
		m = m.Mul4(x)
	}
	return m
}

// TRS builds translate × rotate × scale.
func TRS(t mgl64.Vec3, r mgl64.Mat4, s mgl64.Vec3) mgl64.Mat4 {
	return Compose(Translate(t), r, Scale(s))
}

// Position extracts the translation column of an affine matrix.
func Position(m mgl64.Mat4) mgl64.Vec3 {
	return m.Col(3).Vec3()
}

// MulPoint transforms a 3D point (w=1) and drops w.
func MulPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// NormalMatrix returns transpose(inverse(upper-left 3×3)).
func NormalMatrix(m mgl64.Mat4) mgl64.Mat3 {
	m3 := m.Mat3()
	if math.Abs(m3.Det()) < 1e-12 {
		return mgl64.Ident3()
	}
	return m3.Inv().Transpose()
}

// IsAffine reports whether m is finite with a (0, 0, 0, 1) bottom row.
func IsAffine(m mgl64.Mat4) bool {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	row := m.Row(3)
	return math.Abs(row[0]) < 1e-9 && math.Abs(row[1]) < 1e-9 &&
		math.Abs(row[2]) < 1e-9 && math.Abs(row[3]-1) < 1e-9
}
