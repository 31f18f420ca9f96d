package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"toy-scene-renderer/internal/mathutil"
)

// LightKind selects point or directional lighting.
type LightKind int

const (
	PointLight LightKind = iota
	DirectionalLight
)

// Light is a single Phong light source.
// Att holds constant, linear and quadratic attenuation for point lights.
type Light struct {
	Kind LightKind
	Pos  mgl64.Vec3
	Dir  mgl64.Vec3
	La   mgl64.Vec3
	Ld   mgl64.Vec3
	Ls   mgl64.Vec3
	Att  mgl64.Vec3
}

// Attenuation returns 1/(c + l·d + q·d²) for a point light at distance d,
// and 1 for directional lights or a zero attenuation vector.
func (l Light) Attenuation(d float64) float64 {
	if l.Kind != PointLight {
		return 1
	}
	den := l.Att[0] + l.Att[1]*d + l.Att[2]*d*d
	if den <= 0 {
		return 1
	}
	return 1 / den
}

// Transformed returns the light moved by m (used to mirror it for reflections).
func (l Light) Transformed(m mgl64.Mat4) Light {
	l.Pos = mathutil.MulPoint(m, l.Pos)
	l.Dir = m.Mul4x1(l.Dir.Vec4(0)).Vec3()
	return l
}
