package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"toy-scene-renderer/internal/scene"
)

// Phong evaluates ambient + diffuse + specular at a surface point for one light.
// normal must be unit length; the result is not clamped.
func Phong(m *scene.Material, l *scene.Light, pos, normal, eye mgl64.Vec3) mgl64.Vec3 {
	var toLight mgl64.Vec3
	atten := 1.0
	if l.Kind == scene.DirectionalLight {
		toLight = l.Dir.Mul(-1).Normalize()
	} else {
		d := l.Pos.Sub(pos)
		dist := d.Len()
		if dist > 1e-12 {
			toLight = d.Mul(1 / dist)
		}
		atten = l.Attenuation(dist)
	}

	ambient := mul3(l.La, m.Ka)
	color := ambient

	ndl := normal.Dot(toLight)
	if ndl <= 0 {
		return color
	}
	diffuse := mul3(l.Ld, m.Kd).Mul(ndl)

	toEye := eye.Sub(pos)
	var spec mgl64.Vec3
	if toEye.Len() > 1e-12 {
		toEye = toEye.Normalize()
		r := normal.Mul(2 * ndl).Sub(toLight)
		if rdv := r.Dot(toEye); rdv > 0 {
			spec = mul3(l.Ls, m.Ks).Mul(math.Pow(rdv, m.Shininess))
		}
	}

	return color.Add(diffuse.Add(spec).Mul(atten))
}

func mul3(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
