package scene

import "github.com/go-gl/mathgl/mgl64"

// Material holds Phong reflectance coefficients.
type Material struct {
	Ka        mgl64.Vec3
	Kd        mgl64.Vec3
	Ks        mgl64.Vec3
	Shininess float64
}

func gray(v float64) mgl64.Vec3 { return mgl64.Vec3{v, v, v} }

// Named material presets shared by the demos.
var (
	Pearl = Material{
		Ka: mgl64.Vec3{0.25, 0.21, 0.21}, Kd: mgl64.Vec3{1.0, 0.83, 0.83},
		Ks: gray(0.3), Shininess: 11.3,
	}
	Jade = Material{
		Ka: mgl64.Vec3{0.14, 0.22, 0.16}, Kd: mgl64.Vec3{0.54, 0.89, 0.63},
		Ks: gray(0.32), Shininess: 12.8,
	}
	SomeOtherMaterial = Material{
		Ka: mgl64.Vec3{0.30, 0.15, 0.78}, Kd: mgl64.Vec3{0.95, 0.39, 0.21},
		Ks: gray(0.4), Shininess: 2.5,
	}
	FloorMaterial = Material{
		Ka: gray(0.2), Kd: gray(1.0), Ks: mgl64.Vec3{0.2, 0.7, 1.0}, Shininess: 40,
	}
	TorusMaterial = Material{
		Ka: gray(0.2), Kd: gray(0.7), Ks: mgl64.Vec3{0.2, 0.7, 1.0}, Shininess: 40,
	}
	WallMaterial = Material{
		Ka: gray(0.2), Kd: mgl64.Vec3{0.596, 0.765, 1.0}, Ks: mgl64.Vec3{0.2, 0.7, 1.0}, Shininess: 40,
	}
)
