package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"toy-scene-renderer/internal/scene"
)

func vert(x, y, z float64, c [4]float64) Vertex {
	return Vertex{X: x, Y: y, Z: z, InvW: 1, C: c}
}

var (
	red   = [4]float64{1, 0, 0, 1}
	green = [4]float64{0, 1, 0, 1}
)

// =============================================================================
// FrameBuffer
// =============================================================================

func TestFrameBuffer_Clear(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	fb.Stencil[5] = 1
	fb.Clear(mgl64.Vec3{1, 0.5, 0})

	if got := fb.At(2, 1); got != (color.NRGBA{255, 128, 0, 255}) {
		t.Errorf("At(2,1) = %v", got)
	}
	if !math.IsInf(fb.Depth[0], 1) {
		t.Errorf("depth not cleared to +Inf")
	}
	if fb.Stencil[5] != 0 {
		t.Errorf("stencil not cleared")
	}
	if img := fb.Image(); img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("Image bounds = %v", img.Bounds())
	}
}

// =============================================================================
// Triangle
// =============================================================================

func TestTriangle_FillsInterior(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	st := DefaultState(fb.Bounds())
	Triangle(fb, &st, vert(0, 0, 0.5, red), vert(10, 0, 0.5, red), vert(0, 10, 0.5, red), nil)

	if got := fb.At(1, 1); got.R != 255 || got.G != 0 {
		t.Errorf("interior pixel = %v, want red", got)
	}
	if got := fb.At(9, 9); got.R != 0 {
		t.Errorf("exterior pixel = %v, want background", got)
	}
}

func TestTriangle_DepthTest(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	st := DefaultState(fb.Bounds())
	near := [3]Vertex{vert(0, 0, 0.2, red), vert(8, 0, 0.2, red), vert(0, 8, 0.2, red)}
	far := [3]Vertex{vert(0, 0, 0.8, green), vert(8, 0, 0.8, green), vert(0, 8, 0.8, green)}

	Triangle(fb, &st, near[0], near[1], near[2], nil)
	Triangle(fb, &st, far[0], far[1], far[2], nil)

	if got := fb.At(1, 1); got.R != 255 || got.G != 0 {
		t.Errorf("far triangle overwrote near one: %v", got)
	}
}

func TestTriangle_ViewportClips(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	st := DefaultState(image.Rect(0, 0, 4, 8))
	Triangle(fb, &st, vert(0, 0, 0, red), vert(16, 0, 0, red), vert(0, 16, 0, red), nil)

	if fb.At(3, 0).R != 255 {
		t.Errorf("pixel inside viewport not drawn")
	}
	if fb.At(5, 0).R != 0 {
		t.Errorf("pixel outside viewport drawn")
	}
}

func TestTriangle_Textured(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(tex.Pix); i += 4 {
		tex.Pix[i], tex.Pix[i+1], tex.Pix[i+2], tex.Pix[i+3] = 0, 0, 200, 255
	}
	fb := NewFrameBuffer(8, 8)
	st := DefaultState(fb.Bounds())
	white := [4]float64{1, 1, 1, 1}
	a, b, c := vert(0, 0, 0, white), vert(8, 0, 0, white), vert(0, 8, 0, white)
	b.U = 1
	c.V = 1
	Triangle(fb, &st, a, b, c, tex)

	if got := fb.At(1, 1); got.B != 200 || got.R != 0 {
		t.Errorf("textured pixel = %v", got)
	}
}

// =============================================================================
// Stencil and blending
// =============================================================================

func TestStencil_MarkThenEqual(t *testing.T) {
	fb := NewFrameBuffer(8, 8)

	mark := State{Viewport: fb.Bounds(), Stencil: StencilAlways, StencilRef: 1, StencilReplace: true}
	Triangle(fb, &mark, vert(0, 0, 0.5, red), vert(4, 0, 0.5, red), vert(0, 4, 0.5, red), nil)

	if fb.At(1, 1).R != 0 {
		t.Errorf("colour written with ColorWrite off")
	}
	if fb.Stencil[1*8+1] != 1 {
		t.Errorf("stencil not marked")
	}
	if !math.IsInf(fb.Depth[1*8+1], 1) {
		t.Errorf("depth written with DepthWrite off")
	}

	draw := DefaultState(fb.Bounds())
	draw.Stencil = StencilEqual
	draw.StencilRef = 1
	Triangle(fb, &draw, vert(0, 0, 0.5, green), vert(8, 0, 0.5, green), vert(0, 8, 0.5, green), nil)

	if fb.At(1, 1).G != 255 {
		t.Errorf("marked pixel not drawn")
	}
	if fb.At(5, 1).G != 0 {
		t.Errorf("unmarked pixel drawn")
	}
}

func TestBlend(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.Clear(mgl64.Vec3{0, 0, 1})
	st := DefaultState(fb.Bounds())
	st.Blend = true
	Point(fb, &st, vert(1, 1, 0, [4]float64{1, 0, 0, 0.5}), 1)

	got := fb.At(1, 1)
	if got.R != 128 || got.B != 128 {
		t.Errorf("blended = %v, want half red half blue", got)
	}
	if got.A != 255 {
		t.Errorf("blended alpha = %d, want opaque", got.A)
	}
}

// =============================================================================
// Lines and points
// =============================================================================

func TestLine_Endpoints(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	st := DefaultState(fb.Bounds())
	Line(fb, &st, vert(1, 1, 0, red), vert(8, 5, 0, red))

	if fb.At(1, 1).R != 255 || fb.At(8, 5).R != 255 {
		t.Errorf("line endpoints not drawn")
	}
	if fb.At(8, 1).R != 0 {
		t.Errorf("unexpected pixel on line")
	}
}

func TestPoint_Size(t *testing.T) {
	fb := NewFrameBuffer(20, 20)
	st := DefaultState(fb.Bounds())
	Point(fb, &st, vert(10, 10, 0, red), 10)

	n := 0
	for i := 0; i < len(fb.Color); i += 4 {
		if fb.Color[i] == 255 {
			n++
		}
	}
	if n != 100 {
		t.Errorf("point covers %d pixels, want 100", n)
	}
}

// =============================================================================
// Lighting
// =============================================================================

func TestPhong(t *testing.T) {
	m := &scene.Material{Ka: mgl64.Vec3{1, 1, 1}, Kd: mgl64.Vec3{1, 1, 1}, Ks: mgl64.Vec3{}, Shininess: 1}
	tests := []struct {
		name   string
		light  scene.Light
		normal mgl64.Vec3
		want   float64
	}{
		{
			name:   "directional facing",
			light:  scene.Light{Kind: scene.DirectionalLight, Dir: mgl64.Vec3{0, -1, 0}, La: mgl64.Vec3{0.1, 0.1, 0.1}, Ld: mgl64.Vec3{1, 1, 1}},
			normal: mgl64.Vec3{0, 1, 0},
			want:   1.1,
		},
		{
			name:   "directional behind",
			light:  scene.Light{Kind: scene.DirectionalLight, Dir: mgl64.Vec3{0, 1, 0}, La: mgl64.Vec3{0.1, 0.1, 0.1}, Ld: mgl64.Vec3{1, 1, 1}},
			normal: mgl64.Vec3{0, 1, 0},
			want:   0.1,
		},
		{
			name:   "point attenuated",
			light:  scene.Light{Kind: scene.PointLight, Pos: mgl64.Vec3{0, 2, 0}, Ld: mgl64.Vec3{1, 1, 1}, Att: mgl64.Vec3{0, 0, 1}},
			normal: mgl64.Vec3{0, 1, 0},
			want:   0.25,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Phong(m, &tt.light, mgl64.Vec3{}, tt.normal, mgl64.Vec3{0, 5, 5})
			if math.Abs(got[0]-tt.want) > 1e-9 {
				t.Errorf("Phong = %v, want %v", got[0], tt.want)
			}
		})
	}
}

func TestPhong_Specular(t *testing.T) {
	m := &scene.Material{Ks: mgl64.Vec3{1, 1, 1}, Shininess: 8}
	l := scene.Light{Kind: scene.PointLight, Pos: mgl64.Vec3{0, 1, 0}, Ls: mgl64.Vec3{1, 1, 1}, Att: mgl64.Vec3{1, 0, 0}}
	got := Phong(m, &l, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 3, 0})
	if math.Abs(got[1]-1) > 1e-9 {
		t.Errorf("mirror-direction specular = %v, want 1", got[1])
	}
}
