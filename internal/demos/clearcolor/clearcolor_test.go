package clearcolor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"toy-scene-renderer/internal/raster"
	"toy-scene-renderer/internal/render"
	"toy-scene-renderer/internal/scene"
)

func TestKeysSetBackground(t *testing.T) {
	tests := []struct {
		name string
		key  scene.Key
		want mgl64.Vec3
	}{
		{"q red", scene.KeyQ, Red},
		{"w yellow", scene.KeyW, Yellow},
		{"e white", scene.KeyE, White},
		{"other keeps grey", scene.KeyB, Grey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			in := scene.NewInputState()
			in.Press(tt.key)
			s.Update(in, 1.0/60)
			if !s.Background.ApproxEqual(tt.want) {
				t.Errorf("background = %v, want %v", s.Background, tt.want)
			}
		})
	}
}

func TestClose(t *testing.T) {
	for _, k := range []scene.Key{scene.KeyEscape, scene.MouseRight} {
		in := scene.NewInputState()
		in.Press(k)
		if New().Update(in, 1.0/60) != scene.Close {
			t.Errorf("%v should close", k)
		}
	}
	in := scene.NewInputState()
	in.Press(scene.MouseLeft)
	if New().Update(in, 1.0/60) != scene.Continue {
		t.Errorf("left click should only log")
	}
}

func TestRender(t *testing.T) {
	s := New()
	in := scene.NewInputState()
	in.Press(scene.KeyQ)
	s.Update(in, 1.0/60)

	fb := raster.NewFrameBuffer(8, 6)
	render.New(nil).Render(fb, s.Frame())
	if c := fb.At(4, 3); c.R != 255 || c.G != 51 || c.A != 255 {
		t.Errorf("pixel = %v, want red clear", c)
	}
}
