package mirror

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"toy-scene-renderer/internal/mathutil"
	"toy-scene-renderer/internal/raster"
	"toy-scene-renderer/internal/render"
	"toy-scene-renderer/internal/scene"
	"toy-scene-renderer/internal/texture"
)

const dt = 1.0 / 60

func run(s *Scene, in *scene.InputState, frames int) {
	for i := 0; i < frames; i++ {
		s.Update(in, dt)
		in.EndFrame()
	}
}

// ============================================================================
// Transforms
// ============================================================================

func TestInitialTransforms(t *testing.T) {
	s := New(nil)
	if err := s.Model.Validate(); err != nil {
		t.Fatal(err)
	}

	if p := mathutil.Position(s.Model.Get(Cube)); !p.ApproxEqualThreshold(mgl64.Vec3{-0.5, 0.5, 0}, 1e-9) {
		t.Errorf("cube at %v", p)
	}
	if !s.Model.Get(WallName(0)).ApproxEqual(mgl64.Ident4()) {
		t.Errorf("first wall should be identity")
	}
}

func TestWallsSurroundFloor(t *testing.T) {
	s := New(nil)
	back := mgl64.Vec3{0, 1, -3}
	seen := make(map[[2]int]bool)
	for i := 0; i < walls; i++ {
		p := mathutil.MulPoint(s.Model.Get(WallName(i)), back)
		if math.Abs(p[1]-1) > 1e-9 {
			t.Errorf("wall %d height moved: %v", i, p)
		}
		seen[[2]int{int(math.Round(p[0])), int(math.Round(p[2]))}] = true
	}
	for _, side := range [][2]int{{0, -3}, {3, 0}, {0, 3}, {-3, 0}} {
		if !seen[side] {
			t.Errorf("no wall centred at x=%d z=%d", side[0], side[1])
		}
	}
}

func TestTorusSpinsInPlace(t *testing.T) {
	s := New(nil)
	s.RotationSpeed = 2
	run(s, scene.NewInputState(), 60)

	if math.Abs(s.TorusAngle-2) > 1e-9 {
		t.Errorf("torus angle = %v, want 2", s.TorusAngle)
	}
	m := s.Model.Get(Torus)
	if p := mathutil.Position(m); !p.ApproxEqualThreshold(mgl64.Vec3{0.5, 1, 0}, 1e-9) {
		t.Errorf("torus moved to %v", p)
	}
	want := torusBase.Mul4(mathutil.RotZ(2))
	if !m.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("torus matrix should be base times Rz(angle)")
	}
}

// ============================================================================
// Camera control
// ============================================================================

func TestMoveUserCamera(t *testing.T) {
	tests := []struct {
		name string
		key  scene.Key
		sign float64
	}{
		{"forward", scene.KeyW, 1},
		{"back", scene.KeyS, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			start := s.Cameras[UserCam].Position
			front := s.Cameras[UserCam].Front()

			in := scene.NewInputState()
			in.Press(tt.key)
			run(s, in, 60)

			want := start.Add(front.Mul(tt.sign))
			if got := s.Cameras[UserCam].Position; !got.ApproxEqualThreshold(want, 1e-9) {
				t.Errorf("camera at %v, want %v", got, want)
			}
		})
	}
}

func TestStrafe(t *testing.T) {
	s := New(nil)
	in := scene.NewInputState()
	in.Press(scene.KeyD)
	run(s, in, 60)

	if got := s.Cameras[UserCam].Position; !got.ApproxEqualThreshold(mgl64.Vec3{1, 6, 3}, 1e-9) {
		t.Errorf("camera at %v, want (1,6,3)", got)
	}
}

func TestDragSettlesBeforeRotating(t *testing.T) {
	s := New(nil)
	yaw0 := s.Cameras[UserCam].Yaw

	in := scene.NewInputState()
	in.Press(scene.MouseRight)
	for i := 0; i < dragSettle; i++ {
		in.X = float64(10 * i)
		s.Update(in, dt)
		in.EndFrame()
	}
	if s.Cameras[UserCam].Yaw != yaw0 {
		t.Fatalf("camera turned while the drag settled")
	}

	in.X += 10
	s.Update(in, dt)
	want := yaw0 + 10*CamRotateSensitivity*dt
	if got := s.Cameras[UserCam].Yaw; math.Abs(got-want) > 1e-12 {
		t.Errorf("yaw = %v, want %v", got, want)
	}

	// releasing restarts the settle count
	in.Release(scene.MouseRight)
	s.Update(in, dt)
	if s.settle != 0 {
		t.Errorf("settle = %d after release", s.settle)
	}
}

func TestEscapeCloses(t *testing.T) {
	s := New(nil)
	in := scene.NewInputState()
	in.Press(scene.KeyEscape)
	if s.Update(in, dt) != scene.Close {
		t.Errorf("Escape should close")
	}
}

// ============================================================================
// Frame
// ============================================================================

func TestFrame_SingleView(t *testing.T) {
	s := New(nil)
	s.FloorAlpha = 0.7
	f := s.Frame()

	if f.Reflection == nil || f.Reflection.Alpha != 0.7 {
		t.Fatalf("reflection = %+v", f.Reflection)
	}
	if len(f.Views) != 1 {
		t.Fatalf("views = %d, want 1", len(f.Views))
	}
	if len(f.Items) != 3+walls {
		t.Fatalf("items = %d", len(f.Items))
	}
	reflective := 0
	for _, it := range f.Items {
		if it.Reflective {
			reflective++
			if it.Name != Floor {
				t.Errorf("%s should not be reflective", it.Name)
			}
		}
	}
	if reflective != 1 {
		t.Errorf("reflective items = %d, want 1", reflective)
	}
	if f.Light == nil || f.Light.Kind != scene.PointLight {
		t.Errorf("want a point light")
	}
}

func TestFrame_MultiView(t *testing.T) {
	s := New(nil)
	s.MultiView = true
	f := s.Frame()

	if len(f.Views) != 4 {
		t.Fatalf("views = %d, want 4", len(f.Views))
	}
	if f.Views[3].Layer != scene.LayerOverlay {
		t.Errorf("divider view should be an overlay")
	}
	if !f.Views[1].Eye.ApproxEqual(s.Cameras[UserCam].Position) {
		t.Errorf("bottom-right view should be the user camera")
	}
	last := f.Items[len(f.Items)-1]
	if last.Name != Divider || last.Layer != scene.LayerOverlay {
		t.Errorf("last item = %s on layer %d", last.Name, last.Layer)
	}
}

func TestBar(t *testing.T) {
	s := New(nil)
	v, ok := s.Bar().Find("Reflection", "Floor")
	if !ok {
		t.Fatal("missing Floor alpha")
	}
	v.Set(0)
	if s.FloorAlpha != 0.2 {
		t.Errorf("floor alpha = %v, want 0.2", s.FloorAlpha)
	}
	v, _ = s.Bar().Find("Light", "Position Y")
	v.Set(10)
	if s.Light.Pos[1] != 3 {
		t.Errorf("light y = %v, want 3", s.Light.Pos[1])
	}
}

func TestRender_FloorCoversCentre(t *testing.T) {
	s := New(nil)
	fb := raster.NewFrameBuffer(64, 48)
	render.New(texture.NewCache(nil)).Render(fb, s.Frame())

	c := fb.At(32, 24)
	if c.R == 51 && c.G == 51 && c.B == 51 {
		t.Errorf("centre pixel is background, floor not drawn")
	}
}
