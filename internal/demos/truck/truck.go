// Package truck is a 2D toy truck that drives along the ground and tips its
// dump box.
package truck

import (
	"github.com/go-gl/mathgl/mgl64"

	"toy-scene-renderer/internal/geometry"
	"toy-scene-renderer/internal/mathutil"
	"toy-scene-renderer/internal/scene"
)

var _ scene.Scene = (*Scene)(nil)

const (
	Width  = 1366
	Height = 768

	// TiltSensitivity is the dump-box tilt rate in degrees per second.
	TiltSensitivity = 7.0
	MaxTilt         = 45.0
	// WheelDegPerUnit is how far the wheels turn per unit driven.
	WheelDegPerUnit = 60.0

	slices = 32
)

// Object names in the transform table.
const (
	Ground  = "Ground"
	Chassis = "Chassis"
	DumpBox = "DumpBox"
	Wheel1  = "Wheel1"
	Hubcap1 = "Hubcap1"
	Wheel2  = "Wheel2"
	Hubcap2 = "Hubcap2"
)

// dumpBoxPivot is the hinge at the dump box's bottom-right corner.
var dumpBoxPivot = mgl64.Vec3{0.8, 0.1, 0}

// Scene is the truck demo state.
type Scene struct {
	scene.Base

	Pos        mgl64.Vec3
	Speed      float64
	WheelRot   float64 // degrees
	Tilt       float64 // degrees, in [0, MaxTilt]
	Background mgl64.Vec3

	// scale undoes the window's aspect stretch along x
	scale mgl64.Vec3
	hier  *scene.Hierarchy

	mesh *geometry.Mesh

	body, ground, dumpBox, wheel, hubcap geometry.Range
}

// New builds the truck at its starting position.
func New() *Scene {
	s := &Scene{
		Base:       scene.NewBase("Main", Width, Height, 60),
		Pos:        mgl64.Vec3{0, -0.5, 0},
		Speed:      0.2,
		Background: mgl64.Vec3{0.2, 0.2, 0.2},
		scale:      mgl64.Vec3{float64(Height) / float64(Width), 1, 1},
	}
	s.buildMesh()
	s.buildHierarchy()
	s.buildBar()
	s.hier.Update(s.Model)
	return s
}

func (s *Scene) Name() string { return "truck" }

// TiltDumpBox advances the tilt angle by sensitivity·dt per held key and
// clamps it to [0, MaxTilt].
func TiltDumpBox(angle float64, up, down bool, sensitivity, dt float64) float64 {
	if up {
		angle += sensitivity * dt
	}
	if down {
		angle -= sensitivity * dt
	}
	return mathutil.Clamp(angle, 0, MaxTilt)
}

// Update applies one frame of input.
func (s *Scene) Update(in scene.Input, dt float64) scene.Action {
	if in.JustPressed(scene.KeyEscape) {
		return scene.Close
	}
	if in.JustPressed(scene.KeyW) {
		s.Wireframe = true
	}
	if in.JustPressed(scene.KeyS) {
		s.Wireframe = false
	}

	dir := 0.0
	if in.Down(scene.KeyA) {
		dir--
	}
	if in.Down(scene.KeyD) {
		dir++
	}
	dx := dir * s.Speed * dt
	s.Pos[0] += dx
	// rolling right turns the wheels clockwise
	s.WheelRot -= dx * WheelDegPerUnit

	s.Tilt = TiltDumpBox(s.Tilt, in.Down(scene.KeyUp), in.Down(scene.KeyDown), TiltSensitivity, dt)

	s.Advance(dt)
	s.hier.Update(s.Model)
	return scene.Continue
}

// Frame snapshots the scene for drawing. Later items paint over earlier ones.
func (s *Scene) Frame() *scene.Frame {
	f := s.NewFrame()
	f.Background = s.Background
	f.Views = []scene.View{{Viewport: scene.FullViewport, View: mgl64.Ident4(), Proj: mgl64.Ident4()}}

	item := func(name string, r geometry.Range) scene.DrawItem {
		return scene.DrawItem{Name: name, Mesh: s.mesh, Ranges: []geometry.Range{r}, Model: s.Model.Get(name)}
	}
	f.Items = []scene.DrawItem{
		item(Chassis, s.body),
		item(Ground, s.ground),
		item(DumpBox, s.dumpBox),
		item(Wheel1, s.wheel),
		item(Hubcap1, s.hubcap),
		item(Wheel2, s.wheel),
		item(Hubcap2, s.hubcap),
	}
	return f
}

func (s *Scene) buildHierarchy() {
	h := scene.NewHierarchy()
	h.MustAdd(scene.Node{Name: Ground})
	h.MustAdd(scene.Node{Name: Chassis, Local: func() mgl64.Mat4 {
		return mathutil.Compose(mathutil.Translate(s.Pos), mathutil.Scale(s.scale))
	}})
	wheel := func(x float64) func() mgl64.Mat4 {
		return func() mgl64.Mat4 {
			return mathutil.Compose(
				mathutil.Translate(mgl64.Vec3{x, 0, 0}),
				mathutil.RotZ(mathutil.Deg2Rad(s.WheelRot)),
			)
		}
	}
	h.MustAdd(scene.Node{Name: Wheel1, Parent: Chassis, Local: wheel(-0.5)})
	h.MustAdd(scene.Node{Name: Hubcap1, Parent: Wheel1})
	h.MustAdd(scene.Node{Name: Wheel2, Parent: Chassis, Local: wheel(0.5)})
	h.MustAdd(scene.Node{Name: Hubcap2, Parent: Wheel2})
	h.MustAdd(scene.Node{Name: DumpBox, Parent: Chassis, Local: func() mgl64.Mat4 {
		return mathutil.Compose(
			mathutil.Translate(dumpBoxPivot),
			mathutil.RotZ(mathutil.Deg2Rad(-s.Tilt)),
			mathutil.Translate(dumpBoxPivot.Mul(-1)),
		)
	}})
	s.hier = h
}

func (s *Scene) buildBar() {
	s.BindStats()
	b := s.Bar()
	b.AddBool("Wireframe", "Display", &s.Wireframe)
	b.AddColor("Background", "Display", &s.Background)
	b.AddFloat("Angle", "Dump Box Control", &s.Tilt, 0, MaxTilt, 0.05)
	b.AddFloat("Speed", "Movement", &s.Speed, 0.1, 2.0, 0.005)
}
