// Package mirror is a textured room whose checkerboard floor reflects the
// objects standing on it.
package mirror

import (
	"github.com/go-gl/mathgl/mgl64"

	"toy-scene-renderer/internal/geometry"
	"toy-scene-renderer/internal/mathutil"
	"toy-scene-renderer/internal/model"
	"toy-scene-renderer/internal/scene"
	"toy-scene-renderer/internal/texture"
)

var _ scene.Scene = (*Scene)(nil)

const (
	Width  = 1024
	Height = 768

	CamMoveSensitivity   = 1.0
	CamRotateSensitivity = 0.1

	// dragSettle is how many pointer samples of a new drag only re-seed the
	// previous position.
	dragSettle = 5
	walls      = 4
)

// Object names in the transform table.
const (
	Floor   = "Floor"
	Cube    = "Cube"
	Torus   = "Torus"
	Wall    = "Wall"
	Divider = "Divider"
)

// WallName returns the transform-table name of wall i.
func WallName(i int) string {
	return Wall + string(rune('0'+i))
}

// Camera indices.
const (
	UserCam = iota
	FrontCam
	TopCam
	DividerCam
)

var (
	cubeBase  = mathutil.Compose(mathutil.Translate(mgl64.Vec3{-0.5, 0.5, 0}), mathutil.Scale(mgl64.Vec3{0.3, 0.3, 0.3}))
	torusBase = mathutil.Compose(
		mathutil.Translate(mgl64.Vec3{0.5, 1, 0}),
		mathutil.Scale(mgl64.Vec3{0.5, 0.5, 0.5}),
		mathutil.RotX(mathutil.Deg2Rad(90)),
	)
)

// Scene is the mirror demo state.
type Scene struct {
	scene.Base

	MultiView bool
	// FloorAlpha is the floor's opacity over its reflection.
	FloorAlpha    float64
	ObjectAlpha   float64
	RotationSpeed float64
	TorusAngle    float64

	Cameras [4]scene.Camera
	Light   scene.Light

	dragging bool
	settle   int
	prevX    float64
	prevY    float64

	models   *model.Library
	hier     *scene.Hierarchy
	floor    *geometry.Mesh
	wall     *geometry.Mesh
	dividers *geometry.Mesh
}

// New builds the room. Meshes come from lib; a nil lib uses built-in shapes.
func New(lib *model.Library) *Scene {
	if lib == nil {
		lib = model.NewLibrary("")
	}
	s := &Scene{
		Base:          scene.NewBase("Main", Width, Height, 60),
		FloorAlpha:    0.5,
		ObjectAlpha:   1,
		RotationSpeed: 1,
		Light: scene.Light{
			Kind: scene.PointLight,
			Pos:  mgl64.Vec3{0, 2, 1},
			La:   mgl64.Vec3{0.3, 0.3, 0.3},
			Ld:   mgl64.Vec3{1, 1, 1},
			Ls:   mgl64.Vec3{1, 1, 1},
			Att:  mgl64.Vec3{1, 0, 0},
		},
		models: lib,
	}
	s.buildCameras()
	s.buildMeshes()
	s.buildHierarchy()
	s.buildBar()
	s.hier.Update(s.Model)
	return s
}

func (s *Scene) Name() string { return "mirror" }

func (s *Scene) buildCameras() {
	proj := scene.Perspective(45, float64(Width)/float64(Height), 0.1, 20)
	c := &s.Cameras
	c[UserCam].SetViewMatrix(mgl64.Vec3{0, 6, 3}, mgl64.Vec3{})
	c[FrontCam].SetViewMatrix(mgl64.Vec3{0, 0.85, 2.5}, mgl64.Vec3{0, 0.85, 0})
	c[TopCam].SetViewMatrix(mgl64.Vec3{0, 10.5, 0.01}, mgl64.Vec3{})
	for i := UserCam; i <= TopCam; i++ {
		c[i].SetProjMatrix(proj)
	}
	c[DividerCam].SetViewMatrix(mgl64.Vec3{0, 0, 3}, mgl64.Vec3{})
	c[DividerCam].SetProjMatrix(mgl64.Ortho(0, Width, 0, Height, 0.1, 10))
}

func (s *Scene) buildMeshes() {
	lit := geometry.LitLayout | geometry.AttrTangent

	fb := geometry.NewBuffer(lit)
	fr := geometry.QuadStrip(fb, [4]mgl64.Vec3{{-3, 0, 3}, {3, 0, 3}, {-3, 0, -3}, {3, 0, -3}},
		mgl64.Vec3{0, 1, 0}, mgl64.Vec2{4, 4}, mgl64.Vec3{})
	s.floor = &geometry.Mesh{Name: "floor", Buffer: fb, Ranges: []geometry.Range{fr}}

	wb := geometry.NewBuffer(lit)
	wr := geometry.QuadStrip(wb, [4]mgl64.Vec3{{-3, 0, -3}, {3, 0, -3}, {-3, 3, -3}, {3, 3, -3}},
		mgl64.Vec3{0, 0, 1}, mgl64.Vec2{4, 2}, mgl64.Vec3{})
	s.wall = &geometry.Mesh{Name: "wall", Buffer: wb, Ranges: []geometry.Range{wr}}

	white := mgl64.Vec3{1, 1, 1}
	db := geometry.NewBuffer(geometry.AttrColor)
	for _, p := range []mgl64.Vec3{
		{0, Height / 2, 0}, {Width, Height / 2, 0},
		{Width / 2, 0, 0}, {Width / 2, Height, 0},
	} {
		db.Append(geometry.Vertex{Pos: p, Color: white})
	}
	s.dividers = &geometry.Mesh{Name: "divider", Buffer: db,
		Ranges: []geometry.Range{{Mode: geometry.Lines, First: 0, Count: 4}}}
}

func (s *Scene) buildHierarchy() {
	h := scene.NewHierarchy()
	h.MustAdd(scene.Node{Name: Floor})
	h.MustAdd(scene.Node{Name: Cube, Local: func() mgl64.Mat4 { return cubeBase }})
	h.MustAdd(scene.Node{Name: Torus, Local: func() mgl64.Mat4 {
		return torusBase.Mul4(mathutil.RotZ(s.TorusAngle))
	}})
	for i := 0; i < walls; i++ {
		a := mathutil.Deg2Rad(90 * float64(i))
		h.MustAdd(scene.Node{Name: WallName(i), Local: func() mgl64.Mat4 { return mathutil.RotY(a) }})
	}
	h.MustAdd(scene.Node{Name: Divider})
	s.hier = h
}

func (s *Scene) buildBar() {
	s.BindStats()
	b := s.Bar()
	b.AddBool("Wireframe", "Controls", &s.Wireframe)
	b.AddBool("MultiView", "Controls", &s.MultiView)
	b.AddFloat("Position X", "Light", &s.Light.Pos[0], -3, 3, 0.01)
	b.AddFloat("Position Y", "Light", &s.Light.Pos[1], -3, 3, 0.01)
	b.AddFloat("Position Z", "Light", &s.Light.Pos[2], -3, 3, 0.01)
	b.AddFloat("Rotation Speed", "Transformation", &s.RotationSpeed, -3, 3, 0.01)
	b.AddFloat("Floor", "Reflection", &s.FloorAlpha, 0.2, 1, 0.01)
	b.AddFloat("Object", "Reflection", &s.ObjectAlpha, 0.2, 1, 0.01)
}

// Update moves the user camera and spins the torus.
func (s *Scene) Update(in scene.Input, dt float64) scene.Action {
	if in.JustPressed(scene.KeyEscape) {
		return scene.Close
	}

	var forward, right float64
	if in.Down(scene.KeyW) {
		forward += CamMoveSensitivity * dt
	}
	if in.Down(scene.KeyS) {
		forward -= CamMoveSensitivity * dt
	}
	if in.Down(scene.KeyA) {
		right -= CamMoveSensitivity * dt
	}
	if in.Down(scene.KeyD) {
		right += CamMoveSensitivity * dt
	}
	s.Cameras[UserCam].Update(forward, right)
	s.drag(in, dt)

	s.TorusAngle += s.RotationSpeed * dt

	s.Advance(dt)
	s.hier.Update(s.Model)
	return scene.Continue
}

// drag turns the user camera while the right button is held.
func (s *Scene) drag(in scene.Input, dt float64) {
	if !in.Down(scene.MouseRight) {
		s.settle = 0
		return
	}
	x, y := in.Cursor()
	if s.settle < dragSettle {
		s.prevX, s.prevY = x, y
		s.settle++
	}
	yaw := (s.prevX - x) * CamRotateSensitivity * dt
	pitch := (s.prevY - y) * CamRotateSensitivity * dt
	s.Cameras[UserCam].UpdateRotation(yaw, pitch)
	s.prevX, s.prevY = x, y
}

// Frame snapshots the room with its reflection.
func (s *Scene) Frame() *scene.Frame {
	f := s.NewFrame()
	f.Background = mgl64.Vec3{0.2, 0.2, 0.2}
	f.DepthTest = true
	light := s.Light
	f.Light = &light
	f.Reflection = &scene.Reflection{Alpha: s.FloorAlpha}

	if s.MultiView {
		f.Views = []scene.View{
			scene.ViewFromCamera(scene.Viewport{X: 0, Y: 0, W: 0.5, H: 0.5}, &s.Cameras[FrontCam]),
			scene.ViewFromCamera(scene.Viewport{X: 0.5, Y: 0, W: 0.5, H: 0.5}, &s.Cameras[UserCam]),
			scene.ViewFromCamera(scene.Viewport{X: 0.5, Y: 0.5, W: 0.5, H: 0.5}, &s.Cameras[TopCam]),
		}
		div := scene.ViewFromCamera(scene.FullViewport, &s.Cameras[DividerCam])
		div.Layer = scene.LayerOverlay
		f.Views = append(f.Views, div)
	} else {
		f.Views = []scene.View{scene.ViewFromCamera(scene.FullViewport, &s.Cameras[UserCam])}
	}

	f.Items = []scene.DrawItem{
		{
			Name: Floor, Mesh: s.floor, Model: s.Model.Get(Floor),
			Material: &scene.FloorMaterial, Texture: texture.Checkerboard, Reflective: true,
		},
		{
			Name: Cube, Mesh: s.models.Mesh(model.Cube), Model: s.Model.Get(Cube),
			Material: &scene.Pearl, Texture: texture.Smile,
		},
		{
			Name: Torus, Mesh: s.models.Mesh(model.Torus), Model: s.Model.Get(Torus),
			Material: &scene.TorusMaterial, Alpha: s.ObjectAlpha,
		},
	}
	for i := 0; i < walls; i++ {
		name := WallName(i)
		f.Items = append(f.Items, scene.DrawItem{
			Name: name, Mesh: s.wall, Model: s.Model.Get(name),
			Material: &scene.WallMaterial, Texture: texture.Fieldstone,
		})
	}
	if s.MultiView {
		f.Items = append(f.Items, scene.DrawItem{
			Name: Divider, Mesh: s.dividers, Model: s.Model.Get(Divider), Layer: scene.LayerOverlay,
		})
	}
	return f
}
