// Package orbit is a lit three-body system: a centre object, a planet
// orbiting it and a moon orbiting the planet.
package orbit

import (
	"github.com/go-gl/mathgl/mgl64"

	"toy-scene-renderer/internal/geometry"
	"toy-scene-renderer/internal/mathutil"
	"toy-scene-renderer/internal/model"
	"toy-scene-renderer/internal/scene"
	"toy-scene-renderer/internal/tweak"
)

var _ scene.Scene = (*Scene)(nil)

const (
	Width  = 1400
	Height = 768

	OrbitRadius = 3.0
	orbitStep   = 0.01
)

// Object names in the transform table.
const (
	Object1    = "Object1"
	Object2    = "Object2"
	Object3    = "Object3"
	OrbitLine1 = "OrbitLine1"
	OrbitLine2 = "OrbitLine2"
)

// MaterialKind selects one of the preset materials.
type MaterialKind int

const (
	SomeOther MaterialKind = iota
	Jade
	Pearl
)

var materialNames = []string{"SomeOtherMaterial", "Jade", "Pearl"}

func (m MaterialKind) Material() *scene.Material {
	switch m {
	case Jade:
		return &scene.Jade
	case Pearl:
		return &scene.Pearl
	}
	return &scene.SomeOtherMaterial
}

// Camera presets selected with keys 1 to 3. All look at the origin.
var (
	DefaultView = mgl64.Vec3{0, 3, 9}
	FrontView   = mgl64.Vec3{0, 0, 9}
	TopView     = mgl64.Vec3{0, 12, 0.01}
)

// Scene is the orbit demo state.
type Scene struct {
	scene.Base

	// OrbitSpeed and RotationSpeed are in rad/s for object 2 then object 3.
	OrbitSpeed    [2]float64
	RotationSpeed [2]float64
	OrbitAngle    [2]float64
	RotationAngle [2]float64

	Models    [3]model.Kind
	Materials [3]MaterialKind

	Camera scene.Camera
	Light  scene.Light

	models *model.Library
	hier   *scene.Hierarchy

	orbit      *geometry.Mesh
	orbitColor mgl64.Vec3
}

// New builds the scene. Meshes come from lib; a nil lib uses built-in shapes.
func New(lib *model.Library) *Scene {
	if lib == nil {
		lib = model.NewLibrary("")
	}
	s := &Scene{
		Base:          scene.NewBase("Main", Width, Height, 144),
		OrbitSpeed:    [2]float64{0.5, 1},
		RotationSpeed: [2]float64{1, 1},
		Models:        [3]model.Kind{model.Sphere, model.Suzanne, model.Cube},
		Materials:     [3]MaterialKind{SomeOther, Jade, Pearl},
		Light: scene.Light{
			Kind: scene.DirectionalLight,
			Dir:  mgl64.Vec3{0.3, -0.7, -0.5},
			La:   mgl64.Vec3{0.8, 0.8, 0.8},
			Ld:   mgl64.Vec3{0.8, 0.8, 0.8},
			Ls:   mgl64.Vec3{0.8, 0.8, 0.8},
		},
		models:     lib,
		orbitColor: mgl64.Vec3{1, 1, 1},
	}
	s.Camera.SetViewMatrix(DefaultView, mgl64.Vec3{})
	s.Camera.SetProjMatrix(scene.Perspective(45, float64(Width)/float64(Height), 0.1, 20))
	s.RegenerateOrbit(OrbitRadius)
	s.buildHierarchy()
	s.buildBar()
	s.hier.Update(s.Model)
	return s
}

func (s *Scene) Name() string { return "orbit" }

// RegenerateOrbit rebuilds the orbit line buffer at the given radius.
func (s *Scene) RegenerateOrbit(radius float64) {
	b := geometry.NewBuffer(geometry.AttrColor)
	r := geometry.OrbitLoop(b, radius, orbitStep, s.orbitColor)
	s.orbit = &geometry.Mesh{Name: "orbit", Buffer: b, Ranges: []geometry.Range{r}}
}

// OrbitMesh returns the current orbit line mesh.
func (s *Scene) OrbitMesh() *geometry.Mesh { return s.orbit }

// Update applies one frame of input and advances the orbits.
func (s *Scene) Update(in scene.Input, dt float64) scene.Action {
	if in.JustPressed(scene.KeyEscape) {
		return scene.Close
	}
	switch {
	case in.JustPressed(scene.Key1):
		s.Camera.SetViewMatrix(DefaultView, mgl64.Vec3{})
	case in.JustPressed(scene.Key2):
		s.Camera.SetViewMatrix(FrontView, mgl64.Vec3{})
	case in.JustPressed(scene.Key3):
		s.Camera.SetViewMatrix(TopView, mgl64.Vec3{})
	}

	for i := range s.OrbitAngle {
		s.OrbitAngle[i] += s.OrbitSpeed[i] * dt
		s.RotationAngle[i] += s.RotationSpeed[i] * dt
	}

	s.Advance(dt)
	s.hier.Update(s.Model)
	return scene.Continue
}

// Frame snapshots the scene for drawing.
func (s *Scene) Frame() *scene.Frame {
	f := s.NewFrame()
	f.DepthTest = true
	light := s.Light
	f.Light = &light
	f.Views = []scene.View{scene.ViewFromCamera(scene.FullViewport, &s.Camera)}

	for i, name := range []string{Object1, Object2, Object3} {
		f.Items = append(f.Items, scene.DrawItem{
			Name:     name,
			Mesh:     s.models.Mesh(s.Models[i]),
			Model:    s.Model.Get(name),
			Material: s.Materials[i].Material(),
		})
	}
	for _, name := range []string{OrbitLine1, OrbitLine2} {
		f.Items = append(f.Items, scene.DrawItem{Name: name, Mesh: s.orbit, Model: s.Model.Get(name)})
	}
	return f
}

func (s *Scene) buildHierarchy() {
	h := scene.NewHierarchy()
	h.MustAdd(scene.Node{Name: Object1})
	h.MustAdd(scene.Node{Name: Object2, Local: func() mgl64.Mat4 {
		return mathutil.Compose(
			mathutil.RotY(s.OrbitAngle[0]),
			mathutil.Translate(mgl64.Vec3{OrbitRadius, 0, 0}),
			mathutil.RotY(s.RotationAngle[0]),
			mathutil.Scale(mgl64.Vec3{0.5, 0.5, 0.5}),
		)
	}})
	// object 3 follows object 2's position only, not its spin or scale
	h.MustAdd(scene.Node{Name: Object3, Local: func() mgl64.Mat4 {
		return mathutil.Compose(
			mathutil.Translate(mathutil.Position(s.Model.Get(Object2))),
			mathutil.RotY(s.OrbitAngle[1]),
			mathutil.Translate(mgl64.Vec3{OrbitRadius / 2, 0, 0}),
			mathutil.RotY(s.RotationAngle[1]),
			mathutil.Scale(mgl64.Vec3{0.25, 0.25, 0.25}),
		)
	}})
	h.MustAdd(scene.Node{Name: OrbitLine1})
	h.MustAdd(scene.Node{Name: OrbitLine2, Parent: Object2})
	s.hier = h
}

func (s *Scene) buildBar() {
	s.BindStats()
	b := s.Bar()
	b.AddBool("Wireframe", "Controls", &s.Wireframe)
	for i, group := range []string{"Object 1", "Object 2", "Object 3"} {
		n := group[len(group)-1:]
		tweak.AddEnum(b, "Model "+n, group, &s.Models[i], model.KindNames())
		tweak.AddEnum(b, "Material "+n, group, &s.Materials[i], materialNames)
		if i == 0 {
			continue
		}
		b.AddFloat("Orbit Speed "+n, group, &s.OrbitSpeed[i-1], -2, 2, 0.01)
		b.AddFloat("Rotation Speed "+n, group, &s.RotationSpeed[i-1], -2, 2, 0.01)
	}
}
