// Package gallery draws one of each basic primitive: points, lines,
// triangles and a strip.
package gallery

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"toy-scene-renderer/internal/geometry"
	"toy-scene-renderer/internal/scene"
)

var _ scene.Scene = (*Scene)(nil)

const (
	Width     = 1024
	Height    = 768
	PointSize = 10
)

// Backgrounds is the B-key cycle, starting from grey.
var Backgrounds = []mgl64.Vec3{
	{0.2, 0.2, 0.2},
	{1, 1, 1},
	{1, 0.816, 0},
	{0.078, 0.89, 0.949},
	{0.6, 0, 0.518},
}

var red = mgl64.Vec3{1, 0, 0}

var positions = []mgl64.Vec3{
	// points
	{-0.9, -0.9, 0}, {-0.8, -0.9, 0}, {-0.7, -0.9, 0},
	{-0.6, -0.9, 0}, {-0.5, -0.9, 0}, {-0.4, -0.9, 0},
	// lines
	{0.6, 1, 0}, {1, 0.3, 0},
	{0.5, 1, 0}, {1, 0.13, 0},
	{0.4, 1, 0}, {1, -0.05, 0},
	// corner triangles
	{-0.9, 0.9, 0}, {-0.65, 0.9, 0}, {-0.9, 0.65, 0},
	{0.9, -0.9, 0}, {0.65, -0.9, 0}, {0.9, -0.65, 0},
	// centre quad
	{-0.3, 0.3, 0}, {0.3, 0.3, 0}, {-0.3, -0.3, 0}, {0.3, -0.3, 0},
}

// Click is a logged left-button press in window pixels.
type Click struct {
	X, Y float64
}

// Scene is the primitive gallery state.
type Scene struct {
	scene.Base

	BackgroundIndex int
	Clicks          []Click

	mesh *geometry.Mesh
}

// New builds the gallery.
func New() *Scene {
	s := &Scene{Base: scene.NewBase("Main", Width, Height, 60)}

	b := geometry.NewBuffer(geometry.AttrColor)
	for _, p := range positions {
		b.Append(geometry.Vertex{Pos: p, Color: red})
	}
	s.mesh = &geometry.Mesh{Name: "gallery", Buffer: b, Ranges: []geometry.Range{
		{Mode: geometry.Points, First: 0, Count: 6},
		{Mode: geometry.Lines, First: 6, Count: 6},
		{Mode: geometry.Triangles, First: 12, Count: 6},
		{Mode: geometry.TriangleStrip, First: 18, Count: 4},
	}}

	s.BindStats()
	s.Bar().AddBool("Wireframe", "Controls", &s.Wireframe)
	return s
}

func (s *Scene) Name() string { return "gallery" }

// Background returns the current clear colour.
func (s *Scene) Background() mgl64.Vec3 {
	return Backgrounds[s.BackgroundIndex]
}

// Update handles the key and mouse bindings.
func (s *Scene) Update(in scene.Input, dt float64) scene.Action {
	if in.JustPressed(scene.KeyEscape) || in.JustPressed(scene.MouseRight) {
		return scene.Close
	}
	if in.JustPressed(scene.KeyB) {
		s.BackgroundIndex = (s.BackgroundIndex + 1) % len(Backgrounds)
	}
	if in.JustPressed(scene.KeyW) {
		s.Wireframe = !s.Wireframe
	}
	if in.JustPressed(scene.MouseLeft) {
		x, y := in.Cursor()
		s.Clicks = append(s.Clicks, Click{X: x, Y: y})
		slog.Info("click", "x", x, "y", y)
	}
	s.Advance(dt)
	return scene.Continue
}

// Frame snapshots the gallery. Everything is drawn in clip space.
func (s *Scene) Frame() *scene.Frame {
	f := s.NewFrame()
	f.Background = s.Background()
	f.Views = []scene.View{{Viewport: scene.FullViewport, View: mgl64.Ident4(), Proj: mgl64.Ident4()}}
	f.Items = []scene.DrawItem{{Name: "Primitives", Mesh: s.mesh, Model: mgl64.Ident4(), PointSize: PointSize}}
	return f
}
