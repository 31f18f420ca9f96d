// Package clearcolor is an empty window whose clear colour follows the
// keyboard.
package clearcolor

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"toy-scene-renderer/internal/scene"
)

var _ scene.Scene = (*Scene)(nil)

const (
	Width  = 800
	Height = 600
)

var (
	Grey   = mgl64.Vec3{0.2, 0.2, 0.2}
	Red    = mgl64.Vec3{1, 0.2, 0.2}
	Yellow = mgl64.Vec3{1, 1, 0.2}
	White  = mgl64.Vec3{1, 1, 1}
)

// Scene holds the current clear colour.
type Scene struct {
	scene.Base

	Background mgl64.Vec3
}

// New starts on grey.
func New() *Scene {
	s := &Scene{Base: scene.NewBase("Main", Width, Height, 60), Background: Grey}
	s.BindStats()
	s.Bar().AddColor("Background", "Display", &s.Background)
	return s
}

func (s *Scene) Name() string { return "clear" }

// Update maps Q, W and E to red, yellow and white. Holding a key keeps it
// applied.
func (s *Scene) Update(in scene.Input, dt float64) scene.Action {
	if in.JustPressed(scene.KeyEscape) || in.JustPressed(scene.MouseRight) {
		return scene.Close
	}
	switch {
	case in.Down(scene.KeyQ):
		s.Background = Red
	case in.Down(scene.KeyW):
		s.Background = Yellow
	case in.Down(scene.KeyE):
		s.Background = White
	}
	if in.JustPressed(scene.MouseLeft) {
		x, y := in.Cursor()
		slog.Info("click", "x", x, "y", y)
	}
	s.Advance(dt)
	return scene.Continue
}

// Frame is a single view with nothing in it.
func (s *Scene) Frame() *scene.Frame {
	f := s.NewFrame()
	f.Background = s.Background
	f.Views = []scene.View{{Viewport: scene.FullViewport, View: mgl64.Ident4(), Proj: mgl64.Ident4()}}
	return f
}
