package scene

import (
	"toy-scene-renderer/internal/tweak"
)

// Action is a scene's request to the harness after an update.
type Action int

const (
	Continue Action = iota
	Close
)

// Scene is one demo: it owns its state, reacts to input and produces frames.
// Update and Frame are called from a single goroutine.
type Scene interface {
	Name() string
	// Size is the preferred window size in pixels.
	Size() (w, h int)
	Update(in Input, dt float64) Action
	Frame() *Frame
	Transforms() Transforms
	Bar() *tweak.Bar
	Stats() *FrameStats
}

// Base carries the state every demo shares.
type Base struct {
	Width, Height int
	Model         Transforms
	Wireframe     bool
	Clock         float64

	stats FrameStats
	bar   *tweak.Bar
}

// NewBase builds the shared state and a bar pre-populated with frame stats.
func NewBase(label string, w, h int, rate float64) Base {
	return Base{
		Width:  w,
		Height: h,
		Model:  make(Transforms),
		stats:  NewFrameStats(rate),
		bar:    tweak.NewBar(label),
	}
}

// BindStats registers the frame-stat entries on the bar. Call once the Base
// has reached its final address.
func (b *Base) BindStats() {
	b.bar.AddFloatRO("Frame Rate", "Frame Stats", &b.stats.FrameRate, 2)
	b.bar.AddFloatRO("Frame Time", "Frame Stats", &b.stats.FrameTime, 5)
}

func (b *Base) Size() (int, int) { return b.Width, b.Height }
func (b *Base) Transforms() Transforms { return b.Model }
func (b *Base) Bar() *tweak.Bar { return b.bar }
func (b *Base) Stats() *FrameStats { return &b.stats }

// Advance moves the scene clock.
func (b *Base) Advance(dt float64) {
	b.Clock += dt
}

// NewFrame starts a frame snapshot with the shared fields filled in.
func (b *Base) NewFrame() *Frame {
	return &Frame{
		Width:     b.Width,
		Height:    b.Height,
		Wireframe: b.Wireframe,
		HUD:       b.bar.Lines(),
		Time:      b.Clock,
	}
}
