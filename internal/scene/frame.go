package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"toy-scene-renderer/internal/geometry"
)

// Layers separate scene geometry from screen-space overlays.
const (
	LayerScene = iota
	LayerOverlay
)

// Viewport is a window sub-rectangle in normalised coordinates with the
// origin at the bottom-left, as glViewport.
type Viewport struct {
	X, Y, W, H float64
}

// FullViewport covers the whole window.
var FullViewport = Viewport{0, 0, 1, 1}

// View is one camera rendered into one viewport.
type View struct {
	Viewport Viewport
	View     mgl64.Mat4
	Proj     mgl64.Mat4
	Eye      mgl64.Vec3
	Layer    int
}

// ViewFromCamera snapshots a camera.
func ViewFromCamera(vp Viewport, c *Camera) View {
	return View{Viewport: vp, View: c.View(), Proj: c.Proj, Eye: c.Position}
}

// DrawItem is one draw call: a mesh (or some of its ranges) under a model
// matrix with a material.
type DrawItem struct {
	Name string
	Mesh *geometry.Mesh
	// Ranges overrides Mesh.Ranges when non-nil.
	Ranges []geometry.Range
	Model  mgl64.Mat4
	// Material nil draws unlit with vertex colours (or Color).
	Material *Material
	// Color is used when the buffer carries no colour attribute.
	Color   mgl64.Vec3
	Texture string
	// Alpha below 1 blends the item over what is behind it; 0 is opaque.
	Alpha     float64
	PointSize float64
	Layer     int
	// Reflective marks the mirror surface of a planar reflection.
	Reflective bool
}

// DrawRanges returns the ranges to draw.
func (d *DrawItem) DrawRanges() []geometry.Range {
	if d.Ranges != nil {
		return d.Ranges
	}
	return d.Mesh.Ranges
}

// Reflection configures the planar mirror pass about y=0.
type Reflection struct {
	// Alpha is the opacity of the surface drawn over its reflection.
	Alpha float64
}

// Frame is an immutable snapshot of everything needed to draw one frame.
type Frame struct {
	Width, Height int
	Background    mgl64.Vec3
	Wireframe     bool
	// DepthTest enables the z-buffer; 2D scenes draw in item order.
	DepthTest  bool
	Light      *Light
	Views      []View
	Items      []DrawItem
	Reflection *Reflection
	// HUD is the tweak-bar text at snapshot time.
	HUD []string
	// Time is the simulated scene time in seconds.
	Time float64
}
