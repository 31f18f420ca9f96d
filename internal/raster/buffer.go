package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width   int
	Height  int
	Color   []uint8   // RGBA interleaved, len = W*H*4
	Depth   []float64 // window-space depth per pixel, cleared to +inf
	Stencil []uint8   // len = W*H
}

// NewFrameBuffer allocates a cleared frame buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	fb := &FrameBuffer{
		Width:   w,
		Height:  h,
		Color:   make([]uint8, n*4),
		Depth:   make([]float64, n),
		Stencil: make([]uint8, n),
	}
	fb.Clear(mgl64.Vec3{})
	return fb
}

// Clear fills colour with bg (opaque), depth with +inf and stencil with 0.
func (fb *FrameBuffer) Clear(bg mgl64.Vec3) {
	r, g, b := clamp255(bg[0]*255), clamp255(bg[1]*255), clamp255(bg[2]*255)
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = r
		fb.Color[i+1] = g
		fb.Color[i+2] = b
		fb.Color[i+3] = 255
	}
	inf := math.Inf(1)
	for i := range fb.Depth {
		fb.Depth[i] = inf
	}
	clear(fb.Stencil)
}

// At returns the colour of pixel (x, y), origin top-left.
func (fb *FrameBuffer) At(x, y int) color.NRGBA {
	i := (y*fb.Width + x) * 4
	return color.NRGBA{R: fb.Color[i], G: fb.Color[i+1], B: fb.Color[i+2], A: fb.Color[i+3]}
}

// Image copies the colour buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

// Bounds returns the full-buffer rectangle.
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
