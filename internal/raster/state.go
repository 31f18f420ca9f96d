package raster

import "image"

// StencilFunc selects the stencil comparison.
type StencilFunc int

const (
	StencilOff StencilFunc = iota
	StencilAlways
	StencilEqual
)

// State is the fixed-function pipeline state applied to every fragment.
type State struct {
	Viewport image.Rectangle // pixel rect, origin top-left

	DepthTest  bool
	DepthWrite bool
	ColorWrite bool

	Stencil        StencilFunc
	StencilRef     uint8
	StencilReplace bool // write StencilRef wherever the stencil test passes

	// Blend mixes colour as src·a + dst·(1−a); destination alpha takes src alpha.
	Blend bool
}

// DefaultState enables depth testing and all writes over vp.
func DefaultState(vp image.Rectangle) State {
	return State{Viewport: vp, DepthTest: true, DepthWrite: true, ColorWrite: true}
}

// fragment runs the per-pixel tests and writes for pixel index i.
// Colour components are in [0, 1].
func (fb *FrameBuffer) fragment(st *State, i int, z float64, r, g, b, a float64) {
	switch st.Stencil {
	case StencilEqual:
		if fb.Stencil[i] != st.StencilRef {
			return
		}
	}
	if st.Stencil != StencilOff && st.StencilReplace {
		fb.Stencil[i] = st.StencilRef
	}
	if st.DepthTest && z >= fb.Depth[i] {
		return
	}
	if st.DepthWrite {
		fb.Depth[i] = z
	}
	if !st.ColorWrite {
		return
	}

	p := i * 4
	inv := 1 - a
	if st.Blend {
		r = r*a + float64(fb.Color[p])/255*inv
		g = g*a + float64(fb.Color[p+1])/255*inv
		b = b*a + float64(fb.Color[p+2])/255*inv
	}
	fb.Color[p] = clamp255(r * 255)
	fb.Color[p+1] = clamp255(g * 255)
	fb.Color[p+2] = clamp255(b * 255)
	// coverage composites source-over, so a buffer cleared opaque stays opaque
	fb.Color[p+3] = clamp255((a + float64(fb.Color[p+3])/255*inv) * 255)
}
