package raster

import (
	"image"
	"math"
)

// Vertex is a post-projection vertex in window space.
type Vertex struct {
	X, Y float64    // pixels, origin top-left
	Z    float64    // depth in [0, 1]
	InvW float64    // 1/w of the clip-space position
	C    [4]float64 // RGBA in [0, 1]
	U, V float64
}

// Triangle fills a triangle with perspective-correct colour and texcoords.
// When tex is non-nil the texel is multiplied by the interpolated colour.
//
// This is the hot path and does not allocate.
func Triangle(fb *FrameBuffer, st *State, a, b, c Vertex, tex *image.NRGBA) {
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y
	x2, y2 := c.X, c.Y

	// Bounding box clipped to the viewport
	vp := st.Viewport.Intersect(fb.Bounds())
	minX := max(int(math.Floor(min(x0, x1, x2))), vp.Min.X)
	maxX := min(int(math.Ceil(max(x0, x1, x2))), vp.Max.X-1)
	minY := max(int(math.Floor(min(y0, y1, y2))), vp.Min.Y)
	maxY := min(int(math.Ceil(max(y0, y1, y2))), vp.Max.Y-1)
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-12 && det < 1e-12 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -1e-9 || w1 < -1e-9 || w2 < -1e-9 {
				continue
			}

			z := w0*a.Z + w1*b.Z + w2*c.Z

			// Perspective-correct weights
			p0, p1, p2 := w0*a.InvW, w1*b.InvW, w2*c.InvW
			sum := p0 + p1 + p2
			if sum <= 0 {
				p0, p1, p2 = w0, w1, w2
			} else {
				inv := 1 / sum
				p0 *= inv
				p1 *= inv
				p2 *= inv
			}

			r := p0*a.C[0] + p1*b.C[0] + p2*c.C[0]
			g := p0*a.C[1] + p1*b.C[1] + p2*c.C[1]
			bl := p0*a.C[2] + p1*b.C[2] + p2*c.C[2]
			al := p0*a.C[3] + p1*b.C[3] + p2*c.C[3]

			if tex != nil {
				u := p0*a.U + p1*b.U + p2*c.U
				v := p0*a.V + p1*b.V + p2*c.V
				tr, tg, tb, ta := SampleTexture(tex, u, v)
				// Skip transparent texels
				if ta == 0 {
					continue
				}
				r *= float64(tr) / 255
				g *= float64(tg) / 255
				bl *= float64(tb) / 255
				al *= float64(ta) / 255
			}

			fb.fragment(st, rowOff+sx, z, r, g, bl, al)
		}
	}
}

// Line draws a one-pixel line with linearly interpolated depth and colour.
func Line(fb *FrameBuffer, st *State, a, b Vertex) {
	vp := st.Viewport.Intersect(fb.Bounds())
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(math.Ceil(max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	inv := 1 / float64(steps)
	for i := 0; i <= steps; i++ {
		t := float64(i) * inv
		x := int(math.Floor(a.X + dx*t))
		y := int(math.Floor(a.Y + dy*t))
		if x < vp.Min.X || x >= vp.Max.X || y < vp.Min.Y || y >= vp.Max.Y {
			continue
		}
		z := a.Z + (b.Z-a.Z)*t
		fb.fragment(st, y*fb.Width+x, z,
			a.C[0]+(b.C[0]-a.C[0])*t,
			a.C[1]+(b.C[1]-a.C[1])*t,
			a.C[2]+(b.C[2]-a.C[2])*t,
			a.C[3]+(b.C[3]-a.C[3])*t)
	}
}

// Point draws a size×size square centred on v.
func Point(fb *FrameBuffer, st *State, v Vertex, size float64) {
	if size < 1 {
		size = 1
	}
	vp := st.Viewport.Intersect(fb.Bounds())
	half := size / 2
	px := int(math.Floor(v.X - half + 0.5))
	py := int(math.Floor(v.Y - half + 0.5))
	x0, y0 := max(px, vp.Min.X), max(py, vp.Min.Y)
	x1, y1 := min(px+int(size), vp.Max.X), min(py+int(size), vp.Max.Y)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			fb.fragment(st, y*fb.Width+x, v.Z, v.C[0], v.C[1], v.C[2], v.C[3])
		}
	}
}
