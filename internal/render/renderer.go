package render

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"toy-scene-renderer/internal/geometry"
	"toy-scene-renderer/internal/mathutil"
	"toy-scene-renderer/internal/raster"
	"toy-scene-renderer/internal/scene"
	"toy-scene-renderer/internal/texture"
)

// Renderer draws frame snapshots into a software frame buffer.
// It holds no per-frame state and is safe to share between goroutines.
type Renderer struct {
	// Textures resolves DrawItem.Texture names; nil disables texturing.
	Textures texture.Resolver
}

// New returns a renderer using the given texture resolver.
func New(textures texture.Resolver) *Renderer {
	return &Renderer{Textures: textures}
}

// Render clears fb to the frame background and draws every view.
func (r *Renderer) Render(fb *raster.FrameBuffer, f *scene.Frame) {
	fb.Clear(f.Background)
	for i := range f.Views {
		v := &f.Views[i]
		vp := PixelRect(v.Viewport, fb.Width, fb.Height)
		if f.Reflection != nil && v.Layer == scene.LayerScene {
			r.drawReflected(fb, f, v, vp)
			continue
		}
		st := raster.DefaultState(vp)
		// overlays paint over the scene
		st.DepthTest = f.DepthTest && v.Layer == scene.LayerScene
		for j := range f.Items {
			it := &f.Items[j]
			if it.Layer != v.Layer {
				continue
			}
			r.drawItem(fb, &st, f, v, it, it.Model, f.Light)
		}
	}
}

// drawReflected renders a planar mirror about y=0:
// mark the reflective surface in the stencil buffer, draw the mirrored
// objects where it is marked, blend the surface over them, then draw the
// objects themselves.
func (r *Renderer) drawReflected(fb *raster.FrameBuffer, f *scene.Frame, v *scene.View, vp image.Rectangle) {
	var mirrored *scene.Light
	if f.Light != nil {
		l := f.Light.Transformed(mathutil.ReflectY)
		mirrored = &l
	}

	// 1. stencil only
	mark := raster.State{
		Viewport:       vp,
		DepthTest:      true,
		Stencil:        raster.StencilAlways,
		StencilRef:     1,
		StencilReplace: true,
	}
	r.eachItem(f, v, true, func(it *scene.DrawItem) {
		r.drawItem(fb, &mark, f, v, it, it.Model, f.Light)
	})

	// 2. reflected objects inside the mark
	inside := raster.DefaultState(vp)
	inside.Stencil = raster.StencilEqual
	inside.StencilRef = 1
	r.eachItem(f, v, false, func(it *scene.DrawItem) {
		r.drawItem(fb, &inside, f, v, it, mathutil.ReflectY.Mul4(it.Model), mirrored)
	})

	// 3. the surface, blended at the reflection alpha
	surface := raster.DefaultState(vp)
	r.eachItem(f, v, true, func(it *scene.DrawItem) {
		blended := *it
		blended.Alpha = f.Reflection.Alpha
		r.drawItem(fb, &surface, f, v, &blended, it.Model, f.Light)
	})

	// 4. the scene
	normal := raster.DefaultState(vp)
	r.eachItem(f, v, false, func(it *scene.DrawItem) {
		r.drawItem(fb, &normal, f, v, it, it.Model, f.Light)
	})
}

func (r *Renderer) eachItem(f *scene.Frame, v *scene.View, reflective bool, fn func(*scene.DrawItem)) {
	for i := range f.Items {
		it := &f.Items[i]
		if it.Layer == v.Layer && it.Reflective == reflective {
			fn(it)
		}
	}
}

// drawItem transforms the item's vertices and rasterises its ranges.
func (r *Renderer) drawItem(fb *raster.FrameBuffer, base *raster.State, f *scene.Frame, v *scene.View,
	it *scene.DrawItem, model mgl64.Mat4, light *scene.Light) {
	if it.Mesh == nil || it.Mesh.Buffer == nil {
		return
	}

	alpha := it.Alpha
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	st := *base
	if alpha < 1 && st.ColorWrite {
		st.Blend = true
	}

	var tex *image.NRGBA
	if it.Texture != "" && r.Textures != nil && it.Mesh.Buffer.Layout.Has(geometry.AttrTexCoord) {
		tex = r.Textures.Resolve(it.Texture)
	}

	verts, ok := project(it, model, v, light, alpha, st.Viewport)

	for _, rg := range it.DrawRanges() {
		switch rg.Mode {
		case geometry.Points:
			for _, i := range rg.Elements() {
				if i < len(verts) && ok[i] {
					raster.Point(fb, &st, verts[i], it.PointSize)
				}
			}
		case geometry.Lines, geometry.LineLoop:
			for _, s := range rg.Segments() {
				if inRange(ok, s[0], s[1]) {
					raster.Line(fb, &st, verts[s[0]], verts[s[1]])
				}
			}
		default:
			for _, t := range rg.Triangles() {
				if !inRange(ok, t[0], t[1], t[2]) {
					continue
				}
				a, b, c := verts[t[0]], verts[t[1]], verts[t[2]]
				if f.Wireframe {
					raster.Line(fb, &st, a, b)
					raster.Line(fb, &st, b, c)
					raster.Line(fb, &st, c, a)
					continue
				}
				raster.Triangle(fb, &st, a, b, c, tex)
			}
		}
	}
}

// project runs the per-vertex stage: clip-space transform, viewport mapping
// and lighting. ok[i] is false for vertices behind the near plane.
func project(it *scene.DrawItem, model mgl64.Mat4, v *scene.View, light *scene.Light,
	alpha float64, vp image.Rectangle) ([]raster.Vertex, []bool) {
	buf := it.Mesh.Buffer
	n := buf.Len()
	verts := make([]raster.Vertex, n)
	ok := make([]bool, n)

	mvp := v.Proj.Mul4(v.View).Mul4(model)
	normalMat := mathutil.NormalMatrix(model)
	lit := it.Material != nil && light != nil && buf.Layout.Has(geometry.AttrNormal)
	hasColor := buf.Layout.Has(geometry.AttrColor)

	vx, vy := float64(vp.Min.X), float64(vp.Min.Y)
	vw, vh := float64(vp.Dx()), float64(vp.Dy())

	for i := 0; i < n; i++ {
		src := buf.Vertex(i)
		clip := mvp.Mul4x1(src.Pos.Vec4(1))
		w := clip[3]
		if w <= 1e-9 || clip[2] < -w {
			continue
		}
		ok[i] = true

		invW := 1 / w
		ndcX, ndcY, ndcZ := clip[0]*invW, clip[1]*invW, clip[2]*invW

		var c mgl64.Vec3
		switch {
		case lit:
			pos := mathutil.MulPoint(model, src.Pos)
			nrm := normalMat.Mul3x1(src.Normal)
			if l := nrm.Len(); l > 1e-12 {
				nrm = nrm.Mul(1 / l)
			}
			c = raster.Phong(it.Material, light, pos, nrm, v.Eye)
		case hasColor:
			c = src.Color
		default:
			c = it.Color
		}

		verts[i] = raster.Vertex{
			X:    vx + (ndcX+1)*0.5*vw,
			Y:    vy + (1-ndcY)*0.5*vh,
			Z:    (ndcZ + 1) * 0.5,
			InvW: invW,
			C:    [4]float64{c[0], c[1], c[2], alpha},
			U:    src.UV[0],
			V:    src.UV[1],
		}
	}
	return verts, ok
}

func inRange(ok []bool, idx ...int) bool {
	for _, i := range idx {
		if i < 0 || i >= len(ok) || !ok[i] {
			return false
		}
	}
	return true
}

// PixelRect maps a normalised bottom-left-origin viewport to a pixel
// rectangle with a top-left origin.
func PixelRect(vp scene.Viewport, w, h int) image.Rectangle {
	fw, fh := float64(w), float64(h)
	x0 := int(math.Round(vp.X * fw))
	x1 := int(math.Round((vp.X + vp.W) * fw))
	y0 := h - int(math.Round((vp.Y+vp.H)*fh))
	y1 := h - int(math.Round(vp.Y*fh))
	return image.Rect(x0, y0, x1, y1)
}
