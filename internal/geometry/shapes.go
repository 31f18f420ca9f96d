package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// LitLayout is the layout of the procedural meshes: normals and texcoords.
const LitLayout = AttrNormal | AttrTexCoord

func indexed(name string, b *Buffer, idx []uint32) *Mesh {
	return &Mesh{
		Name:   name,
		Buffer: b,
		Ranges: []Range{{Mode: Triangles, Count: len(idx), Indices: idx}},
	}
}

// Cube returns an axis-aligned cube of edge length size centred at the origin,
// with per-face normals and a full [0,1] texture on every face.
func Cube(size float64) *Mesh {
	h := size / 2
	faces := []struct {
		n, u, v mgl64.Vec3
	}{
		{mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}},
		{mgl64.Vec3{0, 0, -1}, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 1, 0}},
		{mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 1, 0}},
		{mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 1, 0}},
		{mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}},
		{mgl64.Vec3{0, -1, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1}},
	}

	b := NewBuffer(LitLayout)
	var idx []uint32
	for _, f := range faces {
		base := uint32(b.Len())
		for _, c := range [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			p := f.n.Mul(h).Add(f.u.Mul(c[0] * h)).Add(f.v.Mul(c[1] * h))
			b.Append(Vertex{Pos: p, Normal: f.n, UV: mgl64.Vec2{(c[0] + 1) / 2, (c[1] + 1) / 2}})
		}
		idx = append(idx, base, base+1, base+2, base, base+2, base+3)
	}
	return indexed("cube", b, idx)
}

// Sphere returns a UV sphere.
func Sphere(radius float64, stacks, slices int) *Mesh {
	b := NewBuffer(LitLayout)
	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			n := mgl64.Vec3{
				math.Sin(phi) * math.Cos(theta),
				math.Cos(phi),
				math.Sin(phi) * math.Sin(theta),
			}
			b.Append(Vertex{
				Pos:    n.Mul(radius),
				Normal: n,
				UV:     mgl64.Vec2{float64(j) / float64(slices), 1 - float64(i)/float64(stacks)},
			})
		}
	}
	return indexed("sphere", b, gridIndices(stacks, slices))
}

// Torus returns a ring lying in the XZ plane around the Y axis.
func Torus(major, minor float64, rings, sides int) *Mesh {
	b := NewBuffer(LitLayout)
	for i := 0; i <= rings; i++ {
		u := 2 * math.Pi * float64(i) / float64(rings)
		center := mgl64.Vec3{major * math.Cos(u), 0, major * math.Sin(u)}
		for j := 0; j <= sides; j++ {
			v := 2 * math.Pi * float64(j) / float64(sides)
			n := mgl64.Vec3{math.Cos(v) * math.Cos(u), math.Sin(v), math.Cos(v) * math.Sin(u)}
			b.Append(Vertex{
				Pos:    center.Add(n.Mul(minor)),
				Normal: n,
				UV:     mgl64.Vec2{float64(i) / float64(rings), float64(j) / float64(sides)},
			})
		}
	}
	return indexed("torus", b, gridIndices(rings, sides))
}

// Cylinder returns a capped cylinder of the given height centred at the origin.
func Cylinder(radius, height float64, slices int) *Mesh {
	return frustum("cylinder", radius, radius, height, slices)
}

// Cone returns a capped cone with its apex up, centred at the origin.
func Cone(radius, height float64, slices int) *Mesh {
	return frustum("cone", radius, 0, height, slices)
}

func frustum(name string, bottom, top, height float64, slices int) *Mesh {
	b := NewBuffer(LitLayout)
	var idx []uint32
	h := height / 2
	slope := (bottom - top) / height

	// side
	for j := 0; j <= slices; j++ {
		theta := 2 * math.Pi * float64(j) / float64(slices)
		c, s := math.Cos(theta), math.Sin(theta)
		n := mgl64.Vec3{c, slope, s}.Normalize()
		u := float64(j) / float64(slices)
		b.Append(Vertex{Pos: mgl64.Vec3{bottom * c, -h, bottom * s}, Normal: n, UV: mgl64.Vec2{u, 0}})
		b.Append(Vertex{Pos: mgl64.Vec3{top * c, h, top * s}, Normal: n, UV: mgl64.Vec2{u, 1}})
	}
	for j := 0; j < slices; j++ {
		i0 := uint32(2 * j)
		idx = append(idx, i0, i0+1, i0+2, i0+2, i0+1, i0+3)
	}

	// caps
	for _, cp := range []struct {
		y, r float64
		n    mgl64.Vec3
	}{{-h, bottom, mgl64.Vec3{0, -1, 0}}, {h, top, mgl64.Vec3{0, 1, 0}}} {
		if cp.r <= 0 {
			continue
		}
		center := uint32(b.Append(Vertex{Pos: mgl64.Vec3{0, cp.y, 0}, Normal: cp.n, UV: mgl64.Vec2{0.5, 0.5}}))
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			c, s := math.Cos(theta), math.Sin(theta)
			b.Append(Vertex{
				Pos:    mgl64.Vec3{cp.r * c, cp.y, cp.r * s},
				Normal: cp.n,
				UV:     mgl64.Vec2{0.5 + 0.5*c, 0.5 + 0.5*s},
			})
		}
		for j := uint32(0); j < uint32(slices); j++ {
			idx = append(idx, center, center+1+j, center+2+j)
		}
	}

	return indexed(name, b, idx)
}

// gridIndices triangulates a (rows+1)×(cols+1) vertex grid.
func gridIndices(rows, cols int) []uint32 {
	var idx []uint32
	stride := uint32(cols + 1)
	for i := uint32(0); i < uint32(rows); i++ {
		for j := uint32(0); j < uint32(cols); j++ {
			a := i*stride + j
			b := a + stride
			idx = append(idx, a, b, a+1, a+1, b, b+1)
		}
	}
	return idx
}
