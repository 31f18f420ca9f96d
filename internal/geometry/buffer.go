package geometry

import "github.com/go-gl/mathgl/mgl64"

// Layout flags the optional attributes stored per vertex.
// Position is always present.
type Layout uint8

const (
	AttrColor Layout = 1 << iota
	AttrNormal
	AttrTangent
	AttrTexCoord
)

// Has reports whether all attributes in a are present.
func (l Layout) Has(a Layout) bool {
	return l&a == a
}

// Stride returns the number of float32 values per vertex.
func (l Layout) Stride() int {
	n := 3
	if l.Has(AttrColor) {
		n += 3
	}
	if l.Has(AttrNormal) {
		n += 3
	}
	if l.Has(AttrTangent) {
		n += 3
	}
	if l.Has(AttrTexCoord) {
		n += 2
	}
	return n
}

// Vertex is the unpacked form of one buffer entry.
// Attributes absent from the layout are zero.
type Vertex struct {
	Pos     mgl64.Vec3
	Color   mgl64.Vec3
	Normal  mgl64.Vec3
	Tangent mgl64.Vec3
	UV      mgl64.Vec2
}

// Buffer is a flat interleaved vertex store, laid out like a GPU vertex buffer:
// position, then color, normal, tangent and texcoord when present.
type Buffer struct {
	Layout Layout
	Data   []float32
}

// NewBuffer returns an empty buffer for the given layout.
func NewBuffer(layout Layout) *Buffer {
	return &Buffer{Layout: layout}
}

// Len returns the number of vertices.
func (b *Buffer) Len() int {
	return len(b.Data) / b.Layout.Stride()
}

// Append packs v and returns its index.
func (b *Buffer) Append(v Vertex) int {
	idx := b.Len()
	b.Data = appendVec3(b.Data, v.Pos)
	if b.Layout.Has(AttrColor) {
		b.Data = appendVec3(b.Data, v.Color)
	}
	if b.Layout.Has(AttrNormal) {
		b.Data = appendVec3(b.Data, v.Normal)
	}
	if b.Layout.Has(AttrTangent) {
		b.Data = appendVec3(b.Data, v.Tangent)
	}
	if b.Layout.Has(AttrTexCoord) {
		b.Data = append(b.Data, float32(v.UV[0]), float32(v.UV[1]))
	}
	return idx
}

// Vertex unpacks vertex i.
func (b *Buffer) Vertex(i int) Vertex {
	stride := b.Layout.Stride()
	d := b.Data[i*stride : (i+1)*stride]
	var v Vertex
	v.Pos, d = readVec3(d)
	if b.Layout.Has(AttrColor) {
		v.Color, d = readVec3(d)
	}
	if b.Layout.Has(AttrNormal) {
		v.Normal, d = readVec3(d)
	}
	if b.Layout.Has(AttrTangent) {
		v.Tangent, d = readVec3(d)
	}
	if b.Layout.Has(AttrTexCoord) {
		v.UV = mgl64.Vec2{float64(d[0]), float64(d[1])}
	}
	return v
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{Layout: b.Layout, Data: append([]float32(nil), b.Data...)}
}

func appendVec3(dst []float32, v mgl64.Vec3) []float32 {
	return append(dst, float32(v[0]), float32(v[1]), float32(v[2]))
}

func readVec3(d []float32) (mgl64.Vec3, []float32) {
	return mgl64.Vec3{float64(d[0]), float64(d[1]), float64(d[2])}, d[3:]
}
