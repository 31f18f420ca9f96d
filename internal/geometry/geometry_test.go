package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// Buffer
// =============================================================================

func TestLayoutStride(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		want   int
	}{
		{"position only", 0, 3},
		{"position color", AttrColor, 6},
		{"position normal texcoord", AttrNormal | AttrTexCoord, 8},
		{"position normal tangent texcoord", AttrNormal | AttrTangent | AttrTexCoord, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.Stride(); got != tt.want {
				t.Errorf("Stride() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBufferAppendVertex(t *testing.T) {
	b := NewBuffer(AttrNormal | AttrTangent | AttrTexCoord)
	v := Vertex{
		Pos:     mgl64.Vec3{-3, 0, -3},
		Normal:  mgl64.Vec3{0, 0, 1},
		Tangent: mgl64.Vec3{1, 0, 0},
		UV:      mgl64.Vec2{4, 2},
	}
	b.Append(Vertex{})
	idx := b.Append(v)
	if idx != 1 || b.Len() != 2 {
		t.Fatalf("idx=%d len=%d", idx, b.Len())
	}
	got := b.Vertex(1)
	if got != v {
		t.Errorf("Vertex(1) = %+v, want %+v", got, v)
	}
	if got.Color != (mgl64.Vec3{}) {
		t.Errorf("absent colour should be zero")
	}
}

func TestBufferClone(t *testing.T) {
	b := NewBuffer(AttrColor)
	b.Append(Vertex{Pos: mgl64.Vec3{1, 2, 3}})
	c := b.Clone()
	c.Data[0] = 9
	if b.Data[0] != 1 {
		t.Errorf("Clone shares storage")
	}
}

// =============================================================================
// Primitive assembly
// =============================================================================

func TestRangeTriangles(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		want [][3]int
	}{
		{"triangles", Range{Mode: Triangles, First: 12, Count: 6}, [][3]int{{12, 13, 14}, {15, 16, 17}}},
		{"strip", Range{Mode: TriangleStrip, First: 20, Count: 4}, [][3]int{{20, 21, 22}, {22, 21, 23}}},
		{"fan", Range{Mode: TriangleFan, First: 0, Count: 4}, [][3]int{{0, 1, 2}, {0, 2, 3}}},
		{"indexed", Range{Mode: Triangles, Count: 3, Indices: []uint32{4, 5, 6}}, [][3]int{{4, 5, 6}}},
		{"lines give none", Range{Mode: Lines, Count: 4}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Triangles()
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("tri %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRangeSegments(t *testing.T) {
	lines := Range{Mode: Lines, First: 6, Count: 6}.Segments()
	if len(lines) != 3 || lines[2] != [2]int{10, 11} {
		t.Errorf("lines = %v", lines)
	}
	loop := Range{Mode: LineLoop, Count: 4}.Segments()
	if len(loop) != 4 || loop[3] != [2]int{3, 0} {
		t.Errorf("loop = %v", loop)
	}
}

func TestRangeElements_IndexOverrun(t *testing.T) {
	r := Range{Mode: Triangles, Count: 6, Indices: []uint32{0, 1, 2}}
	if got := len(r.Elements()); got != 3 {
		t.Errorf("Elements() len = %d, want 3", got)
	}
}

// =============================================================================
// Generators
// =============================================================================

func TestCircleFan(t *testing.T) {
	b := NewBuffer(AttrColor)
	b.Append(Vertex{})
	grey := mgl64.Vec3{0.5, 0.5, 0.5}
	r := CircleFan(b, 0.2, 32, grey, nil)
	if r.First != 1 || r.Count != 34 || r.Mode != TriangleFan {
		t.Fatalf("range = %+v", r)
	}
	if b.Len() != 35 {
		t.Errorf("buffer len = %d, want 35", b.Len())
	}
	first, last := b.Vertex(2), b.Vertex(34)
	if !first.Pos.ApproxEqualThreshold(last.Pos, 1e-6) {
		t.Errorf("fan not closed: %v vs %v", first.Pos, last.Pos)
	}
	for i := 2; i <= 34; i++ {
		if d := b.Vertex(i).Pos.Len(); math.Abs(d-0.2) > 1e-6 {
			t.Errorf("ring vertex %d at radius %v", i, d)
		}
	}
	if len(r.Triangles()) != 32 {
		t.Errorf("fan triangles = %d, want 32", len(r.Triangles()))
	}
}

func TestCircleFan_RingColour(t *testing.T) {
	b := NewBuffer(AttrColor)
	light := mgl64.Vec3{1, 1, 1}
	CircleFan(b, 1, 4, mgl64.Vec3{}, func(i int) mgl64.Vec3 {
		if i == 2 {
			return light
		}
		return mgl64.Vec3{}
	})
	if b.Vertex(3).Color != light {
		t.Errorf("ring vertex 2 colour = %v", b.Vertex(3).Color)
	}
}

func TestOrbitLoop(t *testing.T) {
	b := NewBuffer(AttrColor)
	r := OrbitLoop(b, 3, 0.01, mgl64.Vec3{1, 1, 1})
	if r.Count != 629 || r.Mode != LineLoop {
		t.Fatalf("range = %+v", r)
	}
	for i := 0; i < b.Len(); i++ {
		p := b.Vertex(i).Pos
		if p[1] != 0 || math.Abs(p.Len()-3) > 1e-5 {
			t.Fatalf("vertex %d off orbit: %v", i, p)
		}
	}
}

func TestProceduralMeshes(t *testing.T) {
	tests := []struct {
		name string
		mesh *Mesh
	}{
		{"cube", Cube(1)},
		{"sphere", Sphere(1, 12, 16)},
		{"torus", Torus(1, 0.3, 16, 8)},
		{"cone", Cone(1, 2, 16)},
		{"cylinder", Cylinder(1, 2, 16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mesh.Name != tt.name {
				t.Errorf("Name = %q", tt.mesh.Name)
			}
			n := tt.mesh.Buffer.Len()
			tris := 0
			for _, r := range tt.mesh.Ranges {
				for _, tri := range r.Triangles() {
					for _, i := range tri {
						if i < 0 || i >= n {
							t.Fatalf("index %d out of range %d", i, n)
						}
					}
					tris++
				}
			}
			if tris == 0 {
				t.Fatalf("no triangles")
			}
			for i := 0; i < n; i++ {
				if l := tt.mesh.Buffer.Vertex(i).Normal.Len(); math.Abs(l-1) > 1e-5 {
					t.Fatalf("vertex %d normal length %v", i, l)
				}
			}
		})
	}
}

func TestCube_TriangleCount(t *testing.T) {
	if got := len(Cube(1).Ranges[0].Triangles()); got != 12 {
		t.Errorf("cube triangles = %d, want 12", got)
	}
}

func TestQuadStrip(t *testing.T) {
	b := NewBuffer(AttrNormal | AttrTangent | AttrTexCoord)
	b.Append(Vertex{})
	corners := [4]mgl64.Vec3{{-3, 0, -3}, {3, 0, -3}, {-3, 3, -3}, {3, 3, -3}}
	r := QuadStrip(b, corners, mgl64.Vec3{0, 0, 1}, mgl64.Vec2{4, 2}, mgl64.Vec3{})

	if r.Mode != TriangleStrip || r.First != 1 || r.Count != 4 {
		t.Fatalf("range = %+v", r)
	}
	if got := len(r.Triangles()); got != 2 {
		t.Errorf("triangles = %d, want 2", got)
	}
	last := b.Vertex(4)
	if !last.UV.ApproxEqual(mgl64.Vec2{4, 2}) {
		t.Errorf("top-right uv = %v", last.UV)
	}
	if !last.Tangent.ApproxEqual(mgl64.Vec3{1, 0, 0}) {
		t.Errorf("tangent = %v", last.Tangent)
	}
}
