package truck

import (
	"github.com/go-gl/mathgl/mgl64"

	"toy-scene-renderer/internal/geometry"
)

type vc struct {
	x, y    float64
	r, g, b float64
}

// body vertices: ground strip, then chassis, driver, upper driver and
// window quads (indexed), then the dump box strip.
var bodyVerts = []vc{
	// ground
	{-1, -0.7, 0.251, 0.812, 0.455},
	{1, -0.7, 0.251, 0.812, 0.455},
	{-1, -1, 0, 0.651, 0.235},
	{1, -1, 0, 0.651, 0.235},

	// chassis
	{-0.8, 0.1, 0.831, 0.831, 0.831},
	{0.8, 0.1, 0.831, 0.831, 0.831},
	{-0.8, 0, 0.439, 0.439, 0.439},
	{0.8, 0, 0.439, 0.439, 0.439},

	// driver
	{-0.8, 0.5, 1, 0, 0},
	{-0.25, 0.5, 1, 1, 0},
	{-0.8, 0.1, 1, 1, 0},
	{-0.25, 0.1, 1, 1, 0},

	// upper driver
	{-0.25, 0.8, 1, 0, 0},
	{-0.55, 0.8, 1, 1, 1},
	{-0.8, 0.5, 1, 0, 0},
	{-0.25, 0.5, 1, 1, 0},

	// window
	{-0.4, 0.73, 0, 0, 0},
	{-0.55, 0.73, 0, 0, 0},
	{-0.73, 0.5, 0, 0, 0},
	{-0.4, 0.5, 0, 0, 0},

	// dump box
	{0.8, 0.1, 1, 0.72, 0.22},
	{-0.15, 0.1, 1, 0.72, 0.22},
	{0.9, 0.43, 1, 0.72, 0.22},
	{-0.25, 0.43, 1, 0.72, 0.22},
	{0.8, 0.73, 1, 0.72, 0.22},
	{-0.15, 0.73, 1, 0.906, 0.737},
}

var bodyIndices = []uint32{
	4, 5, 6, 6, 5, 7, // chassis
	10, 11, 9, 9, 10, 8, // driver
	14, 15, 12, 12, 13, 14, // upper driver
	18, 19, 16, 16, 17, 18, // window
}

// shine marks the ring vertices painted lighter on the hubcap.
var shine = map[int]bool{14: true, 15: true, 30: true, 31: true}

func (s *Scene) buildMesh() {
	b := geometry.NewBuffer(geometry.AttrColor)
	for _, v := range bodyVerts {
		b.Append(geometry.Vertex{Pos: mgl64.Vec3{v.x, v.y, 0}, Color: mgl64.Vec3{v.r, v.g, v.b}})
	}

	s.ground = geometry.Range{Mode: geometry.TriangleStrip, First: 0, Count: 4}
	s.body = geometry.Range{Mode: geometry.Triangles, First: 0, Count: len(bodyIndices), Indices: bodyIndices}
	s.dumpBox = geometry.Range{Mode: geometry.TriangleStrip, First: 20, Count: 6}

	s.hubcap = geometry.CircleFan(b, 0.13, slices, mgl64.Vec3{0.831, 0.831, 0.831}, func(i int) mgl64.Vec3 {
		if shine[i] {
			return mgl64.Vec3{0.671, 0.671, 0.671}
		}
		return mgl64.Vec3{0.471, 0.471, 0.471}
	})
	s.wheel = geometry.CircleFan(b, 0.2, slices, mgl64.Vec3{0.58, 0.58, 0.58}, func(int) mgl64.Vec3 {
		return mgl64.Vec3{0.071, 0.071, 0.071}
	})

	s.mesh = &geometry.Mesh{Name: "truck", Buffer: b}
}
