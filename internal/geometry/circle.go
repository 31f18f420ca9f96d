package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CircleFan appends a filled circle in the XY plane: one centre vertex followed
// by slices+1 ring vertices (the first ring vertex is repeated to close the fan).
// ring picks the colour of ring vertex i; nil uses the centre colour.
func CircleFan(b *Buffer, radius float64, slices int, center mgl64.Vec3, ring func(i int) mgl64.Vec3) Range {
	first := b.Append(Vertex{Color: center, Normal: mgl64.Vec3{0, 0, 1}, UV: mgl64.Vec2{0.5, 0.5}})

	sliceAngle := 2 * math.Pi / float64(slices)
	for i := 0; i <= slices; i++ {
		a := sliceAngle * float64(i)
		c := center
		if ring != nil {
			c = ring(i)
		}
		b.Append(Vertex{
			Pos:    mgl64.Vec3{radius * math.Cos(a), radius * math.Sin(a), 0},
			Color:  c,
			Normal: mgl64.Vec3{0, 0, 1},
			UV:     mgl64.Vec2{0.5 + 0.5*math.Cos(a), 0.5 + 0.5*math.Sin(a)},
		})
	}

	return Range{Mode: TriangleFan, First: first, Count: slices + 2}
}

// OrbitLoop appends a circle of the given radius in the XZ plane, sampled every
// step radians over [0, 2π), and returns a line loop over it.
func OrbitLoop(b *Buffer, radius, step float64, color mgl64.Vec3) Range {
	first := b.Len()
	n := int(math.Ceil(2 * math.Pi / step))
	for i := 0; i < n; i++ {
		a := float64(i) * step
		b.Append(Vertex{
			Pos:   mgl64.Vec3{radius * math.Cos(a), 0, radius * math.Sin(a)},
			Color: color,
		})
	}
	return Range{Mode: LineLoop, First: first, Count: n}
}
