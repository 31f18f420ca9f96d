package geometry

import "github.com/go-gl/mathgl/mgl64"

// QuadStrip appends a four-vertex strip in the order bottom-left,
// bottom-right, top-left, top-right. Texcoords span [0, uv]; the tangent
// follows the bottom edge.
func QuadStrip(b *Buffer, corners [4]mgl64.Vec3, normal mgl64.Vec3, uv mgl64.Vec2, color mgl64.Vec3) Range {
	first := b.Len()
	tangent := corners[1].Sub(corners[0])
	if tangent.Len() > 0 {
		tangent = tangent.Normalize()
	}
	uvs := [4]mgl64.Vec2{{0, 0}, {uv[0], 0}, {0, uv[1]}, {uv[0], uv[1]}}
	for i, p := range corners {
		b.Append(Vertex{Pos: p, Color: color, Normal: normal, Tangent: tangent, UV: uvs[i]})
	}
	return Range{Mode: TriangleStrip, First: first, Count: 4}
}
