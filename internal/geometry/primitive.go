package geometry

// Mode is the primitive assembly rule for a draw range.
type Mode int

const (
	Points Mode = iota
	Lines
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
)

func (m Mode) String() string {
	switch m {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case LineLoop:
		return "line_loop"
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle_strip"
	case TriangleFan:
		return "triangle_fan"
	}
	return "unknown"
}

// Range is one draw call over a shared buffer.
// With Indices set, the range is indexed and First/Count address Indices
// instead of the buffer itself.
type Range struct {
	Mode    Mode
	First   int
	Count   int
	Indices []uint32
}

// Elements returns the buffer indices consumed by the range, in order.
func (r Range) Elements() []int {
	out := make([]int, 0, r.Count)
	for i := r.First; i < r.First+r.Count; i++ {
		if r.Indices != nil {
			if i >= len(r.Indices) {
				break
			}
			out = append(out, int(r.Indices[i]))
			continue
		}
		out = append(out, i)
	}
	return out
}

// Triangles assembles triangle index triples. Non-triangle modes yield nil.
func (r Range) Triangles() [][3]int {
	e := r.Elements()
	var tris [][3]int
	switch r.Mode {
	case Triangles:
		for i := 0; i+2 < len(e); i += 3 {
			tris = append(tris, [3]int{e[i], e[i+1], e[i+2]})
		}
	case TriangleStrip:
		for i := 0; i+2 < len(e); i++ {
			// keep a consistent winding on odd triangles
			if i%2 == 0 {
				tris = append(tris, [3]int{e[i], e[i+1], e[i+2]})
			} else {
				tris = append(tris, [3]int{e[i+1], e[i], e[i+2]})
			}
		}
	case TriangleFan:
		for i := 1; i+1 < len(e); i++ {
			tris = append(tris, [3]int{e[0], e[i], e[i+1]})
		}
	}
	return tris
}

// Segments assembles line index pairs. Non-line modes yield nil.
func (r Range) Segments() [][2]int {
	e := r.Elements()
	var segs [][2]int
	switch r.Mode {
	case Lines:
		for i := 0; i+1 < len(e); i += 2 {
			segs = append(segs, [2]int{e[i], e[i+1]})
		}
	case LineLoop:
		for i := 0; i+1 < len(e); i++ {
			segs = append(segs, [2]int{e[i], e[i+1]})
		}
		if len(e) > 2 {
			segs = append(segs, [2]int{e[len(e)-1], e[0]})
		}
	}
	return segs
}

// Mesh is a buffer plus the ranges that draw it.
type Mesh struct {
	Name   string
	Buffer *Buffer
	Ranges []Range
}
