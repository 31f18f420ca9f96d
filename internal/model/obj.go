package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"toy-scene-renderer/internal/geometry"
)

// ParseFile reads a Wavefront OBJ file.
func ParseFile(path string) (*geometry.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("model: parse %s: %w", path, err)
	}
	return m, nil
}

// Parse reads OBJ geometry (v, vt, vn, f). Polygons are fan-triangulated and
// vertices are expanded so every corner carries its own normal and texcoord.
// Faces without normals get the flat face normal.
func Parse(r io.Reader) (*geometry.Mesh, error) {
	var (
		positions []mgl64.Vec3
		texcoords []mgl64.Vec2
		normals   []mgl64.Vec3
	)

	b := geometry.NewBuffer(geometry.LitLayout)
	var idx []uint32
	name := ""

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "o":
			if len(fields) > 1 && name == "" {
				name = fields[1]
			}
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			positions = append(positions, mgl64.Vec3{v[0], v[1], v[2]})
		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			texcoords = append(texcoords, mgl64.Vec2{v[0], v[1]})
		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			normals = append(normals, mgl64.Vec3{v[0], v[1], v[2]}.Normalize())
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", line)
			}
			corners := make([]geometry.Vertex, 0, len(fields)-1)
			hasNormal := true
			for _, tok := range fields[1:] {
				c, n, err := parseCorner(tok, positions, texcoords, normals)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				hasNormal = hasNormal && n
				corners = append(corners, c)
			}
			if !hasNormal {
				fn := corners[1].Pos.Sub(corners[0].Pos).Cross(corners[2].Pos.Sub(corners[0].Pos)).Normalize()
				for i := range corners {
					corners[i].Normal = fn
				}
			}
			base := uint32(b.Len())
			for _, c := range corners {
				b.Append(c)
			}
			for i := uint32(1); i+1 < uint32(len(corners)); i++ {
				idx = append(idx, base, base+i, base+i+1)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(idx) == 0 {
		return nil, fmt.Errorf("no faces")
	}

	return &geometry.Mesh{
		Name:   name,
		Buffer: b,
		Ranges: []geometry.Range{{Mode: geometry.Triangles, Count: len(idx), Indices: idx}},
	}, nil
}

func parseFloats(fields []string, n int) ([]float64, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d values, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseCorner resolves a "v", "v/vt", "v//vn" or "v/vt/vn" token.
// Negative indices count back from the end, per the OBJ format.
func parseCorner(tok string, pos []mgl64.Vec3, uv []mgl64.Vec2, nrm []mgl64.Vec3) (geometry.Vertex, bool, error) {
	parts := strings.Split(tok, "/")
	var v geometry.Vertex

	pi, err := resolveIndex(parts[0], len(pos))
	if err != nil {
		return v, false, fmt.Errorf("position %q: %w", tok, err)
	}
	v.Pos = pos[pi]

	if len(parts) > 1 && parts[1] != "" {
		ti, err := resolveIndex(parts[1], len(uv))
		if err != nil {
			return v, false, fmt.Errorf("texcoord %q: %w", tok, err)
		}
		v.UV = uv[ti]
	}

	hasNormal := false
	if len(parts) > 2 && parts[2] != "" {
		ni, err := resolveIndex(parts[2], len(nrm))
		if err != nil {
			return v, false, fmt.Errorf("normal %q: %w", tok, err)
		}
		v.Normal = nrm[ni]
		hasNormal = true
	}
	return v, hasNormal, nil
}

func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i = n + i
	} else {
		i--
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index out of range")
	}
	return i, nil
}
