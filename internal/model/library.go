package model

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"toy-scene-renderer/internal/geometry"
)

// Kind selects one of the shapes a scene can place.
type Kind int

const (
	Sphere Kind = iota
	Suzanne
	Torus
	Cube
	Cone
	Cylinder
)

// Kinds lists every shape in menu order.
var Kinds = []Kind{Sphere, Suzanne, Torus, Cube, Cone, Cylinder}

func (k Kind) String() string {
	switch k {
	case Sphere:
		return "sphere"
	case Suzanne:
		return "suzanne"
	case Torus:
		return "torus"
	case Cube:
		return "cube"
	case Cone:
		return "cone"
	case Cylinder:
		return "cylinder"
	}
	return "sphere"
}

// KindNames returns display labels in menu order.
func KindNames() []string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = k.String()
	}
	return names
}

// Library loads meshes by kind. A <dir>/<kind>.obj file wins over the
// procedural shape; suzanne has no procedural form and falls back to a sphere.
// Safe for concurrent use.
type Library struct {
	dir string

	mu     sync.Mutex
	meshes map[Kind]*geometry.Mesh
}

// NewLibrary returns a library reading OBJ files from dir. dir may be empty.
func NewLibrary(dir string) *Library {
	return &Library{dir: dir, meshes: make(map[Kind]*geometry.Mesh)}
}

// OpenLibrary is NewLibrary for a directory the caller asked for explicitly:
// a non-empty dir that is not a readable directory is an error.
func OpenLibrary(dir string) (*Library, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("model: open %s: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("model: open %s: not a directory", dir)
		}
	}
	return NewLibrary(dir), nil
}

// Mesh returns the cached mesh for k, loading it on first use.
func (l *Library) Mesh(k Kind) *geometry.Mesh {
	l.mu.Lock()
	defer l.mu.Unlock()

	if m, ok := l.meshes[k]; ok {
		return m
	}
	m := l.load(k)
	l.meshes[k] = m
	return m
}

func (l *Library) load(k Kind) *geometry.Mesh {
	if l.dir != "" {
		path := filepath.Join(l.dir, k.String()+".obj")
		if _, err := os.Stat(path); err == nil {
			m, err := ParseFile(path)
			if err == nil {
				m.Name = k.String()
				return m
			}
			slog.Warn("model load failed, using built-in shape", "model", k.String(), "error", err)
		}
	}

	switch k {
	case Suzanne:
		slog.Warn("no suzanne.obj available, using sphere", "dir", l.dir)
		return geometry.Sphere(1, 16, 24)
	case Torus:
		return geometry.Torus(1, 0.35, 32, 16)
	case Cube:
		return geometry.Cube(1.4)
	case Cone:
		return geometry.Cone(1, 2, 32)
	case Cylinder:
		return geometry.Cylinder(1, 2, 32)
	default:
		return geometry.Sphere(1, 16, 24)
	}
}
