package scene

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"toy-scene-renderer/internal/mathutil"
)

// Transforms maps object names to their current model matrix.
type Transforms map[string]mgl64.Mat4

// Get returns the matrix for name, or identity when unset.
func (t Transforms) Get(name string) mgl64.Mat4 {
	if m, ok := t[name]; ok {
		return m
	}
	return mgl64.Ident4()
}

// Names returns the object names sorted, for stable output.
func (t Transforms) Names() []string {
	names := make([]string, 0, len(t))
	for n := range t {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy.
func (t Transforms) Clone() Transforms {
	c := make(Transforms, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

// Validate checks every matrix is affine and finite.
func (t Transforms) Validate() error {
	for _, n := range t.Names() {
		if !mathutil.IsAffine(t[n]) {
			return fmt.Errorf("scene: transform %q is not a finite affine matrix", n)
		}
	}
	return nil
}
