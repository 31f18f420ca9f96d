package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrParentNotDeclared is returned when a node names a parent that was not
// added before it.
var ErrParentNotDeclared = errors.New("scene: parent not declared before child")

// Node is one entry of a Hierarchy. Local is evaluated on every update so it
// can read the scene's current parameters.
type Node struct {
	Name   string
	Parent string // "" for a root
	Local  func() mgl64.Mat4
}

// Hierarchy recomputes world matrices parent-first in declaration order.
// Children can only be added after their parent, so a single pass suffices.
type Hierarchy struct {
	nodes []Node
	index map[string]int
}

// NewHierarchy returns an empty hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{index: make(map[string]int)}
}

// Add appends a node.
func (h *Hierarchy) Add(n Node) error {
	if _, dup := h.index[n.Name]; dup {
		return fmt.Errorf("scene: duplicate node %q", n.Name)
	}
	if n.Parent != "" {
		if _, ok := h.index[n.Parent]; !ok {
			return fmt.Errorf("%w: %q -> %q", ErrParentNotDeclared, n.Name, n.Parent)
		}
	}
	if n.Local == nil {
		n.Local = mgl64.Ident4
	}
	h.index[n.Name] = len(h.nodes)
	h.nodes = append(h.nodes, n)
	return nil
}

// MustAdd is Add for static scene setup; it panics on error.
func (h *Hierarchy) MustAdd(n Node) {
	if err := h.Add(n); err != nil {
		panic(err)
	}
}

// Update writes world = world(parent) × local for every node into t.
func (h *Hierarchy) Update(t Transforms) {
	for _, n := range h.nodes {
		local := n.Local()
		if n.Parent != "" {
			t[n.Name] = t[n.Parent].Mul4(local)
		} else {
			t[n.Name] = local
		}
	}
}

// Names returns node names in update order.
func (h *Hierarchy) Names() []string {
	out := make([]string, len(h.nodes))
	for i, n := range h.nodes {
		out[i] = n.Name
	}
	return out
}
