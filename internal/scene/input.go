package scene

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key or mouse button the demos react to.
type Key int

const (
	KeyEscape Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyB
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	Key1
	Key2
	Key3
	KeyQ
	KeyE
	MouseLeft
	MouseRight
)

var keyNames = map[Key]string{
	KeyEscape:  "escape",
	KeyW:       "w",
	KeyA:       "a",
	KeyS:       "s",
	KeyD:       "d",
	KeyB:       "b",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	Key1:       "1",
	Key2:       "2",
	Key3:       "3",
	KeyQ:       "q",
	KeyE:       "e",
	MouseLeft:  "mouse_left",
	MouseRight: "mouse_right",
}

// AllKeys lists every key in declaration order.
func AllKeys() []Key {
	keys := make([]Key, 0, len(keyNames))
	for k := KeyEscape; k <= MouseRight; k++ {
		keys = append(keys, k)
	}
	return keys
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ParseKey resolves a key name as printed by Key.String (case-insensitive).
func ParseKey(s string) (Key, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, n := range keyNames {
		if n == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("scene: unknown key %q", s)
}

// Input is the per-frame view of keyboard and mouse state.
type Input interface {
	// Down reports whether k is held this frame.
	Down(k Key) bool
	// JustPressed reports whether k went down this frame.
	JustPressed(k Key) bool
	// Cursor returns the pointer position in window pixels.
	Cursor() (x, y float64)
}

// InputState is a plain Input used by scripts and tests.
type InputState struct {
	down map[Key]bool
	edge map[Key]bool
	X, Y float64
}

// NewInputState returns an idle input.
func NewInputState() *InputState {
	return &InputState{down: make(map[Key]bool), edge: make(map[Key]bool)}
}

// Press marks k held; the edge is reported once until EndFrame.
func (s *InputState) Press(k Key) {
	if !s.down[k] {
		s.edge[k] = true
	}
	s.down[k] = true
}

// Release marks k up.
func (s *InputState) Release(k Key) {
	delete(s.down, k)
}

// SetHeld replaces the held set, raising edges for newly held keys.
func (s *InputState) SetHeld(keys []Key) {
	next := make(map[Key]bool, len(keys))
	for _, k := range keys {
		next[k] = true
		if !s.down[k] {
			s.edge[k] = true
		}
	}
	s.down = next
}

// EndFrame clears the just-pressed edges.
func (s *InputState) EndFrame() {
	clear(s.edge)
}

func (s *InputState) Down(k Key) bool        { return s.down[k] }
func (s *InputState) JustPressed(k Key) bool { return s.edge[k] }
func (s *InputState) Cursor() (float64, float64) {
	return s.X, s.Y
}
