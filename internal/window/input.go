//go:build !headless

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"toy-scene-renderer/internal/scene"
	"toy-scene-renderer/internal/tweak"
)

var keyMap = map[scene.Key]ebiten.Key{
	scene.KeyEscape: ebiten.KeyEscape,
	scene.KeyW:      ebiten.KeyW,
	scene.KeyA:      ebiten.KeyA,
	scene.KeyS:      ebiten.KeyS,
	scene.KeyD:      ebiten.KeyD,
	scene.KeyB:      ebiten.KeyB,
	scene.KeyUp:     ebiten.KeyArrowUp,
	scene.KeyDown:   ebiten.KeyArrowDown,
	scene.KeyLeft:   ebiten.KeyArrowLeft,
	scene.KeyRight:  ebiten.KeyArrowRight,
	scene.Key1:      ebiten.KeyDigit1,
	scene.Key2:      ebiten.KeyDigit2,
	scene.Key3:      ebiten.KeyDigit3,
	scene.KeyQ:      ebiten.KeyQ,
	scene.KeyE:      ebiten.KeyE,
}

var buttonMap = map[scene.Key]ebiten.MouseButton{
	scene.MouseLeft:  ebiten.MouseButtonLeft,
	scene.MouseRight: ebiten.MouseButtonRight,
}

// pollInput reads the ebiten key state for the current tick.
type pollInput struct{}

func (pollInput) Down(k scene.Key) bool {
	if key, ok := keyMap[k]; ok {
		return ebiten.IsKeyPressed(key)
	}
	if b, ok := buttonMap[k]; ok {
		return ebiten.IsMouseButtonPressed(b)
	}
	return false
}

func (pollInput) JustPressed(k scene.Key) bool {
	if key, ok := keyMap[k]; ok {
		return inpututil.IsKeyJustPressed(key)
	}
	if b, ok := buttonMap[k]; ok {
		return inpututil.IsMouseButtonJustPressed(b)
	}
	return false
}

func (pollInput) Cursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// barControls maps Tab/Shift+Tab to selection and -/= to adjustment.
// Shift makes float adjustments coarse.
func barControls() tweak.Controls {
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	tab := inpututil.IsKeyJustPressed(ebiten.KeyTab)
	return tweak.Controls{
		Next:   tab && !shift,
		Prev:   tab && shift,
		Inc:    repeat(ebiten.KeyEqual) || repeat(ebiten.KeyNumpadAdd),
		Dec:    repeat(ebiten.KeyMinus) || repeat(ebiten.KeyNumpadSubtract),
		Coarse: shift,
	}
}

// repeat fires on press and then every few ticks while held.
func repeat(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d > 20 && d%4 == 0)
}
