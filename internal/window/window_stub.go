//go:build headless

package window

import (
	"errors"

	"toy-scene-renderer/internal/render"
	"toy-scene-renderer/internal/scene"
)

// Options configures the interactive window.
type Options struct {
	Title   string
	Overlay bool
	TPS     int
}

// Run reports that this build has no display support.
func Run(sc scene.Scene, r *render.Renderer, opts Options) error {
	return errors.New("window: built with the headless tag; use cmd/render")
}
