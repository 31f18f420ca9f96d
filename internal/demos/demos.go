// Package demos maps scene names to their constructors.
package demos

import (
	"errors"
	"fmt"
	"sort"

	"toy-scene-renderer/internal/demos/clearcolor"
	"toy-scene-renderer/internal/demos/gallery"
	"toy-scene-renderer/internal/demos/mirror"
	"toy-scene-renderer/internal/demos/orbit"
	"toy-scene-renderer/internal/demos/truck"
	"toy-scene-renderer/internal/model"
	"toy-scene-renderer/internal/scene"
)

// ErrUnknownScene is returned for a name with no registered demo.
var ErrUnknownScene = errors.New("demos: unknown scene")

// Env carries the shared resources a demo may need.
type Env struct {
	Models *model.Library
}

var registry = map[string]func(Env) scene.Scene{
	"truck":   func(Env) scene.Scene { return truck.New() },
	"orbit":   func(e Env) scene.Scene { return orbit.New(e.Models) },
	"mirror":  func(e Env) scene.Scene { return mirror.New(e.Models) },
	"gallery": func(Env) scene.Scene { return gallery.New() },
	"clear":   func(Env) scene.Scene { return clearcolor.New() },
}

// New builds the named demo.
func New(name string, env Env) (scene.Scene, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownScene, name, Names())
	}
	return ctor(env), nil
}

// Names lists the registered demos in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
