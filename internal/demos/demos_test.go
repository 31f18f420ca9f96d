package demos

import (
	"errors"
	"reflect"
	"testing"

	"toy-scene-renderer/internal/scene"
)

func TestNames(t *testing.T) {
	want := []string{"clear", "gallery", "mirror", "orbit", "truck"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			sc, err := New(name, Env{})
			if err != nil {
				t.Fatal(err)
			}
			if sc.Name() != name {
				t.Errorf("Name() = %q", sc.Name())
			}
			if err := sc.Transforms().Validate(); err != nil {
				t.Error(err)
			}
			if a := sc.Update(scene.NewInputState(), 1.0/60); a != scene.Continue {
				t.Errorf("idle update returned %v", a)
			}
			f := sc.Frame()
			w, h := sc.Size()
			if f.Width != w || f.Height != h || len(f.Views) == 0 {
				t.Errorf("incomplete frame: %dx%d views=%d items=%d", f.Width, f.Height, len(f.Views), len(f.Items))
			}
		})
	}
}

func TestNew_Unknown(t *testing.T) {
	if _, err := New("teapot", Env{}); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("err = %v, want ErrUnknownScene", err)
	}
}
