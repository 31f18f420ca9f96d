package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func writeImage(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	switch filepath.Ext(path) {
	case ".png":
		err = png.Encode(f, img)
	case ".bmp":
		err = bmp.Encode(f, img)
	}
	if err != nil {
		t.Fatal(err)
	}
}

func TestBuildIndex(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "images")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeImage(t, filepath.Join(sub, "Check.bmp"), color.NRGBA{255, 0, 0, 255})
	writeImage(t, filepath.Join(sub, "smile.bmp"), color.NRGBA{0, 255, 0, 255})
	writeImage(t, filepath.Join(sub, "smile.png"), color.NRGBA{0, 0, 255, 255})
	if err := os.WriteFile(filepath.Join(sub, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	idx, err := BuildIndex(dir)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	if idx.Len() != 2 {
		t.Errorf("Len = %d, want 2 (%v)", idx.Len(), idx.Names())
	}

	tests := []struct {
		name    string
		wantExt string
		wantOK  bool
	}{
		{"check", ".bmp", true},
		{"./images/check.bmp", ".bmp", true},
		{"SMILE", ".png", true},
		{"fieldstone", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := idx.ResolvePath(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("ResolvePath ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && filepath.Ext(path) != tt.wantExt {
				t.Errorf("ResolvePath = %s, want %s file", path, tt.wantExt)
			}
		})
	}
}

func TestBuildIndex_MissingDir(t *testing.T) {
	if _, err := BuildIndex(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Errorf("expected error for missing dir")
	}
	idx, err := BuildIndex("")
	if err != nil || idx.Len() != 0 {
		t.Errorf("empty dir: idx=%v err=%v", idx, err)
	}
}

func TestCache_LoadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "check.bmp"), color.NRGBA{10, 20, 30, 255})
	idx, err := BuildIndex(dir)
	if err != nil {
		t.Fatal(err)
	}
	c := NewCache(idx)

	img := c.Resolve("check")
	if img == nil {
		t.Fatal("Resolve returned nil")
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("pixel = %v", got)
	}
	if c.Resolve("check") != img {
		t.Errorf("second Resolve not cached")
	}
}

func TestCache_ProceduralFallback(t *testing.T) {
	c := NewCache(nil)
	for _, name := range []string{Checkerboard, Fieldstone, Smile} {
		if img := c.Resolve(name); img == nil || img.Rect.Empty() {
			t.Errorf("Resolve(%q) = nil, want built-in", name)
		}
	}
	if c.Resolve("unknown") != nil {
		t.Errorf("unknown texture should resolve to nil")
	}
	if c.Resolve("") != nil {
		t.Errorf("empty name should resolve to nil")
	}
}

func TestChecker_Alternates(t *testing.T) {
	img := Procedural(Checkerboard)
	a := img.NRGBAAt(0, 0)
	b := img.NRGBAAt(img.Rect.Dx()/16, 0)
	if a == b {
		t.Errorf("adjacent cells share colour %v", a)
	}
}
