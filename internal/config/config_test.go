package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_JSONAndYAML(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "c.json")
	yamlPath := filepath.Join(dir, "c.yaml")
	if err := os.WriteFile(jsonPath, []byte(`{"scene":"orbit","width":640,"overlay":true}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(yamlPath, []byte("scene: mirror\nheight: 480\nfps: 24\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want Config
	}{
		{"json", jsonPath, Config{Scene: "orbit", Width: 640, Overlay: true}},
		{"yaml", yamlPath, Config{Scene: "mirror", Height: 480, FPS: 24}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got != tt.want {
				t.Errorf("Load = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Errorf("expected parse error")
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("expected read error")
	}
}

func TestResolve_FlagsOverrideAndDefaults(t *testing.T) {
	base := t.TempDir()
	if err := os.Mkdir(filepath.Join(base, "images"), 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := Config{Scene: "orbit", Workers: 3, OutputDir: "out"}
	cfg.Resolve(Flags{Scene: "gallery", DataDir: base, Frames: 10})

	if cfg.Scene != "gallery" {
		t.Errorf("Scene = %q, flag should win", cfg.Scene)
	}
	if cfg.Frames != 10 || cfg.Workers != 3 {
		t.Errorf("Frames/Workers = %d/%d", cfg.Frames, cfg.Workers)
	}
	if cfg.TexturesDir != filepath.Join(base, "images") {
		t.Errorf("TexturesDir = %q", cfg.TexturesDir)
	}
	if cfg.ModelsDir != "" {
		t.Errorf("ModelsDir = %q, want empty when absent", cfg.ModelsDir)
	}
	if cfg.OutputDir != filepath.Join(base, "out") {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.FPS != 30 || cfg.Supersample != 1 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"1366x768", 1366, 768, false},
		{"640X480", 640, 480, false},
		{"640", 0, 0, true},
		{"0x10", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := ParseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("ParseSize = %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}
}
