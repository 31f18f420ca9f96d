package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir     string `json:"base_dir" yaml:"base_dir"`
	TexturesDir string `json:"textures_dir" yaml:"textures_dir"`
	ModelsDir   string `json:"models_dir" yaml:"models_dir"`
	OutputDir   string `json:"output_dir" yaml:"output_dir"`
	Script      string `json:"script" yaml:"script"`

	// Scene
	Scene string `json:"scene" yaml:"scene"`

	// Render settings. Zero Width/Height mean the scene's native size.
	Width       int     `json:"width" yaml:"width"`
	Height      int     `json:"height" yaml:"height"`
	Frames      int     `json:"frames" yaml:"frames"`
	FPS         float64 `json:"fps" yaml:"fps"`
	Supersample int     `json:"supersample" yaml:"supersample"`
	Workers     int     `json:"workers" yaml:"workers"`
	Overlay     bool    `json:"overlay" yaml:"overlay"`
	Sheet       bool    `json:"contact_sheet" yaml:"contact_sheet"`
}

// Load reads a JSON or YAML config file (chosen by extension) and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with auto-detected defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.DataDir != "" {
		c.BaseDir = flags.DataDir
	}
	if flags.TexturesDir != "" {
		c.TexturesDir = flags.TexturesDir
	}
	if flags.ModelsDir != "" {
		c.ModelsDir = flags.ModelsDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Script != "" {
		c.Script = flags.Script
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Overlay {
		c.Overlay = true
	}

	// Auto-detect base dir if still empty
	if c.BaseDir == "" {
		c.BaseDir = detectBaseDir()
	}

	// Resolve relative paths against base dir; missing asset dirs stay empty
	// so the demos fall back to built-in textures and meshes.
	if c.BaseDir != "" {
		c.TexturesDir = resolveDir(c.BaseDir, c.TexturesDir, "images")
		c.ModelsDir = resolveDir(c.BaseDir, c.ModelsDir, "models")
		if c.OutputDir != "" && !filepath.IsAbs(c.OutputDir) {
			c.OutputDir = filepath.Join(c.BaseDir, c.OutputDir)
		}
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}

	// Defaults for render settings
	if c.Scene == "" {
		c.Scene = "truck"
	}
	if c.Frames <= 0 {
		c.Frames = 60
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scene       string
	DataDir     string
	TexturesDir string
	ModelsDir   string
	OutputDir   string
	Script      string
	Width       int
	Height      int
	Frames      int
	FPS         float64
	Supersample int
	Workers     int
	Overlay     bool
}

// ParseSize parses "WxH" (e.g. "1366x768").
func ParseSize(s string) (w, h int, err error) {
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("config: size %q: want WxH: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("config: size %q: dimensions must be positive", s)
	}
	return w, h, nil
}

func resolveDir(base, dir, def string) string {
	if dir == "" {
		p := filepath.Join(base, def)
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return p
		}
		return ""
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}

func hasAssets(dir string) bool {
	for _, sub := range []string{"images", "models"} {
		if info, err := os.Stat(filepath.Join(dir, sub)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

func detectBaseDir() string {
	// Try relative to executable
	exe, _ := os.Executable()
	if exe != "" {
		dir := filepath.Dir(exe)
		for _, base := range []string{dir, filepath.Dir(dir)} {
			if hasAssets(base) {
				return base
			}
		}
	}

	// Try current working directory
	cwd, _ := os.Getwd()
	if hasAssets(cwd) {
		return cwd
	}
	return ""
}
