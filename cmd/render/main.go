package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"toy-scene-renderer/internal/batch"
	"toy-scene-renderer/internal/config"
	"toy-scene-renderer/internal/demos"
	"toy-scene-renderer/internal/model"
	"toy-scene-renderer/internal/render"
	"toy-scene-renderer/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json or .yaml)")
	sceneName := flag.String("scene", "", "Scene to export (default: truck)")
	scriptFile := flag.String("script", "", "Input script (.yaml or .json); empty runs idle")
	frames := flag.Int("frames", 0, "Number of frames to simulate (default: 60)")
	fps := flag.Float64("fps", 0, "Simulated frame rate (default: 30)")
	size := flag.String("size", "", "Output size WxH (default: scene size)")
	supersample := flag.Int("ss", 0, "Supersample factor (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	dataDir := flag.String("data", "", "Base directory holding images/ and models/ (default: auto-detect)")
	texturesDir := flag.String("textures", "", "Texture directory (default: <data>/images)")
	modelsDir := flag.String("models", "", "Model directory (default: <data>/models)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	overlay := flag.Bool("overlay", false, "Draw the tweak bar onto each frame")
	sheet := flag.Bool("sheet", false, "Also write a contact sheet")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	var w, h int
	if *size != "" {
		var err error
		w, h, err = config.ParseSize(*size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Scene:       *sceneName,
		DataDir:     *dataDir,
		TexturesDir: *texturesDir,
		ModelsDir:   *modelsDir,
		OutputDir:   *outputDir,
		Script:      *scriptFile,
		Width:       w,
		Height:      h,
		Frames:      *frames,
		FPS:         *fps,
		Supersample: *supersample,
		Workers:     *workers,
		Overlay:     *overlay,
	})
	if *sheet {
		cfg.Sheet = true
	}

	// Build texture index
	texIndex, err := texture.BuildIndex(cfg.TexturesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error indexing textures: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Textures: %d indexed\n", texIndex.Len())

	models, err := model.OpenLibrary(cfg.ModelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening models: %v\n", err)
		os.Exit(1)
	}

	sc, err := demos.New(cfg.Scene, demos.Env{Models: models})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var script *batch.Script
	if cfg.Script != "" {
		script, err = batch.LoadScript(cfg.Script)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Print summary
	sw, sh := sc.Size()
	if cfg.Width > 0 && cfg.Height > 0 {
		sw, sh = cfg.Width, cfg.Height
	}
	fmt.Printf("Scene %q → WebP\n", cfg.Scene)
	fmt.Printf("Frames: %d @ %.0f fps, Size: %dx%d, Workers: %d\n", cfg.Frames, cfg.FPS, sw, sh, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	snapshots, err := batch.Simulate(sc, script, cfg.FPS, cfg.Frames)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Run batch
	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Renderer:    render.New(texture.NewCache(texIndex)),
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Overlay:     cfg.Overlay,
		Sheet:       cfg.Sheet,
	}, snapshots)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			if failed <= 20 {
				fmt.Printf("  frame %d: %s\n", r.Frame, r.Error)
			}
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-failed, len(results))

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	m := batch.Manifest{Scene: cfg.Scene, FPS: cfg.FPS, Width: sw, Height: sh, Frames: results}
	if err := batch.WriteManifest(manifestPath, m); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
