package main

import (
	"flag"
	"fmt"
	"os"

	"toy-scene-renderer/internal/config"
	"toy-scene-renderer/internal/demos"
	"toy-scene-renderer/internal/model"
	"toy-scene-renderer/internal/render"
	"toy-scene-renderer/internal/texture"
	"toy-scene-renderer/internal/window"
)

func main() {
	configFile := flag.String("config", "", "Path to config file (.json or .yaml)")
	sceneName := flag.String("scene", "", fmt.Sprintf("Scene to open %v (default: truck)", demos.Names()))
	dataDir := flag.String("data", "", "Base directory holding images/ and models/ (default: auto-detect)")
	texturesDir := flag.String("textures", "", "Texture directory (default: <data>/images)")
	modelsDir := flag.String("models", "", "Model directory (default: <data>/models)")
	overlay := flag.Bool("overlay", true, "Show the tweak bar (F1 toggles)")
	tps := flag.Int("tps", 60, "Updates per second")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Scene:       *sceneName,
		DataDir:     *dataDir,
		TexturesDir: *texturesDir,
		ModelsDir:   *modelsDir,
	})

	texIndex, err := texture.BuildIndex(cfg.TexturesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error indexing textures: %v\n", err)
		os.Exit(1)
	}

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

	opts := window.Options{Overlay: *overlay || cfg.Overlay, TPS: *tps}
	if err := window.Run(sc, render.New(texture.NewCache(texIndex)), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
