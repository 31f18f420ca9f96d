package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"toy-scene-renderer/internal/batch"
	"toy-scene-renderer/internal/demos"
	"toy-scene-renderer/internal/mathutil"
	"toy-scene-renderer/internal/model"
	"toy-scene-renderer/internal/scene"
)

func main() {
	sceneName := flag.String("scene", "truck", fmt.Sprintf("Scene to inspect %v", demos.Names()))
	frames := flag.Int("frames", 1, "Frames to simulate before printing")
	fps := flag.Float64("fps", 60, "Simulated frame rate")
	hold := flag.String("hold", "", "Comma-separated keys held for every frame (e.g. d,up)")
	modelsDir := flag.String("models", "", "Model directory")

	flag.Parse()

	models, err := model.OpenLibrary(*modelsDir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	sc, err := demos.New(*sceneName, demos.Env{Models: models})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	var keys []scene.Key
	if *hold != "" {
		for _, name := range strings.Split(*hold, ",") {
			k, err := scene.ParseKey(name)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			keys = append(keys, k)
		}
	}

	script := batch.NewScript(batch.Hold(float64(*frames) / *fps, keys...))
	snapshots, err := batch.Simulate(sc, script, *fps, *frames)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	last := 0.0
	if n := len(snapshots); n > 0 {
		last = snapshots[n-1].Time
	}

	t := sc.Transforms()
	fmt.Printf("Scene %q after %d frames (t=%.3fs)\n", sc.Name(), len(snapshots), last)
	if err := t.Validate(); err != nil {
		fmt.Printf("Invalid: %v\n", err)
	}
	for _, name := range t.Names() {
		m := t.Get(name)
		p := mathutil.Position(m)
		fmt.Printf("  %-12s pos=(%.3f, %.3f, %.3f)\n", name, p[0], p[1], p[2])
		for r := 0; r < 4; r++ {
			row := m.Row(r)
			fmt.Printf("    [% .4f % .4f % .4f % .4f]\n", row[0], row[1], row[2], row[3])
		}
	}
	for _, line := range sc.Bar().Lines() {
		fmt.Println("  " + line)
	}
}
