package batch

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/HugoSmits86/nativewebp"
	"github.com/schollz/progressbar/v3"

	"toy-scene-renderer/internal/postprocess"
	"toy-scene-renderer/internal/raster"
	"toy-scene-renderer/internal/render"
	"toy-scene-renderer/internal/scene"
	"toy-scene-renderer/internal/tweak"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir string
	Renderer  *render.Renderer
	// Width and Height scale (letterboxed) the output; zero keeps the
	// frame's native size.
	Width       int
	Height      int
	Supersample int
	Workers     int
	// Overlay draws the tweak-bar text onto each frame.
	Overlay bool
	// Sheet also writes sheet.webp, a grid of sampled frames.
	Sheet bool
	// Quiet hides the progress bar.
	Quiet bool
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int     `json:"frame"`
	Time    float64 `json:"time"`
	Image   string  `json:"image"`
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
}

const (
	sheetCols  = 6
	sheetCells = 24
	sheetCellW = 192
)

// Run renders all frames using a worker pool and writes them as WebP.
func Run(cfg Config, frames []*scene.Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Supersample < 1 {
		cfg.Supersample = 1
	}

	var bar *progressbar.ProgressBar
	if cfg.Quiet {
		bar = progressbar.NewOptions(total, progressbar.OptionSetWriter(io.Discard))
	} else {
		bar = progressbar.Default(int64(total), "rendering")
	}

	sheetStride := max(1, (total+sheetCells-1)/sheetCells)
	var sheetMu sync.Mutex
	thumbs := make(map[int]*image.NRGBA)

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				img, res := processFrame(cfg, idx, frames[idx])
				results[idx] = res
				if cfg.Sheet && img != nil && idx%sheetStride == 0 {
					sheetMu.Lock()
					thumbs[idx] = img
					sheetMu.Unlock()
				}
				bar.Add(1)
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	bar.Finish()

	if cfg.Sheet && len(thumbs) > 0 {
		if err := writeSheet(cfg.OutputDir, thumbs, total); err != nil {
			fmt.Fprintf(os.Stderr, "contact sheet: %v\n", err)
		}
	}

	return results
}

// RenderFrame rasterises one frame at its native size (supersampled and
// downsampled when ss > 1). A nil renderer draws untextured.
func RenderFrame(r *render.Renderer, f *scene.Frame, ss int) *image.NRGBA {
	if r == nil {
		r = render.New(nil)
	}
	if ss > 1 {
		scaled := *f
		scaled.Items = make([]scene.DrawItem, len(f.Items))
		for i, it := range f.Items {
			it.PointSize *= float64(ss)
			scaled.Items[i] = it
		}
		f = &scaled
	}
	fb := raster.NewFrameBuffer(f.Width*ss, f.Height*ss)
	r.Render(fb, f)
	img := fb.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, f.Width, f.Height)
	}
	return img
}

func processFrame(cfg Config, idx int, f *scene.Frame) (*image.NRGBA, Result) {
	name := fmt.Sprintf("frame_%05d.webp", idx)
	res := Result{Frame: idx, Time: f.Time, Image: name}

	img := RenderFrame(cfg.Renderer, f, cfg.Supersample)
	if cfg.Overlay {
		tweak.DrawLines(img, f.HUD, image.Pt(8, 8))
	}
	if cfg.Width > 0 && cfg.Height > 0 && (cfg.Width != f.Width || cfg.Height != f.Height) {
		img = postprocess.Fit(img, cfg.Width, cfg.Height, color.NRGBA{A: 255})
	}

	if err := writeWebP(filepath.Join(cfg.OutputDir, name), img); err != nil {
		res.Error = err.Error()
		return nil, res
	}
	res.Success = true
	return img, res
}

func writeSheet(dir string, thumbs map[int]*image.NRGBA, total int) error {
	var ordered []*image.NRGBA
	var first *image.NRGBA
	for i := 0; i < total; i++ {
		if img, ok := thumbs[i]; ok {
			ordered = append(ordered, img)
			if first == nil {
				first = img
			}
		}
	}
	b := first.Bounds()
	cellH := max(1, sheetCellW*b.Dy()/max(1, b.Dx()))
	sheet := postprocess.ContactSheet(ordered, sheetCols, sheetCellW, cellH, color.NRGBA{A: 255})
	return writeWebP(filepath.Join(dir, "sheet.webp"), sheet)
}

func writeWebP(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("WebP encode: %w", err)
	}
	return nil
}
