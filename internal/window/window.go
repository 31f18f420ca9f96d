//go:build !headless

package window

import (
	"image"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"toy-scene-renderer/internal/raster"
	"toy-scene-renderer/internal/render"
	"toy-scene-renderer/internal/scene"
	"toy-scene-renderer/internal/tweak"
)

// Options configures the interactive window.
type Options struct {
	Title string
	// Overlay shows the tweak bar at start; F1 toggles it.
	Overlay bool
	TPS     int
}

// Run opens a window driving sc and blocks until it closes.
func Run(sc scene.Scene, r *render.Renderer, opts Options) error {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.Title == "" {
		opts.Title = sc.Name()
	}
	w, h := sc.Size()

	g := &game{sc: sc, r: r, overlay: opts.Overlay, dt: 1 / float64(opts.TPS), start: time.Now()}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(opts.TPS)

	slog.Info("window open", "scene", sc.Name(), "width", w, "height", h)
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		err = nil
	}
	slog.Info("window closed", "scene", sc.Name())
	return err
}

type game struct {
	sc      scene.Scene
	r       *render.Renderer
	overlay bool
	dt      float64
	start   time.Time

	fb    *raster.FrameBuffer
	fbImg *ebiten.Image
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay = !g.overlay
	}
	g.sc.Bar().Handle(barControls())

	if g.sc.Update(pollInput{}, g.dt) == scene.Close {
		return ebiten.Termination
	}
	g.sc.Stats().Tick(time.Since(g.start).Seconds())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	f := g.sc.Frame()
	if g.fb == nil || g.fb.Width != f.Width || g.fb.Height != f.Height {
		g.fb = raster.NewFrameBuffer(f.Width, f.Height)
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(f.Width, f.Height)
	}

	g.r.Render(g.fb, f)
	img := g.fb.Image()
	if g.overlay {
		tweak.DrawLines(img, f.HUD, image.Pt(8, 8))
	}
	g.fbImg.WritePixels(img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sc.Size()
}
