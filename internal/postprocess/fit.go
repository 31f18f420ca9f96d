package postprocess

import (
	"image"
	"image/color"

	stddraw "image/draw"

	"golang.org/x/image/draw"
)

// Fit scales img to fit inside a w×h canvas, preserving aspect ratio, and
// centers it over bg (letterboxing).
func Fit(img *image.NRGBA, w, h int, bg color.NRGBA) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	stddraw.Draw(canvas, canvas.Rect, image.NewUniform(bg), image.Point{}, stddraw.Src)

	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 {
		return canvas
	}

	// Scale to the tighter dimension
	scaleF := min(float64(w)/float64(srcW), float64(h)/float64(srcH))
	newW := max(int(float64(srcW)*scaleF+0.5), 1)
	newH := max(int(float64(srcH)*scaleF+0.5), 1)

	offX := (w - newW) / 2
	offY := (h - newH) / 2
	draw.CatmullRom.Scale(canvas, image.Rect(offX, offY, offX+newW, offY+newH), img, b, draw.Over, nil)
	return canvas
}

// ContactSheet tiles frames into a grid of cols columns, each cell cellW×cellH,
// left to right then top to bottom.
func ContactSheet(frames []*image.NRGBA, cols, cellW, cellH int, bg color.NRGBA) *image.NRGBA {
	if cols < 1 {
		cols = 1
	}
	rows := (len(frames) + cols - 1) / cols
	sheet := image.NewNRGBA(image.Rect(0, 0, cols*cellW, max(rows, 1)*cellH))
	stddraw.Draw(sheet, sheet.Rect, image.NewUniform(bg), image.Point{}, stddraw.Src)

	for i, f := range frames {
		cell := Fit(f, cellW, cellH, bg)
		at := image.Pt((i%cols)*cellW, (i/cols)*cellH)
		stddraw.Draw(sheet, cell.Rect.Add(at), cell, image.Point{}, stddraw.Src)
	}
	return sheet
}
