package tweak

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	panelColor = color.NRGBA{R: 20, G: 20, B: 30, A: 170}
	textColor  = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
)

// DrawLines paints a translucent panel with one text line per entry at the
// top-left corner at, and returns the panel bounds.
func DrawLines(dst draw.Image, lines []string, at image.Point) image.Rectangle {
	if len(lines) == 0 {
		return image.Rectangle{}
	}
	face := basicfont.Face7x13
	lineH := face.Metrics().Height.Ceil()

	width := 0
	for _, l := range lines {
		if w := font.MeasureString(face, l).Ceil(); w > width {
			width = w
		}
	}
	const pad = 6
	panel := image.Rect(at.X, at.Y, at.X+width+2*pad, at.Y+len(lines)*lineH+2*pad).Intersect(dst.Bounds())
	draw.Draw(dst, panel, image.NewUniform(panelColor), image.Point{}, draw.Over)

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(textColor), Face: face}
	for i, l := range lines {
		d.Dot = fixed.P(at.X+pad, at.Y+pad+(i+1)*lineH-face.Metrics().Descent.Ceil())
		d.DrawString(l)
	}
	return panel
}
