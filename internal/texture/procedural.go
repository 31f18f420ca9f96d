package texture

import (
	"image"
	"image/color"
	"math"
	"strings"
)

// Built-in texture names used by the demos when no image file is indexed.
const (
	Checkerboard = "check"
	Fieldstone   = "fieldstone"
	Smile        = "smile"
)

// Procedural returns a generated stand-in for a known texture name, or nil.
func Procedural(name string) *image.NRGBA {
	switch strings.ToLower(name) {
	case Checkerboard:
		return checker(128, 16)
	case Fieldstone:
		return stones(128)
	case Smile:
		return smiley(64)
	}
	return nil
}

func checker(size, cells int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.NRGBA{255, 255, 255, 255}
			if (x/cell+y/cell)%2 == 1 {
				c = color.NRGBA{0, 0, 0, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// stones draws offset brick courses with dark mortar.
func stones(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	const rows, cols = 4, 2
	bh, bw := size/rows, size/cols
	for y := 0; y < size; y++ {
		row := y / bh
		off := 0
		if row%2 == 1 {
			off = bw / 2
		}
		for x := 0; x < size; x++ {
			bx := (x + off) % bw
			by := y % bh
			if bx < 3 || by < 3 {
				img.SetNRGBA(x, y, color.NRGBA{70, 62, 55, 255})
				continue
			}
			// Per-stone tint from its grid cell
			k := uint8(((x+off)/bw*37 + row*53) % 40)
			img.SetNRGBA(x, y, color.NRGBA{150 + k, 135 + k, 115 + k/2, 255})
		}
	}
	return img
}

func smiley(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// Centre-relative, y up
			fx := (float64(x)+0.5)/s*2 - 1
			fy := 1 - (float64(y)+0.5)/s*2
			c := color.NRGBA{255, 255, 255, 255}
			r := math.Hypot(fx, fy)
			switch {
			case r > 0.9:
			case math.Hypot(fx+0.35, fy-0.3) < 0.12, math.Hypot(fx-0.35, fy-0.3) < 0.12:
				c = color.NRGBA{0, 0, 0, 255}
			case fy < -0.1 && math.Abs(r-0.55) < 0.07:
				c = color.NRGBA{0, 0, 0, 255}
			default:
				c = color.NRGBA{255, 220, 0, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
