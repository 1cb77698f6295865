package scene

import (
	"image"
	"image/color"

	"raycaster/geom"
)

var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
)

// Image maps the frame to an RGBA image with a top-left origin. Scene rows
// grow upward, so row y lands on image row Height-y-1.
func (f *Frame) Image(mode Mode, background color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		iy := f.Height - y - 1
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, iy, pixel(f.At(x, y), mode, background))
		}
	}
	return img
}

func pixel(s Sample, mode Mode, background color.RGBA) color.RGBA {
	if !s.Hit {
		return background
	}
	if mode == ModeMask {
		return White
	}
	c := geom.Channel(s.Brightness)
	return color.RGBA{c, c, c, 255}
}
