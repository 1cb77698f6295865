package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/nfnt/resize"
)

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	return err == nil, err
}

// savePNG writes img to path, scaled up by an integer factor with
// nearest-neighbor sampling so pixels stay sharp.
func savePNG(path string, img image.Image, scale int) error {
	if scale > 1 {
		b := img.Bounds()
		img = resize.Resize(uint(b.Dx()*scale), uint(b.Dy()*scale), img, resize.NearestNeighbor)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode image file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return nil
}
