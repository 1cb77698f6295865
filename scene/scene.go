// Package scene holds the single-sphere scene and renders it pixel by pixel.
package scene

import (
	"errors"
	"fmt"
	"strings"

	"raycaster/geom"
)

var (
	ErrCanvas = errors.New("scene: invalid canvas")
	ErrCamera = errors.New("scene: invalid camera")
	ErrMode   = errors.New("scene: unknown mode")
)

// Mode selects how a hit is turned into a pixel.
type Mode int

const (
	// ModeMask draws every hit in full white.
	ModeMask Mode = iota
	// ModeShade draws hits with geom.Brightness.
	ModeShade
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "mask":
		return ModeMask, nil
	case "shade":
		return ModeShade, nil
	}
	return 0, fmt.Errorf("%w %q, expected \"mask\" or \"shade\"", ErrMode, s)
}

func (m Mode) String() string {
	switch m {
	case ModeMask:
		return "mask"
	case ModeShade:
		return "shade"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Scene is built once and only read while rendering.
type Scene struct {
	Camera geom.Point3D
	Light  geom.Point3D
	Canvas geom.Canvas
	Sphere geom.Sphere
}

// Default returns the reference scene with a width x height canvas. The
// canvas is measured in world units, one per pixel.
func Default(width, height int) *Scene {
	return &Scene{
		Camera: geom.NewPoint(50, 50, 150),
		Light:  geom.NewPoint(100, 100, 150),
		Canvas: geom.NewCanvas(50, 50, 75, float32(width), float32(height)),
		Sphere: geom.NewSphere(50, 20, 50, 20),
	}
}

// Validate checks the preconditions the geometry does not check itself.
func (s *Scene) Validate() error {
	if err := s.Sphere.Validate(); err != nil {
		return err
	}
	if !(s.Canvas.Width() > 0) || !(s.Canvas.Height() > 0) {
		return fmt.Errorf("%w: size %gx%g", ErrCanvas, s.Canvas.Width(), s.Canvas.Height())
	}
	origin := s.Canvas.Origin()
	if _, err := geom.NewPoint(0, 0, 0).VectorTo(origin).TryNormalize(); err != nil {
		return fmt.Errorf("%w: origin %v has no direction: %w", ErrCanvas, origin, err)
	}
	if s.Camera.Z == origin.Z {
		return fmt.Errorf("%w: camera %v lies in the canvas plane z=%g", ErrCamera, s.Camera, origin.Z)
	}
	return nil
}

// Footprint returns the world x/y of the first and last pixel centers.
func (s *Scene) Footprint() (lo, hi geom.Point2D[geom.WorldSpace]) {
	c := s.Canvas
	lo = c.ToWorld(geom.AtPixel(0, 0)).Project()
	hi = c.ToWorld(geom.AtPixel(int(c.Width())-1, int(c.Height())-1)).Project()
	return lo, hi
}

// Sample is the result for one pixel. Brightness is only meaningful on a hit.
type Sample struct {
	Hit        bool
	Brightness float32
}

// Trace casts the ray for pixel (x, y) and shades the visible hit, if any.
func (s *Scene) Trace(x, y int) Sample {
	ray := s.Canvas.CastRay(geom.AtPixel(x, y), s.Camera)
	p, ok := s.Sphere.Nearest(ray)
	if !ok {
		return Sample{}
	}
	return Sample{
		Hit:        true,
		Brightness: geom.Brightness(p, s.Sphere.Center, ray.Direction, s.Light),
	}
}
