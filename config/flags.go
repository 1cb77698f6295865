// Package config reads the renderer's command line and environment.
package config

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"raycaster/geom"
	"raycaster/scene"
)

// maxDimension bounds the render size in either direction.
const maxDimension = 1 << 14

type Flags struct {
	out      string
	width    int
	ar       float64
	windowed bool
	mode     scene.Mode
	light    geom.Point3D
	workers  int
	scale    int
}

// NewFlags defines the renderer flags on fs and parses args. Defaults come
// from RAYCASTER_* variables, which may be set in a .env file under
// RAYCASTER_ROOT_DIR.
func NewFlags(fs *flag.FlagSet, args []string) (*Flags, error) {
	_ = godotenv.Load(path.Join(getEnv("RAYCASTER_ROOT_DIR", "."), ".env"))

	out := fs.String("out", getEnv("RAYCASTER_OUT", ""), "Path of the PNG file to write. Required unless -windowed is set.")
	width := fs.Int("width", getEnvInt("RAYCASTER_WIDTH", 100), "Render width in pixels")
	ar := fs.String("ar", getEnv("RAYCASTER_AR", "1:1"), "Render aspect ratio in width:height format")
	windowed := fs.Bool("windowed", false, "If provided, the render is shown in a window instead of written to -out")
	mode := fs.String("mode", getEnv("RAYCASTER_MODE", "shade"), "Pixel mode, \"mask\" or \"shade\"")
	light := fs.String("light", getEnv("RAYCASTER_LIGHT", "100,100,150"), "Light position in x,y,z format")
	workers := fs.Int("workers", getEnvInt("RAYCASTER_WORKERS", 0), "Render goroutines, 0 for one per CPU")
	scale := fs.Int("scale", getEnvInt("RAYCASTER_SCALE", 1), "Integer upscale factor for the output")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error: %w", err)
	}

	if *out == "" && !*windowed {
		return nil, fmt.Errorf("error: Output file not provided")
	}

	if *out != "" && filepath.Ext(*out) != ".png" {
		return nil, fmt.Errorf("error: Output file must have a .png extension")
	}

	if *width <= 0 || *width > maxDimension {
		return nil, fmt.Errorf("error: Render width must be between 1 and %d", maxDimension)
	}

	if *scale <= 0 {
		return nil, fmt.Errorf("error: Scale must be greater than 0")
	}

	parsedAspectRatio, err := parseAspectRatio(*ar)
	if err != nil {
		return nil, fmt.Errorf("error: Aspect Ratio could not be parsed:\n\t%s", err.Error())
	}

	if h := float64(*width) / parsedAspectRatio; h > maxDimension {
		return nil, fmt.Errorf("error: Render height %.0f exceeds %d, check -ar", h, maxDimension)
	}

	parsedMode, err := scene.ParseMode(*mode)
	if err != nil {
		return nil, fmt.Errorf("error: Mode could not be parsed:\n\t%s", err.Error())
	}

	parsedLight, err := parsePoint(*light)
	if err != nil {
		return nil, fmt.Errorf("error: Light position could not be parsed:\n\t%s", err.Error())
	}

	return &Flags{
		out:      *out,
		width:    *width,
		ar:       parsedAspectRatio,
		windowed: *windowed,
		mode:     parsedMode,
		light:    parsedLight,
		workers:  *workers,
		scale:    *scale,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if n, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return n
	}
	return fallback
}

func parseAspectRatio(ar string) (float64, error) {
	operands := strings.Split(ar, ":")
	if len(operands) != 2 {
		return 0, fmt.Errorf("error: Invalid format, expected \"width:height\"")
	}
	width, err := strconv.ParseFloat(operands[0], 64)
	if err != nil {
		return 0, fmt.Errorf("error: invalid width value")
	}

	height, err := strconv.ParseFloat(operands[1], 64)
	if err != nil {
		return 0, fmt.Errorf("error: Invalid height value")
	}

	if !(width > 0) || math.IsInf(width, 0) {
		return 0, fmt.Errorf("error: Width must be a finite number greater than 0")
	}

	if !(height > 0) || math.IsInf(height, 0) {
		return 0, fmt.Errorf("error: Height must be a finite number greater than 0")
	}

	return width / height, nil
}

func parsePoint(s string) (geom.Point3D, error) {
	operands := strings.Split(s, ",")
	if len(operands) != 3 {
		return geom.Point3D{}, fmt.Errorf("error: Invalid format, expected \"x,y,z\"")
	}
	var c [3]float32
	for i, op := range operands {
		v, err := strconv.ParseFloat(strings.TrimSpace(op), 32)
		if err != nil {
			return geom.Point3D{}, fmt.Errorf("error: invalid coordinate %q", op)
		}
		c[i] = float32(v)
	}
	return geom.NewPoint(c[0], c[1], c[2]), nil
}

func (f Flags) Out() string {
	return f.out
}

func (f Flags) Width() int {
	return f.width
}

// Height follows from the width and aspect ratio.
func (f Flags) Height() int {
	return max(1, int(1./f.ar*float64(f.width)))
}

func (f Flags) Ar() float64 {
	return f.ar
}

func (f Flags) Windowed() bool {
	return f.windowed
}

func (f Flags) Mode() scene.Mode {
	return f.mode
}

func (f Flags) Light() geom.Point3D {
	return f.light
}

func (f Flags) Workers() int {
	return f.workers
}

func (f Flags) Scale() int {
	return f.scale
}
