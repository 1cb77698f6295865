package scene

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type Options struct {
	Width, Height int
	// Workers is the number of goroutines rows are spread across. Zero or
	// less means one per CPU.
	Workers int
}

// Frame holds one Sample per pixel, row-major, in scene coordinates: row 0
// is the lowest row of the canvas.
type Frame struct {
	Width, Height int
	Samples       []Sample
}

func (f *Frame) At(x, y int) Sample {
	return f.Samples[y*f.Width+x]
}

// Coverage returns the fraction of pixels that hit the sphere.
func (f *Frame) Coverage() float64 {
	if len(f.Samples) == 0 {
		return 0
	}
	hits := 0
	for _, s := range f.Samples {
		if s.Hit {
			hits++
		}
	}
	return float64(hits) / float64(len(f.Samples))
}

// Render traces every pixel of the scene. Rows are dealt out to workers in
// stripes; each worker writes only its own rows, so the frame needs no
// locking. Canceling ctx abandons the remaining rows.
func Render(ctx context.Context, s *Scene, opts Options) (*Frame, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: frame size %dx%d", ErrCanvas, opts.Width, opts.Height)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > opts.Height {
		workers = opts.Height
	}

	f := &Frame{
		Width:   opts.Width,
		Height:  opts.Height,
		Samples: make([]Sample, opts.Width*opts.Height),
	}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for y := w; y < f.Height; y += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				row := f.Samples[y*f.Width : (y+1)*f.Width]
				for x := range row {
					row[x] = s.Trace(x, y)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return f, nil
}
