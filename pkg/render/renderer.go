package render

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/taigrr/raycaster/pkg/math3d"
	"github.com/taigrr/raycaster/pkg/scene"
	"github.com/taigrr/raycaster/pkg/trace"
)

// Renderer casts one ray per pixel through the settings' frame and shades
// the result. Rows are split into blocks shaded in parallel; each block
// writes its own slice of the pixel buffer.
type Renderer struct {
	Workers     int         // Parallel blocks; defaults to runtime.NumCPU()
	RowsPerTask int         // Rows per block; defaults to a few blocks per worker
	Logger      *log.Logger // Optional; receives debug timing

	// Progress, if set, is called after each finished row with the number
	// of rows done so far. It is called from worker goroutines.
	Progress func(done, total int)
}

// RenderFrame renders with a default Renderer.
func RenderFrame(spheres []scene.Sphere, settings scene.Settings) (*Image, error) {
	var r Renderer
	return r.Render(context.Background(), spheres, settings)
}

// Render shades every pixel of settings.Frame. The spheres and settings are
// only read. A cancelled ctx stops the render between rows and its error is
// returned.
func (r *Renderer) Render(ctx context.Context, spheres []scene.Sphere, settings scene.Settings) (*Image, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	for i, s := range spheres {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("render: sphere %d: %w", i, err)
		}
	}

	frame := settings.Frame
	width, height := frame.Width, frame.Height
	dx, dy := frame.Step()
	xs := columnSamples(frame.View, dx, width)
	ys := rowSamples(frame.View, dy, height)
	z := frame.View.ZPlane
	eye := settings.EyePoint

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	rowsPerTask := r.RowsPerTask
	if rowsPerTask <= 0 {
		rowsPerTask = max(1, height/(workers*4))
	}

	img := NewImage(width, height)
	start := time.Now()
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y0 := 0; y0 < height && gctx.Err() == nil; y0 += rowsPerTask {
		y1 := min(y0+rowsPerTask, height)
		g.Go(func() error {
			for y := y0; y < y1; y++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				row := img.Pixels[y*width : (y+1)*width]
				for x, sx := range xs {
					ray := trace.NewRay(eye, math3d.P3(sx, ys[y], z))
					row[x] = trace.Shade(ray, spheres, settings)
				}
				n := done.Add(1)
				if r.Progress != nil {
					r.Progress(int(n), height)
				}
			}
			return nil
		})
	}

	err := g.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = ctxErr
	}
	if err != nil {
		r.debug("render cancelled", "rows", done.Load(), "of", height, "err", err)
		return nil, err
	}

	r.debug("render finished",
		"width", width,
		"height", height,
		"spheres", len(spheres),
		"workers", workers,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return img, nil
}

func (r *Renderer) debug(msg string, keyvals ...any) {
	if r.Logger != nil {
		r.Logger.Debug(msg, keyvals...)
	}
}
