package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/taigrr/raycaster/pkg/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		out     string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to a PPM or PNG file",
		Example: `  raycaster render -o spheres.ppm
  raycaster render --scene scene.json --width 1024 -o big.png
  raycaster render --light -50,80,-100 --intensity medium -o dim.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := a.scene.load()
			if err != nil {
				return a.fail("load scene: %w", err)
			}

			frame := file.Settings.Frame
			a.logger.Info("rendering",
				"spheres", len(file.Spheres),
				"size", fmt.Sprintf("%dx%d", frame.Width, frame.Height))

			var (
				mu       sync.Mutex
				lastStep = -1
			)
			r := render.Renderer{
				Workers: workers,
				Logger:  a.logger,
				Progress: func(done, total int) {
					mu.Lock()
					defer mu.Unlock()
					if step := done * 10 / total; step > lastStep {
						lastStep = step
						a.logger.Debug("progress", "rows", done, "of", total)
					}
				},
			}

			start := time.Now()
			img, err := r.Render(cmd.Context(), file.Spheres, file.Settings)
			if err != nil {
				return a.fail("render: %w", err)
			}
			if err := img.Save(out); err != nil {
				return a.fail("%w", err)
			}
			a.logger.Info("saved", "path", out, "elapsed", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "out.ppm", "output file (.ppm or .png)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel render workers (0 = one per CPU)")
	a.scene.bindSettings(cmd)
	return cmd
}
