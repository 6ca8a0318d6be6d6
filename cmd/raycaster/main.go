// raycaster - sphere ray caster
// Renders scenes of lit spheres to PPM/PNG files or straight to the terminal.
//
// Commands:
//
//	render   - Render a scene to an image file
//	preview  - Interactive full-screen terminal preview
//	spheres  - Inspect, parse and generate sphere descriptions
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version))
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// app holds what every subcommand shares.
type app struct {
	logger  *log.Logger
	verbose bool
	scene   sceneFlags
}

func newRootCmd() *cobra.Command {
	a := &app{
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "raycaster"}),
	}

	root := &cobra.Command{
		Use:   "raycaster",
		Short: "Render lit spheres by ray casting",
		Long: "raycaster casts one ray per pixel from an eye point through a view frame,\n" +
			"shading every hit sphere with ambient, diffuse and specular light.",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if a.verbose {
				a.logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")
	a.scene.bindPersistent(root)

	root.AddCommand(
		newRenderCmd(a),
		newPreviewCmd(a),
		newSpheresCmd(a),
	)
	return root
}

func (a *app) fail(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	a.logger.Debug("command failed", "err", err)
	return err
}
