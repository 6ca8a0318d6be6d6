package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taigrr/raycaster/pkg/math3d"
	"github.com/taigrr/raycaster/pkg/models"
	"github.com/taigrr/raycaster/pkg/scene"
)

// sceneFlags selects a scene and overrides parts of its settings.
type sceneFlags struct {
	path  string
	model string

	width, height int
	eye, light    string
	intensity     string
	ambience      string
	background    string
	aspect        string
}

func (f *sceneFlags) bindPersistent(cmd *cobra.Command) {
	fl := cmd.PersistentFlags()
	fl.StringVar(&f.path, "scene", "", "scene file (JSON); defaults to the built-in two-sphere scene")
	fl.StringVar(&f.model, "model", "", "glTF/GLB file whose mesh nodes are added as spheres")
}

// bindSettings adds the settings override flags to cmd.
func (f *sceneFlags) bindSettings(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.IntVar(&f.width, "width", 0, "image width in pixels")
	fl.IntVar(&f.height, "height", 0, "image height in pixels")
	fl.StringVar(&f.eye, "eye", "", "eye point as x,y,z")
	fl.StringVar(&f.light, "light", "", "light position as x,y,z")
	fl.StringVar(&f.intensity, "intensity", "", "light intensity: low, medium or high")
	fl.StringVar(&f.ambience, "ambience", "", "ambient light color (#rrggbb or r,g,b)")
	fl.StringVar(&f.background, "background", "", "background color (#rrggbb or r,g,b)")
	fl.StringVar(&f.aspect, "aspect", "", "aspect ratio lock: freeform, 1:1, 4:3 or 16:9")
}

// load reads the scene file and model (if any) and applies overrides.
func (f *sceneFlags) load() (*scene.File, error) {
	file := &scene.File{Settings: scene.DefaultSettings(), Spheres: scene.DefaultSpheres()}
	if f.path != "" {
		var err error
		if file, err = scene.LoadFile(f.path); err != nil {
			return nil, err
		}
	}

	if f.model != "" {
		spheres, err := models.LoadSpheres(f.model)
		if err != nil {
			return nil, err
		}
		file.Spheres = append(file.Spheres, spheres...)
	}

	if err := f.apply(&file.Settings); err != nil {
		return nil, err
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return file, nil
}

func (f *sceneFlags) apply(s *scene.Settings) error {
	if f.aspect != "" {
		a, err := scene.ParseAspectRatio(f.aspect)
		if err != nil {
			return err
		}
		s.Frame.AspectRatio = a
	}
	switch {
	case f.width > 0 && f.height > 0:
		s.Frame.Width, s.Frame.Height = f.width, f.height
	case f.width > 0:
		s.Frame = s.Frame.WithWidth(f.width)
	case f.height > 0:
		s.Frame = s.Frame.WithHeight(f.height)
	}
	if f.aspect != "" {
		s.Frame = s.Frame.Fit()
	}

	if f.eye != "" {
		p, err := parsePoint(f.eye)
		if err != nil {
			return fmt.Errorf("--eye: %w", err)
		}
		s.EyePoint = p
	}
	if f.light != "" {
		p, err := parsePoint(f.light)
		if err != nil {
			return fmt.Errorf("--light: %w", err)
		}
		s.Light.Position = p
	}
	if f.intensity != "" {
		i, err := scene.ParseIntensity(f.intensity)
		if err != nil {
			return err
		}
		s.Light.Intensity = i
	}
	if f.ambience != "" {
		c, err := scene.ParseColor(f.ambience)
		if err != nil {
			return fmt.Errorf("--ambience: %w", err)
		}
		s.Ambience = c
	}
	if f.background != "" {
		c, err := scene.ParseColor(f.background)
		if err != nil {
			return fmt.Errorf("--background: %w", err)
		}
		s.BackgroundColor = c
	}
	return nil
}

// parsePoint reads "x,y,z".
func parsePoint(s string) (math3d.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math3d.Point{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return math3d.Point{}, fmt.Errorf("coordinate %q: %w", p, err)
		}
		v[i] = n
	}
	return math3d.P3(v[0], v[1], v[2]), nil
}
